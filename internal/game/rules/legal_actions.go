package rules

import (
	"github.com/dianaoana1/COMP472-Warzone/internal/game/core"
)

// LegalActions enumerates every legal action for the player on the given
// board. The order is deterministic and part of the contract: units are
// visited row-major, and for each unit the candidates are moves (up, left,
// down, right), then attacks, then repairs in the same neighbor order, then
// self-destruct. Search tie-breaking picks the first action of equal score,
// so a stable order keeps AI play reproducible.
//
// An empty result means the player has no legal action at all (terminal
// for the game), which callers must distinguish from an individual action
// failing Validate.
func LegalActions(b *core.Board, p core.Player) []core.Action {
	var actions []core.Action
	b.ForEachUnit(func(c core.Coord, u *core.Unit) {
		if u.Owner != p {
			return
		}
		for _, n := range c.Neighbors() {
			mv := core.MoveAction{Player: p, From: c, To: n}
			if mv.Validate(b) == nil {
				actions = append(actions, mv)
			}
		}
		for _, n := range c.Neighbors() {
			at := core.AttackAction{Player: p, From: c, Target: n}
			if at.Validate(b) == nil {
				actions = append(actions, at)
			}
		}
		for _, n := range c.Neighbors() {
			rp := core.RepairAction{Player: p, From: c, Target: n}
			if rp.Validate(b) == nil {
				actions = append(actions, rp)
			}
		}
		actions = append(actions, core.SelfDestructAction{Player: p, At: c})
	})
	return actions
}

// IsLegal checks a single action against the same predicate LegalActions
// uses, without enumerating. Used by the turn controller to vet actions
// coming from humans or the search engine.
func IsLegal(b *core.Board, a core.Action) error {
	return a.Validate(b)
}
