package search

import (
	"fmt"

	"github.com/dianaoana1/COMP472-Warzone/internal/game/core"
	"github.com/dianaoana1/COMP472-Warzone/internal/game/rules"
)

// Evaluator scores a board position. Scores are signed from the attacker's
// perspective: positive means the position favors the attacker. All
// evaluators are side-effect free and O(number of units).
type Evaluator interface {
	Name() string
	Score(b *core.Board) int
}

// ByID returns the evaluator for a numeric heuristic id (0, 1 or 2).
func ByID(id int) (Evaluator, error) {
	switch id {
	case 0:
		return Material{}, nil
	case 1:
		return Offensive{}, nil
	case 2:
		return Defensive{}, nil
	default:
		return nil, fmt.Errorf("unknown heuristic id %d", id)
	}
}

// Material is the baseline heuristic e0: a weighted count of live units per
// side, with an effectively infinite weight on AI presence.
type Material struct{}

func (Material) Name() string { return "e0" }

func (Material) Score(b *core.Board) int {
	return materialValue(b, core.Attacker) - materialValue(b, core.Defender)
}

func materialValue(b *core.Board, p core.Player) int {
	v := 3 * (b.UnitCount(p, core.UnitVirus) +
		b.UnitCount(p, core.UnitTech) +
		b.UnitCount(p, core.UnitFirewall) +
		b.UnitCount(p, core.UnitProgram))
	return v + 9999*b.UnitCount(p, core.UnitAI)
}

// Offensive is heuristic e1: material plus mobility and a threat term that
// rewards units positioned to damage the enemy, with an AI-safety penalty
// that pulls the weight back toward defense once the own AI is wounded.
type Offensive struct{}

func (Offensive) Name() string { return "e1" }

// Per-type material weights for e1. Viruses hit hardest so they carry the
// most offensive value.
var offensiveWeights = [core.NumUnitTypes]int{
	core.UnitAI:       9999,
	core.UnitTech:     15,
	core.UnitVirus:    40,
	core.UnitProgram:  20,
	core.UnitFirewall: 10,
}

const aiDangerHealth = 5

func (Offensive) Score(b *core.Board) int {
	return offensiveValue(b, core.Attacker) - offensiveValue(b, core.Defender)
}

func offensiveValue(b *core.Board, p core.Player) int {
	score := 0
	aiHealth := -1
	b.ForEachUnit(func(c core.Coord, u *core.Unit) {
		if u.Owner != p {
			// Enemy health already chipped away counts as progress.
			score += 8 * (core.Catalog[u.Type].MaxHealth - u.Health)
			return
		}
		score += offensiveWeights[u.Type]
		if u.Type == core.UnitAI {
			aiHealth = u.Health
		}
		for _, n := range c.Neighbors() {
			if enemy := b.At(n); enemy != nil && enemy.Owner != p {
				score += 5 * core.DamageAmount(u.Type, enemy.Type)
			}
		}
	})
	score += len(rules.LegalActions(b, p))
	if aiHealth >= 0 && aiHealth < aiDangerHealth {
		score -= 30 * (aiDangerHealth - aiHealth)
	}
	return score
}

// Defensive is heuristic e2: AI health and the defensive types (Tech,
// Firewall) dominate, with a bonus for friendly units covering the AI and a
// smaller offensive contribution from the remaining types.
type Defensive struct{}

func (Defensive) Name() string { return "e2" }

func (Defensive) Score(b *core.Board) int {
	return defensiveValue(b, core.Attacker) - defensiveValue(b, core.Defender)
}

func defensiveValue(b *core.Board, p core.Player) int {
	score := 0
	b.ForEachUnit(func(c core.Coord, u *core.Unit) {
		if u.Owner != p {
			return
		}
		switch u.Type {
		case core.UnitAI:
			score += 9999 + 120*u.Health
			for _, n := range c.Neighbors() {
				if cover := b.At(n); cover != nil && cover.Owner == p {
					score += 15
				}
			}
		case core.UnitTech, core.UnitFirewall:
			score += 25 * u.Health
		default:
			score += 6 * u.Health
		}
	})
	return score
}
