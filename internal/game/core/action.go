package core

import "fmt"

// ActionKind represents the type of action.
type ActionKind int

const (
	KindMove ActionKind = iota
	KindAttack
	KindRepair
	KindSelfDestruct
)

// String returns the action kind name.
func (k ActionKind) String() string {
	switch k {
	case KindMove:
		return "move"
	case KindAttack:
		return "attack"
	case KindRepair:
		return "repair"
	case KindSelfDestruct:
		return "self-destruct"
	default:
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
}

// Action is a player action. Actions are value objects: they carry
// coordinates only and are resolved against a board at apply time.
type Action interface {
	Actor() Player
	Kind() ActionKind
	// Source returns the acting unit's cell.
	Source() Coord
	// Validate checks the full legality predicate against a board without
	// mutating it. A nil error means Apply will succeed.
	Validate(b *Board) error
	String() string
}

// MoveAction moves a unit to an adjacent empty cell.
type MoveAction struct {
	Player Player
	From   Coord
	To     Coord
}

func (m MoveAction) Actor() Player    { return m.Player }
func (m MoveAction) Kind() ActionKind { return KindMove }
func (m MoveAction) Source() Coord    { return m.From }
func (m MoveAction) String() string   { return fmt.Sprintf("move %s %s", m.From, m.To) }

func (m MoveAction) Validate(b *Board) error {
	if !b.InBounds(m.From) || !b.InBounds(m.To) {
		return ErrOffBoard
	}
	u := b.At(m.From)
	if u == nil {
		return ErrNoUnit
	}
	if u.Owner != m.Player {
		return ErrNotOwned
	}
	if b.At(m.To) != nil {
		return ErrDestinationOccupied
	}
	if !m.From.IsAdjacentTo(m.To) {
		return ErrNotAdjacent
	}
	spec := Catalog[u.Type]
	if !spec.CanDisengage && b.Engaged(m.From, u.Owner) {
		return ErrEngaged
	}
	if !spec.FreeMovement && !isForward(u.Owner, m.From, m.To) {
		return ErrRestrictedDirection
	}
	return nil
}

// isForward reports whether a step advances toward the enemy side: up/left
// for the attacker, down/right for the defender.
func isForward(p Player, from, to Coord) bool {
	if p == Attacker {
		return to.Row < from.Row || to.Col < from.Col
	}
	return to.Row > from.Row || to.Col > from.Col
}

// AttackAction attacks an adjacent enemy unit. Damage is one-directional:
// the target takes the attacker's damage-table entry, nothing comes back.
type AttackAction struct {
	Player Player
	From   Coord
	Target Coord
}

func (a AttackAction) Actor() Player    { return a.Player }
func (a AttackAction) Kind() ActionKind { return KindAttack }
func (a AttackAction) Source() Coord    { return a.From }
func (a AttackAction) String() string   { return fmt.Sprintf("attack %s %s", a.From, a.Target) }

func (a AttackAction) Validate(b *Board) error {
	if !b.InBounds(a.From) || !b.InBounds(a.Target) {
		return ErrOffBoard
	}
	u := b.At(a.From)
	if u == nil {
		return ErrNoUnit
	}
	if u.Owner != a.Player {
		return ErrNotOwned
	}
	target := b.At(a.Target)
	if target == nil {
		return ErrNoTarget
	}
	if target.Owner == a.Player {
		return ErrTargetIsFriendly
	}
	if !a.From.IsAdjacentTo(a.Target) {
		return ErrNotAdjacent
	}
	return nil
}

// RepairAction repairs an adjacent friendly unit. Only legal when the
// repair-table entry is nonzero and the target is below full health.
type RepairAction struct {
	Player Player
	From   Coord
	Target Coord
}

func (r RepairAction) Actor() Player    { return r.Player }
func (r RepairAction) Kind() ActionKind { return KindRepair }
func (r RepairAction) Source() Coord    { return r.From }
func (r RepairAction) String() string   { return fmt.Sprintf("repair %s %s", r.From, r.Target) }

func (r RepairAction) Validate(b *Board) error {
	if !b.InBounds(r.From) || !b.InBounds(r.Target) {
		return ErrOffBoard
	}
	u := b.At(r.From)
	if u == nil {
		return ErrNoUnit
	}
	if u.Owner != r.Player {
		return ErrNotOwned
	}
	target := b.At(r.Target)
	if target == nil {
		return ErrNoTarget
	}
	if target.Owner != r.Player {
		return ErrTargetIsEnemy
	}
	if !r.From.IsAdjacentTo(r.Target) {
		return ErrNotAdjacent
	}
	if RepairAmount(u.Type, target.Type) == 0 {
		return ErrCannotRepair
	}
	if target.Health >= Catalog[target.Type].MaxHealth {
		return ErrTargetFullHealth
	}
	return nil
}

// SelfDestructAction removes the acting unit and damages every unit,
// friendly or enemy, in the surrounding blast area.
type SelfDestructAction struct {
	Player Player
	At     Coord
}

func (s SelfDestructAction) Actor() Player    { return s.Player }
func (s SelfDestructAction) Kind() ActionKind { return KindSelfDestruct }
func (s SelfDestructAction) Source() Coord    { return s.At }
func (s SelfDestructAction) String() string   { return fmt.Sprintf("self-destruct %s", s.At) }

func (s SelfDestructAction) Validate(b *Board) error {
	if !b.InBounds(s.At) {
		return ErrOffBoard
	}
	u := b.At(s.At)
	if u == nil {
		return ErrNoUnit
	}
	if u.Owner != s.Player {
		return ErrNotOwned
	}
	return nil
}
