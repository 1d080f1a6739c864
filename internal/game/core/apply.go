package core

// SelfDestructDamage is the fixed damage dealt to every unit inside the
// blast area of a self-destructing unit.
const SelfDestructDamage = 2

// HealthChange records one unit's health delta caused by an action.
type HealthChange struct {
	At      Coord
	Owner   Player
	Type    UnitType
	Before  int
	After   int
	Removed bool
}

// Outcome is the immutable effect summary of a successfully applied action,
// consumed by trace/log subscribers. It never aliases board memory.
type Outcome struct {
	Action  Action
	Changes []HealthChange
}

// Apply validates an action and applies it to the board in place. Either
// the whole effect commits or the board is left untouched: validation runs
// first and the mutations below cannot fail. Callers that must not mutate
// their state pass a clone.
func Apply(b *Board, a Action) (*Outcome, error) {
	if err := a.Validate(b); err != nil {
		return nil, err
	}

	out := &Outcome{Action: a}
	switch act := a.(type) {
	case MoveAction:
		u := b.At(act.From)
		b.Remove(act.From)
		b.Place(act.To, u)

	case AttackAction:
		target := b.At(act.Target)
		dmg := DamageAmount(b.At(act.From).Type, target.Type)
		out.Changes = append(out.Changes, damage(b, act.Target, target, dmg))

	case RepairAction:
		target := b.At(act.Target)
		amount := RepairAmount(b.At(act.From).Type, target.Type)
		before := target.Health
		target.ModHealth(amount)
		out.Changes = append(out.Changes, HealthChange{
			At:     act.Target,
			Owner:  target.Owner,
			Type:   target.Type,
			Before: before,
			After:  target.Health,
		})

	case SelfDestructAction:
		actor := b.At(act.At)
		out.Changes = append(out.Changes, damage(b, act.At, actor, actor.Health))
		for _, c := range act.At.Surrounding() {
			if u := b.At(c); u != nil {
				out.Changes = append(out.Changes, damage(b, c, u, SelfDestructDamage))
			}
		}
	}
	return out, nil
}

// damage applies dmg to the unit at c, removing it from the board when its
// health reaches zero, and returns the change record.
func damage(b *Board, c Coord, u *Unit, dmg int) HealthChange {
	change := HealthChange{At: c, Owner: u.Owner, Type: u.Type, Before: u.Health}
	u.ModHealth(-dmg)
	change.After = u.Health
	if !u.Alive() {
		b.Remove(c)
		change.Removed = true
	}
	return change
}
