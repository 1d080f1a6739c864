package core

import "fmt"

// Player identifies one of the two sides. The attacker always moves first.
type Player int

const (
	Attacker Player = iota
	Defender
	NumPlayers
)

// Opponent returns the other player.
func (p Player) Opponent() Player {
	if p == Attacker {
		return Defender
	}
	return Attacker
}

// String returns the player name.
func (p Player) String() string {
	switch p {
	case Attacker:
		return "Attacker"
	case Defender:
		return "Defender"
	default:
		return fmt.Sprintf("Player(%d)", int(p))
	}
}

// UnitType is the closed set of unit types. The order is significant: it
// indexes the damage and repair matrices in the catalog.
type UnitType int

const (
	UnitAI UnitType = iota
	UnitTech
	UnitVirus
	UnitProgram
	UnitFirewall
	NumUnitTypes
)

// String returns the unit type name.
func (t UnitType) String() string {
	switch t {
	case UnitAI:
		return "AI"
	case UnitTech:
		return "Tech"
	case UnitVirus:
		return "Virus"
	case UnitProgram:
		return "Program"
	case UnitFirewall:
		return "Firewall"
	default:
		return fmt.Sprintf("UnitType(%d)", int(t))
	}
}

// Rune returns the single-letter display symbol for the type.
func (t UnitType) Rune() rune {
	return rune("ATVPF"[t])
}

// UnitSpec holds the static attributes of a unit type: maximum health, the
// movement rules, and one row each of the damage and repair matrices.
type UnitSpec struct {
	MaxHealth int

	// CanDisengage allows the unit to move away while orthogonally adjacent
	// to an enemy unit. Units without it are pinned in place when engaged.
	CanDisengage bool

	// FreeMovement allows moves in any direction. Units without it only
	// advance: up/left for the attacker, down/right for the defender.
	FreeMovement bool

	Damage [NumUnitTypes]int
	Repair [NumUnitTypes]int
}

// Catalog is the immutable rule table for all unit types, indexed by
// UnitType. It is initialized once and never mutated.
var Catalog = [NumUnitTypes]UnitSpec{
	UnitAI: {
		MaxHealth: 9,
		Damage:    [NumUnitTypes]int{3, 3, 3, 3, 1},
		Repair:    [NumUnitTypes]int{0, 1, 1, 0, 0},
	},
	UnitTech: {
		MaxHealth:    9,
		CanDisengage: true,
		FreeMovement: true,
		Damage:       [NumUnitTypes]int{1, 1, 6, 1, 1},
		Repair:       [NumUnitTypes]int{3, 0, 0, 3, 3},
	},
	UnitVirus: {
		MaxHealth:    9,
		CanDisengage: true,
		FreeMovement: true,
		Damage:       [NumUnitTypes]int{9, 6, 1, 6, 1},
	},
	UnitProgram: {
		MaxHealth: 9,
		Damage:    [NumUnitTypes]int{3, 3, 3, 3, 1},
	},
	UnitFirewall: {
		MaxHealth: 9,
		Damage:    [NumUnitTypes]int{1, 1, 1, 1, 1},
	},
}

// DamageAmount returns the damage dealt by an attacker type to a target type.
func DamageAmount(attacker, target UnitType) int {
	return Catalog[attacker].Damage[target]
}

// RepairAmount returns the health restored by a repairer type to a target type.
func RepairAmount(repairer, target UnitType) int {
	return Catalog[repairer].Repair[target]
}

// Unit is a single piece on the board.
type Unit struct {
	Owner  Player
	Type   UnitType
	Health int
}

// NewUnit creates a unit of the given type at full health.
func NewUnit(owner Player, t UnitType) *Unit {
	return &Unit{Owner: owner, Type: t, Health: Catalog[t].MaxHealth}
}

// Alive reports whether the unit has health remaining.
func (u *Unit) Alive() bool {
	return u.Health > 0
}

// ModHealth adjusts the unit's health by delta, clamped to [0, MaxHealth].
func (u *Unit) ModHealth(delta int) {
	u.Health += delta
	if u.Health < 0 {
		u.Health = 0
	} else if max := Catalog[u.Type].MaxHealth; u.Health > max {
		u.Health = max
	}
}

// String renders the unit as owner initial, type initial and health,
// e.g. "aV9" for an attacker Virus at full health.
func (u *Unit) String() string {
	owner := 'd'
	if u.Owner == Attacker {
		owner = 'a'
	}
	return fmt.Sprintf("%c%c%d", owner, u.Type.Rune(), u.Health)
}
