package game

import "github.com/dianaoana1/COMP472-Warzone/internal/game/core"

// NewStandardBoard builds the initial layout: the defender's AI sits in the
// top-left corner behind its Techs and Firewalls, the attacker's AI in the
// bottom-right corner behind Viruses and Programs. dim must be at least 4
// so the two camps cannot overlap.
func NewStandardBoard(dim int) *core.Board {
	b := core.NewBoard(dim)
	md := dim - 1

	b.Place(core.NewCoord(0, 0), core.NewUnit(core.Defender, core.UnitAI))
	b.Place(core.NewCoord(1, 0), core.NewUnit(core.Defender, core.UnitTech))
	b.Place(core.NewCoord(0, 1), core.NewUnit(core.Defender, core.UnitTech))
	b.Place(core.NewCoord(2, 0), core.NewUnit(core.Defender, core.UnitFirewall))
	b.Place(core.NewCoord(0, 2), core.NewUnit(core.Defender, core.UnitFirewall))
	b.Place(core.NewCoord(1, 1), core.NewUnit(core.Defender, core.UnitProgram))

	b.Place(core.NewCoord(md, md), core.NewUnit(core.Attacker, core.UnitAI))
	b.Place(core.NewCoord(md-1, md), core.NewUnit(core.Attacker, core.UnitVirus))
	b.Place(core.NewCoord(md, md-1), core.NewUnit(core.Attacker, core.UnitVirus))
	b.Place(core.NewCoord(md-2, md), core.NewUnit(core.Attacker, core.UnitProgram))
	b.Place(core.NewCoord(md, md-2), core.NewUnit(core.Attacker, core.UnitProgram))
	b.Place(core.NewCoord(md-1, md-1), core.NewUnit(core.Attacker, core.UnitFirewall))

	return b
}
