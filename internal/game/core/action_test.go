package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func place(b *Board, row, col int, owner Player, t UnitType) *Unit {
	u := NewUnit(owner, t)
	b.Place(NewCoord(row, col), u)
	return u
}

func TestMoveValidate(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(b *Board)
		action   MoveAction
		expected error
	}{
		{
			name:     "free cell adjacent",
			setup:    func(b *Board) { place(b, 2, 2, Attacker, UnitVirus) },
			action:   MoveAction{Player: Attacker, From: NewCoord(2, 2), To: NewCoord(2, 3)},
			expected: nil,
		},
		{
			name:     "source off board",
			setup:    func(b *Board) {},
			action:   MoveAction{Player: Attacker, From: NewCoord(-1, 0), To: NewCoord(0, 0)},
			expected: ErrOffBoard,
		},
		{
			name:     "destination off board",
			setup:    func(b *Board) { place(b, 0, 0, Attacker, UnitVirus) },
			action:   MoveAction{Player: Attacker, From: NewCoord(0, 0), To: NewCoord(-1, 0)},
			expected: ErrOffBoard,
		},
		{
			name:     "empty source",
			setup:    func(b *Board) {},
			action:   MoveAction{Player: Attacker, From: NewCoord(2, 2), To: NewCoord(2, 3)},
			expected: ErrNoUnit,
		},
		{
			name:     "not owner",
			setup:    func(b *Board) { place(b, 2, 2, Defender, UnitVirus) },
			action:   MoveAction{Player: Attacker, From: NewCoord(2, 2), To: NewCoord(2, 3)},
			expected: ErrNotOwned,
		},
		{
			name: "destination occupied",
			setup: func(b *Board) {
				place(b, 2, 2, Attacker, UnitVirus)
				place(b, 2, 3, Attacker, UnitProgram)
			},
			action:   MoveAction{Player: Attacker, From: NewCoord(2, 2), To: NewCoord(2, 3)},
			expected: ErrDestinationOccupied,
		},
		{
			name:     "diagonal step",
			setup:    func(b *Board) { place(b, 2, 2, Attacker, UnitVirus) },
			action:   MoveAction{Player: Attacker, From: NewCoord(2, 2), To: NewCoord(3, 3)},
			expected: ErrNotAdjacent,
		},
		{
			name: "engaged program is pinned",
			setup: func(b *Board) {
				place(b, 2, 2, Attacker, UnitProgram)
				place(b, 2, 3, Defender, UnitFirewall)
			},
			action:   MoveAction{Player: Attacker, From: NewCoord(2, 2), To: NewCoord(1, 2)},
			expected: ErrEngaged,
		},
		{
			name: "engaged virus disengages freely",
			setup: func(b *Board) {
				place(b, 2, 2, Attacker, UnitVirus)
				place(b, 2, 3, Defender, UnitFirewall)
			},
			action:   MoveAction{Player: Attacker, From: NewCoord(2, 2), To: NewCoord(3, 2)},
			expected: nil,
		},
		{
			name: "engaged tech disengages freely",
			setup: func(b *Board) {
				place(b, 2, 2, Defender, UnitTech)
				place(b, 1, 2, Attacker, UnitVirus)
			},
			action:   MoveAction{Player: Defender, From: NewCoord(2, 2), To: NewCoord(2, 1)},
			expected: nil,
		},
		{
			name:     "attacker AI cannot retreat down",
			setup:    func(b *Board) { place(b, 2, 2, Attacker, UnitAI) },
			action:   MoveAction{Player: Attacker, From: NewCoord(2, 2), To: NewCoord(3, 2)},
			expected: ErrRestrictedDirection,
		},
		{
			name:     "attacker AI advances up",
			setup:    func(b *Board) { place(b, 2, 2, Attacker, UnitAI) },
			action:   MoveAction{Player: Attacker, From: NewCoord(2, 2), To: NewCoord(1, 2)},
			expected: nil,
		},
		{
			name:     "attacker firewall advances left",
			setup:    func(b *Board) { place(b, 2, 2, Attacker, UnitFirewall) },
			action:   MoveAction{Player: Attacker, From: NewCoord(2, 2), To: NewCoord(2, 1)},
			expected: nil,
		},
		{
			name:     "defender program cannot retreat up",
			setup:    func(b *Board) { place(b, 2, 2, Defender, UnitProgram) },
			action:   MoveAction{Player: Defender, From: NewCoord(2, 2), To: NewCoord(1, 2)},
			expected: ErrRestrictedDirection,
		},
		{
			name:     "defender AI advances down",
			setup:    func(b *Board) { place(b, 2, 2, Defender, UnitAI) },
			action:   MoveAction{Player: Defender, From: NewCoord(2, 2), To: NewCoord(3, 2)},
			expected: nil,
		},
		{
			name:     "virus moves in any direction",
			setup:    func(b *Board) { place(b, 2, 2, Attacker, UnitVirus) },
			action:   MoveAction{Player: Attacker, From: NewCoord(2, 2), To: NewCoord(3, 2)},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard(5)
			tt.setup(b)
			err := tt.action.Validate(b)
			if tt.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.expected)
			}
		})
	}
}

func TestAttackValidate(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(b *Board)
		action   AttackAction
		expected error
	}{
		{
			name: "adjacent enemy",
			setup: func(b *Board) {
				place(b, 2, 2, Attacker, UnitVirus)
				place(b, 2, 3, Defender, UnitProgram)
			},
			action:   AttackAction{Player: Attacker, From: NewCoord(2, 2), Target: NewCoord(2, 3)},
			expected: nil,
		},
		{
			name:     "no target",
			setup:    func(b *Board) { place(b, 2, 2, Attacker, UnitVirus) },
			action:   AttackAction{Player: Attacker, From: NewCoord(2, 2), Target: NewCoord(2, 3)},
			expected: ErrNoTarget,
		},
		{
			name: "friendly target",
			setup: func(b *Board) {
				place(b, 2, 2, Attacker, UnitVirus)
				place(b, 2, 3, Attacker, UnitProgram)
			},
			action:   AttackAction{Player: Attacker, From: NewCoord(2, 2), Target: NewCoord(2, 3)},
			expected: ErrTargetIsFriendly,
		},
		{
			name: "diagonal target",
			setup: func(b *Board) {
				place(b, 2, 2, Attacker, UnitVirus)
				place(b, 3, 3, Defender, UnitProgram)
			},
			action:   AttackAction{Player: Attacker, From: NewCoord(2, 2), Target: NewCoord(3, 3)},
			expected: ErrNotAdjacent,
		},
		{
			name: "engaged unit can still attack",
			setup: func(b *Board) {
				place(b, 2, 2, Attacker, UnitAI)
				place(b, 2, 3, Defender, UnitVirus)
			},
			action:   AttackAction{Player: Attacker, From: NewCoord(2, 2), Target: NewCoord(2, 3)},
			expected: nil,
		},
		{
			name: "attack ignores direction restriction",
			setup: func(b *Board) {
				place(b, 2, 2, Attacker, UnitProgram)
				place(b, 3, 2, Defender, UnitVirus)
			},
			action:   AttackAction{Player: Attacker, From: NewCoord(2, 2), Target: NewCoord(3, 2)},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard(5)
			tt.setup(b)
			err := tt.action.Validate(b)
			if tt.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.expected)
			}
		})
	}
}

func TestRepairValidate(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(b *Board)
		action   RepairAction
		expected error
	}{
		{
			name: "tech repairs wounded AI",
			setup: func(b *Board) {
				place(b, 2, 2, Defender, UnitTech)
				place(b, 2, 3, Defender, UnitAI).Health = 5
			},
			action:   RepairAction{Player: Defender, From: NewCoord(2, 2), Target: NewCoord(2, 3)},
			expected: nil,
		},
		{
			name: "AI repairs wounded virus",
			setup: func(b *Board) {
				place(b, 2, 2, Attacker, UnitAI)
				place(b, 1, 2, Attacker, UnitVirus).Health = 4
			},
			action:   RepairAction{Player: Attacker, From: NewCoord(2, 2), Target: NewCoord(1, 2)},
			expected: nil,
		},
		{
			name: "enemy target",
			setup: func(b *Board) {
				place(b, 2, 2, Defender, UnitTech)
				place(b, 2, 3, Attacker, UnitAI).Health = 5
			},
			action:   RepairAction{Player: Defender, From: NewCoord(2, 2), Target: NewCoord(2, 3)},
			expected: ErrTargetIsEnemy,
		},
		{
			name: "virus cannot repair anything",
			setup: func(b *Board) {
				place(b, 2, 2, Attacker, UnitVirus)
				place(b, 2, 3, Attacker, UnitProgram).Health = 5
			},
			action:   RepairAction{Player: Attacker, From: NewCoord(2, 2), Target: NewCoord(2, 3)},
			expected: ErrCannotRepair,
		},
		{
			name: "AI cannot repair program",
			setup: func(b *Board) {
				place(b, 2, 2, Attacker, UnitAI)
				place(b, 1, 2, Attacker, UnitProgram).Health = 5
			},
			action:   RepairAction{Player: Attacker, From: NewCoord(2, 2), Target: NewCoord(1, 2)},
			expected: ErrCannotRepair,
		},
		{
			name: "target already at full health",
			setup: func(b *Board) {
				place(b, 2, 2, Defender, UnitTech)
				place(b, 2, 3, Defender, UnitAI)
			},
			action:   RepairAction{Player: Defender, From: NewCoord(2, 2), Target: NewCoord(2, 3)},
			expected: ErrTargetFullHealth,
		},
		{
			name: "no target",
			setup: func(b *Board) {
				place(b, 2, 2, Defender, UnitTech)
			},
			action:   RepairAction{Player: Defender, From: NewCoord(2, 2), Target: NewCoord(2, 3)},
			expected: ErrNoTarget,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard(5)
			tt.setup(b)
			err := tt.action.Validate(b)
			if tt.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.expected)
			}
		})
	}
}

func TestSelfDestructValidate(t *testing.T) {
	b := NewBoard(5)
	place(b, 2, 2, Attacker, UnitProgram)
	place(b, 2, 3, Defender, UnitVirus)

	t.Run("own unit always legal", func(t *testing.T) {
		a := SelfDestructAction{Player: Attacker, At: NewCoord(2, 2)}
		assert.NoError(t, a.Validate(b))
	})

	t.Run("engaged unit still legal", func(t *testing.T) {
		// The program is pinned for movement but may still self-destruct.
		require.True(t, b.Engaged(NewCoord(2, 2), Attacker))
		a := SelfDestructAction{Player: Attacker, At: NewCoord(2, 2)}
		assert.NoError(t, a.Validate(b))
	})

	t.Run("enemy unit", func(t *testing.T) {
		a := SelfDestructAction{Player: Attacker, At: NewCoord(2, 3)}
		assert.ErrorIs(t, a.Validate(b), ErrNotOwned)
	})

	t.Run("empty cell", func(t *testing.T) {
		a := SelfDestructAction{Player: Attacker, At: NewCoord(0, 0)}
		assert.ErrorIs(t, a.Validate(b), ErrNoUnit)
	})
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "move C2 C3",
		MoveAction{Player: Attacker, From: NewCoord(2, 2), To: NewCoord(2, 3)}.String())
	assert.Equal(t, "attack B1 B2",
		AttackAction{Player: Defender, From: NewCoord(1, 1), Target: NewCoord(1, 2)}.String())
	assert.Equal(t, "repair A0 A1",
		RepairAction{Player: Defender, From: NewCoord(0, 0), Target: NewCoord(0, 1)}.String())
	assert.Equal(t, "self-destruct E4",
		SelfDestructAction{Player: Attacker, At: NewCoord(4, 4)}.String())
}
