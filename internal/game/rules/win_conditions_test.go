package rules

import (
	"testing"

	"github.com/dianaoana1/COMP472-Warzone/internal/game/core"
	"github.com/dianaoana1/COMP472-Warzone/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestWinConditionChecker_Check(t *testing.T) {
	tests := []struct {
		name     string
		board    *core.Board
		turn     int
		timeout  TimeoutPolicy
		expected Verdict
	}{
		{
			name:     "both AIs alive mid-game",
			board:    testutil.DuelBoard(5),
			turn:     10,
			timeout:  TimeoutDefenderWins,
			expected: Verdict{},
		},
		{
			name: "defender AI destroyed",
			board: testutil.BoardWith(5,
				testutil.Placement{At: core.NewCoord(4, 4), Owner: core.Attacker, Type: core.UnitAI},
			),
			turn:     10,
			timeout:  TimeoutDefenderWins,
			expected: Verdict{Over: true, Winner: core.Attacker},
		},
		{
			name: "attacker AI destroyed",
			board: testutil.BoardWith(5,
				testutil.Placement{At: core.NewCoord(0, 0), Owner: core.Defender, Type: core.UnitAI},
			),
			turn:     10,
			timeout:  TimeoutDefenderWins,
			expected: Verdict{Over: true, Winner: core.Defender},
		},
		{
			name:     "both AIs destroyed is a draw",
			board:    testutil.EmptyBoard(5),
			turn:     10,
			timeout:  TimeoutDefenderWins,
			expected: Verdict{Over: true, Draw: true},
		},
		{
			name:     "turn limit favors defender",
			board:    testutil.DuelBoard(5),
			turn:     100,
			timeout:  TimeoutDefenderWins,
			expected: Verdict{Over: true, Winner: core.Defender},
		},
		{
			name:     "turn limit draws under draw policy",
			board:    testutil.DuelBoard(5),
			turn:     100,
			timeout:  TimeoutDraw,
			expected: Verdict{Over: true, Draw: true},
		},
		{
			name: "AI loss beats turn limit",
			board: testutil.BoardWith(5,
				testutil.Placement{At: core.NewCoord(4, 4), Owner: core.Attacker, Type: core.UnitAI},
			),
			turn:     100,
			timeout:  TimeoutDefenderWins,
			expected: Verdict{Over: true, Winner: core.Attacker},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wc := NewWinConditionChecker(testutil.NopLogger(), 100, tt.timeout)
			assert.Equal(t, tt.expected, wc.Check(tt.board, tt.turn))
		})
	}
}

func TestTerminalWinner(t *testing.T) {
	t.Run("both alive", func(t *testing.T) {
		_, over := TerminalWinner(testutil.DuelBoard(5))
		assert.False(t, over)
	})

	t.Run("attacker AI gone", func(t *testing.T) {
		b := testutil.BoardWith(5,
			testutil.Placement{At: core.NewCoord(0, 0), Owner: core.Defender, Type: core.UnitAI},
		)
		winner, over := TerminalWinner(b)
		assert.True(t, over)
		assert.Equal(t, core.Defender, winner)
	})

	t.Run("defender AI gone", func(t *testing.T) {
		b := testutil.BoardWith(5,
			testutil.Placement{At: core.NewCoord(4, 4), Owner: core.Attacker, Type: core.UnitAI},
		)
		winner, over := TerminalWinner(b)
		assert.True(t, over)
		assert.Equal(t, core.Attacker, winner)
	})

	t.Run("both gone is not a win for either", func(t *testing.T) {
		_, over := TerminalWinner(testutil.EmptyBoard(5))
		assert.False(t, over)
	})
}
