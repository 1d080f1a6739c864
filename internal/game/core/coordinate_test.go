package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordString(t *testing.T) {
	tests := []struct {
		name     string
		coord    Coord
		expected string
	}{
		{"origin", Coord{Row: 0, Col: 0}, "A0"},
		{"middle", Coord{Row: 3, Col: 2}, "D2"},
		{"bottom right of 5x5", Coord{Row: 4, Col: 4}, "E4"},
		{"wide column uses hex digit", Coord{Row: 1, Col: 10}, "Ba"},
		{"negative row falls back", Coord{Row: -1, Col: 0}, "(-1,0)"},
		{"column out of range falls back", Coord{Row: 0, Col: 16}, "(0,16)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.coord.String())
		})
	}
}

func TestCoordFromString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Coord
		ok       bool
	}{
		{"uppercase", "D2", Coord{Row: 3, Col: 2}, true},
		{"lowercase", "b4", Coord{Row: 1, Col: 4}, true},
		{"surrounding whitespace", "  C1 ", Coord{Row: 2, Col: 1}, true},
		{"empty", "", Coord{}, false},
		{"single char", "D", Coord{}, false},
		{"digit first", "2D", Coord{}, false},
		{"too long", "D12", Coord{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := CoordFromString(tt.input)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.expected, c)
			}
		})
	}
}

func TestCoordFromString_RoundTripsWithString(t *testing.T) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			c := NewCoord(row, col)
			parsed, ok := CoordFromString(c.String())
			require.True(t, ok, "parsing %q", c.String())
			assert.Equal(t, c, parsed)
		}
	}
}

func TestIsAdjacentTo(t *testing.T) {
	center := NewCoord(2, 2)

	tests := []struct {
		name     string
		other    Coord
		expected bool
	}{
		{"up", NewCoord(1, 2), true},
		{"down", NewCoord(3, 2), true},
		{"left", NewCoord(2, 1), true},
		{"right", NewCoord(2, 3), true},
		{"self", NewCoord(2, 2), false},
		{"diagonal", NewCoord(1, 1), false},
		{"two cells away", NewCoord(0, 2), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, center.IsAdjacentTo(tt.other))
			assert.Equal(t, tt.expected, tt.other.IsAdjacentTo(center), "adjacency must be symmetric")
		})
	}
}

func TestNeighbors_OrderIsUpLeftDownRight(t *testing.T) {
	n := NewCoord(2, 2).Neighbors()

	expected := [4]Coord{
		{Row: 1, Col: 2}, // up
		{Row: 2, Col: 1}, // left
		{Row: 3, Col: 2}, // down
		{Row: 2, Col: 3}, // right
	}
	assert.Equal(t, expected, n)
}

func TestSurrounding_ReturnsEightCellsRowMajor(t *testing.T) {
	cells := NewCoord(1, 1).Surrounding()

	expected := []Coord{
		{0, 0}, {0, 1}, {0, 2},
		{1, 0}, {1, 2},
		{2, 0}, {2, 1}, {2, 2},
	}
	assert.Equal(t, expected, cells)
}

func TestSurrounding_CornerIncludesOffBoardCells(t *testing.T) {
	// Surrounding is pure geometry; bounds filtering is the board's job.
	cells := NewCoord(0, 0).Surrounding()
	assert.Len(t, cells, 8)
	assert.Contains(t, cells, Coord{Row: -1, Col: -1})
}
