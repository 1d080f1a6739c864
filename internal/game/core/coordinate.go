package core

import (
	"fmt"
	"strings"
)

// Coord represents a position on the game board as a row/column pair.
// Rows are displayed as letters (A, B, C, ...) and columns as digits,
// so Coord{Row: 3, Col: 2} prints as "D2".
type Coord struct {
	Row, Col int
}

// NewCoord creates a new coordinate with the given row and column.
func NewCoord(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// CoordFromString parses a coordinate like "D2" or "b4". Returns false if
// the input is not a letter followed by a digit within the supported range.
func CoordFromString(s string) (Coord, bool) {
	s = strings.TrimSpace(s)
	if len(s) != 2 {
		return Coord{}, false
	}
	row := strings.IndexByte("ABCDEFGHIJKLMNOPQRSTUVWXYZ", s[0]&^0x20)
	col := strings.IndexByte("0123456789abcdef", s[1])
	if row < 0 || col < 0 {
		return Coord{}, false
	}
	return Coord{Row: row, Col: col}, true
}

// IsAdjacentTo checks if this coordinate is orthogonally adjacent to another.
func (c Coord) IsAdjacentTo(other Coord) bool {
	dr := c.Row - other.Row
	dc := c.Col - other.Col
	return (dr == 0 && (dc == 1 || dc == -1)) || (dc == 0 && (dr == 1 || dr == -1))
}

// Neighbors returns the four orthogonal neighbors in the fixed enumeration
// order up, left, down, right. Action generation and search tie-breaking
// both depend on this order staying stable.
func (c Coord) Neighbors() [4]Coord {
	return [4]Coord{
		{Row: c.Row - 1, Col: c.Col}, // up
		{Row: c.Row, Col: c.Col - 1}, // left
		{Row: c.Row + 1, Col: c.Col}, // down
		{Row: c.Row, Col: c.Col + 1}, // right
	}
}

// Surrounding returns the eight cells of the box around this coordinate,
// row-major, excluding the coordinate itself. Used for self-destruct blasts.
func (c Coord) Surrounding() []Coord {
	out := make([]Coord, 0, 8)
	for row := c.Row - 1; row <= c.Row+1; row++ {
		for col := c.Col - 1; col <= c.Col+1; col++ {
			if row == c.Row && col == c.Col {
				continue
			}
			out = append(out, Coord{Row: row, Col: col})
		}
	}
	return out
}

// Equal checks if two coordinates are equal.
func (c Coord) Equal(other Coord) bool {
	return c.Row == other.Row && c.Col == other.Col
}

// String returns the board notation for this coordinate, e.g. "D2".
// Coordinates outside the printable range fall back to "(row,col)".
func (c Coord) String() string {
	if c.Row < 0 || c.Row >= 26 || c.Col < 0 || c.Col >= 16 {
		return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}
	return fmt.Sprintf("%c%c", 'A'+c.Row, "0123456789abcdef"[c.Col])
}
