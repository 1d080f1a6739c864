package core

// Board is a square grid of cells, each empty or holding exactly one unit.
// Cells are stored row-major; a nil entry is an empty cell.
type Board struct {
	Dim   int
	cells []*Unit
}

// NewBoard creates an empty board of the given dimension.
func NewBoard(dim int) *Board {
	return &Board{Dim: dim, cells: make([]*Unit, dim*dim)}
}

func (b *Board) idx(c Coord) int { return c.Row*b.Dim + c.Col }

// InBounds checks if a coordinate is within board boundaries.
func (b *Board) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < b.Dim && c.Col >= 0 && c.Col < b.Dim
}

// At returns the unit at the coordinate, or nil if the cell is empty or
// the coordinate is off the board.
func (b *Board) At(c Coord) *Unit {
	if !b.InBounds(c) {
		return nil
	}
	return b.cells[b.idx(c)]
}

// Place puts a unit on a cell. The coordinate must be in bounds.
func (b *Board) Place(c Coord, u *Unit) {
	b.cells[b.idx(c)] = u
}

// Remove clears a cell.
func (b *Board) Remove(c Coord) {
	b.cells[b.idx(c)] = nil
}

// Clone returns a deep copy of the board. Search explores clones so the
// authoritative board is never touched by speculative moves.
func (b *Board) Clone() *Board {
	nb := &Board{Dim: b.Dim, cells: make([]*Unit, len(b.cells))}
	for i, u := range b.cells {
		if u != nil {
			cp := *u
			nb.cells[i] = &cp
		}
	}
	return nb
}

// ForEachUnit visits every unit on the board in row-major order. This is
// the canonical traversal order for action enumeration.
func (b *Board) ForEachUnit(fn func(Coord, *Unit)) {
	for row := 0; row < b.Dim; row++ {
		for col := 0; col < b.Dim; col++ {
			c := Coord{Row: row, Col: col}
			if u := b.cells[b.idx(c)]; u != nil {
				fn(c, u)
			}
		}
	}
}

// Engaged reports whether the unit at c is orthogonally adjacent to an
// enemy of the given player.
func (b *Board) Engaged(c Coord, p Player) bool {
	for _, n := range c.Neighbors() {
		if u := b.At(n); u != nil && u.Owner != p {
			return true
		}
	}
	return false
}

// HasAI reports whether the player still has an AI unit on the board.
func (b *Board) HasAI(p Player) bool {
	for _, u := range b.cells {
		if u != nil && u.Owner == p && u.Type == UnitAI {
			return true
		}
	}
	return false
}

// UnitCount returns the number of the player's units of the given type.
func (b *Board) UnitCount(p Player, t UnitType) int {
	n := 0
	for _, u := range b.cells {
		if u != nil && u.Owner == p && u.Type == t {
			n++
		}
	}
	return n
}
