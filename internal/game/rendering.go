package game

import (
	"fmt"
	"strings"

	"github.com/dianaoana1/COMP472-Warzone/internal/game/core"
)

// Render returns the text representation of a board: lettered rows,
// numbered columns, units as owner/type/health triples.
//
//	     0    1    2    3    4
//	A:  dA9  dT9  dF9   .    .
func Render(b *core.Board) string {
	var sb strings.Builder

	sb.WriteString("    ")
	for col := 0; col < b.Dim; col++ {
		fmt.Fprintf(&sb, "%-5d", col)
	}
	sb.WriteString("\n")

	for row := 0; row < b.Dim; row++ {
		fmt.Fprintf(&sb, "%c: ", 'A'+row)
		for col := 0; col < b.Dim; col++ {
			if u := b.At(core.NewCoord(row, col)); u != nil {
				fmt.Fprintf(&sb, " %s ", u)
			} else {
				sb.WriteString("  .  ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// BoardString renders the engine's current board.
func (e *Engine) BoardString() string {
	return Render(e.gs.Board)
}
