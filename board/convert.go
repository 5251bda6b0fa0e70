// convert.go renders a board as a human-readable ASCII grid, the way the
// teacher's Position.PrettyPrint renders a chessboard — used by the
// development CLI (cmd/sekitool) and by test failure output, never by the
// engine itself (spec §5: the engine performs no I/O).
package board

import (
	"strings"
)

// PrettyPrint returns a multi-line ASCII rendering of the board, row 0 at
// the top (matching the SGF coordinate convention described in spec §6).
func (b *Board) PrettyPrint() string {
	var sb strings.Builder
	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			switch b.Get(Point{col, row}) {
			case Black:
				sb.WriteByte('X')
			case White:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b *Board) String() string {
	return b.PrettyPrint()
}
