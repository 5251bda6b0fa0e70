package sgf

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sqwxl/seki/board"
	"github.com/sqwxl/seki/move"
)

// Write renders info and the move tree rooted at root as SGF text (spec
// §4.5 "Writer"). The single child of a node continues the same sequence
// without opening a new variation group; two or more children each open
// their own `(;…)` group, matching the reader's branch semantics exactly.
func Write(info *GameInfo, root *Node) []byte {
	var sb strings.Builder
	sb.WriteByte('(')
	writeNode(&sb, info, root, true)
	sb.WriteByte(')')
	return []byte(sb.String())
}

func writeNode(sb *strings.Builder, info *GameInfo, n *Node, isRoot bool) {
	sb.WriteByte(';')
	if isRoot {
		writeRootProps(sb, info)
	} else {
		writeMoveProps(sb, n)
	}

	switch len(n.Children) {
	case 0:
		return
	case 1:
		writeNode(sb, info, n.Children[0], false)
	default:
		for _, child := range n.Children {
			sb.WriteByte('(')
			writeNode(sb, info, child, false)
			sb.WriteByte(')')
		}
	}
}

func writeRootProps(sb *strings.Builder, info *GameInfo) {
	if info.Cols == info.Rows {
		fmt.Fprintf(sb, "SZ[%d]", info.Cols)
	} else {
		fmt.Fprintf(sb, "SZ[%d:%d]", info.Cols, info.Rows)
	}
	if info.Handicap >= 2 {
		fmt.Fprintf(sb, "HA[%d]", info.Handicap)
	}
	fmt.Fprintf(sb, "KM[%s]", formatKomi(info.Komi))
	for _, p := range info.Black {
		fmt.Fprintf(sb, "AB[%s]", formatCoord(p))
	}
	for _, p := range info.White {
		fmt.Fprintf(sb, "AW[%s]", formatCoord(p))
	}
}

func writeMoveProps(sb *strings.Builder, n *Node) {
	if n.Turn == nil {
		return
	}
	tag := "B"
	if n.Turn.Stone == board.White {
		tag = "W"
	}
	switch n.Turn.Kind {
	case move.Play:
		fmt.Fprintf(sb, "%s[%s]", tag, formatCoord(n.Turn.Point))
	case move.Resign:
		// RS marks a resignation as distinct from a Pass; a reader that
		// doesn't recognize RS (spec §4.5 "unknown properties are ignored")
		// degrades gracefully to reading this node as a Pass.
		fmt.Fprintf(sb, "%s[]RS[]", tag)
	default:
		fmt.Fprintf(sb, "%s[]", tag)
	}
}

func formatCoord(p board.Point) string {
	return string([]byte{byte('a' + p.Col), byte('a' + p.Row)})
}

func formatKomi(k float64) string {
	s := strconv.FormatFloat(k, 'f', -1, 64)
	return s
}
