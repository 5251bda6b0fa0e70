// Package sgf parses and writes the Smart Game Format subset needed to
// round-trip games produced by this engine (spec §4.5): SZ, HA, KM, AB, AW,
// B, W, and nested `(;…)` variations.
//
// The teacher's own notation codec (notation/epd.go) is generated by goyacc
// from a .y grammar that isn't present in the retrieval pack, so this parser
// is hand-rolled recursive descent instead — the grammar here is far smaller
// than EPD's anyway (a parenthesised tree of bracketed properties, no
// expression language).
package sgf

import (
	"fmt"

	"github.com/sqwxl/seki/board"
	"github.com/sqwxl/seki/move"
)

// GameInfo holds the root-node setup properties (spec §4.5 "Root node").
type GameInfo struct {
	Cols, Rows int
	Handicap   int
	Komi       float64
	Black      []board.Point // AB: initial black stones, handicap stones included
	White      []board.Point // AW: initial white stones
}

// Node is one point in the parsed game tree: a turn (nil only for the
// synthetic root) plus its children in file order. Multiple children mean a
// variation branch, matching tree.Node's shape one-for-one.
type Node struct {
	Turn     *move.Turn
	Children []*Node
}

// ParseError carries the byte offset of a malformed parse (spec §4.5
// "malformed structure yields a parse error with a byte offset").
type ParseError struct {
	Offset int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("sgf: parse error at byte %d: %s", e.Offset, e.Reason)
}
