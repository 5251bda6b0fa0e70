// Package board implements the Go (Weiqi/Baduk) board: a fixed C×R grid of
// stones, chain/liberty discovery, and capture resolution.
//
// Board follows a clone-on-write convention: mutating operations return a new
// Board alongside whatever points they removed, leaving the receiver
// untouched. This keeps older positions (e.g. tree nodes further up the game
// tree) valid for replay and comparison.
package board

import (
	"fmt"
)

// Stone is one of {Black, White, Empty}. Black and White are opposites under
// negation, and Empty is the zero value, so a board can be serialized
// directly as a signed integer vector.
type Stone int8

const (
	White Stone = -1
	Empty Stone = 0
	Black Stone = 1
)

// Opposite returns the other color. The result is undefined for Empty.
func (s Stone) Opposite() Stone {
	return -s
}

func (s Stone) String() string {
	switch s {
	case Black:
		return "Black"
	case White:
		return "White"
	case Empty:
		return "Empty"
	default:
		return fmt.Sprintf("Stone(%d)", int8(s))
	}
}

// Point is a board coordinate, 0 ≤ Col < board.Cols, 0 ≤ Row < board.Rows.
type Point struct {
	Col, Row int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
}

// Board is an immutable-by-convention C×R grid of stones.
type Board struct {
	Cols, Rows int
	cells      []Stone // row-major, len == Cols*Rows
}

// New returns an empty board of the given dimensions. Both dimensions must be
// at least 2; New panics otherwise, since an Engine is expected to validate
// dimensions before ever constructing a Board.
func New(cols, rows int) *Board {
	if cols < 2 || rows < 2 {
		panic(fmt.Sprintf("board: invalid dimensions %dx%d", cols, rows))
	}
	return &Board{
		Cols:  cols,
		Rows:  rows,
		cells: make([]Stone, cols*rows),
	}
}

// index converts a Point to a flat index, or -1 if p is off-board.
func (b *Board) index(p Point) int {
	if p.Col < 0 || p.Col >= b.Cols || p.Row < 0 || p.Row >= b.Rows {
		return -1
	}
	return p.Row*b.Cols + p.Col
}

// InBounds reports whether p lies on the board.
func (b *Board) InBounds(p Point) bool {
	return b.index(p) >= 0
}

// Get returns the stone at p. Off-board points read as Empty.
func (b *Board) Get(p Point) Stone {
	i := b.index(p)
	if i < 0 {
		return Empty
	}
	return b.cells[i]
}

// set mutates the receiver in place; callers must only call this on a board
// they privately own (i.e. a just-cloned board), never on one already
// reachable from a Tree node or Engine snapshot.
func (b *Board) set(p Point, s Stone) {
	i := b.index(p)
	if i < 0 {
		panic(fmt.Sprintf("board: set out of bounds at %v", p))
	}
	b.cells[i] = s
}

// Remove clears the stone at p in place. Unlike Play, Remove does not clone
// or resolve captures; it exists for callers that already privately own a
// disposable board (territory's dead-stone removal) and need a direct
// mutator rather than the full play/capture
// pipeline. Callers must never call this on a board reachable from a Tree
// node or Engine snapshot.
func (b *Board) Remove(p Point) {
	b.set(p, Empty)
}

// Place sets the stone at p in place, with the same ownership restriction as
// Remove — for setup stones (SGF AB/AW) on a board nothing else
// has observed yet, where going through Play's capture-resolution pipeline
// would be redundant.
func (b *Board) Place(p Point, s Stone) {
	b.set(p, s)
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Stone, len(b.cells))
	copy(cells, b.cells)
	return &Board{Cols: b.Cols, Rows: b.Rows, cells: cells}
}

// Neighbors returns the up-to-four on-board points 4-adjacent to p.
func (b *Board) Neighbors(p Point) []Point {
	candidates := [4]Point{
		{p.Col - 1, p.Row},
		{p.Col + 1, p.Row},
		{p.Col, p.Row - 1},
		{p.Col, p.Row + 1},
	}
	out := make([]Point, 0, 4)
	for _, n := range candidates {
		if b.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Vector returns the board contents as a row-major signed vector, matching
// the wire format in the external serialization (§6): -1 white, 0 empty, +1
// black.
func (b *Board) Vector() []int8 {
	out := make([]int8, len(b.cells))
	for i, s := range b.cells {
		out[i] = int8(s)
	}
	return out
}
