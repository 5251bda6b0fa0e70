// Package tree implements the persistent game tree (spec §4.4): an arena of
// nodes, each a completed turn, supporting a main line plus branches,
// navigation, and a cursor. The arena uses integer indices instead of
// pointers (spec §9 "Cyclic graphs"), the same discipline the teacher uses
// for its own flat, allocation-free slice-backed structures.
package tree

import (
	"github.com/sqwxl/seki/board"
	"github.com/sqwxl/seki/rules"
)

// State is the reconstructable Engine-level position at a given tree node:
// board, capture tallies, ko marker, and the superko fingerprint history.
// Tree never interprets State; it only caches and replays it via the Apply
// function supplied at construction, so this package stays independent of
// gameengine's rules (spec §4.4 "Replay-from-root").
// Stage mirrors gameengine.Stage's underlying values without importing
// gameengine (which imports tree); gameengine casts at the boundary.
type State struct {
	Board     *board.Board
	Captures  map[board.Stone]int
	Ko        *rules.Ko
	History   map[uint64]bool
	TurnStone board.Stone
	Stage     int
	Result    string
}

// Clone returns a deep copy of s, since Tree hands out cached states that
// must not be mutated by callers or by subsequent replay.
func (s State) Clone() State {
	out := State{
		Board:     s.Board.Clone(),
		Captures:  make(map[board.Stone]int, len(s.Captures)),
		History:   make(map[uint64]bool, len(s.History)),
		TurnStone: s.TurnStone,
		Stage:     s.Stage,
		Result:    s.Result,
	}
	for k, v := range s.Captures {
		out.Captures[k] = v
	}
	for k, v := range s.History {
		out.History[k] = v
	}
	if s.Ko != nil {
		ko := *s.Ko
		out.Ko = &ko
	}
	return out
}
