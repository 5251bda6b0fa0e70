package tree

import (
	"testing"

	"github.com/sqwxl/seki/board"
	"github.com/sqwxl/seki/move"
)

// countingApply is a stand-in for gameengine's real rules-checked apply: it
// ignores legality and just tallies how many turns of each stone have been
// replayed, so tests can assert on observable state without pulling in the
// rules package.
func countingApply(s State, t move.Turn) (State, error) {
	next := s.Clone()
	next.Captures[t.Stone]++
	next.TurnStone = t.Stone.Opposite()
	return next, nil
}

func newTestTree(cacheSize int) *Tree {
	root := State{
		Board:    board.New(9, 9),
		Captures: map[board.Stone]int{board.Black: 0, board.White: 0},
		History:  map[uint64]bool{},
		TurnStone: board.Black,
	}
	return New(root, countingApply, cacheSize)
}

func TestAppendAndState(t *testing.T) {
	tr := newTestTree(8)
	id, reused := tr.Append(move.Turn{Kind: move.Play, Stone: board.Black, Point: board.Point{Col: 2, Row: 2}})
	if reused {
		t.Fatalf("first append should not be a reuse")
	}
	s, err := tr.State()
	if err != nil {
		t.Fatalf("State: %v", err)
	}
	if s.Captures[board.Black] != 1 {
		t.Errorf("captures[black] = %d, want 1", s.Captures[board.Black])
	}
	if tr.CurrentNodeID() != id {
		t.Errorf("cursor = %d, want %d", tr.CurrentNodeID(), id)
	}
}

func TestAppendReusesMatchingChild(t *testing.T) {
	tr := newTestTree(8)
	turn := move.Turn{Kind: move.Play, Stone: board.Black, Point: board.Point{Col: 2, Row: 2}}
	id1, _ := tr.Append(turn)
	_, _ = tr.Back()
	id2, reused := tr.Append(turn)
	if !reused {
		t.Fatalf("expected second append of the same turn to reuse the child")
	}
	if id1 != id2 {
		t.Errorf("ids differ: %d vs %d", id1, id2)
	}
	if tr.NodeCount() != 1 {
		t.Errorf("node count = %d, want 1 (no duplicate created)", tr.NodeCount())
	}
}

func TestBackAndForward(t *testing.T) {
	tr := newTestTree(8)
	tr.Append(move.Turn{Kind: move.Play, Stone: board.Black, Point: board.Point{Col: 1, Row: 1}})
	tr.Append(move.Turn{Kind: move.Play, Stone: board.White, Point: board.Point{Col: 2, Row: 2}})

	if _, err := tr.Back(); err != nil {
		t.Fatalf("Back: %v", err)
	}
	s, err := tr.State()
	if err != nil {
		t.Fatalf("State: %v", err)
	}
	if s.Captures[board.Black] != 1 || s.Captures[board.White] != 0 {
		t.Errorf("after Back, captures = %+v, want black=1 white=0", s.Captures)
	}

	if _, err := tr.Forward(); err != nil {
		t.Fatalf("Forward: %v", err)
	}
	s, _ = tr.State()
	if s.Captures[board.White] != 1 {
		t.Errorf("after Forward, captures[white] = %d, want 1", s.Captures[board.White])
	}
}

func TestBranching(t *testing.T) {
	tr := newTestTree(8)
	tr.Append(move.Turn{Kind: move.Play, Stone: board.Black, Point: board.Point{Col: 1, Row: 1}})
	mainChild := mustAppend(t, tr, move.Turn{Kind: move.Play, Stone: board.White, Point: board.Point{Col: 2, Row: 2}})

	tr.Back()
	altChild, reused := tr.Append(move.Turn{Kind: move.Play, Stone: board.White, Point: board.Point{Col: 3, Row: 3}})
	if reused {
		t.Fatalf("a differing turn must not reuse the existing child")
	}
	if altChild == mainChild {
		t.Fatalf("branch child got the same id as the main line child")
	}

	tr.Back()
	if _, err := tr.Forward(); err != nil {
		t.Fatalf("Forward: %v", err)
	}
	if tr.CurrentNodeID() != mainChild {
		t.Errorf("Forward() from a branch point should revisit the first (main line) child")
	}
}

func mustAppend(t *testing.T, tr *Tree, turn move.Turn) int {
	t.Helper()
	id, _ := tr.Append(turn)
	return id
}

func TestReplaceMoves(t *testing.T) {
	tr := newTestTree(8)
	tr.Append(move.Turn{Kind: move.Play, Stone: board.Black, Point: board.Point{Col: 1, Row: 1}})
	tr.Append(move.Turn{Kind: move.Play, Stone: board.White, Point: board.Point{Col: 2, Row: 2}})

	fresh := []move.Turn{
		{Kind: move.Play, Stone: board.Black, Point: board.Point{Col: 4, Row: 4}},
	}
	if err := tr.ReplaceMoves(fresh); err != nil {
		t.Fatalf("ReplaceMoves: %v", err)
	}
	if tr.NodeCount() != 1 {
		t.Errorf("node count after ReplaceMoves = %d, want 1", tr.NodeCount())
	}
}

func TestNavigateWithoutCache(t *testing.T) {
	tr := newTestTree(0) // memoization disabled
	tr.Append(move.Turn{Kind: move.Play, Stone: board.Black, Point: board.Point{Col: 1, Row: 1}})
	id2, _ := tr.Append(move.Turn{Kind: move.Play, Stone: board.White, Point: board.Point{Col: 2, Row: 2}})

	tr.ToStart()
	s, err := tr.NavigateTo(id2)
	if err != nil {
		t.Fatalf("NavigateTo: %v", err)
	}
	if s.Captures[board.Black] != 1 || s.Captures[board.White] != 1 {
		t.Errorf("captures = %+v, want black=1 white=1", s.Captures)
	}
}
