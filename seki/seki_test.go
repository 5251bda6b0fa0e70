package seki

import (
	"testing"

	"github.com/sqwxl/seki/board"
	"github.com/sqwxl/seki/gameengine"
)

func TestNewAndPlay(t *testing.T) {
	g, err := New(9, 9, 0, 6.5, true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := g.TryPlay(board.Black, board.Point{Col: 2, Row: 2}); err != nil {
		t.Fatalf("TryPlay: %v", err)
	}
	if _, err := g.TryPlay(board.White, board.Point{Col: 6, Row: 6}); err != nil {
		t.Fatalf("TryPlay: %v", err)
	}

	s := g.Serialize()
	if s.Cols != 9 || s.Rows != 9 {
		t.Errorf("serialized dims = %dx%d, want 9x9", s.Cols, s.Rows)
	}
	if s.Board[2*9+2] != 1 {
		t.Errorf("board[2,2] = %d, want 1 (black)", s.Board[2*9+2])
	}
}

func TestTreeJSONRoundStructure(t *testing.T) {
	g, _ := New(9, 9, 0, 0, true)
	g.TryPlay(board.Black, board.Point{Col: 0, Row: 0})
	g.TryPlay(board.White, board.Point{Col: 1, Row: 0})

	wire := g.TreeJSON()
	if len(wire.Nodes) != 2 {
		t.Fatalf("nodes = %d, want 2", len(wire.Nodes))
	}
	if len(wire.Roots) != 1 || wire.Roots[0] != 0 {
		t.Fatalf("roots = %v, want [0]", wire.Roots)
	}
	if wire.Nodes[0].Parent != nil {
		t.Errorf("root node should have a nil parent")
	}
	if wire.Nodes[1].Parent == nil || *wire.Nodes[1].Parent != 0 {
		t.Errorf("second node parent = %v, want pointer to 0", wire.Nodes[1].Parent)
	}
	if wire.Nodes[0].Turn.Kind != "play" || wire.Nodes[0].Turn.Pos == nil {
		t.Errorf("first turn wire = %+v, want a play with a pos", wire.Nodes[0].Turn)
	}
}

func TestSaveLoadSGFRoundTrip(t *testing.T) {
	g, _ := New(9, 9, 0, 6.5, true)
	g.TryPlay(board.Black, board.Point{Col: 2, Row: 2})
	g.TryPlay(board.White, board.Point{Col: 3, Row: 3})
	g.TryPass(board.Black)

	out := g.SaveSGF()

	loaded, err := LoadSGF(out)
	if err != nil {
		t.Fatalf("LoadSGF: %v\nsgf: %s", err, out)
	}
	if loaded.Cols != 9 || loaded.Rows != 9 {
		t.Errorf("loaded dims = %dx%d, want 9x9", loaded.Cols, loaded.Rows)
	}
	if loaded.Board().Get(board.Point{Col: 2, Row: 2}) != board.Black {
		t.Errorf("loaded board missing black stone at (2,2)")
	}
	if loaded.Board().Get(board.Point{Col: 3, Row: 3}) != board.White {
		t.Errorf("loaded board missing white stone at (3,3)")
	}
	if loaded.Stage() != gameengine.Play {
		t.Errorf("loaded stage = %v, want Play", loaded.Stage())
	}
}

func TestSaveLoadSGFResignRoundTrip(t *testing.T) {
	g, _ := New(9, 9, 0, 6.5, true)
	g.TryPlay(board.Black, board.Point{Col: 2, Row: 2})
	g.TryResign(board.White)

	out := g.SaveSGF()

	loaded, err := LoadSGF(out)
	if err != nil {
		t.Fatalf("LoadSGF: %v\nsgf: %s", err, out)
	}
	if loaded.Stage() != gameengine.Done {
		t.Errorf("loaded stage = %v, want Done", loaded.Stage())
	}
	if loaded.Result() != "B+Resign" {
		t.Errorf("loaded result = %q, want B+Resign", loaded.Result())
	}

	node := loaded.Tree().Node(loaded.Tree().NodeCount() - 1)
	if node.Turn.Kind.String() != "resign" {
		t.Errorf("last turn kind = %v, want resign", node.Turn.Kind)
	}
}

func TestLoadSGFHandicap(t *testing.T) {
	src := []byte(`(;SZ[19]HA[4]KM[0.5]AB[dd][pd][dp][pp];W[qf])`)
	g, err := LoadSGF(src)
	if err != nil {
		t.Fatalf("LoadSGF: %v", err)
	}
	if g.CurrentTurnStone() != board.Black {
		t.Errorf("turn after the sole White move = %v, want Black", g.CurrentTurnStone())
	}
	if g.Board().Get(board.Point{Col: 3, Row: 3}) != board.Black {
		t.Errorf("expected a black handicap stone at (3,3)")
	}
}

func TestScoringAcceptReject(t *testing.T) {
	g, _ := New(5, 5, 0, 0.5, true)
	if _, err := g.TryPass(board.Black); err != nil {
		t.Fatalf("pass 1: %v", err)
	}
	if _, err := g.TryPass(board.White); err != nil {
		t.Fatalf("pass 2: %v", err)
	}
	if g.Stage() != gameengine.TerritoryReview {
		t.Fatalf("stage = %v, want TerritoryReview", g.Stage())
	}

	if err := g.RejectScoring(); err != nil {
		t.Fatalf("RejectScoring: %v", err)
	}
	if g.Stage() != gameengine.Play {
		t.Fatalf("stage after reject = %v, want Play", g.Stage())
	}

	if _, err := g.TryPass(board.Black); err != nil {
		t.Fatalf("pass 1 again: %v", err)
	}
	if _, err := g.TryPass(board.White); err != nil {
		t.Fatalf("pass 2 again: %v", err)
	}

	stage, err := g.AcceptScoring()
	if err != nil {
		t.Fatalf("AcceptScoring: %v", err)
	}
	if stage != gameengine.Done {
		t.Fatalf("stage after accept = %v, want Done", stage)
	}
	if g.Result() == "" {
		t.Errorf("expected a non-empty result string once Done")
	}
}
