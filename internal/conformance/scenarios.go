// Package conformance holds the concrete post-condition scenarios a
// conformant implementation must satisfy, as a data table in the spirit of
// engine/test_data.go's table of known games, run by a perft-style verifier
// in scenarios_test.go.
package conformance

import (
	"errors"
	"fmt"

	"github.com/sqwxl/seki/board"
	"github.com/sqwxl/seki/gameengine"
	"github.com/sqwxl/seki/seki"
)

// Scenario is one entry in the table: a name and a self-contained check that
// drives a fresh Game and returns an error describing the first
// post-condition violated, or nil if every assertion held.
type Scenario struct {
	Name string
	Run  func() error
}

// Scenarios is the full table of scenarios.
var Scenarios = []Scenario{
	{"simple capture", scenarioSimpleCapture},
	{"ko", scenarioKo},
	{"suicide", scenarioSuicide},
	{"two-pass termination", scenarioTwoPassTermination},
	{"handicap setup", scenarioHandicapSetup},
	{"tree branching", scenarioTreeBranching},
}

func scenarioSimpleCapture() error {
	g, err := seki.New(9, 9, 0, 0, true)
	if err != nil {
		return err
	}
	plays := []struct {
		stone board.Stone
		p     board.Point
	}{
		{board.Black, board.Point{Col: 4, Row: 4}},
		{board.White, board.Point{Col: 3, Row: 4}},
		{board.Black, board.Point{Col: 0, Row: 0}},
		{board.White, board.Point{Col: 5, Row: 4}},
		{board.Black, board.Point{Col: 0, Row: 1}},
		{board.White, board.Point{Col: 4, Row: 3}},
		{board.Black, board.Point{Col: 0, Row: 2}},
		{board.White, board.Point{Col: 4, Row: 5}},
	}
	for _, mv := range plays {
		if _, err := g.TryPlay(mv.stone, mv.p); err != nil {
			return fmt.Errorf("play %v at %v: %w", mv.stone, mv.p, err)
		}
	}

	_, white := g.Captures()
	if white != 1 {
		return fmt.Errorf("captures.white = %d, want 1", white)
	}
	if g.Board().Get(board.Point{Col: 4, Row: 4}) != board.Empty {
		return fmt.Errorf("board(4,4) = %v, want empty", g.Board().Get(board.Point{Col: 4, Row: 4}))
	}
	return nil
}

func scenarioKo() error {
	g, err := seki.New(5, 5, 0, 0, true)
	if err != nil {
		return err
	}
	setup := []struct {
		stone board.Stone
		p     board.Point
	}{
		{board.Black, board.Point{Col: 2, Row: 3}},
		{board.White, board.Point{Col: 1, Row: 3}},
		{board.Black, board.Point{Col: 1, Row: 2}},
		{board.White, board.Point{Col: 3, Row: 3}},
		{board.Black, board.Point{Col: 3, Row: 2}},
		{board.White, board.Point{Col: 2, Row: 4}},
		{board.Black, board.Point{Col: 2, Row: 1}},
	}
	for _, mv := range setup {
		if _, err := g.TryPlay(mv.stone, mv.p); err != nil {
			return fmt.Errorf("setup play %v at %v: %w", mv.stone, mv.p, err)
		}
	}

	if _, err := g.TryPlay(board.White, board.Point{Col: 2, Row: 2}); err != nil {
		return fmt.Errorf("White recapture at (2,2): %w", err)
	}
	if g.Board().Get(board.Point{Col: 2, Row: 3}) != board.Empty {
		return errors.New("expected Black stone at (2,3) to be captured")
	}

	_, err = g.TryPlay(board.Black, board.Point{Col: 2, Row: 3})
	if !errors.Is(err, seki.ErrKoViolation) {
		return fmt.Errorf("immediate Black recapture at (2,3): err = %v, want ErrKoViolation", err)
	}

	if _, err := g.TryPlay(board.Black, board.Point{Col: 0, Row: 0}); err != nil {
		return fmt.Errorf("Black plays elsewhere: %w", err)
	}
	if _, err := g.TryPlay(board.White, board.Point{Col: 0, Row: 4}); err != nil {
		return fmt.Errorf("White plays elsewhere: %w", err)
	}

	if _, err := g.TryPlay(board.Black, board.Point{Col: 2, Row: 3}); err != nil {
		return fmt.Errorf("Black recapture after the ko clears: %w", err)
	}
	if g.Board().Get(board.Point{Col: 2, Row: 2}) != board.Empty {
		return errors.New("expected the recapture to remove White's stone at (2,2)")
	}
	return nil
}

func scenarioSuicide() error {
	g, err := seki.New(9, 9, 0, 0, true)
	if err != nil {
		return err
	}
	whites := []board.Point{
		{Col: 3, Row: 4}, {Col: 5, Row: 4}, {Col: 4, Row: 3}, {Col: 4, Row: 5},
	}
	for i, p := range whites {
		if _, err := g.TryPlay(board.Black, board.Point{Col: 0, Row: i}); err != nil {
			return fmt.Errorf("setup Black elsewhere: %w", err)
		}
		if _, err := g.TryPlay(board.White, p); err != nil {
			return fmt.Errorf("setup White play at %v: %w", p, err)
		}
	}

	before := g.Board().Vector()
	_, err = g.TryPlay(board.Black, board.Point{Col: 4, Row: 4})
	if !errors.Is(err, seki.ErrSuicide) {
		return fmt.Errorf("Black play into a fully-surrounded point: err = %v, want ErrSuicide", err)
	}
	after := g.Board().Vector()
	for i := range before {
		if before[i] != after[i] {
			return errors.New("board mutated despite a rejected play")
		}
	}
	return nil
}

func scenarioTwoPassTermination() error {
	g, err := seki.New(9, 9, 0, 6.5, true)
	if err != nil {
		return err
	}
	if _, err := g.TryPlay(board.Black, board.Point{Col: 4, Row: 4}); err != nil {
		return fmt.Errorf("opening play: %w", err)
	}
	if _, err := g.TryPass(board.White); err != nil {
		return fmt.Errorf("White pass: %w", err)
	}
	stage, err := g.TryPass(board.Black)
	if err != nil {
		return fmt.Errorf("Black pass: %w", err)
	}
	if stage != gameengine.TerritoryReview {
		return fmt.Errorf("stage after two passes = %v, want TerritoryReview", stage)
	}
	if g.CurrentTurnStone() != board.Empty {
		return fmt.Errorf("current_turn_stone in TerritoryReview = %v, want nil/empty", g.CurrentTurnStone())
	}

	if _, err := g.TryPass(board.White); !errors.Is(err, seki.ErrGameOver) {
		return fmt.Errorf("pass while already in TerritoryReview: err = %v, want ErrGameOver", err)
	}
	return nil
}

func scenarioHandicapSetup() error {
	g, err := seki.New(19, 19, 4, 6.5, true)
	if err != nil {
		return err
	}
	// Before any move, stage is Unstarted, even though the handicap stones
	// are already placed and White is on the move (spec §8 scenario 5).
	if g.Stage() != gameengine.Unstarted {
		return fmt.Errorf("stage = %v, want Unstarted", g.Stage())
	}
	if g.CurrentTurnStone() != board.White {
		return fmt.Errorf("current turn stone = %v, want White", g.CurrentTurnStone())
	}
	want := []board.Point{{Col: 3, Row: 3}, {Col: 15, Row: 3}, {Col: 3, Row: 15}, {Col: 15, Row: 15}}
	for _, p := range want {
		if g.Board().Get(p) != board.Black {
			return fmt.Errorf("handicap point %v = %v, want Black", p, g.Board().Get(p))
		}
	}

	if _, err := g.TryPlay(board.White, board.Point{Col: 9, Row: 9}); err != nil {
		return fmt.Errorf("White's first move: %w", err)
	}
	if g.Stage() != gameengine.Play {
		return fmt.Errorf("stage after White's first move = %v, want Play", g.Stage())
	}
	return nil
}

func scenarioTreeBranching() error {
	g, err := seki.New(9, 9, 0, 0, true)
	if err != nil {
		return err
	}
	stone := board.Black
	for i := 0; i < 10; i++ {
		p := board.Point{Col: i % 9, Row: i / 9}
		if _, err := g.TryPlay(stone, p); err != nil {
			return fmt.Errorf("main line play %d at %v: %w", i, p, err)
		}
		stone = stone.Opposite()
	}

	if _, err := g.Tree().NavigateTo(4); err != nil {
		return fmt.Errorf("navigate to move 5: %w", err)
	}

	// Moves alternate B,W,B,W,...; move index 4 (the 5th move) was Black's,
	// so the branch at the cursor is White's to play.
	branchStone := board.White
	branchPoint := board.Point{Col: 8, Row: 1}
	if _, err := g.TryPlay(branchStone, branchPoint); err != nil {
		return fmt.Errorf("branch play: %w", err)
	}

	children := g.Tree().Node(4).Children
	if len(children) != 2 {
		return fmt.Errorf("move 5 has %d children, want 2", len(children))
	}

	if _, err := g.Tree().NavigateTo(4); err != nil {
		return err
	}
	if _, err := g.Tree().Forward(); err != nil {
		return err
	}
	if g.Tree().CurrentNodeID() != children[0] {
		return errors.New("forward() from move 5 should revisit the original first child")
	}
	return nil
}
