package rules

import (
	"errors"
	"testing"

	"github.com/sqwxl/seki/board"
)

func TestCheckNotOnBoard(t *testing.T) {
	b := board.New(9, 9)
	err := Check(b, board.Black, board.Point{-1, 0}, nil, nil, nil, false)
	if !errors.Is(err, ErrNotOnBoard) {
		t.Fatalf("err = %v, want ErrNotOnBoard", err)
	}
}

func TestCheckOverwrite(t *testing.T) {
	b := board.New(9, 9)
	b2, _ := b.Play(board.Black, board.Point{4, 4})
	err := Check(b2, board.White, board.Point{4, 4}, nil, nil, nil, false)
	if !errors.Is(err, ErrOverwrite) {
		t.Fatalf("err = %v, want ErrOverwrite", err)
	}
}

func TestCheckSuicide(t *testing.T) {
	b := board.New(9, 9)
	b, _ = b.Play(board.White, board.Point{3, 4})
	b, _ = b.Play(board.White, board.Point{5, 4})
	b, _ = b.Play(board.White, board.Point{4, 3})
	b, _ = b.Play(board.White, board.Point{4, 5})

	err := Check(b, board.Black, board.Point{4, 4}, nil, nil, nil, false)
	if !errors.Is(err, ErrSuicide) {
		t.Fatalf("err = %v, want ErrSuicide", err)
	}
}

func TestCheckSuicideButCaptures(t *testing.T) {
	// Placing into a fully surrounded point is legal if it captures.
	b := board.New(9, 9)
	b, _ = b.Play(board.Black, board.Point{3, 4})
	b, _ = b.Play(board.Black, board.Point{5, 4})
	b, _ = b.Play(board.Black, board.Point{4, 3})
	b, _ = b.Play(board.White, board.Point{4, 4}) // lone white stone, 1 liberty at (4,5)
	// White on (4,5)'s other three sides, so Black there has no liberty
	// unless the capture of (4,4) opens one.
	b, _ = b.Play(board.White, board.Point{3, 5})
	b, _ = b.Play(board.White, board.Point{5, 5})
	b, _ = b.Play(board.White, board.Point{4, 6})

	err := Check(b, board.Black, board.Point{4, 5}, nil, nil, nil, false)
	if err != nil {
		t.Fatalf("err = %v, want nil (capturing move is legal)", err)
	}
}

func TestCheckKoViolation(t *testing.T) {
	b := board.New(9, 9)
	ko := &Ko{Point: board.Point{2, 3}, Illegal: board.Black}
	err := Check(b, board.Black, board.Point{2, 3}, ko, nil, nil, false)
	if !errors.Is(err, ErrKoViolation) {
		t.Fatalf("err = %v, want ErrKoViolation", err)
	}
	// White is not forbidden at the ko point.
	err = Check(b, board.White, board.Point{2, 3}, ko, nil, nil, false)
	if err != nil {
		t.Fatalf("white should be allowed at the ko point, got %v", err)
	}
}

// TestDetectKo builds the canonical ko diamond (spec §8 scenario 2): a lone
// Black stone with a single liberty, recaptured by a White stone that is
// itself left with a single liberty at the point just vacated.
func TestDetectKo(t *testing.T) {
	b := board.New(9, 9)
	b, _ = b.Play(board.Black, board.Point{4, 4})
	b, _ = b.Play(board.White, board.Point{3, 4})
	b, _ = b.Play(board.White, board.Point{5, 4})
	b, _ = b.Play(board.White, board.Point{4, 3})
	b, _ = b.Play(board.Black, board.Point{3, 5})
	b, _ = b.Play(board.Black, board.Point{5, 5})
	b, _ = b.Play(board.Black, board.Point{4, 6})

	next, captured := b.Play(board.White, board.Point{4, 5})
	if len(captured) != 1 || captured[0] != (board.Point{4, 4}) {
		t.Fatalf("captured = %v, want [(4,4)]", captured)
	}

	ko := DetectKo(next, board.White, board.Point{4, 5}, captured)
	if ko == nil {
		t.Fatalf("expected a ko marker, got nil")
	}
	if ko.Point != (board.Point{4, 4}) || ko.Illegal != board.Black {
		t.Errorf("ko = %+v, want {Point:(4,4) Illegal:Black}", ko)
	}
}

func TestDetectKoNoKoOnPlainCapture(t *testing.T) {
	// A capture that leaves the placing stone with more than one liberty is
	// not a ko.
	b := board.New(9, 9)
	b, _ = b.Play(board.Black, board.Point{4, 4})
	b, _ = b.Play(board.White, board.Point{3, 4})
	b, _ = b.Play(board.White, board.Point{5, 4})
	b, _ = b.Play(board.White, board.Point{4, 3})

	next, captured := b.Play(board.White, board.Point{4, 5})
	if ko := DetectKo(next, board.White, board.Point{4, 5}, captured); ko != nil {
		t.Errorf("expected no ko marker, got %+v", ko)
	}
}
