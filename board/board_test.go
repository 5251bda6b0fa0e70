package board

import "testing"

func TestGetSetOutOfBounds(t *testing.T) {
	b := New(9, 9)
	if got := b.Get(Point{-1, 0}); got != Empty {
		t.Errorf("Get off-board = %v, want Empty", got)
	}
	if b.InBounds(Point{9, 0}) {
		t.Errorf("InBounds(9,0) on a 9x9 board = true, want false")
	}
}

func TestNeighborsCorner(t *testing.T) {
	b := New(9, 9)
	ns := b.Neighbors(Point{0, 0})
	if len(ns) != 2 {
		t.Fatalf("Neighbors(corner) = %v, want 2 points", ns)
	}
}

func TestNeighborsCenter(t *testing.T) {
	b := New(9, 9)
	ns := b.Neighbors(Point{4, 4})
	if len(ns) != 4 {
		t.Fatalf("Neighbors(center) = %v, want 4 points", ns)
	}
}

func TestChainAtEmpty(t *testing.T) {
	b := New(9, 9)
	c := b.ChainAt(Point{0, 0})
	if len(c.Stones) != 0 {
		t.Errorf("ChainAt empty point returned %d stones, want 0", len(c.Stones))
	}
}

func TestChainAndLiberties(t *testing.T) {
	b := New(9, 9)
	b.set(Point{4, 4}, Black)
	b.set(Point{4, 5}, Black)
	c := b.ChainAt(Point{4, 4})
	if len(c.Stones) != 2 {
		t.Fatalf("chain size = %d, want 2", len(c.Stones))
	}
	// (4,4) and (4,5) together have 6 distinct liberties on an open board.
	if len(c.Liberties) != 6 {
		t.Errorf("liberties = %d, want 6", len(c.Liberties))
	}
}

// TestPlaySimpleCapture implements conformance scenario 1 from spec §8 at the
// board layer directly (surrounding a lone stone removes it).
func TestPlaySimpleCapture(t *testing.T) {
	b := New(9, 9)
	b.set(Point{4, 4}, Black)
	b.set(Point{3, 4}, White)
	b.set(Point{5, 4}, White)
	b.set(Point{4, 3}, White)

	next, captured := b.Play(White, Point{4, 5})
	if len(captured) != 1 || captured[0] != (Point{4, 4}) {
		t.Fatalf("captured = %v, want [(4,4)]", captured)
	}
	if next.Get(Point{4, 4}) != Empty {
		t.Errorf("captured point still occupied: %v", next.Get(Point{4, 4}))
	}
	if next.Get(Point{4, 5}) != White {
		t.Errorf("placing stone missing after play")
	}
}

func TestPlayDoesNotMutateReceiver(t *testing.T) {
	b := New(9, 9)
	b.set(Point{4, 4}, Black)
	orig := b.Clone()

	b.Play(White, Point{3, 4})

	for i := range b.cells {
		if b.cells[i] != orig.cells[i] {
			t.Fatalf("Play mutated the receiver board at index %d", i)
		}
	}
}

func TestWouldBeSuicide(t *testing.T) {
	b := New(9, 9)
	// Surround (4,4) on all four sides with White so Black there has none.
	b.set(Point{3, 4}, White)
	b.set(Point{5, 4}, White)
	b.set(Point{4, 3}, White)
	b.set(Point{4, 5}, White)

	next, captured := b.Play(Black, Point{4, 4})
	if len(captured) != 0 {
		t.Fatalf("expected no captures, got %v", captured)
	}
	if !next.WouldBeSuicide(Point{4, 4}) {
		t.Errorf("expected suicide at fully surrounded point")
	}
}
