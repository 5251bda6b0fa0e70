package main

import "testing"

const (
	// totalMoves should change only when the canned games above change.
	// Non-functional changes (caching, tree layout) should not change it.
	repeatsForTest = 1
	totalMoves     = 24
)

func TestEvalAll(t *testing.T) {
	moves, _, err := evalAll(repeatsForTest)
	if err != nil {
		t.Fatal(err)
	}
	if moves != totalMoves {
		t.Fatalf("total moves = %d, want %d", moves, totalMoves)
	}
}
