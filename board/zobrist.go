// zobrist.go computes a 64-bit position fingerprint, used by the superko
// check (spec §4.2) to detect a whole-board repetition.
//
// The construction mirrors the teacher's engine/zobrist.go: a table of
// independent random uint64s, one per (point, stone) combination plus one per
// side-to-move, XORed together to form the position's hash. Unlike the
// teacher's fixed 64-square table, ours is sized to the board's Cols*Rows at
// construction time, since board size is a runtime parameter here rather
// than a chess constant.
package board

import "math/rand"

// Hasher holds the random tables for a given board size. One Hasher is
// created per Engine and shared across every Board value it produces, so
// fingerprints computed at different plies of the same game remain
// comparable.
type Hasher struct {
	cols, rows int
	stone      [][2]uint64 // stone[index][0]=black key, [1]=white key
	sideToMove [2]uint64   // keyed by keyFor, i.e. 0=Black, 1=White
}

// NewHasher builds the random tables for a cols×rows board. The seed is
// fixed (as in the teacher's zobrist.go, which seeds with rand.NewSource(1))
// so that fingerprints are reproducible across runs for the same board size,
// which is convenient for golden-file tests.
func NewHasher(cols, rows int) *Hasher {
	r := rand.New(rand.NewSource(1))
	h := &Hasher{
		cols:  cols,
		rows:  rows,
		stone: make([][2]uint64, cols*rows),
	}
	for i := range h.stone {
		h.stone[i][0] = rand64(r)
		h.stone[i][1] = rand64(r)
	}
	h.sideToMove[0] = rand64(r)
	h.sideToMove[1] = rand64(r)
	return h
}

func rand64(r *rand.Rand) uint64 {
	return uint64(r.Int63())<<32 ^ uint64(r.Int63())
}

func (h *Hasher) keyFor(s Stone) int {
	if s == Black {
		return 0
	}
	return 1
}

// Hash returns the fingerprint of b with sideToMove to play next. Two boards
// with identical contents and the same side to move always hash identically;
// this is the quantity compared against the superko history.
func (h *Hasher) Hash(b *Board, sideToMove Stone) uint64 {
	var sum uint64
	for i, s := range b.cells {
		if s == Empty {
			continue
		}
		sum ^= h.stone[i][h.keyFor(s)]
	}
	sum ^= h.sideToMove[h.keyFor(sideToMove)]
	return sum
}
