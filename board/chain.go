package board

// Chain is the maximal 4-connected group of same-colour stones reachable
// from a starting point, plus the set of empty points 4-adjacent to it (its
// liberties). Chains are never stored on the board; they are recomputed on
// demand, the way the teacher's engine recomputes attack sets rather than
// caching them (see engine/attack.go in the reference chess engine).
type Chain struct {
	Stones    []Point
	Liberties []Point
}

// ChainAt returns the chain through p and its liberties. If p is empty, both
// are nil.
func (b *Board) ChainAt(p Point) Chain {
	color := b.Get(p)
	if color == Empty {
		return Chain{}
	}

	visited := make(map[Point]bool)
	libSeen := make(map[Point]bool)
	var stones, liberties []Point

	stack := []Point{p}
	visited[p] = true
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		stones = append(stones, cur)

		for _, n := range b.Neighbors(cur) {
			switch b.Get(n) {
			case Empty:
				if !libSeen[n] {
					libSeen[n] = true
					liberties = append(liberties, n)
				}
			case color:
				if !visited[n] {
					visited[n] = true
					stack = append(stack, n)
				}
			}
		}
	}
	return Chain{Stones: stones, Liberties: liberties}
}

// Liberties returns the number of liberties of the chain through p (0 if p is
// empty).
func (b *Board) Liberties(p Point) int {
	return len(b.ChainAt(p).Liberties)
}

// Play places stone at p, assuming legality has already been checked
// (rules.Check), and returns the resulting board together with the set of
// captured points. It does not mutate the receiver.
//
// Capture resolution: every opposing chain 4-adjacent to p that has zero
// liberties after the stone is placed is removed. This must run before the
// suicide check (Rules layer) looks at the placed stone's own liberties,
// mirroring the standard "capture, then check suicide" order described in
// spec §4.1.
func (b *Board) Play(stone Stone, p Point) (next *Board, captured []Point) {
	next = b.Clone()
	next.set(p, stone)

	opponent := stone.Opposite()
	seen := make(map[Point]bool)
	for _, n := range next.Neighbors(p) {
		if seen[n] || next.Get(n) != opponent {
			continue
		}
		chain := next.ChainAt(n)
		for _, s := range chain.Stones {
			seen[s] = true
		}
		if len(chain.Liberties) == 0 {
			for _, s := range chain.Stones {
				next.set(s, Empty)
				captured = append(captured, s)
			}
		}
	}
	return next, captured
}

// WouldBeSuicide reports whether placing stone at p (after capture
// resolution has already run on the returned board) would leave the placing
// chain with zero liberties. Callers pass the post-capture board, i.e. the
// value returned by Play.
func (b *Board) WouldBeSuicide(p Point) bool {
	return b.Liberties(p) == 0
}
