// Package territory implements end-of-game scoring (spec §4.6): dead-stone
// detection, ownership flood-filling, and the final result string.
//
// Grounded on other_examples' Go-on-Go liberty/group primitives reused here
// for flood-filling empty regions (the same connectivity walk as
// board.ChainAt, applied to empty points instead of stones), and on the
// teacher's engine/material.go style of accumulating a per-colour total by a
// single pass over the board (loop, accumulate, no intermediate structure)
// repurposed from a material count into a territory count.
package territory

import (
	"fmt"
	"math"

	"github.com/sqwxl/seki/board"
)

// DeadStones returns a best-effort candidate set of points the heuristic
// classifies as dead: stones belonging to a chain with exactly one liberty,
// where the empty region reachable from that liberty is bounded entirely by
// the opposing colour (spec §4.6, §9 "heuristic, best-effort seed only").
func DeadStones(b *board.Board) map[board.Point]bool {
	dead := make(map[board.Point]bool)
	seen := make(map[board.Point]bool)

	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			p := board.Point{Col: col, Row: row}
			if seen[p] || b.Get(p) == board.Empty {
				continue
			}
			chain := b.ChainAt(p)
			for _, s := range chain.Stones {
				seen[s] = true
			}
			if len(chain.Liberties) != 1 {
				continue
			}
			own := make(map[board.Point]bool, len(chain.Stones))
			for _, s := range chain.Stones {
				own[s] = true
			}
			_, borders := floodEmptyIgnoring(b, chain.Liberties[0], own)
			opponent := b.Get(p).Opposite()
			if len(borders) == 1 && borders[opponent] {
				for _, s := range chain.Stones {
					dead[s] = true
				}
			}
		}
	}
	return dead
}

// ToggleDeadChain flips the dead/alive status of the whole chain through p
// in dead, giving the caller final authority over the heuristic's guess
// (spec §4.6, §9).
func ToggleDeadChain(b *board.Board, p board.Point, dead map[board.Point]bool) {
	chain := b.ChainAt(p)
	if len(chain.Stones) == 0 {
		return
	}
	makeDead := !dead[chain.Stones[0]]
	for _, s := range chain.Stones {
		if makeDead {
			dead[s] = true
		} else {
			delete(dead, s)
		}
	}
}

// Owner is the colour controlling a scored empty region, or Neutral (dame)
// if the region borders both colours.
type Owner int

const (
	Neutral Owner = iota
	OwnedBlack
	OwnedWhite
)

// Score totals the result of applying dead-stone removal and territory
// flooding to a terminal board.
type Score struct {
	Black, White int     // captures + prisoners + territory, per colour; White also includes komi, rounded to the nearest integer
	Komi         float64 // the komi already folded into White, repeated for display
	Result       string  // e.g. "B+3.5", "W+12", "Draw"
}

// Final computes the score for a terminal position: b is the live board,
// dead marks stones to remove as prisoners before flooding, capturesBlack/
// capturesWhite are the running capture tallies from Engine.Captures(), and
// komi is added to White's total (spec §4.6).
func Final(b *board.Board, dead map[board.Point]bool, capturesBlack, capturesWhite int, komi float64) Score {
	clean := b.Clone()
	prisonersBlack, prisonersWhite := 0, 0
	for p, isDead := range dead {
		if !isDead {
			continue
		}
		switch b.Get(p) {
		case board.Black:
			prisonersWhite++ // a dead black stone is a prisoner for White
		case board.White:
			prisonersBlack++
		}
		clearPoint(clean, p)
	}

	blackTerritory, whiteTerritory := floodTerritory(clean)

	black := capturesBlack + prisonersBlack + blackTerritory
	white := float64(capturesWhite+prisonersWhite+whiteTerritory) + komi

	return Score{
		Black:  black,
		White:  int(math.Round(white)),
		Komi:   komi,
		Result: resultString(float64(black), white),
	}
}

func resultString(black, white float64) string {
	diff := black - white
	switch {
	case diff > 0:
		return fmt.Sprintf("B+%s", formatMargin(diff))
	case diff < 0:
		return fmt.Sprintf("W+%s", formatMargin(-diff))
	default:
		return "Draw"
	}
}

func formatMargin(n float64) string {
	if n == math.Trunc(n) {
		return fmt.Sprintf("%d", int(n))
	}
	return fmt.Sprintf("%.1f", n)
}

// clearPoint removes a dead stone from a board the caller privately owns (a
// fresh Clone, never a shared value).
func clearPoint(b *board.Board, p board.Point) {
	b.Remove(p)
}

// floodEmpty walks the maximal empty region containing p and reports which
// stone colours border it.
func floodEmpty(b *board.Board, p board.Point) (region []board.Point, borders map[board.Stone]bool) {
	return floodEmptyIgnoring(b, p, nil)
}

// floodEmptyIgnoring is floodEmpty, except points in ignore (a candidate
// dying chain's own stones) are treated as transparent: they neither count
// as a border colour nor get traversed into. Without this, a single-liberty
// chain's own liberty trivially "borders" the chain's own colour (the dying
// stone itself sits right next to its last liberty), which would make the
// dead-stone heuristic in DeadStones never fire.
func floodEmptyIgnoring(b *board.Board, p board.Point, ignore map[board.Point]bool) (region []board.Point, borders map[board.Stone]bool) {
	visited := map[board.Point]bool{p: true}
	borders = make(map[board.Stone]bool)
	stack := []board.Point{p}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		region = append(region, cur)
		for _, n := range b.Neighbors(cur) {
			if ignore[n] {
				continue
			}
			switch b.Get(n) {
			case board.Empty:
				if !visited[n] {
					visited[n] = true
					stack = append(stack, n)
				}
			default:
				borders[b.Get(n)] = true
			}
		}
	}
	return region, borders
}

// floodTerritory sums the size of every empty region owned by a single
// colour (spec §4.6 "Ownership flood").
func floodTerritory(b *board.Board) (black, white int) {
	seen := make(map[board.Point]bool)
	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			p := board.Point{Col: col, Row: row}
			if seen[p] || b.Get(p) != board.Empty {
				continue
			}
			region, borders := floodEmpty(b, p)
			for _, r := range region {
				seen[r] = true
			}
			switch owner(borders) {
			case OwnedBlack:
				black += len(region)
			case OwnedWhite:
				white += len(region)
			}
		}
	}
	return black, white
}

func owner(borders map[board.Stone]bool) Owner {
	switch {
	case borders[board.Black] && !borders[board.White]:
		return OwnedBlack
	case borders[board.White] && !borders[board.Black]:
		return OwnedWhite
	default:
		return Neutral
	}
}
