// Tool bench benchmarks seki.
//
// The benchmark loads several canned SGF games and replays each through a
// fresh Engine, reporting total moves replayed and moves per second. The
// test asserts the move count stays constant across non-functional changes,
// the same regression-stability role the teacher's own internal/bench plays
// for search node counts.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/sqwxl/seki/seki"
)

var (
	games = []gameInfo{
		{
			"9x9 opening fuseki, no captures",
			[]byte(`(;SZ[9]KM[6.5];B[cc];W[gg];B[cg];W[gc];B[ee];W[ce];B[ge];W[ec];B[eg];W[cd])`),
		},
		{
			"9x9 side-by-side walls",
			[]byte(`(;SZ[9]KM[6.5];B[dd];W[ff];B[df];W[fd];B[de];W[fe];B[dg];W[fg])`),
		},
		{
			"9x9 short game ending in a pass",
			[]byte(`(;SZ[9]KM[6.5];B[cc];W[gc];B[cg];W[gg];B[ee];W[])`),
		},
	}

	repeats = flag.Int("repeats", 1000, "times to replay each game")
)

type gameInfo struct {
	description string
	sgf         []byte
}

// eval replays the game once and returns the number of moves in its tree.
func (g *gameInfo) eval() (uint64, error) {
	game, err := seki.LoadSGF(g.sgf)
	if err != nil {
		return 0, err
	}
	return uint64(game.Tree().NodeCount()), nil
}

// evalAll replays every game repeats times, returning the total move count
// and the replay rate in moves per second.
func evalAll(repeats int) (uint64, float64, error) {
	start := time.Now()
	var moves uint64
	for i := range games {
		var n uint64
		for r := 0; r < repeats; r++ {
			var err error
			if n, err = games[i].eval(); err != nil {
				return 0, 0, fmt.Errorf("game %d (%s): %w", i, games[i].description, err)
			}
		}
		moves += n
		log.Printf("#%d %d moves: %s\n", i, n, games[i].description)
	}
	elapsed := time.Since(start)
	return moves, float64(uint64(repeats)*moves) / elapsed.Seconds(), nil
}

func main() {
	flag.Parse()
	moves, mps, err := evalAll(*repeats)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("moves %d\n", moves)
	fmt.Printf("  moves/sec %.0f\n", mps)
}
