// sekitool is a small development aid: it loads a game from an SGF file or
// a flat move list, replays it, and prints the resulting board and score.
// It is not the production WebSocket server named as an external
// collaborator by the engine — see zurichess/main.go and puzzle/puzzle.go
// for the teacher tools this one is modeled on.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/sqwxl/seki/board"
	"github.com/sqwxl/seki/gameengine"
	"github.com/sqwxl/seki/seki"
)

var (
	sgfPath  = flag.String("sgf", "", "SGF file to load and replay")
	moves    = flag.String("moves", "", "semicolon-separated move list, e.g. B:4,4;W:3,4;B:pass")
	cols     = flag.Int("cols", 19, "board width, for -moves mode")
	rows     = flag.Int("rows", 19, "board height, for -moves mode")
	handicap = flag.Int("handicap", 0, "handicap stones, for -moves mode")
	komi     = flag.Float64("komi", 6.5, "komi, for -moves mode")
)

func main() {
	log.SetFlags(log.Lshortfile)
	flag.Parse()

	var g *seki.Game
	var err error
	switch {
	case *sgfPath != "":
		g, err = loadSGFFile(*sgfPath)
	case *moves != "":
		g, err = loadMoveList(*moves)
	default:
		log.Fatal("one of -sgf or -moves is required")
	}
	if err != nil {
		log.Fatal(err)
	}

	fmt.Print(g.Board().PrettyPrint())
	fmt.Printf("stage: %v\n", g.Stage())
	black, white := g.Captures()
	fmt.Printf("captures: black=%d white=%d\n", black, white)
	if stage := g.Stage(); stage == gameengine.TerritoryReview || stage == gameengine.Done {
		score := g.PreviewScore()
		fmt.Printf("score: %s\n", score.Result)
	}
}

func loadSGFFile(path string) (*seki.Game, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s for reading: %w", path, err)
	}
	return seki.LoadSGF(data)
}

// loadMoveList parses a ";"-separated list of "COLOR:col,row" or
// "COLOR:pass" entries (e.g. "B:4,4;W:3,4;B:pass") atop a fresh game.
func loadMoveList(spec string) (*seki.Game, error) {
	g, err := seki.New(*cols, *rows, *handicap, *komi, true)
	if err != nil {
		return nil, err
	}

	for _, entry := range strings.Split(spec, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		colorStr, rest, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, fmt.Errorf("malformed move entry %q", entry)
		}

		stone, err := stoneFromLetter(colorStr)
		if err != nil {
			return nil, err
		}

		if rest == "pass" {
			if _, err := g.TryPass(stone); err != nil {
				return nil, fmt.Errorf("pass by %v: %w", stone, err)
			}
			continue
		}
		if rest == "resign" {
			if _, err := g.TryResign(stone); err != nil {
				return nil, fmt.Errorf("resign by %v: %w", stone, err)
			}
			continue
		}

		colStr, rowStr, ok := strings.Cut(rest, ",")
		if !ok {
			return nil, fmt.Errorf("malformed point %q", rest)
		}
		col, err := strconv.Atoi(strings.TrimSpace(colStr))
		if err != nil {
			return nil, fmt.Errorf("malformed column in %q: %w", rest, err)
		}
		row, err := strconv.Atoi(strings.TrimSpace(rowStr))
		if err != nil {
			return nil, fmt.Errorf("malformed row in %q: %w", rest, err)
		}
		if _, err := g.TryPlay(stone, board.Point{Col: col, Row: row}); err != nil {
			return nil, fmt.Errorf("play by %v at (%d,%d): %w", stone, col, row, err)
		}
	}
	return g, nil
}

func stoneFromLetter(s string) (board.Stone, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "B":
		return board.Black, nil
	case "W":
		return board.White, nil
	default:
		return board.Empty, fmt.Errorf("unknown color %q, want B or W", s)
	}
}
