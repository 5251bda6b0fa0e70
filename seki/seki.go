// Package seki is the stable external façade (spec §6): construction,
// serialize()/tree_json(), and SGF load/save, all wired atop gameengine,
// tree, and territory.
//
// Grounded on the teacher's own top-level package being the thing external
// consumers import (zurichess/uci.go imports "engine" directly, not an
// internal subpackage), and on other_examples' Gongo Game interface
// (SetBoardSize/ClearBoard/SetKomi/Play) as the idiomatic shape of a small
// facade over a richer engine — generalized here to Go's native method set
// instead of Gongo's GTP command dispatch table.
package seki

import (
	"github.com/sqwxl/seki/board"
	"github.com/sqwxl/seki/gameengine"
	"github.com/sqwxl/seki/territory"
)

// Game is the façade a collaborator (server, in-browser shim) holds for the
// lifetime of one match.
type Game struct {
	*gameengine.Engine
	dead map[board.Point]bool
}

// New constructs a Game (spec §6 "Construction parameters").
func New(cols, rows, handicap int, komi float64, superko bool) (*Game, error) {
	e, err := gameengine.New(cols, rows, handicap, komi, gameengine.Options{Superko: superko})
	if err != nil {
		return nil, err
	}
	return &Game{Engine: e, dead: map[board.Point]bool{}}, nil
}

// ToggleDeadChain flips the dead/alive marking of the chain through p
// (spec §4.6). Valid during TerritoryReview; harmless otherwise.
func (g *Game) ToggleDeadChain(p board.Point) {
	territory.ToggleDeadChain(g.Board(), p, g.dead)
}

// PreviewScore computes the score the current dead-stone marking would
// produce, without committing it (spec §4.6).
func (g *Game) PreviewScore() territory.Score {
	black, white := g.Captures()
	return territory.Final(g.Board(), g.dead, black, white, g.Komi)
}

// AcceptScoring commits the current dead-stone marking as final, computing
// the result string and moving the stage to Done (spec §4.3).
func (g *Game) AcceptScoring() (gameengine.Stage, error) {
	score := g.PreviewScore()
	if err := g.Engine.AcceptScoring(score.Result); err != nil {
		return g.Stage(), err
	}
	return g.Stage(), nil
}

// RejectScoring returns the game to Play and clears the dead-stone marking
// (spec §3 "TerritoryReview -> Play if a player rejects scoring").
func (g *Game) RejectScoring() error {
	if err := g.Engine.RejectScoring(); err != nil {
		return err
	}
	g.dead = map[board.Point]bool{}
	return nil
}
