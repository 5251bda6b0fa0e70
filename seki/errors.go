package seki

import (
	"github.com/sqwxl/seki/gameengine"
	"github.com/sqwxl/seki/sgf"
)

// Sentinel family at the façade boundary (spec §6 "Error kinds"), so a
// caller of this package never needs to import gameengine or sgf directly
// just to errors.Is against a stable kind.
var (
	ErrOutOfTurn        = gameengine.ErrOutOfTurn
	ErrNotOnBoard       = gameengine.ErrNotOnBoard
	ErrOverwrite        = gameengine.ErrOverwrite
	ErrSuicide          = gameengine.ErrSuicide
	ErrKoViolation      = gameengine.ErrKoViolation
	ErrSuperkoViolation = gameengine.ErrSuperkoViolation
	ErrGameOver         = gameengine.ErrGameOver
	ErrBadHandicap      = gameengine.ErrBadHandicap
	ErrUnknownStone     = gameengine.ErrUnknownStone
)

// ParseError is the SGF codec's error kind, re-exported here so callers can
// type-assert it without importing the sgf package directly.
type ParseError = sgf.ParseError
