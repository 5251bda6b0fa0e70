package gameengine

import (
	"errors"
	"fmt"

	"github.com/sqwxl/seki/board"
	"github.com/sqwxl/seki/rules"
)

// The sentinel family used at the Engine boundary (spec §6 "Error kinds").
// Re-exported here alongside rules' board-level sentinels so that callers
// only need to import one package to errors.Is against any kind Engine can
// return. Grounded on the teacher's engine/moves.go
// (errorWrongLength/errorNoSuchMove) convention of one sentinel per failure
// mode.
var (
	ErrOutOfTurn        = rules.ErrOutOfTurn
	ErrNotOnBoard       = rules.ErrNotOnBoard
	ErrOverwrite        = rules.ErrOverwrite
	ErrSuicide          = rules.ErrSuicide
	ErrKoViolation      = rules.ErrKoViolation
	ErrSuperkoViolation = rules.ErrSuperkoViolation
	ErrGameOver         = errors.New("game is over")
	ErrBadHandicap      = errors.New("invalid handicap")
	ErrUnknownStone     = errors.New("stone is neither black nor white")
)

// Error wraps a sentinel with the move context that made it concrete,
// following yagoggame/gomaster's fmt.Errorf("...: %w", ErrX) wrapping so
// callers can both errors.Is against a stable kind and print a readable
// message.
type Error struct {
	Kind  error
	Stone board.Stone
	Point board.Point
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %v at %v", e.Kind, e.Stone, e.Point)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func wrapErr(kind error, stone board.Stone, p board.Point) error {
	return &Error{Kind: kind, Stone: stone, Point: p}
}
