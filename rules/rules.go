// Package rules implements the stateless legality predicates from spec §4.2:
// on-board, overwrite, ko, suicide, and positional superko. Rules never
// mutates a Board; it only inspects the board the caller is about to commit
// to and reports the first violation, in the tie-breaking order spec §4.2
// specifies.
package rules

import (
	"errors"
	"fmt"

	"github.com/sqwxl/seki/board"
)

// Kind tags the reason a move was rejected. It's a sentinel error, following
// the teacher's engine/moves.go convention of one package-level error value
// per failure mode, so callers can compare with errors.Is.
type Kind error

var (
	ErrOutOfTurn         Kind = errors.New("out of turn")
	ErrNotOnBoard        Kind = errors.New("not on board")
	ErrOverwrite         Kind = errors.New("point already occupied")
	ErrSuicide           Kind = errors.New("suicide")
	ErrKoViolation       Kind = errors.New("ko violation")
	ErrSuperkoViolation  Kind = errors.New("superko violation")
	ErrGameOver          Kind = errors.New("game is over")
	ErrBadHandicap       Kind = errors.New("invalid handicap")
	ErrParse             Kind = errors.New("parse error")
	ErrUnknownStone      Kind = errors.New("unknown stone")
)

// Ko records the single-point recapture prohibition left behind by a
// one-stone capture (spec §3 "Ko marker").
type Ko struct {
	Point   board.Point
	Illegal board.Stone // the stone forbidden from playing at Point
}

// Violation wraps a Kind with the context that made it concrete.
type Violation struct {
	Kind  Kind
	Point board.Point
	Stone board.Stone
}

func (v *Violation) Error() string {
	return fmt.Sprintf("%v at %v for %v", v.Kind, v.Point, v.Stone)
}

func (v *Violation) Unwrap() error {
	return v.Kind
}

func violation(kind Kind, p board.Point, s board.Stone) error {
	return &Violation{Kind: kind, Point: p, Stone: s}
}

// Check runs the ordered legality checks from spec §4.2 against a proposed
// Play(stone, p) on b, given the current ko marker (may be nil) and the
// superko history (may be nil/empty to disable the check). It returns nil if
// the move is legal.
//
// Check does not itself decide whose turn it is or whether the game has
// ended — those are Engine-level concerns (spec §4.3) that run before Check
// is reached; Check is the part of legality that depends only on the board.
func Check(b *board.Board, stone board.Stone, p board.Point, ko *Ko, hasher *board.Hasher, history map[uint64]bool, superkoEnabled bool) error {
	if !b.InBounds(p) {
		return violation(ErrNotOnBoard, p, stone)
	}
	if b.Get(p) != board.Empty {
		return violation(ErrOverwrite, p, stone)
	}
	if ko != nil && ko.Point == p && ko.Illegal == stone {
		return violation(ErrKoViolation, p, stone)
	}

	next, _ := b.Play(stone, p)
	if next.WouldBeSuicide(p) {
		return violation(ErrSuicide, p, stone)
	}

	if superkoEnabled && hasher != nil && len(history) > 0 {
		fingerprint := hasher.Hash(next, stone.Opposite())
		if history[fingerprint] {
			return violation(ErrSuperkoViolation, p, stone)
		}
	}

	return nil
}

// DetectKo inspects the outcome of a just-committed Play and returns the new
// Ko marker, or nil if the move didn't create one. Per spec §4.3, a ko marker
// is created when exactly one stone was captured and the placing stone is
// left as a lone stone with exactly one liberty (the captured point is that
// liberty, and recapturing there would restore the prior position).
func DetectKo(next *board.Board, stone board.Stone, p board.Point, captured []board.Point) *Ko {
	if len(captured) != 1 {
		return nil
	}
	chain := next.ChainAt(p)
	if len(chain.Stones) != 1 || len(chain.Liberties) != 1 {
		return nil
	}
	if chain.Liberties[0] != captured[0] {
		return nil
	}
	return &Ko{Point: captured[0], Illegal: stone.Opposite()}
}
