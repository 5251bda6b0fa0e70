// Package move defines the Turn value (spec §3 "Move / Turn"), shared by
// gameengine (which produces turns) and tree (which stores them) so neither
// package needs to import the other.
package move

import "github.com/sqwxl/seki/board"

// Kind tags which variant of Turn this is.
type Kind int

const (
	Play Kind = iota
	Pass
	Resign
)

func (k Kind) String() string {
	switch k {
	case Play:
		return "play"
	case Pass:
		return "pass"
	case Resign:
		return "resign"
	default:
		return "unknown"
	}
}

// Turn is a single completed move: Play(stone, point) | Pass(stone) |
// Resign(stone), tagged by Kind. Point and Captured are meaningful only for
// Play; Number is the 0-indexed move number within its branch.
type Turn struct {
	Number   int
	Kind     Kind
	Stone    board.Stone
	Point    board.Point
	Captured []board.Point
}
