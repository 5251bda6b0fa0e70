package gameengine

import "github.com/sqwxl/seki/board"

// starPoints returns the canonical handicap star points for a board of the
// given size, in placement order (corners first, then tengen, then side
// stars), per spec §4.1. Only 9, 13, and 19 are standard handicap sizes; any
// other size returns nil and the caller rejects the handicap with
// ErrBadHandicap.
func starPoints(cols, rows int) []board.Point {
	if cols != rows {
		return nil
	}
	switch cols {
	case 9:
		return starPointsFor(2, 6, 4)
	case 13:
		return starPointsFor(3, 9, 6)
	case 19:
		return starPointsFor(3, 15, 9)
	default:
		return nil
	}
}

// starPointsFor builds the 9-point star layout from the low/high star
// coordinate and the board's tengen coordinate, in the canonical ordering
// used for progressive handicap placement: the two diagonal corners, the two
// off-diagonal corners, tengen, then the four side stars.
func starPointsFor(lo, hi, mid int) []board.Point {
	return []board.Point{
		{Col: lo, Row: lo},
		{Col: hi, Row: hi},
		{Col: hi, Row: lo},
		{Col: lo, Row: hi},
		{Col: mid, Row: mid},
		{Col: lo, Row: mid},
		{Col: hi, Row: mid},
		{Col: mid, Row: lo},
		{Col: mid, Row: hi},
	}
}

// validHandicap reports whether h is an accepted handicap count: either 0
// (even game) or in {2..9}, resolving the spec's open question in favor of
// the stronger invariant (see DESIGN.md).
func validHandicap(h int) bool {
	return h == 0 || (h >= 2 && h <= 9)
}
