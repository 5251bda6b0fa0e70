package gameengine

import "github.com/sqwxl/seki/board"

// Serialized is the wire snapshot of an Engine (spec §6 "Serialized game
// state"). Field names match the external interface's JSON shape.
type Serialized struct {
	Board            []int8   `json:"board"`
	Cols             int      `json:"cols"`
	Rows             int      `json:"rows"`
	Captures         Captures `json:"captures"`
	Ko               *KoWire  `json:"ko"`
	Stage            string   `json:"stage"`
	CurrentTurnStone *int8    `json:"current_turn_stone"`
	Result           *string  `json:"result"`
}

// Captures is the wire shape of per-side capture tallies.
type Captures struct {
	Black uint32 `json:"black"`
	White uint32 `json:"white"`
}

// KoWire is the wire shape of the ko marker.
type KoWire struct {
	Pos     [2]uint8 `json:"pos"`
	Illegal int8     `json:"illegal"`
}

// Serialize returns the current Engine state in the wire shape of §6.
func (e *Engine) Serialize() Serialized {
	s := e.state()
	out := Serialized{
		Board:    s.Board.Vector(),
		Cols:     e.Cols,
		Rows:     e.Rows,
		Captures: Captures{Black: uint32(s.Captures[board.Black]), White: uint32(s.Captures[board.White])},
		Stage:    Stage(s.Stage).String(),
	}
	if s.Ko != nil {
		out.Ko = &KoWire{
			Pos:     [2]uint8{uint8(s.Ko.Point.Col), uint8(s.Ko.Point.Row)},
			Illegal: int8(s.Ko.Illegal),
		}
	}
	if Stage(s.Stage) != Done && Stage(s.Stage) != TerritoryReview {
		stone := int8(s.TurnStone)
		out.CurrentTurnStone = &stone
	}
	if s.Result != "" {
		result := s.Result
		out.Result = &result
	}
	return out
}
