package gameengine

import (
	"fmt"

	"github.com/sqwxl/seki/board"
	"github.com/sqwxl/seki/move"
	"github.com/sqwxl/seki/rules"
	"github.com/sqwxl/seki/tree"
)

// replayCacheSize bounds the number of memoized tree states (spec §10.5).
const replayCacheSize = 64

// Options carries session-wide settings fixed for the lifetime of an Engine,
// the way the teacher's engine.Options carries search-wide settings fixed
// for the lifetime of a search.
type Options struct {
	Superko bool // enable positional superko checking (spec §9, default true)
}

// DefaultOptions returns the spec's default: superko enabled.
func DefaultOptions() Options {
	return Options{Superko: true}
}

// Engine orchestrates moves atop a board.Board: the turn/stage machine,
// handicap setup, capture tallies, ko marker, and superko history, plus the
// Tree of every turn ever played (spec §4.3).
type Engine struct {
	Cols, Rows int
	Handicap   int
	Komi       float64
	opts       Options

	hasher *board.Hasher
	tr     *tree.Tree

	// Accepting/rejecting scoring is a caller decision (spec §3 "Stage
	// machine"), not a Turn — it doesn't belong in the Tree, since
	// navigating elsewhere and back should not replay a scoring decision
	// that happened out of band. The override applies only to the node it
	// was recorded against; moving away from that node (any Append) retires
	// it implicitly, since a fresh node's replayed Stage then governs again.
	overrideNode   int
	overrideStage  Stage
	overrideResult string
	hasOverride    bool
}

// New constructs an Engine for a cols×rows board with the given handicap and
// komi. If handicap is >= 2, Black's handicap stones are placed immediately
// and White is on the move, but the stage stays Unstarted until White's
// first turn is played; otherwise the stage starts at Unstarted with Black
// to move (spec §3 "Lifecycle", spec §8 scenario 5).
func New(cols, rows, handicap int, komi float64, opts Options) (*Engine, error) {
	if cols < 2 || rows < 2 {
		return nil, fmt.Errorf("gameengine: invalid dimensions %dx%d", cols, rows)
	}
	if !validHandicap(handicap) {
		return nil, wrapErr(ErrBadHandicap, board.Empty, board.Point{})
	}

	b := board.New(cols, rows)
	stage := Unstarted
	turnStone := board.Black

	if handicap >= 2 {
		points := starPoints(cols, rows)
		if points == nil {
			return nil, wrapErr(ErrBadHandicap, board.Empty, board.Point{})
		}
		for i := 0; i < handicap; i++ {
			var captured []board.Point
			b, captured = b.Play(board.Black, points[i])
			_ = captured // handicap placement never captures on an empty board
		}
		turnStone = board.White
	}

	e := &Engine{
		Cols:     cols,
		Rows:     rows,
		Handicap: handicap,
		Komi:     komi,
		opts:     opts,
		hasher:   board.NewHasher(cols, rows),
	}

	root := tree.State{
		Board:     b,
		Captures:  map[board.Stone]int{board.Black: 0, board.White: 0},
		History:   map[uint64]bool{},
		TurnStone: turnStone,
		Stage:     int(stage),
	}
	e.tr = tree.New(root, e.apply, replayCacheSize)
	return e, nil
}

// NewFromSetup constructs an Engine whose root board already carries the
// given stones (an SGF AB/AW root, spec §4.5), bypassing New's auto-placed
// star points. handicap is recorded for round-tripping but New's star-point
// placement is not repeated here — the caller (sgf.GameInfo) already names
// the exact stones.
func NewFromSetup(cols, rows int, black, white []board.Point, turnStone board.Stone, handicap int, komi float64, opts Options) (*Engine, error) {
	if cols < 2 || rows < 2 {
		return nil, fmt.Errorf("gameengine: invalid dimensions %dx%d", cols, rows)
	}

	b := board.New(cols, rows)
	for _, p := range black {
		b.Place(p, board.Black)
	}
	for _, p := range white {
		b.Place(p, board.White)
	}

	// Setup stones alone (SGF AB/AW, like a handicap) do not start the game;
	// stage stays Unstarted until the first turn is played (spec §8 scenario 5).
	stage := Unstarted

	e := &Engine{
		Cols:     cols,
		Rows:     rows,
		Handicap: handicap,
		Komi:     komi,
		opts:     opts,
		hasher:   board.NewHasher(cols, rows),
	}

	root := tree.State{
		Board:     b,
		Captures:  map[board.Stone]int{board.Black: 0, board.White: 0},
		History:   map[uint64]bool{},
		TurnStone: turnStone,
		Stage:     int(stage),
	}
	e.tr = tree.New(root, e.apply, replayCacheSize)
	return e, nil
}

// apply replays a single already-legal turn atop s, used by the Tree during
// navigation. It must reproduce exactly the effect TryPlay/TryPass/TryResign
// had when the turn was first committed.
func (e *Engine) apply(s tree.State, t move.Turn) (tree.State, error) {
	next := s.Clone()
	switch t.Kind {
	case move.Play:
		nb, captured := next.Board.Play(t.Stone, t.Point)
		next.Board = nb
		next.Captures[t.Stone] += len(captured)
		next.Ko = rules.DetectKo(nb, t.Stone, t.Point, captured)
		next.TurnStone = t.Stone.Opposite()
		if next.Stage == int(Unstarted) {
			next.Stage = int(Play)
		}
		next.History[e.hasher.Hash(nb, next.TurnStone)] = true
	case move.Pass:
		next.Ko = nil
		next.TurnStone = t.Stone.Opposite()
	case move.Resign:
		next.Stage = int(Done)
		next.TurnStone = t.Stone.Opposite()
		next.Result = resignResult(t.Stone)
	}
	return next, nil
}

func resignResult(resigner board.Stone) string {
	if resigner == board.Black {
		return "W+Resign"
	}
	return "B+Resign"
}

func (e *Engine) state() tree.State {
	s, err := e.tr.State()
	if err != nil {
		// Replay of already-validated turns cannot fail; a non-nil error
		// here means Tree or Engine's own bookkeeping is inconsistent.
		panic(fmt.Sprintf("gameengine: replay failed: %v", err))
	}
	if e.hasOverride && e.overrideNode == e.tr.CurrentNodeID() {
		s.Stage = int(e.overrideStage)
		s.Result = e.overrideResult
	}
	return s
}

// RejectScoring moves a TerritoryReview game back to Play, per the caller's
// decision (spec §3). Both sides passing again will return to
// TerritoryReview as usual.
func (e *Engine) RejectScoring() error {
	s := e.state()
	if Stage(s.Stage) != TerritoryReview {
		return wrapErr(ErrGameOver, board.Empty, board.Point{})
	}
	e.overrideNode = e.tr.CurrentNodeID()
	e.overrideStage = Play
	e.hasOverride = true
	return nil
}

// AcceptScoring moves a TerritoryReview game to Done with the given result
// string (produced by the territory package), per the caller's decision.
func (e *Engine) AcceptScoring(result string) error {
	s := e.state()
	if Stage(s.Stage) != TerritoryReview {
		return wrapErr(ErrGameOver, board.Empty, board.Point{})
	}
	e.overrideNode = e.tr.CurrentNodeID()
	e.overrideStage = Done
	e.overrideResult = result
	e.hasOverride = true
	return nil
}

// Stage returns the current stage.
func (e *Engine) Stage() Stage {
	return Stage(e.state().Stage)
}

// Board returns the current board. Callers must not mutate it.
func (e *Engine) Board() *board.Board {
	return e.state().Board
}

// Captures returns stones captured by each side so far.
func (e *Engine) Captures() (black, white int) {
	s := e.state()
	return s.Captures[board.Black], s.Captures[board.White]
}

// Ko returns the current ko marker, or nil if there is none.
func (e *Engine) Ko() *rules.Ko {
	return e.state().Ko
}

// CurrentTurnStone returns the stone to move, or Empty while the game is in
// TerritoryReview or Done.
func (e *Engine) CurrentTurnStone() board.Stone {
	s := e.state()
	if Stage(s.Stage) == Done || Stage(s.Stage) == TerritoryReview {
		return board.Empty
	}
	return s.TurnStone
}

// Result returns the result string once the game is Done, or "" otherwise.
func (e *Engine) Result() string {
	return e.state().Result
}

// IsLegal reports whether stone playing at p would currently succeed,
// without mutating the Engine.
func (e *Engine) IsLegal(stone board.Stone, p board.Point) bool {
	s := e.state()
	if Stage(s.Stage) != Play && Stage(s.Stage) != Unstarted {
		return false
	}
	if s.TurnStone != stone {
		return false
	}
	return rules.Check(s.Board, stone, p, s.Ko, e.hasher, s.History, e.opts.Superko) == nil
}

// TryPlay attempts to place stone at p. On success it appends a node to the
// Tree (branching if the cursor was not at a leaf) and returns the new
// stage. On failure the Engine is left exactly as it was (spec §7
// commit-or-rollback).
func (e *Engine) TryPlay(stone board.Stone, p board.Point) (Stage, error) {
	s := e.state()
	if err := e.checkTurn(s, stone); err != nil {
		return Stage(s.Stage), err
	}
	if err := rules.Check(s.Board, stone, p, s.Ko, e.hasher, s.History, e.opts.Superko); err != nil {
		return Stage(s.Stage), translateViolation(err, stone, p)
	}

	_, captured := s.Board.Play(stone, p)
	turn := move.Turn{Kind: move.Play, Stone: stone, Point: p, Captured: captured}
	next, _ := e.apply(s, turn)

	id, _ := e.tr.Append(turn)
	e.tr.CacheState(id, next)
	return Stage(next.Stage), nil
}

// lastTurnWasPass reports whether the cursor's current node is a Pass, i.e.
// whether a pass right now would be the second of a consecutive pair. This
// is derived from the Tree rather than kept as separate Engine state, so it
// stays correct across navigate_to/back/forward (spec §4.4). A scoring
// rejection recorded at the cursor's node breaks the streak.
func (e *Engine) lastTurnWasPass() bool {
	id := e.tr.CurrentNodeID()
	if id == tree.Root {
		return false
	}
	if e.hasOverride && e.overrideNode == id && e.overrideStage == Play {
		return false
	}
	return e.tr.Node(id).Turn.Kind == move.Pass
}

// TryPass attempts a pass by stone. Two consecutive passes transition Play
// to TerritoryReview (spec §4.3 "Two-pass termination").
func (e *Engine) TryPass(stone board.Stone) (Stage, error) {
	s := e.state()
	if err := e.checkTurn(s, stone); err != nil {
		return Stage(s.Stage), err
	}

	turn := move.Turn{Kind: move.Pass, Stone: stone}
	next, _ := e.apply(s, turn)

	if e.lastTurnWasPass() {
		next.Stage = int(TerritoryReview)
	} else {
		next.Stage = int(Play)
	}

	id, _ := e.tr.Append(turn)
	e.tr.CacheState(id, next)
	return Stage(next.Stage), nil
}

// TryResign attempts a resignation by stone, transitioning straight to Done.
func (e *Engine) TryResign(stone board.Stone) (Stage, error) {
	s := e.state()
	if err := e.checkTurn(s, stone); err != nil {
		return Stage(s.Stage), err
	}

	turn := move.Turn{Kind: move.Resign, Stone: stone}
	next, _ := e.apply(s, turn)

	id, _ := e.tr.Append(turn)
	e.tr.CacheState(id, next)
	return Stage(next.Stage), nil
}

func (e *Engine) checkTurn(s tree.State, stone board.Stone) error {
	if stone != board.Black && stone != board.White {
		return wrapErr(ErrUnknownStone, stone, board.Point{})
	}
	if Stage(s.Stage) == Done {
		return wrapErr(ErrGameOver, stone, board.Point{})
	}
	if Stage(s.Stage) == TerritoryReview {
		return wrapErr(ErrGameOver, stone, board.Point{})
	}
	if s.TurnStone != stone {
		return wrapErr(ErrOutOfTurn, stone, board.Point{})
	}
	return nil
}

func translateViolation(err error, stone board.Stone, p board.Point) error {
	if v, ok := err.(*rules.Violation); ok {
		return wrapErr(v.Kind, stone, p)
	}
	return wrapErr(err, stone, p)
}

// Tree exposes the underlying Tree for navigation (spec §4.4) and
// serialization.
func (e *Engine) Tree() *tree.Tree {
	return e.tr
}

// RootBoard returns the board as it stood before any turn was played (after
// handicap/setup placement), for callers that need to recover the original
// setup stones (the SGF writer's AB/AW properties).
func (e *Engine) RootBoard() *board.Board {
	return e.tr.RootState().Board
}
