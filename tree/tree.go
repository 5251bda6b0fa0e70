package tree

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/sqwxl/seki/move"
)

// Root is the cursor value denoting the pre-root sentinel: no turn has been
// played yet. Every other cursor value is an index into Tree.nodes.
const Root = -1

// Node is one arena entry: a completed turn, its parent index (Root for a
// tree root), and its children in the order they were created.
type Node struct {
	Turn     move.Turn
	Parent   int
	Children []int
}

// Apply advances a State by one Turn. Tree calls it during replay; it is
// supplied by the caller (gameengine.Engine) because only the caller knows
// the legality/capture rules a Turn must obey — Tree itself only stores and
// replays.
type Apply func(State, move.Turn) (State, error)

// Tree is the persistent arena of turns plus a replay cache bounded by an
// LRU of recently visited node states (spec §4.4, §10.5).
type Tree struct {
	nodes    []Node
	rootKids []int
	cursor   int
	root     State // the state before any turn is played (post handicap setup)
	apply    Apply
	cache    *lru.Cache[int, State]
}

// New returns an empty tree whose replay starts from root and advances via
// apply. cacheSize bounds the number of memoized replay states (spec §10.5);
// a size of 0 disables memoization (every navigate_to replays from the
// root).
func New(root State, apply Apply, cacheSize int) *Tree {
	var cache *lru.Cache[int, State]
	if cacheSize > 0 {
		cache, _ = lru.New[int, State](cacheSize)
	}
	return &Tree{
		cursor: Root,
		root:   root,
		apply:  apply,
		cache:  cache,
	}
}

// Append creates a new child of the cursor node carrying turn and moves the
// cursor to it, reusing an existing first child if its turn already matches
// (spec §4.3 "Cursor and replay", branch reuse rule).
func (t *Tree) Append(turn move.Turn) (nodeID int, reused bool) {
	children := t.childrenOf(t.cursor)
	if len(children) > 0 {
		first := t.nodes[children[0]]
		if sameTurn(first.Turn, turn) {
			t.cursor = children[0]
			return t.cursor, true
		}
	}

	turn.Number = t.nextNumber()
	id := len(t.nodes)
	t.nodes = append(t.nodes, Node{Turn: turn, Parent: t.cursor})
	if t.cursor == Root {
		t.rootKids = append(t.rootKids, id)
	} else {
		t.nodes[t.cursor].Children = append(t.nodes[t.cursor].Children, id)
	}
	t.cursor = id
	return id, false
}

// nextNumber returns the 0-indexed move number a turn appended at the
// cursor would carry: one past the cursor's own number, or 0 at the root.
func (t *Tree) nextNumber() int {
	if t.cursor == Root {
		return 0
	}
	return t.nodes[t.cursor].Turn.Number + 1
}

// CacheState lets a caller that has already computed the state for nodeID
// (e.g. an Engine that just applied the turn itself) prime the replay cache
// directly, avoiding a redundant replay on the next navigation.
func (t *Tree) CacheState(nodeID int, s State) {
	if t.cache != nil {
		t.cache.Add(nodeID, s.Clone())
	}
}

func sameTurn(a, b move.Turn) bool {
	if a.Kind != b.Kind || a.Stone != b.Stone {
		return false
	}
	return a.Kind != move.Play || a.Point == b.Point
}

func (t *Tree) childrenOf(nodeID int) []int {
	if nodeID == Root {
		return t.rootKids
	}
	return t.nodes[nodeID].Children
}

// CurrentNodeID returns the cursor, or Root if no turn has been played yet.
func (t *Tree) CurrentNodeID() int { return t.cursor }

// NodeCount returns the number of turns ever recorded across every branch.
func (t *Tree) NodeCount() int { return len(t.nodes) }

// Node returns the node at id. Callers must check id against NodeCount.
func (t *Tree) Node(id int) Node { return t.nodes[id] }

// RootChildren returns the ids of every node with no parent, i.e. every
// variation starting from the empty board.
func (t *Tree) RootChildren() []int {
	out := make([]int, len(t.rootKids))
	copy(out, t.rootKids)
	return out
}

// State returns the replayed engine state at the cursor.
func (t *Tree) State() (State, error) {
	return t.stateAt(t.cursor)
}

// RootState returns the pre-root state (post handicap/setup, pre any turn)
// without moving the cursor, for callers that need the original setup
// stones (the SGF writer's AB/AW properties).
func (t *Tree) RootState() State {
	return t.root.Clone()
}

// NavigateTo sets the cursor to nodeID and returns the replayed state there.
// It walks up from nodeID to the nearest cached (or root) ancestor, then
// replays forward, caching every intermediate state it computes along the
// way (spec §4.4 "Replay-from-root").
func (t *Tree) NavigateTo(nodeID int) (State, error) {
	s, err := t.stateAt(nodeID)
	if err != nil {
		return State{}, err
	}
	t.cursor = nodeID
	return s, nil
}

func (t *Tree) stateAt(nodeID int) (State, error) {
	if nodeID == Root {
		return t.root.Clone(), nil
	}
	if t.cache != nil {
		if s, ok := t.cache.Get(nodeID); ok {
			return s.Clone(), nil
		}
	}

	// Walk up to the nearest ancestor we already have a state for.
	var path []int
	cur := nodeID
	var base State
	for {
		if cur == Root {
			base = t.root
			break
		}
		if t.cache != nil {
			if s, ok := t.cache.Get(cur); ok {
				base = s
				break
			}
		}
		path = append(path, cur)
		cur = t.nodes[cur].Parent
	}

	state := base.Clone()
	for i := len(path) - 1; i >= 0; i-- {
		id := path[i]
		next, err := t.apply(state, t.nodes[id].Turn)
		if err != nil {
			return State{}, err
		}
		state = next
		if t.cache != nil {
			t.cache.Add(id, state.Clone())
		}
	}
	return state, nil
}

// Back moves the cursor to its parent and returns the replayed state there.
// Back at Root or at a root node returns the pre-root state.
func (t *Tree) Back() (State, error) {
	if t.cursor == Root {
		return t.root.Clone(), nil
	}
	return t.NavigateTo(t.nodes[t.cursor].Parent)
}

// Forward descends to the first child of the cursor (main-branch policy,
// spec §4.4); it is a no-op if the cursor is already a leaf.
func (t *Tree) Forward() (State, error) {
	children := t.childrenOf(t.cursor)
	if len(children) == 0 {
		return t.stateAt(t.cursor)
	}
	return t.NavigateTo(children[0])
}

// ToStart moves the cursor to the pre-root sentinel.
func (t *Tree) ToStart() (State, error) {
	return t.NavigateTo(Root)
}

// ToLatest moves the cursor to the most recently appended node overall.
func (t *Tree) ToLatest() (State, error) {
	if len(t.nodes) == 0 {
		return t.ToStart()
	}
	return t.NavigateTo(len(t.nodes) - 1)
}

// ToMainEnd follows first-children from the cursor to the end of the main
// branch.
func (t *Tree) ToMainEnd() (State, error) {
	cur := t.cursor
	for {
		children := t.childrenOf(cur)
		if len(children) == 0 {
			break
		}
		cur = children[0]
	}
	return t.NavigateTo(cur)
}

// ReplaceMoves discards every node and installs a fresh linear main line
// built by applying turns in order from root, clearing all branches (spec
// §4.4).
func (t *Tree) ReplaceMoves(turns []move.Turn) error {
	t.nodes = nil
	t.rootKids = nil
	t.cursor = Root
	if t.cache != nil {
		t.cache.Purge()
	}
	for _, turn := range turns {
		if _, _, err := t.tryAppendAndValidate(turn); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tree) tryAppendAndValidate(turn move.Turn) (int, State, error) {
	state, err := t.stateAt(t.cursor)
	if err != nil {
		return 0, State{}, err
	}
	next, err := t.apply(state, turn)
	if err != nil {
		return 0, State{}, err
	}
	id, _ := t.Append(turn)
	if t.cache != nil {
		t.cache.Add(id, next.Clone())
	}
	return id, next, nil
}

// ReplaceTree adopts an externally built arena wholesale (spec §4.4,
// "replace_tree"), e.g. one produced by the sgf package. The cursor is reset
// to the end of the main line.
func (t *Tree) ReplaceTree(nodes []Node) error {
	t.nodes = nodes
	t.cursor = Root
	if t.cache != nil {
		t.cache.Purge()
	}
	t.rootKids = nil
	for i, n := range t.nodes {
		if n.Parent == Root {
			t.rootKids = append(t.rootKids, i)
		}
	}
	_, err := t.ToMainEnd()
	return err
}
