package seki

import (
	"github.com/sqwxl/seki/board"
	"github.com/sqwxl/seki/gameengine"
	"github.com/sqwxl/seki/sgf"
	"github.com/sqwxl/seki/tree"
)

// LoadSGF parses data as SGF (spec §4.5) and returns a Game positioned at the
// end of the main line, with every branch preserved in the tree. A parse
// error leaves no Game behind (spec §7 "either the whole parse succeeds ...
// or no tree is returned").
func LoadSGF(data []byte) (*Game, error) {
	info, root, err := sgf.Parse(data)
	if err != nil {
		return nil, err
	}

	turnStone := board.Black
	if info.Handicap >= 2 || len(info.Black) > 0 || len(info.White) > 0 {
		turnStone = board.White
	}

	e, err := gameengine.NewFromSetup(info.Cols, info.Rows, info.Black, info.White, turnStone, info.Handicap, info.Komi, gameengine.DefaultOptions())
	if err != nil {
		return nil, err
	}

	var nodes []tree.Node
	flattenSGF(root, tree.Root, 0, &nodes)
	if err := e.Tree().ReplaceTree(nodes); err != nil {
		return nil, err
	}

	return &Game{Engine: e, dead: map[board.Point]bool{}}, nil
}

// flattenSGF appends every descendant of node (an sgf.Node whose own Turn,
// if any, was already recorded by the caller) to nodes as tree.Node entries,
// linking each to parent (tree.Root for a top-level variation). number is
// the 0-indexed move number the next appended turn carries within its branch.
func flattenSGF(node *sgf.Node, parent, number int, nodes *[]tree.Node) {
	for _, child := range node.Children {
		id := len(*nodes)
		turn := *child.Turn
		turn.Number = number
		*nodes = append(*nodes, tree.Node{Turn: turn, Parent: parent})
		if parent != tree.Root {
			(*nodes)[parent].Children = append((*nodes)[parent].Children, id)
		}
		flattenSGF(child, id, number+1, nodes)
	}
}

// SaveSGF renders the entire game tree (every branch, not just the main
// line) as SGF text (spec §4.5 "Writer").
func (g *Game) SaveSGF() []byte {
	info := &sgf.GameInfo{
		Cols:     g.Cols,
		Rows:     g.Rows,
		Handicap: g.Handicap,
		Komi:     g.Komi,
	}

	rootBoard := g.RootBoard()
	for row := 0; row < rootBoard.Rows; row++ {
		for col := 0; col < rootBoard.Cols; col++ {
			p := board.Point{Col: col, Row: row}
			switch rootBoard.Get(p) {
			case board.Black:
				info.Black = append(info.Black, p)
			case board.White:
				info.White = append(info.White, p)
			}
		}
	}

	sgfRoot := &sgf.Node{}
	t := g.Tree()
	sgfRoot.Children = sgfChildren(t, tree.Root, t.RootChildren())
	return sgf.Write(info, sgfRoot)
}

// sgfChildren converts the arena children of parent into an sgf.Node slice,
// recursing through the whole tree (every branch, per the writer's
// contract).
func sgfChildren(t *tree.Tree, parent int, childIDs []int) []*sgf.Node {
	out := make([]*sgf.Node, len(childIDs))
	for i, id := range childIDs {
		node := t.Node(id)
		turn := node.Turn
		n := &sgf.Node{Turn: &turn}
		n.Children = sgfChildren(t, id, node.Children)
		out[i] = n
	}
	return out
}
