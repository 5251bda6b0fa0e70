package seki

import (
	"github.com/sqwxl/seki/move"
	"github.com/sqwxl/seki/tree"
)

// TurnWire is the wire shape of one Turn within a serialized tree (spec §6
// "Tree serialization"). Pos is absent for pass/resign.
type TurnWire struct {
	Kind  string    `json:"kind"`
	Stone int8      `json:"stone"`
	Pos   *[2]uint8 `json:"pos,omitempty"`
}

// TreeNodeWire is the wire shape of one arena entry.
type TreeNodeWire struct {
	Turn     TurnWire `json:"turn"`
	Parent   *int     `json:"parent"`
	Children []int    `json:"children"`
}

// TreeWire is the full tree_json() payload: every node ever recorded, plus
// the ids of every root-level variation.
type TreeWire struct {
	Nodes []TreeNodeWire `json:"nodes"`
	Roots []int          `json:"roots"`
}

// TreeJSON serializes the game tree (spec §6 "tree_json").
func (g *Game) TreeJSON() TreeWire {
	t := g.Tree()
	n := t.NodeCount()
	nodes := make([]TreeNodeWire, n)
	for i := 0; i < n; i++ {
		node := t.Node(i)
		children := make([]int, len(node.Children))
		copy(children, node.Children)

		wire := TreeNodeWire{Turn: turnWire(node.Turn), Children: children}
		if node.Parent != tree.Root {
			parent := node.Parent
			wire.Parent = &parent
		}
		nodes[i] = wire
	}
	return TreeWire{Nodes: nodes, Roots: t.RootChildren()}
}

func turnWire(t move.Turn) TurnWire {
	w := TurnWire{Kind: t.Kind.String(), Stone: int8(t.Stone)}
	if t.Kind == move.Play {
		pos := [2]uint8{uint8(t.Point.Col), uint8(t.Point.Row)}
		w.Pos = &pos
	}
	return w
}
