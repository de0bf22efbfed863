package isocurve

import "fmt"

// NodeID identifies a node in a [Tree].
type NodeID int32

// NoNode is the NodeID of a missing parent or child.
const NoNode NodeID = -1

// Flags hold a node's classification.
type Flags uint8

const (
	// FlagMark is free for use by consumers of the tree, such as curve
	// reconstruction. The drivers never set it.
	FlagMark Flags = 1 << iota
	// FlagC0 is set on boxes that provably contain no curve.
	FlagC0
	// FlagC1 is set on boxes that provably contain a smooth, non-singular
	// curve branch.
	FlagC1
	// FlagCrossing is set, together with FlagC1, on boxes where two
	// branches provably cross transversally.
	FlagCrossing
	// FlagBalanced is set on nodes created by [Tree.Balance].
	FlagBalanced
)

const classFlags = FlagC0 | FlagC1 | FlagCrossing

func (f Flags) Has(o Flags) bool { return f&o == o }

func (f Flags) String() string {
	if f == 0 {
		return "0"
	}
	names := [...]string{"mark", "c0", "c1", "crossing", "balanced"}
	var s string
	for i, name := range names {
		if f&(1<<i) != 0 {
			if s != "" {
				s += "|"
			}
			s += name
		}
	}
	return s
}

// Node is a quadtree node. Parent is a back reference; the children are
// owned by the tree's arena.
type Node struct {
	Box      Box
	Parent   NodeID
	Children [4]NodeID
	Depth    int
	Flags    Flags
}

// IsLeaf reports whether the node has not been subdivided.
func (n Node) IsLeaf() bool { return n.Children[0] == NoNode }

// Tree is a quadtree over an initial box, stored as an arena of nodes
// addressed by [NodeID]. Nodes are never removed.
type Tree struct {
	nodes []Node
}

// NewTree returns a tree consisting of a single root node covering root.
func NewTree(root Box) *Tree {
	t := &Tree{}
	t.add(root, NoNode, 0)
	return t
}

func (t *Tree) add(b Box, parent NodeID, depth int) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, Node{
		Box:      b,
		Parent:   parent,
		Children: [4]NodeID{NoNode, NoNode, NoNode, NoNode},
		Depth:    depth,
	})
	return id
}

// Root returns the ID of the root node.
func (t *Tree) Root() NodeID { return 0 }

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int { return len(t.nodes) }

// Node returns a copy of node id.
func (t *Tree) Node(id NodeID) Node { return t.nodes[id] }

func (t *Tree) Box(id NodeID) Box            { return t.nodes[id].Box }
func (t *Tree) Parent(id NodeID) NodeID      { return t.nodes[id].Parent }
func (t *Tree) Children(id NodeID) [4]NodeID { return t.nodes[id].Children }
func (t *Tree) Depth(id NodeID) int          { return t.nodes[id].Depth }
func (t *Tree) IsLeaf(id NodeID) bool        { return t.nodes[id].IsLeaf() }
func (t *Tree) Flags(id NodeID) Flags        { return t.nodes[id].Flags }

// SetFlags adds f to the flags of node id.
func (t *Tree) SetFlags(id NodeID, f Flags) { t.nodes[id].Flags |= f }

// Mark sets [FlagMark] on node id.
func (t *Tree) Mark(id NodeID) { t.SetFlags(id, FlagMark) }

// Subdivide splits node id into four children covering the quadrants of its
// box, in the order returned by [Box.Subdivide], and returns their IDs.
//
// Subdividing a node that already has children returns the existing children.
func (t *Tree) Subdivide(id NodeID) [4]NodeID {
	n := t.nodes[id]
	if !n.IsLeaf() {
		return n.Children
	}
	var kids [4]NodeID
	for i, b := range n.Box.Subdivide() {
		kids[i] = t.add(b, id, n.Depth+1)
	}
	t.nodes[id].Children = kids
	return kids
}

// Leaves returns the IDs of all leaf nodes, depth first in child order.
func (t *Tree) Leaves() []NodeID {
	var out []NodeID
	stack := []NodeID{t.Root()}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := t.nodes[id]
		if n.IsLeaf() {
			out = append(out, id)
			continue
		}
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, n.Children[i])
		}
	}
	return out
}

// Balance subdivides classified leaves until any two neighboring leaves
// differ in depth by at most one, so that their widths differ by at most a
// factor of two. New nodes inherit their parent's classification and are
// flagged [FlagBalanced]. Leaves without a classification are never split.
//
// Depths rather than widths are compared: boxes of the same depth can differ
// in width by a few ulps.
//
// Balance returns the number of leaves it split. A [Result] referring to the
// tree should be balanced with [Result.Balance] instead, which keeps its lists
// of boxes in sync.
func (t *Tree) Balance() int {
	split := 0
	for {
		leaves := t.Leaves()
		changed := false
		for _, id := range leaves {
			n := t.nodes[id]
			if n.Flags&classFlags == 0 || !n.IsLeaf() {
				continue
			}
			for _, o := range leaves {
				on := t.nodes[o]
				if on.Depth <= n.Depth+1 || !on.IsLeaf() || !n.Box.IsNeighbor(on.Box) {
					continue
				}
				for _, kid := range t.Subdivide(id) {
					t.SetFlags(kid, n.Flags&classFlags|FlagBalanced)
				}
				split++
				changed = true
				break
			}
		}
		if !changed {
			return split
		}
	}
}

func (t *Tree) String() string {
	return fmt.Sprintf("Tree(%d nodes, root %s)", len(t.nodes), t.nodes[0].Box)
}
