package isocurve

import (
	"io"

	"github.com/segmentio/encoding/json"
)

// jsonBox is the exported form of a leaf of the quadtree.
type jsonBox struct {
	X        [2]float64 `json:"x"`
	Y        [2]float64 `json:"y"`
	Class    string     `json:"class"`
	Depth    int        `json:"depth"`
	Balanced bool       `json:"balanced,omitempty"`
	Edges    []string   `json:"edges,omitempty"`
}

type jsonResult struct {
	Bounds jsonBox   `json:"bounds"`
	Boxes  []jsonBox `json:"boxes"`
}

func newJSONBox(n Node, c Class) jsonBox {
	return jsonBox{
		X:        [2]float64{n.Box.X.Lower, n.Box.X.Upper},
		Y:        [2]float64{n.Box.Y.Lower, n.Box.Y.Upper},
		Class:    c.String(),
		Depth:    n.Depth,
		Balanced: n.Flags.Has(FlagBalanced),
	}
}

// MarshalJSON encodes the leaves of the result's tree, in depth-first order,
// for consumption by a curve reconstruction stage. Leaves created by
// [Tree.Balance] are included. Curve boxes list the edges reported by
// [Result.SignChanges].
func (r *Result) MarshalJSON() ([]byte, error) {
	unresolved := make(map[NodeID]bool, len(r.Unresolved))
	for _, id := range r.Unresolved {
		unresolved[id] = true
	}

	t := r.Tree
	root := t.Node(t.Root())
	out := jsonResult{
		Bounds: newJSONBox(root, ClassOf(root.Flags)),
	}
	for _, id := range t.Leaves() {
		n := t.Node(id)
		c := ClassOf(n.Flags)
		if unresolved[id] {
			c = Unresolved
		}
		jb := newJSONBox(n, c)
		if c == Curve || c == Crossing {
			for _, e := range r.SignChanges(id) {
				jb.Edges = append(jb.Edges, e.String())
			}
		}
		out.Boxes = append(out.Boxes, jb)
	}
	return json.Marshal(out)
}

// WriteJSON writes the JSON encoding of r to w.
func (r *Result) WriteJSON(w io.Writer) error {
	return json.NewEncoder(w).Encode(r)
}
