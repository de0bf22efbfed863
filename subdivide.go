package isocurve

import (
	"fmt"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/google/uuid"
)

// Class is the classification of a box by a subdivision driver.
type Class uint8

const (
	// Unclassified boxes were subdivided, or not yet visited.
	Unclassified Class = iota
	// Clear boxes provably contain no curve.
	Clear
	// Curve boxes provably contain a single smooth branch of each curve
	// passing through them.
	Curve
	// Crossing boxes are Curve boxes in which two branches provably cross
	// transversally.
	Crossing
	// Unresolved boxes hit the subdivision limit without being classified.
	Unresolved
)

func (c Class) String() string {
	switch c {
	case Unclassified:
		return "unclassified"
	case Clear:
		return "clear"
	case Curve:
		return "curve"
	case Crossing:
		return "crossing"
	case Unresolved:
		return "unresolved"
	default:
		return fmt.Sprintf("Class(%d)", uint8(c))
	}
}

func (c Class) flags() Flags {
	switch c {
	case Clear:
		return FlagC0
	case Curve:
		return FlagC1
	case Crossing:
		return FlagC1 | FlagCrossing
	default:
		return 0
	}
}

// ClassOf derives a node's class from its flags.
func ClassOf(f Flags) Class {
	switch {
	case f.Has(FlagC1 | FlagCrossing):
		return Crossing
	case f.Has(FlagC1):
		return Curve
	case f.Has(FlagC0):
		return Clear
	default:
		return Unclassified
	}
}

// Result is the outcome of a subdivision run.
type Result struct {
	// Tree is the quadtree built by the run. Its root is the initial box.
	Tree *Tree
	// Clear lists the boxes classified as containing no curve, in the order
	// they were classified.
	Clear []NodeID
	// Curve lists the boxes classified as containing curve branches,
	// including crossing boxes.
	Curve []NodeID
	// Unresolved lists the leaves that reached the subdivision limit.
	Unresolved []NodeID

	fns []Polynomial
}

// Crossing returns the curve boxes in which two branches cross.
func (r *Result) Crossing() []NodeID {
	var out []NodeID
	for _, id := range r.Curve {
		if r.Tree.Flags(id).Has(FlagCrossing) {
			out = append(out, id)
		}
	}
	return out
}

// SignChanges returns the edges of node id along which any of the run's
// functions changes sign. For curve boxes these are the edges through which
// the curves enter and leave the box.
func (r *Result) SignChanges(id NodeID) []Edge {
	b := r.Tree.Box(id)
	var seen [BottomEdge + 1]bool
	for _, f := range r.fns {
		for _, e := range b.SignChanges(f) {
			seen[e] = true
		}
	}
	var out []Edge
	for e := RightEdge; e <= BottomEdge; e++ {
		if seen[e] {
			out = append(out, e)
		}
	}
	return out
}

// Balance balances the result's tree with [Tree.Balance] and replaces the
// nodes it split in Clear and Curve with their leaves, so that both lists keep
// referring to leaves only. It returns the number of leaves split.
func (r *Result) Balance() int {
	split := r.Tree.Balance()
	if split == 0 {
		return 0
	}
	r.Clear = r.leavesOf(r.Clear)
	r.Curve = r.leavesOf(r.Curve)
	return split
}

// leavesOf replaces every internal node in ids with the leaves below it.
func (r *Result) leavesOf(ids []NodeID) []NodeID {
	out := make([]NodeID, 0, len(ids))
	var walk func(id NodeID)
	walk = func(id NodeID) {
		if r.Tree.IsLeaf(id) {
			out = append(out, id)
			return
		}
		for _, kid := range r.Tree.Children(id) {
			walk(kid)
		}
	}
	for _, id := range ids {
		walk(id)
	}
	return out
}

// Boxes returns the boxes of the nodes in ids.
func (r *Result) Boxes(ids []NodeID) []Box {
	out := make([]Box, len(ids))
	for i, id := range ids {
		out[i] = r.Tree.Box(id)
	}
	return out
}

const (
	simpleDriver   = "simple"
	crossingDriver = "crossing"
)

// Subdivide classifies initial with respect to the zero sets of fns.
//
// Boxes are processed breadth first. Each box is tested in turn against [C0]
// (clear), [C0C1] (curve) and [C1] over all functions (curve); a box passing
// none of the tests is split into four and its children are queued.
//
// Boxes that can't be split further because of opts are collected in
// Result.Unresolved and the run continues; in that case the result is
// returned together with an error of type [ErrTypeSubdivisionLimit]. Any
// arithmetic error aborts the run and is returned without a result.
func Subdivide(fns []Polynomial, initial Box, opts Options) (*Result, error) {
	r, err := newRun(simpleDriver, fns, initial, opts)
	if err != nil {
		return nil, err
	}
	return r.run(r.classifySimple)
}

// SubdivideCrossing is like [Subdivide], but handles boxes in which two
// curves cross.
//
// For each box, it determines which functions fail [C0] and [C1]
// individually. With more than two functions failing C0 the box is split.
// With exactly two, both must pass C1 and [Cross] must hold on the box
// enlarged by opts.Neighborhood times its width; the box is then a crossing
// box, otherwise it is split. With exactly one, the box is a curve box if that
// function passes C1 and is split otherwise. With none, the box is clear.
func SubdivideCrossing(fns []Polynomial, initial Box, opts Options) (*Result, error) {
	r, err := newRun(crossingDriver, fns, initial, opts)
	if err != nil {
		return nil, err
	}
	return r.run(r.classifyCrossing)
}

type run struct {
	id     string
	driver string
	fns    []Polynomial
	opts   Options
	res    *Result
	depth  int
}

func newRun(driver string, fns []Polynomial, initial Box, opts Options) (*run, error) {
	if len(fns) == 0 {
		return nil, errors.New("no functions to subdivide for").
			WithType(ErrTypeInvalidArgument)
	}
	if initial.IsEmpty() || initial.IsNaN() || initial.IsInf() {
		return nil, errors.New("initial box must be finite and non-empty").
			WithType(ErrTypeInvalidArgument).
			WithTag("box", initial.String())
	}
	return &run{
		id:     uuid.NewString(),
		driver: driver,
		fns:    fns,
		opts:   opts.normalize(),
		res:    &Result{Tree: NewTree(initial), fns: fns},
	}, nil
}

func (r *run) run(classify func(b Box) (Class, error)) (*Result, error) {
	t := r.res.Tree
	logs.WithTag("run_id", r.id).
		WithTag("driver", r.driver).
		WithTag("functions", len(r.fns)).
		WithTag("box", t.Box(t.Root()).String()).
		Debug("subdivision started")

	queue := []NodeID{t.Root()}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		n := t.Node(id)
		r.depth = max(r.depth, n.Depth)

		c, err := classify(n.Box)
		if err != nil {
			instrumentRunError(r.driver, err)
			logs.WithTag("run_id", r.id).
				WithTag("driver", r.driver).
				WithTag("box", n.Box.String()).
				Debug(err)
			return nil, err
		}

		switch c {
		case Clear:
			r.res.Clear = append(r.res.Clear, id)
		case Curve, Crossing:
			r.res.Curve = append(r.res.Curve, id)
		case Unclassified:
			if !r.opts.canSplit(n) {
				r.res.Unresolved = append(r.res.Unresolved, id)
				instrumentClassified(r.driver, Unresolved)
				continue
			}
			kids := t.Subdivide(id)
			queue = append(queue, kids[:]...)
			instrumentSubdivided(r.driver)
			continue
		}
		t.SetFlags(id, c.flags())
		instrumentClassified(r.driver, c)
	}
	return r.finish()
}

func (r *run) finish() (*Result, error) {
	instrumentRunDepth(r.driver, r.depth)
	logs.WithTag("run_id", r.id).
		WithTag("driver", r.driver).
		WithTag("nodes", r.res.Tree.Len()).
		WithTag("depth", r.depth).
		WithTag("clear", len(r.res.Clear)).
		WithTag("curve", len(r.res.Curve)).
		WithTag("unresolved", len(r.res.Unresolved)).
		Info("subdivision finished")

	if len(r.res.Unresolved) == 0 {
		return r.res, nil
	}
	err := errors.New("subdivision limit reached before all boxes were classified").
		WithType(ErrTypeSubdivisionLimit).
		WithTag("run_id", r.id).
		WithTag("unresolved", len(r.res.Unresolved)).
		WithTag("max_depth", r.opts.MaxDepth).
		WithTag("min_width", r.opts.MinWidth)
	logs.Warn(err)
	instrumentRunError(r.driver, err)
	return r.res, err
}

func (r *run) classifySimple(b Box) (Class, error) {
	if ok, err := C0(r.fns, b); err != nil || ok {
		return Clear, err
	}
	if ok, err := C0C1(r.fns, b); err != nil || ok {
		return Curve, err
	}
	if ok, err := C1(r.fns, b); err != nil || ok {
		return Curve, err
	}
	return Unclassified, nil
}

func (r *run) classifyCrossing(b Box) (Class, error) {
	// Functions whose curve may pass through b. Only these need the C1 test.
	var present []Polynomial
	for _, f := range r.fns {
		ok, err := C0([]Polynomial{f}, b)
		if err != nil {
			return Unclassified, err
		}
		if !ok {
			present = append(present, f)
		}
		if len(present) > 2 {
			return Unclassified, nil
		}
	}
	if len(present) == 0 {
		return Clear, nil
	}

	for _, f := range present {
		ok, err := C1([]Polynomial{f}, b)
		if err != nil || !ok {
			return Unclassified, err
		}
	}
	if len(present) == 1 {
		return Curve, nil
	}

	ok, err := Cross(present[0], present[1], b.Neighborhood(r.opts.Neighborhood))
	if err != nil || !ok {
		return Unclassified, err
	}
	return Crossing, nil
}
