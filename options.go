package isocurve

// Options configure the subdivision drivers.
//
// Fields left at their zero value take the value from [DefaultOptions], so
// Options{} is a valid configuration.
type Options struct {
	// MaxDepth is the depth at which a box is no longer subdivided. The root
	// has depth 0. Boxes that reach it without being classified are reported
	// as unresolved.
	MaxDepth int

	// MinWidth stops subdivision of boxes whose width is at or below it.
	// Zero disables the check; use MaxDepth alone.
	MinWidth float64

	// Neighborhood is the factor by which [SubdivideCrossing] enlarges a box,
	// relative to its width, before testing two branches for transversality.
	Neighborhood float64
}

// DefaultOptions are the options used for fields left unset.
//
// Without a limit, subdivision never terminates near a singular point of a
// curve, where neither predicate can succeed. A depth of 24 shrinks the
// initial box by a factor of about 1.7e7 before giving up.
var DefaultOptions = Options{
	MaxDepth:     24,
	MinWidth:     0,
	Neighborhood: 6.5,
}

func (o Options) WithMaxDepth(depth int) Options     { o.MaxDepth = depth; return o }
func (o Options) WithMinWidth(width float64) Options { o.MinWidth = width; return o }
func (o Options) WithNeighborhood(w float64) Options { o.Neighborhood = w; return o }

func (o Options) normalize() Options {
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultOptions.MaxDepth
	}
	if o.MinWidth < 0 {
		o.MinWidth = DefaultOptions.MinWidth
	}
	if o.Neighborhood <= 0 {
		o.Neighborhood = DefaultOptions.Neighborhood
	}
	return o
}

// canSplit reports whether node n may be subdivided further.
func (o Options) canSplit(n Node) bool {
	if n.Depth >= o.MaxDepth {
		return false
	}
	if o.MinWidth > 0 && n.Box.Width() <= o.MinWidth {
		return false
	}
	return true
}
