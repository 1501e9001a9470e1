package internal

// Depth controls how far resolution recurses into nested entities.
type Depth int

const (
	// Shallow resolves the root item only.
	Shallow Depth = iota
	// OneLevel resolves the root and its direct children.
	OneLevel
	// Deep resolves the whole reachable graph.
	Deep
)

// String implements fmt.Stringer.
func (d Depth) String() string {
	switch d {
	case Shallow:
		return "shallow"
	case OneLevel:
		return "one_level"
	case Deep:
		return "deep"
	default:
		return "unknown"
	}
}

// child returns the depth applied to children of an item resolved at d.
func (d Depth) child() Depth {
	if d == OneLevel {
		return Shallow
	}
	return Deep
}
