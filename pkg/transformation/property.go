package transformation

// Direction indicates how a Property propagates through the
// generalization lattice once it has been observed on a node.
type Direction int

const (
	// DirectionNone means the property is local to the node it was
	// set on; it does not propagate.
	DirectionNone Direction = iota
	// DirectionUp means the property is inherited by every successor
	// of the node (more generalized nodes).
	DirectionUp
	// DirectionDown means the property is inherited by every
	// predecessor of the node (less generalized nodes).
	DirectionDown
)

// Property is one of the monotone bits a Transformation may carry.
// Property identity is a small integer so that a PropertySet can be
// represented as a bitmap.
type Property int

const (
	PropertyAnonymous Property = iota
	PropertyNotAnonymous
	PropertyKAnonymous
	PropertyNotKAnonymous
	PropertyChecked
	PropertyForceSnapshot
	PropertyInsufficientUtility
	PropertySuccessorsPruned
	PropertyVisited

	numProperties
)

// directionOf is the direction each property propagates with once set.
// Anonymity and its negation, together with the pruning bits derived
// from them, follow the lattice's monotonicity: generalizing further
// can only preserve or improve privacy, never weaken it, so anonymity
// propagates upward and its negation propagates downward.
var directionOf = map[Property]Direction{
	PropertyAnonymous:           DirectionUp,
	PropertyNotAnonymous:        DirectionDown,
	PropertyKAnonymous:          DirectionUp,
	PropertyNotKAnonymous:       DirectionDown,
	PropertyChecked:             DirectionNone,
	PropertyForceSnapshot:       DirectionNone,
	PropertyInsufficientUtility: DirectionUp,
	PropertySuccessorsPruned:    DirectionNone,
	PropertyVisited:             DirectionNone,
}

// DirectionOf returns the propagation direction associated with p.
func DirectionOf(p Property) Direction {
	return directionOf[p]
}

// AllProperties enumerates every known Property, in declaration order.
func AllProperties() []Property {
	props := make([]Property, 0, int(numProperties))
	for p := Property(0); p < numProperties; p++ {
		props = append(props, p)
	}
	return props
}

// PropertySet is a bitmap over Property values. The zero value is the
// empty set.
type PropertySet uint32

// Has reports whether p is a member of the set.
func (s PropertySet) Has(p Property) bool {
	return s&(1<<uint(p)) != 0
}

// With returns a new set with p added. Properties are monotone: once
// set, a bit is never cleared, so this is the only mutator a
// PropertySet needs.
func (s PropertySet) With(p Property) PropertySet {
	return s | (1 << uint(p))
}
