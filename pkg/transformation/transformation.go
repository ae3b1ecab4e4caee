// Package transformation implements the identity of a single point in
// the generalization lattice (C1 of the design): a fixed-length
// generalization vector, its internal lattice index, a monotone id,
// cached utility scores and a set of monotone property bits.
package transformation

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Score is an opaque, totally ordered utility scalar produced and
// compared by a Metric implementation. Transformation never inspects
// the value itself, only stores and compares it via CompareTo.
type Score interface {
	// CompareTo returns <0, 0 or >0 as the receiver is less than,
	// equal to or greater than other.
	CompareTo(other Score) int
	String() string
}

// NeighborLister is the subset of SolutionSpace that
// propagateToNeighbors needs: the ability to enumerate the immediate
// neighbors of a node in either direction and to apply a property to
// them directly, without allocating a Transformation for each one.
type NeighborLister interface {
	// SuccessorIDs returns the ids of every node immediately above id
	// in the lattice (one level up).
	SuccessorIDs(id int64) []int64
	// PredecessorIDs returns the ids of every node immediately below
	// id in the lattice (one level down).
	PredecessorIDs(id int64) []int64
	// ApplyProperty sets p directly on the node with the given id,
	// bypassing construction of a Transformation object.
	ApplyProperty(id int64, p Property)
}

// Transformation is a single point of the generalization lattice.
// The generalization vector, internal index, id and level are fixed at
// construction (Invariant T1); scores and properties are mutable but
// every transition is monotone (never unset, never overwritten with a
// different value once checked).
type Transformation struct {
	generalization []int
	index          []int
	id             int64
	level          int

	checked         bool
	informationLoss Score
	lowerBound      Score
	properties      PropertySet
	data            interface{}
}

// New constructs a Transformation identity. generalization and index
// must have been produced together by a SolutionSpace so that
// Invariant T1 (id = idOf(index), index = toInternal(generalization))
// holds; New does not itself call into a SolutionSpace, to keep this
// package free of a dependency on it.
func New(generalization, index []int, id int64) *Transformation {
	level := 0
	for _, v := range generalization {
		level += v
	}
	return &Transformation{
		generalization: append([]int(nil), generalization...),
		index:          append([]int(nil), index...),
		id:             id,
		level:          level,
	}
}

// Generalization returns the user-facing generalization vector.
func (t *Transformation) Generalization() []int {
	return t.generalization
}

// Index returns the internal lattice coordinate vector.
func (t *Transformation) Index() []int {
	return t.index
}

// ID returns the monotone 64-bit id derived from Index, unique within
// the owning solution space.
func (t *Transformation) ID() int64 {
	return t.id
}

// Level returns the sum of the components of Generalization.
func (t *Transformation) Level() int {
	return t.level
}

// Data returns the opaque, algorithm-private slot a lattice search
// implementation may stash state in. It is a pass-through: this
// package neither interprets nor clears it.
func (t *Transformation) Data() interface{} {
	return t.data
}

// SetData replaces the opaque data slot.
func (t *Transformation) SetData(v interface{}) {
	t.data = v
}

// HasProperty reports whether p has been set on this node.
func (t *Transformation) HasProperty(p Property) bool {
	return t.properties.Has(p)
}

// SetProperty sets p on this node. Properties are monotone: setting an
// already-set property is a no-op.
func (t *Transformation) SetProperty(p Property) {
	t.properties = t.properties.With(p)
}

// IsChecked reports whether setChecked has run for this node.
// Invariant T2 requires that, once true, InformationLoss is non-nil and
// exactly one of PropertyAnonymous/PropertyNotAnonymous holds.
func (t *Transformation) IsChecked() bool {
	return t.checked
}

// InformationLoss returns the cached information-loss score, or nil if
// the node has not been checked yet.
func (t *Transformation) InformationLoss() Score {
	return t.informationLoss
}

// LowerBound returns the cached lower-bound score, or nil if unset.
func (t *Transformation) LowerBound() Score {
	return t.lowerBound
}

// HighestScore and LowestScore both equal InformationLoss once checked:
// this core treats a checked node's score as a point value rather than
// a range (the lattice search heuristics that would otherwise use a
// range are out of scope here).
func (t *Transformation) HighestScore() Score {
	return t.informationLoss
}

func (t *Transformation) LowestScore() Score {
	return t.informationLoss
}

// SetChecked records the outcome of a full privacy/utility check on
// this node: it marks the node checked and caches informationLoss and
// lowerBound. A second call is legal only if it supplies scores that
// compare equal to the ones already cached (idempotent re-checks);
// supplying a different value violates Invariant T2/T3 and returns an
// InvalidArgument error rather than silently overwriting the cache.
func (t *Transformation) SetChecked(informationLoss, lowerBound Score) error {
	if t.checked {
		if t.informationLoss.CompareTo(informationLoss) != 0 {
			return status.Errorf(codes.InvalidArgument,
				"transformation %d already checked with information loss %s, cannot re-set to %s",
				t.id, t.informationLoss, informationLoss)
		}
		if t.lowerBound != nil && lowerBound != nil && t.lowerBound.CompareTo(lowerBound) != 0 {
			return status.Errorf(codes.InvalidArgument,
				"transformation %d already checked with lower bound %s, cannot re-set to %s",
				t.id, t.lowerBound, lowerBound)
		}
		return nil
	}
	t.checked = true
	t.informationLoss = informationLoss
	t.lowerBound = lowerBound
	return nil
}

// PropagateToNeighbors writes property p into every successor (if
// DirectionOf(p) is DirectionUp) or predecessor (DirectionDown) of t,
// using lister to both enumerate and apply. DirectionNone is a no-op.
//
// The neighbor id list is collected in full before any write happens:
// ApplyProperty may cause the lattice to re-index as a side effect of
// marking nodes, and writing while iterating a live view of that index
// would risk an iterator seeing its own mutation.
func (t *Transformation) PropagateToNeighbors(p Property, lister NeighborLister) {
	var ids []int64
	switch DirectionOf(p) {
	case DirectionUp:
		ids = lister.SuccessorIDs(t.id)
	case DirectionDown:
		ids = lister.PredecessorIDs(t.id)
	default:
		return
	}
	snapshot := append([]int64(nil), ids...)
	for _, id := range snapshot {
		lister.ApplyProperty(id, p)
	}
}

// String renders a short diagnostic summary of the transformation, the
// equivalent of the original implementation's toString(): used in logs
// only, never in an invariant.
func (t *Transformation) String() string {
	if t == nil {
		return "Transformation{<input>}"
	}
	state := "unchecked"
	if t.checked {
		state = "checked"
	}
	return fmt.Sprintf("Transformation{id=%d, level=%d, generalization=%v, %s}",
		t.id, t.level, t.generalization, state)
}
