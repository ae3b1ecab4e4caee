// Package solutionspace declares the SolutionSpace collaborator
// interface (C2): the bijection between user-facing generalization
// vectors and the lattice's internal coordinate indices, together with
// the property/score registry keyed by transformation id. The lattice
// traversal algorithm itself is out of scope per spec.md §1.
package solutionspace

import "github.com/arxgo/arxgo/pkg/transformation"

// SolutionSpace is the authority for transformation identity and for
// per-id property/score storage. A transformation.Transformation has
// immutable identity plus its own monotone score and property cells;
// SolutionSpace is the id-indexed store of that state for every node
// of the lattice.
type SolutionSpace interface {
	// ToInternal converts a user-facing generalization vector into
	// the lattice's internal coordinate vector.
	ToInternal(generalization []int) []int
	// FromInternal is the inverse of ToInternal.
	FromInternal(index []int) []int
	// IDOf returns the monotone id for an internal index vector.
	IDOf(index []int) int64
	// TransformationFor resolves a user-facing generalization vector
	// to its Transformation, reading back any cached scores/
	// properties already recorded for its id.
	TransformationFor(generalization []int) *transformation.Transformation

	// PropertyAnonymous and the other property accessors below name
	// the Property constant each uses internally, allowing a caller
	// that only holds a SolutionSpace reference (not the
	// transformation package) to test/set properties symbolically.
	PropertyAnonymous() transformation.Property
	PropertyNotAnonymous() transformation.Property
	PropertyKAnonymous() transformation.Property
	PropertyNotKAnonymous() transformation.Property
	PropertyChecked() transformation.Property
	PropertyForceSnapshot() transformation.Property
	PropertyInsufficientUtility() transformation.Property
	PropertySuccessorsPruned() transformation.Property
	PropertyVisited() transformation.Property

	// InformationLoss and LowerBound return the score cached for id,
	// or nil if unset.
	InformationLoss(id int64) transformation.Score
	LowerBound(id int64) transformation.Score
	// SetInformationLoss and SetLowerBound cache a score for id.
	// Callers are responsible for the monotonicity discipline of
	// Transformation.SetChecked; this is the raw per-id store it
	// reads and writes through.
	SetInformationLoss(id int64, score transformation.Score)
	SetLowerBound(id int64, score transformation.Score)

	// transformation.NeighborLister lets Transformation.
	// PropagateToNeighbors enumerate and mutate neighboring nodes
	// without allocating a Transformation per neighbor.
	transformation.NeighborLister
}
