// Package lattice declares the Lattice collaborator interface: the
// partial order of generalization vectors a search traverses, reduced
// here to the operations the result/optimizer subsystem needs after
// a search has already run. The traversal algorithm itself
// (flash/heuristic search) is out of scope per spec.md §1.
package lattice

import "github.com/arxgo/arxgo/pkg/transformation"

// Lattice is the search space a completed or in-progress anonymization
// run navigates.
type Lattice interface {
	// GlobalOptimum returns the best known node satisfying every
	// privacy model, or nil if none has been found (e.g. the
	// configuration is unsatisfiable).
	GlobalOptimum() *transformation.Transformation
	// SetOptimum records node as the global optimum. Used by the
	// deserialization constructor (spec.md §4.2) to restore a
	// lattice's optimum from persisted state.
	SetOptimum(node *transformation.Transformation)
	// EstimateInformationLossBounds re-derives the lattice's global
	// information-loss bounds after a node has been freshly checked
	// (spec.md §4.3 step 5). Implementations typically use this to
	// tighten pruning bounds for nodes not yet visited; it has no
	// externally observable return value in this core.
	EstimateInformationLossBounds(node *transformation.Transformation)
}
