// Package nodechecker declares the NodeChecker collaborator interface
// (C4): the component that, given a Transformation, applies it to the
// underlying data manager's matrices and returns a scored, classified
// bundle. The concrete privacy models and the search heuristics that
// decide which node to check next are out of scope per spec.md §1.
package nodechecker

import (
	"github.com/arxgo/arxgo/pkg/datamanager"
	"github.com/arxgo/arxgo/pkg/transformation"
)

// TransformedData is the bundle a NodeChecker produces for one applied
// Transformation.
type TransformedData struct {
	// BufferGeneralized holds the generalized quasi-identifier codes
	// produced by applying the transformation, one row per input row.
	// Column 0's high bit is the outlier mask (Invariant O2).
	BufferGeneralized *datamanager.Matrix
	// BufferMicroaggregated holds the microaggregated attribute
	// values, or nil if the configuration has none.
	BufferMicroaggregated *datamanager.Matrix
	// Properties is the set of monotone property bits this check
	// determined for the node (at minimum, exactly one of
	// PropertyAnonymous/PropertyNotAnonymous).
	Properties transformation.PropertySet
	// InformationLoss is the utility cost of this transformation.
	InformationLoss transformation.Score
	// LowerBound is a lower bound on the information loss of every
	// successor of this node, used by the lattice to prune the
	// search space.
	LowerBound transformation.Score
}

// NodeChecker applies transformations to a DataManager's matrices and
// classifies the result against the configured privacy models.
type NodeChecker interface {
	// Apply runs t against the checker's own input buffer and
	// dictionary, returning a scored TransformedData bundle.
	Apply(t *transformation.Transformation) (*TransformedData, error)
	// ApplyWithDictionary is identical to Apply, except that codes
	// produced by microaggregation are interned into dict instead of
	// the checker's own dictionary. Used by local recoding (spec.md
	// §4.4 step 8) so that merged rows remain comparable with the
	// outer output's existing codes.
	ApplyWithDictionary(t *transformation.Transformation, dict *datamanager.Dictionary) (*TransformedData, error)
	// Reset releases any per-check scratch state the checker
	// accumulated during the most recent Apply call. Called once after
	// each Apply made by output() (spec.md §4.3 step 4); an output()
	// call that returns a locked or cached handle applies nothing and
	// does not call it.
	Reset()
	// InputBuffer returns the generalized matrix this checker applies
	// transformations against, used for the provenance identity check
	// in isOptimizable (spec.md §4.4 precondition).
	InputBuffer() *datamanager.Matrix
}
