// Package metric declares the Metric collaborator interface: the
// information-loss scoring function a NodeChecker consults when
// classifying a Transformation. Concrete metrics (e.g. loss, entropy,
// precision) are out of scope per spec.md §1.
package metric

import (
	"github.com/arxgo/arxgo/pkg/config"
	"github.com/arxgo/arxgo/pkg/datamanager"
	"github.com/arxgo/arxgo/pkg/definition"
)

// Metric scores the information loss of a generalized dataset.
type Metric interface {
	// Initialize prepares the metric for a run over manager's data,
	// given the attached definition, a seed view of the generalized
	// matrix, the hierarchies in play and the active configuration.
	// Called once by result.FromPersistedState; result.NewFromRun does
	// not call it.
	Initialize(
		manager datamanager.DataManager,
		def *definition.DataDefinition,
		generalizedData *datamanager.Matrix,
		hierarchies []datamanager.Hierarchy,
		cfg config.AnonymizationConfig,
	) error
}
