// Package anonymizer declares the narrow interface the result and
// recoding packages need for the lattice-search collaborator: the
// entry point that runs a fresh search over a (manager, definition,
// config) triple and returns the collaborators the rest of the engine
// operates on. The search algorithm itself (flash/heuristic traversal)
// is out of scope per spec.md §1.
package anonymizer

import (
	"context"

	"github.com/arxgo/arxgo/pkg/config"
	"github.com/arxgo/arxgo/pkg/datamanager"
	"github.com/arxgo/arxgo/pkg/definition"
	"github.com/arxgo/arxgo/pkg/lattice"
	"github.com/arxgo/arxgo/pkg/nodechecker"
	"github.com/arxgo/arxgo/pkg/progress"
	"github.com/arxgo/arxgo/pkg/solutionspace"
	"github.com/arxgo/arxgo/pkg/transformation"
)

// Run bundles the collaborators a completed search produced.
type Run struct {
	Manager       datamanager.DataManager
	Checker       nodechecker.NodeChecker
	Lattice       lattice.Lattice
	SolutionSpace solutionspace.SolutionSpace
	Optimum       *transformation.Transformation // nil if unsatisfiable
}

// Anonymizer runs the lattice search.
type Anonymizer interface {
	// Anonymize searches for a transformation of manager's data
	// satisfying every privacy model in cfg while minimizing
	// information loss, per def's column roles. Returns a Run with a
	// nil Optimum (not an error) if the configuration is
	// unsatisfiable (spec.md §4.4 step 7's "no-solution").
	Anonymize(ctx context.Context, manager datamanager.DataManager, def *definition.DataDefinition, cfg config.AnonymizationConfig) (*Run, error)

	// Fork returns a new Anonymizer, parameterized from this one (it
	// inherits any parser/search state the original holds — spec.md
	// §9's "cyclic dependency anonymizer↔result": "a new anonymizer
	// is constructed inside optimize, parameterized from the borrowed
	// one. No ownership cycle"), reporting search progress to
	// listener.
	Fork(listener progress.Listener) Anonymizer
}
