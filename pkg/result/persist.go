package result

import (
	"log"

	"github.com/arxgo/arxgo/pkg/anonymizer"
	"github.com/arxgo/arxgo/pkg/buffer"
	"github.com/arxgo/arxgo/pkg/config"
	"github.com/arxgo/arxgo/pkg/datamanager"
	"github.com/arxgo/arxgo/pkg/definition"
	"github.com/arxgo/arxgo/pkg/lattice"
	"github.com/arxgo/arxgo/pkg/metric"
	"github.com/arxgo/arxgo/pkg/nodechecker"
	"github.com/arxgo/arxgo/pkg/recoding"
	"github.com/arxgo/arxgo/pkg/registry"
	"github.com/arxgo/arxgo/pkg/solutionspace"
	"github.com/arxgo/arxgo/pkg/transformation"
)

// PersistedState is the deserialized shape of the opaque byte stream
// spec.md §6 describes as "readable by the output-handle constructor
// alone; the core treats it as an atom". pkg/store is responsible for
// turning bytes into this struct; this package only consumes it.
type PersistedState struct {
	Header                    []string
	RawData                   *datamanager.Matrix
	Dictionary                *datamanager.Dictionary
	Definition                *definition.DataDefinition
	PrivacyModels             []config.PrivacyModel
	MicroAggregationFunctions map[string]definition.AggregationFunction
	Optimum                   *transformation.Transformation
	SolutionSpace             solutionspace.SolutionSpace
	HistoryBudget             int
	SnapshotBudget            int
}

// Factories supplies the constructors for the collaborators
// FromPersistedState needs but does not itself know how to build
// (concrete DataManager/NodeChecker/Metric/Lattice/Anonymizer
// implementations are out of scope per spec.md §1).
type Factories struct {
	NewDataManager func(state *PersistedState) (datamanager.DataManager, error)
	NewNodeChecker func(manager datamanager.DataManager, def *definition.DataDefinition, cfg config.AnonymizationConfig, historyBudget, snapshotBudget int) (nodechecker.NodeChecker, error)
	NewMetric      func() metric.Metric
	NewLattice     func(space solutionspace.SolutionSpace) lattice.Lattice
	NewAnonymizer  func() anonymizer.Anonymizer
}

// FromPersistedState rebuilds an AnonymizationResult from deserialized
// state. Its side effects run in this order: build a fresh DataManager;
// set the optimum on the lattice; build the input handle (carrying the
// definition) over the manager's generalized and analyzed matrices and
// lock it on the registry; initialize the config against the manager;
// initialize the metric; construct a NodeChecker with the given
// history/snapshot budgets. No input subset is created on the
// registry, and the manager's static matrix is not attached to the
// input handle.
func FromPersistedState(state *PersistedState, cfg config.AnonymizationConfig, factories Factories, logger *log.Logger) (*AnonymizationResult, error) {
	if logger == nil {
		logger = log.Default()
	}
	reg := registry.New(logger)

	// Step: build a fresh DataManager from (header, raw data matrix,
	// dictionary, definition, privacy models, microaggregation
	// functions).
	manager, err := factories.NewDataManager(state)
	if err != nil {
		return nil, err
	}

	// Step: set the optimum on the lattice.
	lat := factories.NewLattice(state.SolutionSpace)
	lat.SetOptimum(state.Optimum)

	// Step: attach the definition and lock the input handle. The
	// input handle is modeled as a DataHandleOutput with a nil node
	// (this design collapses ARX's separate DataHandleInput/
	// DataHandleOutput types into one; a nil node marks "not produced
	// from applying any single transformation").
	inputBuffer, err := buffer.NewOutputBuffer(
		manager.GeneralizedMatrix(),
		manager.AnalyzedMatrix(),
		manager.GeneralizedMatrix(),
		nil,
		state.Dictionary,
	)
	if err != nil {
		return nil, err
	}
	inputHandle := buffer.New(inputBuffer, manager, state.Definition, cfg, reg, false)
	reg.Lock(inputHandle, nil)

	// Step: initialize the config against the manager.
	if err := cfg.Initialize(manager); err != nil {
		return nil, err
	}

	// Step: initialize the metric against (manager, definition,
	// generalized data, hierarchies, config).
	met := factories.NewMetric()
	if err := met.Initialize(manager, state.Definition, manager.GeneralizedMatrix(), manager.Hierarchies(), cfg); err != nil {
		return nil, err
	}

	// Step: construct a NodeChecker with the provided history/
	// snapshot budgets.
	checker, err := factories.NewNodeChecker(manager, state.Definition, cfg, state.HistoryBudget, state.SnapshotBudget)
	if err != nil {
		return nil, err
	}

	anon := factories.NewAnonymizer()

	return &AnonymizationResult{
		anon:          anon,
		registry:      reg,
		manager:       manager,
		checker:       checker,
		def:           state.Definition,
		cfg:           cfg,
		lat:           lat,
		solutionSpace: state.SolutionSpace,
		optimizer:     recoding.New(anon, checker, manager, state.Definition, cfg),
		logger:        logger,
	}, nil
}
