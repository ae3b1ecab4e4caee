// Package result implements the AnonymizationResult façade (C8): the
// object a finished search is wrapped in, and the single entry point
// callers use to materialize outputs and drive local recoding.
package result

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/arxgo/arxgo/pkg/anonymizer"
	"github.com/arxgo/arxgo/pkg/arxerrors"
	"github.com/arxgo/arxgo/pkg/buffer"
	"github.com/arxgo/arxgo/pkg/config"
	"github.com/arxgo/arxgo/pkg/datamanager"
	"github.com/arxgo/arxgo/pkg/definition"
	"github.com/arxgo/arxgo/pkg/lattice"
	"github.com/arxgo/arxgo/pkg/metrics"
	"github.com/arxgo/arxgo/pkg/nodechecker"
	"github.com/arxgo/arxgo/pkg/progress"
	"github.com/arxgo/arxgo/pkg/recoding"
	"github.com/arxgo/arxgo/pkg/registry"
	"github.com/arxgo/arxgo/pkg/solutionspace"
	"github.com/arxgo/arxgo/pkg/tracing"
	"github.com/arxgo/arxgo/pkg/transformation"
)

// AnonymizationResult is the façade a finished anonymization run, or a
// deserialized one, is wrapped in. It is not internally synchronized
// (spec.md §5): callers sharing one instance across goroutines must
// serialize every entry point themselves.
type AnonymizationResult struct {
	anon          anonymizer.Anonymizer
	registry      *registry.ResultRegistry
	manager       datamanager.DataManager
	checker       nodechecker.NodeChecker
	def           *definition.DataDefinition
	cfg           config.AnonymizationConfig
	lat           lattice.Lattice
	duration      time.Duration
	solutionSpace solutionspace.SolutionSpace
	optimizer     *recoding.Optimizer
	logger        *log.Logger
}

// NewFromRun wraps the collaborators a just-finished search produced
// (spec.md §4.2, "Construction from a finished run").
func NewFromRun(
	anon anonymizer.Anonymizer,
	reg *registry.ResultRegistry,
	manager datamanager.DataManager,
	checker nodechecker.NodeChecker,
	def *definition.DataDefinition,
	cfg config.AnonymizationConfig,
	lat lattice.Lattice,
	duration time.Duration,
	solutionSpace solutionspace.SolutionSpace,
	logger *log.Logger,
) *AnonymizationResult {
	if logger == nil {
		logger = log.Default()
	}
	if reg == nil {
		reg = registry.New(logger)
	}
	return &AnonymizationResult{
		anon:          anon,
		registry:      reg,
		manager:       manager,
		checker:       checker,
		def:           def,
		cfg:           cfg,
		lat:           lat,
		duration:      duration,
		solutionSpace: solutionSpace,
		optimizer:     recoding.New(anon, checker, manager, def, cfg),
		logger:        logger,
	}
}

// GlobalOptimum returns the best known node, or nil if the
// configuration is unsatisfiable.
func (r *AnonymizationResult) GlobalOptimum() *transformation.Transformation {
	return r.lat.GlobalOptimum()
}

// IsAvailable reports whether a satisfying transformation was found.
func (r *AnonymizationResult) IsAvailable() bool {
	return r.GlobalOptimum() != nil
}

// Configuration returns the active configuration.
func (r *AnonymizationResult) Configuration() config.AnonymizationConfig {
	return r.cfg
}

// DataDefinition returns the active data definition.
func (r *AnonymizationResult) DataDefinition() *definition.DataDefinition {
	return r.def
}

// Lattice returns the search space this result was drawn from.
func (r *AnonymizationResult) Lattice() lattice.Lattice {
	return r.lat
}

// DurationMillis returns the wall-clock duration of the search that
// produced this result, in milliseconds.
func (r *AnonymizationResult) DurationMillis() int64 {
	return r.duration.Milliseconds()
}

// Summary renders a one-line diagnostic description of the run,
// mirroring the original implementation's ARXResult.getTime()-adjacent
// logging (spec.md §3 of SPEC_FULL.md).
func (r *AnonymizationResult) Summary() string {
	optimum := r.GlobalOptimum()
	if optimum == nil {
		return fmt.Sprintf("AnonymizationResult{no solution, duration=%dms}", r.DurationMillis())
	}
	return fmt.Sprintf("AnonymizationResult{optimum=%s, duration=%dms}", optimum, r.DurationMillis())
}

// Output returns an output handle for node (or, if node is nil, the
// global optimum), following the protocol of spec.md §4.3.
func (r *AnonymizationResult) Output(ctx context.Context, node *transformation.Transformation, fork bool) (h *buffer.DataHandleOutput, err error) {
	start := time.Now()
	ctx, finishSpan := tracing.StartSpan(ctx, "result.Output", "fork", fmt.Sprint(fork))
	defer func() {
		outcome := "success"
		if err != nil {
			outcome = "error"
		}
		metrics.ObserveOutput(outcome, fork, time.Since(start))
		finishSpan(err)
	}()

	if node == nil {
		node = r.lat.GlobalOptimum()
		if node == nil {
			return nil, arxerrors.InvalidArgument("no global optimum available")
		}
	}

	// Step 1: lock guard.
	if fork && r.registry.IsLocked() {
		return nil, arxerrors.BufferLocked(node)
	}

	// Step 2: unlock-path reuse.
	if !fork {
		if h, lockedNode, ok := r.registry.LockedHandle(); ok {
			if lockedNode.ID() == node.ID() && !h.Optimized() {
				return h, nil
			}
			r.registry.ReleaseBuffer(h)
		}
	}

	// Step 3: cache hit.
	if h, ok := r.registry.CachedHandle(node); ok {
		if !h.Optimized() {
			return h, nil
		}
		r.registry.CacheInvalidate(node)
	}

	// Step 4: apply the transformation.
	data, err := r.checker.Apply(node)
	if err != nil {
		return nil, err
	}
	r.checker.Reset()

	// Step 5: lattice back-annotation, skipped only if the node was
	// already fully resolved by a prior check.
	alreadyResolved := node.IsChecked() && node.HighestScore() != nil &&
		node.HighestScore().CompareTo(node.LowestScore()) == 0
	if !alreadyResolved {
		for _, p := range transformation.AllProperties() {
			if data.Properties.Has(p) {
				node.SetProperty(p)
			}
		}
		if data.Properties.Has(transformation.PropertyAnonymous) {
			node.SetProperty(transformation.PropertyAnonymous)
		} else {
			node.SetProperty(transformation.PropertyNotAnonymous)
		}
		if err := node.SetChecked(data.InformationLoss, data.LowerBound); err != nil {
			return nil, err
		}
		r.lat.EstimateInformationLossBounds(node)
	}

	// Step 6/7: build the buffer, forking if requested.
	rawBuffer, err := buffer.NewOutputBuffer(data.BufferGeneralized, data.BufferMicroaggregated, r.checker.InputBuffer(), node, r.manager.Dictionary())
	if err != nil {
		return nil, err
	}
	if fork {
		rawBuffer, err = rawBuffer.Fork(ctx)
		if err != nil {
			return nil, err
		}
	}
	h = buffer.New(rawBuffer, r.manager, r.def, r.cfg, r.registry, fork)

	// Step 8: lock, unforked only.
	if !fork {
		r.registry.CacheStore(node, h)
		r.registry.Lock(h, node)
	}

	return h, nil
}

// IsOptimizable reports whether handle is eligible for local recoding
// (spec.md §4.4 precondition).
func (r *AnonymizationResult) IsOptimizable(handle *buffer.DataHandleOutput) bool {
	return r.optimizer.IsOptimizable(handle)
}

// Optimize is the single-step convenience wrapper (spec.md §4.2).
func (r *AnonymizationResult) Optimize(ctx context.Context, handle *buffer.DataHandleOutput, gsFactor float64, listener progress.Listener) (int, error) {
	return r.optimizer.Optimize(ctx, handle, gsFactor, listener)
}

// OptimizeFast runs a single local-recoding step (spec.md §4.4).
func (r *AnonymizationResult) OptimizeFast(ctx context.Context, handle *buffer.DataHandleOutput, records, gsFactor float64, listener progress.Listener) (int, error) {
	return r.optimizer.OptimizeFast(ctx, handle, records, gsFactor, listener)
}

// OptimizeIterative runs the greedy iterative refinement of spec.md
// §4.5.
func (r *AnonymizationResult) OptimizeIterative(ctx context.Context, handle *buffer.DataHandleOutput, gsFactor float64, maxIterations int, adaption float64, listener progress.Listener) (int, error) {
	return r.optimizer.OptimizeIterative(ctx, handle, gsFactor, maxIterations, adaption, listener)
}

// OptimizeIterativeFast runs the batched-by-fraction variant of
// spec.md §4.5.
func (r *AnonymizationResult) OptimizeIterativeFast(ctx context.Context, handle *buffer.DataHandleOutput, records, gsFactor float64, listener progress.Listener) (int, error) {
	return r.optimizer.OptimizeIterativeFast(ctx, handle, records, gsFactor, listener)
}
