// Package recoding implements the local-recoding optimizer (C7): the
// largest component of the design by design-doc share. It re-runs the
// anonymization pipeline over a projected subset of outlier rows and
// merges the result back into an output buffer under strict rollback
// discipline.
package recoding

import (
	"context"
	"fmt"
	"math"

	"github.com/arxgo/arxgo/pkg/anonymizer"
	"github.com/arxgo/arxgo/pkg/arxerrors"
	"github.com/arxgo/arxgo/pkg/buffer"
	"github.com/arxgo/arxgo/pkg/config"
	"github.com/arxgo/arxgo/pkg/datamanager"
	"github.com/arxgo/arxgo/pkg/definition"
	"github.com/arxgo/arxgo/pkg/metrics"
	"github.com/arxgo/arxgo/pkg/nodechecker"
	"github.com/arxgo/arxgo/pkg/progress"
	"github.com/arxgo/arxgo/pkg/tracing"
)

// Optimizer is the local-recoding optimizer bound to one finished
// anonymization run. Its fields are the "outer" collaborators the run
// produced; every OptimizeFast call additionally takes the specific
// output handle being refined.
type Optimizer struct {
	anon    anonymizer.Anonymizer
	checker nodechecker.NodeChecker
	manager datamanager.DataManager
	def     *definition.DataDefinition
	cfg     config.AnonymizationConfig
}

// New binds an Optimizer to the outer run's collaborators. anon is a
// borrowed reference: OptimizeFast forks a new Anonymizer from it per
// call rather than reusing it directly (spec.md §9).
func New(
	anon anonymizer.Anonymizer,
	checker nodechecker.NodeChecker,
	manager datamanager.DataManager,
	def *definition.DataDefinition,
	cfg config.AnonymizationConfig,
) *Optimizer {
	return &Optimizer{anon: anon, checker: checker, manager: manager, def: def, cfg: cfg}
}

// countOutliers scans every row of handle and returns the outlier
// count.
func countOutliers(handle *buffer.DataHandleOutput) int {
	n := 0
	for r := 0; r < handle.Rows(); r++ {
		if handle.IsOutlier(r) {
			n++
		}
	}
	return n
}

// buildOutlierRowSet scans all rows of handle, including row r in the
// returned RowSet iff handle.IsOutlier(r) (spec.md §4.4 step 3).
func buildOutlierRowSet(handle *buffer.DataHandleOutput) *datamanager.RowSet {
	rowSet := datamanager.NewRowSet(handle.Rows())
	for r := 0; r < handle.Rows(); r++ {
		if handle.IsOutlier(r) {
			rowSet.Add(r)
		}
	}
	return rowSet
}

// IsOptimizable reports whether handle is a candidate for local
// recoding (spec.md §4.4 precondition). All of the following must
// hold: handle's input buffer is identical (by reference or content
// digest) to the checker's own input buffer; every configured privacy
// model advertises local-recoding support; the outlier row count is
// non-zero and, if the configuration's minimal group size is finite,
// at or above it.
//
// The outlier-count/minimal-group-size comparison is kept exactly as
// specified even though the inequality direction reads unusually for a
// group-size guard (spec.md §9, open question) — this implementation
// does not attempt to "fix" it.
func (o *Optimizer) IsOptimizable(handle *buffer.DataHandleOutput) bool {
	if handle == nil {
		return false
	}
	if !buffer.SameProvenance(handle.Buffer().Input(), o.checker.InputBuffer()) {
		return false
	}
	for _, model := range o.cfg.PrivacyModels() {
		if !model.SupportsLocalRecoding() {
			return false
		}
	}
	outliers := countOutliers(handle)
	if outliers == 0 {
		return false
	}
	if minGroup := o.cfg.MinimalGroupSize(); !math.IsInf(minGroup, 1) && float64(outliers) < minGroup {
		return false
	}
	return true
}

// Optimize is the convenience wrapper of spec.md §4.2: a single
// optimizeFast step with no records bound. A nil listener is accepted
// here and replaced with progress.Noop.
func (o *Optimizer) Optimize(ctx context.Context, handle *buffer.DataHandleOutput, gsFactor float64, listener progress.Listener) (int, error) {
	if listener == nil {
		listener = progress.Noop
	}
	return o.OptimizeFast(ctx, handle, math.NaN(), gsFactor, listener)
}

// OptimizeFast runs a single local-recoding step (spec.md §4.4).
// records, if finite, must be in (0,1]; gsFactor, if finite, must be in
// [0,1]. listener must not be nil.
func (o *Optimizer) OptimizeFast(ctx context.Context, handle *buffer.DataHandleOutput, records, gsFactor float64, listener progress.Listener) (count int, err error) {
	ctx, finishSpan := tracing.StartSpan(ctx, "recoding.OptimizeFast")
	defer func() {
		outcome := "success"
		if err != nil {
			outcome = "error"
		}
		metrics.ObserveOptimizeStep(outcome, count)
		finishSpan(err)
	}()

	// Step 1: argument validation. Side-effect free.
	if listener == nil {
		return 0, arxerrors.InvalidArgument("listener must not be nil")
	}
	if handle == nil {
		return 0, arxerrors.InvalidArgument("handle must not be nil")
	}
	if !math.IsNaN(records) && (records <= 0 || records > 1) {
		return 0, arxerrors.InvalidArgument("records must be in (0,1], got %v", records)
	}
	if !math.IsNaN(gsFactor) && (gsFactor < 0 || gsFactor > 1) {
		return 0, arxerrors.InvalidArgument("gsFactor must be in [0,1], got %v", gsFactor)
	}
	if !buffer.SameProvenance(handle.Buffer().Input(), o.checker.InputBuffer()) {
		return 0, arxerrors.InvalidArgument("handle's input buffer does not match the checker's input buffer")
	}

	// Step 2: not-optimizable is a silent 0, not an error.
	if !o.IsOptimizable(handle) {
		return 0, nil
	}

	// Step 3: build the outlier row-set.
	rowSet := buildOutlierRowSet(handle)
	totalRows := handle.Rows()

	// Step 4: project the configuration.
	projectedConfig := o.cfg.SubsetFor(rowSet, gsFactor)
	if !math.IsNaN(records) {
		absolute := records * float64(totalRows)
		relative := absolute / float64(rowSet.Count())
		if relative < 0 {
			relative = 0
		} else if relative > 1 {
			relative = 1
		}
		projectedConfig.SetMaxOutliers(1 - relative)
	}

	// Step 5: project the definition and the data manager.
	projectedDefinition := o.def.Clone()
	projectedManager := o.manager.SubsetInstance(rowSet)

	// Step 6: run a fresh anonymization, inheriting parser state from
	// the borrowed outer anonymizer.
	innerAnonymizer := o.anon.Fork(listener)
	run, err := innerAnonymizer.Anonymize(ctx, projectedManager, projectedDefinition, projectedConfig)
	if err != nil {
		return 0, arxerrors.Internal(err)
	}

	// Step 7: no solution.
	if run.Optimum == nil {
		return 0, nil
	}

	// Steps 8-9: merge back, under rollback discipline. Any failure
	// here leaves the caller's buffer in an unknown state and must be
	// surfaced as rollback-required rather than retried in place.
	optimizedCount, err := o.mergeAndUpdate(handle, rowSet, run, listener)
	if err != nil {
		return 0, err
	}

	listener.Progress(1.0)
	return optimizedCount, nil
}

// mergeAndUpdate implements spec.md §4.4 steps 8-9: apply the inner
// optimum, copy its rows into the outer buffer in ascending row order,
// and update the outer buffer's derived state. A panic during the copy
// (e.g. a corrupted inner buffer) is converted into a rollback-required
// error rather than left to crash the caller, since by that point the
// outer buffer may have been partially mutated.
func (o *Optimizer) mergeAndUpdate(
	handle *buffer.DataHandleOutput,
	rowSet *datamanager.RowSet,
	run *anonymizer.Run,
	listener progress.Listener,
) (count int, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = arxerrors.Rollback(fmt.Errorf("panic during merge: %v", p))
		}
	}()

	innerData, applyErr := run.Checker.ApplyWithDictionary(run.Optimum, handle.Buffer().Dictionary())
	if applyErr != nil {
		return 0, arxerrors.Rollback(applyErr)
	}

	outerGeneralized := handle.Buffer().Generalized()
	outerMicro := handle.Buffer().Microaggregated()
	rows := rowSet.Rows()

	optimizedCount := 0
	for innerRow, outerRow := range rows {
		if innerRow >= innerData.BufferGeneralized.Rows() {
			return 0, arxerrors.Rollback(fmt.Errorf(
				"inner buffer has %d rows, cannot satisfy row-set member %d (dense index %d)",
				innerData.BufferGeneralized.Rows(), outerRow, innerRow))
		}
		copy(outerGeneralized.RowSlice(outerRow), innerData.BufferGeneralized.RowSlice(innerRow))
		if outerMicro != nil && innerData.BufferMicroaggregated != nil {
			copy(outerMicro.RowSlice(outerRow), innerData.BufferMicroaggregated.RowSlice(innerRow))
		}
		if outerGeneralized.Get(outerRow, 0)&buffer.OutlierMask == 0 {
			optimizedCount++
		}
		listener.Progress(float64(innerRow+1) / float64(len(rows)))
	}

	handle.Buffer().AppendRecodingHistory(run.Optimum)
	if optimizedCount > 0 {
		handle.Buffer().MarkOptimized()
	}
	return optimizedCount, nil
}
