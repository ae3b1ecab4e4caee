package recoding

import (
	"context"
	"math"

	"github.com/arxgo/arxgo/pkg/buffer"
	"github.com/arxgo/arxgo/pkg/progress"
)

// OptimizeIterative runs optimizeFast repeatedly, escaping local
// fixpoints by nudging gsFactor, until one of: the handle is no longer
// optimizable, maxIterations is reached, or a step returns 0 with no
// adaption configured (spec.md §4.5). It returns the running total of
// rows optimized across all iterations.
func (o *Optimizer) OptimizeIterative(
	ctx context.Context,
	handle *buffer.DataHandleOutput,
	gsFactor float64,
	maxIterations int,
	adaption float64,
	listener progress.Listener,
) (int, error) {
	if listener == nil {
		listener = progress.Noop
	}
	goal := countOutliers(handle)
	total := 0
	cur := math.Inf(1)
	iter := 0
	gs := gsFactor

	for o.IsOptimizable(handle) && iter < maxIterations && cur > 0 {
		stepCount, err := o.Optimize(ctx, handle, gs, progress.Noop)
		if err != nil {
			return total, err
		}
		cur = float64(stepCount)
		total += stepCount

		if stepCount == 0 && adaption > 0 {
			gs += adaption
			if gs <= 1.0 {
				// Force another attempt at the raised gsFactor
				// instead of letting cur==0 end the loop.
				cur = math.Inf(1)
			}
		}
		iter++

		p := float64(iter) / float64(maxIterations)
		if goal > 0 {
			if byTotal := float64(total) / float64(goal); byTotal > p {
				p = byTotal
			}
		}
		if p > 1 {
			p = 1
		}
		listener.Progress(p)
	}
	listener.Progress(1.0)
	return total, nil
}

// OptimizeIterativeFast runs optimizeFast in a loop bounded by
// records-sized batches, with no iteration cap and no adaption: it
// continues until isOptimizable becomes false or a step yields 0
// (spec.md §4.5). Each inner step's listener is wrapped so its [0,1]
// sub-progress is remapped onto the band this iteration currently
// occupies.
func (o *Optimizer) OptimizeIterativeFast(
	ctx context.Context,
	handle *buffer.DataHandleOutput,
	records, gsFactor float64,
	listener progress.Listener,
) (int, error) {
	if listener == nil {
		listener = progress.Noop
	}
	total := 0
	minProgress := 0.0
	for o.IsOptimizable(handle) {
		maxProgress := minProgress + records
		if maxProgress > 1 {
			maxProgress = 1
		}
		band := progress.Banded(listener, minProgress, maxProgress)

		stepCount, err := o.OptimizeFast(ctx, handle, records, gsFactor, band)
		if err != nil {
			return total, err
		}
		total += stepCount
		minProgress = maxProgress
		if stepCount == 0 {
			break
		}
	}
	listener.Progress(1.0)
	return total, nil
}
