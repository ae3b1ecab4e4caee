// Package buffer implements the materialized anonymized view over a
// chosen lattice node (C5): the OutputBuffer matrices, the outlier
// mask, forking, and the DataHandleOutput handle callers iterate rows
// through.
package buffer

import (
	"context"

	"github.com/arxgo/arxgo/pkg/datamanager"
	"github.com/arxgo/arxgo/pkg/transformation"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// OutlierMask is the high bit of column 0's code, reserved to flag a
// row as an outlier (Invariant O2). Generalization codes are expected
// to stay well below this bit; a hierarchy with more than 2^30
// distinct codes at level 0 is outside what this engine supports.
const OutlierMask = 1 << 30

// OutputBuffer is the materialized pair of row-aligned matrices
// produced by applying one Transformation (C5 of the design).
type OutputBuffer struct {
	generalized     *datamanager.Matrix
	microaggregated *datamanager.Matrix
	input           *datamanager.Matrix
	node            *transformation.Transformation
	dictionary      *datamanager.Dictionary
	optimized       bool
	recodingHistory []*transformation.Transformation
}

// NewOutputBuffer validates Invariant O1 (generalized.rows ==
// microaggregated.rows == input.rows, when both are present) and
// returns a new OutputBuffer. input is retained only for identity
// comparison (provenance checks), never mutated.
func NewOutputBuffer(
	generalized *datamanager.Matrix,
	microaggregated *datamanager.Matrix,
	input *datamanager.Matrix,
	node *transformation.Transformation,
	dictionary *datamanager.Dictionary,
) (*OutputBuffer, error) {
	if microaggregated != nil && generalized.Rows() != microaggregated.Rows() {
		return nil, status.Errorf(codes.Internal,
			"generalized matrix has %d rows but microaggregated matrix has %d", generalized.Rows(), microaggregated.Rows())
	}
	if input != nil && generalized.Rows() != input.Rows() {
		return nil, status.Errorf(codes.Internal,
			"generalized matrix has %d rows but input matrix has %d", generalized.Rows(), input.Rows())
	}
	return &OutputBuffer{
		generalized:     generalized,
		microaggregated: microaggregated,
		input:           input,
		node:            node,
		dictionary:      dictionary,
	}, nil
}

// Rows returns the number of rows in the buffer.
func (b *OutputBuffer) Rows() int {
	return b.generalized.Rows()
}

// IsOutlier reports whether row r carries the outlier mask
// (Invariant O2).
func (b *OutputBuffer) IsOutlier(r int) bool {
	return b.generalized.Get(r, 0)&OutlierMask != 0
}

// SetOutlier sets or clears the outlier mask on row r's column-0 code.
func (b *OutputBuffer) SetOutlier(r int, outlier bool) {
	code := b.generalized.Get(r, 0)
	if outlier {
		b.generalized.Set(r, 0, code|OutlierMask)
	} else {
		b.generalized.Set(r, 0, code&^OutlierMask)
	}
}

// Generalized returns the generalized-codes matrix.
func (b *OutputBuffer) Generalized() *datamanager.Matrix {
	return b.generalized
}

// Microaggregated returns the microaggregated-values matrix, or nil.
func (b *OutputBuffer) Microaggregated() *datamanager.Matrix {
	return b.microaggregated
}

// Input returns the buffer this output was produced from, retained by
// reference for provenance comparisons.
func (b *OutputBuffer) Input() *datamanager.Matrix {
	return b.input
}

// Node returns the lattice node this buffer was produced from.
func (b *OutputBuffer) Node() *transformation.Transformation {
	return b.node
}

// Dictionary returns the dictionary shared with the owning
// DataManager.
func (b *OutputBuffer) Dictionary() *datamanager.Dictionary {
	return b.dictionary
}

// Optimized reports whether a local-recoding step has mutated this
// buffer since it was produced.
func (b *OutputBuffer) Optimized() bool {
	return b.optimized
}

// MarkOptimized sets the optimized flag.
func (b *OutputBuffer) MarkOptimized() {
	b.optimized = true
}

// RecodingHistory returns every inner-optimum transformation a
// successful local-recoding merge has applied to this buffer, in
// application order. A buffer recoded more than once no longer
// corresponds to a single lattice node; this is the diagnostic trail
// kept in its place (the original implementation's per-row "data
// types" update, retained here as an append-only log rather than a
// mutation of Node's identity).
func (b *OutputBuffer) RecodingHistory() []*transformation.Transformation {
	return b.recodingHistory
}

// AppendRecodingHistory records that innerOptimum was merged into this
// buffer by a local-recoding step.
func (b *OutputBuffer) AppendRecodingHistory(innerOptimum *transformation.Transformation) {
	b.recodingHistory = append(b.recodingHistory, innerOptimum)
}

// SetNode updates the node this buffer is attributed to. Local
// recoding does not call it: a merge records the inner optimum through
// AppendRecodingHistory and leaves Node unchanged.
func (b *OutputBuffer) SetNode(node *transformation.Transformation) {
	b.node = node
}

// Fork produces a deep-copied, independently mutable OutputBuffer
// (Invariant P2: fork isolation). The two row matrices are copied
// concurrently via errgroup, the way the teacher forks independent I/O
// operations across a request (e.g. fan-out reads in
// pkg/blobstore/local's block readers) rather than sequentially.
func (b *OutputBuffer) Fork(ctx context.Context) (*OutputBuffer, error) {
	clone := &OutputBuffer{
		input:      b.input,
		node:       b.node,
		dictionary: b.dictionary,
		optimized:  b.optimized,
	}
	group, _ := errgroup.WithContext(ctx)
	group.Go(func() error {
		clone.generalized = b.generalized.Clone()
		return nil
	})
	if b.microaggregated != nil {
		group.Go(func() error {
			clone.microaggregated = b.microaggregated.Clone()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return clone, nil
}
