package buffer

import (
	"context"

	"github.com/arxgo/arxgo/pkg/config"
	"github.com/arxgo/arxgo/pkg/datamanager"
	"github.com/arxgo/arxgo/pkg/definition"
	"github.com/arxgo/arxgo/pkg/transformation"
	"github.com/google/uuid"
)

// Releaser is the narrow view of ResultRegistry a DataHandleOutput
// needs to relinquish its lock on release. Defined here, rather than
// importing the registry package directly, to avoid a dependency cycle
// (the registry needs to hold *DataHandleOutput values in its cache).
type Releaser interface {
	ReleaseBuffer(h *DataHandleOutput)
}

// DataHandleOutput is the public handle callers receive from
// AnonymizationResult.Output (C5). It binds an OutputBuffer to the
// collaborators needed to re-run a transformation against it: the
// owning data manager, the data definition and the active
// configuration.
type DataHandleOutput struct {
	id       uuid.UUID
	buf      *OutputBuffer
	manager  datamanager.DataManager
	def      *definition.DataDefinition
	cfg      config.AnonymizationConfig
	releaser Releaser
	forked   bool
}

// New constructs a handle. forked indicates whether buf is an
// exclusively-owned deep copy (no registry lock applies) or a shared,
// registry-locked buffer.
func New(
	buf *OutputBuffer,
	manager datamanager.DataManager,
	def *definition.DataDefinition,
	cfg config.AnonymizationConfig,
	releaser Releaser,
	forked bool,
) *DataHandleOutput {
	return &DataHandleOutput{
		id:       uuid.New(),
		buf:      buf,
		manager:  manager,
		def:      def,
		cfg:      cfg,
		releaser: releaser,
		forked:   forked,
	}
}

// ID uniquely identifies this handle, independent of its buffer's
// identity; used for log correlation and lock diagnostics.
func (h *DataHandleOutput) ID() uuid.UUID {
	return h.id
}

// Rows returns the number of rows in the output.
func (h *DataHandleOutput) Rows() int {
	return h.buf.Rows()
}

// IsOutlier reports whether row r is flagged for suppression.
func (h *DataHandleOutput) IsOutlier(r int) bool {
	return h.buf.IsOutlier(r)
}

// Row returns the generalized codes for row r, with the outlier mask
// stripped from column 0 (callers iterating released data should never
// observe the internal bookkeeping bit).
func (h *DataHandleOutput) Row(r int) []int {
	row := append([]int(nil), h.buf.Generalized().RowSlice(r)...)
	row[0] &^= OutlierMask
	return row
}

// MicroaggregatedRow returns the microaggregated values for row r, or
// nil if the output has no microaggregated attributes.
func (h *DataHandleOutput) MicroaggregatedRow(r int) []int {
	if h.buf.Microaggregated() == nil {
		return nil
	}
	return append([]int(nil), h.buf.Microaggregated().RowSlice(r)...)
}

// Optimized reports whether a local-recoding step has mutated the
// underlying buffer.
func (h *DataHandleOutput) Optimized() bool {
	return h.buf.Optimized()
}

// Forked reports whether this handle owns an exclusive deep copy of its
// buffer.
func (h *DataHandleOutput) Forked() bool {
	return h.forked
}

// Node returns the lattice node this handle was produced from.
func (h *DataHandleOutput) Node() *transformation.Transformation {
	return h.buf.Node()
}

// Buffer exposes the underlying OutputBuffer for collaborators within
// this module (the registry, the recoding optimizer) that need direct
// matrix access; external callers should use Row/IsOutlier instead.
func (h *DataHandleOutput) Buffer() *OutputBuffer {
	return h.buf
}

// Manager returns the data manager this handle's buffer was produced
// against.
func (h *DataHandleOutput) Manager() datamanager.DataManager {
	return h.manager
}

// Definition returns the data definition active for this handle.
func (h *DataHandleOutput) Definition() *definition.DataDefinition {
	return h.def
}

// Config returns the configuration active for this handle.
func (h *DataHandleOutput) Config() config.AnonymizationConfig {
	return h.cfg
}

// Fork returns an independently mutable deep copy of this handle,
// unaffiliated with any registry lock (Invariant O3: forked outputs may
// coexist freely).
func (h *DataHandleOutput) Fork(ctx context.Context) (*DataHandleOutput, error) {
	clone, err := h.buf.Fork(ctx)
	if err != nil {
		return nil, err
	}
	return New(clone, h.manager, h.def, h.cfg, nil, true), nil
}

// Release relinquishes the registry lock this handle holds, if any.
// Forked handles hold no lock; Release is then a no-op.
func (h *DataHandleOutput) Release() {
	if !h.forked && h.releaser != nil {
		h.releaser.ReleaseBuffer(h)
	}
}
