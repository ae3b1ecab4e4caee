// Package registry implements the ResultRegistry (C6): the buffer-lock
// state machine and per-node handle cache that output() consults before
// materializing a new DataHandleOutput.
package registry

import (
	"log"

	"github.com/arxgo/arxgo/pkg/buffer"
	"github.com/arxgo/arxgo/pkg/metrics"
	"github.com/arxgo/arxgo/pkg/transformation"
)

// lockState is Free or Locked{handle, node} (§3's "ResultRegistry (C6)
// lock state").
type lockState struct {
	handle *buffer.DataHandleOutput
	node   *transformation.Transformation
}

// ResultRegistry tracks every live output handle produced for a given
// AnonymizationResult, and enforces that at most one unforked
// (registry-locked) handle exists at a time (Invariant O3).
type ResultRegistry struct {
	logger *log.Logger

	cache map[int64]*buffer.DataHandleOutput
	lock  *lockState
}

// New returns an empty, unlocked registry. logger may be nil, in which
// case the registry logs lock transitions through log.Default(),
// matching the teacher's convention of a nil-means-default logger
// rather than a separate structured-logging dependency.
func New(logger *log.Logger) *ResultRegistry {
	if logger == nil {
		logger = log.Default()
	}
	return &ResultRegistry{
		logger: logger,
		cache:  map[int64]*buffer.DataHandleOutput{},
	}
}

// IsLocked reports whether an unforked handle is currently outstanding.
func (r *ResultRegistry) IsLocked() bool {
	return r.lock != nil
}

// LockedHandle returns the currently locked handle and the node it was
// produced from, if the registry is locked.
func (r *ResultRegistry) LockedHandle() (*buffer.DataHandleOutput, *transformation.Transformation, bool) {
	if r.lock == nil {
		return nil, nil, false
	}
	return r.lock.handle, r.lock.node, true
}

// Lock transitions Free → Locked{handle, node}. Callers must have
// already checked IsLocked(); Lock panics if called while already
// locked, since that would indicate output()'s own protocol was
// violated (spec.md §4.3 step 1 must reject fork=true requests before
// reaching this point).
func (r *ResultRegistry) Lock(handle *buffer.DataHandleOutput, node *transformation.Transformation) {
	if r.lock != nil {
		panic("registry: Lock called while already locked")
	}
	r.lock = &lockState{handle: handle, node: node}
	r.logger.Printf("registry: locked by handle %s for node %s", handle.ID(), node)
	metrics.SetLocked(true)
}

// ReleaseBuffer implements buffer.Releaser. It is a no-op unless h is
// the currently locked handle, per the design note: "releaseBuffer
// transitions Locked{h,_} → Free and is a no-op on any other input."
func (r *ResultRegistry) ReleaseBuffer(h *buffer.DataHandleOutput) {
	if r.lock == nil || r.lock.handle != h {
		return
	}
	r.logger.Printf("registry: released handle %s for node %s", h.ID(), r.lock.node)
	r.lock = nil
	metrics.SetLocked(false)
}

// CachedHandle returns any extant handle cached for node.
func (r *ResultRegistry) CachedHandle(node *transformation.Transformation) (*buffer.DataHandleOutput, bool) {
	h, ok := r.cache[node.ID()]
	return h, ok
}

// CacheStore records handle as the cached handle for node.
func (r *ResultRegistry) CacheStore(node *transformation.Transformation, handle *buffer.DataHandleOutput) {
	r.cache[node.ID()] = handle
}

// CacheInvalidate removes any cached handle for node, used when a
// cached handle is found to be optimized and must be rebuilt (spec.md
// §4.3 step 3; §9's open question on re-applying the un-optimized
// transformation).
func (r *ResultRegistry) CacheInvalidate(node *transformation.Transformation) {
	delete(r.cache, node.ID())
}
