package registry_test

import (
	"testing"

	"github.com/arxgo/arxgo/pkg/buffer"
	"github.com/arxgo/arxgo/pkg/datamanager"
	"github.com/arxgo/arxgo/pkg/registry"
	"github.com/arxgo/arxgo/pkg/transformation"
	"github.com/stretchr/testify/require"
)

func newHandle(t *testing.T, id int64) *buffer.DataHandleOutput {
	generalized := datamanager.NewMatrixFromRows([][]int{{1}})
	node := transformation.New([]int{0}, []int{0}, id)
	ob, err := buffer.NewOutputBuffer(generalized, nil, nil, node, datamanager.NewDictionary())
	require.NoError(t, err)
	return buffer.New(ob, nil, nil, nil, nil, false)
}

func TestRegistryStartsUnlocked(t *testing.T) {
	r := registry.New(nil)
	require.False(t, r.IsLocked())
	_, _, ok := r.LockedHandle()
	require.False(t, ok)
}

func TestRegistryLockThenRelease(t *testing.T) {
	r := registry.New(nil)
	node := transformation.New([]int{0}, []int{0}, 1)
	h := newHandle(t, 1)
	r.Lock(h, node)
	require.True(t, r.IsLocked())
	got, gotNode, ok := r.LockedHandle()
	require.True(t, ok)
	require.Same(t, h, got)
	require.Equal(t, node, gotNode)

	r.ReleaseBuffer(h)
	require.False(t, r.IsLocked())
}

func TestRegistryLockPanicsWhenAlreadyLocked(t *testing.T) {
	r := registry.New(nil)
	node := transformation.New([]int{0}, []int{0}, 1)
	h := newHandle(t, 1)
	r.Lock(h, node)
	require.Panics(t, func() { r.Lock(h, node) })
}

func TestRegistryReleaseBufferIsNoopForOtherHandle(t *testing.T) {
	r := registry.New(nil)
	node := transformation.New([]int{0}, []int{0}, 1)
	h1 := newHandle(t, 1)
	h2 := newHandle(t, 2)
	r.Lock(h1, node)
	r.ReleaseBuffer(h2)
	require.True(t, r.IsLocked())
}

func TestRegistryCacheStoreLookupInvalidate(t *testing.T) {
	r := registry.New(nil)
	node := transformation.New([]int{0}, []int{0}, 5)
	h := newHandle(t, 5)

	_, ok := r.CachedHandle(node)
	require.False(t, ok)

	r.CacheStore(node, h)
	got, ok := r.CachedHandle(node)
	require.True(t, ok)
	require.Same(t, h, got)

	r.CacheInvalidate(node)
	_, ok = r.CachedHandle(node)
	require.False(t, ok)
}
