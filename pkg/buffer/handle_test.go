package buffer_test

import (
	"context"
	"testing"

	"github.com/arxgo/arxgo/pkg/buffer"
	"github.com/arxgo/arxgo/pkg/datamanager"
	"github.com/arxgo/arxgo/pkg/transformation"
	"github.com/stretchr/testify/require"
)

type recordingReleaser struct {
	released *buffer.DataHandleOutput
}

func (r *recordingReleaser) ReleaseBuffer(h *buffer.DataHandleOutput) {
	r.released = h
}

func TestHandleRowStripsOutlierMask(t *testing.T) {
	generalized := datamanager.NewMatrixFromRows([][]int{{1, 2}})
	node := transformation.New([]int{0, 0}, []int{0, 1}, 1)
	ob, err := buffer.NewOutputBuffer(generalized, nil, nil, node, datamanager.NewDictionary())
	require.NoError(t, err)
	ob.SetOutlier(0, true)
	h := buffer.New(ob, nil, nil, nil, nil, false)
	row := h.Row(0)
	require.Equal(t, 1, row[0])
	require.True(t, h.IsOutlier(0))
}

func TestHandleReleaseNoopWhenForked(t *testing.T) {
	generalized := datamanager.NewMatrixFromRows([][]int{{1}})
	node := transformation.New([]int{0}, []int{0}, 1)
	ob, err := buffer.NewOutputBuffer(generalized, nil, nil, node, datamanager.NewDictionary())
	require.NoError(t, err)
	releaser := &recordingReleaser{}
	h := buffer.New(ob, nil, nil, nil, releaser, true)
	h.Release()
	require.Nil(t, releaser.released)
}

func TestHandleReleaseCallsReleaserWhenNotForked(t *testing.T) {
	generalized := datamanager.NewMatrixFromRows([][]int{{1}})
	node := transformation.New([]int{0}, []int{0}, 1)
	ob, err := buffer.NewOutputBuffer(generalized, nil, nil, node, datamanager.NewDictionary())
	require.NoError(t, err)
	releaser := &recordingReleaser{}
	h := buffer.New(ob, nil, nil, nil, releaser, false)
	h.Release()
	require.Same(t, h, releaser.released)
}

func TestHandleForkReturnsIndependentForkedHandle(t *testing.T) {
	generalized := datamanager.NewMatrixFromRows([][]int{{1, 2}})
	node := transformation.New([]int{0, 0}, []int{0, 1}, 1)
	ob, err := buffer.NewOutputBuffer(generalized, nil, nil, node, datamanager.NewDictionary())
	require.NoError(t, err)
	h := buffer.New(ob, nil, nil, nil, nil, false)
	clone, err := h.Fork(context.Background())
	require.NoError(t, err)
	require.True(t, clone.Forked())
	require.NotEqual(t, h.ID(), clone.ID())
}
