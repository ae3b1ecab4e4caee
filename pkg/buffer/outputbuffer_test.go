package buffer_test

import (
	"context"
	"testing"

	"github.com/arxgo/arxgo/pkg/buffer"
	"github.com/arxgo/arxgo/pkg/datamanager"
	"github.com/arxgo/arxgo/pkg/transformation"
	"github.com/stretchr/testify/require"
)

func newTestBuffer(t *testing.T, micro *datamanager.Matrix) *buffer.OutputBuffer {
	generalized := datamanager.NewMatrixFromRows([][]int{{1, 2}, {3, 4}})
	node := transformation.New([]int{1, 1}, []int{0, 1}, 1)
	b, err := buffer.NewOutputBuffer(generalized, micro, nil, node, datamanager.NewDictionary())
	require.NoError(t, err)
	return b
}

func TestNewOutputBufferRejectsRowMismatch(t *testing.T) {
	generalized := datamanager.NewMatrixFromRows([][]int{{1}, {2}})
	micro := datamanager.NewMatrixFromRows([][]int{{1}})
	node := transformation.New([]int{0}, []int{0}, 1)
	_, err := buffer.NewOutputBuffer(generalized, micro, nil, node, datamanager.NewDictionary())
	require.Error(t, err)
}

func TestOutlierMaskSetAndClear(t *testing.T) {
	b := newTestBuffer(t, nil)
	require.False(t, b.IsOutlier(0))
	b.SetOutlier(0, true)
	require.True(t, b.IsOutlier(0))
	b.SetOutlier(0, false)
	require.False(t, b.IsOutlier(0))
}

func TestRecodingHistoryAppendsInOrder(t *testing.T) {
	b := newTestBuffer(t, nil)
	require.Empty(t, b.RecodingHistory())
	n1 := transformation.New([]int{0, 0}, []int{0, 1}, 2)
	n2 := transformation.New([]int{1, 0}, []int{0, 1}, 3)
	b.AppendRecodingHistory(n1)
	b.AppendRecodingHistory(n2)
	require.Equal(t, []*transformation.Transformation{n1, n2}, b.RecodingHistory())
}

func TestForkProducesIndependentCopy(t *testing.T) {
	micro := datamanager.NewMatrixFromRows([][]int{{9}, {9}})
	b := newTestBuffer(t, micro)
	b.SetOutlier(0, true)
	clone, err := b.Fork(context.Background())
	require.NoError(t, err)
	clone.Generalized().Set(0, 1, 42)
	clone.Microaggregated().Set(0, 0, 77)
	require.NotEqual(t, 42, b.Generalized().Get(0, 1))
	require.NotEqual(t, 77, b.Microaggregated().Get(0, 0))
	require.True(t, clone.IsOutlier(0))
}

func TestMarkOptimizedAndSetNode(t *testing.T) {
	b := newTestBuffer(t, nil)
	require.False(t, b.Optimized())
	b.MarkOptimized()
	require.True(t, b.Optimized())
	node := transformation.New([]int{1, 1}, []int{0, 1}, 9)
	b.SetNode(node)
	require.Equal(t, node, b.Node())
}
