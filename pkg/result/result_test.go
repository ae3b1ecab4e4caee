package result_test

import (
	"context"
	"testing"
	"time"

	"github.com/arxgo/arxgo/internal/fake"
	"github.com/arxgo/arxgo/internal/mock"
	"github.com/arxgo/arxgo/pkg/config"
	"github.com/arxgo/arxgo/pkg/datamanager"
	"github.com/arxgo/arxgo/pkg/definition"
	"github.com/arxgo/arxgo/pkg/registry"
	"github.com/arxgo/arxgo/pkg/result"
	"github.com/arxgo/arxgo/pkg/transformation"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestResult wires a real fake.DataManager/fake.NodeChecker (so
// Apply() produces real row-level scores and properties) behind an
// AnonymizationResult, with a mocked Lattice standing in for the
// out-of-scope search collaborator.
func newTestResult(t *testing.T, node *transformation.Transformation) (*result.AnonymizationResult, *mock.MockLattice) {
	manager := fake.NewDataManager(
		datamanager.NewMatrixFromRows([][]int{{0}, {1}, {2}, {3}}),
		nil, nil,
		[]datamanager.Hierarchy{fake.NewFlatHierarchy(2)},
		nil,
	)
	checker := fake.NewNodeChecker(manager, config.NewConfiguration(nil))
	cfg := config.NewConfiguration([]config.PrivacyModel{fake.NewKAnonymityModel()})

	ctrl := gomock.NewController(t)
	lat := mock.NewMockLattice(ctrl)
	lat.EXPECT().GlobalOptimum().Return(node).AnyTimes()
	lat.EXPECT().EstimateInformationLossBounds(gomock.Any()).AnyTimes()

	r := result.NewFromRun(nil, registry.New(nil), manager, checker, definition.NewDataDefinition(), cfg, lat, time.Millisecond, nil, nil)
	return r, lat
}

func TestOutputCachedReuseScenario(t *testing.T) {
	node := transformation.New([]int{0}, []int{0}, 1)
	r, _ := newTestResult(t, node)

	h1, err := r.Output(context.Background(), nil, false)
	require.NoError(t, err)
	h2, err := r.Output(context.Background(), node, false)
	require.NoError(t, err)
	require.Same(t, h1, h2)
}

func TestOutputLockRejectionScenario(t *testing.T) {
	node := transformation.New([]int{0}, []int{0}, 1)
	r, _ := newTestResult(t, node)

	h, err := r.Output(context.Background(), node, false)
	require.NoError(t, err)
	require.NotNil(t, h)

	_, err = r.Output(context.Background(), node, true)
	require.Error(t, err)
}

func TestOutputForkSucceedsWhenUnlocked(t *testing.T) {
	node := transformation.New([]int{0}, []int{0}, 1)
	r, _ := newTestResult(t, node)

	h1, err := r.Output(context.Background(), node, true)
	require.NoError(t, err)
	h2, err := r.Output(context.Background(), node, true)
	require.NoError(t, err)
	require.NotSame(t, h1, h2)
	require.True(t, h1.Forked())
	require.True(t, h2.Forked())
}

func TestOutputReleaseAllowsRelock(t *testing.T) {
	node := transformation.New([]int{0}, []int{0}, 1)
	r, _ := newTestResult(t, node)

	h, err := r.Output(context.Background(), node, false)
	require.NoError(t, err)
	h.Release()

	h2, err := r.Output(context.Background(), node, false)
	require.NoError(t, err)
	require.NotNil(t, h2)
}

func TestIsAvailableFalseWithoutOptimum(t *testing.T) {
	r, _ := newTestResult(t, nil)
	require.False(t, r.IsAvailable())
	require.Nil(t, r.GlobalOptimum())
}

func TestOutputBackAnnotatesNodeOnceChecked(t *testing.T) {
	node := transformation.New([]int{0}, []int{0}, 1)
	r, _ := newTestResult(t, node)

	_, err := r.Output(context.Background(), node, false)
	require.NoError(t, err)
	require.True(t, node.IsChecked())
}
