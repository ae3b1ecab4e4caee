package recoding_test

import (
	"context"
	"math"
	"testing"

	"github.com/arxgo/arxgo/internal/fake"
	"github.com/arxgo/arxgo/internal/mock"
	"github.com/arxgo/arxgo/pkg/anonymizer"
	"github.com/arxgo/arxgo/pkg/buffer"
	"github.com/arxgo/arxgo/pkg/config"
	"github.com/arxgo/arxgo/pkg/datamanager"
	"github.com/arxgo/arxgo/pkg/definition"
	"github.com/arxgo/arxgo/pkg/progress"
	"github.com/arxgo/arxgo/pkg/recoding"
	"github.com/arxgo/arxgo/pkg/transformation"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func allOutlierHandle(t *testing.T, cfg config.AnonymizationConfig) (*fake.DataManager, *fake.NodeChecker, *buffer.DataHandleOutput, *transformation.Transformation) {
	// Rows {0},{1},{2},{3} are all distinct singleton groups at
	// generalization level 0, so they only become outliers once the
	// checker's floor requires a group size above 1. Callers that
	// want a specific floor set it on cfg before calling this helper;
	// otherwise default to 2 so "all outlier" actually holds under
	// the unbounded default of config.NewConfiguration.
	if math.IsInf(cfg.MinimalGroupSize(), 1) {
		if c, ok := cfg.(*config.Configuration); ok {
			c.SetMinimalGroupSize(2)
		}
	}
	manager := fake.NewDataManager(
		datamanager.NewMatrixFromRows([][]int{{0}, {1}, {2}, {3}}),
		nil, nil,
		[]datamanager.Hierarchy{fake.NewFlatHierarchy(2)},
		nil,
	)
	checker := fake.NewNodeChecker(manager, cfg)
	node := transformation.New([]int{0}, []int{0}, 1)
	data, err := checker.Apply(node)
	require.NoError(t, err)
	ob, err := buffer.NewOutputBuffer(data.BufferGeneralized, nil, manager.GeneralizedMatrix(), node, datamanager.NewDictionary())
	require.NoError(t, err)
	handle := buffer.New(ob, manager, definition.NewDataDefinition(), cfg, nil, false)
	return manager, checker, handle, node
}

func TestIsOptimizableTrueWhenOutliersPresent(t *testing.T) {
	cfg := config.NewConfiguration([]config.PrivacyModel{fake.NewKAnonymityModel()})
	manager, checker, handle, _ := allOutlierHandle(t, cfg)
	o := recoding.New(nil, checker, manager, definition.NewDataDefinition(), cfg)
	require.True(t, o.IsOptimizable(handle))
}

func TestIsOptimizableFalseWhenModelRejectsLocalRecoding(t *testing.T) {
	cfg := config.NewConfiguration([]config.PrivacyModel{&fake.PrivacyModel{ModelName: "global-model", LocalRecodingOK: false}})
	manager, checker, handle, _ := allOutlierHandle(t, cfg)
	o := recoding.New(nil, checker, manager, definition.NewDataDefinition(), cfg)
	require.False(t, o.IsOptimizable(handle))
}

func TestIsOptimizableFalseWhenNoOutliers(t *testing.T) {
	cfg := config.NewConfiguration([]config.PrivacyModel{fake.NewKAnonymityModel()})
	manager := fake.NewDataManager(
		datamanager.NewMatrixFromRows([][]int{{0}, {0}, {0}, {0}}),
		nil, nil,
		[]datamanager.Hierarchy{fake.NewFlatHierarchy(2)},
		nil,
	)
	checker := fake.NewNodeChecker(manager, cfg)
	node := transformation.New([]int{0}, []int{0}, 1)
	data, err := checker.Apply(node)
	require.NoError(t, err)
	ob, err := buffer.NewOutputBuffer(data.BufferGeneralized, nil, manager.GeneralizedMatrix(), node, datamanager.NewDictionary())
	require.NoError(t, err)
	handle := buffer.New(ob, manager, definition.NewDataDefinition(), cfg, nil, false)
	o := recoding.New(nil, checker, manager, definition.NewDataDefinition(), cfg)
	require.False(t, o.IsOptimizable(handle))
}

func TestIsOptimizableFalseWhenBelowMinimalGroupSize(t *testing.T) {
	cfg := config.NewConfiguration([]config.PrivacyModel{fake.NewKAnonymityModel()})
	cfg.SetMinimalGroupSize(10)
	manager, checker, handle, _ := allOutlierHandle(t, cfg)
	o := recoding.New(nil, checker, manager, definition.NewDataDefinition(), cfg)
	require.False(t, o.IsOptimizable(handle))
}

func TestIsOptimizableFalseWhenProvenanceMismatch(t *testing.T) {
	cfg := config.NewConfiguration([]config.PrivacyModel{fake.NewKAnonymityModel()})
	_, checker, _, node := allOutlierHandle(t, cfg)

	otherManager := fake.NewDataManager(
		datamanager.NewMatrixFromRows([][]int{{9}, {8}, {7}, {6}}),
		nil, nil,
		[]datamanager.Hierarchy{fake.NewFlatHierarchy(2)},
		nil,
	)
	data, err := checker.Apply(node)
	require.NoError(t, err)
	ob, err := buffer.NewOutputBuffer(data.BufferGeneralized, nil, otherManager.GeneralizedMatrix(), node, datamanager.NewDictionary())
	require.NoError(t, err)
	handle := buffer.New(ob, otherManager, definition.NewDataDefinition(), cfg, nil, false)
	o := recoding.New(nil, checker, otherManager, definition.NewDataDefinition(), cfg)
	require.False(t, o.IsOptimizable(handle))
}

func TestOptimizeFastRejectsInvalidArguments(t *testing.T) {
	cfg := config.NewConfiguration([]config.PrivacyModel{fake.NewKAnonymityModel()})
	manager, checker, handle, _ := allOutlierHandle(t, cfg)
	o := recoding.New(nil, checker, manager, definition.NewDataDefinition(), cfg)
	ctx := context.Background()

	_, err := o.OptimizeFast(ctx, handle, math.NaN(), math.NaN(), nil)
	require.Error(t, err)

	_, err = o.OptimizeFast(ctx, nil, math.NaN(), math.NaN(), progress.Noop)
	require.Error(t, err)

	_, err = o.OptimizeFast(ctx, handle, 1.5, math.NaN(), progress.Noop)
	require.Error(t, err)

	_, err = o.OptimizeFast(ctx, handle, math.NaN(), 2.0, progress.Noop)
	require.Error(t, err)
}

func TestOptimizeFastReturnsZeroWhenNotOptimizable(t *testing.T) {
	cfg := config.NewConfiguration([]config.PrivacyModel{fake.NewKAnonymityModel()})
	cfg.SetMinimalGroupSize(10)
	manager, checker, handle, _ := allOutlierHandle(t, cfg)
	o := recoding.New(nil, checker, manager, definition.NewDataDefinition(), cfg)

	count, err := o.OptimizeFast(context.Background(), handle, math.NaN(), math.NaN(), progress.Noop)
	require.NoError(t, err)
	require.Equal(t, 0, count)
}

func TestOptimizeFastMergesInnerOptimumAndClearsOutliers(t *testing.T) {
	cfg := config.NewConfiguration([]config.PrivacyModel{fake.NewKAnonymityModel()})
	manager, checker, handle, _ := allOutlierHandle(t, cfg)

	ctrl := gomock.NewController(t)
	outerAnon := mock.NewMockAnonymizer(ctrl)
	innerAnon := mock.NewMockAnonymizer(ctrl)
	outerAnon.EXPECT().Fork(gomock.Any()).Return(innerAnon)

	innerOptimum := transformation.New([]int{1}, []int{0}, 2)
	run := &anonymizer.Run{Checker: checker, Optimum: innerOptimum}
	innerAnon.EXPECT().Anonymize(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(run, nil)

	o := recoding.New(outerAnon, checker, manager, definition.NewDataDefinition(), cfg)
	count, err := o.OptimizeFast(context.Background(), handle, math.NaN(), math.NaN(), progress.Noop)
	require.NoError(t, err)
	require.Equal(t, 4, count)
	require.True(t, handle.Buffer().Optimized())
	for r := 0; r < handle.Rows(); r++ {
		require.False(t, handle.IsOutlier(r))
	}
	require.Equal(t, []*transformation.Transformation{innerOptimum}, handle.Buffer().RecodingHistory())
}

func TestOptimizeFastReturnsZeroWhenNoSolution(t *testing.T) {
	cfg := config.NewConfiguration([]config.PrivacyModel{fake.NewKAnonymityModel()})
	manager, checker, handle, _ := allOutlierHandle(t, cfg)

	ctrl := gomock.NewController(t)
	outerAnon := mock.NewMockAnonymizer(ctrl)
	innerAnon := mock.NewMockAnonymizer(ctrl)
	outerAnon.EXPECT().Fork(gomock.Any()).Return(innerAnon)
	innerAnon.EXPECT().Anonymize(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(&anonymizer.Run{Optimum: nil}, nil)

	o := recoding.New(outerAnon, checker, manager, definition.NewDataDefinition(), cfg)
	count, err := o.OptimizeFast(context.Background(), handle, math.NaN(), math.NaN(), progress.Noop)
	require.NoError(t, err)
	require.Equal(t, 0, count)
}
