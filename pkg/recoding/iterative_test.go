package recoding_test

import (
	"context"
	"testing"

	"github.com/arxgo/arxgo/internal/fake"
	"github.com/arxgo/arxgo/internal/mock"
	"github.com/arxgo/arxgo/pkg/anonymizer"
	"github.com/arxgo/arxgo/pkg/config"
	"github.com/arxgo/arxgo/pkg/definition"
	"github.com/arxgo/arxgo/pkg/progress"
	"github.com/arxgo/arxgo/pkg/recoding"
	"github.com/arxgo/arxgo/pkg/transformation"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOptimizeIterativeStopsOnceNotOptimizable(t *testing.T) {
	cfg := config.NewConfiguration([]config.PrivacyModel{fake.NewKAnonymityModel()})
	manager, checker, handle, _ := allOutlierHandle(t, cfg)

	ctrl := gomock.NewController(t)
	outerAnon := mock.NewMockAnonymizer(ctrl)
	innerAnon := mock.NewMockAnonymizer(ctrl)
	outerAnon.EXPECT().Fork(gomock.Any()).Return(innerAnon).Times(1)

	innerOptimum := transformation.New([]int{1}, []int{0}, 2)
	run := &anonymizer.Run{Checker: checker, Optimum: innerOptimum}
	innerAnon.EXPECT().Anonymize(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(run, nil).Times(1)

	o := recoding.New(outerAnon, checker, manager, definition.NewDataDefinition(), cfg)
	total, err := o.OptimizeIterative(context.Background(), handle, 0.0, 5, 0, progress.Noop)
	require.NoError(t, err)
	require.Equal(t, 4, total)
	require.False(t, o.IsOptimizable(handle))
}

func TestOptimizeIterativeFastReturnsZeroWhenNotOptimizable(t *testing.T) {
	cfg := config.NewConfiguration([]config.PrivacyModel{fake.NewKAnonymityModel()})
	cfg.SetMinimalGroupSize(100)
	manager, checker, handle, _ := allOutlierHandle(t, cfg)

	o := recoding.New(nil, checker, manager, definition.NewDataDefinition(), cfg)
	total, err := o.OptimizeIterativeFast(context.Background(), handle, 0.5, 0.0, progress.Noop)
	require.NoError(t, err)
	require.Equal(t, 0, total)
}
