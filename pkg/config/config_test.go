package config_test

import (
	"math"
	"testing"

	"github.com/arxgo/arxgo/internal/fake"
	"github.com/arxgo/arxgo/pkg/config"
	"github.com/arxgo/arxgo/pkg/datamanager"
	"github.com/stretchr/testify/require"
)

func TestNewConfigurationDefaults(t *testing.T) {
	c := config.NewConfiguration([]config.PrivacyModel{fake.NewKAnonymityModel()})
	require.Equal(t, 0.0, c.MaxOutliers())
	require.True(t, math.IsInf(c.MinimalGroupSize(), 1))
	require.Len(t, c.PrivacyModels(), 1)
}

func TestSetMaxOutliersAndMinimalGroupSize(t *testing.T) {
	c := config.NewConfiguration(nil)
	c.SetMaxOutliers(0.05)
	require.Equal(t, 0.05, c.MaxOutliers())
	c.SetMinimalGroupSize(3)
	require.Equal(t, 3.0, c.MinimalGroupSize())
}

func TestSubsetForAppliesGSFactorWhenNotNaN(t *testing.T) {
	c := config.NewConfiguration([]config.PrivacyModel{fake.NewKAnonymityModel()})
	c.SetMaxOutliers(0.1)
	rows := datamanager.NewRowSet(4)
	rows.Add(1)
	sub := c.SubsetFor(rows, 0.5).(*config.Configuration)
	require.Equal(t, 0.5, sub.GSFactor)
	require.Equal(t, 0.1, sub.MaxOutliers())
	require.Same(t, rows, sub.RestrictedRowSet())
}

func TestSubsetForLeavesGSFactorWhenNaN(t *testing.T) {
	c := config.NewConfiguration(nil)
	c.GSFactor = 0.75
	sub := c.SubsetFor(datamanager.NewRowSet(2), math.NaN()).(*config.Configuration)
	require.Equal(t, 0.75, sub.GSFactor)
}

func TestSubsetForClonesModelSliceIndependently(t *testing.T) {
	c := config.NewConfiguration([]config.PrivacyModel{fake.NewKAnonymityModel()})
	sub := c.SubsetFor(nil, math.NaN()).(*config.Configuration)
	sub.Models = append(sub.Models, fake.NewKAnonymityModel())
	require.Len(t, c.PrivacyModels(), 1)
	require.Len(t, sub.PrivacyModels(), 2)
}
