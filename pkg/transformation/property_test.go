package transformation_test

import (
	"testing"

	"github.com/arxgo/arxgo/pkg/transformation"
	"github.com/stretchr/testify/require"
)

func TestPropertySetHasWith(t *testing.T) {
	var s transformation.PropertySet
	require.False(t, s.Has(transformation.PropertyAnonymous))
	s = s.With(transformation.PropertyAnonymous)
	require.True(t, s.Has(transformation.PropertyAnonymous))
	require.False(t, s.Has(transformation.PropertyKAnonymous))
}

func TestDirectionOfKnownProperties(t *testing.T) {
	require.Equal(t, transformation.DirectionUp, transformation.DirectionOf(transformation.PropertyAnonymous))
	require.Equal(t, transformation.DirectionDown, transformation.DirectionOf(transformation.PropertyNotAnonymous))
	require.Equal(t, transformation.DirectionNone, transformation.DirectionOf(transformation.PropertyChecked))
}

func TestAllPropertiesEnumeratesEveryConstant(t *testing.T) {
	props := transformation.AllProperties()
	require.Contains(t, props, transformation.PropertyAnonymous)
	require.Contains(t, props, transformation.PropertyVisited)
	require.Len(t, props, 9)
}
