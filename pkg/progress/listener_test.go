package progress_test

import (
	"testing"

	"github.com/arxgo/arxgo/pkg/progress"
	"github.com/stretchr/testify/require"
)

func TestListenerFuncAdapts(t *testing.T) {
	var got float64
	l := progress.ListenerFunc(func(f float64) { got = f })
	l.Progress(0.5)
	require.Equal(t, 0.5, got)
}

func TestNoopDiscardsUpdates(t *testing.T) {
	require.NotPanics(t, func() { progress.Noop.Progress(0.3) })
}

func TestBandedRemapsLinearly(t *testing.T) {
	var got float64
	inner := progress.ListenerFunc(func(f float64) { got = f })
	banded := progress.Banded(inner, 0.5, 1.0)
	banded.Progress(0.0)
	require.Equal(t, 0.5, got)
	banded.Progress(1.0)
	require.Equal(t, 1.0, got)
	banded.Progress(0.5)
	require.Equal(t, 0.75, got)
}
