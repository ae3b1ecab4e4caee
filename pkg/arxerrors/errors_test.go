package arxerrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/arxgo/arxgo/pkg/arxerrors"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestInvalidArgumentCarriesCode(t *testing.T) {
	err := arxerrors.InvalidArgument("records must be in (0,1], got %v", 2.0)
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestBufferLockedCarriesFailedPrecondition(t *testing.T) {
	err := arxerrors.BufferLocked(fmt.Stringer(stringerFunc(func() string { return "node-1" })))
	require.Equal(t, codes.FailedPrecondition, status.Code(err))
	require.Contains(t, err.Error(), "node-1")
}

func TestInternalWrapsUnderlyingError(t *testing.T) {
	err := arxerrors.Internal(errors.New("disk full"))
	require.Equal(t, codes.Internal, status.Code(err))
	require.Contains(t, err.Error(), "disk full")
}

func TestRollbackGRPCStatusIsDataLoss(t *testing.T) {
	err := arxerrors.Rollback(errors.New("corrupted buffer"))
	require.True(t, arxerrors.IsRollback(err))
	require.Equal(t, codes.DataLoss, status.Code(err))
}

func TestIsRollbackUnwrapsWrappedError(t *testing.T) {
	inner := arxerrors.Rollback(errors.New("boom"))
	wrapped := fmt.Errorf("while merging: %w", inner)
	require.True(t, arxerrors.IsRollback(wrapped))
}

func TestIsRollbackFalseForOrdinaryError(t *testing.T) {
	require.False(t, arxerrors.IsRollback(errors.New("plain")))
}

type stringerFunc func() string

func (f stringerFunc) String() string { return f() }
