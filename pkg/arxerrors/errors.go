// Package arxerrors classifies the failure kinds of spec.md §7 as
// google.golang.org/grpc/status errors, following the teacher's
// convention (pkg/util.StatusWrap/StatusWrapf) of carrying a
// codes.Code on every error returned across a package boundary.
package arxerrors

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// InvalidArgument reports an out-of-range gsFactor/records/
// adaptionFactor/maxIterations, a nil listener/handle, a non-output
// handle, or a handle whose input buffer does not match the checker's.
func InvalidArgument(format string, args ...interface{}) error {
	return status.Errorf(codes.InvalidArgument, format, args...)
}

// BufferLocked reports that output(·, fork=true) was called while an
// unforked handle is outstanding.
func BufferLocked(node fmt.Stringer) error {
	return status.Errorf(codes.FailedPrecondition, "buffer is locked by an outstanding unforked output for node %s", node)
}

// Internal reports an unexpected failure during the inner anonymize
// call of optimizeFast; the caller's buffer is guaranteed untouched.
func Internal(err error) error {
	return status.Errorf(codes.Internal, "unexpected IO: %s", err)
}

// RollbackError is returned when an exception occurs during the
// merge/typing steps of optimizeFast (spec.md §4.4 steps 8–9). The
// caller's output buffer is left in an unknown state; privacy is not
// guaranteed for that handle until it is rebuilt via a fresh output()
// call.
type RollbackError struct {
	// Cause is the error that interrupted the merge.
	Cause error
}

func (e *RollbackError) Error() string {
	return fmt.Sprintf("rollback required: merge interrupted, output handle must be rebuilt: %s", e.Cause)
}

func (e *RollbackError) Unwrap() error {
	return e.Cause
}

// GRPCStatus lets status.FromError/status.Code classify a RollbackError
// as codes.DataLoss, per the table in spec.md §7.
func (e *RollbackError) GRPCStatus() *status.Status {
	return status.New(codes.DataLoss, e.Error())
}

// Rollback wraps cause as a RollbackError.
func Rollback(cause error) error {
	return &RollbackError{Cause: cause}
}

// IsRollback reports whether err is (or wraps) a *RollbackError.
func IsRollback(err error) bool {
	_, ok := err.(*RollbackError)
	if ok {
		return true
	}
	type unwrapper interface{ Unwrap() error }
	for u, ok := err.(unwrapper); ok; u, ok = err.(unwrapper) {
		err = u.Unwrap()
		if _, ok := err.(*RollbackError); ok {
			return true
		}
	}
	return false
}
