// Package progress declares the synchronous progress-reporting
// callback optimize*/output* invoke from inside the engine's own call
// stack (spec.md §5: "Progress is reported by callbacks invoked
// synchronously inside the engine's own stack").
package progress

// Listener receives progress updates during a long-running operation.
// Values delivered within one call are nondecreasing, bounded by
// [0,1], and the last value delivered is always 1.0 (Invariant P7).
type Listener interface {
	Progress(fraction float64)
}

// ListenerFunc adapts a plain function to a Listener.
type ListenerFunc func(fraction float64)

// Progress implements Listener.
func (f ListenerFunc) Progress(fraction float64) {
	f(fraction)
}

// Noop discards every progress update. Used as the default when a
// caller passes a nil listener to Optimize, OptimizeIterative or
// OptimizeIterativeFast; OptimizeFast itself rejects a nil listener.
var Noop Listener = ListenerFunc(func(float64) {})

// Banded wraps inner so that a sub-progress value in [0,1] reported to
// the returned Listener is linearly remapped onto [min, max] before
// being forwarded to inner. Used by optimizeIterativeFast (spec.md
// §4.5) to give each inner step's listener a slice of the outer
// progress range.
func Banded(inner Listener, min, max float64) Listener {
	span := max - min
	return ListenerFunc(func(fraction float64) {
		inner.Progress(min + fraction*span)
	})
}
