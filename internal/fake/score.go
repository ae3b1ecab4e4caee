package fake

import (
	"fmt"

	"github.com/arxgo/arxgo/pkg/transformation"
)

// FloatScore is a real transformation.Score backed by a plain float64,
// used by tests that need actual comparable scores rather than a
// scripted mock.
type FloatScore float64

// CompareTo implements transformation.Score.
func (s FloatScore) CompareTo(other transformation.Score) int {
	o := other.(FloatScore)
	switch {
	case s < o:
		return -1
	case s > o:
		return 1
	default:
		return 0
	}
}

// String implements transformation.Score.
func (s FloatScore) String() string {
	return fmt.Sprintf("%g", float64(s))
}

var _ transformation.Score = FloatScore(0)
