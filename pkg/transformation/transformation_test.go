package transformation_test

import (
	"testing"

	"github.com/arxgo/arxgo/internal/fake"
	"github.com/arxgo/arxgo/pkg/transformation"
	"github.com/stretchr/testify/require"
)

func TestNewComputesLevel(t *testing.T) {
	tr := transformation.New([]int{1, 2, 0}, []int{1, 2, 0}, 42)
	require.Equal(t, 3, tr.Level())
	require.Equal(t, int64(42), tr.ID())
	require.Equal(t, []int{1, 2, 0}, tr.Generalization())
}

func TestSetCheckedIdempotentOnEqualScores(t *testing.T) {
	tr := transformation.New([]int{0}, []int{0}, 1)
	require.NoError(t, tr.SetChecked(fake.FloatScore(1.5), fake.FloatScore(1.0)))
	require.True(t, tr.IsChecked())
	require.NoError(t, tr.SetChecked(fake.FloatScore(1.5), fake.FloatScore(1.0)))
}

func TestSetCheckedRejectsConflictingRecheck(t *testing.T) {
	tr := transformation.New([]int{0}, []int{0}, 1)
	require.NoError(t, tr.SetChecked(fake.FloatScore(1.5), fake.FloatScore(1.0)))
	err := tr.SetChecked(fake.FloatScore(2.0), fake.FloatScore(1.0))
	require.Error(t, err)
}

func TestHasPropertyMonotone(t *testing.T) {
	tr := transformation.New([]int{0}, []int{0}, 1)
	require.False(t, tr.HasProperty(transformation.PropertyAnonymous))
	tr.SetProperty(transformation.PropertyAnonymous)
	require.True(t, tr.HasProperty(transformation.PropertyAnonymous))
	tr.SetProperty(transformation.PropertyAnonymous)
	require.True(t, tr.HasProperty(transformation.PropertyAnonymous))
}

func TestStringNilReceiverDoesNotPanic(t *testing.T) {
	var tr *transformation.Transformation
	require.Equal(t, "Transformation{<input>}", tr.String())
}

func TestPropagateToNeighborsUp(t *testing.T) {
	tr := transformation.New([]int{0}, []int{0}, 7)
	lister := &fakeLister{successors: map[int64][]int64{7: {8, 9}}}
	tr.PropagateToNeighbors(transformation.PropertyAnonymous, lister)
	require.ElementsMatch(t, []int64{8, 9}, lister.applied[transformation.PropertyAnonymous])
}

func TestPropagateToNeighborsNoneIsNoop(t *testing.T) {
	tr := transformation.New([]int{0}, []int{0}, 7)
	lister := &fakeLister{}
	tr.PropagateToNeighbors(transformation.PropertyChecked, lister)
	require.Empty(t, lister.applied)
}

type fakeLister struct {
	successors   map[int64][]int64
	predecessors map[int64][]int64
	applied      map[transformation.Property][]int64
}

func (l *fakeLister) SuccessorIDs(id int64) []int64   { return l.successors[id] }
func (l *fakeLister) PredecessorIDs(id int64) []int64 { return l.predecessors[id] }
func (l *fakeLister) ApplyProperty(id int64, p transformation.Property) {
	if l.applied == nil {
		l.applied = map[transformation.Property][]int64{}
	}
	l.applied[p] = append(l.applied[p], id)
}
