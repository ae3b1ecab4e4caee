package definition_test

import (
	"testing"

	"github.com/arxgo/arxgo/pkg/definition"
	"github.com/stretchr/testify/require"
)

type countingAggregation struct {
	calls int
}

func (a *countingAggregation) Aggregate(values []string) string {
	a.calls++
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func (a *countingAggregation) Clone() definition.AggregationFunction {
	return &countingAggregation{}
}

func TestQuasiIdentifiersWithMicroaggregation(t *testing.T) {
	d := definition.NewDataDefinition()
	d.QuasiIdentifiers = []string{"age", "zip"}
	d.SetMicroAggregationFunction("age", &countingAggregation{})
	require.Equal(t, []string{"age"}, d.QuasiIdentifiersWithMicroaggregation())
}

func TestCloneDeepCopiesSlicesAndFunctions(t *testing.T) {
	d := definition.NewDataDefinition()
	d.QuasiIdentifiers = []string{"age"}
	fn := &countingAggregation{}
	d.SetMicroAggregationFunction("age", fn)
	fn.calls = 5

	clone := d.Clone()
	clone.QuasiIdentifiers[0] = "zip"
	require.Equal(t, "age", d.QuasiIdentifiers[0])

	clonedFn := clone.MicroAggregationFunction("age").Function().(*countingAggregation)
	require.Equal(t, 0, clonedFn.calls)
	require.Equal(t, 5, fn.calls)
}

func TestMicroAggregationFunctionAbsentReturnsNilFunction(t *testing.T) {
	d := definition.NewDataDefinition()
	require.Nil(t, d.MicroAggregationFunction("nope").Function())
}
