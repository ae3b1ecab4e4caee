// Package definition declares the DataDefinition collaborator
// interface: per-column roles (quasi-identifier, sensitive, insensitive,
// microaggregated) and the microaggregation functions attached to
// specific columns. Column role assignment and microaggregation
// function implementations are out of scope per spec.md §1; this
// package fixes the shape the core consumes and clones.
package definition

// AggregationFunction reduces a set of values in an equivalence class
// to a single representative value (e.g. mean, median, mode). It is
// stateful across calls within a run (an accumulator-style
// implementation may keep running sums), which is why DataDefinition.
// Clone must deep-copy it rather than share it (spec.md §4.4 step 5:
// "its microaggregation functions are stateful — the clone isolates
// them").
type AggregationFunction interface {
	// Aggregate reduces values to a single representative value.
	Aggregate(values []string) string
	// Clone returns an independent copy of the function with the
	// same configuration but reset accumulator state.
	Clone() AggregationFunction
}

// MicroAggregationFunction names an AggregationFunction attached to a
// specific column.
type MicroAggregationFunction struct {
	ColumnName string
	function   AggregationFunction
}

// Function returns the underlying AggregationFunction.
func (m MicroAggregationFunction) Function() AggregationFunction {
	return m.function
}

// NewMicroAggregationFunction attaches fn to columnName.
func NewMicroAggregationFunction(columnName string, fn AggregationFunction) MicroAggregationFunction {
	return MicroAggregationFunction{ColumnName: columnName, function: fn}
}

// DataDefinition records, per column, its role in the anonymization
// and any microaggregation function attached to it.
type DataDefinition struct {
	QuasiIdentifiers []string
	Sensitive        []string
	Insensitive      []string

	microAggregation map[string]MicroAggregationFunction
}

// NewDataDefinition returns an empty DataDefinition.
func NewDataDefinition() *DataDefinition {
	return &DataDefinition{microAggregation: map[string]MicroAggregationFunction{}}
}

// SetMicroAggregationFunction attaches fn to columnName.
func (d *DataDefinition) SetMicroAggregationFunction(columnName string, fn AggregationFunction) {
	d.microAggregation[columnName] = NewMicroAggregationFunction(columnName, fn)
}

// MicroAggregationFunction returns the function attached to
// columnName, or the zero value with a nil Function() if none is set.
func (d *DataDefinition) MicroAggregationFunction(columnName string) MicroAggregationFunction {
	return d.microAggregation[columnName]
}

// QuasiIdentifiersWithMicroaggregation returns the subset of
// QuasiIdentifiers that also have a microaggregation function
// attached.
func (d *DataDefinition) QuasiIdentifiersWithMicroaggregation() []string {
	var out []string
	for _, qi := range d.QuasiIdentifiers {
		if f, ok := d.microAggregation[qi]; ok && f.function != nil {
			out = append(out, qi)
		}
	}
	return out
}

// Clone returns a deep copy of the definition. Every attached
// AggregationFunction is cloned so the copy's accumulator state is
// independent of the original's (see AggregationFunction's doc
// comment); local recoding relies on this to run a nested anonymization
// without perturbing the outer run's microaggregation state.
func (d *DataDefinition) Clone() *DataDefinition {
	clone := &DataDefinition{
		QuasiIdentifiers: append([]string(nil), d.QuasiIdentifiers...),
		Sensitive:        append([]string(nil), d.Sensitive...),
		Insensitive:      append([]string(nil), d.Insensitive...),
		microAggregation: make(map[string]MicroAggregationFunction, len(d.microAggregation)),
	}
	for col, f := range d.microAggregation {
		cloned := f
		if f.function != nil {
			cloned.function = f.function.Clone()
		}
		clone.microAggregation[col] = cloned
	}
	return clone
}
