// Package datamanager declares the DataManager collaborator interface
// (C3): the owner of the three row matrices a transformation is applied
// to, the generalization hierarchies, and the subset-projection
// operation local recoding uses to restrict a run to outlier rows.
//
// Concrete implementations (CSV loading, hierarchy parsing) are out of
// scope per spec.md §1; this package only fixes the contract the rest
// of the engine depends on.
package datamanager

// Matrix is a row-major grid of integer codes: one row per record, one
// column per attribute. It is shared, by reference, between a
// DataManager and every OutputBuffer built from it until a fork copies
// it.
type Matrix struct {
	data []int
	rows int
	cols int
}

// NewMatrix allocates a zeroed Matrix of the given shape.
func NewMatrix(rows, cols int) *Matrix {
	return &Matrix{data: make([]int, rows*cols), rows: rows, cols: cols}
}

// NewMatrixFromRows copies rows (each of length cols) into a new Matrix.
func NewMatrixFromRows(rows [][]int) *Matrix {
	if len(rows) == 0 {
		return &Matrix{}
	}
	cols := len(rows[0])
	m := NewMatrix(len(rows), cols)
	for r, row := range rows {
		copy(m.data[r*cols:(r+1)*cols], row)
	}
	return m
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// Get returns the code at (row, col).
func (m *Matrix) Get(row, col int) int {
	return m.data[row*m.cols+col]
}

// Set stores v at (row, col).
func (m *Matrix) Set(row, col, v int) {
	m.data[row*m.cols+col] = v
}

// RowSlice returns the backing slice for a single row. Mutations
// through the returned slice are visible to the Matrix.
func (m *Matrix) RowSlice(row int) []int {
	return m.data[row*m.cols : (row+1)*m.cols]
}

// Clone deep-copies the matrix.
func (m *Matrix) Clone() *Matrix {
	clone := &Matrix{data: append([]int(nil), m.data...), rows: m.rows, cols: m.cols}
	return clone
}

// Subset returns a new Matrix containing only the rows named by rows,
// in the order given. Used by DataManager.SubsetInstance to build a
// projected manager over a RowSet's dense row enumeration.
func (m *Matrix) Subset(rows []int) *Matrix {
	sub := NewMatrix(len(rows), m.cols)
	for i, r := range rows {
		copy(sub.RowSlice(i), m.RowSlice(r))
	}
	return sub
}

// Hierarchy is a generalization hierarchy for a single quasi-identifier
// column: Generalize(code, level) gives the generalized code at level
// for a level-0 code. Hierarchy parsing itself is out of scope; this is
// the shape the core consumes.
type Hierarchy interface {
	// Levels returns the number of generalization levels available,
	// including level 0 (no generalization).
	Levels() int
	// Generalize returns the code at the given level for an input
	// code at level 0.
	Generalize(code, level int) int
}

// DataManager owns the three row matrices a Transformation is applied
// to and the hierarchies used to interpret the generalized matrix's
// codes (C3 of the design).
type DataManager interface {
	// GeneralizedMatrix holds one column per quasi-identifier, coded
	// at generalization level 0 (the node checker rewrites codes in
	// place per the active Transformation).
	GeneralizedMatrix() *Matrix
	// AnalyzedMatrix holds one column per sensitive/analyzed
	// attribute, used by privacy models such as ℓ-diversity.
	AnalyzedMatrix() *Matrix
	// StaticMatrix holds attributes that are neither generalized nor
	// analyzed but are retained verbatim in the output (identifiers
	// excluded from release, insensitive attributes, microaggregated
	// attributes prior to aggregation).
	StaticMatrix() *Matrix
	// Hierarchies returns the per-quasi-identifier-column hierarchy,
	// indexed the same way as GeneralizedMatrix's columns.
	Hierarchies() []Hierarchy
	// Dictionary returns the code→value dictionary shared by every
	// OutputBuffer built from this manager (spec.md §3: "Dictionaries
	// are shared by reference between the manager and every output
	// buffer; they are append-only").
	Dictionary() *Dictionary
	// SubsetInstance returns a new DataManager whose three matrices
	// contain only the rows named by rowSet, reindexed densely in
	// ascending row order. Used by local recoding (spec.md §4.4 step
	// 5) to project the pipeline onto the outlier rows only.
	SubsetInstance(rowSet *RowSet) DataManager
}
