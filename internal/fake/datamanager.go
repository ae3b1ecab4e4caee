package fake

import (
	"github.com/arxgo/arxgo/pkg/datamanager"
)

// DataManager is a real, in-memory datamanager.DataManager: no file
// I/O, no CSV parsing, just three matrices and a dictionary built up
// front and handed back verbatim. It is the fixture tests build
// against when they need actual row data rather than a scripted mock.
type DataManager struct {
	generalized *datamanager.Matrix
	analyzed    *datamanager.Matrix
	static      *datamanager.Matrix
	hierarchies []datamanager.Hierarchy
	dictionary  *datamanager.Dictionary
}

// NewDataManager assembles a DataManager from already-built matrices
// and hierarchies. Any of analyzed/static may be nil if the dataset
// has no sensitive or insensitive columns respectively.
func NewDataManager(generalized, analyzed, static *datamanager.Matrix, hierarchies []datamanager.Hierarchy, dictionary *datamanager.Dictionary) *DataManager {
	if dictionary == nil {
		dictionary = datamanager.NewDictionary()
	}
	return &DataManager{
		generalized: generalized,
		analyzed:    analyzed,
		static:      static,
		hierarchies: hierarchies,
		dictionary:  dictionary,
	}
}

func (m *DataManager) GeneralizedMatrix() *datamanager.Matrix { return m.generalized }
func (m *DataManager) AnalyzedMatrix() *datamanager.Matrix    { return m.analyzed }
func (m *DataManager) StaticMatrix() *datamanager.Matrix      { return m.static }
func (m *DataManager) Hierarchies() []datamanager.Hierarchy   { return m.hierarchies }
func (m *DataManager) Dictionary() *datamanager.Dictionary    { return m.dictionary }

// SubsetInstance returns a new DataManager whose matrices contain only
// rowSet's rows, densely reindexed in ascending order, sharing this
// manager's hierarchies and dictionary by reference (the dictionary is
// append-only, so sharing it is safe — spec.md §3).
func (m *DataManager) SubsetInstance(rowSet *datamanager.RowSet) datamanager.DataManager {
	rows := rowSet.Rows()
	sub := &DataManager{
		generalized: subsetOrNil(m.generalized, rows),
		analyzed:    subsetOrNil(m.analyzed, rows),
		static:      subsetOrNil(m.static, rows),
		hierarchies: m.hierarchies,
		dictionary:  m.dictionary,
	}
	return sub
}

func subsetOrNil(m *datamanager.Matrix, rows []int) *datamanager.Matrix {
	if m == nil {
		return nil
	}
	return m.Subset(rows)
}

var _ datamanager.DataManager = (*DataManager)(nil)
