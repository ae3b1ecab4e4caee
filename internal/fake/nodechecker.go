package fake

import (
	"fmt"
	"math"

	"github.com/arxgo/arxgo/pkg/config"
	"github.com/arxgo/arxgo/pkg/datamanager"
	"github.com/arxgo/arxgo/pkg/nodechecker"
	"github.com/arxgo/arxgo/pkg/transformation"
)

// NodeChecker is a real, minimal nodechecker.NodeChecker: it applies a
// Transformation's generalization vector column-by-column through the
// manager's hierarchies, groups the generalized rows, and classifies
// k-anonymity against cfg's minimal group size. It has no notion of
// ℓ-diversity, t-closeness or differential privacy (those privacy
// models are out of scope); it exists to give tests and demos a
// checker with real row semantics instead of a scripted mock.
type NodeChecker struct {
	manager datamanager.DataManager
	cfg     config.AnonymizationConfig
	input   *datamanager.Matrix
}

// NewNodeChecker binds a NodeChecker to manager's generalized matrix.
func NewNodeChecker(manager datamanager.DataManager, cfg config.AnonymizationConfig) *NodeChecker {
	return &NodeChecker{manager: manager, cfg: cfg, input: manager.GeneralizedMatrix()}
}

// InputBuffer implements nodechecker.NodeChecker.
func (c *NodeChecker) InputBuffer() *datamanager.Matrix {
	return c.input
}

// Reset implements nodechecker.NodeChecker; this checker keeps no
// per-check scratch state.
func (c *NodeChecker) Reset() {}

// Apply implements nodechecker.NodeChecker, interning generalized rows
// into the manager's own dictionary.
func (c *NodeChecker) Apply(t *transformation.Transformation) (*nodechecker.TransformedData, error) {
	return c.ApplyWithDictionary(t, c.manager.Dictionary())
}

// ApplyWithDictionary implements nodechecker.NodeChecker.
func (c *NodeChecker) ApplyWithDictionary(t *transformation.Transformation, dict *datamanager.Dictionary) (*nodechecker.TransformedData, error) {
	hierarchies := c.manager.Hierarchies()
	generalization := t.Generalization()
	rows, cols := c.input.Rows(), c.input.Cols()

	out := datamanager.NewMatrix(rows, cols)
	groupOf := make([]string, rows)
	groupSizes := map[string]int{}

	for r := 0; r < rows; r++ {
		key := ""
		for col := 0; col < cols; col++ {
			code := c.input.Get(r, col)
			if col < len(hierarchies) && col < len(generalization) {
				code = hierarchies[col].Generalize(code, generalization[col])
			}
			out.Set(r, col, code)
			key += fmt.Sprintf("%d|", code)
		}
		groupOf[r] = key
		groupSizes[key]++
	}

	minGroupSize := c.cfg.MinimalGroupSize()
	k := 1
	if !math.IsInf(minGroupSize, 1) && minGroupSize > 1 {
		k = int(minGroupSize)
	}

	outliers := 0
	for r := 0; r < rows; r++ {
		if groupSizes[groupOf[r]] < k {
			out.Set(r, 0, out.Get(r, 0)|outlierMask)
			outliers++
		}
	}

	level := 0
	for _, v := range generalization {
		level += v
	}
	properties := transformation.PropertySet(0)
	if outliers == 0 {
		properties = properties.With(transformation.PropertyAnonymous)
		properties = properties.With(transformation.PropertyKAnonymous)
	} else {
		properties = properties.With(transformation.PropertyNotAnonymous)
		properties = properties.With(transformation.PropertyNotKAnonymous)
	}

	return &nodechecker.TransformedData{
		BufferGeneralized:     out,
		BufferMicroaggregated: nil,
		Properties:            properties,
		InformationLoss:       FloatScore(level),
		LowerBound:            FloatScore(level),
	}, nil
}

// outlierMask mirrors pkg/buffer.OutlierMask; duplicated here rather
// than imported to keep this package free of a dependency on
// pkg/buffer (which would otherwise be its only use).
const outlierMask = 1 << 30

var _ nodechecker.NodeChecker = (*NodeChecker)(nil)
