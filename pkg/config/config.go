// Package config declares the AnonymizationConfig collaborator
// interface and a concrete Configuration implementing it: the
// privacy-model registry, generalization/suppression weighting and
// outlier budget a search and a local-recoding step both read.
package config

import (
	"errors"
	"math"

	"github.com/arxgo/arxgo/pkg/datamanager"
)

// PrivacyModel is a single declared privacy requirement (k-anonymity,
// ℓ-diversity, t-closeness, differential privacy, ...). Concrete models
// are out of scope per spec.md §1; this is the shape the core needs to
// evaluate isOptimizable's "every model advertises local-recoding
// support" precondition (spec.md §4.4).
type PrivacyModel interface {
	// Name identifies the model for logs and diagnostics.
	Name() string
	// SupportsLocalRecoding reports whether this model's semantics
	// are well-defined when evaluated against a row-subset projection
	// (some models, e.g. ones defined over a global distribution,
	// cannot be evaluated correctly on a subset and must reject local
	// recoding).
	SupportsLocalRecoding() bool
}

// AnonymizationConfig is the privacy/utility configuration a search or
// a local-recoding run is parameterized by (C6's "Projected
// configuration" of spec.md §3, and the interface of spec.md §6).
type AnonymizationConfig interface {
	// PrivacyModels returns the declared privacy requirements.
	PrivacyModels() []PrivacyModel
	// SubsetFor returns a clone of this configuration reparameterized
	// to run over rowSet only, with gsFactor applied if it is not
	// NaN ("leave configured" per spec.md §6).
	SubsetFor(rowSet *datamanager.RowSet, gsFactor float64) AnonymizationConfig
	// MaxOutliers returns the fraction of rows, in [0,1], allowed to
	// be suppressed as outliers.
	MaxOutliers() float64
	// SetMaxOutliers overrides the suppression budget, used by the
	// records-clamp computation of spec.md §4.4 step 4.
	SetMaxOutliers(v float64)
	// MinimalGroupSize returns the minimal outlier-row count required
	// before local recoding is considered worthwhile, or +Inf if
	// unbounded (no floor is applied).
	MinimalGroupSize() float64
	// InternalConfig returns the backend-specific configuration a
	// Metric or NodeChecker implementation expects; its shape is a
	// matter between those collaborators and is opaque here.
	InternalConfig() interface{}
	// Initialize prepares the configuration for a run over manager's
	// data. Called once per AnonymizationResult when rebuilding from
	// persisted state (spec.md §4.2), after the input handle is
	// locked and before the metric is initialized, mirroring
	// Metric.Initialize's hook shape. Concrete privacy models are out
	// of scope per spec.md §1 and none declared in this module need
	// per-manager setup, so Configuration's implementation only
	// validates that a manager was supplied.
	Initialize(manager datamanager.DataManager) error
}

// Configuration is a concrete AnonymizationConfig.
type Configuration struct {
	Models            []PrivacyModel
	GSFactor          float64
	maxOutliers       float64
	minimalGroupSize  float64
	Internal          interface{}
	restrictedRowSet  *datamanager.RowSet
}

// NewConfiguration returns a Configuration with no outlier budget set
// (MaxOutliers defaults to 0, i.e. suppression forbidden) and an
// unbounded minimal group size.
func NewConfiguration(models []PrivacyModel) *Configuration {
	return &Configuration{
		Models:           models,
		GSFactor:         math.NaN(),
		minimalGroupSize: math.Inf(1),
	}
}

func (c *Configuration) PrivacyModels() []PrivacyModel {
	return c.Models
}

func (c *Configuration) MaxOutliers() float64 {
	return c.maxOutliers
}

func (c *Configuration) SetMaxOutliers(v float64) {
	c.maxOutliers = v
}

func (c *Configuration) MinimalGroupSize() float64 {
	return c.minimalGroupSize
}

// SetMinimalGroupSize configures the floor isOptimizable compares the
// outlier count against. Pass math.Inf(1) for "unbounded".
func (c *Configuration) SetMinimalGroupSize(v float64) {
	c.minimalGroupSize = v
}

func (c *Configuration) InternalConfig() interface{} {
	return c.Internal
}

// Initialize validates that a manager was supplied. Concrete
// PrivacyModel implementations needing per-dataset setup (e.g. sizing
// a weight vector to the manager's column count) would do so here;
// none declared in this module require it.
func (c *Configuration) Initialize(manager datamanager.DataManager) error {
	if manager == nil {
		return errors.New("config: Initialize requires a non-nil manager")
	}
	return nil
}

// RestrictedRowSet returns the RowSet this configuration was restricted
// to by SubsetFor, or nil if it has not been restricted.
func (c *Configuration) RestrictedRowSet() *datamanager.RowSet {
	return c.restrictedRowSet
}

func (c *Configuration) SubsetFor(rowSet *datamanager.RowSet, gsFactor float64) AnonymizationConfig {
	clone := &Configuration{
		Models:           append([]PrivacyModel(nil), c.Models...),
		GSFactor:         c.GSFactor,
		maxOutliers:      c.maxOutliers,
		minimalGroupSize: c.minimalGroupSize,
		Internal:         c.Internal,
		restrictedRowSet: rowSet,
	}
	if !math.IsNaN(gsFactor) {
		clone.GSFactor = gsFactor
	}
	return clone
}
