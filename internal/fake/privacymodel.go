package fake

import "github.com/arxgo/arxgo/pkg/config"

// PrivacyModel is a minimal real config.PrivacyModel.
type PrivacyModel struct {
	ModelName       string
	LocalRecodingOK bool
}

// NewKAnonymityModel returns a PrivacyModel named "k-anonymity" that
// supports local recoding, the common case exercised by most tests.
func NewKAnonymityModel() *PrivacyModel {
	return &PrivacyModel{ModelName: "k-anonymity", LocalRecodingOK: true}
}

func (m *PrivacyModel) Name() string                { return m.ModelName }
func (m *PrivacyModel) SupportsLocalRecoding() bool { return m.LocalRecodingOK }

var _ config.PrivacyModel = (*PrivacyModel)(nil)
