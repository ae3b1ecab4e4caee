package config

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/google/go-jsonnet"

	"github.com/arxgo/arxgo/pkg/util"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// jsonConfiguration is the plain-JSON shape a Jsonnet template is
// expected to evaluate to. It is intentionally narrower than
// Configuration: privacy models and the internal metric configuration
// are still wired up programmatically after loading, the way the
// teacher's cmd_* binaries layer Jsonnet-rendered settings underneath
// code-constructed collaborators rather than deserializing them whole.
type jsonConfiguration struct {
	GSFactor         float64 `json:"gsFactor"`
	MaxOutliers      float64 `json:"maxOutliers"`
	MinimalGroupSize float64 `json:"minimalGroupSize"`
}

// LoadConfigurationFromJsonnet reads a Jsonnet file, evaluates it with
// every environment variable of the current process available through
// std.extVar(), and returns a Configuration with its scalar fields
// populated. Pass "-" to read from stdin. PrivacyModels and
// InternalConfig are left unset; callers attach those programmatically.
//
// This mirrors the teacher's UnmarshalConfigurationFromFile, adapted to
// unmarshal into a plain Go struct via encoding/json instead of
// protojson into a Protobuf message, since AnonymizationConfig has no
// wire schema of its own (spec.md §6: "CLI / wire formats. None at this
// layer").
func LoadConfigurationFromJsonnet(path string) (*Configuration, error) {
	var jsonnetInput []byte
	var err error
	if path == "-" {
		jsonnetInput, err = io.ReadAll(os.Stdin)
	} else {
		jsonnetInput, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, util.StatusWrapf(err, "failed to read file contents")
	}

	vm := jsonnet.MakeVM()
	for _, env := range os.Environ() {
		parts := strings.SplitN(env, "=", 2)
		if len(parts) != 2 {
			return nil, status.Errorf(codes.InvalidArgument, "invalid environment variable: %#v", env)
		}
		vm.ExtVar(parts[0], parts[1])
	}

	jsonnetOutput, err := vm.EvaluateSnippet(path, string(jsonnetInput))
	if err != nil {
		return nil, util.StatusWrapf(err, "failed to evaluate configuration")
	}

	var parsed jsonConfiguration
	if err := json.Unmarshal([]byte(jsonnetOutput), &parsed); err != nil {
		return nil, util.StatusWrap(err, "failed to unmarshal configuration")
	}

	cfg := NewConfiguration(nil)
	cfg.GSFactor = parsed.GSFactor
	cfg.SetMaxOutliers(parsed.MaxOutliers)
	if parsed.MinimalGroupSize != 0 {
		cfg.SetMinimalGroupSize(parsed.MinimalGroupSize)
	}
	return cfg, nil
}
