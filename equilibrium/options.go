package equilibrium

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gibbslab/gibbs/optimum"
)

// DefaultEpsilon is the default strictly-positive floor applied to species
// amounts wherever a logarithm is taken.
const DefaultEpsilon = 1e-20

// HessianMode selects the curvature approximation fed to the engine.
//
//   - HessianDiagonal — diag(1/nᵢ), the ideal-mixing diagonal. Cheap,
//     always available, the default.
//   - HessianExact    — the ∂ln aᵢ/∂nⱼ blocks reported by the activity
//     models; phases whose model reports no derivatives fall back to the
//     diagonal entries.
type HessianMode int

const (
	// HessianDiagonal approximates the curvature by diag(1/nᵢ).
	HessianDiagonal HessianMode = iota

	// HessianExact uses model-supplied ∂ln aᵢ/∂nⱼ where available.
	HessianExact
)

// String returns the mode name for diagnostics.
func (m HessianMode) String() string {
	switch m {
	case HessianDiagonal:
		return "diagonal"
	case HessianExact:
		return "exact"
	default:
		return fmt.Sprintf("HessianMode(%d)", int(m))
	}
}

// Options tunes one equilibrium solve. Construct with DefaultOptions and
// override fields.
type Options struct {
	// Optimum holds the interior-point engine settings.
	Optimum optimum.Options `yaml:"optimum"`

	// Hessian selects the curvature approximation.
	Hessian HessianMode `yaml:"hessian"`

	// Epsilon floors species amounts inside activity evaluations and the
	// starting point, keeping logarithms finite. Strictly positive.
	Epsilon float64 `yaml:"epsilon"`

	// Warm optionally seeds the solve with the Optimum state of a previous
	// Result. It is an explicit caller-controlled copy, never an implicit
	// cache; a state of the wrong shape is ignored.
	Warm *optimum.State `yaml:"-"`
}

// DefaultOptions returns the documented defaults: the optimum defaults,
// diagonal Hessian, Epsilon 1e-20, no warm start.
func DefaultOptions() Options {
	return Options{
		Optimum: optimum.DefaultOptions(),
		Hessian: HessianDiagonal,
		Epsilon: DefaultEpsilon,
	}
}

// Validate rejects out-of-range settings. Solve calls it first.
func (o Options) Validate() error {
	if o.Hessian != HessianDiagonal && o.Hessian != HessianExact {
		return fmt.Errorf("%w: unknown hessian mode %d", ErrBadOptions, int(o.Hessian))
	}
	if !(o.Epsilon > 0) || !finite(o.Epsilon) {
		return fmt.Errorf("%w: Epsilon must be positive and finite, got %v", ErrBadOptions, o.Epsilon)
	}

	return o.Optimum.Validate()
}

// LoadOptions reads YAML from path over the defaults, so a partial file
// overrides only the keys it names. The loaded options are validated.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, err
	}
	opts := DefaultOptions()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("equilibrium: parse options: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}

	return opts, nil
}

// SaveOptions writes o to path as YAML. The Warm state and loggers are
// runtime-only and not serialized.
func SaveOptions(path string, o Options) error {
	data, err := yaml.Marshal(o)
	if err != nil {
		return fmt.Errorf("equilibrium: encode options: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}
