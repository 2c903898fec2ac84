package nozzle

import (
	"fmt"

	"github.com/notargets/oberth/types"
)

const (
	DefaultExpansionRatio = 25.0
	DefaultGamma          = 1.2
	DefaultLines          = 20
	DefaultThroatRadius   = 1.0
	DefaultSamples        = 100
	// Upper bound on contour samples accepted from a request
	MaxSamples            = 10000
)

// Config holds the design parameters of one solve. It is passed by value and
// never modified by the solver.
type Config struct {
	ExpansionRatio float64 `json:"expansion_ratio"`
	Gamma          float64 `json:"gamma"`
	Lines          int     `json:"lines"`
	Geometry
}

// Geometry controls the resolution and scale of the wall profile
type Geometry struct {
	ThroatRadius float64 `json:"throat_radius,omitempty"`
	Samples      int     `json:"samples,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		ExpansionRatio: DefaultExpansionRatio,
		Gamma:          DefaultGamma,
		Lines:          DefaultLines,
		Geometry:       DefaultGeometry(),
	}
}

func DefaultGeometry() Geometry {
	return Geometry{
		ThroatRadius: DefaultThroatRadius,
		Samples:      DefaultSamples,
	}
}

// withDefaults fills zero valued geometry fields
func (g Geometry) withDefaults() Geometry {
	if g.ThroatRadius == 0 {
		g.ThroatRadius = DefaultThroatRadius
	}
	if g.Samples == 0 {
		g.Samples = DefaultSamples
	}
	return g
}

func (g Geometry) Validate() error {
	if !types.IsFinite(g.ThroatRadius) || g.ThroatRadius <= 0 {
		return types.NewInputError("throat_radius", g.ThroatRadius, "must be positive")
	}
	if g.Samples < 2 {
		return types.NewInputError("samples", g.Samples, "at least 2 contour samples are required")
	}
	if g.Samples > MaxSamples {
		return types.NewInputError("samples", g.Samples,
			fmt.Sprintf("at most %d contour samples are allowed", MaxSamples))
	}
	return nil
}

func validateExpansionRatio(er float64) error {
	if !types.IsFinite(er) || er < 1 {
		return types.NewInputError("expansion_ratio", er,
			"exit area must be at least the throat area")
	}
	return nil
}

func validateLines(lines int) error {
	if lines <= 0 {
		return types.NewInputError("lines", lines, "requested line count must be positive")
	}
	return nil
}

func (cfg Config) Validate() (err error) {
	if !types.IsFinite(cfg.Gamma) || cfg.Gamma-1 <= 0 {
		return types.NewInputError("gamma", cfg.Gamma, "specific heat ratio must be greater than 1")
	}
	if err = validateExpansionRatio(cfg.ExpansionRatio); err != nil {
		return
	}
	if err = validateLines(cfg.Lines); err != nil {
		return
	}
	return cfg.Geometry.withDefaults().Validate()
}

func (cfg Config) Print() {
	g := cfg.Geometry.withDefaults()
	fmt.Printf("%8.5f\t\t= Expansion Ratio\n", cfg.ExpansionRatio)
	fmt.Printf("%8.5f\t\t= Gamma\n", cfg.Gamma)
	fmt.Printf("[%d]\t\t\t= Characteristic Lines\n", cfg.Lines)
	fmt.Printf("%8.5f\t\t= Throat Radius\n", g.ThroatRadius)
	fmt.Printf("[%d]\t\t\t= Contour Samples\n", g.Samples)
}
