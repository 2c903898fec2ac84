package cooling

import (
	"fmt"
	"math"

	"github.com/notargets/oberth/types"
)

// GasProperties of the combustion products at the wall
type GasProperties struct {
	Viscosity float64 `json:"viscosity"` // Pa s
	Cp        float64 `json:"cp"`        // J/kg K
	Prandtl   float64 `json:"prandtl"`
	Gamma     float64 `json:"gamma"`
}

func DefaultGas() GasProperties {
	return GasProperties{
		Viscosity: 8e-5,
		Cp:        2500,
		Prandtl:   0.8,
		Gamma:     1.2,
	}
}

// withDefaults fills unset properties
func (g GasProperties) withDefaults() GasProperties {
	d := DefaultGas()
	if g.Viscosity == 0 {
		g.Viscosity = d.Viscosity
	}
	if g.Cp == 0 {
		g.Cp = d.Cp
	}
	if g.Prandtl == 0 {
		g.Prandtl = d.Prandtl
	}
	if g.Gamma == 0 {
		g.Gamma = d.Gamma
	}
	return g
}

type BartzInput struct {
	Diameter        float64 // local diameter, m
	Mach            float64 // local Mach number
	ChamberPressure float64 // Pa
	CStar           float64 // characteristic velocity, m/s
	ThroatDiameter  float64 // m
	// Throat radius of curvature, m. Zero or negative uses the throat diameter.
	CurvatureRadius float64
	Gas             GasProperties
}

// Sigma is the boundary layer property correction, held constant for
// preliminary sizing
const Sigma = 1.0

func (in BartzInput) Validate() error {
	switch {
	case !types.IsFinite(in.Diameter) || in.Diameter <= 0:
		return types.NewInputError("diameter", in.Diameter, "must be positive")
	case !types.IsFinite(in.ThroatDiameter) || in.ThroatDiameter <= 0:
		return types.NewInputError("throat_diameter", in.ThroatDiameter, "must be positive")
	case !types.IsFinite(in.ChamberPressure) || in.ChamberPressure <= 0:
		return types.NewInputError("pc", in.ChamberPressure, "must be positive")
	case !types.IsFinite(in.CStar) || in.CStar <= 0:
		return types.NewInputError("c_star", in.CStar, "must be positive")
	case !types.IsFinite(in.Mach) || in.Mach < 0:
		return types.NewInputError("mach", in.Mach, "must be non-negative")
	}
	g := in.Gas.withDefaults()
	if !types.IsFinite(g.Viscosity, g.Cp, g.Prandtl) || g.Viscosity < 0 || g.Cp < 0 || g.Prandtl < 0 {
		return types.NewInputError("gas", g, "gas properties must be positive")
	}
	return nil
}

/*
HeatTransferCoefficient evaluates the Bartz correlation, W/m^2 K

	hg = 0.026/Dt^0.2 * (mu^0.2 Cp / Pr^0.6) * (pc/c*)^0.8 * (Dt/Rc)^0.1 * (At/A)^0.9 * sigma

with (At/A)^0.9 = (Dt/D)^1.8.
*/
func HeatTransferCoefficient(in BartzInput) (hg float64, err error) {
	if err = in.Validate(); err != nil {
		return
	}
	var (
		g  = in.Gas.withDefaults()
		dt = in.ThroatDiameter
		rc = in.CurvatureRadius
	)
	if rc <= 0 {
		rc = dt
	}
	var (
		geom     = 0.026 / math.Pow(dt, 0.2)
		gas      = math.Pow(g.Viscosity, 0.2) * g.Cp / math.Pow(g.Prandtl, 0.6)
		massFlux = math.Pow(in.ChamberPressure/in.CStar, 0.8)
		curve    = math.Pow(dt/rc, 0.1)
		area     = math.Pow(dt/in.Diameter, 1.8)
	)
	hg = geom * gas * massFlux * curve * area * Sigma
	return
}

func (in BartzInput) String() string {
	return fmt.Sprintf("D=%g M=%g pc=%g c*=%g Dt=%g Rc=%g", in.Diameter, in.Mach,
		in.ChamberPressure, in.CStar, in.ThroatDiameter, in.CurvatureRadius)
}
