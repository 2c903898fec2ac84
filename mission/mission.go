package mission

import (
	"fmt"
	"math"

	"github.com/notargets/oberth/types"
)

const (
	G0      = 9.80665  // standard gravity, m/s^2
	MuEarth = 3.986e14 // m^3/s^2
)

// Stage is one rocket stage, masses in kg and Isp in seconds
type Stage struct {
	Isp     float64 `json:"isp"`
	WetMass float64 `json:"wet_mass"`
	DryMass float64 `json:"dry_mass"`
}

// DeltaV from the Tsiolkovsky rocket equation. A stage with a non-positive
// mass contributes nothing.
func (s Stage) DeltaV() float64 {
	if s.DryMass <= 0 || s.WetMass <= 0 {
		return 0
	}
	return s.Isp * G0 * math.Log(s.WetMass/s.DryMass)
}

type Vehicle []Stage

func (v Vehicle) DeltaV() (dv float64) {
	for _, s := range v {
		dv += s.DeltaV()
	}
	return
}

func (v Vehicle) Print() {
	for i, s := range v {
		fmt.Printf("Stage %d: Isp %6.1f s, wet %10.1f kg, dry %10.1f kg, dV %9.1f m/s\n",
			i+1, s.Isp, s.WetMass, s.DryMass, s.DeltaV())
	}
	fmt.Printf("%9.1f\t\t= Total dV (m/s)\n", v.DeltaV())
}

type Transfer struct {
	Departure float64 `json:"departure"`
	Arrival   float64 `json:"arrival"`
	Total     float64 `json:"total"`
}

// HohmannTransfer between circular orbits of radius r1 and r2, meters. The
// gravitational parameter defaults to Earth's.
func HohmannTransfer(r1, r2 float64, muO ...float64) (tr Transfer, err error) {
	var (
		mu = MuEarth
	)
	if len(muO) > 0 {
		mu = muO[0]
	}
	switch {
	case !types.IsFinite(r1) || r1 <= 0:
		err = types.NewInputError("r1", r1, "orbit radius must be positive")
		return
	case !types.IsFinite(r2) || r2 <= 0:
		err = types.NewInputError("r2", r2, "orbit radius must be positive")
		return
	case !types.IsFinite(mu) || mu <= 0:
		err = types.NewInputError("mu", mu, "gravitational parameter must be positive")
		return
	}
	var (
		a      = (r1 + r2) / 2
		vPeri  = math.Sqrt(mu * (2/r1 - 1/a))
		vApo   = math.Sqrt(mu * (2/r2 - 1/a))
		vCirc1 = math.Sqrt(mu / r1)
		vCirc2 = math.Sqrt(mu / r2)
	)
	tr.Departure = math.Abs(vPeri - vCirc1)
	tr.Arrival = math.Abs(vCirc2 - vApo)
	tr.Total = tr.Departure + tr.Arrival
	return
}
