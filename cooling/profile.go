package cooling

import (
	"fmt"

	"github.com/notargets/oberth/isentropic"
	"github.com/notargets/oberth/nozzle"
)

// Station is the wall heat transfer at one contour sample
type Station struct {
	X        float64 `json:"x"` // m
	Diameter float64 `json:"diameter"`
	Mach     float64 `json:"mach"`
	Hg       float64 `json:"hg"`
}

/*
Profile evaluates the Bartz coefficient along a divergent nozzle contour. The
contour is scaled so that its throat has diameter throatDiameter, and the local
Mach number is the supersonic root of the area relation.
*/
func Profile(c nozzle.Contour, throatDiameter, pc, cStar float64, gas GasProperties) (stations []Station, err error) {
	if c.Len() == 0 {
		return nil, fmt.Errorf("cooling profile: empty contour")
	}
	var (
		g     = gas.withDefaults()
		scale = throatDiameter / (2 * c.ThroatRadius)
	)
	stations = make([]Station, c.Len())
	for i, p := range c.Points {
		var (
			ratio = c.AreaRatio(i)
			mach  = 1.
		)
		if ratio > 1 {
			if mach, err = isentropic.MachFromAreaRatio(ratio, g.Gamma, isentropic.Supersonic); err != nil {
				return nil, fmt.Errorf("cooling profile station %d: %w", i, err)
			}
		}
		st := Station{
			X:        p.X() * scale,
			Diameter: 2 * p.Y() * scale,
			Mach:     mach,
		}
		if st.Hg, err = HeatTransferCoefficient(BartzInput{
			Diameter:        st.Diameter,
			Mach:            mach,
			ChamberPressure: pc,
			CStar:           cStar,
			ThroatDiameter:  throatDiameter,
			CurvatureRadius: throatDiameter / 2,
			Gas:             g,
		}); err != nil {
			return nil, fmt.Errorf("cooling profile station %d: %w", i, err)
		}
		stations[i] = st
	}
	return
}
