package performance

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/oberth/propellants"
	"github.com/notargets/oberth/types"
	"github.com/notargets/oberth/utils"
)

const ScanPoints = 50

// Engine holds the chamber and exit pressures, Pa. The simplified Isp model
// below is shaped by the fuel only, the pressures are carried for reporting.
type Engine struct {
	ChamberPressure float64 `json:"pc"`
	ExitPressure    float64 `json:"pe"`
}

func NewEngine(pcO ...float64) (e Engine) {
	e = Engine{
		ChamberPressure: 100e5,
		ExitPressure:    1e5,
	}
	if len(pcO) > 0 {
		e.ChamberPressure = pcO[0]
	}
	if len(pcO) > 1 {
		e.ExitPressure = pcO[1]
	}
	return
}

// Curve is the bell shaped Isp(O/F) model for one propellant combination
type Curve struct {
	PeakOF, MaxIsp float64
}

var (
	hydrogenCurve = Curve{PeakOF: 5.0, MaxIsp: 450}
	keroseneCurve = Curve{PeakOF: 2.3, MaxIsp: 320}
	defaultCurve  = Curve{PeakOF: 2.5, MaxIsp: 300}
)

// CurveFor picks the curve from the fuel in the combination. Hydrogen takes
// precedence over kerosene.
func CurveFor(names []string) Curve {
	var hasRP1 bool
	for _, name := range names {
		p, ok := propellants.Lookup(name)
		if !ok {
			continue
		}
		switch p.ID {
		case "LH2":
			return hydrogenCurve
		case "RP-1":
			hasRP1 = true
		}
	}
	if hasRP1 {
		return keroseneCurve
	}
	return defaultCurve
}

// Isp at mixture ratio of. The rich side (of < peak) falls off faster.
func (c Curve) Isp(of float64) float64 {
	width := c.PeakOF
	if of < c.PeakOF {
		width *= 0.6
	}
	return c.MaxIsp * math.Exp(-utils.POW((of-c.PeakOF)/width, 2))
}

type Scan struct {
	OF          []float64 `json:"of"`
	Isp         []float64 `json:"isp"`
	Propellants []string  `json:"propellants"`
}

func (e Engine) Validate() error {
	if !types.IsFinite(e.ChamberPressure) || e.ChamberPressure <= 0 {
		return types.NewInputError("pc", e.ChamberPressure, "chamber pressure must be positive")
	}
	if !types.IsFinite(e.ExitPressure) || e.ExitPressure < 0 {
		return types.NewInputError("pe", e.ExitPressure, "exit pressure must be non-negative")
	}
	return nil
}

// ScanMixtureRatio evaluates Isp at ScanPoints mixture ratios spanning ofRange
func (e Engine) ScanMixtureRatio(props []string, ofRange [2]float64) (s Scan, err error) {
	if err = e.Validate(); err != nil {
		return
	}
	if len(props) == 0 {
		err = types.NewInputError("propellants", props, "at least one propellant is required")
		return
	}
	if !types.IsFinite(ofRange[0], ofRange[1]) || ofRange[0] < 0 || ofRange[1] < 0 {
		err = types.NewInputError("of_range", ofRange, "mixture ratios must be finite and non-negative")
		return
	}
	curve := CurveFor(props)
	s = Scan{
		OF:          utils.Linspace(ofRange[0], ofRange[1], ScanPoints),
		Isp:         make([]float64, ScanPoints),
		Propellants: append([]string(nil), props...),
	}
	for i, of := range s.OF {
		s.Isp[i] = curve.Isp(of)
	}
	return
}

// Peak returns the scanned mixture ratio with the highest Isp
func (s Scan) Peak() (of, isp float64) {
	if len(s.Isp) == 0 {
		return
	}
	i := floats.MaxIdx(s.Isp)
	return s.OF[i], s.Isp[i]
}

func (s Scan) Label() string {
	switch len(s.Propellants) {
	case 0:
		return ""
	case 1:
		return s.Propellants[0]
	}
	return s.Propellants[0] + "/" + s.Propellants[1]
}

func (s Scan) Print() {
	of, isp := s.Peak()
	fmt.Printf("[%s]\t\t= Propellants\n", s.Label())
	fmt.Printf("%8.3f\t\t= Peak O/F\n", of)
	fmt.Printf("%8.3f\t\t= Peak Isp (s)\n", isp)
	fmt.Printf("%8s\t%8s\n", "O/F", "Isp")
	for i := range s.OF {
		fmt.Printf("%8.3f\t%8.3f\n", s.OF[i], s.Isp[i])
	}
}
