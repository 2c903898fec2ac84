package InputParameters

import (
	"fmt"
	"os"

	"github.com/ghodss/yaml"

	"github.com/notargets/oberth/cooling"
	"github.com/notargets/oberth/mission"
	"github.com/notargets/oberth/nozzle"
	"github.com/notargets/oberth/performance"
)

// DesignCase is read from a YAML input file describing one engine design cycle
type DesignCase struct {
	Title           string                `json:"Title"`
	ChamberPressure float64               `json:"ChamberPressure"` // Pa
	ExitPressure    float64               `json:"ExitPressure"`    // Pa
	Propellants     []string              `json:"Propellants"`
	OFRange         [2]float64            `json:"OFRange"`
	ExpansionRatio  float64               `json:"ExpansionRatio"`
	Gamma           float64               `json:"Gamma"`
	Lines           int                   `json:"Lines"`
	ThroatDiameter  float64               `json:"ThroatDiameter"` // m
	CStar           float64               `json:"CStar"`          // m/s
	Gas             cooling.GasProperties `json:"Gas"`
	Stages          []mission.Stage       `json:"Stages"`
}

const ExampleFile = `
########################################
Title: "LOX/RP-1 booster"
ChamberPressure: 10000000
ExitPressure: 100000
Propellants: [LOX, RP-1]
OFRange: [2.0, 2.6]
ExpansionRatio: 25
Gamma: 1.2
Lines: 20
ThroatDiameter: 0.1
CStar: 1700
Gas:
  viscosity: 0.00008
  cp: 2500
  prandtl: 0.8
Stages:
  - {isp: 300, wet_mass: 100000, dry_mass: 8000}
  - {isp: 350, wet_mass: 20000, dry_mass: 2000}
########################################
`

// NewDesignCase returns a case with the reference values, fields present in a
// parsed file replace them
func NewDesignCase() (dc *DesignCase) {
	nc := nozzle.DefaultConfig()
	eng := performance.NewEngine()
	dc = &DesignCase{
		Title:           "Design Case",
		ChamberPressure: eng.ChamberPressure,
		ExitPressure:    eng.ExitPressure,
		Propellants:     []string{"LOX", "RP-1"},
		OFRange:         [2]float64{1.5, 4.0},
		ExpansionRatio:  nc.ExpansionRatio,
		Gamma:           nc.Gamma,
		Lines:           nc.Lines,
		ThroatDiameter:  0.1,
		CStar:           1700,
		Gas:             cooling.DefaultGas(),
	}
	return
}

func (dc *DesignCase) Parse(data []byte) error {
	return yaml.Unmarshal(data, dc)
}

func ReadFile(path string) (dc *DesignCase, err error) {
	var data []byte
	if data, err = os.ReadFile(path); err != nil {
		return
	}
	dc = NewDesignCase()
	if err = dc.Parse(data); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return
}

func (dc *DesignCase) NozzleConfig() (cfg nozzle.Config) {
	cfg = nozzle.DefaultConfig()
	cfg.ExpansionRatio = dc.ExpansionRatio
	cfg.Gamma = dc.Gamma
	cfg.Lines = dc.Lines
	return
}

func (dc *DesignCase) Engine() performance.Engine {
	return performance.NewEngine(dc.ChamberPressure, dc.ExitPressure)
}

func (dc *DesignCase) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", dc.Title)
	fmt.Printf("%8.5g\t\t= Chamber Pressure (Pa)\n", dc.ChamberPressure)
	fmt.Printf("%8.5g\t\t= Exit Pressure (Pa)\n", dc.ExitPressure)
	fmt.Printf("%v\t\t= Propellants\n", dc.Propellants)
	fmt.Printf("%v\t\t= O/F Range\n", dc.OFRange)
	fmt.Printf("%8.5f\t\t= Expansion Ratio\n", dc.ExpansionRatio)
	fmt.Printf("%8.5f\t\t= Gamma\n", dc.Gamma)
	fmt.Printf("[%d]\t\t\t= Characteristic Lines\n", dc.Lines)
	fmt.Printf("%8.5f\t\t= Throat Diameter (m)\n", dc.ThroatDiameter)
	fmt.Printf("%8.2f\t\t= C* (m/s)\n", dc.CStar)
	for i, s := range dc.Stages {
		fmt.Printf("Stages[%d] = %+v\n", i, s)
	}
}
