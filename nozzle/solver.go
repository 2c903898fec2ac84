package nozzle

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/notargets/oberth/isentropic"
	"github.com/notargets/oberth/types"
	"github.com/notargets/oberth/utils"
)

// Result is produced fresh by every Solve call and owns all of its slices
type Result struct {
	Config  Config
	Contour Contour
	Mesh    Mesh
	Exit    ExitFlow
}

// ExitFlow describes the ideal exit plane flow. Gamma only enters here, it
// does not change the wall geometry. Resolved is false, and the other fields
// zero, when the exit Mach number could not be represented.
type ExitFlow struct {
	Mach          float64 `json:"mach"`
	PressureRatio float64 `json:"pressure_ratio"`
	// Prandtl-Meyer angle at the exit Mach number, degrees
	PrandtlMeyer  float64 `json:"prandtl_meyer"`
	Resolved      bool    `json:"resolved"`
}

func Solve(cfg Config) (r Result, err error) {
	if err = cfg.Validate(); err != nil {
		return
	}
	cfg.Geometry = cfg.Geometry.withDefaults()
	r.Config = cfg
	if r.Contour, err = GenerateContour(cfg.ExpansionRatio, cfg.Geometry); err != nil {
		return Result{}, err
	}
	if r.Mesh, err = BuildMesh(r.Contour, cfg.Lines); err != nil {
		return Result{}, err
	}
	var exitErr error
	if r.Exit, exitErr = exitFlow(cfg.ExpansionRatio, cfg.Gamma); exitErr != nil {
		r.Exit = ExitFlow{}
		log.WithError(exitErr).WithFields(log.Fields{
			"expansion_ratio": cfg.ExpansionRatio,
			"gamma":           cfg.Gamma,
		}).Debug("exit flow unresolved")
	}
	log.WithFields(log.Fields{
		"expansion_ratio": cfg.ExpansionRatio,
		"gamma":           cfg.Gamma,
		"lines":           cfg.Lines,
		"samples":         r.Contour.Len(),
		"mesh_lines":      len(r.Mesh),
		"length":          r.Contour.Length,
	}).Debug("nozzle solved")
	return
}

func exitFlow(expansionRatio, gamma float64) (ef ExitFlow, err error) {
	var nu float64
	if ef.Mach, err = isentropic.MachFromAreaRatio(expansionRatio, gamma, isentropic.Supersonic); err != nil {
		return
	}
	if ef.PressureRatio, err = isentropic.PressureRatio(ef.Mach, gamma); err != nil {
		return
	}
	if nu, err = isentropic.PrandtlMeyer(ef.Mach, gamma); err != nil {
		return
	}
	ef.PrandtlMeyer = utils.Deg(nu)
	ef.Resolved = true
	return
}

func (r Result) Print() {
	r.Config.Print()
	fmt.Printf("%8.5f\t\t= Exit Radius\n", r.Contour.ExitRadius)
	fmt.Printf("%8.5f\t\t= Length\n", r.Contour.Length)
	fmt.Printf("%8.5f\t\t= Exit Mach\n", r.Exit.Mach)
	fmt.Printf("%8.5f\t\t= Exit Pressure Ratio p/p0\n", r.Exit.PressureRatio)
	fmt.Printf("%8.5f\t\t= Exit Prandtl-Meyer Angle (deg)\n", r.Exit.PrandtlMeyer)
	fmt.Printf("[%d]\t\t\t= Mesh Lines\n", len(r.Mesh))
}

// Wire is the boundary representation of a solve
type Wire struct {
	Contour    []types.Point   `json:"contour"`
	Mesh       []types.Segment `json:"mesh"`
	ExitRadius float64         `json:"exit_radius"`
	Length     float64         `json:"length"`
	Exit       ExitFlow        `json:"exit"`
}

func (r Result) Wire() Wire {
	return Wire{
		Contour:    r.Contour.Points,
		Mesh:       r.Mesh,
		ExitRadius: r.Contour.ExitRadius,
		Length:     r.Contour.Length,
		Exit:       r.Exit,
	}
}
