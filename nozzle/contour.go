package nozzle

import (
	"math"

	"github.com/notargets/oberth/types"
	"github.com/notargets/oberth/utils"
)

const (
	// Reference conical nozzle half angle, degrees
	ConeHalfAngle = 15.
	// Bell length as a fraction of the reference cone length
	BellFraction = 0.8
)

// Contour is the nozzle wall from the throat (x = 0) to the exit plane
type Contour struct {
	Points       []types.Point
	ThroatRadius float64
	ExitRadius   float64
	Length       float64
}

/*
GenerateContour approximates a Rao bell with a parabola through the throat that
reaches the exit radius with zero slope. The length is 80% of a 15 degree cone
with the same exit radius. The exit radius follows from the expansion ratio
directly, Re = sqrt(Ae/At) * Rt.
*/
func GenerateContour(expansionRatio float64, geometryO ...Geometry) (c Contour, err error) {
	var (
		g = DefaultGeometry()
	)
	if len(geometryO) != 0 {
		g = geometryO[0].withDefaults()
	}
	if err = validateExpansionRatio(expansionRatio); err != nil {
		return
	}
	if err = g.Validate(); err != nil {
		return
	}
	var (
		rt      = g.ThroatRadius
		re      = math.Sqrt(expansionRatio) * rt
		coneLen = (re - rt) / math.Tan(utils.Rad(ConeHalfAngle))
		length  = BellFraction * coneLen
		X       = utils.Linspace(0, length, g.Samples)
	)
	var Y []float64
	if length > 0 {
		A := (rt - re) / (length * length)
		Y = make([]float64, len(X))
		for i, x := range X {
			Y[i] = A*utils.POW(x-length, 2) + re
		}
	} else {
		// No expansion, straight duct
		Y = utils.ConstArray(len(X), rt)
	}
	c = Contour{
		Points:       make([]types.Point, len(X)),
		ThroatRadius: rt,
		ExitRadius:   re,
		Length:       length,
	}
	for i := range X {
		c.Points[i] = types.NewPoint(X[i], Y[i])
	}
	return
}

func (c Contour) Len() int { return len(c.Points) }

// Exit returns the last wall sample
func (c Contour) Exit() types.Point { return c.Points[len(c.Points)-1] }

// Slope of the analytic profile at x
func (c Contour) Slope(x float64) float64 {
	if c.Length <= 0 {
		return 0
	}
	A := (c.ThroatRadius - c.ExitRadius) / (c.Length * c.Length)
	return 2 * A * (x - c.Length)
}

// AreaRatio is the local to throat area ratio at sample i
func (c Contour) AreaRatio(i int) float64 {
	return utils.POW(c.Points[i].Y()/c.ThroatRadius, 2)
}

// XY returns copies of the axial and radial coordinates
func (c Contour) XY() (X, Y []float64) {
	return types.SplitXY(c.Points)
}
