package graphics

import (
	"image/color"
	"math"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"

	"github.com/notargets/oberth/nozzle"
	"github.com/notargets/oberth/performance"
	"github.com/notargets/oberth/types"
)

// Lines holds 2D line segments by color, packed x1, y1, x2, y2, ...
type Lines map[color.RGBA][]float32

func (l Lines) AddLine(x1, y1, x2, y2 float64, col color.RGBA) {
	l[col] = append(l[col],
		float32(x1), float32(y1),
		float32(x2), float32(y2),
	)
}

// AddPolyline joins consecutive points, mirrored about the axis when asked
func (l Lines) AddPolyline(pts []types.Point, col color.RGBA, mirror bool) {
	for i := 1; i < len(pts); i++ {
		p0, p1 := pts[i-1], pts[i]
		l.AddLine(p0.X(), p0.Y(), p1.X(), p1.Y(), col)
		if mirror {
			l.AddLine(p0.X(), -p0.Y(), p1.X(), -p1.Y(), col)
		}
	}
}

// NozzleLines draws both walls in white and the mesh fan in blue
func NozzleLines(r nozzle.Result) (l Lines) {
	l = make(Lines)
	l.AddPolyline(r.Contour.Points, utils2.WHITE, true)
	for _, seg := range r.Mesh {
		s, e := seg.Start(), seg.End()
		l.AddLine(s.X(), s.Y(), e.X(), e.Y(), utils2.BLUE)
		l.AddLine(s.X(), -s.Y(), e.X(), -e.Y(), utils2.BLUE)
	}
	// axis
	l.AddLine(0, 0, r.Contour.Length, 0, utils2.RED)
	return
}

func IspLines(s performance.Scan) (l Lines) {
	l = make(Lines)
	pts := make([]types.Point, len(s.OF))
	for i := range s.OF {
		pts[i] = types.NewPoint(s.OF[i], s.Isp[i])
	}
	l.AddPolyline(pts, utils2.RED, false)
	return
}

// Bounds of all lines, padded by scale about the center
func (l Lines) Bounds(scale float32) (xMin, xMax, yMin, yMax float32) {
	xMin, xMax = float32(math.MaxFloat32), -float32(math.MaxFloat32)
	yMin, yMax = float32(math.MaxFloat32), -float32(math.MaxFloat32)
	for _, line := range l {
		for i := 0; i+1 < len(line); i += 2 {
			x, y := line[i], line[i+1]
			xMin, xMax = min(xMin, x), max(xMax, x)
			yMin, yMax = min(yMin, y), max(yMax, y)
		}
	}
	if xMin > xMax {
		return -1, 1, -1, 1
	}
	var (
		xc, yc = (xMin + xMax) / 2, (yMin + yMax) / 2
		xh, yh = max((xMax-xMin)/2, 0.5), max((yMax-yMin)/2, 0.5)
	)
	return xc - scale*xh, xc + scale*xh, yc - scale*yh, yc + scale*yh
}

// Plot opens an interactive chart window with the lines
func (l Lines) Plot(width, height int) (ch *chart2d.Chart2D) {
	xMin, xMax, yMin, yMax := l.Bounds(1.1)
	ch = chart2d.NewChart2D(xMin, xMax, yMin, yMax,
		width, height, utils2.WHITE, utils2.BLACK)
	for col, line := range l {
		ch.AddLine(line, col)
	}
	return
}

func PlotNozzle(r nozzle.Result) *chart2d.Chart2D {
	return NozzleLines(r).Plot(1920, 1080)
}

func PlotIsp(s performance.Scan) *chart2d.Chart2D {
	return IspLines(s).Plot(1024, 1024)
}
