package graphics

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/notargets/oberth/nozzle"
	"github.com/notargets/oberth/performance"
	"github.com/notargets/oberth/types"
)

var (
	wallColor = color.RGBA{A: 255}
	meshColor = color.NRGBA{B: 255, A: 77}
	ispColor  = color.RGBA{R: 255, A: 255}
)

func xys(pts []types.Point, sign float64) (xy plotter.XYs) {
	xy = make(plotter.XYs, len(pts))
	for i, p := range pts {
		xy[i].X = p.X()
		xy[i].Y = sign * p.Y()
	}
	return
}

// NozzlePlot draws the wall, its mirror image and the mesh fan
func NozzlePlot(r nozzle.Result) (p *plot.Plot, err error) {
	p = plot.New()
	p.Title.Text = fmt.Sprintf("Method of Characteristics Mesh (Gamma=%g)", r.Config.Gamma)
	p.X.Label.Text = "Axial Distance (x)"
	p.Y.Label.Text = "Radial Distance (y)"
	p.Add(plotter.NewGrid())
	for _, seg := range r.Mesh {
		for _, sign := range []float64{1, -1} {
			var ln *plotter.Line
			if ln, err = plotter.NewLine(xys(seg[:], sign)); err != nil {
				return nil, err
			}
			ln.Color = meshColor
			p.Add(ln)
		}
	}
	for i, sign := range []float64{1, -1} {
		var wall *plotter.Line
		if wall, err = plotter.NewLine(xys(r.Contour.Points, sign)); err != nil {
			return nil, err
		}
		wall.Color = wallColor
		wall.Width = vg.Points(3)
		p.Add(wall)
		if i == 0 {
			p.Legend.Add("Nozzle Wall", wall)
		}
	}
	return
}

func IspPlot(s performance.Scan) (p *plot.Plot, err error) {
	p = plot.New()
	p.Title.Text = fmt.Sprintf("Specific Impulse vs O/F Ratio (%s)", s.Label())
	p.X.Label.Text = "Oxidizer-to-Fuel Ratio (O/F)"
	p.Y.Label.Text = "Specific Impulse (s)"
	p.Add(plotter.NewGrid())
	pts := make(plotter.XYs, len(s.OF))
	for i := range s.OF {
		pts[i].X, pts[i].Y = s.OF[i], s.Isp[i]
	}
	var ln *plotter.Line
	if ln, err = plotter.NewLine(pts); err != nil {
		return nil, err
	}
	ln.Color = ispColor
	ln.Width = vg.Points(2)
	p.Add(ln)
	p.Legend.Add(s.Label(), ln)
	return
}

// SaveNozzlePNG writes the nozzle drawing, the format follows the file extension
func SaveNozzlePNG(r nozzle.Result, path string) (err error) {
	var p *plot.Plot
	if p, err = NozzlePlot(r); err != nil {
		return
	}
	return p.Save(10*vg.Inch, 6*vg.Inch, path)
}

func SaveIspPNG(s performance.Scan, path string) (err error) {
	var p *plot.Plot
	if p, err = IspPlot(s); err != nil {
		return
	}
	return p.Save(10*vg.Inch, 6*vg.Inch, path)
}
