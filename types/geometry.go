package types

import "fmt"

// Point is an (x, y) coordinate pair. It serializes as a two element array.
type Point [2]float64

func NewPoint(x, y float64) Point {
	return Point{x, y}
}

func (p Point) X() float64 { return p[0] }

func (p Point) Y() float64 { return p[1] }

func (p Point) String() string {
	return fmt.Sprintf("(%8.5f, %8.5f)", p[0], p[1])
}

// Segment is a straight line from Segment[0] to Segment[1]
type Segment [2]Point

func NewSegment(start, end Point) Segment {
	return Segment{start, end}
}

func (s Segment) Start() Point { return s[0] }

func (s Segment) End() Point { return s[1] }

// SplitXY returns the coordinates of pts as two parallel slices
func SplitXY(pts []Point) (X, Y []float64) {
	X = make([]float64, len(pts))
	Y = make([]float64, len(pts))
	for i, p := range pts {
		X[i], Y[i] = p[0], p[1]
	}
	return
}
