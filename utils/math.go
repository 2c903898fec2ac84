package utils

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	NODETOL = 1.e-12
)

func ConstArray(N int, val float64) (v []float64) {
	v = make([]float64, N)
	for i := range v {
		v[i] = val
	}
	return
}

// Linspace returns N evenly spaced values from xMin to xMax inclusive
func Linspace(xMin, xMax float64, N int) (x []float64) {
	switch {
	case N <= 0:
		return []float64{}
	case N == 1:
		return []float64{xMin}
	}
	x = floats.Span(make([]float64, N), xMin, xMax)
	return
}

func POW(x float64, pp int) (y float64) {
	var (
		p       = pp
		flipped bool
	)
	if pp > 8 || pp < -8 {
		return math.Pow(x, float64(pp))
	}
	if p < 0 {
		p = -pp
		flipped = true
	}
	switch p {
	case 0:
		y = 1
	case 1:
		y = x
	case 2:
		y = x * x
	case 3:
		y = x * x * x
	case 4:
		y = x * x
		y = y * y
	default:
		y = x * x
		y = y * y
		for i := 4; i < p; i++ {
			y *= x
		}
	}
	if flipped {
		y = 1. / y
	}
	return
}

// Degrees to radians
func Rad(deg float64) float64 {
	return deg * math.Pi / 180.
}

func Deg(rad float64) float64 {
	return rad * 180. / math.Pi
}
