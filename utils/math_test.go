package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMath(t *testing.T) {
	{
		assert.Equal(t, []float64{2, 2, 2}, ConstArray(3, 2))
		assert.Equal(t, 0, len(ConstArray(0, 2)))
	}
	{
		x := Linspace(0, 1, 5)
		assert.Equal(t, 5, len(x))
		assert.InDeltaSlice(t, []float64{0, 0.25, 0.5, 0.75, 1}, x, NODETOL)
		assert.Equal(t, []float64{3}, Linspace(3, 4, 1))
		assert.Equal(t, 0, len(Linspace(3, 4, 0)))
		// A zero width span is a constant array
		assert.Equal(t, []float64{0, 0, 0}, Linspace(0, 0, 3))
	}
	{
		for _, p := range []int{-10, -3, -1, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9} {
			assert.InDelta(t, math.Pow(1.3, float64(p)), POW(1.3, p), 1.e-10, "p = %d", p)
		}
	}
	{
		assert.InDelta(t, math.Pi/12, Rad(15), NODETOL)
		assert.InDelta(t, 15., Deg(Rad(15)), NODETOL)
	}
}
