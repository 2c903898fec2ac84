package cooling

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/oberth/nozzle"
	"github.com/notargets/oberth/types"
)

func throatInput() BartzInput {
	return BartzInput{
		Diameter:        0.1,
		Mach:            1,
		ChamberPressure: 100e5,
		CStar:           1700,
		ThroatDiameter:  0.1,
		CurvatureRadius: 0.05,
		Gas:             GasProperties{Viscosity: 8e-5, Cp: 2500, Prandtl: 0.8},
	}
}

func TestHeatTransferCoefficient(t *testing.T) {
	in := throatInput()
	hg, err := HeatTransferCoefficient(in)
	require.NoError(t, err)
	assert.Greater(t, hg, 0.)
	assert.InEpsilon(t, 1.983e4, hg, 0.02)

	{ // Downstream of the throat the coefficient drops as (Dt/D)^1.8
		down := in
		down.Diameter = 0.2
		hgD, err := HeatTransferCoefficient(down)
		require.NoError(t, err)
		assert.InDelta(t, math.Pow(0.5, 1.8), hgD/hg, 1.e-12)
	}
	{ // Mass flux scaling
		hot := in
		hot.ChamberPressure *= 2
		hgP, err := HeatTransferCoefficient(hot)
		require.NoError(t, err)
		assert.InDelta(t, math.Pow(2, 0.8), hgP/hg, 1.e-12)
	}
	{ // Missing curvature falls back to the throat diameter
		flat := in
		flat.CurvatureRadius = 0
		hg0, err := HeatTransferCoefficient(flat)
		require.NoError(t, err)
		flat.CurvatureRadius = flat.ThroatDiameter
		hgDt, err := HeatTransferCoefficient(flat)
		require.NoError(t, err)
		assert.Equal(t, hgDt, hg0)
		assert.InDelta(t, math.Pow(2, -0.1), hg0/hg, 1.e-12)
	}
	{ // Zero valued gas properties use the defaults
		def := in
		def.Gas = GasProperties{}
		hgDef, err := HeatTransferCoefficient(def)
		require.NoError(t, err)
		assert.Equal(t, hg, hgDef)
	}
}

func TestHeatTransferValidation(t *testing.T) {
	cases := []struct {
		mod   func(*BartzInput)
		field string
	}{
		{func(b *BartzInput) { b.Diameter = 0 }, "diameter"},
		{func(b *BartzInput) { b.ThroatDiameter = -1 }, "throat_diameter"},
		{func(b *BartzInput) { b.ChamberPressure = math.NaN() }, "pc"},
		{func(b *BartzInput) { b.CStar = 0 }, "c_star"},
		{func(b *BartzInput) { b.Mach = -1 }, "mach"},
		{func(b *BartzInput) { b.Gas.Prandtl = -0.8 }, "gas"},
	}
	for _, c := range cases {
		in := throatInput()
		c.mod(&in)
		_, err := HeatTransferCoefficient(in)
		require.Error(t, err, in.String())
		var ie *types.InputError
		require.True(t, errors.As(err, &ie))
		assert.Equal(t, c.field, ie.Field)
	}
}

func TestProfile(t *testing.T) {
	c, err := nozzle.GenerateContour(25)
	require.NoError(t, err)
	st, err := Profile(c, 0.1, 100e5, 1700, DefaultGas())
	require.NoError(t, err)
	require.Equal(t, c.Len(), len(st))
	assert.InDelta(t, 1., st[0].Mach, 1.e-6)
	assert.InDelta(t, 0.1, st[0].Diameter, 1.e-9)
	assert.InDelta(t, 0.5, st[len(st)-1].Diameter, 1.e-9)
	assert.InDelta(t, c.Length*0.05, st[len(st)-1].X, 1.e-9)
	for i := 1; i < len(st); i++ {
		// Heat flux peaks at the throat and decays with expansion
		assert.LessOrEqual(t, st[i].Hg, st[i-1].Hg)
		assert.GreaterOrEqual(t, st[i].Mach, st[i-1].Mach)
	}
	assert.Greater(t, st[len(st)-1].Mach, 3.)

	_, err = Profile(nozzle.Contour{}, 0.1, 100e5, 1700, DefaultGas())
	assert.Error(t, err)
	_, err = Profile(c, 0.1, 100e5, 0, DefaultGas())
	assert.True(t, errors.Is(err, types.ErrInvalidInput))
}
