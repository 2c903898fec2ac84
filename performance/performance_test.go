package performance

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/oberth/types"
)

func TestEngine(t *testing.T) {
	e := NewEngine()
	assert.Equal(t, 100e5, e.ChamberPressure)
	assert.Equal(t, 1e5, e.ExitPressure)
	e = NewEngine(50e5, 2e4)
	assert.Equal(t, 50e5, e.ChamberPressure)
	assert.Equal(t, 2e4, e.ExitPressure)
}

func TestScanMixtureRatio(t *testing.T) {
	e := NewEngine()
	{
		props := []string{"LOX", "RP-1"}
		s, err := e.ScanMixtureRatio(props, [2]float64{2, 3})
		require.NoError(t, err)
		assert.Equal(t, props, s.Propellants)
		assert.Equal(t, ScanPoints, len(s.OF))
		assert.Equal(t, ScanPoints, len(s.Isp))
		_, isp := s.Peak()
		assert.Greater(t, isp, 250.)
		assert.LessOrEqual(t, isp, 320.)
		assert.Equal(t, "LOX/RP-1", s.Label())
		// The scan owns its propellant list
		props[0] = "N2O4"
		assert.Equal(t, "LOX", s.Propellants[0])
	}
	{ // Kerosene peak location
		s, err := e.ScanMixtureRatio([]string{"LOX", "RP-1"}, [2]float64{1, 4})
		require.NoError(t, err)
		of, _ := s.Peak()
		assert.True(t, of > 2.0 && of < 2.6, "peak O/F = %v", of)
	}
	{ // Hydrogen peak location
		s, err := e.ScanMixtureRatio([]string{"LOX", "LH2"}, [2]float64{3, 7})
		require.NoError(t, err)
		of, isp := s.Peak()
		assert.True(t, of > 4.5 && of < 5.5, "peak O/F = %v", of)
		assert.Greater(t, isp, 400.)
	}
	{ // Names resolve through the propellant table
		assert.Equal(t, hydrogenCurve, CurveFor([]string{"Oxygen", "Liquid Hydrogen"}))
		assert.Equal(t, keroseneCurve, CurveFor([]string{"oxygen", "kerosene"}))
		assert.Equal(t, hydrogenCurve, CurveFor([]string{"RP-1", "LH2"}))
		assert.Equal(t, defaultCurve, CurveFor([]string{"LOX", "LCH4"}))
		assert.Equal(t, defaultCurve, CurveFor([]string{"N2O4", "UDMH"}))
	}
	{ // The curve peaks at its design point and is asymmetric
		c := keroseneCurve
		assert.Equal(t, 320., c.Isp(2.3))
		assert.Less(t, c.Isp(1.3), c.Isp(3.3))
	}
}

func TestScanValidation(t *testing.T) {
	_, err := Engine{ChamberPressure: 0, ExitPressure: 1}.ScanMixtureRatio([]string{"LOX"}, [2]float64{1, 2})
	assert.True(t, errors.Is(err, types.ErrInvalidInput))
	_, err = NewEngine().ScanMixtureRatio(nil, [2]float64{1, 2})
	assert.True(t, errors.Is(err, types.ErrInvalidInput))
	_, err = NewEngine().ScanMixtureRatio([]string{"LOX"}, [2]float64{-1, 2})
	assert.True(t, errors.Is(err, types.ErrInvalidInput))
	var s Scan
	of, isp := s.Peak()
	assert.Equal(t, 0., of)
	assert.Equal(t, 0., isp)
}
