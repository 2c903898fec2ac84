package nozzle

import (
	"encoding/json"
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/oberth/types"
)

func TestSolve(t *testing.T) {
	{ // Reference scenario
		r, err := Solve(DefaultConfig())
		require.NoError(t, err)
		r.Print()
		assert.Equal(t, 5., r.Contour.ExitRadius)
		assert.InDelta(t, 5., r.Contour.Exit().Y(), 1.e-9)
		assert.Equal(t, 20, len(r.Mesh))
		assert.LessOrEqual(t, len(r.Mesh), 100)
		assert.Equal(t, r.Contour.Exit(), r.Mesh[len(r.Mesh)-1].End())
		assert.Greater(t, r.Exit.Mach, 3.)
		assert.Less(t, r.Exit.PressureRatio, 1.)
		assert.Greater(t, r.Exit.PrandtlMeyer, 0.)
		assert.True(t, r.Exit.Resolved)
	}
	{ // Line count beyond the contour resolution
		cfg := DefaultConfig()
		cfg.Lines = 200
		r, err := Solve(cfg)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(r.Mesh), 100)
		seen := make(map[types.Point]bool)
		for _, p := range r.Mesh.EndPoints() {
			assert.False(t, seen[p])
			seen[p] = true
		}
	}
	{ // No expansion
		cfg := DefaultConfig()
		cfg.ExpansionRatio = 1
		r, err := Solve(cfg)
		require.NoError(t, err)
		for _, p := range r.Contour.Points {
			assert.Equal(t, 1., p.Y())
		}
		assert.Equal(t, 1., r.Exit.Mach)
	}
	{ // Gamma labels the flow but does not move the wall
		cfg := DefaultConfig()
		r12, err := Solve(cfg)
		require.NoError(t, err)
		cfg.Gamma = 1.4
		r14, err := Solve(cfg)
		require.NoError(t, err)
		assert.Equal(t, r12.Contour.Points, r14.Contour.Points)
		assert.Equal(t, r12.Mesh, r14.Mesh)
		assert.NotEqual(t, r12.Exit.Mach, r14.Exit.Mach)
	}
}

func TestSolveExtremeGamma(t *testing.T) {
	cases := []struct {
		expansionRatio, gamma float64
	}{
		{25, 10},
		{25, 100},
		{1.e7, 3},
	}
	for _, cc := range cases {
		cfg := DefaultConfig()
		cfg.ExpansionRatio, cfg.Gamma = cc.expansionRatio, cc.gamma
		r, err := Solve(cfg)
		require.NoError(t, err, "er = %v, gamma = %v", cc.expansionRatio, cc.gamma)
		assert.InDelta(t, math.Sqrt(cc.expansionRatio), r.Contour.ExitRadius, 1.e-9*r.Contour.ExitRadius)
		assert.Equal(t, DefaultLines, len(r.Mesh))
		assert.True(t, r.Exit.Resolved)
		assert.Greater(t, r.Exit.Mach, 1.e6)
	}
	{ // Exit Mach beyond float64 keeps the geometry
		cfg := DefaultConfig()
		cfg.Gamma = 1.e6
		r, err := Solve(cfg)
		require.NoError(t, err)
		assert.Equal(t, DefaultSamples, r.Contour.Len())
		assert.Equal(t, DefaultLines, len(r.Mesh))
		assert.False(t, r.Exit.Resolved)
		assert.Equal(t, 0., r.Exit.Mach)
	}
	{
		cfg := DefaultConfig()
		cfg.Samples = MaxSamples
		r, err := Solve(cfg)
		require.NoError(t, err)
		assert.Equal(t, MaxSamples, r.Contour.Len())
	}
}

func TestSolveValidation(t *testing.T) {
	cases := []struct {
		mod   func(*Config)
		field string
	}{
		{func(c *Config) { c.Gamma = 1 }, "gamma"},
		{func(c *Config) { c.Gamma = 0.5 }, "gamma"},
		{func(c *Config) { c.Gamma = math.NaN() }, "gamma"},
		{func(c *Config) { c.ExpansionRatio = 0.5 }, "expansion_ratio"},
		{func(c *Config) { c.Lines = 0 }, "lines"},
		{func(c *Config) { c.Lines = -3 }, "lines"},
		{func(c *Config) { c.ThroatRadius = -2 }, "throat_radius"},
		{func(c *Config) { c.Samples = 1 }, "samples"},
		{func(c *Config) { c.Samples = MaxSamples + 1 }, "samples"},
		{func(c *Config) { c.Samples = 2000000000 }, "samples"},
	}
	for _, cc := range cases {
		cfg := DefaultConfig()
		cc.mod(&cfg)
		r, err := Solve(cfg)
		require.Error(t, err)
		assert.True(t, errors.Is(err, types.ErrInvalidInput))
		var ie *types.InputError
		require.True(t, errors.As(err, &ie))
		assert.Equal(t, cc.field, ie.Field)
		assert.Nil(t, r.Contour.Points)
		assert.Nil(t, r.Mesh)
	}
}

func TestSolveConcurrent(t *testing.T) {
	var (
		wg      sync.WaitGroup
		n       = 16
		results = make([]Result, n)
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			cfg := DefaultConfig()
			cfg.Lines = 5 + i
			r, err := Solve(cfg)
			assert.NoError(t, err)
			results[i] = r
		}(i)
	}
	wg.Wait()
	for i, r := range results {
		assert.Equal(t, 5+i, r.Config.Lines)
		assert.Equal(t, StationIndices(DefaultSamples, 5+i), indicesOf(r))
	}
	// Results do not share storage
	results[0].Contour.Points[0] = types.Point{-1, -1}
	assert.Equal(t, 1., results[1].Contour.Points[0].Y())
}

func indicesOf(r Result) (idx []int) {
	for _, p := range r.Mesh.EndPoints() {
		for i, cp := range r.Contour.Points {
			if cp == p {
				idx = append(idx, i)
				break
			}
		}
	}
	return
}

func TestWire(t *testing.T) {
	var cfg Config
	require.NoError(t, json.Unmarshal([]byte(`{"expansion_ratio": 4, "gamma": 1.3, "lines": 3}`), &cfg))
	assert.Equal(t, 4., cfg.ExpansionRatio)
	assert.Equal(t, 3, cfg.Lines)
	cfg.Samples = 5
	r, err := Solve(cfg)
	require.NoError(t, err)
	assert.Equal(t, 1., r.Config.ThroatRadius)

	data, err := json.Marshal(r.Wire())
	require.NoError(t, err)
	var back struct {
		Contour [][2]float64    `json:"contour"`
		Mesh    [][2][2]float64 `json:"mesh"`
	}
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, 5, len(back.Contour))
	assert.Equal(t, 3, len(back.Mesh))
	assert.Equal(t, [2]float64{0, 0}, back.Mesh[0][0])
	assert.InDelta(t, 2., back.Contour[4][1], 1.e-9)
}
