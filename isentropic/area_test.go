package isentropic

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/oberth/types"
)

func TestAreaRatio(t *testing.T) {
	{ // Sonic throat condition holds for any gamma
		for _, gamma := range []float64{1.001, 1.05, 1.1, 1.13, 1.2, 1.25, 1.3, 1.4, 1.5, 5. / 3., 2, 3} {
			ar, err := AreaRatioOf(1, gamma)
			require.NoError(t, err)
			assert.False(t, ar.Infinite())
			assert.InDelta(t, 1., ar.Value(), 1.e-9, "gamma = %v", gamma)
		}
	}
	{ // Reference table value for air at Mach 2
		ar, err := AreaRatioOf(2.0, 1.4)
		require.NoError(t, err)
		fmt.Printf("A/A*(M=2, gamma=1.4) = %s\n", ar)
		assert.InDelta(t, 1.6875, ar.Value(), 1.e-4)
	}
	{ // Stagnation is infinite, not a large finite number
		ar, err := AreaRatioOf(0, 1.2)
		require.NoError(t, err)
		assert.True(t, ar.Infinite())
		assert.Equal(t, Infinite, ar)
		assert.True(t, math.IsInf(ar.Value(), 1))
		assert.Equal(t, "infinite", ar.String())
	}
	{ // Area ratio grows away from the throat on both branches
		sub, err := AreaRatioOf(0.5, 1.4)
		require.NoError(t, err)
		sup, err := AreaRatioOf(3, 1.4)
		require.NoError(t, err)
		assert.Greater(t, sub.Value(), 1.)
		assert.Greater(t, sup.Value(), 1.)
		assert.InDelta(t, 1.33984, sub.Value(), 1.e-4)
		assert.InDelta(t, 4.23457, sup.Value(), 1.e-4)
	}
}

func TestAreaRatioDomain(t *testing.T) {
	cases := []struct {
		mach, gamma float64
		field       string
	}{
		{1, 1, "gamma"},
		{1, 0.9, "gamma"},
		{1, math.NaN(), "gamma"},
		{-0.1, 1.4, "mach"},
		{math.Inf(1), 1.4, "mach"},
		{math.NaN(), 1.4, "mach"},
	}
	for _, c := range cases {
		_, err := AreaRatioOf(c.mach, c.gamma)
		require.Error(t, err)
		assert.True(t, errors.Is(err, types.ErrInvalidInput))
		var ie *types.InputError
		require.True(t, errors.As(err, &ie))
		assert.Equal(t, c.field, ie.Field)
	}
}

func TestAreaRatioJSON(t *testing.T) {
	data, err := json.Marshal(map[string]AreaRatio{
		"throat": NewAreaRatio(1),
		"stag":   Infinite,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"throat": 1, "stag": "infinite"}`, string(data))

	var back map[string]AreaRatio
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back["stag"].Infinite())
	assert.Equal(t, 1., back["throat"].Value())

	var bad AreaRatio
	assert.Error(t, json.Unmarshal([]byte(`"huge"`), &bad))
}
