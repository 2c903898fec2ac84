package nozzle

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/oberth/types"
)

// bruteIndices visits every i, with exact rational floors
func bruteIndices(samples, lines int) (idx []int) {
	seen := make(map[int]bool)
	for i := 1; i <= lines; i++ {
		j := int(new(big.Int).Quo(big.NewInt(int64(i*(samples-1))), big.NewInt(int64(lines))).Int64())
		if !seen[j] {
			seen[j] = true
			idx = append(idx, j)
		}
	}
	return
}

func TestStationIndices(t *testing.T) {
	assert.Equal(t, []int{99}, StationIndices(100, 1))
	assert.Equal(t, []int{49, 99}, StationIndices(100, 2))
	assert.Equal(t, []int{4, 9, 14, 19, 24, 29, 34, 39, 44, 49,
		54, 59, 64, 69, 74, 79, 84, 89, 94, 99}, StationIndices(100, 20))
	assert.Equal(t, []int{1, 2, 3}, StationIndices(4, 3))
	assert.Equal(t, []int{0, 1, 2, 3}, StationIndices(4, 7))
	assert.Equal(t, []int{0}, StationIndices(1, 5))
	// 1/49*49 is below 1 in floating point, the integer mapping is exact
	assert.Equal(t, 1, StationIndices(50, 49)[0])
	assert.Equal(t, 0, len(StationIndices(0, 5)))
	assert.Equal(t, 0, len(StationIndices(10, 0)))

	for _, S := range []int{2, 3, 10, 50, 100} {
		for L := 1; L <= 3*S; L++ {
			assert.Equal(t, bruteIndices(S, L), StationIndices(S, L), "S = %d, L = %d", S, L)
		}
	}
	// Huge requests are bounded by the resolution
	idx := StationIndices(100, 1<<40)
	assert.Equal(t, 100, len(idx))
	assert.Equal(t, 0, idx[0])
	assert.Equal(t, 99, idx[99])
}

func TestBuildMesh(t *testing.T) {
	c, err := GenerateContour(25)
	require.NoError(t, err)
	for _, lines := range []int{1, 2, 3, 7, 20, 50, 98, 99, 100, 101, 150, 200, 5000} {
		mesh, err := BuildMesh(c, lines)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(mesh), 1)
		assert.LessOrEqual(t, len(mesh), lines)
		assert.LessOrEqual(t, len(mesh), c.Len())
		unique := make(map[types.Point]bool)
		for _, seg := range mesh {
			assert.Equal(t, Apex, seg.Start())
			unique[seg.End()] = true
		}
		assert.Equal(t, len(mesh), len(unique), "lines = %d", lines)
	}
	{ // A single line ends at the exit station
		mesh, err := BuildMesh(c, 1)
		require.NoError(t, err)
		require.Equal(t, 1, len(mesh))
		assert.Equal(t, c.Exit(), mesh[0].End())
	}
	{ // Input contour is left untouched
		before := append([]types.Point(nil), c.Points...)
		_, err = BuildMesh(c, 37)
		require.NoError(t, err)
		assert.Equal(t, before, c.Points)
	}
}

func TestBuildMeshDomain(t *testing.T) {
	c, err := GenerateContour(25)
	require.NoError(t, err)
	for _, lines := range []int{0, -1} {
		_, err = BuildMesh(c, lines)
		assert.True(t, errors.Is(err, types.ErrInvalidInput))
	}
	_, err = BuildMesh(Contour{}, 10)
	assert.True(t, errors.Is(err, types.ErrInvalidInput))
}

func TestBuildMeshStraightDuct(t *testing.T) {
	// Every sample of a straight duct is (0, 1), lines stay distinct by index
	c, err := GenerateContour(1)
	require.NoError(t, err)
	mesh, err := BuildMesh(c, 10)
	require.NoError(t, err)
	assert.Equal(t, []int{9, 19, 29, 39, 49, 59, 69, 79, 89, 99}, StationIndices(c.Len(), 10))
	assert.Equal(t, 10, len(mesh))
	for _, p := range mesh.EndPoints() {
		assert.Equal(t, types.Point{0, 1}, p)
	}
}
