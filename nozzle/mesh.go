package nozzle

import (
	"github.com/notargets/oberth/types"
)

// Mesh is a fan of visualization lines from the apex at the origin to
// distinct wall stations. It is not a characteristic net, real C+/C- lines
// start at distinct points along the axis and wall.
type Mesh []types.Segment

// Apex is the common start point of every mesh line
var Apex = types.Point{0, 0}

// BuildMesh places the lines at stations floor(i*(S-1)/lines), i = 1..lines,
// over a contour of S samples. Stations that coincide are emitted once, so
// the mesh never has more lines than the contour has samples. Uniqueness is
// by contour index: a straight duct (expansion ratio 1) has every sample at
// the same point, so its lines share an end point while ending at distinct
// samples.
func BuildMesh(contour Contour, lines int) (mesh Mesh, err error) {
	if err = validateLines(lines); err != nil {
		return
	}
	if contour.Len() == 0 {
		err = types.NewInputError("contour", 0, "contour has no samples")
		return
	}
	idx := StationIndices(contour.Len(), lines)
	mesh = make(Mesh, len(idx))
	for i, ii := range idx {
		mesh[i] = types.NewSegment(Apex, contour.Points[ii])
	}
	return
}

/*
StationIndices returns the unique, ascending contour indices floor(i*(S-1)/L)
for i = 1..L, using integer arithmetic only.

When L >= S-1 consecutive indices differ by at most one, so every index from
floor((S-1)/L) to S-1 is hit and the set is produced directly. Otherwise the
step exceeds one and no two i share an index.
*/
func StationIndices(samples, lines int) (idx []int) {
	var (
		last = samples - 1
	)
	if samples <= 0 || lines <= 0 {
		return []int{}
	}
	if lines >= last {
		first := last / lines
		idx = make([]int, 0, last-first+1)
		for j := first; j <= last; j++ {
			idx = append(idx, j)
		}
		return
	}
	idx = make([]int, 0, lines)
	for i := 1; i <= lines; i++ {
		j := i * last / lines
		if len(idx) != 0 && idx[len(idx)-1] == j {
			continue
		}
		idx = append(idx, j)
	}
	return
}

// EndPoints returns the wall station of every line
func (m Mesh) EndPoints() (pts []types.Point) {
	pts = make([]types.Point, len(m))
	for i, seg := range m {
		pts[i] = seg.End()
	}
	return
}
