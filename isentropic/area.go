package isentropic

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/notargets/oberth/types"
)

// AreaRatio is the local to sonic throat area ratio A/A*. A stagnation point
// (Mach 0) has no finite area ratio and is carried as the Infinite sentinel
// instead of a large float.
type AreaRatio struct {
	value    float64
	infinite bool
}

// Infinite is the area ratio at Mach 0
var Infinite = AreaRatio{infinite: true}

const infiniteToken = "infinite"

// NewAreaRatio wraps a finite area ratio
func NewAreaRatio(val float64) AreaRatio {
	return AreaRatio{value: val}
}

// Infinite reports whether ar is the Mach 0 sentinel
func (ar AreaRatio) Infinite() bool { return ar.infinite }

// Value is +Inf for the Infinite sentinel
func (ar AreaRatio) Value() float64 {
	if ar.infinite {
		return math.Inf(1)
	}
	return ar.value
}

func (ar AreaRatio) String() string {
	if ar.infinite {
		return infiniteToken
	}
	return strconv.FormatFloat(ar.value, 'g', -1, 64)
}

func (ar AreaRatio) MarshalJSON() ([]byte, error) {
	if ar.infinite {
		return json.Marshal(infiniteToken)
	}
	return json.Marshal(ar.value)
}

func (ar *AreaRatio) UnmarshalJSON(data []byte) (err error) {
	var token string
	if err = json.Unmarshal(data, &token); err == nil {
		if token != infiniteToken {
			return types.NewInputError("area_ratio", token, "expected a number or \""+infiniteToken+"\"")
		}
		*ar = Infinite
		return
	}
	var val float64
	if err = json.Unmarshal(data, &val); err != nil {
		return
	}
	*ar = NewAreaRatio(val)
	return
}

// AreaRatioOf evaluates the isentropic area-Mach relation
//
//	A/A* = (1/M) * [(1 + (g-1)/2 M^2) / ((g+1)/2)]^((g+1)/(2(g-1)))
func AreaRatioOf(mach, gamma float64) (ar AreaRatio, err error) {
	if err = checkGamma(gamma); err != nil {
		return
	}
	if err = checkMach(mach); err != nil {
		return
	}
	if mach == 0 {
		return Infinite, nil
	}
	ar = NewAreaRatio(areaRatio(mach, gamma))
	return
}

func areaRatio(mach, gamma float64) float64 {
	var (
		exponent = (gamma + 1) / (2 * (gamma - 1))
		factor   = (gamma + 1) / 2
		term     = 1 + (gamma-1)/2*mach*mach
	)
	return (1 / mach) * math.Pow(term/factor, exponent)
}

func checkGamma(gamma float64) error {
	if !types.IsFinite(gamma) || gamma-1 <= 0 {
		return types.NewInputError("gamma", gamma, "specific heat ratio must be greater than 1")
	}
	return nil
}

func checkMach(mach float64) error {
	if !types.IsFinite(mach) || mach < 0 {
		return types.NewInputError("mach", mach, "Mach number must be non-negative")
	}
	return nil
}
