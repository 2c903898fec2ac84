package isentropic

import (
	"fmt"
	"math"

	"github.com/notargets/oberth/types"
)

type Regime uint8

const (
	Subsonic Regime = iota
	Supersonic
)

func (r Regime) String() string {
	switch r {
	case Subsonic:
		return "subsonic"
	case Supersonic:
		return "supersonic"
	}
	return fmt.Sprintf("Regime(%d)", uint8(r))
}

const (
	machTol  = 1.e-12
	maxIters = 500
)

// MachFromAreaRatio inverts the area-Mach relation on one branch. The root
// is bracketed and bisected on log(A/A*), the relation is monotone on each
// branch. The supersonic bracket grows until the float64 range is exhausted,
// which for large gamma means Mach numbers far above 1e6.
func MachFromAreaRatio(ratio, gamma float64, regime Regime) (mach float64, err error) {
	if err = checkGamma(gamma); err != nil {
		return
	}
	if !types.IsFinite(ratio) || ratio < 1 {
		err = types.NewInputError("area_ratio", ratio, "area ratio must be at least 1")
		return
	}
	if ratio == 1 {
		return 1, nil
	}
	var (
		target = math.Log(ratio)
		resid  = func(M float64) float64 { return logAreaRatio(M, gamma) - target }
		lo, hi float64
	)
	switch regime {
	case Supersonic:
		lo, hi = 1, 2
		for resid(hi) < 0 {
			lo, hi = hi, 2*hi
			if math.IsInf(hi, 1) {
				err = types.NewInputError("area_ratio", ratio,
					fmt.Sprintf("supersonic Mach number exceeds the float64 range at gamma %g", gamma))
				return
			}
		}
	case Subsonic:
		// resid(lo) > 0 > resid(hi)
		lo, hi = 0.5, 1
		for resid(lo) < 0 {
			hi, lo = lo, lo/2
		}
	default:
		err = fmt.Errorf("unknown flow regime %v", regime)
		return
	}
	for i := 0; i < maxIters && hi-lo > machTol*hi; i++ {
		mid := 0.5 * (lo + hi)
		rm := resid(mid)
		// the relation increases with M above Mach 1 and decreases below
		if (rm < 0) == (regime == Supersonic) {
			lo = mid
		} else {
			hi = mid
		}
	}
	mach = 0.5 * (lo + hi)
	return
}

// logAreaRatio is log(A/A*), written so that M^2 never overflows
func logAreaRatio(mach, gamma float64) float64 {
	var (
		exponent = (gamma + 1) / (2 * (gamma - 1))
		lm       = math.Log(mach)
		logTerm  float64
	)
	if mach > 1 {
		logTerm = 2*lm + math.Log((gamma-1)/2+1/(mach*mach))
	} else {
		logTerm = math.Log1p((gamma - 1) / 2 * mach * mach)
	}
	return -lm + exponent*(logTerm-math.Log((gamma+1)/2))
}

func stagnationTerm(mach, gamma float64) (t float64, err error) {
	if err = checkGamma(gamma); err != nil {
		return
	}
	if err = checkMach(mach); err != nil {
		return
	}
	t = 1 + 0.5*(gamma-1)*mach*mach
	return
}

// TemperatureRatio is T/T0
func TemperatureRatio(mach, gamma float64) (r float64, err error) {
	var t float64
	if t, err = stagnationTerm(mach, gamma); err != nil {
		return
	}
	r = 1 / t
	return
}

// PressureRatio is p/p0
func PressureRatio(mach, gamma float64) (r float64, err error) {
	var t float64
	if t, err = stagnationTerm(mach, gamma); err != nil {
		return
	}
	r = math.Pow(t, -gamma/(gamma-1))
	return
}

// DensityRatio is rho/rho0
func DensityRatio(mach, gamma float64) (r float64, err error) {
	var t float64
	if t, err = stagnationTerm(mach, gamma); err != nil {
		return
	}
	r = math.Pow(t, -1/(gamma-1))
	return
}

// PrandtlMeyer returns the turning angle nu(M) in radians, defined for M >= 1
func PrandtlMeyer(mach, gamma float64) (nu float64, err error) {
	if err = checkGamma(gamma); err != nil {
		return
	}
	if !types.IsFinite(mach) || mach < 1 {
		err = types.NewInputError("mach", mach, "Prandtl-Meyer function requires M >= 1")
		return
	}
	var (
		gp1 = gamma + 1
		gm1 = gamma - 1
		m2  = mach*mach - 1
	)
	nu = math.Sqrt(gp1/gm1)*math.Atan(math.Sqrt(gm1/gp1*m2)) - math.Atan(math.Sqrt(m2))
	return
}

// MachAngle returns asin(1/M) in radians, defined for M >= 1
func MachAngle(mach float64) (mu float64, err error) {
	if !types.IsFinite(mach) || mach < 1 {
		err = types.NewInputError("mach", mach, "Mach angle requires M >= 1")
		return
	}
	mu = math.Asin(1 / mach)
	return
}
