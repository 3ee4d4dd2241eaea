package gazescreens

import (
	"math"
)

type Real = float64

func isFinite(x Real) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

func isFiniteVec(v Vec3) bool { return isFinite(v[0]) && isFinite(v[1]) && isFinite(v[2]) }

// sgn is numpy's sign: -1, 0 or 1.
func sgn(x Real) Real {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
