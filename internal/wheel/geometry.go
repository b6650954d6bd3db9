package wheel

import "math"

const (
	// FullCircleDeg is one full turn.
	FullCircleDeg = 360

	// PointerAngleDeg is where the fixed pointer sits in the wheel's frame:
	// angle zero at 3 o'clock, angles growing counterclockwise, pointer at
	// 12 o'clock.
	PointerAngleDeg = 90
)

// normalizeDeg maps any angle into [0, 360).
func normalizeDeg(a float64) float64 {
	a = math.Mod(a, FullCircleDeg)
	if a < 0 {
		a += FullCircleDeg
	}
	if a >= FullCircleDeg {
		// a tiny negative input rounds up to exactly 360
		return 0
	}
	return a
}

// pointerDistance is how far the pointer lies past a segment start,
// measured in the growing-angle direction.
func pointerDistance(startDeg float64) float64 {
	if startDeg > PointerAngleDeg {
		return FullCircleDeg - startDeg + PointerAngleDeg
	}
	return PointerAngleDeg - startDeg
}

// nearestStart returns the index whose start angle has the smallest pointer
// distance. Ties go to the lowest index.
func nearestStart(starts []float64) int {
	best := 0
	for i := 1; i < len(starts); i++ {
		if pointerDistance(starts[i]) < pointerDistance(starts[best]) {
			best = i
		}
	}
	return best
}

// ScreenRad converts a wheel angle into radians on a y-down screen, where
// angles grow clockwise.
func ScreenRad(deg float64) float64 {
	return -deg * math.Pi / 180
}
