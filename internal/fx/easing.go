package fx

import "math"

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func easeOutElastic(t float64) float64 {
	const c4 = (2 * math.Pi) / 3
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	}
	return math.Pow(2, -10*t)*math.Sin((t*10-0.75)*c4) + 1
}

// clampSpeed rescales (vx, vy) so its magnitude does not exceed limit and
// returns the magnitude before clamping.
func clampSpeed(vx, vy *float64, limit float64) float64 {
	speed := math.Hypot(*vx, *vy)
	if speed > limit && speed > 0 {
		*vx = *vx / speed * limit
		*vy = *vy / speed * limit
	}
	return speed
}
