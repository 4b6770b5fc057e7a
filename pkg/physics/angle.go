// pkg/physics/angle.go
package physics

import "math"

// MinMagnitude is the threshold below which vector magnitudes are treated
// as zero to guard divisions.
const MinMagnitude = 1e-6

// NormalizeAngle wraps an angle into the range [-π, π]. It is idempotent:
// normalizing an already-normalized angle returns it unchanged.
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// ShortestAngleDiff returns the signed difference from one angle to another
// along the shorter rotational direction, in [-π, π].
func ShortestAngleDiff(from, to float64) float64 {
	diff := to - from
	for diff > math.Pi {
		diff -= 2 * math.Pi
	}
	for diff < -math.Pi {
		diff += 2 * math.Pi
	}
	return diff
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp limits value to the range [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
