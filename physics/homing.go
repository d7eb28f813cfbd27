package physics

import "github.com/Chao-po/vertical-space-shooter/vmath"

// Steer blends vel toward the velocity that points at target with the given speed
// magnet is the interpolation factor per tick: 0 keeps vel, 1 snaps to the desired velocity
func Steer(vel, pos, target vmath.Vec2, speed, magnet float64) vmath.Vec2 {
	desired := Aim(pos, target, speed)
	return vel.Lerp(desired, magnet)
}

// Nearest returns the index of the point closest to pos by squared distance, or -1 for none
// Candidates for which skip returns true are ignored
func Nearest(pos vmath.Vec2, n int, at func(i int) vmath.Vec2, skip func(i int) bool) int {
	best := -1
	bestDist := 0.0
	for i := 0; i < n; i++ {
		if skip != nil && skip(i) {
			continue
		}
		d := at(i).Sub(pos).LenSq()
		if best < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}
