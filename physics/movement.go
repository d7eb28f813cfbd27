package physics

import (
	"math"

	"github.com/Chao-po/vertical-space-shooter/vmath"
)

// Up is the straight-up firing angle in screen coordinates
const Up = -math.Pi / 2

// Integrate advances pos by vel (px/s) over dt ms
// Returns the new position and the Euclidean distance travelled
func Integrate(pos, vel vmath.Vec2, dt float64) (vmath.Vec2, float64) {
	step := vel.Scale(dt / 1000)
	return pos.Add(step), step.Len()
}

// BounceX flips horizontal velocity so an entity of width w stays within [0, fieldW-w]
// Zero velocity is left untouched
func BounceX(x, w, vx, fieldW float64) float64 {
	switch {
	case vx == 0:
		return 0
	case x < 0:
		return math.Abs(vx)
	case x > fieldW-w:
		return -math.Abs(vx)
	}
	return vx
}

// LaneAngles returns the firing angle of each lane of a multi-shot volley
// Lane i is offset by (i - (count-1)/2) * spread from straight up; a single lane has no offset
func LaneAngles(count int, spread float64) []float64 {
	if count <= 1 {
		return []float64{Up}
	}
	angles := make([]float64, count)
	mid := float64(count-1) / 2
	for i := range angles {
		angles[i] = Up + (float64(i)-mid)*spread
	}
	return angles
}

// Aim returns a velocity of the given speed pointing from one point to another
// Coincident points normalize against length 1 and yield a zero vector
func Aim(from, to vmath.Vec2, speed float64) vmath.Vec2 {
	return to.Sub(from).Normalize().Scale(speed)
}

// Ring returns count velocities of the given speed, equally spaced starting at angle 0
func Ring(count int, speed float64) []vmath.Vec2 {
	vels := make([]vmath.Vec2, count)
	for i := range vels {
		vels[i] = vmath.FromAngle(2*math.Pi*float64(i)/float64(count), speed)
	}
	return vels
}
