package component

import "github.com/Chao-po/vertical-space-shooter/vmath"

// EntityID identifies an enemy within a run; zero is never assigned
type EntityID uint64

// Enemy is a hostile entity; Kind selects which payload fields are live
type Enemy struct {
	ID   EntityID
	Kind Kind

	Pos  vmath.Vec2 // top-left corner
	W, H float64
	Vel  vmath.Vec2 // px/s

	HP    int
	MaxHP int // captured at spawn for the health-bar ratio

	Zigzag ZigzagMotion // KindZigzag
	Gun    Gun          // KindShooter, KindBoss
	Fuse   Fuse         // KindBomber

	// Dead marks the enemy for the cleanup pass
	Dead bool
}

// ZigzagMotion drives x = BaseX + Amplitude*sin(Phase)
type ZigzagMotion struct {
	BaseX     float64
	Phase     float64
	Amplitude float64
	Frequency float64 // radians per ms
}

// Gun is a fire cooldown in ms
type Gun struct {
	Cooldown float64
}

// Fuse counts down to a single detonation
type Fuse struct {
	Countdown float64 // ms
	Exploded  bool
}

func (e *Enemy) Bounds() vmath.Rect {
	return vmath.Rect{X: e.Pos.X, Y: e.Pos.Y, W: e.W, H: e.H}
}

func (e *Enemy) Center() vmath.Vec2 {
	return vmath.Vec2{X: e.Pos.X + e.W/2, Y: e.Pos.Y + e.H/2}
}

// Alive is false once health is exhausted or the enemy was marked for removal
func (e *Enemy) Alive() bool {
	return !e.Dead && e.HP > 0
}

// Kill zeroes health and marks the enemy for cleanup
func (e *Enemy) Kill() {
	e.HP = 0
	e.Dead = true
}
