package component

import "github.com/Chao-po/vertical-space-shooter/vmath"

// Particle is a cosmetic explosion fragment, never part of collision
type Particle struct {
	Pos  vmath.Vec2
	Vel  vmath.Vec2
	Life float64 // ms remaining
	Size float64
}

// Star is a scrolling background point
type Star struct {
	Pos   vmath.Vec2
	Size  float64
	Speed float64 // px/s downward
}
