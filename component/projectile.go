package component

import (
	"math"

	"github.com/Chao-po/vertical-space-shooter/vmath"
)

// Bullet is a player-fired projectile
type Bullet struct {
	Pos    vmath.Vec2 // center
	Vel    vmath.Vec2 // px/s
	Radius float64

	// Pierce is the number of additional enemies the bullet may damage
	Pierce int
	// Range is remaining travel in px; +Inf disables range expiry
	Range float64
	// Hits counts enemies damaged over the bullet's lifetime
	Hits int

	Homing bool
	// Target is a lookup key into the enemy collection, never a retained pointer
	Target EntityID

	Dead bool
}

// HasRange reports whether the bullet expires by distance
func (b *Bullet) HasRange() bool {
	return !math.IsInf(b.Range, 1)
}

func (b *Bullet) Circle() vmath.Circle {
	return vmath.Circle{X: b.Pos.X, Y: b.Pos.Y, R: b.Radius}
}

// EnemyBullet is fired by shooters, the boss and bomber detonations
type EnemyBullet struct {
	Pos    vmath.Vec2
	Vel    vmath.Vec2
	Radius float64
	Dead   bool
}

func (b *EnemyBullet) Circle() vmath.Circle {
	return vmath.Circle{X: b.Pos.X, Y: b.Pos.Y, R: b.Radius}
}
