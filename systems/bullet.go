package systems

import (
	"github.com/Chao-po/vertical-space-shooter/component"
	"github.com/Chao-po/vertical-space-shooter/engine"
	"github.com/Chao-po/vertical-space-shooter/parameter"
	"github.com/Chao-po/vertical-space-shooter/physics"
	"github.com/Chao-po/vertical-space-shooter/vmath"
)

// BulletSystem steers homing shots, moves player bullets and expires them by range or bounds
type BulletSystem struct{}

func NewBulletSystem() *BulletSystem {
	return &BulletSystem{}
}

func (s *BulletSystem) Priority() int {
	return parameter.PriorityBullet
}

func (s *BulletSystem) Update(r *engine.Run, dt float64) {
	p := &r.Player
	magnet := p.Magnet
	if magnet <= 0 {
		magnet = parameter.HomingDefaultMagnet
	}

	for i := range r.Bullets {
		b := &r.Bullets[i]
		if b.Dead {
			continue
		}

		if b.Homing {
			if target := acquire(r, b); target != nil {
				b.Vel = physics.Steer(b.Vel, b.Pos, target.Center(), p.BulletSpeed, magnet)
			}
		}

		var dist float64
		b.Pos, dist = physics.Integrate(b.Pos, b.Vel, dt)
		if b.HasRange() {
			b.Range -= dist
			if b.Range <= 0 {
				b.Dead = true
				continue
			}
		}

		if b.Pos.X <= -parameter.BulletMarginX || b.Pos.X >= r.Width+parameter.BulletMarginX ||
			b.Pos.Y <= -parameter.BulletMarginY || b.Pos.Y >= r.Height+parameter.BulletMarginY {
			b.Dead = true
		}
	}
}

// acquire resolves the bullet's target by id, reacquiring the nearest live enemy when it is gone
func acquire(r *engine.Run, b *component.Bullet) *component.Enemy {
	if t := r.Enemy(b.Target); t != nil && t.Alive() {
		return t
	}
	idx := physics.Nearest(b.Pos, len(r.Enemies),
		func(i int) vmath.Vec2 { return r.Enemies[i].Center() },
		func(i int) bool { return !r.Enemies[i].Alive() },
	)
	if idx < 0 {
		b.Target = 0
		return nil
	}
	b.Target = r.Enemies[idx].ID
	return &r.Enemies[idx]
}

// EnemyBulletSystem moves hostile projectiles and expires them off-screen
type EnemyBulletSystem struct{}

func NewEnemyBulletSystem() *EnemyBulletSystem {
	return &EnemyBulletSystem{}
}

func (s *EnemyBulletSystem) Priority() int {
	return parameter.PriorityEnemyBullet
}

func (s *EnemyBulletSystem) Update(r *engine.Run, dt float64) {
	for i := range r.EnemyBullets {
		b := &r.EnemyBullets[i]
		if b.Dead {
			continue
		}
		b.Pos, _ = physics.Integrate(b.Pos, b.Vel, dt)
		if b.Pos.X <= -parameter.EnemyBulletMarginX || b.Pos.X >= r.Width+parameter.EnemyBulletMarginX ||
			b.Pos.Y <= -parameter.EnemyBulletMarginTop || b.Pos.Y >= r.Height+parameter.EnemyBulletMarginBottom {
			b.Dead = true
		}
	}
}
