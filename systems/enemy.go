package systems

import (
	"math"

	"github.com/Chao-po/vertical-space-shooter/component"
	"github.com/Chao-po/vertical-space-shooter/engine"
	"github.com/Chao-po/vertical-space-shooter/parameter"
	"github.com/Chao-po/vertical-space-shooter/physics"
	"github.com/Chao-po/vertical-space-shooter/vmath"
)

// EnemySystem moves every enemy by kind, runs guns and bomber fuses, and marks exits
type EnemySystem struct {
	rng vmath.Rand
}

func NewEnemySystem(rng vmath.Rand) *EnemySystem {
	return &EnemySystem{rng: rng}
}

func (s *EnemySystem) Priority() int {
	return parameter.PriorityEnemy
}

func (s *EnemySystem) Update(r *engine.Run, dt float64) {
	exitY := r.Height + parameter.EnemyExitMargin
	for i := range r.Enemies {
		e := &r.Enemies[i]
		if !e.Alive() {
			continue
		}

		switch e.Kind {
		case component.KindBomber:
			e.Pos.Y += e.Vel.Y * dt / 1000
			e.Fuse.Countdown -= dt
			if !e.Fuse.Exploded && e.Fuse.Countdown <= 0 && e.Pos.Y > parameter.BomberArmedY {
				s.detonate(r, e)
				continue
			}
		case component.KindZigzag:
			e.Pos.Y += e.Vel.Y * dt / 1000
			e.Zigzag.Phase += e.Zigzag.Frequency * dt
			e.Pos.X = e.Zigzag.BaseX + e.Zigzag.Amplitude*math.Sin(e.Zigzag.Phase)
		default:
			e.Pos, _ = physics.Integrate(e.Pos, e.Vel, dt)
			e.Vel.X = physics.BounceX(e.Pos.X, e.W, e.Vel.X, r.Width)
		}

		if e.Kind.Shoots() {
			e.Gun.Cooldown -= dt
			if e.Gun.Cooldown <= 0 && e.Pos.Y > parameter.EnemyFireMinY {
				r.EnemyBullets = append(r.EnemyBullets, AimedShot(e, r.Player.Center())...)
				e.Gun.Cooldown = s.cooldown(e.Kind, r.Difficulty)
			}
		}

		if e.Kind == component.KindBoss && e.Pos.Y > parameter.BossHoldY {
			e.Vel.Y = 0
		}

		if e.Pos.Y >= exitY {
			e.Dead = true
		}
	}
}

// cooldown is base*max(floor, 1-d*k) plus jitter
func (s *EnemySystem) cooldown(kind component.Kind, d float64) float64 {
	base := parameter.ShooterFireBase
	if kind == component.KindBoss {
		base = parameter.BossFireBase
	}
	factor := math.Max(parameter.FireCooldownFloor, 1-d*parameter.FireCooldownPerDiff)
	return base*factor + s.rng.Float64()*parameter.FireCooldownJitterMax
}

// detonate fires the bomber ring once and removes the bomber
func (s *EnemySystem) detonate(r *engine.Run, e *component.Enemy) {
	e.Fuse.Exploded = true
	center := e.Center()
	for _, v := range physics.Ring(parameter.BomberRingCount, parameter.BomberRingSpeed) {
		r.EnemyBullets = append(r.EnemyBullets, component.EnemyBullet{
			Pos:    center,
			Vel:    v,
			Radius: parameter.BomberRingBulletR,
		})
	}
	Explode(r, s.rng, center, false)
	e.Kill()
}

// AimedShot fires from the enemy center toward target
// The boss fans three bullets by rotating the single aim vector
func AimedShot(e *component.Enemy, target vmath.Vec2) []component.EnemyBullet {
	from := e.Center()
	if e.Kind != component.KindBoss {
		return []component.EnemyBullet{{
			Pos:    from,
			Vel:    physics.Aim(from, target, parameter.ShooterBulletSpeed),
			Radius: parameter.EnemyBulletRadius,
		}}
	}

	aim := physics.Aim(from, target, parameter.BossBulletSpeed)
	out := make([]component.EnemyBullet, 0, len(parameter.BossSpreadAngles))
	for _, a := range parameter.BossSpreadAngles {
		out = append(out, component.EnemyBullet{
			Pos:    from,
			Vel:    aim.Rotate(a),
			Radius: parameter.EnemyBulletRadius,
		})
	}
	return out
}
