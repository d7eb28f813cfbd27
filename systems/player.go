package systems

import (
	"math"

	"github.com/Chao-po/vertical-space-shooter/component"
	"github.com/Chao-po/vertical-space-shooter/engine"
	"github.com/Chao-po/vertical-space-shooter/input"
	"github.com/Chao-po/vertical-space-shooter/parameter"
	"github.com/Chao-po/vertical-space-shooter/physics"
	"github.com/Chao-po/vertical-space-shooter/vmath"
)

// PlayerSystem applies regeneration, movement and fire from the tick's input snapshot
type PlayerSystem struct{}

func NewPlayerSystem() *PlayerSystem {
	return &PlayerSystem{}
}

func (s *PlayerSystem) Priority() int {
	return parameter.PriorityPlayer
}

func (s *PlayerSystem) Update(r *engine.Run, dt float64) {
	p := &r.Player

	if p.Regen > 0 {
		p.Heal(p.Regen * dt / 1000)
	}

	move := p.Speed * dt / 1000
	if r.Input.Has(input.ActionLeft) {
		p.Pos.X -= move
	}
	if r.Input.Has(input.ActionRight) {
		p.Pos.X += move
	}
	if r.Input.Has(input.ActionUp) {
		p.Pos.Y -= move
	}
	if r.Input.Has(input.ActionDown) {
		p.Pos.Y += move
	}
	p.Pos.X = vmath.Clamp(p.Pos.X, 0, r.Width-p.W)
	p.Pos.Y = vmath.Clamp(p.Pos.Y, 0, r.Height-p.H)

	p.FireCooldown -= dt
	if r.Input.Has(input.ActionFire) && p.FireCooldown <= 0 {
		r.Bullets = append(r.Bullets, Volley(p)...)
		p.FireCooldown = p.FireRate
	}
}

// Volley builds one multi-shot salvo from the muzzle, copying the player's bullet stats
func Volley(p *component.Player) []component.Bullet {
	muzzle := vmath.Vec2{X: p.Pos.X + p.W/2, Y: p.Pos.Y - parameter.PlayerMuzzleOffset}
	budget := math.Inf(1)
	if p.BulletRange > 0 {
		budget = p.BulletRange
	}

	angles := physics.LaneAngles(p.MultiShot, p.Spread)
	out := make([]component.Bullet, 0, len(angles))
	for _, a := range angles {
		out = append(out, component.Bullet{
			Pos:    muzzle,
			Vel:    vmath.FromAngle(a, p.BulletSpeed),
			Radius: p.BulletRadius,
			Pierce: p.Pierce,
			Range:  budget,
			Homing: p.Homing,
		})
	}
	return out
}
