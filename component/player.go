package component

import "github.com/Chao-po/vertical-space-shooter/vmath"

// Player holds position and every stat the upgrade pool can mutate
type Player struct {
	Pos   vmath.Vec2 // top-left corner
	W, H  float64
	Speed float64 // px/s

	HP    float64
	MaxHP float64
	Regen float64 // hp/s

	FireCooldown float64 // ms until next volley
	FireRate     float64 // ms between volleys

	BulletDamage int
	BulletSpeed  float64
	BulletRadius float64
	BulletRange  float64
	Pierce       int

	MultiShot int
	Spread    float64 // radians between lanes
	Homing    bool
	Magnet    float64 // homing blend factor per tick
}

func (p *Player) Bounds() vmath.Rect {
	return vmath.Rect{X: p.Pos.X, Y: p.Pos.Y, W: p.W, H: p.H}
}

func (p *Player) Center() vmath.Vec2 {
	return vmath.Vec2{X: p.Pos.X + p.W/2, Y: p.Pos.Y + p.H/2}
}

// Dead is the only fatal condition of a run
func (p *Player) Dead() bool {
	return p.HP <= 0
}

// Heal adds hp without exceeding MaxHP
func (p *Player) Heal(amount float64) {
	p.HP += amount
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
}
