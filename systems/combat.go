package systems

import (
	"math"

	"github.com/Chao-po/vertical-space-shooter/component"
	"github.com/Chao-po/vertical-space-shooter/engine"
	"github.com/Chao-po/vertical-space-shooter/parameter"
	"github.com/Chao-po/vertical-space-shooter/vmath"
)

// CombatSystem resolves collisions in fixed order:
// player bullets x enemies, enemy bullets x player, enemies x player
// It only marks entities; removal happens in CullSystem
type CombatSystem struct {
	rng vmath.Rand
}

func NewCombatSystem(rng vmath.Rand) *CombatSystem {
	return &CombatSystem{rng: rng}
}

func (s *CombatSystem) Priority() int {
	return parameter.PriorityCombat
}

func (s *CombatSystem) Update(r *engine.Run, _ float64) {
	s.bulletsVsEnemies(r)
	s.enemyBulletsVsPlayer(r)
	s.enemiesVsPlayer(r)
}

// bulletsVsEnemies applies at most one hit per bullet per tick
func (s *CombatSystem) bulletsVsEnemies(r *engine.Run) {
	damage := r.Player.BulletDamage
	for bi := range r.Bullets {
		b := &r.Bullets[bi]
		if b.Dead {
			continue
		}
		for ei := range r.Enemies {
			e := &r.Enemies[ei]
			if !e.Alive() || !vmath.RectCircle(e.Bounds(), b.Circle()) {
				continue
			}

			e.HP -= damage
			b.Hits++
			if e.HP <= 0 {
				s.kill(r, e)
			}

			if b.Pierce > 0 {
				b.Pierce--
				b.Pos = b.Pos.Add(b.Vel.Scale(parameter.PierceNudge))
			} else {
				b.Dead = true
			}
			break
		}
	}
}

// kill awards score and experience and resolves death effects
func (s *CombatSystem) kill(r *engine.Run, e *component.Enemy) {
	score := e.Kind.Score()
	r.Score += score
	r.XP += XPFor(score)

	Explode(r, s.rng, e.Center(), e.Kind == component.KindBoss)

	if e.Kind == component.KindSplitter {
		for _, m := range NewMinis(e, r.Difficulty, r.Width, s.rng) {
			r.SpawnLater(m)
		}
	}
	e.Kill()
}

func (s *CombatSystem) enemyBulletsVsPlayer(r *engine.Run) {
	p := &r.Player
	bounds := p.Bounds()
	for i := range r.EnemyBullets {
		b := &r.EnemyBullets[i]
		if b.Dead || !vmath.RectCircle(bounds, b.Circle()) {
			continue
		}
		b.Dead = true
		p.HP -= parameter.EnemyBulletDamage
	}
}

// enemiesVsPlayer destroys rammers without reward
func (s *CombatSystem) enemiesVsPlayer(r *engine.Run) {
	p := &r.Player
	bounds := p.Bounds()
	for i := range r.Enemies {
		e := &r.Enemies[i]
		if !e.Alive() || !vmath.RectsOverlap(bounds, e.Bounds()) {
			continue
		}
		p.HP -= parameter.ContactDamage
		e.Kill()
		Explode(r, s.rng, e.Center(), false)
	}
}

// XPFor converts a kill score into experience
func XPFor(score int) int {
	return int(math.Floor(float64(score) * parameter.XPPerScore))
}
