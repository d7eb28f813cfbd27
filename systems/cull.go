package systems

import (
	"slices"

	"github.com/Chao-po/vertical-space-shooter/component"
	"github.com/Chao-po/vertical-space-shooter/engine"
	"github.com/Chao-po/vertical-space-shooter/parameter"
)

// CullSystem removes entities marked during the tick, then admits enemies queued mid-tick
// Runs after combat; entities marked this tick never collide again
type CullSystem struct{}

func NewCullSystem() *CullSystem {
	return &CullSystem{}
}

func (s *CullSystem) Priority() int {
	return parameter.PriorityCull
}

func (s *CullSystem) Update(r *engine.Run, _ float64) {
	r.Enemies = slices.DeleteFunc(r.Enemies, func(e component.Enemy) bool {
		return !e.Alive()
	})
	r.Bullets = slices.DeleteFunc(r.Bullets, func(b component.Bullet) bool {
		return b.Dead
	})
	r.EnemyBullets = slices.DeleteFunc(r.EnemyBullets, func(b component.EnemyBullet) bool {
		return b.Dead
	})
	r.FlushSpawned()
}
