// Package systems implements the gameplay pipeline and ambient effects that run on an engine.Run
package systems

import (
	"github.com/Chao-po/vertical-space-shooter/engine"
	"github.com/Chao-po/vertical-space-shooter/vmath"
)

// Register wires the gameplay pipeline and the ambient systems into g
func Register(g *engine.Game, rng vmath.Rand) {
	if rng == nil {
		rng = vmath.NewRand()
	}

	g.AddSystem(NewDifficultySystem())
	g.AddSystem(NewSpawnSystem(rng))
	g.AddSystem(NewPlayerSystem())
	g.AddSystem(NewEnemySystem(rng))
	g.AddSystem(NewBulletSystem())
	g.AddSystem(NewEnemyBulletSystem())
	g.AddSystem(NewCombatSystem(rng))
	g.AddSystem(NewCullSystem())
	g.AddSystem(NewProgressionSystem())

	g.AddAmbientSystem(NewStarfieldSystem(rng))
	g.AddAmbientSystem(NewParticleSystem())
	g.AddAmbientSystem(NewToastSystem())
}
