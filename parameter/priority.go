package parameter

// System priorities, lower runs first
// Gameplay order is fixed: difficulty, spawn, movement, combat, cleanup, progression
const (
	PriorityDifficulty  = 10
	PrioritySpawn       = 20
	PriorityPlayer      = 30
	PriorityEnemy       = 40
	PriorityBullet      = 50
	PriorityEnemyBullet = 60
	PriorityCombat      = 70
	PriorityCull        = 80
	PriorityProgression = 90

	// Ambient systems run whenever a run is on screen
	PriorityStars     = 100
	PriorityParticles = 110
	PriorityToast     = 120
)
