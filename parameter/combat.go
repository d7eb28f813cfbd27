package parameter

// Damage to the player
const (
	EnemyBulletDamage = 10.0
	ContactDamage     = 20.0
)

// Rewards
const (
	// XPPerScore converts a kill's score into experience (floored)
	XPPerScore = 0.6
)

// Pierce
const (
	// PierceNudge moves a piercing bullet forward by velocity * nudge seconds after a hit
	PierceNudge = 0.01
)

// Explosions
const (
	ExplosionSmallCount     = 22
	ExplosionSmallSpeedSpan = 240.0
	ExplosionSmallLife      = 650.0
	ExplosionSmallSizeSpan  = 2.2

	ExplosionBigCount     = 50
	ExplosionBigSpeedSpan = 340.0
	ExplosionBigLife      = 920.0
	ExplosionBigSizeSpan  = 3.2

	ExplosionSpeedMin = 90.0
	ExplosionSizeMin  = 1.0

	// ParticleFadeLife is the life value at which a particle renders fully opaque
	ParticleFadeLife = 700.0
)
