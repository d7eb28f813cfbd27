package parameter

// Playfield defaults, overridable through config
const (
	// PlayfieldWidth is the default playfield width in pixels
	PlayfieldWidth = 480
	// PlayfieldHeight is the default playfield height in pixels
	PlayfieldHeight = 720
)

// Offscreen culling margins (pixels beyond the playfield edge)
const (
	BulletMarginX = 60
	BulletMarginY = 60

	EnemyBulletMarginX      = 40
	EnemyBulletMarginTop    = 80
	EnemyBulletMarginBottom = 100

	// EnemyExitMargin removes enemies once y reaches height + margin
	EnemyExitMargin = 140
)

// Starfield
const (
	StarCount    = 80
	StarSizeMin  = 0.5
	StarSizeSpan = 1.8
	StarSpeedMin = 20.0
	// StarSpeedSpan is random extra speed on top of StarSpeedMin (px/s)
	StarSpeedSpan = 40.0
	// StarWrapMargin is how far below the playfield a star travels before respawning at -margin
	StarWrapMargin = 10
)
