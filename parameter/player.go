package parameter

// Player starting stats
const (
	PlayerWidth  = 40
	PlayerHeight = 40
	// PlayerOffsetX is subtracted from the horizontal center for the spawn point
	PlayerOffsetX = 20
	// PlayerOffsetBottom is the spawn distance from the bottom edge
	PlayerOffsetBottom = 90

	PlayerSpeed = 420.0 // px/s
	PlayerHP    = 100.0

	PlayerFireRate     = 160.0 // ms between volleys
	PlayerBulletDamage = 1
	PlayerBulletSpeed  = 600.0 // px/s
	PlayerBulletRadius = 4.0
	PlayerBulletRange  = 700.0 // px of travel before expiry
	PlayerMultiShot    = 1
	PlayerSpread       = 0.18 // radians between lanes

	// PlayerMuzzleOffset is how far above the hull bullets spawn
	PlayerMuzzleOffset = 8
)

// Homing
const (
	// HomingDefaultMagnet is used when homing is on but no magnet strength was granted
	HomingDefaultMagnet = 0.35
)
