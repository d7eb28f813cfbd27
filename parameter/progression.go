package parameter

// Experience curve
const (
	XPFirstThreshold = 100
	XPGrowthFactor   = 1.6
	XPGrowthBase     = 30
	XPGrowthPerLevel = 10

	// UpgradeChoices is the number of distinct upgrades offered per level-up
	UpgradeChoices = 3
)

// Upgrade limits
const (
	MultiShotCap     = 7
	FireRateFloor    = 60.0
	MagnetCap        = 0.85
	MagnetUnlock     = 0.35
	SpreadFloor      = 0.06
	BulletRadiusCap  = 12.0
	UpgradeToastTime = 900.0
)
