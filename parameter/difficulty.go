package parameter

// Difficulty curve
const (
	DifficultyMax = 8.0
	// DifficultyTimeScale is survival ms per difficulty point
	DifficultyTimeScale = 45000.0
	DifficultyPerLevel  = 0.28

	// Enemy stat scaling at spawn time
	HPBoostPerDifficulty    = 0.26
	SpeedBoostPerDifficulty = 0.20
)

// Spawn pacing
const (
	// SpawnIntervalInitial is the interval before the first difficulty update (ms)
	SpawnIntervalInitial = 1400.0
	SpawnIntervalBase    = 1200.0
	SpawnIntervalPerDiff = 220.0
	SpawnIntervalMin     = 500.0

	BatchPerDifficulty = 0.8
	BatchMax           = 7
	// BatchBonusChance adds one extra enemy to a batch
	BatchBonusChance = 0.5
)
