package parameter

// Spawn placement
const (
	// EnemySpawnY is the vertical spawn line above the playfield
	EnemySpawnY = -60
	// EnemySpawnMarginX keeps spawns off the very edge: x in [margin, width-margin)
	EnemySpawnMarginX = 30
)

// Normal
const (
	NormalSize   = 36
	NormalHP     = 2
	NormalSpeedY = 175.0
	NormalSpeedX = 40.0
)

// Fast
const (
	FastSize   = 32
	FastHP     = 3
	FastSpeedY = 240.0
	FastSpeedX = 60.0
)

// Tank
const (
	TankSize   = 52
	TankHP     = 10
	TankSpeedY = 135.0
)

// Shooter
const (
	ShooterSize   = 42
	ShooterHP     = 4
	ShooterSpeedY = 155.0
	// ShooterFirstShotMin plus up to ShooterFirstShotSpan delays the first volley (ms)
	ShooterFirstShotMin  = 600.0
	ShooterFirstShotSpan = 600.0
	ShooterFireBase      = 1200.0 // ms
	ShooterBulletSpeed   = 190.0
)

// Zigzag
const (
	ZigzagSize      = 34
	ZigzagHP        = 3
	ZigzagSpeedY    = 190.0
	ZigzagAmplitude = 80.0
	// ZigzagFrequency is phase advance per ms
	ZigzagFrequency = 0.005
)

// Splitter and its children
const (
	SplitterSize   = 44
	SplitterHP     = 6
	SplitterSpeedY = 160.0
	// SplitterChildOffset is the horizontal offset of each mini from the splitter position
	SplitterChildOffset = 10.0
	SplitterChildren    = 2

	MiniSize   = 26
	MiniHP     = 1
	MiniSpeedY = 260.0
	MiniSpeedX = 80.0
)

// Charger
const (
	ChargerSize   = 32
	ChargerHP     = 3
	ChargerSpeedY = 260.0
)

// Bomber
const (
	BomberSize   = 36
	BomberHP     = 5
	BomberSpeedY = 130.0
	// BomberFuseMin plus up to BomberFuseSpan ms until detonation
	BomberFuseMin  = 2000.0
	BomberFuseSpan = 1500.0
	// BomberArmedY is the depth a bomber must pass before it may detonate
	BomberArmedY      = 40.0
	BomberRingCount   = 8
	BomberRingSpeed   = 220.0
	BomberRingBulletR = 4.0
)

// Boss
const (
	BossSize = 120
	// BossHPBase plus floor(d*BossHPPerDifficulty)
	BossHPBase          = 120
	BossHPPerDifficulty = 35.0
	BossSpawnY          = -140
	BossSpeedY          = 95.0
	BossSpeedPerDiff    = 10.0
	// BossHoldY stops the boss descent once passed
	BossHoldY       = 40.0
	BossFireBase    = 700.0 // ms
	BossBulletSpeed = 260.0
	// BossWaveEvery substitutes a boss for every Nth wave
	BossWaveEvery = 6
)

// BossSpreadAngles are the rotation offsets of the boss triple shot (radians)
var BossSpreadAngles = [3]float64{-0.18, 0, 0.18}

// Enemy gunfire
const (
	EnemyBulletRadius = 4.0
	// FireCooldownFloor bounds the difficulty reduction of fire cooldowns
	FireCooldownFloor     = 0.55
	FireCooldownPerDiff   = 0.08
	FireCooldownJitterMax = 200.0
	// EnemyFireMinY requires shooters to be on-screen before firing
	EnemyFireMinY = 0.0
)
