package systems

import (
	"math"

	"github.com/Chao-po/vertical-space-shooter/component"
	"github.com/Chao-po/vertical-space-shooter/parameter"
	"github.com/Chao-po/vertical-space-shooter/vmath"
)

// archetype is the unscaled base record of a kind
type archetype struct {
	size   float64
	hp     int
	speedY float64
	speedX float64 // magnitude; sign is drawn at spawn
}

var archetypes = map[component.Kind]archetype{
	component.KindNormal:   {parameter.NormalSize, parameter.NormalHP, parameter.NormalSpeedY, parameter.NormalSpeedX},
	component.KindFast:     {parameter.FastSize, parameter.FastHP, parameter.FastSpeedY, parameter.FastSpeedX},
	component.KindTank:     {parameter.TankSize, parameter.TankHP, parameter.TankSpeedY, 0},
	component.KindShooter:  {parameter.ShooterSize, parameter.ShooterHP, parameter.ShooterSpeedY, 0},
	component.KindZigzag:   {parameter.ZigzagSize, parameter.ZigzagHP, parameter.ZigzagSpeedY, 0},
	component.KindSplitter: {parameter.SplitterSize, parameter.SplitterHP, parameter.SplitterSpeedY, 0},
	component.KindMini:     {parameter.MiniSize, parameter.MiniHP, parameter.MiniSpeedY, parameter.MiniSpeedX},
	component.KindCharger:  {parameter.ChargerSize, parameter.ChargerHP, parameter.ChargerSpeedY, 0},
	component.KindBomber:   {parameter.BomberSize, parameter.BomberHP, parameter.BomberSpeedY, 0},
}

// ScaledHP rounds base*(1+d*boost)
func ScaledHP(base int, d float64) int {
	return int(math.Round(float64(base) * (1 + d*parameter.HPBoostPerDifficulty)))
}

// SpeedBoost is the spawn-time speed multiplier at difficulty d
func SpeedBoost(d float64) float64 {
	return 1 + d*parameter.SpeedBoostPerDifficulty
}

// NewEnemy instantiates kind at a random column on the spawn line
// Bosses are built by NewBoss; KindBoss here falls back to normal
func NewEnemy(kind component.Kind, d, width float64, rng vmath.Rand) component.Enemy {
	a, ok := archetypes[kind]
	if !ok {
		kind = component.KindNormal
		a = archetypes[kind]
	}

	x := rng.Float64()*(width-2*parameter.EnemySpawnMarginX) + parameter.EnemySpawnMarginX
	boost := SpeedBoost(d)

	hp := ScaledHP(a.hp, d)
	if kind == component.KindMini {
		hp = parameter.MiniHP
	}

	e := component.Enemy{
		Kind:  kind,
		Pos:   vmath.Vec2{X: x, Y: parameter.EnemySpawnY},
		W:     a.size,
		H:     a.size,
		Vel:   vmath.Vec2{Y: a.speedY * boost},
		HP:    hp,
		MaxHP: hp,
	}
	if a.speedX != 0 {
		e.Vel.X = vmath.SignOf(rng) * a.speedX * boost
	}

	switch kind {
	case component.KindZigzag:
		e.Zigzag = component.ZigzagMotion{
			BaseX:     x,
			Phase:     rng.Float64() * 2 * math.Pi,
			Amplitude: parameter.ZigzagAmplitude,
			Frequency: parameter.ZigzagFrequency,
		}
	case component.KindShooter:
		e.Gun.Cooldown = vmath.Range(rng, parameter.ShooterFirstShotMin, parameter.ShooterFirstShotMin+parameter.ShooterFirstShotSpan)
	case component.KindBomber:
		e.Fuse.Countdown = vmath.Range(rng, parameter.BomberFuseMin, parameter.BomberFuseMin+parameter.BomberFuseSpan)
	}
	return e
}

// NewBoss centers a boss above the playfield; its speed ignores the spawn boost
func NewBoss(d, width float64) component.Enemy {
	hp := parameter.BossHPBase + int(math.Floor(d*parameter.BossHPPerDifficulty))
	return component.Enemy{
		Kind:  component.KindBoss,
		Pos:   vmath.Vec2{X: width/2 - parameter.BossSize/2, Y: parameter.BossSpawnY},
		W:     parameter.BossSize,
		H:     parameter.BossSize,
		Vel:   vmath.Vec2{Y: parameter.BossSpeedY + d*parameter.BossSpeedPerDiff},
		HP:    hp,
		MaxHP: hp,
	}
}

// NewMinis splits a dead splitter into its children around the death position
func NewMinis(parent *component.Enemy, d, width float64, rng vmath.Rand) []component.Enemy {
	minis := make([]component.Enemy, 0, parameter.SplitterChildren)
	for i := 0; i < parameter.SplitterChildren; i++ {
		m := NewEnemy(component.KindMini, d, width, rng)
		offset := parameter.SplitterChildOffset
		if i == 0 {
			offset = -offset
		}
		m.Pos = vmath.Vec2{X: parent.Pos.X + offset, Y: parent.Pos.Y}
		minis = append(minis, m)
	}
	return minis
}
