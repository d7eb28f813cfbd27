// Package upgrade describes level-up rewards as plain values applied to the player by a single function
package upgrade

import (
	"math"

	"github.com/Chao-po/vertical-space-shooter/component"
	"github.com/Chao-po/vertical-space-shooter/parameter"
	"github.com/Chao-po/vertical-space-shooter/vmath"
)

// EffectKind selects the stat an upgrade mutates
type EffectKind uint8

const (
	EffectMultiShot EffectKind = iota
	EffectFireRate
	EffectDamage
	EffectBulletSpeed
	EffectHomingUnlock
	EffectHomingStrength
	EffectMaxHP
	EffectHeal
	EffectMoveSpeed
	EffectSpread
	EffectBigBullet
	EffectPierce
	EffectRegen
)

// Effect is a value-described stat change
// Amount is the signed delta; Limit is the cap or floor where the kind has one
type Effect struct {
	Kind   EffectKind
	Amount float64
	Limit  float64
}

// Upgrade is one entry of the level-up pool
type Upgrade struct {
	ID          string
	Title       string
	Description string
	// Toast is shown after the upgrade is applied
	Toast  string
	Effect Effect
}

var pool = []Upgrade{
	{"ms_plus", "Multi-shot +1", "One more bullet lane per volley", "Firepower up: multi-shot +1",
		Effect{EffectMultiShot, 1, parameter.MultiShotCap}},
	{"firerate_up", "Fire rate up", "Fire cooldown -25ms", "Fire rate up!",
		Effect{EffectFireRate, -25, parameter.FireRateFloor}},
	{"damage_up", "Damage +2", "Each bullet deals 2 more damage", "Damage up!",
		Effect{EffectDamage, 2, 0}},
	{"bullet_speed", "Bullet speed +", "Bullet speed +180", "Bullet speed up!",
		Effect{EffectBulletSpeed, 180, 0}},
	{"homing_unlock", "Homing bullets", "Bullets seek the nearest enemy", "Homing unlocked!",
		Effect{EffectHomingUnlock, parameter.MagnetUnlock, 0}},
	{"homing_stronger", "Stronger homing", "Homing bullets turn harder", "Homing strengthened!",
		Effect{EffectHomingStrength, 0.15, parameter.MagnetCap}},
	{"hp_up", "Max HP +30", "Raise max HP and heal by the same amount", "Max HP up!",
		Effect{EffectMaxHP, 30, 0}},
	{"heal", "Heal 35 HP", "Restore health now", "Healed +35",
		Effect{EffectHeal, 35, 0}},
	{"move_speed", "Move speed +", "Move speed +80", "Move speed up!",
		Effect{EffectMoveSpeed, 80, 0}},
	{"spread_tight", "Tighter spread", "Spread angle -0.04", "Spread tightened!",
		Effect{EffectSpread, -0.04, parameter.SpreadFloor}},
	{"bullet_big", "Big bullets", "Bullet size +1 and damage +1", "Big bullets!",
		Effect{EffectBigBullet, 1, parameter.BulletRadiusCap}},
	{"pierce", "Piercing", "Bullets pass through one more enemy", "Pierce +1!",
		Effect{EffectPierce, 1, 0}},
	{"regen", "Regeneration", "Recover 2 HP per second", "Regen up!",
		Effect{EffectRegen, 2, 0}},
}

// Pool returns a copy of the full upgrade pool
func Pool() []Upgrade {
	out := make([]Upgrade, len(pool))
	copy(out, pool)
	return out
}

// Draw samples n distinct upgrades without replacement
// n is capped at the pool size
func Draw(rng vmath.Rand, n int) []Upgrade {
	candidates := Pool()
	if n > len(candidates) {
		n = len(candidates)
	}
	// Partial Fisher-Yates
	for i := 0; i < n; i++ {
		j := i + vmath.Intn(rng, len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
	}
	return candidates[:n]
}

// Apply mutates the player according to the effect
func Apply(e Effect, p *component.Player) {
	switch e.Kind {
	case EffectMultiShot:
		p.MultiShot = int(math.Min(e.Limit, float64(p.MultiShot)+e.Amount))
	case EffectFireRate:
		p.FireRate = math.Max(e.Limit, p.FireRate+e.Amount)
	case EffectDamage:
		p.BulletDamage += int(e.Amount)
	case EffectBulletSpeed:
		p.BulletSpeed += e.Amount
	case EffectHomingUnlock:
		p.Homing = true
		p.Magnet = math.Max(p.Magnet, e.Amount)
	case EffectHomingStrength:
		p.Homing = true
		p.Magnet = math.Min(e.Limit, p.Magnet+e.Amount)
	case EffectMaxHP:
		p.MaxHP += e.Amount
		p.HP += e.Amount
	case EffectHeal:
		p.Heal(e.Amount)
	case EffectMoveSpeed:
		p.Speed += e.Amount
	case EffectSpread:
		p.Spread = math.Max(e.Limit, p.Spread+e.Amount)
	case EffectBigBullet:
		p.BulletRadius = math.Min(e.Limit, p.BulletRadius+e.Amount)
		p.BulletDamage++
	case EffectPierce:
		p.Pierce += int(e.Amount)
	case EffectRegen:
		p.Regen += e.Amount
	}
}
