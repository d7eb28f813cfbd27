package systems

import (
	"math"

	"github.com/Chao-po/vertical-space-shooter/component"
	"github.com/Chao-po/vertical-space-shooter/engine"
	"github.com/Chao-po/vertical-space-shooter/parameter"
	"github.com/Chao-po/vertical-space-shooter/vmath"
)

// DifficultySystem advances survival time and derives the difficulty scalar and spawn pacing
type DifficultySystem struct{}

func NewDifficultySystem() *DifficultySystem {
	return &DifficultySystem{}
}

func (s *DifficultySystem) Priority() int {
	return parameter.PriorityDifficulty
}

func (s *DifficultySystem) Update(r *engine.Run, dt float64) {
	r.TimeAlive += dt
	r.Difficulty = Difficulty(r.TimeAlive, r.Level)
	r.SpawnInterval = SpawnInterval(r.Difficulty)
}

// Difficulty maps survival ms and level to the capped difficulty scalar
func Difficulty(timeAlive float64, level int) float64 {
	d := timeAlive/parameter.DifficultyTimeScale + float64(level-1)*parameter.DifficultyPerLevel
	return math.Min(parameter.DifficultyMax, d)
}

// SpawnInterval is the wave period in ms
func SpawnInterval(d float64) float64 {
	return math.Max(parameter.SpawnIntervalMin, parameter.SpawnIntervalBase-d*parameter.SpawnIntervalPerDiff)
}

// BatchSize is the number of enemies in a regular wave
func BatchSize(d float64, rng vmath.Rand) int {
	n := 1 + int(math.Floor(d*parameter.BatchPerDifficulty))
	if vmath.Chance(rng, parameter.BatchBonusChance) {
		n++
	}
	return min(parameter.BatchMax, n)
}

// band is a cumulative breakpoint table; the last kind takes the remainder
type band struct {
	below float64
	cuts  []float64
	kinds []component.Kind
}

var (
	bandKindsEarly = []component.Kind{component.KindNormal, component.KindFast}
	bandKindsMid   = []component.Kind{
		component.KindNormal, component.KindFast, component.KindTank,
		component.KindShooter, component.KindZigzag,
	}
	bandKindsLate = []component.Kind{
		component.KindNormal, component.KindFast, component.KindTank, component.KindShooter,
		component.KindZigzag, component.KindSplitter, component.KindCharger, component.KindBomber,
	}
)

var bands = []band{
	{1, []float64{0.7}, bandKindsEarly},
	{2, []float64{0.45, 0.65, 0.78, 0.90}, bandKindsMid},
	{3, []float64{0.28, 0.48, 0.62, 0.76, 0.86, 0.93, 0.97}, bandKindsLate},
	{5, []float64{0.25, 0.45, 0.60, 0.75, 0.84, 0.90, 0.95}, bandKindsLate},
	{math.Inf(1), []float64{0.22, 0.40, 0.58, 0.73, 0.82, 0.88, 0.94}, bandKindsLate},
}

// bandFor returns the weight table active at difficulty d
func bandFor(d float64) band {
	for _, b := range bands {
		if d < b.below {
			return b
		}
	}
	return bands[len(bands)-1]
}

// KindFor maps a uniform sample u in [0,1) through the band for d
func KindFor(d, u float64) component.Kind {
	b := bandFor(d)
	for i, cut := range b.cuts {
		if u < cut {
			return b.kinds[i]
		}
	}
	return b.kinds[len(b.kinds)-1]
}

// NormalShare is the probability of a normal enemy at difficulty d
func NormalShare(d float64) float64 {
	return bandFor(d).cuts[0]
}
