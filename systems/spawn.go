package systems

import (
	"github.com/Chao-po/vertical-space-shooter/engine"
	"github.com/Chao-po/vertical-space-shooter/parameter"
	"github.com/Chao-po/vertical-space-shooter/vmath"
)

// SpawnSystem releases a wave whenever the spawn timer exceeds the interval
// Every BossWaveEvery-th wave is a single boss instead of a batch
type SpawnSystem struct {
	rng vmath.Rand
}

func NewSpawnSystem(rng vmath.Rand) *SpawnSystem {
	return &SpawnSystem{rng: rng}
}

func (s *SpawnSystem) Priority() int {
	return parameter.PrioritySpawn
}

func (s *SpawnSystem) Update(r *engine.Run, dt float64) {
	r.SpawnTimer += dt
	if r.SpawnTimer <= r.SpawnInterval {
		return
	}
	s.SpawnWave(r)
	r.Wave++
	r.SpawnTimer = 0
}

// SpawnWave spawns the current wave index without advancing it
func (s *SpawnSystem) SpawnWave(r *engine.Run) {
	if IsBossWave(r.Wave) {
		r.AddEnemy(NewBoss(r.Difficulty, r.Width))
		r.Notify("Boss Incoming!", parameter.ToastBoss)
		r.Log.Debug("boss wave", "wave", r.Wave, "difficulty", r.Difficulty)
		return
	}
	n := BatchSize(r.Difficulty, s.rng)
	for i := 0; i < n; i++ {
		s.SpawnEnemy(r)
	}
}

// SpawnEnemy samples one kind from the active band and adds it
func (s *SpawnSystem) SpawnEnemy(r *engine.Run) {
	kind := KindFor(r.Difficulty, s.rng.Float64())
	r.AddEnemy(NewEnemy(kind, r.Difficulty, r.Width, s.rng))
}

// IsBossWave reports whether wave index w is a boss substitution
func IsBossWave(w int) bool {
	return w > 0 && w%parameter.BossWaveEvery == 0
}
