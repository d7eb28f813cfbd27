package systems

import (
	"fmt"
	"math"

	"github.com/Chao-po/vertical-space-shooter/engine"
	"github.com/Chao-po/vertical-space-shooter/parameter"
)

// ProgressionSystem grants at most one level per tick and requests the upgrade pause
type ProgressionSystem struct{}

func NewProgressionSystem() *ProgressionSystem {
	return &ProgressionSystem{}
}

func (s *ProgressionSystem) Priority() int {
	return parameter.PriorityProgression
}

func (s *ProgressionSystem) Update(r *engine.Run, _ float64) {
	if r.XP < r.XPNext {
		return
	}
	r.Level++
	r.XP -= r.XPNext
	r.XPNext = NextThreshold(r.XPNext, r.Level)
	r.LevelUpPending = true
	r.Notify(fmt.Sprintf("Level Up! Lv%d", r.Level), parameter.ToastLevelUp)
	r.Log.Debug("level up", "level", r.Level, "xp", r.XP, "next", r.XPNext)
}

// NextThreshold grows the experience requirement after reaching level
func NextThreshold(threshold, level int) int {
	growth := parameter.XPGrowthBase + float64(level-1)*parameter.XPGrowthPerLevel
	return int(math.Floor(float64(threshold)*parameter.XPGrowthFactor + growth))
}
