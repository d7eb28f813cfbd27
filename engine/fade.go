package engine

import "github.com/Chao-po/vertical-space-shooter/parameter"

// PendingAction is the one-shot completion of a fade
type PendingAction uint8

const (
	ActionNone PendingAction = iota
	// ActionPersistScore submits the final score once the game-over fade-out ends
	ActionPersistScore
	// ActionBeginRun replaces the run once the restart fade-out ends
	ActionBeginRun
)

func (a PendingAction) String() string {
	switch a {
	case ActionPersistScore:
		return "persist-score"
	case ActionBeginRun:
		return "begin-run"
	default:
		return "none"
	}
}

// Fade is an alpha ramp over the playfield: 0 transparent, 1 black
type Fade struct {
	Alpha   float64
	Dir     float64 // -1 fading in, +1 fading out, 0 idle
	Pending PendingAction
}

// Start sets the ramp origin, direction and completion action
func (f *Fade) Start(alpha, dir float64, pending PendingAction) {
	f.Alpha = alpha
	f.Dir = dir
	f.Pending = pending
}

// Active reports whether the ramp is still moving
func (f *Fade) Active() bool {
	return f.Dir != 0
}

// Update advances the ramp by dt ms
// Returns the pending action exactly once, when the ramp reaches its bound
func (f *Fade) Update(dt float64) PendingAction {
	if f.Dir == 0 {
		return ActionNone
	}
	f.Alpha += f.Dir * parameter.FadeRate * dt

	done := false
	if f.Alpha <= 0 {
		f.Alpha = 0
		done = true
	} else if f.Alpha >= 1 {
		f.Alpha = 1
		done = true
	}
	if !done {
		return ActionNone
	}

	f.Dir = 0
	action := f.Pending
	f.Pending = ActionNone
	return action
}
