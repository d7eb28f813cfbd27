package parameter

// Fade overlay
const (
	// FadeRate is alpha change per ms
	FadeRate = 0.0022
)

// Toast durations (ms)
const (
	ToastStart    = 800.0
	ToastLevelUp  = 900.0
	ToastBoss     = 1400.0
	ToastGameOver = 2000.0
)

// HistorySize bounds the persisted best-score list
const HistorySize = 5
