package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Keyboard is a Source fed by terminal key events
// Terminals report presses and auto-repeat but no releases, so an action stays active
// for the hold window after its most recent press
type Keyboard struct {
	mu     sync.Mutex
	table  *KeyTable
	window time.Duration
	last   map[Actions]time.Time
	now    func() time.Time
}

// NewKeyboard uses DefaultKeyTable when table is nil
func NewKeyboard(table *KeyTable, window time.Duration) *Keyboard {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Keyboard{
		table:  table,
		window: window,
		last:   make(map[Actions]time.Time),
		now:    time.Now,
	}
}

// HandleEvent records key presses; it returns false when the event asks to quit
// Non-key events are ignored
func (k *Keyboard) HandleEvent(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}
	actions, quit := k.table.Lookup(key)
	if quit {
		return false
	}
	if actions == ActionNone {
		return true
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	at := k.now()
	for _, n := range actionNames {
		if actions&n.a != 0 {
			k.last[n.a] = at
		}
	}
	return true
}

// Snapshot returns every action pressed within the hold window
func (k *Keyboard) Snapshot() Actions {
	k.mu.Lock()
	defer k.mu.Unlock()
	now := k.now()
	var out Actions
	for a, at := range k.last {
		if now.Sub(at) < k.window {
			out |= a
		} else {
			delete(k.last, a)
		}
	}
	return out
}

// Reset forgets every held action
func (k *Keyboard) Reset() {
	k.mu.Lock()
	defer k.mu.Unlock()
	clear(k.last)
}
