package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to actions
type KeyTable struct {
	Keys  map[tcell.Key]Actions
	Runes map[rune]Actions
	// Quit keys end the program rather than feeding the simulation
	QuitKeys  map[tcell.Key]bool
	QuitRunes map[rune]bool
}

// DefaultKeyTable binds arrows and WASD to movement and menu navigation
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Actions{
			tcell.KeyLeft:  ActionLeft,
			tcell.KeyRight: ActionRight,
			tcell.KeyUp:    ActionUp | ActionMenuUp,
			tcell.KeyDown:  ActionDown | ActionMenuDown,
			tcell.KeyEnter: ActionConfirm,
		},
		Runes: map[rune]Actions{
			'a': ActionLeft,
			'd': ActionRight,
			'w': ActionUp | ActionMenuUp,
			's': ActionDown | ActionMenuDown,
			' ': ActionFire,
			'r': ActionRestart,
		},
		QuitKeys: map[tcell.Key]bool{
			tcell.KeyCtrlC:  true,
			tcell.KeyCtrlQ:  true,
			tcell.KeyEscape: true,
		},
		QuitRunes: map[rune]bool{
			'q': true,
		},
	}
}

// Lookup resolves a key event; quit is true for program-exit keys
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (a Actions, quit bool) {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		if kt.QuitRunes[r] {
			return ActionNone, true
		}
		return kt.Runes[r], false
	}
	if kt.QuitKeys[ev.Key()] {
		return ActionNone, true
	}
	return kt.Keys[ev.Key()], false
}
