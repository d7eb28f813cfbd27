package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newTestKeyboard(window time.Duration) (*Keyboard, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	kb := NewKeyboard(nil, window)
	kb.now = clock.now
	return kb, clock
}

func TestKeyboardHoldWindow(t *testing.T) {
	kb, clock := newTestKeyboard(100 * time.Millisecond)

	kb.HandleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	if !kb.Snapshot().Has(ActionLeft) {
		t.Fatal("left not active right after press")
	}

	clock.t = clock.t.Add(60 * time.Millisecond)
	if !kb.Snapshot().Has(ActionLeft) {
		t.Error("left should still be held inside window")
	}

	clock.t = clock.t.Add(60 * time.Millisecond)
	if kb.Snapshot().Has(ActionLeft) {
		t.Error("left should be released after window")
	}
}

func TestKeyboardRunesAndCase(t *testing.T) {
	kb, _ := newTestKeyboard(time.Second)

	kb.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModShift))
	kb.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))

	got := kb.Snapshot()
	want := ActionUp | ActionMenuUp | ActionFire
	if got != want {
		t.Errorf("snapshot = %v, want %v", got, want)
	}
}

func TestKeyboardQuitKeys(t *testing.T) {
	kb, _ := newTestKeyboard(time.Second)

	if !kb.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)) {
		t.Error("enter should not quit")
	}
	if kb.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)) {
		t.Error("ctrl+c should quit")
	}
	if kb.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("q should quit")
	}
	if !kb.HandleEvent(tcell.NewEventResize(80, 24)) {
		t.Error("resize should be ignored")
	}
}

func TestActionsPressedEdges(t *testing.T) {
	prev := ActionFire | ActionConfirm
	now := ActionFire | ActionMenuDown
	if got := now.Pressed(prev); got != ActionMenuDown {
		t.Errorf("Pressed = %v, want menu-down", got)
	}
	if ActionNone.Has(ActionNone) {
		t.Error("empty mask should never be held")
	}
}

func TestActionsString(t *testing.T) {
	if s := (ActionLeft | ActionRestart).String(); s != "left|restart" {
		t.Errorf("String = %q", s)
	}
	if s := ActionNone.String(); s != "none" {
		t.Errorf("String = %q", s)
	}
}

func TestKeyboardReset(t *testing.T) {
	kb, _ := newTestKeyboard(time.Second)
	kb.HandleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	kb.Reset()
	if kb.Snapshot() != ActionNone {
		t.Error("Reset should clear held actions")
	}
}
