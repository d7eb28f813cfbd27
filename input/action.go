// Package input turns device events into the logical action set read by the simulation once per tick
package input

import "strings"

//go:generate go tool mockgen -destination=./mocks/source_mock.go -package=mocks . Source

// Actions is a bit set of logical actions
type Actions uint16

const (
	ActionLeft Actions = 1 << iota
	ActionRight
	ActionUp
	ActionDown
	ActionFire
	ActionMenuUp
	ActionMenuDown
	ActionConfirm
	ActionRestart

	ActionNone Actions = 0
)

var actionNames = []struct {
	a    Actions
	name string
}{
	{ActionLeft, "left"},
	{ActionRight, "right"},
	{ActionUp, "up"},
	{ActionDown, "down"},
	{ActionFire, "fire"},
	{ActionMenuUp, "menu-up"},
	{ActionMenuDown, "menu-down"},
	{ActionConfirm, "confirm"},
	{ActionRestart, "restart"},
}

// Has reports whether every action in mask is active
func (a Actions) Has(mask Actions) bool {
	return a&mask == mask && mask != 0
}

// Pressed returns actions active now that were not active in prev
func (a Actions) Pressed(prev Actions) Actions {
	return a &^ prev
}

func (a Actions) String() string {
	if a == ActionNone {
		return "none"
	}
	var parts []string
	for _, n := range actionNames {
		if a&n.a != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// Source yields the current action snapshot; the simulation reads it once per tick
type Source interface {
	Snapshot() Actions
}

// Static is a Source that always reports the same actions
type Static Actions

func (s Static) Snapshot() Actions { return Actions(s) }
