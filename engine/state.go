package engine

import "github.com/Chao-po/vertical-space-shooter/engine/fsm"

// State is the top-level run state
type State int

const (
	StateTitle State = iota + 1
	StatePlaying
	StateUpgradePaused
	StateGameOver
	StateRestarting
)

func (s State) String() string {
	switch s {
	case StateTitle:
		return "title"
	case StatePlaying:
		return "playing"
	case StateUpgradePaused:
		return "upgrade-paused"
	case StateGameOver:
		return "game-over"
	case StateRestarting:
		return "restarting"
	default:
		return "unknown"
	}
}

// Ambient reports whether cosmetic systems animate in this state
func (s State) Ambient() bool {
	return s != StateTitle
}

// Events driving the state graph
const (
	evStart fsm.EventType = iota + 1
	evLevelUp
	evChoose
	evPlayerDied
	evRestart
	evBeginRun
)

var stateGraph = []struct {
	from, to State
	ev       fsm.EventType
}{
	{StateTitle, StatePlaying, evStart},
	{StatePlaying, StateUpgradePaused, evLevelUp},
	{StatePlaying, StateGameOver, evPlayerDied},
	{StatePlaying, StateRestarting, evRestart},
	{StateUpgradePaused, StatePlaying, evChoose},
	{StateUpgradePaused, StateRestarting, evRestart},
	{StateGameOver, StateRestarting, evRestart},
	{StateRestarting, StatePlaying, evBeginRun},
}

// newMachine builds the run state graph with g's enter/exit hooks
func newMachine(g *Game) *fsm.Machine[*Game] {
	m := fsm.NewMachine[*Game]()
	nodes := make(map[State]*fsm.Node[*Game])
	for _, s := range []State{StateTitle, StatePlaying, StateUpgradePaused, StateGameOver, StateRestarting} {
		nodes[s] = m.AddState(fsm.StateID(s), s.String())
	}

	nodes[StateUpgradePaused].OnEnter = append(nodes[StateUpgradePaused].OnEnter, (*Game).enterUpgrade)
	nodes[StateUpgradePaused].OnExit = append(nodes[StateUpgradePaused].OnExit, (*Game).exitUpgrade)
	nodes[StateGameOver].OnEnter = append(nodes[StateGameOver].OnEnter, (*Game).enterGameOver)
	nodes[StateRestarting].OnEnter = append(nodes[StateRestarting].OnEnter, (*Game).enterRestarting)

	for _, t := range stateGraph {
		// Graph is static; an error here is a programming mistake
		if err := m.AddTransition(fsm.StateID(t.from), fsm.Transition[*Game]{
			TargetID: fsm.StateID(t.to),
			Event:    t.ev,
		}); err != nil {
			panic(err)
		}
	}

	m.OnTransition = func(from, to fsm.StateID, _ fsm.EventType) {
		g.log.Debug("state transition", "from", State(from).String(), "to", State(to).String())
	}
	return m
}
