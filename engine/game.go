// Package engine owns the run, the top-level state machine and the per-tick update order
package engine

import (
	"log/slog"
	"math"

	"github.com/Chao-po/vertical-space-shooter/config"
	"github.com/Chao-po/vertical-space-shooter/engine/fsm"
	"github.com/Chao-po/vertical-space-shooter/input"
	"github.com/Chao-po/vertical-space-shooter/parameter"
	"github.com/Chao-po/vertical-space-shooter/storage"
	"github.com/Chao-po/vertical-space-shooter/upgrade"
	"github.com/Chao-po/vertical-space-shooter/vmath"
)

// Summary is the end-of-run result exposed after the score was submitted
type Summary struct {
	Score     int
	Level     int
	TimeAlive float64 // ms
	Best      int
	History   []int
}

// Game drives runs through the state graph, one Tick per frame
// Not safe for concurrent use; the frame driver owns it
type Game struct {
	cfg   config.Config
	store storage.ScoreStore
	in    input.Source
	rng   vmath.Rand
	log   *slog.Logger

	machine *fsm.Machine[*Game]
	systems pipeline
	ambient pipeline

	run  *Run
	fade Fade

	offer     []upgrade.Upgrade
	selection int

	best    int
	history []int

	summary   Summary
	persisted bool

	lastTs    float64
	hasLastTs bool
	prevInput input.Actions
	frame     uint64
}

// NewGame creates a game on the Title screen
// store and in may be nil: scores are then not persisted and no input is read
func NewGame(cfg config.Config, store storage.ScoreStore, in input.Source, opts ...Option) *Game {
	g := &Game{
		cfg:   cfg,
		store: store,
		in:    in,
		rng:   vmath.NewRand(),
		log:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.loadScores()
	g.machine = newMachine(g)
	if err := g.machine.Init(g, fsm.StateID(StateTitle)); err != nil {
		panic(err)
	}
	return g
}

func (g *Game) loadScores() {
	if g.store == nil {
		return
	}
	best, err := g.store.Best()
	if err != nil {
		g.log.Warn("load best score", "error", err)
		best = 0
	}
	history, err := g.store.History()
	if err != nil {
		g.log.Warn("load score history", "error", err)
		history = nil
	}
	g.best = best
	g.history = history
}

// AddSystem registers a gameplay system, run only while Playing
func (g *Game) AddSystem(s System) {
	g.systems.add(s)
}

// AddAmbientSystem registers a cosmetic system, run in every state except Title
func (g *Game) AddAmbientSystem(s System) {
	g.ambient.add(s)
}

func (g *Game) State() State {
	return State(g.machine.Current())
}

// Run returns the active run, nil on the Title screen
func (g *Game) Run() *Run {
	return g.run
}

// Fade returns the current overlay ramp
func (g *Game) Fade() Fade {
	return g.fade
}

// Offer returns the upgrade choices while paused
func (g *Game) Offer() []upgrade.Upgrade {
	return g.offer
}

func (g *Game) Selection() int {
	return g.selection
}

// Summary returns the result of the last finished run once it was submitted
func (g *Game) Summary() (Summary, bool) {
	return g.summary, g.persisted
}

// Tick advances the game to timestampMs
// The first call only establishes the time base
func (g *Game) Tick(timestampMs float64) {
	dt := g.delta(timestampMs)
	g.frame++

	if action := g.fade.Update(dt); action != ActionNone {
		g.dispatch(action)
	}

	var current input.Actions
	if g.in != nil {
		current = g.in.Snapshot()
	}
	pressed := current.Pressed(g.prevInput)
	g.prevInput = current

	switch g.State() {
	case StateTitle:
		if pressed.Has(input.ActionConfirm) {
			g.Start()
		}
	case StatePlaying:
		if pressed.Has(input.ActionRestart) {
			g.Restart()
			break
		}
		g.run.Input = current
		g.step(dt)
	case StateUpgradePaused:
		switch {
		case pressed.Has(input.ActionRestart):
			g.Restart()
		case pressed.Has(input.ActionConfirm):
			g.Choose(g.selection)
		case pressed.Has(input.ActionMenuUp):
			g.MoveSelection(-1)
		case pressed.Has(input.ActionMenuDown):
			g.MoveSelection(1)
		}
	case StateGameOver:
		if pressed.Has(input.ActionConfirm) || pressed.Has(input.ActionRestart) {
			g.Restart()
		}
	}

	if g.State().Ambient() && g.run != nil {
		g.ambient.update(g.run, dt)
	}
	g.machine.Update(g, dt)
}

// delta returns the sanitized frame delta in ms
func (g *Game) delta(ts float64) float64 {
	if math.IsNaN(ts) || math.IsInf(ts, 0) {
		return 0
	}
	if !g.hasLastTs {
		g.hasLastTs = true
		g.lastTs = ts
		return 0
	}
	dt := ts - g.lastTs
	g.lastTs = ts
	if dt < 0 {
		return 0
	}
	if g.cfg.MaxDeltaMs > 0 && dt > g.cfg.MaxDeltaMs {
		return g.cfg.MaxDeltaMs
	}
	return dt
}

// step runs the gameplay pipeline once, then resolves death before level-up
func (g *Game) step(dt float64) {
	g.systems.update(g.run, dt)

	switch {
	case g.run.Player.Dead():
		g.machine.HandleEvent(g, evPlayerDied)
	case g.run.LevelUpPending:
		g.machine.HandleEvent(g, evLevelUp)
	}
}

// Start begins the first run from the Title screen
func (g *Game) Start() bool {
	if !g.machine.Can(g, evStart) {
		return false
	}
	g.beginRun()
	return g.machine.HandleEvent(g, evStart)
}

// Restart fades out and replaces the run
// Accepted while Playing, UpgradePaused and GameOver
func (g *Game) Restart() bool {
	if !g.machine.Can(g, evRestart) {
		return false
	}
	switch g.State() {
	case StateGameOver:
		if !g.persisted {
			g.persist()
		}
	case StatePlaying, StateUpgradePaused:
		g.run.Log.Info("run abandoned", "score", g.run.Score, "level", g.run.Level)
	}
	return g.machine.HandleEvent(g, evRestart)
}

// MoveSelection moves the upgrade cursor with wrap-around
func (g *Game) MoveSelection(delta int) {
	if g.State() != StateUpgradePaused || len(g.offer) == 0 {
		return
	}
	n := len(g.offer)
	g.selection = ((g.selection+delta)%n + n) % n
}

// Choose applies offer i and resumes play
func (g *Game) Choose(i int) bool {
	if g.State() != StateUpgradePaused || i < 0 || i >= len(g.offer) {
		return false
	}
	chosen := g.offer[i]
	upgrade.Apply(chosen.Effect, &g.run.Player)
	g.run.Notify(chosen.Toast, parameter.UpgradeToastTime)
	g.run.Log.Debug("upgrade chosen", "upgrade", chosen.ID, "level", g.run.Level)
	return g.machine.HandleEvent(g, evChoose)
}

func (g *Game) dispatch(action PendingAction) {
	switch action {
	case ActionPersistScore:
		g.persist()
	case ActionBeginRun:
		g.beginRun()
		g.machine.HandleEvent(g, evBeginRun)
	}
}

// beginRun replaces the run and fades in
func (g *Game) beginRun() {
	g.run = NewRun(g.cfg.Playfield.Width, g.cfg.Playfield.Height, g.log)
	g.run.Notify("Start!", parameter.ToastStart)
	g.fade.Start(1, -1, ActionNone)
	g.offer = nil
	g.selection = 0
	g.summary = Summary{}
	g.persisted = false
	g.run.Log.Info("run started")
}

// persist submits the final score once and exposes the summary
// Store failures degrade to locally computed best and history
func (g *Game) persist() {
	if g.persisted || g.run == nil {
		return
	}
	g.persisted = true
	score := g.run.Score

	if g.store != nil {
		if err := g.store.Submit(score); err != nil {
			g.run.Log.Warn("submit score", "score", score, "error", err)
		}
	}

	if score > g.best {
		g.best = score
	}
	g.history = storage.Rank(append(append([]int(nil), g.history...), score), parameter.HistorySize)

	g.summary = Summary{
		Score:     score,
		Level:     g.run.Level,
		TimeAlive: g.run.TimeAlive,
		Best:      g.best,
		History:   append([]int(nil), g.history...),
	}
	g.run.Log.Info("run ended", "score", score, "level", g.run.Level, "best", g.best)
}

func (g *Game) enterUpgrade() {
	g.run.LevelUpPending = false
	g.offer = upgrade.Draw(g.rng, parameter.UpgradeChoices)
	g.selection = 0
}

func (g *Game) exitUpgrade() {
	g.offer = nil
	g.selection = 0
}

func (g *Game) enterGameOver() {
	g.run.Notify("Game Over!", parameter.ToastGameOver)
	g.fade.Start(0, 1, ActionPersistScore)
}

func (g *Game) enterRestarting() {
	g.fade.Start(g.fade.Alpha, 1, ActionBeginRun)
}
