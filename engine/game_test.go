package engine

import (
	"errors"
	"math"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/Chao-po/vertical-space-shooter/config"
	"github.com/Chao-po/vertical-space-shooter/input"
	inputmocks "github.com/Chao-po/vertical-space-shooter/input/mocks"
	"github.com/Chao-po/vertical-space-shooter/storage"
	"github.com/Chao-po/vertical-space-shooter/storage/mocks"
	"github.com/Chao-po/vertical-space-shooter/vmath"
)

// keys is a settable input source
type keys struct{ a input.Actions }

func (k *keys) Snapshot() input.Actions { return k.a }

// recorder captures every update it receives
type recorder struct {
	name     string
	priority int
	log      *[]string
	dts      []float64
	fn       func(r *Run)
}

func (s *recorder) Priority() int { return s.priority }

func (s *recorder) Update(r *Run, dt float64) {
	if s.log != nil {
		*s.log = append(*s.log, s.name)
	}
	s.dts = append(s.dts, dt)
	if s.fn != nil {
		s.fn(r)
	}
}

// clock ticks a game with a monotonically increasing timestamp
type clock struct {
	g  *Game
	ts float64
}

func (c *clock) tick(dt float64) {
	c.ts += dt
	c.g.Tick(c.ts)
}

func (c *clock) ticks(n int, dt float64) {
	for i := 0; i < n; i++ {
		c.tick(dt)
	}
}

func testConfig() config.Config {
	cfg := config.Default()
	cfg.ScoreFile = ""
	return cfg
}

// startGame returns a game already in Playing with a settled fade
func startGame(t *testing.T, store storage.ScoreStore, in input.Source) (*Game, *clock) {
	t.Helper()
	g := NewGame(testConfig(), store, in, WithRand(vmath.NewFastRand(7)))
	c := &clock{g: g}
	c.tick(0)
	if !g.Start() {
		t.Fatal("start rejected on title")
	}
	if g.State() != StatePlaying {
		t.Fatalf("state = %v, want playing", g.State())
	}
	return g, c
}

func TestTitleConfirmStartsRun(t *testing.T) {
	in := &keys{}
	g := NewGame(testConfig(), nil, in)
	c := &clock{g: g}

	c.tick(16)
	if g.State() != StateTitle || g.Run() != nil {
		t.Fatalf("expected title with no run, got %v", g.State())
	}

	in.a = input.ActionConfirm
	c.tick(16)
	if g.State() != StatePlaying {
		t.Fatalf("state = %v, want playing", g.State())
	}
	if g.Run() == nil {
		t.Fatal("no run after start")
	}
	if f := g.Fade(); f.Dir != -1 {
		t.Errorf("fade dir = %v, want fading in", f.Dir)
	}
	if g.Run().Toast.Text != "Start!" {
		t.Errorf("toast = %q", g.Run().Toast.Text)
	}
}

func TestConfirmIsEdgeTriggered(t *testing.T) {
	in := &keys{a: input.ActionConfirm}
	g := NewGame(testConfig(), nil, in)
	c := &clock{g: g}
	// confirm already held on the first tick still counts as a press
	c.tick(0)
	if g.State() != StatePlaying {
		t.Fatalf("state = %v, want playing", g.State())
	}
	first := g.Run().ID
	c.ticks(3, 16)
	if g.Run().ID != first {
		t.Error("held confirm must not restart the run")
	}
}

func TestTickDeltaSanitized(t *testing.T) {
	g, _ := startGame(t, nil, nil)
	rec := &recorder{priority: 1}
	g.AddSystem(rec)

	g.Tick(100) // time base already set by startGame at 0
	g.Tick(50)  // backwards
	g.Tick(math.NaN())
	g.Tick(10000) // clamp
	g.Tick(10016)

	want := []float64{100, 0, 0, g.cfg.MaxDeltaMs, 16}
	if len(rec.dts) != len(want) {
		t.Fatalf("dts = %v, want %v", rec.dts, want)
	}
	for i := range want {
		if rec.dts[i] != want[i] {
			t.Errorf("dt[%d] = %v, want %v", i, rec.dts[i], want[i])
		}
	}
}

func TestPipelineRunsInPriorityOrder(t *testing.T) {
	g, c := startGame(t, nil, nil)
	var order []string
	g.AddSystem(&recorder{name: "combat", priority: 70, log: &order})
	g.AddSystem(&recorder{name: "difficulty", priority: 10, log: &order})
	g.AddAmbientSystem(&recorder{name: "stars", priority: 100, log: &order})
	g.AddSystem(&recorder{name: "spawn", priority: 20, log: &order})

	c.tick(16)
	want := []string{"difficulty", "spawn", "combat", "stars"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %s, want %s", i, order[i], want[i])
		}
	}
}

func TestGameOverPersistsExactlyOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockScoreStore(ctrl)
	store.EXPECT().Best().Return(500, nil)
	store.EXPECT().History().Return([]int{500, 100}, nil)
	store.EXPECT().Submit(320).Return(nil).Times(1)

	g, c := startGame(t, store, nil)
	g.Run().Player.HP = 10
	g.Run().Score = 320

	hits := 0
	g.AddSystem(&recorder{priority: 70, fn: func(r *Run) {
		hits++
		r.Player.HP -= 15
	}})

	c.tick(16)
	if g.State() != StateGameOver {
		t.Fatalf("state = %v, want game-over", g.State())
	}
	if snap := g.Snapshot(); snap.HUD.HP != 0 {
		t.Errorf("hud hp = %v, want clamped 0", snap.HUD.HP)
	}
	if _, ok := g.Summary(); ok {
		t.Error("summary exposed before fade-out finished")
	}

	c.ticks(20, 100)
	if hits != 1 {
		t.Errorf("gameplay ran %d times, want 1", hits)
	}
	sum, ok := g.Summary()
	if !ok {
		t.Fatal("summary not exposed after fade-out")
	}
	if sum.Score != 320 || sum.Best != 500 {
		t.Errorf("summary = %+v", sum)
	}
	wantHistory := []int{500, 320, 100}
	for i, v := range wantHistory {
		if sum.History[i] != v {
			t.Errorf("history = %v, want %v", sum.History, wantHistory)
			break
		}
	}
}

func TestRestartFromGameOverBeforeFadePersists(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockScoreStore(ctrl)
	store.EXPECT().Best().Return(0, nil)
	store.EXPECT().History().Return(nil, nil)
	store.EXPECT().Submit(90).Return(nil).Times(1)

	g, c := startGame(t, store, nil)
	g.Run().Score = 90
	g.Run().Player.HP = 0
	c.tick(16)
	if g.State() != StateGameOver {
		t.Fatalf("state = %v, want game-over", g.State())
	}
	old := g.Run().ID

	if !g.Restart() {
		t.Fatal("restart rejected in game-over")
	}
	if _, ok := g.Summary(); !ok {
		t.Error("restart should persist the pending score")
	}
	if g.State() != StateRestarting {
		t.Fatalf("state = %v, want restarting", g.State())
	}

	c.ticks(20, 100)
	if g.State() != StatePlaying {
		t.Fatalf("state = %v, want playing", g.State())
	}
	if g.Run().ID == old {
		t.Error("run was not replaced")
	}
	if g.Run().Score != 0 || g.Run().Level != 1 {
		t.Errorf("new run carried state: score %d level %d", g.Run().Score, g.Run().Level)
	}
}

func TestRestartLiveRunDiscardsScore(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockScoreStore(ctrl)
	store.EXPECT().Best().Return(0, nil)
	store.EXPECT().History().Return(nil, nil)
	store.EXPECT().Submit(gomock.Any()).Times(0)

	in := &keys{}
	g, c := startGame(t, store, in)
	g.Run().Score = 1000

	in.a = input.ActionRestart
	c.tick(16)
	if g.State() != StateRestarting {
		t.Fatalf("state = %v, want restarting", g.State())
	}
	in.a = input.ActionNone
	c.ticks(20, 100)
	if g.State() != StatePlaying || g.Run().Score != 0 {
		t.Errorf("state %v score %d", g.State(), g.Run().Score)
	}
}

func TestLevelUpPausesGameplay(t *testing.T) {
	g, c := startGame(t, nil, nil)
	gameplay := &recorder{priority: 50}
	ambient := &recorder{priority: 100}
	g.AddSystem(gameplay)
	g.AddAmbientSystem(ambient)
	g.Run().LevelUpPending = true

	c.tick(16)
	if g.State() != StateUpgradePaused {
		t.Fatalf("state = %v, want upgrade-paused", g.State())
	}
	if g.Run().LevelUpPending {
		t.Error("pending flag not consumed")
	}

	offer := g.Offer()
	if len(offer) != 3 {
		t.Fatalf("offer size = %d, want 3", len(offer))
	}
	seen := map[string]bool{}
	for _, u := range offer {
		if seen[u.ID] {
			t.Errorf("duplicate offer %s", u.ID)
		}
		seen[u.ID] = true
	}

	c.ticks(5, 16)
	if len(gameplay.dts) != 1 {
		t.Errorf("gameplay ran %d times, want 1", len(gameplay.dts))
	}
	if len(ambient.dts) != 6 {
		t.Errorf("ambient ran %d times, want 6", len(ambient.dts))
	}
}

func TestUpgradeMenuNavigation(t *testing.T) {
	in := &keys{}
	g, c := startGame(t, nil, in)
	g.Run().LevelUpPending = true
	c.tick(16)

	in.a = input.ActionMenuUp
	c.tick(16)
	if g.Selection() != 2 {
		t.Errorf("selection = %d, want wrap to 2", g.Selection())
	}
	in.a = input.ActionNone
	c.tick(16)
	in.a = input.ActionMenuDown
	c.tick(16)
	if g.Selection() != 0 {
		t.Errorf("selection = %d, want 0", g.Selection())
	}

	chosen := g.Offer()[0]
	in.a = input.ActionConfirm
	c.tick(16)
	if g.State() != StatePlaying {
		t.Fatalf("state = %v, want playing", g.State())
	}
	if g.Run().Toast.Text != chosen.Toast {
		t.Errorf("toast = %q, want %q", g.Run().Toast.Text, chosen.Toast)
	}
	if g.Offer() != nil {
		t.Error("offer not cleared on resume")
	}
}

func TestChooseRejectedOutsidePause(t *testing.T) {
	g, _ := startGame(t, nil, nil)
	if g.Choose(0) {
		t.Error("choose accepted while playing")
	}
	g.Run().LevelUpPending = true
	g.Tick(16)
	if g.Choose(3) || g.Choose(-1) {
		t.Error("out of range choice accepted")
	}
	if !g.Choose(1) {
		t.Error("valid choice rejected")
	}
}

func TestStoreFailureDegrades(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockScoreStore(ctrl)
	store.EXPECT().Best().Return(0, errors.New("disk gone"))
	store.EXPECT().History().Return(nil, storage.ErrCorrupt)
	store.EXPECT().Submit(40).Return(errors.New("disk gone"))

	g, c := startGame(t, store, nil)
	if snap := g.Snapshot(); snap.Best != 0 || len(snap.History) != 0 {
		t.Errorf("title data not defaulted: %+v", snap)
	}
	g.Run().Score = 40
	g.Run().Player.HP = -1
	c.ticks(10, 100)

	sum, ok := g.Summary()
	if !ok {
		t.Fatal("summary missing after failed submit")
	}
	if sum.Best != 40 || len(sum.History) != 1 || sum.History[0] != 40 {
		t.Errorf("summary = %+v", sum)
	}
}

func TestRestartRejectedOnTitle(t *testing.T) {
	g := NewGame(testConfig(), nil, nil)
	if g.Restart() {
		t.Error("restart accepted on title")
	}
	g.MoveSelection(1)
	if g.Selection() != 0 {
		t.Error("selection moved outside pause")
	}
}

func TestInputReadOncePerTick(t *testing.T) {
	ctrl := gomock.NewController(t)
	in := inputmocks.NewMockSource(ctrl)
	gomock.InOrder(
		in.EXPECT().Snapshot().Return(input.ActionConfirm),
		in.EXPECT().Snapshot().Return(input.ActionConfirm|input.ActionLeft).Times(2),
	)

	g := NewGame(testConfig(), nil, in)
	c := &clock{g: g}
	c.ticks(3, 16)
	if g.State() != StatePlaying {
		t.Fatalf("state = %v, want playing", g.State())
	}
	if !g.Run().Input.Has(input.ActionLeft) {
		t.Error("run input not updated from snapshot")
	}
}
