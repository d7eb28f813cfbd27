package engine

import (
	"math"

	"github.com/Chao-po/vertical-space-shooter/component"
	"github.com/Chao-po/vertical-space-shooter/parameter"
	"github.com/Chao-po/vertical-space-shooter/vmath"
)

// Snapshot is a read-only copy of everything a renderer needs for one frame
type Snapshot struct {
	State     State
	Frame     uint64
	FadeAlpha float64
	RunID     string

	Width, Height float64

	HUD    HUD
	Player vmath.Rect

	Enemies      []EnemyView
	Bullets      []vmath.Circle
	EnemyBullets []vmath.Circle
	Particles    []ParticleView
	Stars        []StarView

	Offer     []Choice
	Selection int

	Toast string

	// Summary is set once the finished run was submitted
	Summary *Summary

	Best    int
	History []int
}

// HUD holds run counters; HP is clamped at zero
type HUD struct {
	Score      int
	Level      int
	XP         int
	XPNext     int
	HP         float64
	MaxHP      float64
	Difficulty float64
	Wave       int
	TimeAlive  float64
}

type EnemyView struct {
	ID    component.EntityID
	Kind  component.Kind
	Rect  vmath.Rect
	HP    int
	MaxHP int
}

// HealthRatio is hp/maxHp in [0,1]
func (v EnemyView) HealthRatio() float64 {
	if v.MaxHP <= 0 {
		return 0
	}
	return vmath.Clamp(float64(v.HP)/float64(v.MaxHP), 0, 1)
}

type ParticleView struct {
	Pos   vmath.Vec2
	Size  float64
	Alpha float64
}

type StarView struct {
	Pos  vmath.Vec2
	Size float64
}

// Choice is one upgrade offer entry
type Choice struct {
	ID          string
	Title       string
	Description string
}

// Snapshot copies the current state for rendering
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		State:     g.State(),
		Frame:     g.frame,
		FadeAlpha: g.fade.Alpha,
		Width:     g.cfg.Playfield.Width,
		Height:    g.cfg.Playfield.Height,
		Selection: g.selection,
		Best:      g.best,
		History:   append([]int(nil), g.history...),
	}
	if g.persisted {
		sum := g.summary
		s.Summary = &sum
	}
	for _, u := range g.offer {
		s.Offer = append(s.Offer, Choice{ID: u.ID, Title: u.Title, Description: u.Description})
	}

	r := g.run
	if r == nil {
		return s
	}
	s.RunID = r.ID.String()
	s.Width, s.Height = r.Width, r.Height
	if r.Toast.Active() {
		s.Toast = r.Toast.Text
	}
	s.HUD = HUD{
		Score:      r.Score,
		Level:      r.Level,
		XP:         r.XP,
		XPNext:     r.XPNext,
		HP:         math.Max(0, r.Player.HP),
		MaxHP:      r.Player.MaxHP,
		Difficulty: r.Difficulty,
		Wave:       r.Wave,
		TimeAlive:  r.TimeAlive,
	}
	s.Player = r.Player.Bounds()

	s.Enemies = make([]EnemyView, 0, len(r.Enemies))
	for i := range r.Enemies {
		e := &r.Enemies[i]
		s.Enemies = append(s.Enemies, EnemyView{
			ID:    e.ID,
			Kind:  e.Kind,
			Rect:  e.Bounds(),
			HP:    max(0, e.HP),
			MaxHP: e.MaxHP,
		})
	}
	s.Bullets = make([]vmath.Circle, 0, len(r.Bullets))
	for i := range r.Bullets {
		s.Bullets = append(s.Bullets, r.Bullets[i].Circle())
	}
	s.EnemyBullets = make([]vmath.Circle, 0, len(r.EnemyBullets))
	for i := range r.EnemyBullets {
		s.EnemyBullets = append(s.EnemyBullets, r.EnemyBullets[i].Circle())
	}
	s.Particles = make([]ParticleView, 0, len(r.Particles))
	for _, p := range r.Particles {
		s.Particles = append(s.Particles, ParticleView{
			Pos:   p.Pos,
			Size:  p.Size,
			Alpha: vmath.Clamp(p.Life/parameter.ParticleFadeLife, 0, 1),
		})
	}
	s.Stars = make([]StarView, 0, len(r.Stars))
	for _, st := range r.Stars {
		s.Stars = append(s.Stars, StarView{Pos: st.Pos, Size: st.Size})
	}
	return s
}
