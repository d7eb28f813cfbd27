package engine

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/Chao-po/vertical-space-shooter/component"
	"github.com/Chao-po/vertical-space-shooter/input"
	"github.com/Chao-po/vertical-space-shooter/parameter"
	"github.com/Chao-po/vertical-space-shooter/vmath"
)

// Run aggregates all state of one play session
// A restart replaces the whole value; nothing carries over
type Run struct {
	ID            uuid.UUID
	Width, Height float64

	Player       component.Player
	Enemies      []component.Enemy
	Bullets      []component.Bullet
	EnemyBullets []component.EnemyBullet
	Particles    []component.Particle
	Stars        []component.Star

	Score  int
	XP     int
	XPNext int
	Level  int

	TimeAlive  float64 // ms
	Difficulty float64

	Wave          int
	SpawnTimer    float64 // ms
	SpawnInterval float64 // ms

	// Input is the action snapshot for the current tick
	Input input.Actions

	// LevelUpPending requests the upgrade pause after the pipeline completes
	LevelUpPending bool

	Toast Toast

	// Log carries the run_id attribute
	Log *slog.Logger

	nextID  component.EntityID
	spawned []component.Enemy
}

// Toast is a transient overlay message
type Toast struct {
	Text      string
	Remaining float64 // ms
}

// Active reports whether the toast should still be shown
func (t Toast) Active() bool {
	return t.Text != "" && t.Remaining > 0
}

// NewRun creates a fresh run for a playfield of the given size
func NewRun(width, height float64, log *slog.Logger) *Run {
	id := uuid.New()
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Run{
		ID:            id,
		Width:         width,
		Height:        height,
		Player:        NewPlayer(width, height),
		XPNext:        parameter.XPFirstThreshold,
		Level:         1,
		Wave:          1,
		SpawnInterval: parameter.SpawnIntervalInitial,
		Log:           log.With("run_id", id.String()),
	}
}

// NewPlayer returns the starting ship centered near the bottom edge
func NewPlayer(width, height float64) component.Player {
	return component.Player{
		Pos: vmath.Vec2{
			X: width/2 - parameter.PlayerOffsetX,
			Y: height - parameter.PlayerOffsetBottom,
		},
		W:            parameter.PlayerWidth,
		H:            parameter.PlayerHeight,
		Speed:        parameter.PlayerSpeed,
		HP:           parameter.PlayerHP,
		MaxHP:        parameter.PlayerHP,
		FireRate:     parameter.PlayerFireRate,
		BulletDamage: parameter.PlayerBulletDamage,
		BulletSpeed:  parameter.PlayerBulletSpeed,
		BulletRadius: parameter.PlayerBulletRadius,
		BulletRange:  parameter.PlayerBulletRange,
		MultiShot:    parameter.PlayerMultiShot,
		Spread:       parameter.PlayerSpread,
	}
}

// NextID allocates an enemy identifier, never zero
func (r *Run) NextID() component.EntityID {
	r.nextID++
	return r.nextID
}

// AddEnemy assigns an id and appends the enemy immediately
func (r *Run) AddEnemy(e component.Enemy) component.EntityID {
	e.ID = r.NextID()
	r.Enemies = append(r.Enemies, e)
	return e.ID
}

// SpawnLater queues an enemy created mid-pipeline; it joins at the next flush
func (r *Run) SpawnLater(e component.Enemy) component.EntityID {
	e.ID = r.NextID()
	r.spawned = append(r.spawned, e)
	return e.ID
}

// Pending returns the queued enemies not yet flushed
func (r *Run) Pending() []component.Enemy {
	return r.spawned
}

// FlushSpawned merges queued enemies into the live collection
func (r *Run) FlushSpawned() {
	if len(r.spawned) == 0 {
		return
	}
	r.Enemies = append(r.Enemies, r.spawned...)
	r.spawned = r.spawned[:0]
}

// Enemy looks up a live collection entry by id, nil when absent
func (r *Run) Enemy(id component.EntityID) *component.Enemy {
	if id == 0 {
		return nil
	}
	for i := range r.Enemies {
		if r.Enemies[i].ID == id {
			return &r.Enemies[i]
		}
	}
	return nil
}

// Notify replaces the current toast
func (r *Run) Notify(text string, ms float64) {
	r.Toast = Toast{Text: text, Remaining: ms}
}
