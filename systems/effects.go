package systems

import (
	"math"
	"slices"

	"github.com/Chao-po/vertical-space-shooter/component"
	"github.com/Chao-po/vertical-space-shooter/engine"
	"github.com/Chao-po/vertical-space-shooter/parameter"
	"github.com/Chao-po/vertical-space-shooter/vmath"
)

// Explode emits a radial particle burst at center
func Explode(r *engine.Run, rng vmath.Rand, center vmath.Vec2, big bool) {
	count, speedSpan, life, sizeSpan := parameter.ExplosionSmallCount, parameter.ExplosionSmallSpeedSpan,
		parameter.ExplosionSmallLife, parameter.ExplosionSmallSizeSpan
	if big {
		count, speedSpan, life, sizeSpan = parameter.ExplosionBigCount, parameter.ExplosionBigSpeedSpan,
			parameter.ExplosionBigLife, parameter.ExplosionBigSizeSpan
	}
	for i := 0; i < count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		speed := rng.Float64()*speedSpan + parameter.ExplosionSpeedMin
		r.Particles = append(r.Particles, component.Particle{
			Pos:  center,
			Vel:  vmath.FromAngle(angle, speed),
			Life: life,
			Size: rng.Float64()*sizeSpan + parameter.ExplosionSizeMin,
		})
	}
}

// ParticleSystem integrates particles with the frame delta and drops expired ones
type ParticleSystem struct{}

func NewParticleSystem() *ParticleSystem {
	return &ParticleSystem{}
}

func (s *ParticleSystem) Priority() int {
	return parameter.PriorityParticles
}

func (s *ParticleSystem) Update(r *engine.Run, dt float64) {
	for i := range r.Particles {
		p := &r.Particles[i]
		p.Pos = p.Pos.Add(p.Vel.Scale(dt / 1000))
		p.Life -= dt
	}
	r.Particles = slices.DeleteFunc(r.Particles, func(p component.Particle) bool {
		return p.Life <= 0
	})
}

// StarfieldSystem scrolls background stars, seeding the field on first use
type StarfieldSystem struct {
	rng vmath.Rand
}

func NewStarfieldSystem(rng vmath.Rand) *StarfieldSystem {
	return &StarfieldSystem{rng: rng}
}

func (s *StarfieldSystem) Priority() int {
	return parameter.PriorityStars
}

func (s *StarfieldSystem) Update(r *engine.Run, dt float64) {
	if r.Stars == nil {
		r.Stars = NewStarfield(s.rng, r.Width, r.Height, parameter.StarCount)
	}
	for i := range r.Stars {
		st := &r.Stars[i]
		st.Pos.Y += st.Speed * dt / 1000
		if st.Pos.Y > r.Height+parameter.StarWrapMargin {
			*st = s.star(r.Width)
			st.Pos.Y = -parameter.StarWrapMargin
		}
	}
}

func (s *StarfieldSystem) star(width float64) component.Star {
	return component.Star{
		Pos:   vmath.Vec2{X: s.rng.Float64() * width},
		Size:  s.rng.Float64()*parameter.StarSizeSpan + parameter.StarSizeMin,
		Speed: s.rng.Float64()*parameter.StarSpeedSpan + parameter.StarSpeedMin,
	}
}

// NewStarfield scatters n stars over the whole playfield
func NewStarfield(rng vmath.Rand, width, height float64, n int) []component.Star {
	stars := make([]component.Star, n)
	for i := range stars {
		stars[i] = component.Star{
			Pos:   vmath.Vec2{X: rng.Float64() * width, Y: rng.Float64() * height},
			Size:  rng.Float64()*parameter.StarSizeSpan + parameter.StarSizeMin,
			Speed: rng.Float64()*parameter.StarSpeedSpan + parameter.StarSpeedMin,
		}
	}
	return stars
}

// ToastSystem counts the overlay message down
type ToastSystem struct{}

func NewToastSystem() *ToastSystem {
	return &ToastSystem{}
}

func (s *ToastSystem) Priority() int {
	return parameter.PriorityToast
}

func (s *ToastSystem) Update(r *engine.Run, dt float64) {
	if r.Toast.Text == "" {
		return
	}
	r.Toast.Remaining -= dt
	if r.Toast.Remaining <= 0 {
		r.Toast = engine.Toast{}
	}
}
