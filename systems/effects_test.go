package systems

import (
	"testing"

	"github.com/Chao-po/vertical-space-shooter/component"
	"github.com/Chao-po/vertical-space-shooter/vmath"
)

func TestParticlesExpire(t *testing.T) {
	s := NewParticleSystem()
	r := newRun()
	r.Particles = []component.Particle{
		{Pos: vmath.Vec2{X: 10, Y: 10}, Vel: vmath.Vec2{X: 100}, Life: 20, Size: 1},
		{Pos: vmath.Vec2{X: 10, Y: 10}, Vel: vmath.Vec2{Y: 100}, Life: 650, Size: 1},
	}
	s.Update(r, 100)
	if len(r.Particles) != 1 {
		t.Fatalf("particles = %d, want 1", len(r.Particles))
	}
	p := r.Particles[0]
	if p.Life != 550 || !approx(p.Pos.Y, 20) {
		t.Errorf("particle = %+v", p)
	}
}

func TestExplodeBurstBounds(t *testing.T) {
	r := newRun()
	Explode(r, vmath.NewFastRand(11), vmath.Vec2{X: 50, Y: 50}, true)
	if len(r.Particles) != 50 {
		t.Fatalf("big burst = %d, want 50", len(r.Particles))
	}
	for _, p := range r.Particles {
		speed := p.Vel.Len()
		if speed < 90 || speed >= 430 {
			t.Errorf("speed %v outside [90, 430)", speed)
		}
		if p.Size < 1 || p.Size >= 4.2 || p.Life != 920 {
			t.Errorf("particle = %+v", p)
		}
	}
}

func TestStarfieldSeedsAndWraps(t *testing.T) {
	s := NewStarfieldSystem(vmath.NewFastRand(2))
	r := newRun()

	s.Update(r, 0)
	if len(r.Stars) != 80 {
		t.Fatalf("stars = %d, want 80", len(r.Stars))
	}
	r.Stars[0].Pos.Y = testHeight + 9
	r.Stars[0].Speed = 60
	s.Update(r, 100)
	if r.Stars[0].Pos.Y != -10 {
		t.Errorf("star y = %v, want respawn at -10", r.Stars[0].Pos.Y)
	}
	for _, st := range r.Stars {
		if st.Speed < 20 || st.Speed >= 60 {
			t.Errorf("star speed %v outside [20, 60)", st.Speed)
		}
	}
}

func TestToastCountdown(t *testing.T) {
	s := NewToastSystem()
	r := newRun()
	r.Notify("Boss Incoming!", 1400)

	s.Update(r, 1000)
	if !r.Toast.Active() {
		t.Fatal("toast expired early")
	}
	s.Update(r, 400)
	if r.Toast.Active() || r.Toast.Text != "" {
		t.Errorf("toast = %+v, want cleared", r.Toast)
	}
}
