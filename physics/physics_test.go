package physics

import (
	"math"
	"testing"

	"github.com/Chao-po/vertical-space-shooter/vmath"
)

func TestLaneAngles(t *testing.T) {
	single := LaneAngles(1, 0.18)
	if len(single) != 1 || single[0] != Up {
		t.Fatalf("single lane = %v, want [%v]", single, Up)
	}

	three := LaneAngles(3, 0.18)
	if len(three) != 3 {
		t.Fatalf("expected 3 lanes, got %d", len(three))
	}
	want := []float64{Up - 0.18, Up, Up + 0.18}
	for i := range want {
		if math.Abs(three[i]-want[i]) > 1e-12 {
			t.Errorf("lane %d = %v, want %v", i, three[i], want[i])
		}
	}

	// Even counts have no center lane
	four := LaneAngles(4, 0.1)
	if math.Abs((four[1]+four[2])/2-Up) > 1e-12 {
		t.Errorf("four lanes not symmetric around straight up: %v", four)
	}
}

func TestIntegrateDistance(t *testing.T) {
	pos, dist := Integrate(vmath.Vec2{}, vmath.Vec2{X: 300, Y: 400}, 1000)
	if pos.X != 300 || pos.Y != 400 {
		t.Errorf("position = %v, want (300, 400)", pos)
	}
	if math.Abs(dist-500) > 1e-9 {
		t.Errorf("distance = %v, want 500", dist)
	}
}

func TestBounceX(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		vx   float64
		want float64
	}{
		{"inside keeps velocity", 100, -40, -40},
		{"past left edge turns right", -1, -40, 40},
		{"past right edge turns left", 450, 40, -40},
		{"already turning stays", -1, 40, 40},
		{"zero velocity stays zero", -5, 0, 0},
	}
	for _, tt := range tests {
		if got := BounceX(tt.x, 36, tt.vx, 480); got != tt.want {
			t.Errorf("%s: BounceX = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSteerBlends(t *testing.T) {
	vel := vmath.Vec2{X: 0, Y: -600}
	target := vmath.Vec2{X: 100, Y: 0}

	half := Steer(vel, vmath.Vec2{}, target, 600, 0.5)
	if math.Abs(half.X-300) > 1e-9 || math.Abs(half.Y+300) > 1e-9 {
		t.Errorf("half blend = %v, want (300, -300)", half)
	}

	none := Steer(vel, vmath.Vec2{}, target, 600, 0)
	if none != vel {
		t.Errorf("zero magnet changed velocity to %v", none)
	}
}

func TestAimCoincidentIsFinite(t *testing.T) {
	v := Aim(vmath.Vec2{X: 5, Y: 5}, vmath.Vec2{X: 5, Y: 5}, 190)
	if math.IsNaN(v.X) || math.IsNaN(v.Y) {
		t.Fatalf("Aim at self produced NaN: %v", v)
	}
}

func TestRingIsRegular(t *testing.T) {
	vels := Ring(8, 220)
	for i, v := range vels {
		if math.Abs(v.Len()-220) > 1e-9 {
			t.Errorf("bullet %d speed %v, want 220", i, v.Len())
		}
		want := 2 * math.Pi * float64(i) / 8
		got := math.Atan2(v.Y, v.X)
		if got < 0 {
			got += 2 * math.Pi
		}
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("bullet %d angle %v, want %v", i, got, want)
		}
	}
}

func TestNearestSkips(t *testing.T) {
	pts := []vmath.Vec2{{X: 1, Y: 0}, {X: 5, Y: 0}, {X: 2, Y: 0}}
	at := func(i int) vmath.Vec2 { return pts[i] }

	if got := Nearest(vmath.Vec2{}, len(pts), at, nil); got != 0 {
		t.Errorf("Nearest = %d, want 0", got)
	}
	if got := Nearest(vmath.Vec2{}, len(pts), at, func(i int) bool { return i == 0 }); got != 2 {
		t.Errorf("Nearest skipping 0 = %d, want 2", got)
	}
	if got := Nearest(vmath.Vec2{}, 0, at, nil); got != -1 {
		t.Errorf("Nearest of none = %d, want -1", got)
	}
}
