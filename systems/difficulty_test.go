package systems

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/Chao-po/vertical-space-shooter/component"
	"github.com/Chao-po/vertical-space-shooter/vmath"
)

func TestDifficultyCurve(t *testing.T) {
	tests := []struct {
		name  string
		time  float64
		level int
		want  float64
	}{
		{"fresh run", 0, 1, 0},
		{"one time unit", 45000, 1, 1},
		{"level bonus", 0, 3, 0.56},
		{"mixed", 90000, 2, 2.28},
		{"capped", 1e9, 50, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Difficulty(tt.time, tt.level); !approx(got, tt.want) {
				t.Errorf("Difficulty(%v, %d) = %v, want %v", tt.time, tt.level, got, tt.want)
			}
		})
	}
}

func TestDifficultyMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		t1 := rapid.Float64Range(0, 1e6).Draw(t, "t1")
		dt := rapid.Float64Range(0, 1e6).Draw(t, "dt")
		l1 := rapid.IntRange(1, 40).Draw(t, "l1")
		dl := rapid.IntRange(0, 5).Draw(t, "dl")
		if Difficulty(t1+dt, l1+dl) < Difficulty(t1, l1) {
			t.Fatalf("difficulty decreased from (%v,%d) to (%v,%d)", t1, l1, t1+dt, l1+dl)
		}
	})
}

func TestDifficultySystemAccumulatesAndResets(t *testing.T) {
	s := NewDifficultySystem()
	r := newRun()
	prev := r.Difficulty
	for i := 0; i < 500; i++ {
		s.Update(r, 250)
		if r.Difficulty < prev {
			t.Fatalf("difficulty decreased at tick %d", i)
		}
		prev = r.Difficulty
	}
	if !approx(r.TimeAlive, 125000) {
		t.Errorf("time alive = %v, want 125000", r.TimeAlive)
	}
	if r.SpawnInterval != SpawnInterval(r.Difficulty) {
		t.Errorf("spawn interval not derived: %v", r.SpawnInterval)
	}

	fresh := newRun()
	if fresh.Difficulty != 0 || fresh.TimeAlive != 0 {
		t.Errorf("new run not reset: d=%v t=%v", fresh.Difficulty, fresh.TimeAlive)
	}
}

func TestSpawnInterval(t *testing.T) {
	tests := []struct {
		d    float64
		want float64
	}{
		{0, 1200},
		{1, 980},
		{3, 540},
		{4, 500},
		{8, 500},
	}
	for _, tt := range tests {
		if got := SpawnInterval(tt.d); !approx(got, tt.want) {
			t.Errorf("SpawnInterval(%v) = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestBatchSize(t *testing.T) {
	tests := []struct {
		name string
		d    float64
		roll float64
		want int
	}{
		{"start no bonus", 0, 0.9, 1},
		{"start bonus", 0, 0.1, 2},
		{"mid", 2.5, 0.9, 3},
		{"capped", 8, 0.1, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := &vmath.ScriptedRand{Values: []float64{tt.roll}}
			if got := BatchSize(tt.d, rng); got != tt.want {
				t.Errorf("BatchSize(%v) = %d, want %d", tt.d, got, tt.want)
			}
		})
	}
}

func TestKindForBands(t *testing.T) {
	tests := []struct {
		d    float64
		u    float64
		want component.Kind
	}{
		{0, 0.69, component.KindNormal},
		{0, 0.70, component.KindFast},
		{0.99, 0.99, component.KindFast},
		{1, 0.44, component.KindNormal},
		{1.5, 0.70, component.KindTank},
		{1.5, 0.85, component.KindShooter},
		{1.5, 0.95, component.KindZigzag},
		{2.5, 0.90, component.KindSplitter},
		{2.5, 0.95, component.KindCharger},
		{2.5, 0.98, component.KindBomber},
		{4, 0.87, component.KindSplitter},
		{6, 0.93, component.KindCharger},
		{8, 0.999, component.KindBomber},
	}
	for _, tt := range tests {
		if got := KindFor(tt.d, tt.u); got != tt.want {
			t.Errorf("KindFor(%v, %v) = %s, want %s", tt.d, tt.u, got, tt.want)
		}
	}
}

func TestNormalShareDecreases(t *testing.T) {
	ds := []float64{0, 1.5, 2.5, 4, 6}
	for i := 1; i < len(ds); i++ {
		if NormalShare(ds[i]) >= NormalShare(ds[i-1]) {
			t.Errorf("normal share did not decrease from d=%v to d=%v", ds[i-1], ds[i])
		}
	}
}

func TestKindForNeverBossOrMini(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		d := rapid.Float64Range(0, 8).Draw(t, "d")
		u := rapid.Float64Range(0, 0.999999).Draw(t, "u")
		k := KindFor(d, u)
		if k == component.KindBoss || k == component.KindMini {
			t.Fatalf("band produced %s", k)
		}
	})
}
