package systems

import (
	"math"
	"testing"

	"github.com/Chao-po/vertical-space-shooter/component"
	"github.com/Chao-po/vertical-space-shooter/engine"
	"github.com/Chao-po/vertical-space-shooter/vmath"
)

const (
	testWidth  = 480
	testHeight = 720
)

func newRun() *engine.Run {
	return engine.NewRun(testWidth, testHeight, nil)
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

// enemyAt places a bare enemy of kind at pos with the given health
func enemyAt(kind component.Kind, x, y, size float64, hp int) component.Enemy {
	return component.Enemy{
		Kind:  kind,
		Pos:   vmath.Vec2{X: x, Y: y},
		W:     size,
		H:     size,
		HP:    hp,
		MaxHP: hp,
	}
}

// bulletAt places a non-expiring player bullet moving straight up
func bulletAt(x, y float64, pierce int) component.Bullet {
	return component.Bullet{
		Pos:    vmath.Vec2{X: x, Y: y},
		Vel:    vmath.Vec2{Y: -600},
		Radius: 4,
		Pierce: pierce,
		Range:  math.Inf(1),
	}
}

func countKind(enemies []component.Enemy, kind component.Kind) int {
	n := 0
	for _, e := range enemies {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func mustAlive(t *testing.T, e *component.Enemy) {
	t.Helper()
	if !e.Alive() {
		t.Fatalf("%s enemy unexpectedly dead (hp %d)", e.Kind, e.HP)
	}
}
