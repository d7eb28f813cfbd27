// Package render draws engine snapshots onto a tcell screen, scaling playfield pixels to cells
package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/Chao-po/vertical-space-shooter/component"
	"github.com/Chao-po/vertical-space-shooter/engine"
	"github.com/Chao-po/vertical-space-shooter/vmath"
)

// hudRows is the number of rows above the playfield
const hudRows = 1

// Terminal is a pull-based renderer: call Draw once per tick after Game.Tick
type Terminal struct {
	screen tcell.Screen

	cols, rows int
	sx, sy     float64 // cells per pixel

	bright float64 // 1 - fade alpha
	bg     tcell.Style
}

func NewTerminal(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Draw renders one frame and shows it
func (t *Terminal) Draw(s engine.Snapshot) {
	t.layout(s.Width, s.Height)
	t.bright = 1 - vmath.Clamp(s.FadeAlpha, 0, 1)
	t.bg = tcell.StyleDefault.Background(RgbBackground.Scale(t.bright).Color())

	t.screen.Clear()
	for y := 0; y < t.rows; y++ {
		for x := 0; x < t.cols; x++ {
			t.screen.SetContent(x, y, ' ', nil, t.bg)
		}
	}

	if s.State == engine.StateTitle {
		t.drawTitle(s)
		t.screen.Show()
		return
	}

	t.drawStars(s)
	t.drawEnemies(s)
	t.drawShots(s)
	t.drawParticles(s)
	t.drawPlayer(s)
	t.drawBossBar(s)
	t.drawHUD(s)

	switch s.State {
	case engine.StateUpgradePaused:
		t.drawUpgrade(s)
	case engine.StateGameOver:
		t.drawGameOver(s)
	}
	if s.Toast != "" {
		t.center(t.rows/3, s.Toast, t.fg(RgbToast).Bold(true))
	}
	t.screen.Show()
}

func (t *Terminal) layout(width, height float64) {
	t.cols, t.rows = t.screen.Size()
	field := t.rows - hudRows
	if width <= 0 || height <= 0 || field <= 0 {
		t.sx, t.sy = 0, 0
		return
	}
	t.sx = float64(t.cols) / width
	t.sy = float64(field) / height
}

// Cell maps a playfield point to a screen cell
func (t *Terminal) Cell(p vmath.Vec2) (int, int) {
	return int(math.Floor(p.X * t.sx)), hudRows + int(math.Floor(p.Y*t.sy))
}

func (t *Terminal) inField(x, y int) bool {
	return x >= 0 && x < t.cols && y >= hudRows && y < t.rows
}

// fg dims c by the fade and applies it as foreground
func (t *Terminal) fg(c RGB) tcell.Style {
	return t.bg.Foreground(c.Scale(t.bright).Color())
}

func (t *Terminal) put(x, y int, r rune, style tcell.Style) {
	if t.inField(x, y) {
		t.screen.SetContent(x, y, r, nil, style)
	}
}

// fillRect covers at least one cell for any non-empty rect
func (t *Terminal) fillRect(r vmath.Rect, glyph rune, style tcell.Style) {
	x0, y0 := t.Cell(vmath.Vec2{X: r.X, Y: r.Y})
	x1 := int(math.Ceil((r.X+r.W)*t.sx)) - 1
	y1 := hudRows + int(math.Ceil((r.Y+r.H)*t.sy)) - 1
	x1, y1 = max(x0, x1), max(y0, y1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			t.put(x, y, glyph, style)
		}
	}
}

func (t *Terminal) text(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		if x+i >= 0 && x+i < t.cols && y >= 0 && y < t.rows {
			t.screen.SetContent(x+i, y, r, nil, style)
		}
	}
}

func (t *Terminal) center(y int, s string, style tcell.Style) {
	t.text((t.cols-len([]rune(s)))/2, y, s, style)
}

func (t *Terminal) drawStars(s engine.Snapshot) {
	for _, st := range s.Stars {
		x, y := t.Cell(st.Pos)
		glyph := '.'
		if st.Size > 1.5 {
			glyph = '+'
		}
		// Bigger stars read brighter
		t.put(x, y, glyph, t.fg(RgbStar.Scale(0.15+st.Size/4)))
	}
}

func (t *Terminal) drawEnemies(s engine.Snapshot) {
	for _, e := range s.Enemies {
		t.fillRect(e.Rect, KindGlyph(e.Kind), t.fg(kindColor(e.Kind)))
	}
}

func (t *Terminal) drawShots(s engine.Snapshot) {
	bullet := t.fg(RgbBullet)
	for _, b := range s.Bullets {
		x, y := t.Cell(vmath.Vec2{X: b.X, Y: b.Y})
		t.put(x, y, '|', bullet)
	}
	enemy := t.fg(RgbEnemyBullet)
	for _, b := range s.EnemyBullets {
		x, y := t.Cell(vmath.Vec2{X: b.X, Y: b.Y})
		t.put(x, y, '*', enemy)
	}
}

func (t *Terminal) drawParticles(s engine.Snapshot) {
	for _, p := range s.Particles {
		x, y := t.Cell(p.Pos)
		t.put(x, y, '·', t.fg(RgbParticle.Scale(p.Alpha)))
	}
}

func (t *Terminal) drawPlayer(s engine.Snapshot) {
	style := t.fg(RgbPlayer).Bold(true)
	t.fillRect(s.Player, 'A', style)
	x, y := t.Cell(vmath.Vec2{X: s.Player.X + s.Player.W/2, Y: s.Player.Y})
	t.put(x, y, '^', style)
}

// drawBossBar draws the first boss's health across the top playfield row
func (t *Terminal) drawBossBar(s engine.Snapshot) {
	for _, e := range s.Enemies {
		if e.Kind != component.KindBoss {
			continue
		}
		label := "BOSS "
		width := t.cols - len(label) - 2
		if width <= 0 {
			return
		}
		filled := int(math.Round(e.HealthRatio() * float64(width)))
		style := t.fg(kindColor(e.Kind))
		t.text(1, hudRows, label, style)
		for i := 0; i < width; i++ {
			r := '░'
			if i < filled {
				r = '█'
			}
			t.text(1+len(label)+i, hudRows, string(r), style)
		}
		return
	}
}

func (t *Terminal) drawHUD(s engine.Snapshot) {
	h := s.HUD
	hpColor := RgbHealth
	if h.MaxHP > 0 && h.HP/h.MaxHP < 0.3 {
		hpColor = RgbHealthLow
	}
	hp := fmt.Sprintf("HP %d/%d", int(math.Ceil(h.HP)), int(h.MaxHP))
	t.text(0, 0, hp, t.fg(hpColor).Bold(true))

	info := fmt.Sprintf("  Score %d  Lv %d  XP %d/%d  Wave %d  D %.2f  %ds",
		h.Score, h.Level, h.XP, h.XPNext, h.Wave, h.Difficulty, int(h.TimeAlive/1000))
	t.text(len(hp), 0, info, t.fg(RgbHUD))
}

func (t *Terminal) drawTitle(s engine.Snapshot) {
	y := t.rows / 3
	t.center(y, "VERTICAL SPACE SHOOTER", t.fg(RgbPlayer).Bold(true))
	t.center(y+2, "Press Enter to start", t.fg(RgbHUD))
	t.center(y+3, "Arrows/WASD move  Space fire  R restart  Q quit", t.fg(RgbDim))
	t.center(y+5, fmt.Sprintf("Best %d", s.Best), t.fg(RgbToast))
	t.drawHistory(y+6, s.History)
}

func (t *Terminal) drawHistory(y int, history []int) {
	for i, score := range history {
		t.center(y+i, fmt.Sprintf("%d. %d", i+1, score), t.fg(RgbDim))
	}
}

func (t *Terminal) drawUpgrade(s engine.Snapshot) {
	y := t.rows/3 + 2
	t.center(y, "Choose an upgrade", t.fg(RgbToast).Bold(true))
	for i, c := range s.Offer {
		line := fmt.Sprintf("  %s - %s  ", c.Title, c.Description)
		style := t.fg(RgbHUD)
		if i == s.Selection {
			line = fmt.Sprintf("> %s - %s <", c.Title, c.Description)
			style = t.fg(RgbSelected).Bold(true)
		}
		t.center(y+2+i, line, style)
	}
}

func (t *Terminal) drawGameOver(s engine.Snapshot) {
	y := t.rows/3 + 2
	// Drawn at full brightness over the fade
	style := tcell.StyleDefault.Background(RgbBackground.Scale(t.bright).Color())
	t.center(y, "GAME OVER", style.Foreground(RgbHealthLow.Color()).Bold(true))
	t.center(y+1, fmt.Sprintf("Score %d", s.HUD.Score), style.Foreground(RgbHUD.Color()))
	if s.Summary == nil {
		return
	}
	t.center(y+2, fmt.Sprintf("Best %d", s.Summary.Best), style.Foreground(RgbToast.Color()))
	for i, score := range s.Summary.History {
		t.center(y+3+i, fmt.Sprintf("%d. %d", i+1, score), style.Foreground(RgbDim.Color()))
	}
	t.center(y+4+len(s.Summary.History), "Enter or R to play again", style.Foreground(RgbHUD.Color()))
}
