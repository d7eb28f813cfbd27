package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/Chao-po/vertical-space-shooter/component"
)

// RGB is a 24-bit color that can be dimmed by the fade overlay before conversion
type RGB struct {
	R, G, B uint8
}

// Scale multiplies each channel by f in [0,1]
func (c RGB) Scale(f float64) RGB {
	if f <= 0 {
		return RGB{}
	}
	if f >= 1 {
		return c
	}
	return RGB{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
	}
}

func (c RGB) Color() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

var (
	RgbBackground  = RGB{5, 8, 18}
	RgbStar        = RGB{200, 200, 220}
	RgbPlayer      = RGB{80, 220, 255}
	RgbBullet      = RGB{255, 255, 140}
	RgbEnemyBullet = RGB{255, 90, 90}
	RgbParticle    = RGB{255, 220, 140}
	RgbHUD         = RGB{230, 230, 230}
	RgbHealth      = RGB{90, 230, 120}
	RgbHealthLow   = RGB{240, 80, 60}
	RgbToast       = RGB{255, 210, 80}
	RgbSelected    = RGB{0, 255, 255}
	RgbDim         = RGB{120, 120, 140}
)

// kindStyle is the glyph and color of each enemy kind
var kindStyle = map[component.Kind]struct {
	glyph rune
	color RGB
}{
	component.KindNormal:   {'V', RGB{255, 120, 120}},
	component.KindFast:     {'v', RGB{255, 170, 90}},
	component.KindTank:     {'H', RGB{160, 160, 180}},
	component.KindShooter:  {'Y', RGB{255, 90, 200}},
	component.KindZigzag:   {'Z', RGB{150, 255, 120}},
	component.KindSplitter: {'X', RGB{120, 200, 255}},
	component.KindMini:     {'x', RGB{160, 220, 255}},
	component.KindCharger:  {'!', RGB{255, 60, 60}},
	component.KindBomber:   {'O', RGB{255, 200, 40}},
	component.KindBoss:     {'#', RGB{220, 80, 255}},
}

// KindGlyph returns the fill rune for an enemy kind
func KindGlyph(k component.Kind) rune {
	if s, ok := kindStyle[k]; ok {
		return s.glyph
	}
	return '?'
}

func kindColor(k component.Kind) RGB {
	if s, ok := kindStyle[k]; ok {
		return s.color
	}
	return RgbHUD
}
