package engine

import (
	"log/slog"

	"github.com/Chao-po/vertical-space-shooter/vmath"
)

// Option configures a Game
type Option func(*Game)

// WithLogger routes game and run logs to l
func WithLogger(l *slog.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithRand sets the source used to draw upgrade offers
func WithRand(r vmath.Rand) Option {
	return func(g *Game) {
		if r != nil {
			g.rng = r
		}
	}
}
