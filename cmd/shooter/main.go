package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/Chao-po/vertical-space-shooter/config"
	"github.com/Chao-po/vertical-space-shooter/engine"
	"github.com/Chao-po/vertical-space-shooter/input"
	"github.com/Chao-po/vertical-space-shooter/render"
	"github.com/Chao-po/vertical-space-shooter/storage"
	"github.com/Chao-po/vertical-space-shooter/systems"
	"github.com/Chao-po/vertical-space-shooter/vmath"
)

var (
	configFlag = flag.String("config", "shooter.yaml", "YAML config file; missing file uses defaults")
	debugFlag  = flag.Bool("debug", false, "Write debug logs to the configured log file")
	scoresFlag = flag.String("scores", "", "Score file override")
	memoryFlag = flag.Bool("memory", false, "Keep scores in memory only")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *debugFlag {
		cfg.Debug = true
	}
	if *scoresFlag != "" {
		cfg.ScoreFile = *scoresFlag
	}
	if *memoryFlag {
		cfg.ScoreFile = ""
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "shooter: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	logger, closer, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer crashGuard(screen, "SHOOTER")
	defer screen.Fini()
	screen.HideCursor()

	keyboard := input.NewKeyboard(input.DefaultKeyTable(), cfg.HoldWindow)
	game := engine.NewGame(cfg, openStore(cfg, logger), keyboard, engine.WithLogger(logger))
	systems.Register(game, vmath.NewRand())
	term := render.NewTerminal(screen)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer crashGuard(screen, "EVENT POLLER")
		pollEvents(ctx, screen, keyboard, cancel)
		return nil
	})
	g.Go(func() error {
		defer crashGuard(screen, "FRAME LOOP")
		defer screen.PostEvent(tcell.NewEventInterrupt(nil))
		return frameLoop(ctx, cfg.FrameInterval, game, term)
	})
	err = g.Wait()
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	logger.Info("shutdown", "state", game.State())
	return err
}

// crashGuard restores the terminal before reporting a panic
// Raw mode needs \r\n line endings
func crashGuard(screen tcell.Screen, what string) {
	if r := recover(); r != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31m%s CRASHED: %v\x1b[0m\r\n", what, r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	}
}

// pollEvents feeds key presses to the keyboard until quit or ctx is done
// PollEvent blocks, so the frame loop posts an interrupt on exit to wake it
func pollEvents(ctx context.Context, screen tcell.Screen, kb *input.Keyboard, quit context.CancelFunc) {
	for {
		ev := screen.PollEvent()
		if ev == nil || ctx.Err() != nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if !kb.HandleEvent(ev) {
				quit()
				return
			}
		}
	}
}

// frameLoop ticks the game on a fixed period and draws every frame
// Only this goroutine touches the game
func frameLoop(ctx context.Context, interval time.Duration, game *engine.Game, term *render.Terminal) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			game.Tick(float64(now.Sub(start)) / float64(time.Millisecond))
			term.Draw(game.Snapshot())
		}
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// setupLogging returns a discarding logger unless debug is on
func setupLogging(cfg config.Config) (*slog.Logger, io.Closer, error) {
	if !cfg.Debug || cfg.LogFile == "" {
		return slog.New(slog.DiscardHandler), nopCloser{}, nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h), f, nil
}

// openStore picks the file store when a path is configured
func openStore(cfg config.Config, log *slog.Logger) *storage.Scoreboard {
	if cfg.ScoreFile == "" {
		log.Debug("scores kept in memory")
		return storage.NewScoreboard(storage.NewMemoryKV())
	}
	log.Debug("scores file", "path", cfg.ScoreFile)
	return storage.NewScoreboard(storage.NewFileKV(cfg.ScoreFile))
}
