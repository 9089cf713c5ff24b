// Package engine runs the game at a fixed tick rate against a Display.
//
// The loop is single-threaded: the only place it suspends is Display.Tick.
// Every tick reads input, advances the world, and draws a frame; any error
// on the way ends the loop gracefully instead of crashing the program.
package engine

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

// State is the loop's lifecycle state.
type State int

const (
	StateRunning State = iota
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// ErrTerminated is returned by Tick once the loop has stopped.
var ErrTerminated = errors.New("engine: loop terminated")

// Loop drives one game on one display.
type Loop struct {
	display  Display
	game     *game.Game
	cfg      core.RuntimeConfig
	logger   *log.Logger
	state    State
	ticks    uint64
	maxTicks uint64 // 0 means unlimited
}

// Option configures a Loop.
type Option func(*Loop)

// WithLogger sets the logger used for lifecycle and error messages.
func WithLogger(l *log.Logger) Option {
	return func(lp *Loop) {
		if l != nil {
			lp.logger = l
		}
	}
}

// WithMaxTicks stops the loop gracefully after n ticks.
func WithMaxTicks(n uint64) Option {
	return func(lp *Loop) {
		lp.maxTicks = n
	}
}

// New creates a loop with a fresh game. The display is not touched until Run.
func New(d Display, cfg core.RuntimeConfig, opts ...Option) (*Loop, error) {
	if d == nil {
		return nil, errors.New("engine: nil display")
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultTickRate
	}

	g, err := game.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	l := &Loop{
		display: d,
		game:    g,
		cfg:     cfg,
		logger:  log.New(io.Discard),
		state:   StateRunning,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Run initializes the display and ticks until a quit event, the tick limit,
// or an error. The display is always closed before Run returns.
// A nil error means the loop ended gracefully.
func (l *Loop) Run() (err error) {
	defer func() {
		l.state = StateTerminated
		if cerr := l.display.Close(); cerr != nil {
			l.logger.Warn("closing display", "error", cerr)
			if err == nil {
				err = fmt.Errorf("engine: closing display: %w", cerr)
			}
		}
	}()

	if err := l.display.Init(core.ScreenWidth, core.ScreenHeight); err != nil {
		l.logger.Error("display init failed", "error", err)
		return fmt.Errorf("engine: init display: %w", err)
	}
	if err := l.display.Clear(l.cfg.Palette.Background); err != nil {
		l.logger.Error("display clear failed", "error", err)
		return fmt.Errorf("engine: clear display: %w", err)
	}

	l.logger.Info("game started", "rate", l.cfg.TickRate, "seed", l.cfg.Seed)

	for l.state == StateRunning {
		quit, err := l.Tick()
		if err != nil {
			l.logger.Error("tick failed, stopping", "tick", l.ticks, "error", err)
			return fmt.Errorf("engine: tick %d: %w", l.ticks, err)
		}
		if quit {
			l.logger.Info("quit requested", "ticks", l.ticks)
			return nil
		}
		if l.maxTicks > 0 && l.ticks >= l.maxTicks {
			l.logger.Info("tick limit reached", "ticks", l.ticks)
			return nil
		}
	}
	return nil
}

// Tick runs one iteration: wait, read input, update, draw, present.
// A panic inside the tick is recovered and returned as an error.
func (l *Loop) Tick() (quit bool, err error) {
	if l.state != StateRunning {
		return false, ErrTerminated
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
		if err != nil || quit {
			l.state = StateTerminated
		}
	}()

	if err := l.display.Tick(l.cfg.TickRate); err != nil {
		return false, fmt.Errorf("waiting for frame: %w", err)
	}

	events := l.display.PollEvents()
	res, err := l.game.Step(events)
	l.ticks = res.Tick
	if err != nil {
		return false, err
	}
	if res.Quit {
		return true, nil
	}

	if res.Ate {
		l.logger.Debug("food eaten", "tick", res.Tick, "length", l.game.Snake().TargetLength(),
			"food", l.game.Food().Position())
	}
	if res.Collided {
		l.logger.Debug("self-collision, snake reset", "tick", res.Tick)
	}

	// The whole board is repainted every frame, which also covers the
	// clean board required after a reset.
	if err := l.display.Clear(l.cfg.Palette.Background); err != nil {
		return false, fmt.Errorf("clearing frame: %w", err)
	}
	if err := l.game.Draw(l.display); err != nil {
		return false, fmt.Errorf("drawing frame: %w", err)
	}
	if err := l.display.Present(); err != nil {
		return false, fmt.Errorf("presenting frame: %w", err)
	}
	return false, nil
}

// State returns the loop's lifecycle state.
func (l *Loop) State() State {
	return l.state
}

// Ticks returns the number of ticks run so far.
func (l *Loop) Ticks() uint64 {
	return l.ticks
}

// Game returns the game being driven.
func (l *Loop) Game() *game.Game {
	return l.game
}
