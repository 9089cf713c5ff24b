package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var flagDisplay string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play locally",
	Long: `Start a game in this terminal or in a native window.

Controls:
  Arrow keys  - Steer
  ?           - Toggle help (tui display)
  Q/Esc       - Quit

Displays:
  tui     - Bubble Tea terminal UI (default)
  tcell   - tcell terminal UI
  raylib  - 640x480 window (needs a build with -tags raylib)

Examples:
  snake play
  snake play --display tcell --speed 15
  snake play --seed 42 --log-level debug --log-file snake.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addDisplayFlag(playCmd)
}

func addDisplayFlag(c *cobra.Command) {
	c.Flags().StringVar(&flagDisplay, "display", "", "Display: tui, tcell or raylib")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	backend, err := registry.Get(cfg.Display)
	if err != nil {
		if cfg.Display == config.DisplayRaylib {
			return fmt.Errorf("%w (rebuild with -tags raylib)", err)
		}
		return err
	}
	if backend.Terminal {
		if err := checkTerminal(); err != nil {
			return err
		}
	}

	// The terminal belongs to the game while it runs, so logs are held
	// back and flushed once the screen is restored.
	var (
		logOut  io.Writer = os.Stderr
		pending bytes.Buffer
	)
	logFile, err := openLogFile()
	if err != nil {
		return err
	}
	switch {
	case logFile != nil:
		defer logFile.Close()
		logOut = logFile
	case backend.Terminal:
		logOut = &pending
		defer func() {
			os.Stderr.Write(pending.Bytes()) //nolint:errcheck // Best-effort flush
		}()
	}
	logger := newLogger(logOut, cfg, "snake")

	rc, err := cfg.RuntimeConfig()
	if err != nil {
		return err
	}
	logger.Debug("starting", "display", backend.Name, "seed", rc.Seed)

	return backend.Play(func(d engine.Display) (*engine.Loop, error) {
		return engine.New(d, rc, engine.WithLogger(logger))
	}, rc.Palette)
}

// checkTerminal makes sure the board fits in the terminal.
func checkTerminal() error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("stdout is not a terminal, try snake sim")
	}
	w, h, err := term.GetSize(fd)
	if err != nil {
		return nil // Size unknown, let the game try
	}
	if w < tui.BoardWidth || h < tui.BoardHeight {
		return fmt.Errorf("terminal is %dx%d, the board needs at least %dx%d",
			w, h, tui.BoardWidth, tui.BoardHeight)
	}
	return nil
}
