// snake is a classic snake game for the terminal, a native window, or SSH.
//
// Usage:
//
//	snake                    - Play in the terminal (same as snake play)
//	snake play               - Play locally
//	snake serve              - Start SSH server for remote play
//	snake sim                - Run a headless simulation and print the board
//	snake displays           - List available displays
//	snake version            - Print the version
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.snake, ./configs)
//	--speed <rate>      - Ticks per second (default: 10)
//	--seed <value>      - RNG seed for reproducible games
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"

	// Import displays to register them
	_ "github.com/vovakirdan/tui-snake/internal/platform/tcellui"
	_ "github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	// Global flags
	flagConfig   string
	flagSpeed    int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is the classic game on a 32x24 board: steer with the arrow keys,
eat the red food to grow, and start over when you bite yourself.
The board wraps around at every edge.

Available commands:
  play     - Play locally (default)
  serve    - Start SSH server for remote play
  sim      - Run a headless simulation
  displays - List available displays
  version  - Print the version

Examples:
  snake
  snake play --display tcell
  snake serve --ssh :2222
  snake sim --ticks 100 --keys "5:up,9:left"`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagSpeed, "speed", 10, "Ticks per second")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	addDisplayFlag(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(displaysCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads the config file and applies flags the user set.
func loadConfig(cmd *cobra.Command) (config.SnakeConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("speed") {
		cfg.Speed = flagSpeed
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if f := flags.Lookup("display"); f != nil && f.Changed {
		cfg.Display = flagDisplay
	}
	if f := flags.Lookup("ssh"); f != nil && f.Changed {
		cfg.SSH.Address = flagSSHAddr
	}
	if f := flags.Lookup("host-key"); f != nil && f.Changed {
		cfg.SSH.HostKey = flagHostKey
	}
	if f := flags.Lookup("idle-timeout"); f != nil && f.Changed {
		cfg.SSH.IdleTimeout = flagIdleTimeout
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger creates the application logger.
func newLogger(w io.Writer, cfg config.SnakeConfig, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if lvl, err := cfg.LogLevel(); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}

// openLogFile opens --log-file for appending, or returns nil when unset.
func openLogFile() (*os.File, error) {
	if flagLogFile == "" {
		return nil, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}
