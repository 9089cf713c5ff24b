package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/platform/headless"
)

var (
	flagTicks    uint64
	flagKeys     string
	flagRealTime bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run the game without a screen for a number of ticks, feeding it a
scripted key sequence, then print the final board and a summary.

Keys are tick:key pairs; keys are up, down, left, right and quit.
The board is printed with '*' for food and 'o' for the snake.

Examples:
  snake sim --ticks 16
  snake sim --ticks 200 --keys "5:up,9:left" --seed 42`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().Uint64Var(&flagTicks, "ticks", 100, "Number of ticks to run")
	simCmd.Flags().StringVar(&flagKeys, "keys", "", `Scripted keys, e.g. "5:up,9:left,40:quit"`)
	simCmd.Flags().BoolVar(&flagRealTime, "real-time", false, "Pace ticks on the wall clock")
}

func runSim(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	script, err := headless.ParseScript(flagKeys)
	if err != nil {
		return err
	}

	rc, err := cfg.RuntimeConfig()
	if err != nil {
		return err
	}

	logFile, err := openLogFile()
	if err != nil {
		return err
	}
	logOut := cmd.ErrOrStderr()
	if logFile != nil {
		defer logFile.Close()
		logOut = logFile
	}

	return simulate(cmd.OutOrStdout(), rc, flagTicks, script, flagRealTime, newLogger(logOut, cfg, "snake-sim"))
}

// simulate runs a headless game and writes the final board and a summary.
func simulate(w io.Writer, rc core.RuntimeConfig, ticks uint64, script headless.Script, realTime bool, logger *log.Logger) error {
	opts := []headless.Option{
		headless.WithScript(script),
		headless.WithPalette(rc.Palette),
	}
	if realTime {
		opts = append(opts, headless.WithRealTime())
	}
	d := headless.New(opts...)

	loop, err := engine.New(d, rc, engine.WithLogger(logger), engine.WithMaxTicks(ticks))
	if err != nil {
		return err
	}
	if err := loop.Run(); err != nil {
		return err
	}

	fmt.Fprintln(w, d.String())
	fmt.Fprintln(w, summary(loop.Game().Snapshot(), rc))
	return nil
}

// summary describes a finished simulation in one line.
func summary(s game.Snapshot, rc core.RuntimeConfig) string {
	played := time.Duration(s.Tick) * engine.Interval(rc.TickRate)
	span := played.String()
	if played >= time.Second {
		now := time.Now()
		span = strings.TrimSpace(humanize.RelTime(now.Add(-played), now, "", ""))
	}

	return fmt.Sprintf("%s ticks (%s of play at %d/s), seed %d: length %d, %s eaten, %s",
		humanize.Comma(int64(s.Tick)), span, rc.TickRate, rc.Seed,
		s.TargetLength, plural(s.Eaten, "food", "food"), plural(s.Resets, "reset", "resets"))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%s %s", humanize.Comma(int64(n)), many)
}
