package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick         uint64
	Head         core.Cell
	SnakeLen     int
	TargetLength int
	Dir          core.Direction
	Pending      core.Direction
	Food         core.Cell
	Eaten        int // Food eaten since start
	Resets       int // Self-collisions since start
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:         g.tick,
		Head:         g.snake.Head(),
		SnakeLen:     g.snake.Len(),
		TargetLength: g.snake.TargetLength(),
		Dir:          g.snake.Direction(),
		Pending:      g.snake.Pending(),
		Food:         g.food.Position(),
		Eaten:        g.eaten,
		Resets:       g.resets,
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	s := g.Snapshot()
	hx, hy := s.Head.Pixels()
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Tick: %d, Eaten: %d, Resets: %d\n", s.Tick, s.Eaten, s.Resets))
	b.WriteString(fmt.Sprintf("Snake len: %d/%d, Direction: %s\n", s.SnakeLen, s.TargetLength, s.Dir))
	b.WriteString(fmt.Sprintf("Head: %v [%d,%d px], Food: %v\n", s.Head, hx, hy, s.Food))
	return b.String()
}
