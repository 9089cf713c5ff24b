// Package game holds the snake game state: the snake, the food and the
// per-tick update that ties them together. It has no notion of time or
// terminals; the engine drives it and a display draws it.
package game

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// StepResult reports what happened during one tick.
type StepResult struct {
	Tick     uint64
	Quit     bool // A quit event was received; nothing else was updated
	Ate      bool // The head landed on the food
	Collided bool // The head hit the body and the snake was reset
}

// Game implements the snake world.
type Game struct {
	cfg    core.RuntimeConfig
	rng    *rand.Rand
	snake  *Snake
	food   *Food
	input  *InputMapper
	tick   uint64
	eaten  int
	resets int
}

// New creates a game with the snake at the center and food on a free cell.
func New(cfg core.RuntimeConfig) (*Game, error) {
	g := &Game{
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(cfg.Seed)),
		input: NewInputMapper(),
	}
	g.snake = NewSnake(cfg.Palette.Snake, cfg.Palette.Border)
	g.food = NewFood(g.rng, cfg.MaxFoodAttempts, cfg.Palette.Food, cfg.Palette.Border)

	if err := g.food.Relocate(g.snake.Occupied()); err != nil {
		return nil, fmt.Errorf("placing food: %w", err)
	}
	return g, nil
}

// Step advances the world by one tick.
// Errors are returned rather than handled; the loop decides what to do.
func (g *Game) Step(events []core.Event) (StepResult, error) {
	g.tick++
	res := StepResult{Tick: g.tick}

	if g.input.Apply(events, g.snake) {
		res.Quit = true
		return res, nil
	}

	g.snake.Advance()

	if g.snake.Head() == g.food.Position() {
		res.Ate = true
		g.eaten++
		g.snake.Grow()
		if err := g.food.Relocate(g.snake.Occupied()); err != nil {
			return res, fmt.Errorf("tick %d: relocating food: %w", g.tick, err)
		}
	}

	if g.snake.CheckSelfCollision() {
		res.Collided = true
		g.resets++
		g.snake.Reset()
		// The fresh snake may sit on the food.
		if g.snake.Occupies(g.food.Position()) {
			if err := g.food.Relocate(g.snake.Occupied()); err != nil {
				return res, fmt.Errorf("tick %d: relocating food after reset: %w", g.tick, err)
			}
		}
	}

	return res, nil
}

// Drawables returns the entities in draw order: food first, then the snake.
func (g *Game) Drawables() []Drawable {
	return []Drawable{g.food, g.snake}
}

// Draw paints every entity onto dst.
func (g *Game) Draw(dst Surface) error {
	for _, d := range g.Drawables() {
		if err := d.Draw(dst); err != nil {
			return err
		}
	}
	return nil
}

// Snake returns the snake entity.
func (g *Game) Snake() *Snake {
	return g.snake
}

// Food returns the food entity.
func (g *Game) Food() *Food {
	return g.food
}

// Config returns the runtime config the game was created with.
func (g *Game) Config() core.RuntimeConfig {
	return g.cfg
}
