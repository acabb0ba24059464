package game

import (
	"fmt"

	"snake-classic/game/entity"
	"snake-classic/game/manager"
	"snake-classic/game/types"
	"snake-classic/pkg/log"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// State is the session's lifecycle phase.
type State int

const (
	StatePlaying State = iota
	StateGameOver
)

// Session runs one single-player game: a snake, one food item, and the
// Playing/GameOver machine around them. It is a plain single-threaded
// value; the caller drains input, calls Tick, then renders.
type Session struct {
	UUID   string
	Config Config

	snake        *entity.Snake
	food         *entity.Food
	collisionMgr *manager.CollisionManager
	rng          *rand.Rand
	state        State

	highScore    int
	scoreHistory []int
}

func NewSession(cfg Config, rng *rand.Rand) (*Session, error) {
	s := &Session{
		UUID:         uuid.New().String(),
		Config:       cfg,
		collisionMgr: manager.NewCollisionManager(cfg.Grid),
		rng:          rng,
	}
	s.snake = entity.NewSnake(cfg.Grid, cfg.PaletteSize, cfg.ColorCycleEvery, rng)

	food, err := entity.NewFood(cfg.Grid, s.snake.Body, rng)
	if err != nil {
		return nil, fmt.Errorf("place initial food: %w", err)
	}
	s.food = food

	log.Info("session %s started on %dx%d grid", s.UUID, cfg.Grid.Width, cfg.Grid.Height)
	return s, nil
}

// Tick advances the simulation by one step. While playing: consume the
// direction buffer, move the head, and either end the game on a collision
// or advance the body and handle food. A tick in the game-over state is a
// no-op.
func (s *Session) Tick() error {
	if s.state != StatePlaying {
		return nil
	}

	dir := s.snake.ConsumeDirection()
	newHead := s.snake.Head().Add(dir)

	if s.collisionMgr.HandleMovement(s.snake, newHead) {
		s.state = StateGameOver
		s.recordGameOver()
		return nil
	}

	s.snake.Advance(newHead)

	if newHead == s.food.Position {
		s.snake.Grow()
		if err := s.food.Relocate(s.Config.Grid, s.snake.Body, s.rng); err != nil {
			return fmt.Errorf("relocate food: %w", err)
		}
	}
	return nil
}

// SubmitDirection buffers a direction change for the next tick. Ignored
// outside of play or for values that are not unit deltas.
func (s *Session) SubmitDirection(d types.Point) {
	if s.state != StatePlaying || !types.IsDirection(d) {
		return
	}
	s.snake.ChangeDirection(d)
}

// Restart begins a new game from the game-over screen. A restart while
// still playing is ignored.
func (s *Session) Restart() error {
	if s.state != StateGameOver {
		return nil
	}
	s.snake.Reset(s.Config.Grid, s.rng)
	if err := s.food.Relocate(s.Config.Grid, s.snake.Body, s.rng); err != nil {
		return fmt.Errorf("relocate food: %w", err)
	}
	s.state = StatePlaying
	log.Info("session %s restarted", s.UUID)
	return nil
}

func (s *Session) recordGameOver() {
	score := s.snake.Score
	s.scoreHistory = append(s.scoreHistory, score)
	if score > s.highScore {
		s.highScore = score
	}
	log.Info("session %s game over: score=%d length=%d high=%d",
		s.UUID, score, len(s.snake.Body), s.highScore)
}

func (s *Session) IsOver() bool {
	return s.state == StateGameOver
}

func (s *Session) Score() int {
	return s.snake.Score
}

func (s *Session) ColorIndex() int {
	return s.snake.ColorIndex
}

func (s *Session) Body() []types.Point {
	return s.snake.Body
}

func (s *Session) Direction() types.Point {
	return s.snake.Direction
}

func (s *Session) FoodPosition() types.Point {
	return s.food.Position
}

// HighScore is the best score seen by this session since process start.
func (s *Session) HighScore() int {
	return s.highScore
}

// ScoreHistory lists the final score of every finished game, oldest first.
func (s *Session) ScoreHistory() []int {
	return s.scoreHistory
}

// CurrentFPS is the tick rate the frontend should pace at: the base rate
// plus one for every FPSIncreaseEvery points scored.
func (s *Session) CurrentFPS() int {
	return s.Config.BaseFPS + s.snake.Score/s.Config.FPSIncreaseEvery
}
