package entity

import (
	"snake-classic/game/types"

	"golang.org/x/exp/rand"
)

// Snake is the player entity. Body is ordered head first; the tail is the
// last element.
type Snake struct {
	Body       []types.Point
	Direction  types.Point
	Score      int
	ColorIndex int

	pending     *types.Point
	growPending int
	paletteSize int
	colorCycle  int
}

func NewSnake(grid types.Grid, paletteSize, colorCycleEvery int, rng *rand.Rand) *Snake {
	s := &Snake{
		paletteSize: paletteSize,
		colorCycle:  colorCycleEvery,
	}
	s.Reset(grid, rng)
	return s
}

// Reset reinitializes the snake to a single cell at the grid center with a
// random facing and zeroed score.
func (s *Snake) Reset(grid types.Grid, rng *rand.Rand) {
	s.Body = []types.Point{grid.Center()}
	s.Direction = types.Directions[rng.Intn(len(types.Directions))]
	s.pending = nil
	s.Score = 0
	s.ColorIndex = 0
	s.growPending = 0
}

// ChangeDirection buffers d for the next tick, overwriting any previous
// request. Reversal filtering happens when the buffer is consumed.
func (s *Snake) ChangeDirection(d types.Point) {
	buf := d
	s.pending = &buf
}

// ConsumeDirection applies the buffered direction unless it would reverse
// the snake onto its own neck. The buffer is emptied either way: an
// illegal reversal is dropped, not retried on a later tick.
func (s *Snake) ConsumeDirection() types.Point {
	if s.pending != nil {
		if !types.Opposite(*s.pending, s.Direction) {
			s.Direction = *s.pending
		}
		s.pending = nil
	}
	return s.Direction
}

// Head returns the snake's head cell.
func (s *Snake) Head() types.Point {
	return s.Body[0]
}

// Tail returns the snake's tail cell.
func (s *Snake) Tail() types.Point {
	return s.Body[len(s.Body)-1]
}

// PendingGrowth returns how many segments are still owed to the body.
func (s *Snake) PendingGrowth() int {
	return s.growPending
}

// Advance moves the head to newHead. A pending growth keeps the tail in
// place for one tick; otherwise the tail cell is vacated.
func (s *Snake) Advance(newHead types.Point) {
	s.Body = append([]types.Point{newHead}, s.Body...)
	if s.growPending > 0 {
		s.growPending--
		return
	}
	s.Body = s.Body[:len(s.Body)-1]
}

// Grow credits one eaten food: one point, one deferred body segment, and a
// palette step at every colorCycle score multiple.
func (s *Snake) Grow() {
	s.growPending++
	s.Score++
	if s.Score > 0 && s.Score%s.colorCycle == 0 {
		s.ColorIndex = (s.ColorIndex + 1) % s.paletteSize
	}
}
