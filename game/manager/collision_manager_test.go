package manager

import (
	"testing"

	"snake-classic/game/entity"
	"snake-classic/game/types"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
)

func newTestSnake(body []types.Point) *entity.Snake {
	grid := types.Grid{Width: 10, Height: 10}
	s := entity.NewSnake(grid, 8, 10, rand.New(rand.NewSource(1)))
	s.Body = body
	return s
}

func TestWallCollisions(t *testing.T) {
	grid := types.Grid{Width: 10, Height: 10}
	cm := NewCollisionManager(grid)

	tests := []struct {
		name    string
		head    types.Point
		move    types.Point
		isFatal bool
	}{
		{"left edge moving left", types.Point{X: 0, Y: 0}, types.Left, true},
		{"top edge moving up", types.Point{X: 0, Y: 0}, types.Up, true},
		{"right edge moving right", types.Point{X: 9, Y: 9}, types.Right, true},
		{"bottom edge moving down", types.Point{X: 9, Y: 9}, types.Down, true},
		{"interior move", types.Point{X: 5, Y: 5}, types.Right, false},
		{"along the edge", types.Point{X: 9, Y: 5}, types.Down, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snake := newTestSnake([]types.Point{tt.head})
			got := cm.HandleMovement(snake, tt.head.Add(tt.move))
			assert.Equal(t, tt.isFatal, got)
		})
	}
}

func TestSelfCollision(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 10, Height: 10})

	// Head at (1,1), body snaking around a 2x2 block, tail at (2,1).
	body := []types.Point{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 1}}

	t.Run("mid body hit is fatal", func(t *testing.T) {
		snake := newTestSnake(body)
		assert.True(t, cm.HandleMovement(snake, types.Point{X: 2, Y: 2}))
	})

	t.Run("tail cell is exempt when not growing", func(t *testing.T) {
		snake := newTestSnake(body)
		// The tail vacates (2,1) this same tick.
		assert.False(t, cm.HandleMovement(snake, types.Point{X: 2, Y: 1}))
	})

	t.Run("tail cell is fatal while growth is pending", func(t *testing.T) {
		snake := newTestSnake(body)
		snake.Grow()
		assert.True(t, cm.HandleMovement(snake, types.Point{X: 2, Y: 1}))
	})
}
