package entity

import (
	"testing"

	"snake-classic/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestFoodRelocateAvoidsOccupied(t *testing.T) {
	grid := types.Grid{Width: 3, Height: 3}

	// Every cell but (2,2) is occupied.
	var occupied []types.Point
	for x := 0; x < grid.Width; x++ {
		for y := 0; y < grid.Height; y++ {
			if x == 2 && y == 2 {
				continue
			}
			occupied = append(occupied, types.Point{X: x, Y: y})
		}
	}

	for seed := uint64(0); seed < 10; seed++ {
		f := &Food{}
		err := f.Relocate(grid, occupied, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		assert.Equal(t, types.Point{X: 2, Y: 2}, f.Position, "seed %d", seed)
	}
}

func TestFoodRelocateFullGrid(t *testing.T) {
	grid := types.Grid{Width: 2, Height: 2}
	occupied := []types.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 1}}

	f := &Food{}
	err := f.Relocate(grid, occupied, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, ErrNoFreeCell)
}

func TestNewFoodAvoidsSnakeBody(t *testing.T) {
	grid := types.Grid{Width: 4, Height: 1}
	occupied := []types.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}

	f, err := NewFood(grid, occupied, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	assert.Equal(t, types.Point{X: 3, Y: 0}, f.Position)
}
