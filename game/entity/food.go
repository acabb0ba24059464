package entity

import (
	"errors"

	"snake-classic/game/types"

	"golang.org/x/exp/rand"
)

// ErrNoFreeCell is returned when food placement cannot find an unoccupied
// cell within the attempt budget. It means the grid is effectively full.
var ErrNoFreeCell = errors.New("no free cell for food placement")

// placementAttemptsPerCell bounds the rejection-sampling loop in Relocate.
const placementAttemptsPerCell = 4

// Food is the single food item on the grid.
type Food struct {
	Position types.Point
}

// NewFood places a food item on a cell not covered by occupied.
func NewFood(grid types.Grid, occupied []types.Point, rng *rand.Rand) (*Food, error) {
	f := &Food{}
	if err := f.Relocate(grid, occupied, rng); err != nil {
		return nil, err
	}
	return f, nil
}

// Relocate samples random cells until it finds one outside occupied. The
// loop is capped at placementAttemptsPerCell tries per grid cell so a full
// board surfaces ErrNoFreeCell instead of spinning forever.
func (f *Food) Relocate(grid types.Grid, occupied []types.Point, rng *rand.Rand) error {
	maxAttempts := placementAttemptsPerCell * grid.Width * grid.Height
	for attempt := 0; attempt < maxAttempts; attempt++ {
		candidate := types.Point{X: rng.Intn(grid.Width), Y: rng.Intn(grid.Height)}
		if !contains(occupied, candidate) {
			f.Position = candidate
			return nil
		}
	}
	return ErrNoFreeCell
}

func contains(cells []types.Point, p types.Point) bool {
	for _, c := range cells {
		if c == p {
			return true
		}
	}
	return false
}
