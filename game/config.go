package game

import "snake-classic/game/types"

// Config is the immutable rule set a session is constructed with.
type Config struct {
	Grid             types.Grid
	CellSize         int // pixels per cell
	BaseFPS          int // tick rate at score zero
	FPSIncreaseEvery int // +1 tick/s each time the score crosses a multiple of this
	ColorCycleEvery  int // snake color advances at these score multiples
	PaletteSize      int // number of snake colors to cycle through
}

// DefaultConfig matches the classic 800x600 layout: a 40x30 grid of
// 20-pixel cells at 10 ticks per second.
func DefaultConfig() Config {
	return Config{
		Grid:             types.Grid{Width: 40, Height: 30},
		CellSize:         20,
		BaseFPS:          10,
		FPSIncreaseEvery: 5,
		ColorCycleEvery:  10,
		PaletteSize:      8,
	}
}
