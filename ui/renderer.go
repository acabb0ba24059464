package ui

import (
	"fmt"

	"snake-classic/game"
	"snake-classic/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Snake palette, cycled as the color tier advances.
var snakePalette = []rl.Color{
	{R: 0, G: 255, B: 0, A: 255},     // green
	{R: 0, G: 200, B: 255, A: 255},   // light blue
	{R: 255, G: 255, B: 0, A: 255},   // yellow
	{R: 255, G: 0, B: 255, A: 255},   // magenta
	{R: 0, G: 255, B: 255, A: 255},   // cyan
	{R: 255, G: 165, B: 0, A: 255},   // orange
	{R: 138, G: 43, B: 226, A: 255},  // blue violet
	{R: 255, G: 105, B: 180, A: 255}, // hot pink
}

var (
	colorBackground = rl.Color{R: 20, G: 20, B: 20, A: 255}
	colorGridLine   = rl.Color{R: 40, G: 40, B: 40, A: 255}
	colorFood       = rl.Red
	colorText       = rl.White
	colorGameOver   = rl.Color{R: 200, G: 0, B: 0, A: 255}
)

type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
}

func NewRenderer(cfg game.Config) *Renderer {
	return &Renderer{
		cellSize:     int32(cfg.CellSize),
		screenWidth:  int32(cfg.Grid.Width * cfg.CellSize),
		screenHeight: int32(cfg.Grid.Height * cfg.CellSize),
	}
}

// ScreenWidth returns the window width in pixels.
func (r *Renderer) ScreenWidth() int32 {
	return r.screenWidth
}

// ScreenHeight returns the window height in pixels.
func (r *Renderer) ScreenHeight() int32 {
	return r.screenHeight
}

// Draw renders one frame of the session: the board while playing, the
// game-over screen otherwise.
func (r *Renderer) Draw(s *game.Session) {
	rl.BeginDrawing()
	rl.ClearBackground(colorBackground)

	if s.IsOver() {
		r.drawGameOver(s)
		rl.EndDrawing()
		return
	}

	r.drawGridLines()
	r.drawSnake(s)
	r.drawFood(s.FoodPosition())
	r.drawScore(s.Score())

	rl.EndDrawing()
}

func (r *Renderer) drawGridLines() {
	for y := int32(0); y <= r.screenHeight; y += r.cellSize {
		rl.DrawLine(0, y, r.screenWidth, y, colorGridLine)
	}
	for x := int32(0); x <= r.screenWidth; x += r.cellSize {
		rl.DrawLine(x, 0, x, r.screenHeight, colorGridLine)
	}
}

func (r *Renderer) drawSnake(s *game.Session) {
	base := snakePalette[s.ColorIndex()%len(snakePalette)]
	for i, cell := range s.Body() {
		color := base
		if i > 0 {
			// Body segments are slightly darker than the head.
			color = darken(base, 20)
		}
		rl.DrawRectangle(int32(cell.X)*r.cellSize, int32(cell.Y)*r.cellSize,
			r.cellSize, r.cellSize, color)
	}
}

func (r *Renderer) drawFood(pos types.Point) {
	rl.DrawRectangle(int32(pos.X)*r.cellSize, int32(pos.Y)*r.cellSize,
		r.cellSize, r.cellSize, colorFood)
}

func (r *Renderer) drawScore(score int) {
	rl.DrawText(fmt.Sprintf("Score: %d", score), 10, 10, 24, colorText)
}

func (r *Renderer) drawGameOver(s *game.Session) {
	centerY := r.screenHeight / 2
	r.drawCentered("Game Over", centerY-90, 60, colorGameOver)
	r.drawCentered(fmt.Sprintf("Final Score: %d", s.Score()), centerY-10, 30, colorText)
	r.drawCentered(fmt.Sprintf("High Score: %d", s.HighScore()), centerY+30, 30, colorText)
	r.drawCentered("Press R to Restart or Q to Quit", centerY+70, 30, colorText)
}

func (r *Renderer) drawCentered(text string, y, fontSize int32, color rl.Color) {
	width := rl.MeasureText(text, fontSize)
	rl.DrawText(text, (r.screenWidth-width)/2, y, fontSize, color)
}

func darken(c rl.Color, by uint8) rl.Color {
	sub := func(v uint8) uint8 {
		if v < by {
			return 0
		}
		return v - by
	}
	return rl.Color{R: sub(c.R), G: sub(c.G), B: sub(c.B), A: c.A}
}
