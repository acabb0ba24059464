package types

// Point is a cell on the game grid.
type Point struct {
	X, Y int
}

// Add returns the point offset by a direction delta.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Movement directions as unit grid deltas. Y grows downward, matching
// screen coordinates.
var (
	Up    = Point{X: 0, Y: -1}
	Down  = Point{X: 0, Y: 1}
	Left  = Point{X: -1, Y: 0}
	Right = Point{X: 1, Y: 0}
)

// Directions lists the four legal movement deltas.
var Directions = []Point{Up, Down, Left, Right}

// IsDirection reports whether d is one of the four unit deltas.
func IsDirection(d Point) bool {
	for _, dir := range Directions {
		if d == dir {
			return true
		}
	}
	return false
}

// Opposite reports whether a and b point in exactly opposite directions.
func Opposite(a, b Point) bool {
	return a.X == -b.X && a.Y == -b.Y
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Center returns the middle cell of the grid.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}
