package manager

import (
	"snake-classic/game/entity"
	"snake-classic/game/types"
)

// CollisionManager answers whether a proposed head position ends the game.
type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// HandleMovement reports whether moving the snake's head to newHead is
// fatal, either by leaving the grid or by biting the body.
func (cm *CollisionManager) HandleMovement(snake *entity.Snake, newHead types.Point) bool {
	if cm.isWallCollision(newHead) {
		return true
	}
	return cm.isSelfCollision(snake, newHead)
}

// isWallCollision checks if a position lies outside the grid.
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// isSelfCollision checks newHead against every body cell. Overlapping the
// current tail is allowed only when no growth is pending, because the tail
// vacates that cell in the same tick.
func (cm *CollisionManager) isSelfCollision(snake *entity.Snake, newHead types.Point) bool {
	for i, cell := range snake.Body {
		if cell != newHead {
			continue
		}
		if i == len(snake.Body)-1 && snake.PendingGrowth() == 0 {
			continue
		}
		return true
	}
	return false
}
