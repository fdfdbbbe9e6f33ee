// Package render projects game state onto the LED matrix bitmap.
package render

import (
	"snake-matrix/game/entity"
	"snake-matrix/game/types"
)

// ToImage lights every snake segment and the food. Overlaps are ORed
// together; the unset food marker is not drawn.
func ToImage(snake *entity.Snake, food types.Point) types.Image {
	var img types.Image
	for i := 0; i < snake.Length(); i++ {
		img.Set(snake.Segment(i))
	}
	img.Set(food)
	return img
}
