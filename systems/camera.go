package systems

import (
	"math"

	"github.com/automoto/bloomrun/components"
	"github.com/automoto/bloomrun/config"
	"github.com/automoto/bloomrun/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera scrolls horizontally only when the player leaves the dead zone
// between the left and right buffers. The offset is used for drawing only.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerX := components.Object.Get(playerEntry).X

	camera.Position.X = scrollDeadZone(camera.Position.X, playerX, float64(config.C.Width))
}

func scrollDeadZone(camX, playerX, screenWidth float64) float64 {
	screenX := playerX - camX
	if screenX < config.Camera.LeftBuffer {
		camX = playerX - config.Camera.LeftBuffer
	} else if screenX > screenWidth-config.Camera.RightBuffer {
		camX = playerX - (screenWidth - config.Camera.RightBuffer)
	}
	maxX := math.Max(0, config.World.Length-screenWidth)
	return math.Max(0, math.Min(maxX, camX))
}
