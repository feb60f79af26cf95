package factory

import (
	"github.com/automoto/bloomrun/archetypes"
	"github.com/automoto/bloomrun/components"
	cfg "github.com/automoto/bloomrun/config"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera anchors the camera so the player starts at the left dead-zone edge.
func CreateCamera(ecs *ecs.ECS, playerX float64) {
	camera := archetypes.Camera.Spawn(ecs)
	data := components.CameraData{}
	data.Position.X = playerX - cfg.Camera.LeftBuffer
	if data.Position.X < 0 {
		data.Position.X = 0
	}
	components.Camera.Set(camera, &data)
}
