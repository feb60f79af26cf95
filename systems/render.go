package systems

import (
	"image/color"

	"github.com/automoto/bloomrun/components"
	cfg "github.com/automoto/bloomrun/config"
	"github.com/automoto/bloomrun/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// cullPadding keeps boxes from popping at the screen edges.
const cullPadding = 64.0

// DrawWorld renders every entity as a filled rectangle at world-minus-camera
// coordinates. Entities outside the viewport are skipped using the collision
// space's cells.
func DrawWorld(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	cam := components.Camera.Get(cameraEntry).Position
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	screen.Fill(cfg.UI.SkyColor)
	ground := float32(cfg.Physics.GroundY)
	vector.FillRect(screen, 0, ground, float32(width), float32(height)-ground, cfg.UI.GroundColor, false)

	visible := visibleObjects(ecs, cam.X, float64(width), float64(height))
	draw := func(obj *components.ObjectData, dy float64, clr color.Color) {
		if visible != nil && !visible[obj.Object] {
			return
		}
		vector.FillRect(screen,
			float32(obj.X-cam.X), float32(obj.Y+dy-cam.Y),
			float32(obj.W), float32(obj.H),
			clr, false)
	}

	components.Platform.Each(ecs.World, func(e *donburi.Entry) {
		draw(components.Object.Get(e), 0, cfg.UI.PlatformColor)
	})
	components.Flower.Each(ecs.World, func(e *donburi.Entry) {
		draw(components.Object.Get(e), components.Flower.Get(e).Bob, cfg.UI.FlowerColor)
	})
	components.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		draw(components.Object.Get(e), 0, flashColor(e, cfg.UI.EnemyColor))
	})
	components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		draw(components.Object.Get(e), 0, cfg.UI.ProjectileColor)
	})

	for _, c := range characters(ecs.World) {
		obj := components.Object.Get(c)
		clr := cfg.UI.PlayerColor
		if c.HasComponent(tags.Companion) {
			clr = cfg.UI.CompanionColor
		}
		draw(obj, 0, flashColor(c, clr))
		drawFacingMarker(screen, obj, components.Character.Get(c), cam.X, cam.Y)
	}
}

// drawFacingMarker draws a small eye on the leading side that bobs with the walk cycle.
func drawFacingMarker(screen *ebiten.Image, obj *components.ObjectData, ch *components.CharacterData, camX, camY float64) {
	const size = 4.0
	x := obj.X + obj.W - size - 2
	if ch.Facing < 0 {
		x = obj.X + 2
	}
	y := obj.Y + 6 + float64(ch.Frame%2)
	vector.FillRect(screen, float32(x-camX), float32(y-camY), size, size, color.Black, false)
}

func flashColor(e *donburi.Entry, base color.RGBA) color.RGBA {
	if e.HasComponent(components.Flash) && components.Flash.Get(e).Duration > 0 {
		return cfg.UI.FlashColor
	}
	return base
}

// visibleObjects asks the collision space which objects share cells with the
// padded viewport. A nil result means no space exists and nothing is culled.
func visibleObjects(ecs *ecs.ECS, camX, width, height float64) map[*resolv.Object]bool {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil
	}
	space := components.Space.Get(spaceEntry)

	viewport := resolv.NewObject(camX-cullPadding, -cullPadding, width+cullPadding*2, height+cullPadding*2, tags.ResolvViewport)
	space.Add(viewport)
	defer space.Remove(viewport)

	visible := make(map[*resolv.Object]bool)
	if check := viewport.Check(0, 0); check != nil {
		for _, obj := range check.Objects {
			visible[obj] = true
		}
	}
	return visible
}
