package systems

import (
	"testing"

	"github.com/automoto/bloomrun/components"
	cfg "github.com/automoto/bloomrun/config"
	"github.com/automoto/bloomrun/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStompDamagesAndBounces(t *testing.T) {
	f := newFixture(t, nil)
	player := f.player()
	enemy := factory.CreateEnemy(f.ecs, 300)
	enemyTop := components.Object.Get(enemy).Y

	for i := 0; i < 2; i++ {
		place(player, 300, enemyTop+2)
		airborne(player, 3)
		UpdateCombat(f.ecs)

		physics := components.Physics.Get(player)
		assert.Equal(t, cfg.Physics.JumpImpulse, physics.SpeedY)
		assert.True(t, physics.Jumping)
	}

	assert.Equal(t, cfg.Enemy.MaxHealth-2*cfg.Combat.StompDamage, components.Health.Get(enemy).Current)
	assert.True(t, enemy.Valid())
	assert.False(t, components.Enemy.Get(enemy).Defeated)
	assert.Equal(t, 1, f.count(components.Enemy))
}

func TestStompRequiresFalling(t *testing.T) {
	f := newFixture(t, nil)
	player := f.player()
	enemy := factory.CreateEnemy(f.ecs, 300)
	place(player, 300, components.Object.Get(enemy).Y+2)
	airborne(player, -3)

	UpdateCombat(f.ecs)

	assert.Equal(t, cfg.Enemy.MaxHealth, components.Health.Get(enemy).Current)
}

func TestStompOutsideMarginIsContact(t *testing.T) {
	f := newFixture(t, nil)
	player := f.player()
	enemy := factory.CreateEnemy(f.ecs, 300)
	place(player, 300, components.Object.Get(enemy).Y+cfg.Combat.StompMargin+1)
	airborne(player, 3)

	UpdateCombat(f.ecs)

	assert.Equal(t, cfg.Enemy.MaxHealth, components.Health.Get(enemy).Current)
	assert.InDelta(t, cfg.Player.MaxHealth-cfg.Combat.ContactDamage, components.Health.Get(player).Current, 1e-9)
	assert.Positive(t, components.Flash.Get(player).Duration)
}

func TestStompHitsEveryEnemyUnderfoot(t *testing.T) {
	f := newFixture(t, nil)
	player := f.player()
	a := factory.CreateEnemy(f.ecs, 300)
	b := factory.CreateEnemy(f.ecs, 310)
	place(player, 305, components.Object.Get(a).Y+2)
	airborne(player, 4)

	UpdateCombat(f.ecs)
	UpdateAudio(f.ecs)

	assert.Equal(t, cfg.Enemy.MaxHealth-cfg.Combat.StompDamage, components.Health.Get(a).Current)
	assert.Equal(t, cfg.Enemy.MaxHealth-cfg.Combat.StompDamage, components.Health.Get(b).Current)
	assert.Equal(t, 2, f.sink.count(cfg.SoundStomp))
}

func TestProjectileHitsDefeatEnemyAndDropFlower(t *testing.T) {
	f := newFixture(t, nil)
	player := f.player()
	enemy := factory.CreateEnemy(f.ecs, 400)
	enemyObj := components.Object.Get(enemy)
	x, y := enemyObj.X, enemyObj.Y

	hits := int(cfg.Enemy.MaxHealth / cfg.Combat.ProjectileDamage)
	for i := 0; i < hits; i++ {
		require.True(t, enemy.Valid(), "hit %d", i)
		p := factory.CreateProjectile(f.ecs, player)
		pobj := components.Object.Get(p)
		pobj.X, pobj.Y = x+4, y+4

		UpdateCombat(f.ecs)
		assert.Zero(t, f.count(components.Projectile), "projectile consumed on hit")
	}

	assert.False(t, enemy.Valid())
	assert.Zero(t, f.count(components.Enemy))
	require.Equal(t, 1, f.count(components.Flower))

	flower, ok := components.Flower.First(f.ecs.World)
	require.True(t, ok)
	assert.Equal(t, x, components.Object.Get(flower).X)
	assert.Equal(t, y, components.Object.Get(flower).Y)

	UpdateAudio(f.ecs)
	assert.Equal(t, 1, f.sink.count(cfg.SoundDefeat))
}

func TestProjectileHitsOnlyFirstEnemy(t *testing.T) {
	f := newFixture(t, nil)
	player := f.player()
	first := factory.CreateEnemy(f.ecs, 400)
	second := factory.CreateEnemy(f.ecs, 400)
	p := factory.CreateProjectile(f.ecs, player)
	pobj := components.Object.Get(p)
	enemyObj := components.Object.Get(first)
	pobj.X, pobj.Y = enemyObj.X+4, enemyObj.Y+4

	UpdateCombat(f.ecs)

	assert.Equal(t, cfg.Enemy.MaxHealth-cfg.Combat.ProjectileDamage, components.Health.Get(first).Current)
	assert.Equal(t, cfg.Enemy.MaxHealth, components.Health.Get(second).Current)
}

func TestContactDamageEndsSession(t *testing.T) {
	f := newFixture(t, nil)
	player := f.player()
	enemy := factory.CreateEnemy(f.ecs, 300)
	place(player, 300, components.Object.Get(enemy).Bottom())
	components.Health.Get(player).Current = cfg.Combat.ContactDamage / 2

	UpdateCombat(f.ecs)
	UpdateAudio(f.ecs)

	assert.Zero(t, components.Health.Get(player).Current)
	assert.Equal(t, cfg.SessionGameOver, f.session().State)
	assert.Equal(t, "player health depleted", f.session().Reason)
	assert.Equal(t, 1, f.sink.count(cfg.SoundGameOver))
}

func TestEndSessionIsIdempotent(t *testing.T) {
	f := newFixture(t, nil)

	EndSession(f.ecs, "first")
	EndSession(f.ecs, "second")
	UpdateAudio(f.ecs)

	assert.Equal(t, "first", f.session().Reason)
	assert.Equal(t, 1, f.sink.count(cfg.SoundGameOver))
}

func TestHealthClamps(t *testing.T) {
	h := components.HealthData{Current: 95, Max: 100}
	h.Add(20)
	assert.Equal(t, 100.0, h.Current)
	h.Add(-250)
	assert.Zero(t, h.Current)
	assert.True(t, h.Depleted())
}

func TestFlashDecays(t *testing.T) {
	f := newFixture(t, nil)
	player := f.player()
	TriggerFlash(player)

	for i := 0; i < cfg.Combat.FlashFrames+3; i++ {
		UpdateCombat(f.ecs)
	}
	assert.Zero(t, components.Flash.Get(player).Duration)
}

func TestPickupCollectedOnce(t *testing.T) {
	f := newFixture(t, nil)
	player := f.player()
	obj := components.Object.Get(player)
	components.Health.Get(player).Current = cfg.Player.MaxHealth - cfg.Flower.Heal/2
	factory.CreateFlower(f.ecs, obj.X+2, obj.Y+2)

	UpdatePickups(f.ecs)
	UpdatePickups(f.ecs)

	ch := components.Character.Get(player)
	assert.Equal(t, 1, ch.Score)
	assert.Equal(t, cfg.Player.MaxHealth, components.Health.Get(player).Current)
	assert.Zero(t, f.count(components.Flower))
}

func TestPickupPlayerBeforeCompanion(t *testing.T) {
	f := newFixture(t, nil)
	player := f.player()
	companion := f.companion()
	place(companion, 100, cfg.Physics.GroundY)
	place(player, 100, cfg.Physics.GroundY)
	factory.CreateFlower(f.ecs, 104, cfg.Physics.GroundY-cfg.Flower.Height)

	UpdatePickups(f.ecs)

	assert.Equal(t, 1, components.Character.Get(player).Score)
	assert.Zero(t, components.Character.Get(companion).Score)
}

func TestFlowerBobStaysWithinHeight(t *testing.T) {
	f := newFixture(t, nil)
	flower := factory.CreateFlower(f.ecs, 1000, 100)

	for i := 0; i < cfg.World.TickRate*2; i++ {
		UpdatePickups(f.ecs)
		bob := components.Flower.Get(flower).Bob
		assert.LessOrEqual(t, bob, 0.001)
		assert.GreaterOrEqual(t, bob, -cfg.Flower.BobHeight-0.001)
	}
}

func TestFallOffEndsSession(t *testing.T) {
	f := newFixture(t, nil)
	player := f.player()
	components.Object.Get(player).X = cfg.World.Length + 1

	UpdateFallOff(f.ecs)

	assert.Equal(t, cfg.SessionGameOver, f.session().State)
	assert.Equal(t, "player left the world", f.session().Reason)
}

func TestFallOffAllowsWorldEdge(t *testing.T) {
	f := newFixture(t, nil)
	player := f.player()
	components.Object.Get(player).X = cfg.World.Length

	UpdateFallOff(f.ecs)

	assert.Equal(t, cfg.SessionRunning, f.session().State)
}
