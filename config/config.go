package config

import "image/color"

// PhysicsConfig contains the shared kinematic constants
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`
	MaxFallSpeed     float64 `yaml:"max_fall_speed"`
	JumpImpulse      float64 `yaml:"jump_impulse"`      // Negative is upward; also used for the stomp bounce
	LandingTolerance float64 `yaml:"landing_tolerance"` // Pixels of slack when landing on a platform
	GroundY          float64 `yaml:"ground_y"`          // Top surface of the ground
}

// CharacterConfig contains the per-variant constants for the player and the companion
type CharacterConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	MaxHealth float64 `yaml:"max_health"`
	StartX    float64 `yaml:"start_x"`

	// Speed is pixels per second for the player and pixels per tick for the companion.
	Speed float64 `yaml:"speed"`
}

// CompanionAIConfig contains companion decision constants
type CompanionAIConfig struct {
	FollowDistance float64 `yaml:"follow_distance"`
	JumpChance     float64 `yaml:"jump_chance"`  // Per tick
	ShootChance    float64 `yaml:"shoot_chance"` // Per tick
}

// EnemyConfig contains enemy constants and population control
type EnemyConfig struct {
	Width       float64   `yaml:"width"`
	Height      float64   `yaml:"height"`
	MaxHealth   float64   `yaml:"max_health"`
	SpeedX      float64   `yaml:"speed_x"`
	SpeedY      float64   `yaml:"speed_y"`
	DeadzoneX   float64   `yaml:"deadzone_x"`
	DeadzoneY   float64   `yaml:"deadzone_y"`
	MinAlive    int       `yaml:"min_alive"`    // Replenish below this count
	SpawnOffset float64   `yaml:"spawn_offset"` // Lateral distance from the player
	InitialX    []float64 `yaml:"initial_x"`
}

// CombatConfig contains damage values for the three hazard channels
type CombatConfig struct {
	StompDamage      float64 `yaml:"stomp_damage"`
	StompMargin      float64 `yaml:"stomp_margin"`
	ProjectileDamage float64 `yaml:"projectile_damage"`
	ContactDamage    float64 `yaml:"contact_damage"` // Per tick of overlap
	FlashFrames      int     `yaml:"flash_frames"`
}

// ProjectileConfig contains projectile constants
type ProjectileConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// FlowerConfig contains pickup constants
type FlowerConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Heal       float64 `yaml:"heal"`
	BobHeight  float64 `yaml:"bob_height"`
	BobSeconds float64 `yaml:"bob_seconds"`
}

// PlatformConfig controls world generation and platform oscillation
type PlatformConfig struct {
	StartX   float64 `yaml:"start_x"`
	Spacing  float64 `yaml:"spacing"`
	MinWidth float64 `yaml:"min_width"`
	MaxWidth float64 `yaml:"max_width"`
	Height   float64 `yaml:"height"`
	MinY     float64 `yaml:"min_y"`
	MaxY     float64 `yaml:"max_y"`
	Range    float64 `yaml:"range"` // Oscillation half-amplitude around the original Y
	Speed    float64 `yaml:"speed"` // Pixels per tick
}

// WorldConfig contains world dimensions
type WorldConfig struct {
	Length   float64 `yaml:"length"`
	CellSize int     `yaml:"cell_size"` // resolv space cell size
	TickRate int     `yaml:"tick_rate"`
}

// CameraConfig contains the dead-zone buffers in screen pixels
type CameraConfig struct {
	LeftBuffer  float64 `yaml:"left_buffer"`
	RightBuffer float64 `yaml:"right_buffer"`
}

// AnimationConfig contains walk cycle timing
type AnimationConfig struct {
	TicksPerFrame int `yaml:"ticks_per_frame"`
	FrameCount    int `yaml:"frame_count"`
}

// UIConfig contains colors for the rectangle renderer and HUD
type UIConfig struct {
	SkyColor        color.RGBA
	GroundColor     color.RGBA
	PlatformColor   color.RGBA
	PlayerColor     color.RGBA
	CompanionColor  color.RGBA
	EnemyColor      color.RGBA
	FlashColor      color.RGBA
	ProjectileColor color.RGBA
	FlowerColor     color.RGBA
	TextColor       color.RGBA
	OverlayColor    color.RGBA
	HealthBarWidth  float64
	HealthBarHeight float64
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player CharacterConfig
var Companion CharacterConfig
var CompanionAI CompanionAIConfig
var Enemy EnemyConfig
var Combat CombatConfig
var Projectile ProjectileConfig
var Flower FlowerConfig
var Platform PlatformConfig
var World WorldConfig
var Camera CameraConfig
var Animation AnimationConfig
var UI UIConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Physics = PhysicsConfig{
		Gravity:          0.5,
		MaxFallSpeed:     10.0,
		JumpImpulse:      -11.0,
		LandingTolerance: 5.0,
		GroundY:          320.0,
	}

	Player = CharacterConfig{
		Width:     24,
		Height:    40,
		MaxHealth: 100,
		StartX:    64,
		Speed:     200,
	}

	Companion = CharacterConfig{
		Width:     20,
		Height:    32,
		MaxHealth: 100,
		StartX:    24,
		Speed:     2.5,
	}

	CompanionAI = CompanionAIConfig{
		FollowDistance: 80,
		JumpChance:     0.01,
		ShootChance:    0.02,
	}

	Enemy = EnemyConfig{
		Width:       28,
		Height:      32,
		MaxHealth:   50,
		SpeedX:      1.2,
		SpeedY:      1.0,
		DeadzoneX:   4,
		DeadzoneY:   48,
		MinAlive:    3,
		SpawnOffset: 400,
		InitialX:    []float64{520, 860, 1240, 1700, 2300},
	}

	Combat = CombatConfig{
		StompDamage:      10,
		StompMargin:      12,
		ProjectileDamage: 5,
		ContactDamage:    0.1,
		FlashFrames:      8,
	}

	Projectile = ProjectileConfig{
		Width:  8,
		Height: 4,
		Speed:  7,
	}

	Flower = FlowerConfig{
		Width:      16,
		Height:     16,
		Heal:       20,
		BobHeight:  3,
		BobSeconds: 0.6,
	}

	Platform = PlatformConfig{
		StartX:   300,
		Spacing:  260,
		MinWidth: 64,
		MaxWidth: 128,
		Height:   12,
		MinY:     190,
		MaxY:     250,
		Range:    30,
		Speed:    0.5,
	}

	World = WorldConfig{
		Length:   6000,
		CellSize: 32,
		TickRate: 60,
	}

	Camera = CameraConfig{
		LeftBuffer:  160,
		RightBuffer: 280,
	}

	Animation = AnimationConfig{
		TicksPerFrame: 10,
		FrameCount:    4,
	}

	UI = UIConfig{
		SkyColor:        color.RGBA{R: 24, G: 28, B: 48, A: 255},
		GroundColor:     color.RGBA{R: 70, G: 52, B: 38, A: 255},
		PlatformColor:   color.RGBA{R: 120, G: 120, B: 140, A: 255},
		PlayerColor:     LightBlue,
		CompanionColor:  LightGreen,
		EnemyColor:      LightRed,
		FlashColor:      White,
		ProjectileColor: Yellow,
		FlowerColor:     color.RGBA{R: 255, G: 120, B: 200, A: 255},
		TextColor:       White,
		OverlayColor:    BlackOverlay,
		HealthBarWidth:  60,
		HealthBarHeight: 6,
	}
}
