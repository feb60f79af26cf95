package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// tuningDocument mirrors the global sections. Decoding into pointers to the
// globals overlays only the keys present in the document.
type tuningDocument struct {
	Physics     *PhysicsConfig     `yaml:"physics"`
	Player      *CharacterConfig   `yaml:"player"`
	Companion   *CharacterConfig   `yaml:"companion"`
	CompanionAI *CompanionAIConfig `yaml:"companion_ai"`
	Enemy       *EnemyConfig       `yaml:"enemy"`
	Combat      *CombatConfig      `yaml:"combat"`
	Projectile  *ProjectileConfig  `yaml:"projectile"`
	Flower      *FlowerConfig      `yaml:"flower"`
	Platform    *PlatformConfig    `yaml:"platform"`
	World       *WorldConfig       `yaml:"world"`
	Camera      *CameraConfig      `yaml:"camera"`
	Animation   *AnimationConfig   `yaml:"animation"`
}

// ApplyTuning overlays a YAML tuning document onto the global configuration.
func ApplyTuning(data []byte) error {
	doc := tuningDocument{
		Physics:     &Physics,
		Player:      &Player,
		Companion:   &Companion,
		CompanionAI: &CompanionAI,
		Enemy:       &Enemy,
		Combat:      &Combat,
		Projectile:  &Projectile,
		Flower:      &Flower,
		Platform:    &Platform,
		World:       &World,
		Camera:      &Camera,
		Animation:   &Animation,
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse tuning: %w", err)
	}
	return nil
}

// LoadTuning applies tuning overrides and returns the path they came from.
// Search order: customPath -> ~/.bloomrun/tuning.yaml -> ./configs/tuning.yaml -> built-in defaults.
// An empty return path means the defaults were kept.
func LoadTuning(customPath string) (string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return "", fmt.Errorf("failed to read tuning %s: %w", customPath, err)
		}
		if err := ApplyTuning(data); err != nil {
			return "", fmt.Errorf("%s: %w", customPath, err)
		}
		return customPath, nil
	}

	candidates := []string{userTuningPath(), filepath.Join("configs", "tuning.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := ApplyTuning(data); err != nil {
			return "", fmt.Errorf("%s: %w", path, err)
		}
		return path, nil
	}
	return "", nil
}

// userTuningPath returns the per-user tuning file, or empty if home is unavailable.
func userTuningPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bloomrun", "tuning.yaml")
}
