package config

import (
	_ "embed"
)

//go:embed defaults/crossy.yaml
var defaultCrossyYAML []byte

// DefaultCrossyConfig returns the built-in configuration.
// It mirrors defaults/crossy.yaml and is used when the embedded file cannot be parsed.
func DefaultCrossyConfig() CrossyConfig {
	return CrossyConfig{
		World: WorldConfig{
			Width:           600,
			Height:          800,
			GridSize:        40,
			SearchTolerance: 50,
			TopOverscan:     100,
			SafeRowsAhead:   1,
		},
		Player: PlayerConfig{
			Inset:          5,
			Width:          30,
			Height:         30,
			StartRowsDown:  3,
			ClearingRadius: 1,
		},
		Vehicles: VehicleConfig{
			MinSpeed:    2,
			MaxSpeed:    5,
			MinCount:    1,
			MaxCount:    2,
			Width:       50,
			Height:      24,
			LaneOffset:  8,
			HitboxInset: 5,
			WrapMargin:  60,
		},
		Grass: GrassConfig{
			ObstacleChance: 0.20,
			ShieldChance:   0.03,
			CoinChance:     0.07,
		},
		Road: RoadConfig{
			CoinChance: 0.08,
		},
		Collectibles: CollectibleConfig{
			Inset:        10,
			Size:         20,
			BobSpeed:     0.1,
			BobAmplitude: 3,
		},
		Scoring: ScoringConfig{
			Step: 1,
			Coin: 5,
		},
		Shield: ShieldConfig{
			InvincibilityTicks: 120,
		},
		Particles: ParticleConfig{
			Count:   40,
			MinLife: 30,
			MaxLife: 60,
			MinSize: 4,
			MaxSize: 8,
			Gravity: 0.2,
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultCrossyYAML
}
