// pkg/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// RGB is an 8-bit color triple used in projectile and star render data.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// GameConfig contains configuration for a simulation instance.
// Configuration is shared by reference between the engine and every entity
// it owns; entities never hold private copies.
type GameConfig struct {
	ViewportWidth  float64          `json:"viewportWidth"`
	ViewportHeight float64          `json:"viewportHeight"`
	Seed           uint64           `json:"seed"`
	Ship           ShipConfig       `json:"ship"`
	Turret         TurretConfig     `json:"turret"`
	Projectile     ProjectileConfig `json:"projectile"`
	Camera         CameraConfig     `json:"camera"`
	Starfield      StarfieldConfig  `json:"starfield"`
}

// ShipConfig contains movement-mode and fire-gating configuration
type ShipConfig struct {
	NormalTopSpeed  float64 `json:"normalTopSpeed"`
	ControlTopSpeed float64 `json:"controlTopSpeed"`
	BoostTopSpeed   float64 `json:"boostTopSpeed"`

	ThrusterAccel   float64 `json:"thrusterAccel"`
	EngineAccel     float64 `json:"engineAccel"`
	EngineSpoolTime float64 `json:"engineSpoolTime"`
	EngineMinFactor float64 `json:"engineMinFactor"`
	EngineMaxFactor float64 `json:"engineMaxFactor"`

	RotationSpeed float64 `json:"rotationSpeed"`

	// Three-segment resistance curve, driven by speed ratio against the
	// current mode's top speed.
	ResistanceFloor     float64 `json:"resistanceFloor"`
	ResistanceCruise    float64 `json:"resistanceCruise"`
	ResistanceMax       float64 `json:"resistanceMax"`
	ResistanceLowRatio  float64 `json:"resistanceLowRatio"`
	ResistanceHighRatio float64 `json:"resistanceHighRatio"`

	// Turret mount offsets in the facing-aligned hull frame: +X along the
	// facing, +Y toward the left gun's lateral side. Rotated by the raw
	// facing angle to reach world space.
	LeftTurretOffsetX  float64 `json:"leftTurretOffsetX"`
	LeftTurretOffsetY  float64 `json:"leftTurretOffsetY"`
	RightTurretOffsetX float64 `json:"rightTurretOffsetX"`
	RightTurretOffsetY float64 `json:"rightTurretOffsetY"`

	TrackingCooldown float64 `json:"trackingCooldown"`
	AutofireWindup   float64 `json:"autofireWindup"`

	// Half-angles of the overlap cones where both turrets fire.
	FrontOverlapAngle float64 `json:"frontOverlapAngle"`
	RearOverlapAngle  float64 `json:"rearOverlapAngle"`
}

// TurretConfig contains arc, recoil, and autofire-spool configuration
type TurretConfig struct {
	RotationSpeed   float64 `json:"rotationSpeed"`
	ArcHalfWidthDeg float64 `json:"arcHalfWidthDeg"`
	DeadZoneOffset  float64 `json:"deadZoneOffset"`

	RecoilDecayRate       float64 `json:"recoilDecayRate"`
	RecoilRandomOffsetMax float64 `json:"recoilRandomOffsetMax"`
	RecoilStackMultiplier float64 `json:"recoilStackMultiplier"`
	RecoilAngleMultiplier float64 `json:"recoilAngleMultiplier"`

	AutofireCooldownStart float64 `json:"autofireCooldownStart"`
	AutofireCooldownMin   float64 `json:"autofireCooldownMin"`
	SpoolUpTime           float64 `json:"spoolUpTime"`
	SpoolDownTime         float64 `json:"spoolDownTime"`
}

// ProjectileConfig contains configuration for both projectile kinds
type ProjectileConfig struct {
	HomingSpeed    float64 `json:"homingSpeed"`
	HomingSize     float64 `json:"homingSize"`
	HomingLength   float64 `json:"homingLength"`
	HomingWeight   float64 `json:"homingWeight"`
	HomingLifetime float64 `json:"homingLifetime"`
	ScanInterval   float64 `json:"scanInterval"`
	ScanRadius     float64 `json:"scanRadius"`
	HomingColor    RGB     `json:"homingColor"`

	DirectSpeed    float64 `json:"directSpeed"`
	DirectSize     float64 `json:"directSize"`
	DirectLength   float64 `json:"directLength"`
	DirectWeight   float64 `json:"directWeight"`
	DirectLifetime float64 `json:"directLifetime"`
	DirectColor    RGB     `json:"directColor"`

	SteeringRate float64 `json:"steeringRate"`
	HomingRecoil float64 `json:"homingRecoil"`
	DirectRecoil float64 `json:"directRecoil"`
}

// CameraConfig contains view-tracker smoothing configuration
type CameraConfig struct {
	MinSpeed      float64 `json:"minSpeed"`
	MaxSpeed      float64 `json:"maxSpeed"`
	MinSmoothing  float64 `json:"minSmoothing"`
	MaxSmoothing  float64 `json:"maxSmoothing"`
	SnapSmoothing float64 `json:"snapSmoothing"`
}

// StarfieldConfig contains background-star configuration
type StarfieldConfig struct {
	Count         int     `json:"count"`
	SpawnMargin   float64 `json:"spawnMargin"`
	RespawnMargin float64 `json:"respawnMargin"`
	ParallaxScale float64 `json:"parallaxScale"`
}

// LoadConfig loads a configuration from a file
func LoadConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *GameConfig, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default simulation configuration
func DefaultConfig() *GameConfig {
	return &GameConfig{
		ViewportWidth:  800,
		ViewportHeight: 600,
		Seed:           1,
		Ship: ShipConfig{
			NormalTopSpeed:  400,
			ControlTopSpeed: 150,
			BoostTopSpeed:   1200,

			ThrusterAccel:   2000,
			EngineAccel:     600,
			EngineSpoolTime: 1.5,
			EngineMinFactor: 0.5,
			EngineMaxFactor: 2.0,

			RotationSpeed: 4.0,

			ResistanceFloor:     40,
			ResistanceCruise:    200,
			ResistanceMax:       800,
			ResistanceLowRatio:  0.3,
			ResistanceHighRatio: 0.9,

			LeftTurretOffsetX:  -10,
			LeftTurretOffsetY:  7.5,
			RightTurretOffsetX: -10,
			RightTurretOffsetY: -7.5,

			TrackingCooldown: 0.5,
			AutofireWindup:   0.5,

			FrontOverlapAngle: 15 * math.Pi / 180,
			RearOverlapAngle:  15 * math.Pi / 180,
		},
		Turret: TurretConfig{
			RotationSpeed:   4.0,
			ArcHalfWidthDeg: 100,
			DeadZoneOffset:  math.Pi / 4,

			RecoilDecayRate:       2.0,
			RecoilRandomOffsetMax: 0.5,
			RecoilStackMultiplier: 5.0,
			RecoilAngleMultiplier: 0.2,

			AutofireCooldownStart: 0.5,
			AutofireCooldownMin:   0.1,
			SpoolUpTime:           2.0,
			SpoolDownTime:         2.0,
		},
		Projectile: ProjectileConfig{
			HomingSpeed:    800,
			HomingSize:     6,
			HomingLength:   12,
			HomingWeight:   2,
			HomingLifetime: 5,
			ScanInterval:   0.1,
			ScanRadius:     200,
			HomingColor:    RGB{R: 100, G: 150, B: 255},

			DirectSpeed:    1000,
			DirectSize:     3,
			DirectLength:   6,
			DirectWeight:   0.5,
			DirectLifetime: 2,
			DirectColor:    RGB{R: 255, G: 200, B: 50},

			SteeringRate: 10,
			HomingRecoil: 0.05,
			DirectRecoil: 0.03,
		},
		Camera: CameraConfig{
			MinSpeed:      1000,
			MaxSpeed:      10000,
			MinSmoothing:  0.4,
			MaxSmoothing:  0.8,
			SnapSmoothing: 0.9,
		},
		Starfield: StarfieldConfig{
			Count:         125,
			SpawnMargin:   150,
			RespawnMargin: 200,
			ParallaxScale: 0.25,
		},
	}
}
