// pkg/render/engo/scene_test.go
package engo

import (
	"math"
	"testing"

	"github.com/opd-ai/go-stardrift/pkg/config"
	"github.com/opd-ai/go-stardrift/pkg/engine"
)

// TestNewGameScene tests the creation of a new game scene
func TestNewGameScene(t *testing.T) {
	game := engine.NewGame(config.DefaultConfig())

	scene := NewGameScene(game)

	if scene == nil {
		t.Fatal("NewGameScene() returned nil")
	}
	if scene.game != game {
		t.Error("Expected game to be set correctly")
	}
	if scene.logger == nil {
		t.Error("Expected logger to be initialized")
	}
}

// TestGameScene_Type tests the Type method
func TestGameScene_Type(t *testing.T) {
	scene := NewGameScene(engine.NewGame(config.DefaultConfig()))

	if got := scene.Type(); got != "GameScene" {
		t.Errorf("Type() = %q, want %q", got, "GameScene")
	}
}

// TestNewInputSystem tests input system creation
func TestNewInputSystem(t *testing.T) {
	game := engine.NewGame(config.DefaultConfig())

	is := NewInputSystem(game)

	if is == nil {
		t.Fatal("NewInputSystem() returned nil")
	}
	if is.game != game {
		t.Error("Expected game to be set correctly")
	}
	if is.boostHeld || is.controlHeld || is.altHeld || is.autofireHeld {
		t.Error("Expected all held flags to start false")
	}
}

// TestDegrees tests radian to degree conversion
func TestDegrees(t *testing.T) {
	tests := []struct {
		name string
		rad  float64
		want float32
	}{
		{"zero", 0, 0},
		{"quarter turn", math.Pi / 2, 90},
		{"half turn", math.Pi, 180},
		{"negative quarter", -math.Pi / 2, -90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := degrees(tt.rad)
			if math.Abs(float64(got-tt.want)) > 1e-4 {
				t.Errorf("degrees(%v) = %v, want %v", tt.rad, got, tt.want)
			}
		})
	}
}

// TestSimulationSystem_FixedStepAccumulation tests that frame time is
// consumed in whole fixed steps.
func TestSimulationSystem_FixedStepAccumulation(t *testing.T) {
	game := engine.NewGame(config.DefaultConfig())
	ss := newSimulationSystem(game, nil)

	// Accumulate just under one step; no tick should run.
	ss.accumulator += tickStep * 0.9
	steps := ss.drainSteps()
	if steps != 0 {
		t.Errorf("ran %d steps with a partial frame, want 0", steps)
	}

	// Two and a half steps of frame time yields two ticks and a remainder.
	ss.accumulator += tickStep * 1.6
	steps = ss.drainSteps()
	if steps != 2 {
		t.Errorf("ran %d steps, want 2", steps)
	}
	if ss.accumulator < 0 || ss.accumulator >= tickStep {
		t.Errorf("remainder %v outside [0, tickStep)", ss.accumulator)
	}

	if game.CurrentTick != 2 {
		t.Errorf("game advanced %d ticks, want 2", game.CurrentTick)
	}
	if math.Abs(game.ElapsedTime-2*tickStep) > 1e-9 {
		t.Errorf("elapsed time = %v, want %v", game.ElapsedTime, 2*tickStep)
	}
}
