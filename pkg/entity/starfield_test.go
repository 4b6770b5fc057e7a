// pkg/entity/starfield_test.go
package entity

import (
	"math"
	"testing"

	"github.com/opd-ai/go-stardrift/pkg/config"
	"github.com/opd-ai/go-stardrift/pkg/physics"
)

func TestNewStarfield_PopulatesConfiguredCount(t *testing.T) {
	cfg := config.DefaultConfig()

	field := NewStarfield(&cfg.Starfield, 800, 600, testRNG())

	if got := field.Count(); got != cfg.Starfield.Count {
		t.Errorf("Count() = %d, want %d", got, cfg.Starfield.Count)
	}
}

func TestStarfield_Advance_ParallaxScalesWithDepth(t *testing.T) {
	cfg := config.DefaultConfig()
	field := NewStarfield(&cfg.Starfield, 800, 600, testRNG())

	type snapshot struct {
		pos   physics.Vector2D
		depth float64
	}
	var before []snapshot
	field.ForEach(func(s *Star) {
		before = append(before, snapshot{pos: s.Position, depth: s.Depth})
	})

	delta := physics.Vector2D{X: 10, Y: 0}
	field.Advance(delta, 0.016)

	i := 0
	field.ForEach(func(s *Star) {
		b := before[i]
		i++

		// The spawn margin sits inside the respawn margin and the shift is
		// tiny, so no star respawns on this single advance.
		expected := b.pos.X - delta.X*b.depth*cfg.Starfield.ParallaxScale
		if math.Abs(s.Position.X-expected) > 1e-9 {
			t.Errorf("star %d: X = %v, want %v (depth %v)", i-1, s.Position.X, expected, b.depth)
		}
		if s.Position.Y != b.pos.Y {
			t.Errorf("star %d: Y moved with an x-only delta: %v -> %v", i-1, b.pos.Y, s.Position.Y)
		}
	})
}

func TestStarfield_Advance_RespawnsWithinMargins(t *testing.T) {
	cfg := config.DefaultConfig()
	field := NewStarfield(&cfg.Starfield, 800, 600, testRNG())

	// Huge sustained camera motion shoves every star off one edge.
	for i := 0; i < 200; i++ {
		field.Advance(physics.Vector2D{X: 500, Y: 300}, 0.016)
	}

	margin := cfg.Starfield.RespawnMargin
	field.ForEach(func(s *Star) {
		if s.Position.X < -margin-1e-9 || s.Position.X > 800+margin+1e-9 ||
			s.Position.Y < -margin-1e-9 || s.Position.Y > 600+margin+1e-9 {
			t.Errorf("star at %v outside respawn margins", s.Position)
		}
	})
}

func TestStarfield_Advance_BrightnessStaysInRange(t *testing.T) {
	cfg := config.DefaultConfig()
	field := NewStarfield(&cfg.Starfield, 800, 600, testRNG())

	for i := 0; i < 100; i++ {
		field.Advance(physics.Vector2D{}, 0.016)
	}

	field.ForEach(func(s *Star) {
		if s.Brightness < 0 || s.Brightness > 1 {
			t.Errorf("brightness %v outside [0,1]", s.Brightness)
		}
	})
}
