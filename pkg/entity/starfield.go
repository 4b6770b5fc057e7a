// pkg/entity/starfield.go
package entity

import (
	"math"
	rand "math/rand/v2"

	"github.com/opd-ai/go-stardrift/pkg/config"
	"github.com/opd-ai/go-stardrift/pkg/physics"
	"github.com/opd-ai/go-stardrift/pkg/pool"
)

// StarShape selects the sprite used for a background star
type StarShape int

const (
	StarPoint StarShape = iota
	StarDiamond
	StarCross
)

// Star is a cosmetic background entity scrolled by camera parallax.
type Star struct {
	Position   physics.Vector2D
	Depth      float64
	Size       float64
	Brightness float64
	Shape      StarShape
	Color      config.RGB

	twinklePhase float64
	twinkleRate  float64
}

// Starfield owns the pooled background stars and scrolls them against the
// camera's per-tick movement delta.
type Starfield struct {
	stars *pool.Pool[Star]
	cfg   *config.StarfieldConfig
	rng   *rand.Rand

	viewportWidth  float64
	viewportHeight float64
}

// NewStarfield seeds the full star population across the viewport plus the
// spawn margin.
func NewStarfield(cfg *config.StarfieldConfig, viewportWidth, viewportHeight float64, rng *rand.Rand) *Starfield {
	f := &Starfield{
		stars:          pool.New[Star](cfg.Count),
		cfg:            cfg,
		rng:            rng,
		viewportWidth:  viewportWidth,
		viewportHeight: viewportHeight,
	}

	for i := 0; i < cfg.Count; i++ {
		f.stars.Allocate(f.randomStar(
			-cfg.SpawnMargin+rng.Float64()*(viewportWidth+2*cfg.SpawnMargin),
			-cfg.SpawnMargin+rng.Float64()*(viewportHeight+2*cfg.SpawnMargin),
		))
	}
	return f
}

func (f *Starfield) randomStar(x, y float64) Star {
	shade := uint8(180 + f.rng.IntN(76))
	return Star{
		Position:     physics.Vector2D{X: x, Y: y},
		Depth:        0.2 + f.rng.Float64()*0.8,
		Size:         1 + f.rng.Float64()*2,
		Brightness:   0.5 + f.rng.Float64()*0.5,
		Shape:        StarShape(f.rng.IntN(3)),
		Color:        config.RGB{R: shade, G: shade, B: uint8(math.Min(255, float64(shade)+20))},
		twinklePhase: f.rng.Float64() * 2 * math.Pi,
		twinkleRate:  1 + f.rng.Float64()*3,
	}
}

// Advance scrolls every star by the camera delta scaled by its depth and
// the parallax factor, advances twinkle phases, and respawns stars that
// drift beyond the respawn margin on the opposite edge.
func (f *Starfield) Advance(cameraDelta physics.Vector2D, deltaTime float64) {
	margin := f.cfg.RespawnMargin
	f.stars.ForEachActive(func(id pool.SlotID, s *Star) {
		shift := cameraDelta.Scale(s.Depth * f.cfg.ParallaxScale)
		s.Position = s.Position.Sub(shift)

		s.twinklePhase += s.twinkleRate * deltaTime
		s.Brightness = 0.5 + 0.5*(0.5+0.5*math.Sin(s.twinklePhase))

		switch {
		case s.Position.X < -margin:
			s.Position.X = f.viewportWidth + margin
			s.Position.Y = f.rng.Float64() * f.viewportHeight
		case s.Position.X > f.viewportWidth+margin:
			s.Position.X = -margin
			s.Position.Y = f.rng.Float64() * f.viewportHeight
		}
		switch {
		case s.Position.Y < -margin:
			s.Position.Y = f.viewportHeight + margin
			s.Position.X = f.rng.Float64() * f.viewportWidth
		case s.Position.Y > f.viewportHeight+margin:
			s.Position.Y = -margin
			s.Position.X = f.rng.Float64() * f.viewportWidth
		}
	})
}

// Count returns the number of live stars.
func (f *Starfield) Count() int {
	return f.stars.ActiveCount()
}

// ForEach visits every live star for rendering.
func (f *Starfield) ForEach(fn func(s *Star)) {
	f.stars.ForEachActive(func(id pool.SlotID, s *Star) {
		fn(s)
	})
}
