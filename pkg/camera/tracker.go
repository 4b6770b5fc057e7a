// pkg/camera/tracker.go

// Package camera implements the follow-cam view tracker. The tracker lerps
// toward keeping the ship centered in the viewport, with a smoothing factor
// that adapts to ship speed, and exposes the per-tick movement delta that
// parallax consumers scale by their own depth.
package camera

import (
	"github.com/opd-ai/go-stardrift/pkg/config"
	"github.com/opd-ai/go-stardrift/pkg/physics"
)

// Tracker follows a world position with adaptive smoothing.
type Tracker struct {
	Position physics.Vector2D

	previous       physics.Vector2D
	viewportWidth  float64
	viewportHeight float64
	cfg            *config.CameraConfig
}

// NewTracker creates a tracker for the given viewport size.
func NewTracker(cfg *config.CameraConfig, viewportWidth, viewportHeight float64) *Tracker {
	return &Tracker{
		viewportWidth:  viewportWidth,
		viewportHeight: viewportHeight,
		cfg:            cfg,
	}
}

// Smoothing returns the lerp factor for the current ship speed. Control
// mode overrides the speed curve with the tighter snap factor.
func (t *Tracker) Smoothing(shipSpeed float64, controlMode bool) float64 {
	if controlMode {
		return t.cfg.SnapSmoothing
	}
	switch {
	case shipSpeed <= t.cfg.MinSpeed:
		return t.cfg.MinSmoothing
	case shipSpeed >= t.cfg.MaxSpeed:
		return t.cfg.MaxSmoothing
	default:
		frac := (shipSpeed - t.cfg.MinSpeed) / (t.cfg.MaxSpeed - t.cfg.MinSpeed)
		return physics.Lerp(t.cfg.MinSmoothing, t.cfg.MaxSmoothing, frac)
	}
}

// Update moves the tracker toward centering the ship and records the
// frame-to-frame delta. The delta is valid until the next Update call.
func (t *Tracker) Update(shipPosition physics.Vector2D, shipSpeed float64, controlMode bool) {
	t.previous = t.Position

	target := physics.Vector2D{
		X: shipPosition.X - t.viewportWidth/2,
		Y: shipPosition.Y - t.viewportHeight/2,
	}

	factor := t.Smoothing(shipSpeed, controlMode)
	t.Position = physics.Vector2D{
		X: physics.Lerp(t.Position.X, target.X, factor),
		Y: physics.Lerp(t.Position.Y, target.Y, factor),
	}
}

// Delta returns the tracker movement produced by the last Update.
func (t *Tracker) Delta() physics.Vector2D {
	return t.Position.Sub(t.previous)
}

// Center snaps the tracker onto the ship with no smoothing, clearing any
// pending delta. Used at simulation start.
func (t *Tracker) Center(shipPosition physics.Vector2D) {
	t.Position = physics.Vector2D{
		X: shipPosition.X - t.viewportWidth/2,
		Y: shipPosition.Y - t.viewportHeight/2,
	}
	t.previous = t.Position
}
