// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/opd-ai/go-stardrift/pkg/engine"
	"github.com/opd-ai/go-stardrift/pkg/logging"
)

// Renderer draws one frame from simulation snapshots. Implementations are
// free to ignore whatever they cannot show.
type Renderer interface {
	Clear()
	RenderStar(star engine.StarState)
	RenderShip(ship engine.ShipState)
	RenderProjectile(projectile engine.ProjectileState)
	Present()
}

// DrawFrame renders a complete frame in back-to-front order.
func DrawFrame(r Renderer, snap *engine.Snapshot, stars []engine.StarState) {
	r.Clear()
	for _, s := range stars {
		r.RenderStar(s)
	}
	for _, p := range snap.Projectiles {
		r.RenderProjectile(p)
	}
	r.RenderShip(snap.Ship)
	r.Present()
}

// NullRenderer is a Renderer that only logs, for headless runs.
type NullRenderer struct {
	logger *logging.Logger
}

// NewNullRenderer creates a new NullRenderer with structured logging.
func NewNullRenderer() *NullRenderer {
	return &NullRenderer{
		logger: logging.NewLogger(),
	}
}

// Clear implements Renderer.
func (d *NullRenderer) Clear() {}

// RenderStar implements Renderer.
func (d *NullRenderer) RenderStar(star engine.StarState) {}

// RenderShip implements Renderer.
func (d *NullRenderer) RenderShip(ship engine.ShipState) {
	ctx := context.Background()
	d.logger.Debug(ctx, "RenderShip called",
		"x", ship.Position.X,
		"y", ship.Position.Y,
		"mode", ship.Mode.String(),
	)
}

// RenderProjectile implements Renderer.
func (d *NullRenderer) RenderProjectile(projectile engine.ProjectileState) {
	ctx := context.Background()
	d.logger.Debug(ctx, "RenderProjectile called",
		"projectile_id", projectile.ID,
		"homing", projectile.Homing,
	)
}

// Present implements Renderer.
func (d *NullRenderer) Present() {}
