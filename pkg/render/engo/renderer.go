// pkg/render/engo/renderer.go
package engo

import (
	"image/color"
	"math"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-stardrift/pkg/config"
	"github.com/opd-ai/go-stardrift/pkg/engine"
	"github.com/opd-ai/go-stardrift/pkg/entity"
	"github.com/opd-ai/go-stardrift/pkg/physics"
)

// spriteEntity bundles an ECS entity with its components so they can be
// mutated in place every frame.
type spriteEntity struct {
	basic  ecs.BasicEntity
	render common.RenderComponent
	space  common.SpaceComponent
}

// Renderer draws simulation snapshots through the Engo render system.
// Projectiles and stars are keyed by ID/index and updated in place; the
// ship and its turret barrels are fixed entities.
type Renderer struct {
	world        *ecs.World
	renderSystem *common.RenderSystem

	ship        *spriteEntity
	leftBarrel  *spriteEntity
	rightBarrel *spriteEntity

	projectileEntities map[entity.ID]*spriteEntity
	starEntities       []*spriteEntity

	cameraPos physics.Vector2D
}

// NewRenderer creates a renderer bound to the scene's world.
func NewRenderer(world *ecs.World, renderSystem *common.RenderSystem) *Renderer {
	return &Renderer{
		world:              world,
		renderSystem:       renderSystem,
		projectileEntities: make(map[entity.ID]*spriteEntity),
	}
}

func (r *Renderer) addSprite(drawable common.Drawable, w, h float32, c color.Color) *spriteEntity {
	s := &spriteEntity{basic: ecs.NewBasic()}
	s.render = common.RenderComponent{
		Drawable: drawable,
		Color:    c,
	}
	s.space = common.SpaceComponent{
		Position: engo.Point{X: 0, Y: 0},
		Width:    w,
		Height:   h,
	}
	r.renderSystem.Add(&s.basic, &s.render, &s.space)
	return s
}

// Initialize creates the fixed ship and barrel sprites.
func (r *Renderer) Initialize() {
	r.ship = r.addSprite(common.Triangle{}, 24, 24, color.RGBA{R: 220, G: 220, B: 240, A: 255})
	r.leftBarrel = r.addSprite(common.Rectangle{}, 10, 3, color.RGBA{R: 160, G: 160, B: 180, A: 255})
	r.rightBarrel = r.addSprite(common.Rectangle{}, 10, 3, color.RGBA{R: 160, G: 160, B: 180, A: 255})
}

// SetCamera records the camera's top-left world position for this frame.
func (r *Renderer) SetCamera(pos physics.Vector2D) {
	r.cameraPos = pos
}

func (r *Renderer) worldToScreen(pos physics.Vector2D) engo.Point {
	return engo.Point{
		X: float32(pos.X - r.cameraPos.X),
		Y: float32(pos.Y - r.cameraPos.Y),
	}
}

func rgba(c config.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// degrees converts a simulation angle to the degrees Engo expects.
func degrees(rad float64) float32 {
	return float32(rad * 180 / math.Pi)
}

// SyncShip positions the hull and both turret barrels from a snapshot.
func (r *Renderer) SyncShip(s engine.ShipState) {
	r.ship.space.Position = r.worldToScreen(s.Position)
	r.ship.space.Rotation = degrees(s.Rotation)

	r.leftBarrel.space.Position = r.worldToScreen(s.Position)
	r.leftBarrel.space.Rotation = degrees(s.LeftTurretAngle)
	r.rightBarrel.space.Position = r.worldToScreen(s.Position)
	r.rightBarrel.space.Rotation = degrees(s.RightTurretAngle)
}

// SyncProjectiles reconciles the projectile sprites against the snapshot,
// creating sprites for new shots and removing sprites for expired ones.
func (r *Renderer) SyncProjectiles(projectiles []engine.ProjectileState) {
	seen := make(map[entity.ID]bool, len(projectiles))

	for _, p := range projectiles {
		seen[p.ID] = true
		s, exists := r.projectileEntities[p.ID]
		if !exists {
			s = r.addSprite(common.Rectangle{}, float32(p.Length), float32(p.Width), rgba(p.Color))
			r.projectileEntities[p.ID] = s
		}
		s.space.Position = r.worldToScreen(p.Position)
		s.space.Rotation = degrees(p.Rotation)
	}

	for id, s := range r.projectileEntities {
		if !seen[id] {
			r.renderSystem.Remove(s.basic)
			delete(r.projectileEntities, id)
		}
	}
}

// SyncStars updates the starfield sprites. Star count is fixed, so sprites
// are created lazily on the first frame and reused afterwards.
func (r *Renderer) SyncStars(stars []engine.StarState) {
	for len(r.starEntities) < len(stars) {
		s := r.addSprite(common.Circle{}, 2, 2, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		r.starEntities = append(r.starEntities, s)
	}

	for i, star := range stars {
		s := r.starEntities[i]
		s.space.Position = engo.Point{X: float32(star.Position.X), Y: float32(star.Position.Y)}
		s.space.Width = float32(star.Size)
		s.space.Height = float32(star.Size)

		c := rgba(star.Color)
		c.A = uint8(255 * star.Brightness)
		s.render.Color = c
	}
}
