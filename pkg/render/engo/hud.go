// pkg/render/engo/hud.go
package engo

import (
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-stardrift/pkg/engine"
	"github.com/opd-ai/go-stardrift/pkg/entity"
)

const (
	hudMargin     = 10
	hudSwatchSize = 16
	hudBarWidth   = 100
	hudBarHeight  = 6
	hudBarSpacing = 4
)

// HUDSystem draws the heads-up display: a movement-mode swatch and one
// spool bar per turret. Everything is a plain shape, so no font loading
// is needed.
type HUDSystem struct {
	game         *engine.Game
	renderSystem *common.RenderSystem

	modeSwatch *spriteEntity
	leftSpool  *spriteEntity
	rightSpool *spriteEntity
	leftFrame  *spriteEntity
	rightFrame *spriteEntity

	modeColors map[entity.MoveMode]color.RGBA
}

// NewHUDSystem creates a HUD fed from the given game.
func NewHUDSystem(game *engine.Game, renderSystem *common.RenderSystem) *HUDSystem {
	return &HUDSystem{
		game:         game,
		renderSystem: renderSystem,
		modeColors: map[entity.MoveMode]color.RGBA{
			entity.ModeNormal:   {R: 120, G: 200, B: 120, A: 255},
			entity.ModeControl:  {R: 120, G: 160, B: 240, A: 255},
			entity.ModeBoost:    {R: 240, G: 180, B: 80, A: 255},
			entity.ModeAlt:      {R: 200, G: 120, B: 220, A: 255},
			entity.ModeDisabled: {R: 220, G: 80, B: 80, A: 255},
		},
	}
}

// Add satisfies the ecs.System interface
func (hud *HUDSystem) Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent) {
	// Not used for HUD system
}

// Remove satisfies the ecs.System interface
func (hud *HUDSystem) Remove(basic ecs.BasicEntity) {
	// Not used for HUD system
}

// Initialize creates the HUD entities. Must run after the render system
// is registered.
func (hud *HUDSystem) Initialize() {
	hud.modeSwatch = hud.addRect(hudMargin, hudMargin, hudSwatchSize, hudSwatchSize, color.RGBA{A: 255})

	barX := float32(hudMargin + hudSwatchSize + hudBarSpacing)
	hud.leftFrame = hud.addFrame(barX, hudMargin, hudBarWidth, hudBarHeight)
	hud.leftSpool = hud.addRect(barX, hudMargin, 0, hudBarHeight, color.RGBA{R: 220, G: 220, B: 120, A: 255})

	rightY := float32(hudMargin + hudBarHeight + hudBarSpacing)
	hud.rightFrame = hud.addFrame(barX, rightY, hudBarWidth, hudBarHeight)
	hud.rightSpool = hud.addRect(barX, rightY, 0, hudBarHeight, color.RGBA{R: 220, G: 220, B: 120, A: 255})
}

func (hud *HUDSystem) addRect(x, y, w, h float32, c color.RGBA) *spriteEntity {
	s := &spriteEntity{basic: ecs.NewBasic()}
	s.render = common.RenderComponent{
		Drawable: common.Rectangle{},
		Color:    c,
	}
	s.space = common.SpaceComponent{
		Position: engo.Point{X: x, Y: y},
		Width:    w,
		Height:   h,
	}
	hud.renderSystem.Add(&s.basic, &s.render, &s.space)
	return s
}

func (hud *HUDSystem) addFrame(x, y, w, h float32) *spriteEntity {
	s := &spriteEntity{basic: ecs.NewBasic()}
	s.render = common.RenderComponent{
		Drawable: common.Rectangle{
			BorderWidth: 1,
			BorderColor: color.RGBA{R: 120, G: 120, B: 140, A: 255},
		},
		Color: color.Transparent,
	}
	s.space = common.SpaceComponent{
		Position: engo.Point{X: x, Y: y},
		Width:    w,
		Height:   h,
	}
	hud.renderSystem.Add(&s.basic, &s.render, &s.space)
	return s
}

// Update refreshes the HUD from the current ship state.
func (hud *HUDSystem) Update(dt float32) {
	if hud.modeSwatch == nil {
		return
	}

	ship := hud.game.Ship
	if c, ok := hud.modeColors[ship.Mode()]; ok {
		hud.modeSwatch.render.Color = c
	}

	hud.leftSpool.space.Width = float32(ship.LeftTurret.SpoolLevel) * hudBarWidth
	hud.rightSpool.space.Width = float32(ship.RightTurret.SpoolLevel) * hudBarWidth
}
