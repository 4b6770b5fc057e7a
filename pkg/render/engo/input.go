// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-stardrift/pkg/engine"
)

// InputSystem polls keyboard and mouse state each frame and queues the
// resulting commands on the simulation.
type InputSystem struct {
	game *engine.Game

	// Held state for the mode keys, so toggles are only queued on change.
	boostHeld    bool
	controlHeld  bool
	altHeld      bool
	autofireHeld bool
}

// NewInputSystem creates an input system feeding the given game.
func NewInputSystem(game *engine.Game) *InputSystem {
	return &InputSystem{game: game}
}

// Add satisfies the ecs.System interface
func (is *InputSystem) Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent) {
	// Not used for input system
}

// Remove satisfies the ecs.System interface
func (is *InputSystem) Remove(basic ecs.BasicEntity) {
	// Not used for input system
}

// Update queues one frame's worth of input commands.
func (is *InputSystem) Update(dt float32) {
	is.handleMovement()
	is.handleModes()
	is.handleAim()
	is.handleFire()
}

func (is *InputSystem) handleMovement() {
	if engo.Input.Button("moveUp").Down() {
		is.game.QueueCommand(engine.Move(engine.CmdMoveUp))
	}
	if engo.Input.Button("moveDown").Down() {
		is.game.QueueCommand(engine.Move(engine.CmdMoveDown))
	}
	if engo.Input.Button("moveLeft").Down() {
		is.game.QueueCommand(engine.Move(engine.CmdMoveLeft))
	}
	if engo.Input.Button("moveRight").Down() {
		is.game.QueueCommand(engine.Move(engine.CmdMoveRight))
	}
}

func (is *InputSystem) handleModes() {
	is.syncToggle("boost", engine.CmdToggleBoost, &is.boostHeld)
	is.syncToggle("control", engine.CmdToggleControl, &is.controlHeld)
	is.syncToggle("altMode", engine.CmdToggleAlt, &is.altHeld)
}

// syncToggle queues a toggle command whenever the key's held state changes.
func (is *InputSystem) syncToggle(button string, kind engine.CommandKind, held *bool) {
	down := engo.Input.Button(button).Down()
	if down != *held {
		*held = down
		is.game.QueueCommand(engine.Toggle(kind, down))
	}
}

func (is *InputSystem) handleAim() {
	cam := is.game.GetSnapshot().CameraPos
	is.game.QueueCommand(engine.MouseTarget(
		float64(engo.Input.Mouse.X),
		float64(engo.Input.Mouse.Y),
		cam.X,
		cam.Y,
	))
}

func (is *InputSystem) handleFire() {
	if engo.Input.Button("fire").JustPressed() {
		is.game.QueueCommand(engine.Command{Kind: engine.CmdStartTrackingShot})
	}

	down := engo.Input.Button("autofire").Down()
	if down != is.autofireHeld {
		is.autofireHeld = down
		if down {
			is.game.QueueCommand(engine.Command{Kind: engine.CmdStartAutofire})
		} else {
			is.game.QueueCommand(engine.Command{Kind: engine.CmdStopAutofire})
		}
	}
}

// SetupInputBindings registers all keyboard bindings. Must be called from
// the scene's Setup.
func SetupInputBindings() {
	engo.Input.RegisterButton("moveUp", engo.KeyW, engo.KeyArrowUp)
	engo.Input.RegisterButton("moveDown", engo.KeyS, engo.KeyArrowDown)
	engo.Input.RegisterButton("moveLeft", engo.KeyA, engo.KeyArrowLeft)
	engo.Input.RegisterButton("moveRight", engo.KeyD, engo.KeyArrowRight)

	engo.Input.RegisterButton("boost", engo.KeyLeftShift)
	engo.Input.RegisterButton("control", engo.KeyE)
	engo.Input.RegisterButton("altMode", engo.KeyQ)

	engo.Input.RegisterButton("fire", engo.KeySpace)
	engo.Input.RegisterButton("autofire", engo.KeyF)
}
