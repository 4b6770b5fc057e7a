// pkg/render/engo/scene.go
package engo

import (
	"context"
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-stardrift/pkg/engine"
	"github.com/opd-ai/go-stardrift/pkg/logging"
)

// tickStep is the fixed simulation step in seconds. Rendering runs at the
// display rate; the simulation always advances in these increments.
const tickStep = 1.0 / 60.0

// GameScene is the main Engo scene. It owns the simulation, advances it
// with a fixed timestep, and mirrors every snapshot into the render system.
type GameScene struct {
	world    *ecs.World
	game     *engine.Game
	renderer *Renderer
	logger   *logging.Logger
}

// NewGameScene creates a scene around an existing simulation.
func NewGameScene(game *engine.Game) *GameScene {
	return &GameScene{
		game:   game,
		logger: logging.NewLogger(),
	}
}

// Type uniquely identifies the scene
func (scene *GameScene) Type() string { return "GameScene" }

// Preload is called before the scene is shown. All drawables are plain
// shapes, so there are no assets to load.
func (scene *GameScene) Preload() {}

// Setup initializes the scene's systems and entities.
func (scene *GameScene) Setup(u engo.Updater) {
	world, ok := u.(*ecs.World)
	if !ok {
		scene.logger.Error(context.Background(), "updater is not an ECS world")
		return
	}
	scene.world = world

	common.SetBackground(color.RGBA{R: 5, G: 5, B: 15, A: 255})

	renderSystem := &common.RenderSystem{}
	scene.world.AddSystem(renderSystem)
	scene.world.AddSystem(&common.MouseSystem{})

	scene.renderer = NewRenderer(scene.world, renderSystem)
	scene.renderer.Initialize()

	SetupInputBindings()
	scene.world.AddSystem(NewInputSystem(scene.game))
	scene.world.AddSystem(newSimulationSystem(scene.game, scene.renderer))

	hud := NewHUDSystem(scene.game, renderSystem)
	hud.Initialize()
	scene.world.AddSystem(hud)

	scene.logger.Info(context.Background(), "scene initialized",
		"viewport_width", engo.GameWidth(),
		"viewport_height", engo.GameHeight(),
	)
}

// Exit is called when the scene is closed.
func (scene *GameScene) Exit() {
	scene.logger.Info(context.Background(), "scene exiting")
	engo.Exit()
}

// simulationSystem steps the game with a fixed timestep and pushes each
// resulting snapshot to the renderer.
type simulationSystem struct {
	game        *engine.Game
	renderer    *Renderer
	accumulator float64
}

func newSimulationSystem(game *engine.Game, renderer *Renderer) *simulationSystem {
	return &simulationSystem{game: game, renderer: renderer}
}

// Add satisfies the ecs.System interface
func (ss *simulationSystem) Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent) {
	// Not used for simulation system
}

// Remove satisfies the ecs.System interface
func (ss *simulationSystem) Remove(basic ecs.BasicEntity) {
	// Not used for simulation system
}

// Update advances the simulation by however many fixed steps fit into the
// frame time, then syncs the renderer from the latest snapshot.
func (ss *simulationSystem) Update(dt float32) {
	ss.accumulator += float64(dt)
	ss.drainSteps()

	snap := ss.game.GetSnapshot()
	ss.renderer.SetCamera(snap.CameraPos)
	ss.renderer.SyncShip(snap.Ship)
	ss.renderer.SyncProjectiles(snap.Projectiles)
	ss.renderer.SyncStars(ss.game.GetStarStates())
}

// drainSteps runs as many whole fixed steps as the accumulator holds and
// returns how many ran.
func (ss *simulationSystem) drainSteps() int {
	steps := 0
	for ss.accumulator >= tickStep {
		ss.game.Tick(tickStep)
		ss.accumulator -= tickStep
		steps++
	}
	return steps
}
