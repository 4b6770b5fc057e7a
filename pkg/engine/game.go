// pkg/engine/game.go
package engine

import (
	"context"
	rand "math/rand/v2"
	"sync"

	"github.com/opd-ai/go-stardrift/pkg/camera"
	"github.com/opd-ai/go-stardrift/pkg/config"
	"github.com/opd-ai/go-stardrift/pkg/entity"
	"github.com/opd-ai/go-stardrift/pkg/event"
	"github.com/opd-ai/go-stardrift/pkg/logging"
	"github.com/opd-ai/go-stardrift/pkg/physics"
	"github.com/opd-ai/go-stardrift/pkg/pool"
)

// projectilePoolCapacity bounds live projectiles. Exhaustion drops new
// spawns silently.
const projectilePoolCapacity = 64

// Game is the simulation orchestrator. It owns the ship, the projectile
// pool, the starfield, and the view tracker, and advances them all once
// per Tick. Tick must never run concurrently with itself; QueueCommand is
// the only method safe to call from another goroutine.
type Game struct {
	Config      *config.GameConfig
	Ship        *entity.Ship
	Projectiles *pool.Pool[entity.Projectile]
	Starfield   *entity.Starfield
	Camera      *camera.Tracker
	EventBus    *event.Bus

	CurrentTick uint64
	ElapsedTime float64

	commands  []Command
	commandMu sync.Mutex

	// Raw movement axes accumulated while draining commands, normalized
	// into the ship's input direction afterwards.
	inputX float64
	inputY float64

	aimAngle float64
	hasAim   bool

	targetEntity entity.ID

	autofiring       bool
	autofireStart    float64
	autofireWasHeld  bool
	lastTrackingShot float64
	hasTrackingShot  bool

	prevMode entity.MoveMode

	rng    *rand.Rand
	logger *logging.Logger
	ctx    context.Context
}

// NewGame creates a simulation from the given configuration. The random
// source is seeded from the config so recoil jitter and star placement are
// reproducible.
func NewGame(cfg *config.GameConfig) *Game {
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	logger := logging.NewLogger()
	ctx := logging.WithCorrelationID(context.Background(), "")

	g := &Game{
		Config:      cfg,
		Ship:        entity.NewShip(cfg, rng),
		Projectiles: pool.New[entity.Projectile](projectilePoolCapacity),
		Starfield:   entity.NewStarfield(&cfg.Starfield, cfg.ViewportWidth, cfg.ViewportHeight, rng),
		Camera:      camera.NewTracker(&cfg.Camera, cfg.ViewportWidth, cfg.ViewportHeight),
		EventBus:    event.NewEventBus(),
		rng:         rng,
		logger:      logger,
		ctx:         ctx,
	}
	g.Camera.Center(g.Ship.Position)
	g.prevMode = g.Ship.Mode()

	logger.Info(ctx, "simulation created",
		"seed", cfg.Seed,
		"viewport_width", cfg.ViewportWidth,
		"viewport_height", cfg.ViewportHeight,
		"stars", cfg.Starfield.Count,
	)
	return g
}

// QueueCommand appends a command for the next Tick. Safe to call from a
// producer goroutine as long as Tick itself is not concurrent.
func (g *Game) QueueCommand(cmd Command) {
	g.commandMu.Lock()
	g.commands = append(g.commands, cmd)
	g.commandMu.Unlock()
}

// Tick advances the simulation by dt seconds.
func (g *Game) Tick(dt float64) {
	// 1. Reset transient input accumulators.
	g.inputX = 0
	g.inputY = 0

	// 2. Drain the command queue.
	g.commandMu.Lock()
	pending := g.commands
	g.commands = nil
	g.commandMu.Unlock()
	for _, cmd := range pending {
		g.applyCommand(cmd)
	}

	// 3. Normalize diagonal input to unit magnitude.
	dir := physics.Vector2D{X: g.inputX, Y: g.inputY}
	if dir.Length() > physics.MinMagnitude {
		dir = dir.Normalize()
	} else {
		dir = physics.Vector2D{}
	}
	g.Ship.InputDirection = dir

	// 4. Advance the simulation clock.
	g.ElapsedTime += dt
	g.CurrentTick++

	// 5. Push the shared aim target to both turrets.
	if g.hasAim {
		g.Ship.LeftTurret.SetTargetAngle(g.aimAngle)
		g.Ship.RightTurret.SetTargetAngle(g.aimAngle)
	}

	// 6. Resolve autofire. Spool-up runs the whole time the trigger is
	// held; shot emission additionally waits out the windup delay.
	g.resolveAutofire(dt)

	// 7. Turret tracking, recoil decay.
	g.Ship.LeftTurret.UpdateTracking(g.Ship.Rotation, dt)
	g.Ship.RightTurret.UpdateTracking(g.Ship.Rotation, dt)

	// 8. Ship physics.
	g.Ship.Update(dt)
	mode := g.Ship.Mode()
	if mode != g.prevMode {
		g.EventBus.Publish(event.NewModeEvent(g, g.prevMode.String(), mode.String()))
		g.prevMode = mode
	}

	// 9. Projectiles.
	g.updateProjectiles(dt)

	// 10. View tracker and parallax.
	g.Camera.Update(g.Ship.Position, g.Ship.Velocity.Length(), mode == entity.ModeControl)
	g.Starfield.Advance(g.Camera.Delta(), dt)

	g.EventBus.Publish(event.NewTickEvent(g, g.CurrentTick, g.ElapsedTime))
}

func (g *Game) applyCommand(cmd Command) {
	switch cmd.Kind {
	case CmdMoveUp:
		g.inputY -= 1
	case CmdMoveDown:
		g.inputY += 1
	case CmdMoveLeft:
		g.inputX -= 1
	case CmdMoveRight:
		g.inputX += 1
	case CmdToggleAlt:
		g.Ship.Alt = cmd.Enabled
	case CmdToggleBoost:
		g.Ship.Boost = cmd.Enabled
	case CmdToggleControl:
		g.Ship.Control = cmd.Enabled
	case CmdMouseTarget:
		g.applyMouseTarget(cmd)
	case CmdTargetEntity:
		g.targetEntity = cmd.Target
	case CmdStartTrackingShot:
		g.fireTrackingShot()
	case CmdStopTrackingShot:
		// Release has no effect beyond ending the click.
	case CmdStartAutofire:
		if !g.autofiring {
			g.autofiring = true
			g.autofireStart = g.ElapsedTime
		}
	case CmdStopAutofire:
		g.autofiring = false
	default:
		// Unrecognized commands are ignored.
	}
}

// applyMouseTarget resolves a screen click plus camera offset into a
// world-space aim angle.
func (g *Game) applyMouseTarget(cmd Command) {
	world := physics.Vector2D{X: cmd.X + cmd.CamX, Y: cmd.Y + cmd.CamY}
	to := world.Sub(g.Ship.Position)
	if to.Length() < physics.MinMagnitude {
		return
	}
	g.aimAngle = to.Angle()
	g.hasAim = true
	g.Ship.MouseAngle = g.aimAngle
	g.Ship.HasMouseTarget = true
}

// fireTrackingShot spawns homing projectiles from whichever guns the aim
// sector permits, gated by the per-ship cooldown. A click that follows an
// autofire burst in the same gesture is suppressed so releasing the hold
// cannot double-fire.
func (g *Game) fireTrackingShot() {
	suppressed := g.autofiring || g.autofireWasHeld
	g.autofireWasHeld = false
	if suppressed {
		return
	}
	if g.hasTrackingShot && g.ElapsedTime-g.lastTrackingShot < g.Config.Ship.TrackingCooldown {
		return
	}
	g.lastTrackingShot = g.ElapsedTime
	g.hasTrackingShot = true

	relative := 0.0
	if g.hasAim {
		relative = physics.ShortestAngleDiff(g.Ship.Rotation, g.aimAngle)
	}
	sector := entity.ClassifyFireSector(relative,
		g.Config.Ship.FrontOverlapAngle, g.Config.Ship.RearOverlapAngle)

	if sector == entity.SectorLeft || sector == entity.SectorBoth {
		g.fireHoming(g.Ship.LeftTurret)
	}
	if sector == entity.SectorRight || sector == entity.SectorBoth {
		g.fireHoming(g.Ship.RightTurret)
	}
}

// fireHoming spawns one homing projectile from a turret's world mount
// position along its recoil-jittered barrel angle. Only the gun that
// actually fired takes recoil.
func (g *Game) fireHoming(t *entity.Turret) {
	pos := g.Ship.TurretPosition(t)
	p := entity.NewHoming(pos, t.FiringAngle(), g.Ship.Velocity, &g.Config.Projectile, g.targetEntity)
	if _, ok := g.Projectiles.Allocate(p); !ok {
		g.EventBus.Publish(event.NewProjectileEvent(event.ProjectileDropped, g, uint64(p.ID), true))
		g.logger.Debug(g.ctx, "projectile pool exhausted, homing spawn dropped", "turret", t.Side.String())
		return
	}

	t.AddRecoil(g.Config.Projectile.HomingRecoil)
	g.EventBus.Publish(event.NewProjectileEvent(event.ProjectileFired, g, uint64(p.ID), true))
}

// resolveAutofire spools the turrets and, once the windup has elapsed,
// fires whichever guns the current aim sector permits.
func (g *Game) resolveAutofire(dt float64) {
	if !g.autofiring {
		g.Ship.LeftTurret.SpoolDown(dt)
		g.Ship.RightTurret.SpoolDown(dt)
		return
	}

	g.Ship.LeftTurret.SpoolUp(dt)
	g.Ship.RightTurret.SpoolUp(dt)

	if g.ElapsedTime-g.autofireStart < g.Config.Ship.AutofireWindup {
		return
	}

	// The release-click suppression only arms once shots actually start
	// going out. A tap shorter than the windup never suppresses.
	g.autofireWasHeld = true

	relative := physics.ShortestAngleDiff(g.Ship.Rotation, g.aimAngle)
	if !g.hasAim {
		relative = 0
	}
	sector := entity.ClassifyFireSector(relative,
		g.Config.Ship.FrontOverlapAngle, g.Config.Ship.RearOverlapAngle)

	// At most one shot is emitted per tick. In the overlap sectors both
	// guns participate with interleaved cooldowns, which doubles the
	// effective cadence without ever double-spawning on a single tick.
	switch sector {
	case entity.SectorLeft:
		g.fireDirect(g.Ship.LeftTurret)
	case entity.SectorRight:
		g.fireDirect(g.Ship.RightTurret)
	case entity.SectorBoth:
		if !g.fireDirect(g.Ship.LeftTurret) {
			g.fireDirect(g.Ship.RightTurret)
		}
	}
}

func (g *Game) fireDirect(t *entity.Turret) bool {
	if !t.TryFire(g.ElapsedTime) {
		return false
	}

	pos := g.Ship.TurretPosition(t)
	p := entity.NewDirectFire(pos, t.FiringAngle(), g.Ship.Velocity, &g.Config.Projectile)
	if _, ok := g.Projectiles.Allocate(p); !ok {
		g.EventBus.Publish(event.NewProjectileEvent(event.ProjectileDropped, g, uint64(p.ID), false))
		g.logger.Debug(g.ctx, "projectile pool exhausted, direct spawn dropped", "turret", t.Side.String())
		return true
	}

	t.AddRecoil(g.Config.Projectile.DirectRecoil)
	g.EventBus.Publish(event.NewProjectileEvent(event.ProjectileFired, g, uint64(p.ID), false))
	return true
}

// updateProjectiles advances every live projectile and removes the ones
// whose lifetime has run out.
func (g *Game) updateProjectiles(dt float64) {
	candidates := []entity.Candidate{
		{ID: g.Ship.ID, Position: g.Ship.Position},
	}

	var expired []pool.SlotID
	g.Projectiles.ForEachActive(func(id pool.SlotID, p *entity.Projectile) {
		lockedID, locked := p.Update(dt, candidates)
		if locked {
			g.EventBus.Publish(event.NewLockEvent(g, uint64(p.ID), uint64(lockedID)))
		}
		if p.Expired() {
			expired = append(expired, id)
		}
	})

	for _, id := range expired {
		if p, ok := g.Projectiles.Get(id); ok {
			g.EventBus.Publish(event.NewProjectileEvent(event.ProjectileExpired, g, uint64(p.ID), p.Kind == entity.HomingFire))
		}
		g.Projectiles.Deallocate(id)
	}
}

// ShipState is a snapshot of the ship's pose for rendering.
type ShipState struct {
	Position         physics.Vector2D
	Velocity         physics.Vector2D
	Rotation         float64
	Mode             entity.MoveMode
	LeftTurretAngle  float64
	RightTurretAngle float64
}

// ProjectileState is a snapshot of one live projectile for rendering.
type ProjectileState struct {
	ID       entity.ID
	Position physics.Vector2D
	Rotation float64
	Length   float64
	Width    float64
	Color    config.RGB
	Homing   bool
}

// StarState is a snapshot of one background star for rendering.
type StarState struct {
	Position   physics.Vector2D
	Shape      entity.StarShape
	Color      config.RGB
	Size       float64
	Brightness float64
}

// Snapshot is a read-only view of the simulation, safe to take any number
// of times between ticks.
type Snapshot struct {
	Tick        uint64
	ElapsedTime float64
	Ship        ShipState
	CameraPos   physics.Vector2D
	Projectiles []ProjectileState
}

// GetSnapshot returns the current simulation state. Pure and
// side-effect-free.
func (g *Game) GetSnapshot() *Snapshot {
	snap := &Snapshot{
		Tick:        g.CurrentTick,
		ElapsedTime: g.ElapsedTime,
		Ship: ShipState{
			Position:         g.Ship.Position,
			Velocity:         g.Ship.Velocity,
			Rotation:         g.Ship.Rotation,
			Mode:             g.Ship.Mode(),
			LeftTurretAngle:  g.Ship.LeftTurret.Angle,
			RightTurretAngle: g.Ship.RightTurret.Angle,
		},
		CameraPos:   g.Camera.Position,
		Projectiles: make([]ProjectileState, 0, g.Projectiles.ActiveCount()),
	}

	g.Projectiles.ForEachActive(func(id pool.SlotID, p *entity.Projectile) {
		snap.Projectiles = append(snap.Projectiles, ProjectileState{
			ID:       p.ID,
			Position: p.Position,
			Rotation: p.FacingAngle(),
			Length:   p.Length,
			Width:    p.Size,
			Color:    p.Color,
			Homing:   p.Kind == entity.HomingFire,
		})
	})
	return snap
}

// GetStarStates returns render data for the background starfield.
func (g *Game) GetStarStates() []StarState {
	states := make([]StarState, 0, g.Starfield.Count())
	g.Starfield.ForEach(func(s *entity.Star) {
		states = append(states, StarState{
			Position:   s.Position,
			Shape:      s.Shape,
			Color:      s.Color,
			Size:       s.Size,
			Brightness: s.Brightness,
		})
	})
	return states
}

// AimAngle returns the current world-space aim angle, falling back to the
// hull facing before any mouse target has been set.
func (g *Game) AimAngle() float64 {
	if g.hasAim {
		return g.aimAngle
	}
	return g.Ship.Rotation
}
