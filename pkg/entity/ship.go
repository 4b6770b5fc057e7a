// pkg/entity/ship.go
package entity

import (
	"math"
	rand "math/rand/v2"

	"github.com/opd-ai/go-stardrift/pkg/config"
	"github.com/opd-ai/go-stardrift/pkg/physics"
)

// MoveMode is the ship's derived movement mode
type MoveMode int

const (
	ModeNormal MoveMode = iota
	ModeControl
	ModeBoost
	ModeAlt
	ModeDisabled
)

// String returns the mode name for logging and events
func (m MoveMode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeControl:
		return "control"
	case ModeBoost:
		return "boost"
	case ModeAlt:
		return "alt"
	case ModeDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// ResolveMode derives the movement mode from the three toggle flags.
// Control and boost together cancel out into Disabled; alt wins over the
// single-flag modes.
func ResolveMode(control, boost, alt bool) MoveMode {
	switch {
	case control && boost:
		return ModeDisabled
	case alt:
		return ModeAlt
	case control:
		return ModeControl
	case boost:
		return ModeBoost
	default:
		return ModeNormal
	}
}

// modeProfile fixes what each movement mode enables.
type modeProfile struct {
	topSpeed   float64
	unbounded  bool
	thrusters  bool
	engine     bool
	resistance bool
	rotates    bool
}

// Ship represents the player-controlled vessel. Movement flags and input
// axes are written by the orchestrator while draining commands; Update
// consumes them once per tick.
type Ship struct {
	BaseEntity

	Control bool
	Boost   bool
	Alt     bool

	// InputDirection is the normalized movement axis for this tick. Zero
	// means no directional input is held.
	InputDirection physics.Vector2D

	// MouseAngle is the world-space aim angle resolved from the latest
	// mouse-target command. It doubles as the rotation target in control
	// mode.
	MouseAngle     float64
	HasMouseTarget bool

	// EngineSpool is the accumulated main-engine ramp time, clamped to
	// [0, EngineSpoolTime].
	EngineSpool float64

	LeftTurret  *Turret
	RightTurret *Turret

	cfg *config.GameConfig
}

// NewShip creates the player ship at the origin, facing up, with both
// turret mounts attached.
func NewShip(cfg *config.GameConfig, rng *rand.Rand) *Ship {
	return &Ship{
		BaseEntity: BaseEntity{
			ID:       GenerateID(),
			Rotation: -math.Pi / 2,
			Active:   true,
		},
		LeftTurret: NewTurret(SideLeft, physics.Vector2D{
			X: cfg.Ship.LeftTurretOffsetX,
			Y: cfg.Ship.LeftTurretOffsetY,
		}, &cfg.Turret, rng),
		RightTurret: NewTurret(SideRight, physics.Vector2D{
			X: cfg.Ship.RightTurretOffsetX,
			Y: cfg.Ship.RightTurretOffsetY,
		}, &cfg.Turret, rng),
		cfg: cfg,
	}
}

// Mode returns the movement mode derived from the current toggle flags.
func (s *Ship) Mode() MoveMode {
	return ResolveMode(s.Control, s.Boost, s.Alt)
}

func (s *Ship) profile(mode MoveMode) modeProfile {
	c := &s.cfg.Ship
	switch mode {
	case ModeControl:
		return modeProfile{
			topSpeed:   c.ControlTopSpeed,
			thrusters:  true,
			resistance: true,
			rotates:    true,
		}
	case ModeBoost:
		return modeProfile{
			topSpeed:   c.BoostTopSpeed,
			engine:     true,
			resistance: true,
			rotates:    true,
		}
	case ModeAlt:
		return modeProfile{
			unbounded: true,
			engine:    true,
			rotates:   true,
		}
	case ModeDisabled:
		return modeProfile{}
	default:
		return modeProfile{
			topSpeed:   c.NormalTopSpeed,
			thrusters:  true,
			engine:     true,
			resistance: true,
			rotates:    true,
		}
	}
}

// Update advances ship physics by one tick. The order is fixed: thrusters,
// main engine, resistance, rotation, position integration.
func (s *Ship) Update(deltaTime float64) {
	mode := s.Mode()
	prof := s.profile(mode)
	c := &s.cfg.Ship

	hasInput := s.InputDirection.Length() > physics.MinMagnitude

	// Thrusters accelerate in the raw input direction with no ramp.
	if prof.thrusters && hasInput {
		s.Velocity = s.Velocity.Add(s.InputDirection.Scale(c.ThrusterAccel * deltaTime))
	}

	// Main engine thrusts along the hull facing, ramped by spool time.
	// Releasing input resets the spool immediately.
	if !hasInput {
		s.EngineSpool = 0
	} else if prof.engine {
		s.EngineSpool = math.Min(s.EngineSpool+deltaTime, c.EngineSpoolTime)
		factor := c.EngineMaxFactor
		if c.EngineSpoolTime > 0 {
			factor = physics.Lerp(c.EngineMinFactor, c.EngineMaxFactor, s.EngineSpool/c.EngineSpoolTime)
		}
		thrust := physics.FromAngle(s.Rotation, c.EngineAccel*factor)
		s.Velocity = s.Velocity.Add(thrust.Scale(deltaTime))
	}

	// Speed-dependent resistance, skipped when top speed is zero or
	// unbounded.
	if prof.resistance && prof.topSpeed > 0 {
		s.applyResistance(prof.topSpeed, deltaTime)
	}

	// Hard clamp to the mode's top speed. Disabled mode has top speed
	// zero, which kills all momentum.
	if !prof.unbounded {
		speed := s.Velocity.Length()
		if speed > prof.topSpeed {
			if prof.topSpeed <= 0 {
				s.Velocity = physics.Vector2D{}
			} else {
				s.Velocity = s.Velocity.Normalize().Scale(prof.topSpeed)
			}
		}
	}

	if prof.rotates {
		s.updateRotation(mode, hasInput, deltaTime)
	}

	s.Integrate(deltaTime)
}

// applyResistance applies the three-segment resistance curve as a
// deceleration opposing the current velocity.
func (s *Ship) applyResistance(topSpeed, deltaTime float64) {
	speed := s.Velocity.Length()
	if speed < physics.MinMagnitude {
		return
	}

	c := &s.cfg.Ship
	ratio := speed / topSpeed

	var magnitude float64
	switch {
	case ratio <= c.ResistanceLowRatio:
		t := ratio / c.ResistanceLowRatio
		magnitude = physics.Lerp(c.ResistanceFloor, c.ResistanceCruise, t)
	case ratio <= c.ResistanceHighRatio:
		t := (ratio - c.ResistanceLowRatio) / (c.ResistanceHighRatio - c.ResistanceLowRatio)
		magnitude = physics.Lerp(c.ResistanceCruise, c.ResistanceMax, t)
	default:
		magnitude = c.ResistanceMax
	}

	decel := magnitude * deltaTime
	if decel >= speed {
		s.Velocity = physics.Vector2D{}
		return
	}
	s.Velocity = s.Velocity.Scale((speed - decel) / speed)
}

// updateRotation turns the hull toward the mode's rotation target at a
// fixed angular rate along the shortest path.
func (s *Ship) updateRotation(mode MoveMode, hasInput bool, deltaTime float64) {
	var target float64
	switch {
	case mode == ModeControl:
		if !s.HasMouseTarget {
			return
		}
		target = s.MouseAngle
	case hasInput:
		target = s.InputDirection.Angle()
	default:
		return
	}

	diff := physics.ShortestAngleDiff(s.Rotation, target)
	step := physics.Clamp(diff, -s.cfg.Ship.RotationSpeed*deltaTime, s.cfg.Ship.RotationSpeed*deltaTime)
	s.Rotation = physics.NormalizeAngle(s.Rotation + step)
}

// TurretPosition returns the world-space position of a turret mount,
// rotated with the hull.
func (s *Ship) TurretPosition(t *Turret) physics.Vector2D {
	return s.Position.Add(t.Offset.Rotate(s.Rotation))
}
