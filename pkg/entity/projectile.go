// pkg/entity/projectile.go
package entity

import (
	"math"

	"github.com/opd-ai/go-stardrift/pkg/config"
	"github.com/opd-ai/go-stardrift/pkg/physics"
)

// ProjectileKind distinguishes ballistic shots from homing missiles
type ProjectileKind int

const (
	DirectFire ProjectileKind = iota
	HomingFire
)

// Candidate is a live entity a homing projectile may lock onto.
type Candidate struct {
	ID       ID
	Position physics.Vector2D
}

// Projectile is a pooled shot. DirectFire travels ballistically and dies
// by lifetime. Homing projectiles alternate between scanning for the
// nearest candidate and steering their velocity vector toward a locked
// target.
type Projectile struct {
	BaseEntity
	Kind ProjectileKind

	Size   float64
	Length float64
	Weight float64
	Color  config.RGB

	// Age counts up toward Lifetime; it never decreases while the
	// projectile is alive.
	Age      float64
	Lifetime float64

	TargetID     ID
	hasTarget    bool
	scanning     bool
	scanTimer    float64
	scanInterval float64
	scanRadius   float64
	steeringRate float64
}

// Steering guards. Below these magnitudes the bearing math degenerates,
// so the projectile just coasts.
const (
	minSteerSpeed    = 1.0
	minSteerDistance = 1.0
)

// NewDirectFire spawns a ballistic projectile. The muzzle velocity is the
// aim direction scaled by the configured speed plus the inherited ship
// velocity.
func NewDirectFire(pos physics.Vector2D, aimAngle float64, shipVelocity physics.Vector2D, cfg *config.ProjectileConfig) Projectile {
	return Projectile{
		BaseEntity: BaseEntity{
			ID:       GenerateID(),
			Position: pos,
			Velocity: physics.FromAngle(aimAngle, cfg.DirectSpeed).Add(shipVelocity),
			Active:   true,
		},
		Kind:     DirectFire,
		Size:     cfg.DirectSize,
		Length:   cfg.DirectLength,
		Weight:   cfg.DirectWeight,
		Color:    cfg.DirectColor,
		Lifetime: cfg.DirectLifetime,
	}
}

// NewHoming spawns a homing projectile. With target set it starts locked;
// otherwise it starts in scanning mode.
func NewHoming(pos physics.Vector2D, aimAngle float64, shipVelocity physics.Vector2D, cfg *config.ProjectileConfig, target ID) Projectile {
	p := Projectile{
		BaseEntity: BaseEntity{
			ID:       GenerateID(),
			Position: pos,
			Velocity: physics.FromAngle(aimAngle, cfg.HomingSpeed).Add(shipVelocity),
			Active:   true,
		},
		Kind:         HomingFire,
		Size:         cfg.HomingSize,
		Length:       cfg.HomingLength,
		Weight:       cfg.HomingWeight,
		Color:        cfg.HomingColor,
		Lifetime:     cfg.HomingLifetime,
		scanInterval: cfg.ScanInterval,
		scanRadius:   cfg.ScanRadius,
		steeringRate: cfg.SteeringRate,
	}
	if target != 0 {
		p.TargetID = target
		p.hasTarget = true
	} else {
		p.scanning = true
	}
	return p
}

// Scanning reports whether a homing projectile is still searching for a
// target.
func (p *Projectile) Scanning() bool {
	return p.scanning
}

// Locked reports whether a homing projectile is tracking a target.
func (p *Projectile) Locked() bool {
	return p.hasTarget
}

// Expired reports whether the projectile's lifetime has run out.
func (p *Projectile) Expired() bool {
	return p.Age >= p.Lifetime
}

// FacingAngle returns the travel direction for rendering.
func (p *Projectile) FacingAngle() float64 {
	if p.Velocity.Length() < physics.MinMagnitude {
		return 0
	}
	return p.Velocity.Angle()
}

// Update advances the projectile by one tick. candidates is the set of
// live entities homing projectiles may lock onto. It returns the target ID
// and true when a new lock was acquired this tick.
func (p *Projectile) Update(deltaTime float64, candidates []Candidate) (ID, bool) {
	p.Age += deltaTime

	var lockedID ID
	var locked bool
	if p.Kind == HomingFire {
		lockedID, locked = p.updateHoming(deltaTime, candidates)
	}

	p.Integrate(deltaTime)
	return lockedID, locked
}

func (p *Projectile) updateHoming(deltaTime float64, candidates []Candidate) (ID, bool) {
	if p.scanning {
		p.scanTimer += deltaTime
		if p.scanTimer < p.scanInterval {
			return 0, false
		}
		p.scanTimer = 0

		id, found := p.nearestInRadius(candidates)
		if !found {
			return 0, false
		}
		p.TargetID = id
		p.hasTarget = true
		p.scanning = false
		return id, true
	}

	if !p.hasTarget {
		return 0, false
	}

	targetPos, alive := findCandidate(candidates, p.TargetID)
	if !alive {
		// Target gone, fall back to scanning next tick.
		p.hasTarget = false
		p.scanning = true
		p.scanTimer = 0
		return 0, false
	}

	p.steerToward(targetPos, deltaTime)
	return 0, false
}

// steerToward rotates the velocity vector toward the bearing to the target,
// capped at the steering rate. Near-zero speeds and distances are left
// alone to avoid dividing by nothing.
func (p *Projectile) steerToward(target physics.Vector2D, deltaTime float64) {
	speed := p.Velocity.Length()
	if speed < minSteerSpeed {
		return
	}
	if p.Position.Distance(target) < minSteerDistance {
		return
	}

	bearing := target.Sub(p.Position).Angle()
	diff := physics.ShortestAngleDiff(p.Velocity.Angle(), bearing)
	step := physics.Clamp(diff, -p.steeringRate*deltaTime, p.steeringRate*deltaTime)
	p.Velocity = p.Velocity.Rotate(step)
}

func (p *Projectile) nearestInRadius(candidates []Candidate) (ID, bool) {
	var bestID ID
	best := math.MaxFloat64
	maxRange := p.scanRadius * p.scanRadius
	for _, c := range candidates {
		d := c.Position.Sub(p.Position).LengthSquared()
		if d <= maxRange && d < best {
			best = d
			bestID = c.ID
		}
	}
	return bestID, bestID != 0
}

func findCandidate(candidates []Candidate, id ID) (physics.Vector2D, bool) {
	for _, c := range candidates {
		if c.ID == id {
			return c.Position, true
		}
	}
	return physics.Vector2D{}, false
}
