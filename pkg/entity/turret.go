// pkg/entity/turret.go
package entity

import (
	"math"
	rand "math/rand/v2"

	"github.com/opd-ai/go-stardrift/pkg/config"
	"github.com/opd-ai/go-stardrift/pkg/physics"
)

// Side identifies which mount a turret occupies
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// String returns the side name for logging
func (s Side) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}

// FireSector classifies which turret(s) may fire at a relative aim angle
type FireSector int

const (
	SectorLeft FireSector = iota
	SectorRight
	SectorBoth
)

// ClassifyFireSector resolves a ship-relative aim angle into a fire sector.
// Aim angles within the front or rear overlap cone fire both guns;
// otherwise the gun on the matching lateral side fires alone. Pure function
// of the angle, independent of turret rotation state.
func ClassifyFireSector(relativeAngle, frontHalfAngle, rearHalfAngle float64) FireSector {
	a := physics.NormalizeAngle(relativeAngle)
	abs := math.Abs(a)

	if abs <= frontHalfAngle || abs >= math.Pi-rearHalfAngle {
		return SectorBoth
	}
	if a > 0 {
		return SectorLeft
	}
	return SectorRight
}

// Turret is an arc-constrained gun mount. Its barrel tracks a shared aim
// target at a fixed angular rate but must never rest inside the dead zone
// opposite its mount direction.
type Turret struct {
	Side   Side
	Offset physics.Vector2D

	// Angle is the current barrel angle in world space.
	Angle float64

	// baseAngle is the mount direction relative to the hull, pre-rotated
	// by the configured dead-zone offset.
	baseAngle float64

	// Arc bounds and dead-zone center, recomputed from the ship facing on
	// every tracking update.
	arcMin         float64
	arcMax         float64
	arcCenter      float64
	deadZoneCenter float64

	targetAngle float64
	hasTarget   bool

	// Recoil is the jitter accumulator, always >= 0.
	Recoil float64

	// SpoolLevel is the autofire ramp in [0,1]. Cooldown interpolates from
	// the cold to the hot interval as the level rises.
	SpoolLevel   float64
	lastFireTime float64
	hasFired     bool

	cfg *config.TurretConfig
	rng *rand.Rand
}

// NewTurret creates a turret for the given mount offset, expressed in the
// facing-aligned hull frame. The dead-zone offset pre-rotates the mount
// direction so the forbidden wedge clears the hull centerline: the
// positive-lateral mount rotates one way and its mirror the other, which
// keeps the two arc centers mirrored about the facing.
func NewTurret(side Side, offset physics.Vector2D, cfg *config.TurretConfig, rng *rand.Rand) *Turret {
	base := offset.Angle()
	if offset.Y >= 0 {
		base -= cfg.DeadZoneOffset
	} else {
		base += cfg.DeadZoneOffset
	}
	base = physics.NormalizeAngle(base)

	return &Turret{
		Side:      side,
		Offset:    offset,
		baseAngle: base,
		Angle:     base,
		cfg:       cfg,
		rng:       rng,
	}
}

// SetTargetAngle sets the world-space aim target the barrel tracks toward.
func (t *Turret) SetTargetAngle(angle float64) {
	t.targetAngle = physics.NormalizeAngle(angle)
	t.hasTarget = true
}

// ArcHalfWidth returns the configured arc half-width in radians.
func (t *Turret) ArcHalfWidth() float64 {
	return t.cfg.ArcHalfWidthDeg * math.Pi / 180
}

// ArcBounds returns the current [min, max] arc bounds.
func (t *Turret) ArcBounds() (float64, float64) {
	return t.arcMin, t.arcMax
}

// ArcContains reports whether an angle lies within the firing arc.
func (t *Turret) ArcContains(angle float64) bool {
	return math.Abs(physics.ShortestAngleDiff(t.arcCenter, angle)) <= t.ArcHalfWidth()
}

// recomputeArc rebuilds arc bounds and the dead-zone center from the
// current ship facing. The no-fire wedge rotates rigidly with the hull.
func (t *Turret) recomputeArc(shipFacing float64) {
	half := t.ArcHalfWidth()
	t.arcCenter = physics.NormalizeAngle(t.baseAngle + shipFacing)
	t.arcMin = physics.NormalizeAngle(t.arcCenter - half)
	t.arcMax = physics.NormalizeAngle(t.arcCenter + half)
	t.deadZoneCenter = physics.NormalizeAngle(t.arcCenter + math.Pi)
}

// UpdateTracking advances recoil decay, arc geometry, and barrel rotation
// for one tick. After it returns the barrel angle is always arc-valid.
func (t *Turret) UpdateTracking(shipFacing, deltaTime float64) {
	t.Recoil = math.Max(0, t.Recoil-t.cfg.RecoilDecayRate*deltaTime)

	t.recomputeArc(shipFacing)

	// The hull may have rotated the arc out from under the barrel.
	if !t.ArcContains(t.Angle) {
		t.Angle = t.nearestArcEdge(t.Angle)
	}

	if !t.hasTarget {
		return
	}

	diff := physics.ShortestAngleDiff(t.Angle, t.targetAngle)
	if math.Abs(diff) < physics.MinMagnitude {
		return
	}

	maxStep := t.cfg.RotationSpeed * deltaTime
	step := physics.Clamp(diff, -maxStep, maxStep)

	// Direct step when it stays inside the arc. Otherwise reverse the
	// rotation direction so the barrel swings around the hull instead of
	// through it, parking on the nearer arc edge when the reverse step
	// would also leave the arc.
	next := physics.NormalizeAngle(t.Angle + step)
	if !t.ArcContains(next) {
		next = physics.NormalizeAngle(t.Angle - step)
		if !t.ArcContains(next) {
			next = t.nearestArcEdge(next)
		}
	}
	t.Angle = next
}

// nearestArcEdge returns whichever arc boundary is angularly closer.
func (t *Turret) nearestArcEdge(angle float64) float64 {
	toMin := math.Abs(physics.ShortestAngleDiff(angle, t.arcMin))
	toMax := math.Abs(physics.ShortestAngleDiff(angle, t.arcMax))
	if toMin <= toMax {
		return t.arcMin
	}
	return t.arcMax
}

// SpoolUp raises the autofire level toward 1 at the configured ramp rate.
func (t *Turret) SpoolUp(deltaTime float64) {
	if t.cfg.SpoolUpTime <= 0 {
		t.SpoolLevel = 1
		return
	}
	t.SpoolLevel = math.Min(1, t.SpoolLevel+deltaTime/t.cfg.SpoolUpTime)
}

// SpoolDown lowers the autofire level toward 0 at the configured ramp rate.
func (t *Turret) SpoolDown(deltaTime float64) {
	if t.cfg.SpoolDownTime <= 0 {
		t.SpoolLevel = 0
		return
	}
	t.SpoolLevel = math.Max(0, t.SpoolLevel-deltaTime/t.cfg.SpoolDownTime)
}

// Cooldown returns the current shot interval, interpolated from the cold
// interval at spool level 0 down to the hot interval at level 1.
func (t *Turret) Cooldown() float64 {
	return physics.Lerp(t.cfg.AutofireCooldownStart, t.cfg.AutofireCooldownMin, t.SpoolLevel)
}

// TryFire permits a shot when the elapsed time since the last shot meets
// the current cooldown. now is the simulation clock in seconds.
func (t *Turret) TryFire(now float64) bool {
	if t.hasFired && now-t.lastFireTime < t.Cooldown() {
		return false
	}
	t.lastFireTime = now
	t.hasFired = true
	return true
}

// AddRecoil accumulates a bounded random kick for one shot. The
// accumulator is clamped at a multiple of the per-shot amount.
func (t *Turret) AddRecoil(amount float64) {
	kick := amount * (1 + t.rng.Float64()*t.cfg.RecoilRandomOffsetMax)
	t.Recoil = math.Min(t.Recoil+kick, amount*t.cfg.RecoilStackMultiplier)
}

// FiringAngle returns the barrel angle jittered by the current recoil.
// The tracked angle itself is never disturbed.
func (t *Turret) FiringAngle() float64 {
	jitter := (t.rng.Float64() - 0.5) * t.Recoil * t.cfg.RecoilAngleMultiplier
	return physics.NormalizeAngle(t.Angle + jitter)
}
