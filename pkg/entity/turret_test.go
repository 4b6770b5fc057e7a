// pkg/entity/turret_test.go
package entity

import (
	"math"
	rand "math/rand/v2"
	"testing"

	"github.com/opd-ai/go-stardrift/pkg/config"
	"github.com/opd-ai/go-stardrift/pkg/physics"
)

func newTestTurret(side Side) *Turret {
	cfg := config.DefaultConfig()
	offset := physics.Vector2D{X: cfg.Ship.LeftTurretOffsetX, Y: cfg.Ship.LeftTurretOffsetY}
	if side == SideRight {
		offset = physics.Vector2D{X: cfg.Ship.RightTurretOffsetX, Y: cfg.Ship.RightTurretOffsetY}
	}
	return NewTurret(side, offset, &cfg.Turret, testRNG())
}

func TestClassifyFireSector(t *testing.T) {
	front := 15 * math.Pi / 180
	rear := 15 * math.Pi / 180

	tests := []struct {
		name     string
		angle    float64
		expected FireSector
	}{
		{"dead ahead", 0, SectorBoth},
		{"dead astern", math.Pi, SectorBoth},
		{"astern negative", -math.Pi, SectorBoth},
		{"inside front cone", 14 * math.Pi / 180, SectorBoth},
		{"inside front cone negative", -14 * math.Pi / 180, SectorBoth},
		{"inside rear cone", 170 * math.Pi / 180, SectorBoth},
		{"inside rear cone negative", -170 * math.Pi / 180, SectorBoth},
		{"port beam", math.Pi / 2, SectorLeft},
		{"starboard beam", -math.Pi / 2, SectorRight},
		{"just outside front", 20 * math.Pi / 180, SectorLeft},
		{"just outside front negative", -20 * math.Pi / 180, SectorRight},
		{"wrapped angle", 2*math.Pi + math.Pi/2, SectorLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyFireSector(tt.angle, front, rear)
			if got != tt.expected {
				t.Errorf("ClassifyFireSector(%v) = %v, want %v", tt.angle, got, tt.expected)
			}
		})
	}
}

func arcCenterOf(tur *Turret) float64 {
	arcMin, _ := tur.ArcBounds()
	return physics.NormalizeAngle(arcMin + tur.ArcHalfWidth())
}

func TestTurret_ArcCentersMirroredAboutFacing(t *testing.T) {
	cfg := config.DefaultConfig()
	left := newTestTurret(SideLeft)
	right := newTestTurret(SideRight)

	// The mirror must hold for any hull orientation, not just the spawn
	// facing.
	for _, facing := range []float64{-math.Pi / 2, 0, 1.1, math.Pi} {
		left.UpdateTracking(facing, 0.016)
		right.UpdateTracking(facing, 0.016)

		leftRel := physics.ShortestAngleDiff(facing, arcCenterOf(left))
		rightRel := physics.ShortestAngleDiff(facing, arcCenterOf(right))

		want := math.Atan2(cfg.Ship.LeftTurretOffsetY, cfg.Ship.LeftTurretOffsetX) - cfg.Turret.DeadZoneOffset
		if want <= 0 {
			t.Fatalf("left arc center %v relative to facing, expected on the positive side", want)
		}
		if math.Abs(leftRel-want) > 1e-9 {
			t.Errorf("facing %v: left arc center %v relative to facing, want %v", facing, leftRel, want)
		}
		if math.Abs(rightRel+want) > 1e-9 {
			t.Errorf("facing %v: right arc center %v relative to facing, want %v", facing, rightRel, -want)
		}
	}
}

func TestTurret_UpdateTracking_AngleAlwaysArcValid(t *testing.T) {
	for _, side := range []Side{SideLeft, SideRight} {
		t.Run(side.String(), func(t *testing.T) {
			turret := newTestTurret(side)
			rng := rand.New(rand.NewPCG(7, 11))

			facing := -math.Pi / 2
			for i := 0; i < 2000; i++ {
				// Random target sweeps, including into the dead zone, while
				// the hull slowly spins.
				if i%10 == 0 {
					turret.SetTargetAngle(rng.Float64()*2*math.Pi - math.Pi)
				}
				facing = physics.NormalizeAngle(facing + 0.02)

				turret.UpdateTracking(facing, 0.016)

				if !turret.ArcContains(turret.Angle) {
					arcMin, arcMax := turret.ArcBounds()
					t.Fatalf("tick %d: angle %v outside arc [%v, %v]",
						i, turret.Angle, arcMin, arcMax)
				}
			}
		})
	}
}

func TestTurret_UpdateTracking_ConvergesOnReachableTarget(t *testing.T) {
	turret := newTestTurret(SideLeft)
	facing := 0.0

	turret.UpdateTracking(facing, 0.016)
	_, arcMax := turret.ArcBounds()
	target := arcMax - 0.2 // comfortably inside the arc
	turret.SetTargetAngle(target)

	for i := 0; i < 200; i++ {
		turret.UpdateTracking(facing, 0.016)
	}

	if diff := math.Abs(physics.ShortestAngleDiff(turret.Angle, target)); diff > 0.01 {
		t.Errorf("angle %v did not converge on reachable target %v (diff %v)", turret.Angle, target, diff)
	}
}

func TestTurret_Spool_MonotoneAndClamped(t *testing.T) {
	turret := newTestTurret(SideLeft)

	prev := turret.SpoolLevel
	for i := 0; i < 300; i++ {
		turret.SpoolUp(0.016)
		if turret.SpoolLevel < prev {
			t.Fatalf("spool level decreased while spooling up: %v -> %v", prev, turret.SpoolLevel)
		}
		if turret.SpoolLevel > 1 {
			t.Fatalf("spool level %v exceeds 1", turret.SpoolLevel)
		}
		prev = turret.SpoolLevel
	}
	if turret.SpoolLevel != 1 {
		t.Errorf("spool level = %v after sustained spool-up, expected 1", turret.SpoolLevel)
	}

	for i := 0; i < 300; i++ {
		turret.SpoolDown(0.016)
		if turret.SpoolLevel > prev {
			t.Fatalf("spool level increased while spooling down: %v -> %v", prev, turret.SpoolLevel)
		}
		if turret.SpoolLevel < 0 {
			t.Fatalf("spool level %v below 0", turret.SpoolLevel)
		}
		prev = turret.SpoolLevel
	}
	if turret.SpoolLevel != 0 {
		t.Errorf("spool level = %v after sustained spool-down, expected 0", turret.SpoolLevel)
	}
}

func TestTurret_Cooldown_InterpolatesWithSpool(t *testing.T) {
	turret := newTestTurret(SideLeft)
	cfg := turret.cfg

	turret.SpoolLevel = 0
	if got := turret.Cooldown(); got != cfg.AutofireCooldownStart {
		t.Errorf("Cooldown() at level 0 = %v, want %v", got, cfg.AutofireCooldownStart)
	}

	turret.SpoolLevel = 1
	if got := turret.Cooldown(); got != cfg.AutofireCooldownMin {
		t.Errorf("Cooldown() at level 1 = %v, want %v", got, cfg.AutofireCooldownMin)
	}

	turret.SpoolLevel = 0.5
	mid := (cfg.AutofireCooldownStart + cfg.AutofireCooldownMin) / 2
	if got := turret.Cooldown(); math.Abs(got-mid) > 1e-9 {
		t.Errorf("Cooldown() at level 0.5 = %v, want %v", got, mid)
	}
}

func TestTurret_TryFire_RespectsCooldown(t *testing.T) {
	turret := newTestTurret(SideLeft)

	if !turret.TryFire(0) {
		t.Fatal("first TryFire refused")
	}
	if turret.TryFire(0.1) {
		t.Error("TryFire permitted inside the cold cooldown interval")
	}
	if !turret.TryFire(0.6) {
		t.Error("TryFire refused after the cooldown elapsed")
	}
}

func TestTurret_AddRecoil_ClampedAndDecays(t *testing.T) {
	turret := newTestTurret(SideLeft)
	amount := 0.05

	for i := 0; i < 100; i++ {
		turret.AddRecoil(amount)
	}

	limit := amount * turret.cfg.RecoilStackMultiplier
	if turret.Recoil > limit {
		t.Errorf("Recoil = %v after stacking, expected clamp at %v", turret.Recoil, limit)
	}
	if turret.Recoil <= 0 {
		t.Fatal("Recoil did not accumulate")
	}

	for i := 0; i < 100; i++ {
		turret.UpdateTracking(0, 0.016)
	}
	if turret.Recoil != 0 {
		t.Errorf("Recoil = %v after decay, expected 0", turret.Recoil)
	}
}

func TestTurret_FiringAngle_JitterBounded(t *testing.T) {
	turret := newTestTurret(SideLeft)
	turret.UpdateTracking(0, 0.016)
	turret.Recoil = 0.2

	bound := 0.5 * turret.Recoil * turret.cfg.RecoilAngleMultiplier
	for i := 0; i < 100; i++ {
		jitter := math.Abs(physics.ShortestAngleDiff(turret.Angle, turret.FiringAngle()))
		if jitter > bound+1e-9 {
			t.Fatalf("firing jitter %v exceeds bound %v", jitter, bound)
		}
	}
}

func TestTurret_FiringAngle_NoRecoilNoJitter(t *testing.T) {
	turret := newTestTurret(SideLeft)
	turret.UpdateTracking(0, 0.016)

	if got := turret.FiringAngle(); got != turret.Angle {
		t.Errorf("FiringAngle() = %v with zero recoil, want tracked angle %v", got, turret.Angle)
	}
}
