// pkg/physics/vector_test.go
package physics

import (
	"math"
	"testing"
)

func vectorsClose(a, b Vector2D) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestVector2D_Arithmetic(t *testing.T) {
	tests := []struct {
		name    string
		a, b    Vector2D
		wantAdd Vector2D
		wantSub Vector2D
	}{
		{
			name:    "positive components",
			a:       Vector2D{X: 3, Y: 4},
			b:       Vector2D{X: 1, Y: 2},
			wantAdd: Vector2D{X: 4, Y: 6},
			wantSub: Vector2D{X: 2, Y: 2},
		},
		{
			name:    "mixed signs",
			a:       Vector2D{X: -5, Y: 2.5},
			b:       Vector2D{X: 5, Y: -2.5},
			wantAdd: Vector2D{},
			wantSub: Vector2D{X: -10, Y: 5},
		},
		{
			name:    "zero identity",
			a:       Vector2D{X: 7, Y: -3},
			b:       Vector2D{},
			wantAdd: Vector2D{X: 7, Y: -3},
			wantSub: Vector2D{X: 7, Y: -3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Add(tt.b); !vectorsClose(got, tt.wantAdd) {
				t.Errorf("Add = %v, want %v", got, tt.wantAdd)
			}
			if got := tt.a.Sub(tt.b); !vectorsClose(got, tt.wantSub) {
				t.Errorf("Sub = %v, want %v", got, tt.wantSub)
			}
		})
	}
}

func TestVector2D_Scale(t *testing.T) {
	v := Vector2D{X: 3, Y: -4}

	if got := v.Scale(2); !vectorsClose(got, Vector2D{X: 6, Y: -8}) {
		t.Errorf("Scale(2) = %v", got)
	}
	if got := v.Scale(0); !vectorsClose(got, Vector2D{}) {
		t.Errorf("Scale(0) = %v, want zero", got)
	}
	if got := v.Scale(-1); !vectorsClose(got, Vector2D{X: -3, Y: 4}) {
		t.Errorf("Scale(-1) = %v", got)
	}
}

func TestVector2D_LengthAndLengthSquared(t *testing.T) {
	tests := []struct {
		name string
		v    Vector2D
		want float64
	}{
		{"3-4-5 triangle", Vector2D{X: 3, Y: 4}, 5},
		{"unit x", Vector2D{X: 1}, 1},
		{"zero", Vector2D{}, 0},
		{"negative components", Vector2D{X: -6, Y: -8}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Length(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Length() = %v, want %v", got, tt.want)
			}
			if got := tt.v.LengthSquared(); math.Abs(got-tt.want*tt.want) > 1e-9 {
				t.Errorf("LengthSquared() = %v, want %v", got, tt.want*tt.want)
			}
		})
	}
}

func TestVector2D_Normalize(t *testing.T) {
	v := Vector2D{X: 3, Y: 4}.Normalize()
	if math.Abs(v.Length()-1) > 1e-9 {
		t.Errorf("normalized length = %v, want 1", v.Length())
	}
	if !vectorsClose(v, Vector2D{X: 0.6, Y: 0.8}) {
		t.Errorf("Normalize() = %v, want (0.6, 0.8)", v)
	}
}

func TestVector2D_Normalize_SubEpsilonIsZero(t *testing.T) {
	tests := []struct {
		name string
		v    Vector2D
	}{
		{"exact zero", Vector2D{}},
		{"below threshold", Vector2D{X: MinMagnitude / 4, Y: MinMagnitude / 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Normalize(); got != (Vector2D{}) {
				t.Errorf("Normalize(%v) = %v, want zero vector", tt.v, got)
			}
		})
	}
}

func TestVector2D_Distance(t *testing.T) {
	a := Vector2D{X: 1, Y: 1}
	b := Vector2D{X: 4, Y: 5}

	if got := a.Distance(b); math.Abs(got-5) > 1e-9 {
		t.Errorf("Distance = %v, want 5", got)
	}
	if got := a.Distance(a); got != 0 {
		t.Errorf("Distance to self = %v, want 0", got)
	}
	if math.Abs(a.Distance(b)-b.Distance(a)) > 1e-9 {
		t.Error("Distance is not symmetric")
	}
}

func TestVector2D_AngleFromAngleRoundTrip(t *testing.T) {
	angles := []float64{0, math.Pi / 6, math.Pi / 2, -math.Pi / 2, 3, -3}

	for _, angle := range angles {
		v := FromAngle(angle, 42)
		if math.Abs(v.Length()-42) > 1e-9 {
			t.Errorf("FromAngle(%v, 42) has length %v", angle, v.Length())
		}
		if diff := ShortestAngleDiff(v.Angle(), angle); math.Abs(diff) > 1e-9 {
			t.Errorf("Angle() after FromAngle(%v) off by %v", angle, diff)
		}
	}
}

func TestVector2D_Rotate(t *testing.T) {
	v := Vector2D{X: 1, Y: 0}

	quarter := v.Rotate(math.Pi / 2)
	if !vectorsClose(quarter, Vector2D{X: 0, Y: 1}) {
		t.Errorf("quarter turn = %v, want (0, 1)", quarter)
	}

	roundTrip := v.Rotate(math.Pi / 3).Rotate(-math.Pi / 3)
	if !vectorsClose(roundTrip, v) {
		t.Errorf("rotate and unrotate = %v, want %v", roundTrip, v)
	}

	long := Vector2D{X: 5, Y: -12}
	if got := long.Rotate(1.3).Length(); math.Abs(got-13) > 1e-9 {
		t.Errorf("rotation changed length: %v, want 13", got)
	}
}
