package vmath

import (
	"math"
	"testing"
)

// near reports whether a and b differ by less than eps.
func near(a, b, eps float32) bool {
	return math.Abs(float64(a-b)) < float64(eps)
}

func TestSign(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{3.5, 1},
		{-0.1, -1},
		{0, 0},
		{float32(math.Copysign(0, -1)), 0},
	}
	for _, tt := range tests {
		if got := Sign(tt.in); got != tt.want {
			t.Errorf("Sign(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if SignInt(-7) != -1 || SignInt(0) != 0 || SignInt(9) != 1 {
		t.Error("SignInt returned wrong sign")
	}
}

func TestScalarInterpolation(t *testing.T) {
	tests := []struct {
		name string
		got  float32
		want float32
	}{
		{"lerp start", Lerp(2, 10, 0), 2},
		{"lerp end", Lerp(2, 10, 1), 10},
		{"lerp mid", Lerp(2, 10, 0.5), 6},
		{"lerp extrapolate", Lerp(0, 10, 2), 20},
		{"bezier3 mid", Bezier3(0, 1, 2, 0.5), 1},
		{"bezier3 bent", Bezier3(0, 2, 0, 0.5), 1},
		{"bezier4 straight", Bezier4(0, 1, 2, 3, 0.5), 1.5},
		{"bezier4 start", Bezier4(4, 1, 2, 3, 0), 4},
		{"bezier4 end", Bezier4(4, 1, 2, 7, 1), 7},
		{"hermite flat", Hermite(0, 0, 1, 0, 0.5), 0.5},
		{"hermite end", Hermite(0, 3, 1, -2, 1), 1},
		{"catmull-rom straight", CatmullRom(0, 1, 2, 3, 0.5), 1.5},
		{"catmull-rom passes b", CatmullRom(5, 1, 2, 9, 0), 1},
		{"catmull-rom passes c", CatmullRom(5, 1, 2, 9, 1), 2},
		{"smoothstep 0", SmoothStep(0), 0},
		{"smoothstep mid", SmoothStep(0.5), 0.5},
		{"smoothstep 1", SmoothStep(1), 1},
		{"smoothstep quarter", SmoothStep(0.25), 0.15625},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !near(tt.got, tt.want, 1e-6) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	if got := Distance(0, 0, 3, 4); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
	if got := SqrDistance(1, 1, 4, 5); got != 25 {
		t.Errorf("SqrDistance = %v, want 25", got)
	}
}

func TestAngleConversion(t *testing.T) {
	if got := DegToRad(180); !near(got, Pi, 1e-6) {
		t.Errorf("DegToRad(180) = %v, want %v", got, Pi)
	}
	if got := RadToDeg(Pi / 2); !near(got, 90, 1e-4) {
		t.Errorf("RadToDeg(Pi/2) = %v, want 90", got)
	}
	if !near(Tau, 2*Pi, 1e-6) {
		t.Errorf("Tau = %v", Tau)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 3); got != 3 {
		t.Errorf("Clamp(5, 0, 3) = %v", got)
	}
	if got := Clamp(-1.5, -1, 1); got != -1 {
		t.Errorf("Clamp(-1.5, -1, 1) = %v", got)
	}
	if got := Clamp[int32](2, 0, 3); got != 2 {
		t.Errorf("Clamp(2, 0, 3) = %v", got)
	}
}

func TestHashF32(t *testing.T) {
	if got := HashF32(1); got != 0x3f800000 {
		t.Errorf("HashF32(1) = %#x, want 0x3f800000", got)
	}
	if HashF32(0) == HashF32(float32(math.Copysign(0, -1))) {
		t.Error("HashF32 should distinguish +0 and -0")
	}
}

func TestApprox(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want bool
	}{
		{"equal", []float32{1, 2}, []float32{1, 2}, true},
		{"within epsilon", []float32{0}, []float32{Epsilon / 2}, true},
		{"outside epsilon", []float32{1}, []float32{1.001}, false},
		{"length mismatch", []float32{1, 2}, []float32{1, 2, 3}, false},
		{"empty", nil, []float32{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Approx(tt.a, tt.b); got != tt.want {
				t.Errorf("Approx(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestApproxEqual(t *testing.T) {
	if !ApproxEqual(V2(1, 2), V2(1, 2)) {
		t.Error("equal vectors should be approximately equal")
	}
	if ApproxEqual(V2(1, 2), V3(1, 2, 0)) {
		t.Error("vectors of different dimension must not compare equal")
	}
	if !ApproxEqual(R(0, 0, 1, 1), V4(0, 0, 1, 1)) {
		t.Error("Rect and Vec4 with same components should compare equal")
	}
}

func TestAngles(t *testing.T) {
	if got := Deg(180).Radians(); !near(float32(got), Pi, 1e-6) {
		t.Errorf("Deg(180).Radians() = %v", got)
	}
	if got := Rad(Pi).Degrees(); !near(float32(got), 180, 1e-4) {
		t.Errorf("Rad(Pi).Degrees() = %v", got)
	}
	if !Rad(0).Approx(Deg(0)) {
		t.Error("0rad should approx 0deg")
	}
	if Rad(1).Approx(Deg(1)) {
		t.Error("1rad should not approx 1deg")
	}
	if got := Deg(45).String(); got != "45deg" {
		t.Errorf("String() = %q", got)
	}
	if got := Rad(1.5).String(); got != "1.5rad" {
		t.Errorf("String() = %q", got)
	}
}
