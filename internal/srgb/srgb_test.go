package srgb

import (
	"math"
	"testing"
)

func TestToLinear(t *testing.T) {
	tests := []struct {
		name  string
		input float32
		want  float32
	}{
		{"black", 0, 0},
		{"white", 1, 1},
		{"threshold", 0.04045, 0.04045 / 12.92},
		{"just above threshold", 0.04046, float32(math.Pow((0.04046+0.055)/1.055, 2.4))},
		{"mid gray", 0.5, float32(math.Pow((0.5+0.055)/1.055, 2.4))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToLinear(tt.input)
			if !floatNear(got, tt.want, 1e-6) {
				t.Errorf("ToLinear(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFromLinear(t *testing.T) {
	tests := []struct {
		name  string
		input float32
		want  float32
	}{
		{"black", 0, 0},
		{"white", 1, 1},
		{"threshold", 0.0031308, 0.0031308 * 12.92},
		{"mid gray", 0.5, 1.055*float32(math.Pow(0.5, 1/2.4)) - 0.055},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromLinear(tt.input)
			if !floatNear(got, tt.want, 1e-6) {
				t.Errorf("FromLinear(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRoundTripExact(t *testing.T) {
	for i := 0; i <= 100; i++ {
		v := float32(i) / 100
		got := FromLinear(ToLinear(v))
		if !floatNear(got, v, 1e-5) {
			t.Errorf("FromLinear(ToLinear(%v)) = %v", v, got)
		}
	}
}

func TestToLinearFastMatchesExact(t *testing.T) {
	for i := 0; i < 256; i++ {
		fast := ToLinearFast(uint8(i))
		exact := ToLinear(float32(i) / 255)
		if !floatNear(fast, exact, 1e-6) {
			t.Errorf("sRGB %d: fast=%f, exact=%f", i, fast, exact)
		}
	}
}

func TestFromLinearFastAccuracy(t *testing.T) {
	maxError := 0
	for i := 0; i <= 1000; i++ {
		l := float32(i) / 1000
		fast := int(FromLinearFast(l))
		exact := int(math.Round(float64(FromLinear(l)) * 255))
		diff := fast - exact
		if diff < 0 {
			diff = -diff
		}
		maxError = max(maxError, diff)
	}
	// 12-bit quantization allows one step of error.
	if maxError > 1 {
		t.Errorf("max error %d exceeds 1", maxError)
	}
}

func TestByteRoundTrip(t *testing.T) {
	for i := 0; i < 256; i++ {
		got := FromLinearFast(ToLinearFast(uint8(i)))
		diff := int(got) - i
		if diff < -1 || diff > 1 {
			t.Errorf("round trip %d -> %d", i, got)
		}
	}
}

func TestFromLinearFastClamps(t *testing.T) {
	if got := FromLinearFast(-0.5); got != 0 {
		t.Errorf("FromLinearFast(-0.5) = %d, want 0", got)
	}
	if got := FromLinearFast(2); got != 255 {
		t.Errorf("FromLinearFast(2) = %d, want 255", got)
	}
	if got := FromLinearFast(float32(math.NaN())); got != 0 {
		t.Errorf("FromLinearFast(NaN) = %d, want 0", got)
	}
}

func BenchmarkToLinear(b *testing.B) {
	var r float32
	for i := 0; i < b.N; i++ {
		r = ToLinear(0.5)
	}
	_ = r
}

func BenchmarkToLinearFast(b *testing.B) {
	var r float32
	for i := 0; i < b.N; i++ {
		r = ToLinearFast(128)
	}
	_ = r
}

func BenchmarkFromLinearFast(b *testing.B) {
	var r uint8
	for i := 0; i < b.N; i++ {
		r = FromLinearFast(0.5)
	}
	_ = r
}

func floatNear(a, b, epsilon float32) bool {
	return math.Abs(float64(a-b)) < float64(epsilon)
}
