// Package srgb implements the sRGB transfer functions used by vmath.Color.
//
// Color channels are stored gamma-encoded. Conversions to XYZ, CIELAB and
// OKLab, and linear blending, work on linear values, so every such
// conversion first decodes through ToLinear and re-encodes with FromLinear.
//
// References:
//   - sRGB specification: https://www.w3.org/Graphics/Color/sRGB
package srgb

import "math"

// Breakpoints between the linear segment and the power curve, on the
// encoded and linear side respectively.
const (
	encodedKnee = 0.04045
	linearKnee  = 0.0031308
	gamma       = 2.4
)

// ToLinear maps an encoded channel value to light intensity. Values at or
// below the knee fall on the straight segment near black.
func ToLinear(s float32) float32 {
	if s > encodedKnee {
		return float32(math.Pow(float64((s+0.055)/1.055), gamma))
	}
	return s / 12.92
}

// FromLinear is the inverse of ToLinear.
func FromLinear(l float32) float32 {
	if l > linearKnee {
		return 1.055*float32(math.Pow(float64(l), 1/gamma)) - 0.055
	}
	return l * 12.92
}
