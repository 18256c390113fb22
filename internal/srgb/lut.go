package srgb

// toLinearLUT maps every sRGB byte to its linear value.
var toLinearLUT [256]float32

// fromLinearLUT maps a 12-bit quantized linear value to an sRGB byte.
// 4096 entries are enough to round-trip every 8-bit value.
var fromLinearLUT [4096]uint8

func init() {
	for i := range toLinearLUT {
		toLinearLUT[i] = ToLinear(float32(i) / 255)
	}
	for i := range fromLinearLUT {
		s := FromLinear(float32(i) / 4095)
		v := int(s*255 + 0.5)
		v = min(max(v, 0), 255)
		fromLinearLUT[i] = uint8(v) //nolint:gosec // clamped to [0,255]
	}
}

// ToLinearFast decodes an sRGB byte using a lookup table.
//
//	ToLinearFast(128) // ~0.2159, not 0.5
func ToLinearFast(s uint8) float32 {
	return toLinearLUT[s]
}

// FromLinearFast encodes a linear value to an sRGB byte using a lookup
// table. Input outside [0,1] is clamped; NaN encodes as 0.
//
//	FromLinearFast(0.5) // 188, not 128
func FromLinearFast(l float32) uint8 {
	if !(l > 0) {
		return 0
	}
	l = min(l, 1)
	return fromLinearLUT[int(l*4095+0.5)]
}
