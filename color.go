package vmath

import (
	"cmp"
	"fmt"
	"image/color"
	"strconv"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/vmath/internal/srgb"
)

// Color is a 32-bit sRGB color with 8 bits per channel and straight
// (non-premultiplied) alpha.
type Color struct {
	R, G, B, A uint8
}

// Verify at compile time that Color implements color.Color.
var _ color.Color = Color{}

// Common colors.
var (
	Transparent = Color{0, 0, 0, 0}
	Black       = Color{0, 0, 0, 255}
	White       = Color{255, 255, 255, 255}
	Red         = Color{255, 0, 0, 255}
	Green       = Color{0, 255, 0, 255}
	Blue        = Color{0, 0, 255, 255}
	Yellow      = Color{255, 255, 0, 255}
	Cyan        = Color{0, 255, 255, 255}
	Fuchsia     = Color{255, 0, 255, 255}
	Grey        = Color{128, 128, 128, 255}
)

// RGBA creates a color from 8-bit components.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB creates an opaque color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBAF creates a color from float components in [0, 1].
// Components are clamped and rounded to the nearest byte.
func RGBAF(r, g, b, a float32) Color {
	return Color{R: unitToByte(r), G: unitToByte(g), B: unitToByte(b), A: unitToByte(a)}
}

// RGBF creates an opaque color from float components in [0, 1].
func RGBF(r, g, b float32) Color {
	return RGBAF(r, g, b, 1)
}

// FromPacked creates a color from a 0xRRGGBBAA value.
func FromPacked(v uint32) Color {
	return Color{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}
}

// FromVec4 creates a color from a vector of float components in [0, 1].
func FromVec4(v Vec4) Color {
	return RGBAF(v.X, v.Y, v.Z, v.W)
}

// ColorFromStd converts any color.Color, un-premultiplying alpha.
func ColorFromStd(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// Packed returns c as a 0xRRGGBBAA value.
func (c Color) Packed() uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// Floats returns the components as floats in [0, 1].
func (c Color) Floats() (r, g, b, a float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255
}

// Vec4 returns the components as a vector of floats in [0, 1].
func (c Color) Vec4() Vec4 {
	r, g, b, a := c.Floats()
	return Vec4{r, g, b, a}
}

// Linear returns the color's components decoded to linear light. Alpha
// is already linear and is passed through.
func (c Color) Linear() Vec4 {
	return Vec4{
		X: srgb.ToLinearFast(c.R),
		Y: srgb.ToLinearFast(c.G),
		Z: srgb.ToLinearFast(c.B),
		W: float32(c.A) / 255,
	}
}

// FromLinear encodes linear-light components back to an sRGB color.
func FromLinear(v Vec4) Color {
	return Color{
		R: srgb.FromLinearFast(v.X),
		G: srgb.FromLinearFast(v.Y),
		B: srgb.FromLinearFast(v.Z),
		A: unitToByte(v.W),
	}
}

// RGBA implements color.Color. The returned values are alpha-premultiplied.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// GPU converts c to a WebGPU color, e.g. for a render pass clear value.
// The channels are not linearized.
func (c Color) GPU() gputypes.Color {
	return gputypes.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}

// Index returns the i'th channel (0=r .. 3=a). It panics if i is out of
// range.
func (c Color) Index(i int) uint8 {
	switch i {
	case 0:
		return c.R
	case 1:
		return c.G
	case 2:
		return c.B
	case 3:
		return c.A
	}
	panic(fmt.Sprintf("vmath: Color index %d out of range", i))
}

// Compare orders colors by their packed value.
func (c Color) Compare(o Color) int {
	return cmp.Compare(c.Packed(), o.Packed())
}

// Lerp linearly interpolates between c and to in sRGB space.
// Channels are rounded to bytes, so this is not equivalent to Vec4.Lerp.
func (c Color) Lerp(to Color, t float32) Color {
	return Color{
		R: toByte(Lerp(float32(c.R), float32(to.R), t)),
		G: toByte(Lerp(float32(c.G), float32(to.G), t)),
		B: toByte(Lerp(float32(c.B), float32(to.B), t)),
		A: toByte(Lerp(float32(c.A), float32(to.A), t)),
	}
}

// Bezier3 performs quadratic Bezier interpolation using b as the anchor.
func (c Color) Bezier3(b, d Color, t float32) Color {
	return Color{
		R: toByte(Bezier3(float32(c.R), float32(b.R), float32(d.R), t)),
		G: toByte(Bezier3(float32(c.G), float32(b.G), float32(d.G), t)),
		B: toByte(Bezier3(float32(c.B), float32(b.B), float32(d.B), t)),
		A: toByte(Bezier3(float32(c.A), float32(b.A), float32(d.A), t)),
	}
}

// Bezier4 performs cubic Bezier interpolation using b and d as anchors.
func (c Color) Bezier4(b, d, e Color, t float32) Color {
	return Color{
		R: toByte(Bezier4(float32(c.R), float32(b.R), float32(d.R), float32(e.R), t)),
		G: toByte(Bezier4(float32(c.G), float32(b.G), float32(d.G), float32(e.G), t)),
		B: toByte(Bezier4(float32(c.B), float32(b.B), float32(d.B), float32(e.B), t)),
		A: toByte(Bezier4(float32(c.A), float32(b.A), float32(d.A), float32(e.A), t)),
	}
}

// Add adds channels, saturating at 255.
func (c Color) Add(o Color) Color {
	return Color{addSat(c.R, o.R), addSat(c.G, o.G), addSat(c.B, o.B), addSat(c.A, o.A)}
}

// Sub subtracts channels, saturating at 0.
func (c Color) Sub(o Color) Color {
	return Color{subSat(c.R, o.R), subSat(c.G, o.G), subSat(c.B, o.B), subSat(c.A, o.A)}
}

// Mul modulates c by o, treating channels as [0, 1] floats.
func (c Color) Mul(o Color) Color {
	r1, g1, b1, a1 := c.Floats()
	r2, g2, b2, a2 := o.Floats()
	return RGBAF(r1*r2, g1*g2, b1*b2, a1*a2)
}

// Div divides c by o, treating channels as [0, 1] floats. Results are
// clamped, and 0/0 yields 0.
func (c Color) Div(o Color) Color {
	r1, g1, b1, a1 := c.Floats()
	r2, g2, b2, a2 := o.Floats()
	return RGBAF(r1/r2, g1/g2, b1/b2, a1/a2)
}

// Scale multiplies every channel, alpha included, by n.
func (c Color) Scale(n float32) Color {
	r, g, b, a := c.Floats()
	return RGBAF(r*n, g*n, b*n, a*n)
}

// DivScalar divides every channel, alpha included, by n.
func (c Color) DivScalar(n float32) Color {
	r, g, b, a := c.Floats()
	return RGBAF(r/n, g/n, b/n, a/n)
}

// And returns the bitwise AND of the packed values.
func (c Color) And(o Color) Color { return FromPacked(c.Packed() & o.Packed()) }

// Or returns the bitwise OR of the packed values.
func (c Color) Or(o Color) Color { return FromPacked(c.Packed() | o.Packed()) }

// Xor returns the bitwise XOR of the packed values.
func (c Color) Xor(o Color) Color { return FromPacked(c.Packed() ^ o.Packed()) }

// Mod returns the channel-wise remainder. It panics if a channel of o is 0.
func (c Color) Mod(o Color) Color {
	return Color{c.R % o.R, c.G % o.G, c.B % o.B, c.A % o.A}
}

// ModScalar returns the remainder of every channel by n.
func (c Color) ModScalar(n uint8) Color {
	return Color{c.R % n, c.G % n, c.B % n, c.A % n}
}

// String returns the packed value as eight lowercase hex digits.
func (c Color) String() string {
	s := strconv.FormatUint(uint64(c.Packed()), 16)
	const zeros = "00000000"
	return zeros[:8-len(s)] + s
}

func addSat(a, b uint8) uint8 {
	s := uint16(a) + uint16(b)
	return uint8(min(s, 255)) //nolint:gosec // clamped
}

func subSat(a, b uint8) uint8 {
	if b > a {
		return 0
	}
	return a - b
}

// unitToByte maps [0, 1] to [0, 255], clamping and rounding.
func unitToByte(v float32) uint8 {
	return toByte(v * 255)
}

// toByte clamps v to [0, 255] and rounds it. NaN maps to 0.
func toByte(v float32) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
