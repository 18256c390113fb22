package vmath

import "github.com/gogpu/vmath/internal/srgb"

// D65 reference white in XYZ (0-100 scale).
const (
	whiteX = 95.047
	whiteY = 100.0
	whiteZ = 108.883
)

// CIELAB piecewise constants.
const (
	labEpsilon = 0.008856
	labKappa   = 7.787
	labOffset  = 16.0 / 116.0
)

// Hue returns the fully saturated, fully bright color at deg on the
// color wheel. deg may be outside [0, 360).
func Hue(deg float32) Color {
	h := mod(deg, 360)
	if h < 0 {
		h += 360
	}
	switch {
	case h < 60:
		return RGBF(1, h/60, 0)
	case h < 120:
		return RGBF(1-(h-60)/60, 1, 0)
	case h < 180:
		return RGBF(0, 1, (h-120)/60)
	case h < 240:
		return RGBF(0, 1-(h-180)/60, 1)
	case h < 300:
		return RGBF((h-240)/60, 0, 1)
	default:
		return RGBF(1, 0, 1-(h-300)/60)
	}
}

// FromHSV converts hue (degrees), saturation and value (both [0, 1]) to
// an opaque color.
func FromHSV(h, s, v float32) Color {
	h = mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - abs(mod(h/60, 2)-1))
	m := v - c
	switch int(h / 60) {
	case 0:
		return RGBF(c+m, x+m, m)
	case 1:
		return RGBF(x+m, c+m, m)
	case 2:
		return RGBF(m, c+m, x+m)
	case 3:
		return RGBF(m, x+m, c+m)
	case 4:
		return RGBF(x+m, m, c+m)
	default:
		return RGBF(c+m, m, x+m)
	}
}

// ToHSV returns hue in degrees [0, 360), saturation and value in [0, 1].
// Alpha is ignored.
func (c Color) ToHSV() (h, s, v float32) {
	r, g, b, _ := c.Floats()
	lo := min(r, g, b)
	hi := max(r, g, b)
	delta := hi - lo

	v = hi
	if hi > 1e-3 {
		s = delta / hi
	}
	if delta != 0 {
		switch hi {
		case r:
			h = (g - b) / delta
		case g:
			h = 2 + (b-r)/delta
		default:
			h = 4 + (r-g)/delta
		}
	}
	h = mod(h*60+360, 360)
	return h, s, v
}

// ToXYZ converts to CIE 1931 XYZ (D65, 0-100 scale). Alpha is ignored.
func (c Color) ToXYZ() (x, y, z float32) {
	r, g, b, _ := c.Floats()
	r, g, b = srgb.ToLinear(r), srgb.ToLinear(g), srgb.ToLinear(b)
	x = (0.4124*r + 0.3576*g + 0.1805*b) * 100
	y = (0.2126*r + 0.7152*g + 0.0722*b) * 100
	z = (0.0193*r + 0.1192*g + 0.9505*b) * 100
	return x, y, z
}

// FromXYZ converts CIE 1931 XYZ (D65, 0-100 scale) to an opaque color.
// Out-of-gamut values are clamped.
func FromXYZ(x, y, z float32) Color {
	x, y, z = x/100, y/100, z/100
	r := x*3.2404542 + y*-1.5371385 + z*-0.4985314
	g := x*-0.9692660 + y*1.8760108 + z*0.0415560
	b := x*0.0556434 + y*-0.2040259 + z*1.0572252
	return RGBF(srgb.FromLinear(r), srgb.FromLinear(g), srgb.FromLinear(b))
}

// ToCIELAB converts to CIE L*a*b* relative to D65. Alpha is ignored.
func (c Color) ToCIELAB() (l, a, b float32) {
	x, y, z := c.ToXYZ()
	fx := labF(x / whiteX)
	fy := labF(y / whiteY)
	fz := labF(z / whiteZ)
	return 116*fy - 16, 500 * (fx - fy), 200 * (fy - fz)
}

// FromCIELAB converts CIE L*a*b* relative to D65 to an opaque color.
func FromCIELAB(l, a, b float32) Color {
	fy := (l + 16) / 116
	fx := a/500 + fy
	fz := fy - b/200
	return FromXYZ(whiteX*labFInv(fx), whiteY*labFInv(fy), whiteZ*labFInv(fz))
}

func labF(t float32) float32 {
	if t > labEpsilon {
		return cbrt(t)
	}
	return labKappa*t + labOffset
}

func labFInv(t float32) float32 {
	if t3 := t * t * t; t3 > labEpsilon {
		return t3
	}
	return (t - labOffset) / labKappa
}

// ToOKLab converts to the OKLab perceptual color space
// (https://bottosson.github.io/posts/oklab). Alpha is ignored.
func (c Color) ToOKLab() (l, a, b float32) {
	r, g, bl, _ := c.Floats()
	r, g, bl = srgb.ToLinear(r), srgb.ToLinear(g), srgb.ToLinear(bl)
	lc := cbrt(0.4122214708*r + 0.5363325363*g + 0.0514459929*bl)
	mc := cbrt(0.2119034982*r + 0.6806995451*g + 0.1073969566*bl)
	sc := cbrt(0.0883024619*r + 0.2817188376*g + 0.6299787005*bl)
	l = 0.2104542553*lc + 0.7936177850*mc - 0.0040720468*sc
	a = 1.9779984951*lc - 2.4285922050*mc + 0.4505937099*sc
	b = 0.0259040371*lc + 0.7827717662*mc - 0.8086757660*sc
	return l, a, b
}

// FromOKLab converts OKLab to an opaque color. Out-of-gamut values are
// clamped.
func FromOKLab(l, a, b float32) Color {
	lc := l + 0.3963377774*a + 0.2158037573*b
	mc := l - 0.1055613458*a - 0.0638541728*b
	sc := l - 0.0894841775*a - 1.2914855480*b
	lc, mc, sc = lc*lc*lc, mc*mc*mc, sc*sc*sc
	r := 4.0767416621*lc - 3.3077115913*mc + 0.2309699292*sc
	g := -1.2684380046*lc + 2.6097574011*mc - 0.3413193965*sc
	bl := -0.0041960863*lc - 0.7034186147*mc + 1.7076147010*sc
	return RGBF(srgb.FromLinear(r), srgb.FromLinear(g), srgb.FromLinear(bl))
}
