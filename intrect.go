package vmath

import (
	"image"
	"iter"
	"strconv"
)

// IntRect is an axis-aligned integer rectangle given by its origin and size.
type IntRect struct {
	X, Y, W, H int32
}

// IR is a convenience function to create an IntRect.
func IR(x, y, w, h int32) IntRect {
	return IntRect{X: x, Y: y, W: w, H: h}
}

// IntRectEmpty is the zero rectangle.
var IntRectEmpty = IntRect{}

// IntRectCentered returns a w×h rectangle centered on center.
// Odd sizes put the extra cell on the right and bottom.
func IntRectCentered(center Int2, w, h int32) IntRect {
	return IntRect{center.X - w/2, center.Y - h/2, w, h}
}

// IntRectOfSize returns a w×h rectangle at the origin.
func IntRectOfSize(w, h int32) IntRect {
	return IntRect{W: w, H: h}
}

// IntRectFromImage converts an image.Rectangle.
func IntRectFromImage(r image.Rectangle) IntRect {
	//nolint:gosec // image bounds fit in int32
	return IntRect{int32(r.Min.X), int32(r.Min.Y), int32(r.Dx()), int32(r.Dy())}
}

// Image converts r to a canonical image.Rectangle.
func (r IntRect) Image() image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(r.Right()), int(r.Bottom()))
}

// Rect converts r to a float rectangle.
func (r IntRect) Rect() Rect {
	return Rect{float32(r.X), float32(r.Y), float32(r.W), float32(r.H)}
}

// IsEmpty reports whether r has zero width or height.
func (r IntRect) IsEmpty() bool {
	return r.W == 0 || r.H == 0
}

// Size returns the width and height.
func (r IntRect) Size() Int2 { return Int2{r.W, r.H} }

// Left returns X.
func (r IntRect) Left() int32 { return r.X }

// Right returns X + W.
func (r IntRect) Right() int32 { return r.X + r.W }

// Top returns Y.
func (r IntRect) Top() int32 { return r.Y }

// Bottom returns Y + H.
func (r IntRect) Bottom() int32 { return r.Y + r.H }

// MinX returns the smaller of Left and Right.
func (r IntRect) MinX() int32 { return min(r.X, r.Right()) }

// MaxX returns the larger of Left and Right.
func (r IntRect) MaxX() int32 { return max(r.X, r.Right()) }

// MinY returns the smaller of Top and Bottom.
func (r IntRect) MinY() int32 { return min(r.Y, r.Bottom()) }

// MaxY returns the larger of Top and Bottom.
func (r IntRect) MaxY() int32 { return max(r.Y, r.Bottom()) }

// CenterX returns the x coordinate of the center.
func (r IntRect) CenterX() int32 { return r.X + r.W/2 }

// CenterY returns the y coordinate of the center.
func (r IntRect) CenterY() int32 { return r.Y + r.H/2 }

// TopLeft returns (Left, Top).
func (r IntRect) TopLeft() Int2 { return Int2{r.Left(), r.Top()} }

// TopRight returns (Right, Top).
func (r IntRect) TopRight() Int2 { return Int2{r.Right(), r.Top()} }

// BottomRight returns (Right, Bottom).
func (r IntRect) BottomRight() Int2 { return Int2{r.Right(), r.Bottom()} }

// BottomLeft returns (Left, Bottom).
func (r IntRect) BottomLeft() Int2 { return Int2{r.Left(), r.Bottom()} }

// Min returns the top-left corner, whatever the sign of the size.
func (r IntRect) Min() Int2 { return Int2{r.MinX(), r.MinY()} }

// Max returns the bottom-right corner, whatever the sign of the size.
func (r IntRect) Max() Int2 { return Int2{r.MaxX(), r.MaxY()} }

// Center returns the center point.
func (r IntRect) Center() Int2 { return Int2{r.CenterX(), r.CenterY()} }

// TopCenter returns the midpoint of the top edge.
func (r IntRect) TopCenter() Int2 { return Int2{r.CenterX(), r.Top()} }

// BottomCenter returns the midpoint of the bottom edge.
func (r IntRect) BottomCenter() Int2 { return Int2{r.CenterX(), r.Bottom()} }

// LeftCenter returns the midpoint of the left edge.
func (r IntRect) LeftCenter() Int2 { return Int2{r.Left(), r.CenterY()} }

// RightCenter returns the midpoint of the right edge.
func (r IntRect) RightCenter() Int2 { return Int2{r.Right(), r.CenterY()} }

// Area returns W * H.
func (r IntRect) Area() int32 { return r.W * r.H }

// Perimeter returns the total length of the four edges.
func (r IntRect) Perimeter() int32 { return r.W*2 + r.H*2 }

// Contains reports whether p lies inside r. The right and bottom edges
// are exclusive.
func (r IntRect) Contains(p Int2) bool {
	return p.X >= r.X && p.Y >= r.Y && p.X < r.Right() && p.Y < r.Bottom()
}

// ContainsRect reports whether o lies entirely inside r.
func (r IntRect) ContainsRect(o IntRect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// ClampPoint returns the point inside r's closed bounds nearest to p.
func (r IntRect) ClampPoint(p Int2) Int2 {
	return Int2{Clamp(p.X, r.MinX(), r.MaxX()), Clamp(p.Y, r.MinY(), r.MaxY())}
}

// Overlaps reports whether r and o share at least one cell.
func (r IntRect) Overlaps(o IntRect) bool {
	return r.X < o.Right() && r.Y < o.Bottom() && r.Right() > o.X && r.Bottom() > o.Y
}

// Overlap returns the intersection of r and o. The second result is false
// when the rectangles only touch or do not intersect.
func (r IntRect) Overlap(o IntRect) (IntRect, bool) {
	lo := r.Min().Max(o.Min())
	hi := r.Max().Min(o.Max())
	if hi.X > lo.X && hi.Y > lo.Y {
		return IntRect{lo.X, lo.Y, hi.X - lo.X, hi.Y - lo.Y}, true
	}
	return IntRect{}, false
}

// ScaleToFit scales r uniformly to the largest size that fits inside
// outer and centers it within outer's size. Sizes are truncated.
func (r IntRect) ScaleToFit(outer IntRect) IntRect {
	if r.IsEmpty() {
		Logger().Debug("vmath: ScaleToFit on empty rect", "rect", r.String())
		return IntRect{outer.W / 2, outer.H / 2, 0, 0}
	}
	s := min(float32(outer.W)/float32(r.W), float32(outer.H)/float32(r.H))
	w := int32(float32(r.W) * s)
	h := int32(float32(r.H) * s)
	return IntRect{(outer.W - w) / 2, (outer.H - h) / 2, w, h}
}

// Conflate returns the smallest rectangle containing both r and o.
func (r IntRect) Conflate(o IntRect) IntRect {
	x := min(r.MinX(), o.MinX())
	y := min(r.MinY(), o.MinY())
	right := max(r.MaxX(), o.MaxX())
	bottom := max(r.MaxY(), o.MaxY())
	return IntRect{x, y, right - x, bottom - y}
}

// Translate moves r by amount.
func (r IntRect) Translate(amount Int2) IntRect {
	return IntRect{r.X + amount.X, r.Y + amount.Y, r.W, r.H}
}

// Inflate grows r by w and h around its center.
func (r IntRect) Inflate(w, h int32) IntRect {
	return IntRect{r.X - w/2, r.Y - h/2, r.W + w, r.H + h}
}

// NonNeg returns an equivalent rectangle with non-negative size.
func (r IntRect) NonNeg() IntRect {
	if r.W < 0 {
		r.X += r.W
		r.W = -r.W
	}
	if r.H < 0 {
		r.Y += r.H
		r.H = -r.H
	}
	return r
}

// Absolute is an alias for NonNeg.
func (r IntRect) Absolute() IntRect { return r.NonNeg() }

// Add translates r by v.
func (r IntRect) Add(v Int2) IntRect { return r.Translate(v) }

// Sub translates r by the negation of v.
func (r IntRect) Sub(v Int2) IntRect { return r.Translate(v.Neg()) }

// All returns an iterator over every cell in r, row by row, from Min up
// to but excluding Max.
func (r IntRect) All() iter.Seq[Int2] {
	lo, hi := r.Min(), r.Max()
	return func(yield func(Int2) bool) {
		for y := lo.Y; y < hi.Y; y++ {
			for x := lo.X; x < hi.X; x++ {
				if !yield(Int2{x, y}) {
					return
				}
			}
		}
	}
}

// Points returns every cell of r in the order All yields them.
func (r IntRect) Points() []Int2 {
	n := r.NonNeg().Area()
	pts := make([]Int2, 0, max(n, 0))
	for p := range r.All() {
		pts = append(pts, p)
	}
	return pts
}

// String formats r as "x, y, w, h".
func (r IntRect) String() string {
	buf := make([]byte, 0, 32)
	for i, v := range [4]int32{r.X, r.Y, r.W, r.H} {
		if i > 0 {
			buf = append(buf, ", "...)
		}
		buf = strconv.AppendInt(buf, int64(v), 10)
	}
	return string(buf)
}
