package vmath

// Rect is an axis-aligned float32 rectangle given by its origin and size.
// The origin is the top-left corner in screen space. Width and height may
// be negative; MinX, MaxX, MinY and MaxY account for that, while Left,
// Right, Top and Bottom do not.
type Rect struct {
	X, Y, W, H float32
}

// R is a convenience function to create a Rect.
func R(x, y, w, h float32) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectEmpty is the zero rectangle.
var RectEmpty = Rect{}

// RectCentered returns a w×h rectangle centered on center.
func RectCentered(center Vec2, w, h float32) Rect {
	return Rect{X: center.X - w*0.5, Y: center.Y - h*0.5, W: w, H: h}
}

// RectOfSize returns a w×h rectangle at the origin.
func RectOfSize(w, h float32) Rect {
	return Rect{W: w, H: h}
}

// Size returns the width and height.
func (r Rect) Size() Vec2 { return Vec2{r.W, r.H} }

// Left returns X.
func (r Rect) Left() float32 { return r.X }

// Right returns X + W.
func (r Rect) Right() float32 { return r.X + r.W }

// Top returns Y.
func (r Rect) Top() float32 { return r.Y }

// Bottom returns Y + H.
func (r Rect) Bottom() float32 { return r.Y + r.H }

// MinX returns the smaller of Left and Right.
func (r Rect) MinX() float32 { return min(r.X, r.Right()) }

// MaxX returns the larger of Left and Right.
func (r Rect) MaxX() float32 { return max(r.X, r.Right()) }

// MinY returns the smaller of Top and Bottom.
func (r Rect) MinY() float32 { return min(r.Y, r.Bottom()) }

// MaxY returns the larger of Top and Bottom.
func (r Rect) MaxY() float32 { return max(r.Y, r.Bottom()) }

// CenterX returns the x coordinate of the center.
func (r Rect) CenterX() float32 { return r.X + r.W*0.5 }

// CenterY returns the y coordinate of the center.
func (r Rect) CenterY() float32 { return r.Y + r.H*0.5 }

// TopLeft returns (Left, Top).
func (r Rect) TopLeft() Vec2 { return Vec2{r.Left(), r.Top()} }

// TopRight returns (Right, Top).
func (r Rect) TopRight() Vec2 { return Vec2{r.Right(), r.Top()} }

// BottomRight returns (Right, Bottom).
func (r Rect) BottomRight() Vec2 { return Vec2{r.Right(), r.Bottom()} }

// BottomLeft returns (Left, Bottom).
func (r Rect) BottomLeft() Vec2 { return Vec2{r.Left(), r.Bottom()} }

// Min returns the top-left corner, whatever the sign of the size.
func (r Rect) Min() Vec2 { return Vec2{r.MinX(), r.MinY()} }

// Max returns the bottom-right corner, whatever the sign of the size.
func (r Rect) Max() Vec2 { return Vec2{r.MaxX(), r.MaxY()} }

// Center returns the center point.
func (r Rect) Center() Vec2 { return Vec2{r.CenterX(), r.CenterY()} }

// TopCenter returns the midpoint of the top edge.
func (r Rect) TopCenter() Vec2 { return Vec2{r.CenterX(), r.Top()} }

// BottomCenter returns the midpoint of the bottom edge.
func (r Rect) BottomCenter() Vec2 { return Vec2{r.CenterX(), r.Bottom()} }

// LeftCenter returns the midpoint of the left edge.
func (r Rect) LeftCenter() Vec2 { return Vec2{r.Left(), r.CenterY()} }

// RightCenter returns the midpoint of the right edge.
func (r Rect) RightCenter() Vec2 { return Vec2{r.Right(), r.CenterY()} }

// Area returns W * H.
func (r Rect) Area() float32 { return r.W * r.H }

// Perimeter returns the total length of the four edges.
func (r Rect) Perimeter() float32 { return r.W*2 + r.H*2 }

// Contains reports whether p lies inside r. The right and bottom edges
// are exclusive.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.Y >= r.Y && p.X < r.Right() && p.Y < r.Bottom()
}

// ContainsRect reports whether o lies entirely inside r.
func (r Rect) ContainsRect(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// Overlaps reports whether r and o share a region of non-zero area.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && r.Y < o.Bottom() && r.Right() > o.X && r.Bottom() > o.Y
}

// Overlap returns the intersection of r and o. The second result is false
// when the rectangles only touch or do not intersect.
func (r Rect) Overlap(o Rect) (Rect, bool) {
	lo := r.TopLeft().Max(o.TopLeft())
	hi := r.BottomRight().Min(o.BottomRight())
	if hi.X > lo.X && hi.Y > lo.Y {
		return Rect{lo.X, lo.Y, hi.X - lo.X, hi.Y - lo.Y}, true
	}
	return Rect{}, false
}

// ScaleToFit scales r uniformly to the largest size that fits inside
// outer and centers it within outer's size. The result is relative to
// outer's origin.
func (r Rect) ScaleToFit(outer Rect) Rect {
	if r.W == 0 || r.H == 0 {
		Logger().Debug("vmath: ScaleToFit on zero-sized rect", "rect", r.String())
	}
	s := min(outer.W/r.W, outer.H/r.H)
	w := r.W * s
	h := r.H * s
	return Rect{(outer.W - w) * 0.5, (outer.H - h) * 0.5, w, h}
}

// Conflate returns the smallest rectangle containing both r and o.
func (r Rect) Conflate(o Rect) Rect {
	x := min(r.MinX(), o.MinX())
	y := min(r.MinY(), o.MinY())
	right := max(r.MaxX(), o.MaxX())
	bottom := max(r.MaxY(), o.MaxY())
	return Rect{x, y, right - x, bottom - y}
}

// Translate moves r by amount.
func (r Rect) Translate(amount Vec2) Rect {
	return Rect{r.X + amount.X, r.Y + amount.Y, r.W, r.H}
}

// Inflate grows r by w and h while keeping its center in place.
func (r Rect) Inflate(w, h float32) Rect {
	return Rect{r.X - w*0.5, r.Y - h*0.5, r.W + w, r.H + h}
}

// NonNeg returns an equivalent rectangle with non-negative size.
func (r Rect) NonNeg() Rect {
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

// Add translates r by v.
func (r Rect) Add(v Vec2) Rect { return r.Translate(v) }

// Sub translates r by the negation of v.
func (r Rect) Sub(v Vec2) Rect { return r.Translate(v.Neg()) }

// Scale multiplies position and size by s.
func (r Rect) Scale(s float32) Rect { return Rect{r.X * s, r.Y * s, r.W * s, r.H * s} }

// DivScalar divides position and size by s.
func (r Rect) DivScalar(s float32) Rect { return Rect{r.X / s, r.Y / s, r.W / s, r.H / s} }

// IntRect truncates r's fields toward zero.
func (r Rect) IntRect() IntRect {
	return IntRect{int32(r.X), int32(r.Y), int32(r.W), int32(r.H)}
}

// Components returns X, Y, W and H as a slice.
func (r Rect) Components() []float32 {
	return []float32{r.X, r.Y, r.W, r.H}
}

// Approx reports whether every element of r is within Epsilon of o.
func (r Rect) Approx(o Rect) bool {
	return ApproxF32(r.X, o.X) && ApproxF32(r.Y, o.Y) &&
		ApproxF32(r.W, o.W) && ApproxF32(r.H, o.H)
}

// String formats r as "x, y, w, h".
func (r Rect) String() string {
	return formatFloats(r.X, r.Y, r.W, r.H)
}
