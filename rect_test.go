package vmath

import (
	"image"
	"slices"
	"testing"
)

func TestRect_Edges(t *testing.T) {
	r := R(10, 20, 30, 40)
	if r.Left() != 10 || r.Right() != 40 || r.Top() != 20 || r.Bottom() != 60 {
		t.Errorf("edges = %v %v %v %v", r.Left(), r.Right(), r.Top(), r.Bottom())
	}
	if got := r.Center(); got != V2(25, 40) {
		t.Errorf("Center = %v", got)
	}
	if got := r.BottomRight(); got != V2(40, 60) {
		t.Errorf("BottomRight = %v", got)
	}
	if r.Area() != 1200 || r.Perimeter() != 140 {
		t.Errorf("Area=%v Perimeter=%v", r.Area(), r.Perimeter())
	}

	neg := R(10, 10, -4, -2)
	if neg.Right() != 6 || neg.MinX() != 6 || neg.MaxX() != 10 {
		t.Errorf("negative width: Right=%v MinX=%v MaxX=%v", neg.Right(), neg.MinX(), neg.MaxX())
	}
	if got := neg.NonNeg(); got != R(6, 8, 4, 2) {
		t.Errorf("NonNeg = %v", got)
	}
}

func TestRect_Contains(t *testing.T) {
	r := R(0, 0, 10, 10)
	tests := []struct {
		p    Vec2
		want bool
	}{
		{V2(0, 0), true},
		{V2(9.9, 9.9), true},
		{V2(10, 5), false},
		{V2(5, 10), false},
		{V2(-0.1, 5), false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
	if !r.ContainsRect(R(2, 2, 8, 8)) || r.ContainsRect(R(2, 2, 9, 8)) {
		t.Error("ContainsRect mismatch")
	}
}

func TestRect_Overlap(t *testing.T) {
	a := R(0, 0, 10, 10)
	tests := []struct {
		name   string
		b      Rect
		want   Rect
		wantOK bool
	}{
		{"partial", R(5, 5, 10, 10), R(5, 5, 5, 5), true},
		{"inside", R(2, 3, 4, 5), R(2, 3, 4, 5), true},
		{"touching", R(10, 0, 5, 5), Rect{}, false},
		{"disjoint", R(20, 20, 1, 1), Rect{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := a.Overlap(tt.b)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Overlap = %v, %v; want %v, %v", got, ok, tt.want, tt.wantOK)
			}
			if a.Overlaps(tt.b) != tt.wantOK {
				t.Errorf("Overlaps = %v, want %v", !tt.wantOK, tt.wantOK)
			}
		})
	}
}

func TestRect_Transforms(t *testing.T) {
	tests := []struct {
		name   string
		got    Rect
		expect Rect
	}{
		{"scale to fit wide", R(0, 0, 100, 50).ScaleToFit(R(0, 0, 200, 200)), R(0, 50, 200, 100)},
		{"scale to fit tall", R(0, 0, 10, 40).ScaleToFit(R(0, 0, 100, 100)), R(37.5, 0, 25, 100)},
		{"conflate", R(0, 0, 2, 2).Conflate(R(5, 5, 1, 1)), R(0, 0, 6, 6)},
		{"translate", R(1, 2, 3, 4).Translate(V2(10, 20)), R(11, 22, 3, 4)},
		{"add", R(1, 2, 3, 4).Add(V2(1, 1)), R(2, 3, 3, 4)},
		{"sub", R(1, 2, 3, 4).Sub(V2(1, 1)), R(0, 1, 3, 4)},
		{"inflate", R(10, 10, 10, 10).Inflate(4, 2), R(8, 9, 14, 12)},
		{"scale", R(1, 2, 3, 4).Scale(2), R(2, 4, 6, 8)},
		{"div scalar", R(2, 4, 6, 8).DivScalar(2), R(1, 2, 3, 4)},
		{"centered", RectCentered(V2(5, 5), 4, 2), R(3, 4, 4, 2)},
		{"of size", RectOfSize(4, 2), R(0, 0, 4, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expect {
				t.Errorf("got %v, want %v", tt.got, tt.expect)
			}
		})
	}
}

func TestRect_Conversions(t *testing.T) {
	if got := R(1.9, -1.9, 3.5, 4).IntRect(); got != IR(1, -1, 3, 4) {
		t.Errorf("IntRect = %v", got)
	}
	if got := R(1.5, 2, 3, 4).String(); got != "1.5, 2, 3, 4" {
		t.Errorf("String = %q", got)
	}
	if !R(1, 2, 3, 4).Approx(R(1, 2, 3, 4+Epsilon/2)) {
		t.Error("Approx rejected a near-equal rect")
	}
}

func TestIntRect_Basics(t *testing.T) {
	r := IR(1, 2, 3, 4)
	if r.Right() != 4 || r.Bottom() != 6 || r.Area() != 12 || r.Perimeter() != 14 {
		t.Errorf("Right=%d Bottom=%d Area=%d Perimeter=%d", r.Right(), r.Bottom(), r.Area(), r.Perimeter())
	}
	if got := r.Center(); got != I2(2, 4) {
		t.Errorf("Center = %v", got)
	}
	if got := r.Rect(); got != R(1, 2, 3, 4) {
		t.Errorf("Rect = %v", got)
	}
	if got := r.String(); got != "1, 2, 3, 4" {
		t.Errorf("String = %q", got)
	}
	if r.IsEmpty() || !IR(1, 1, 0, 5).IsEmpty() {
		t.Error("IsEmpty mismatch")
	}
	if got := IntRectCentered(I2(5, 5), 3, 3); got != IR(4, 4, 3, 3) {
		t.Errorf("IntRectCentered = %v", got)
	}
	if got := IntRectOfSize(3, 2); got != IR(0, 0, 3, 2) {
		t.Errorf("IntRectOfSize = %v", got)
	}
	if !r.Contains(I2(1, 2)) || r.Contains(I2(4, 2)) {
		t.Error("Contains mismatch on edges")
	}
	if got := IR(0, 0, 10, 10).ClampPoint(I2(-5, 20)); got != I2(0, 10) {
		t.Errorf("ClampPoint = %v", got)
	}
}

func TestIntRect_Image(t *testing.T) {
	if got := IR(1, 2, 3, 4).Image(); got != image.Rect(1, 2, 4, 6) {
		t.Errorf("Image = %v", got)
	}
	if got := IR(3, 3, -2, -1).Image(); got != image.Rect(1, 2, 3, 3) {
		t.Errorf("Image of negative rect = %v", got)
	}
	if got := IntRectFromImage(image.Rect(4, 6, 1, 2)); got != IR(1, 2, 3, 4) {
		t.Errorf("IntRectFromImage = %v", got)
	}
}

func TestIntRect_Geometry(t *testing.T) {
	tests := []struct {
		name   string
		got    IntRect
		expect IntRect
	}{
		{"scale to fit", IR(0, 0, 4, 3).ScaleToFit(IR(0, 0, 10, 10)), IR(0, 1, 10, 7)},
		{"scale to fit empty", IR(0, 0, 0, 5).ScaleToFit(IR(0, 0, 10, 20)), IR(5, 10, 0, 0)},
		{"conflate", IR(0, 0, 2, 2).Conflate(IR(5, 5, 1, 1)), IR(0, 0, 6, 6)},
		{"inflate", IR(10, 10, 10, 10).Inflate(4, 2), IR(8, 9, 14, 12)},
		{"translate", IR(1, 1, 2, 2).Translate(I2(-1, 3)), IR(0, 4, 2, 2)},
		{"sub", IR(1, 1, 2, 2).Sub(Int2One), IR(0, 0, 2, 2)},
		{"non neg", IR(3, 3, -2, -1).NonNeg(), IR(1, 2, 2, 1)},
		{"absolute", IR(3, 3, -2, 1).Absolute(), IR(1, 3, 2, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expect {
				t.Errorf("got %v, want %v", tt.got, tt.expect)
			}
		})
	}

	got, ok := IR(0, 0, 10, 10).Overlap(IR(5, -5, 10, 10))
	if !ok || got != IR(5, 0, 5, 5) {
		t.Errorf("Overlap = %v, %v", got, ok)
	}
	if _, ok := IR(0, 0, 10, 10).Overlap(IR(0, 10, 10, 10)); ok {
		t.Error("touching rects reported as overlapping")
	}
}

func TestIntRect_All(t *testing.T) {
	tests := []struct {
		name string
		r    IntRect
		want []Int2
	}{
		{"row major", IR(0, 0, 2, 2), []Int2{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
		{"negative size", IR(3, 3, -2, -1), []Int2{{1, 2}, {2, 2}}},
		{"empty", IR(5, 5, 0, 3), []Int2{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Points(); !slices.Equal(got, tt.want) {
				t.Errorf("Points() = %v, want %v", got, tt.want)
			}
		})
	}

	n := 0
	for range IR(0, 0, 10, 10).All() {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("early break visited %d cells, want 3", n)
	}
}
