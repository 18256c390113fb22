package vmath_test

import (
	"fmt"

	"github.com/gogpu/vmath"
)

func ExampleMat3x2_Mul() {
	// Translate first, then scale.
	m := vmath.Translation2(vmath.V2(3, 1)).Mul(vmath.Scaling2(vmath.V2(3, 2)))
	fmt.Println(m.Transform(vmath.V2(1, 0)))
	// Output: 12, 2
}

func ExampleIntRect_All() {
	for p := range vmath.IR(0, 0, 2, 2).All() {
		fmt.Println(p)
	}
	// Output:
	// 0, 0
	// 1, 0
	// 0, 1
	// 1, 1
}

func ExampleRect_ScaleToFit() {
	fmt.Println(vmath.R(0, 0, 100, 50).ScaleToFit(vmath.R(0, 0, 200, 200)))
	// Output: 0, 50, 200, 100
}

func ExampleParseHex() {
	c, err := vmath.ParseHex("#f80")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(c, c.Hex())
	// Output: ff8800ff #ff8800ff
}

func ExampleColor_ToHSV() {
	h, s, v := vmath.Blue.ToHSV()
	fmt.Println(h, s, v)
	// Output: 240 1 1
}
