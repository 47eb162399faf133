// Copyright (c) 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

// Domain constants used by Ed25519 and Ristretto255. Apart from the small
// values behind Zero, One and Two, these are the only elements this package
// predefines; they are process-wide
// immutable singletons, safe for concurrent use once initialized.
var (
	// D is the Edwards curve equation constant d = -121665/121666.
	D = &Element{929955233495203, 466365720129213, 1662059464998953,
		2033849074728123, 1442794654840575}

	// D2 is 2*d, used in the unified point-addition formula.
	D2 = &Element{1859910466990425, 932731440258426, 1072319116312658,
		1815898335770999, 633789495995903}

	// SqrtM1 is a fixed square root of -1 mod p: 2^((p-1)/4).
	SqrtM1 = &Element{1718705420411056, 234908883556509, 2233514472574048,
		2117202627021982, 765476049583133}

	// InvSqrtAMinusD is 1/sqrt(a-d) for Ristretto255 (a = -1).
	InvSqrtAMinusD = &Element{278908739862762, 821645201101625, 8113234426968,
		1777959178193151, 2118520810568447}

	// OneMinusDSquared is 1 - d^2.
	OneMinusDSquared = &Element{1136626929484150, 1998550399581263,
		496427632559748, 118527312129759, 45110755273534}

	// DMinusOneSquared is (d-1)^2.
	DMinusOneSquared = &Element{1507062230895904, 1572317787530805,
		683053064812840, 317374165784489, 1572899562415810}

	// SqrtADMinusOne is sqrt(a*d - 1) for Ristretto255 (a = -1).
	SqrtADMinusOne = &Element{2241493124984347, 425987919032274,
		2207028919301688, 1220490630685848, 974799131293748}

	// Curve25519A is the Montgomery curve constant A = 486662.
	Curve25519A = &Element{486662, 0, 0, 0, 0}
)

// SqrtRatio sets r to the non-negative square root of the ratio of u and v,
// implementing the Ristretto255 sqrt_ratio_m1 primitive
// (draft-irtf-cfrg-ristretto255-decaf448, Section 4.3).
//
// If u/v is square, SqrtRatio returns r and 1. If u/v is not square, SqrtRatio
// sets r according to the draft (sqrt of u*sqrt(-1)/v) and returns 0. Both
// candidates are computed unconditionally and the choice between them is made
// with a constant-time Select, so execution takes the same path regardless of
// u and v.
func (r *Element) SqrtRatio(u, v *Element) (rr *Element, wasSquare int) {
	var t0, v2, uv3, uv7, x Element

	// v3 = v^2 * v; x = u * v^7 = (v3^2 * v) * u
	v2.Square(v)
	uv3.Multiply(u, t0.Multiply(&v2, v))
	uv7.Multiply(&uv3, t0.Square(&v2))

	x.Multiply(&uv3, t0.Pow22523(&uv7)) // x = uv^3 * (uv^7)^((p-5)/8)

	var uNeg, check Element
	check.Multiply(v, t0.Square(&x)) // check = v * x^2
	uNeg.Negate(u)

	hasMRoot := check.Equal(u)
	hasPRoot := check.Equal(&uNeg)
	hasFRoot := check.Equal(t0.Multiply(&uNeg, SqrtM1))

	var xTimesSqrtM1 Element
	xTimesSqrtM1.Multiply(&x, SqrtM1)
	x.Select(&xTimesSqrtM1, &x, hasPRoot|hasFRoot)

	r.Absolute(&x)
	return r, hasMRoot | hasPRoot
}
