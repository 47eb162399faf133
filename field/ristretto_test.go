// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import "testing"

func TestDecimalConstants(t *testing.T) {
	sqrtM1String := "19681161376707505956807079304988542015446066515923890162744021073123829784752"
	if exp := new(Element).fromDecimal(sqrtM1String); SqrtM1.Equal(exp) != 1 {
		t.Errorf("SqrtM1 is %v, expected %v", SqrtM1, exp)
	}
	dString := "37095705934669439343138083508754565189542113879843219016388785533085940283555"
	if exp := new(Element).fromDecimal(dString); D.Equal(exp) != 1 {
		t.Errorf("D is %v, expected %v", D, exp)
	}
	d2Want := new(Element).Add(D, D)
	d2Want.reduce()
	if D2.Equal(d2Want) != 1 {
		t.Errorf("D2 is %v, expected 2*D = %v", D2, d2Want)
	}
}

func TestSqrtRatio(t *testing.T) {
	// From draft-irtf-cfrg-ristretto255-decaf448-00, Appendix A.4.
	type test struct {
		u, v      string
		wasSquare int
		r         string
	}
	var tests = []test{
		// If u is 0, the function is defined to return (0, TRUE), even if v
		// is zero. The denominator is never zero where this package's
		// callers use SqrtRatio, but the primitive itself must still behave.
		{
			"0000000000000000000000000000000000000000000000000000000000000000",
			"0000000000000000000000000000000000000000000000000000000000000000",
			1, "0000000000000000000000000000000000000000000000000000000000000000",
		},
		// 0/1 == 0^2
		{
			"0000000000000000000000000000000000000000000000000000000000000000",
			"0100000000000000000000000000000000000000000000000000000000000000",
			1, "0000000000000000000000000000000000000000000000000000000000000000",
		},
		// If u is non-zero and v is zero, defined to return (0, FALSE).
		{
			"0100000000000000000000000000000000000000000000000000000000000000",
			"0000000000000000000000000000000000000000000000000000000000000000",
			0, "0000000000000000000000000000000000000000000000000000000000000000",
		},
		// 2/1 is not square in this field.
		{
			"0200000000000000000000000000000000000000000000000000000000000000",
			"0100000000000000000000000000000000000000000000000000000000000000",
			0, "3c5ff1b5d8e4113b871bd052f9e7bcd0582804c266ffb2d4f4203eb07fdb7c54",
		},
		// 4/1 == 2^2
		{
			"0400000000000000000000000000000000000000000000000000000000000000",
			"0100000000000000000000000000000000000000000000000000000000000000",
			1, "0200000000000000000000000000000000000000000000000000000000000000",
		},
		// 1/4 == (2^-1)^2
		{
			"0100000000000000000000000000000000000000000000000000000000000000",
			"0400000000000000000000000000000000000000000000000000000000000000",
			1, "f6ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff3f",
		},
	}

	for i, tt := range tests {
		u, err := new(Element).SetBytes(decodeHex(tt.u))
		if err != nil {
			t.Fatal(err)
		}
		v, err := new(Element).SetBytes(decodeHex(tt.v))
		if err != nil {
			t.Fatal(err)
		}
		want, err := new(Element).SetBytes(decodeHex(tt.r))
		if err != nil {
			t.Fatal(err)
		}
		var got Element
		_, wasSquare := got.SqrtRatio(u, v)
		if got.Equal(want) == 0 || wasSquare != tt.wasSquare {
			t.Errorf("%d: got (%v, %v), want (%v, %v)", i, got, wasSquare, want, tt.wasSquare)
		}
	}
}

func TestSqrtRatioSquareCase(t *testing.T) {
	// For any non-zero v and any x, u = x^2 * v makes u/v a square (x^2),
	// so SqrtRatio must report wasSquare = 1 and return ± x.
	var x, v Element
	x.One()
	x.Add(&x, &x) // x = 2, arbitrary non-zero, non-one value
	v.One()
	v.Add(&v, &v)
	v.Add(&v, &x) // v = 4, arbitrary non-zero denominator

	var x2, u Element
	x2.Square(&x)
	u.Multiply(&x2, &v)

	var r, negR Element
	_, wasSquare := r.SqrtRatio(&u, &v)
	if wasSquare != 1 {
		t.Fatalf("expected u/v to be square, wasSquare = %d", wasSquare)
	}
	negR.Negate(&r)
	if r.Equal(&x) != 1 && negR.Equal(&x) != 1 {
		t.Errorf("SqrtRatio(%v, %v) = %v, want +-%v", u, v, r, x)
	}

	var check Element
	check.Square(&r)
	check.Multiply(&check, &v)
	if check.Equal(&u) != 1 {
		t.Errorf("r^2 * v != u: got %v, want %v", check, u)
	}
}

func TestSqrtRatioNonSquareIsAbsolute(t *testing.T) {
	var two Element
	two.One()
	two.Add(&two, &two)

	var one Element
	one.One()

	var r Element
	r.SqrtRatio(&two, &one) // 2/1 is a known non-residue, see TestSqrtRatio
	if r.IsNegative() != 0 {
		t.Errorf("SqrtRatio result was not the non-negative representative")
	}
}
