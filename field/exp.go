// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

// This file implements the three fixed square-and-multiply addition chains
// the field needs: modular inversion, the (p-5)/8 exponent used by
// Ristretto255's square-root primitive, and the (p-1)/2 Legendre-symbol
// exponent used by Elligator-style maps. Each chain is a literal sequence
// of Square/Multiply calls, so execution takes the same number of steps
// regardless of the operand.

// Invert sets v = 1/z mod p, and returns v. If z is zero, Invert sets v to
// zero and returns v.
//
// Inversion is implemented as exponentiation by p-2 = 2^255 - 21, using the
// same 254-squaring, 11-multiplication addition chain as the reference
// Curve25519 implementation.
func (v *Element) Invert(z *Element) *Element {
	var t0, t1, t2, t3 Element

	t0.Square(z)          // z^2
	t1.Square(&t0)        // z^4
	t1.Square(&t1)        // z^8
	t1.Multiply(z, &t1)   // z^9
	t0.Multiply(&t0, &t1) // z^11
	t2.Square(&t0)        // z^22
	t1.Multiply(&t1, &t2) // z^31 = 2^5-1

	t2.Square(&t1)
	for i := 0; i < 4; i++ {
		t2.Square(&t2)
	}
	t1.Multiply(&t2, &t1) // 2^10-1

	t2.Square(&t1)
	for i := 0; i < 9; i++ {
		t2.Square(&t2)
	}
	t2.Multiply(&t2, &t1) // 2^20-1

	t3.Square(&t2)
	for i := 0; i < 19; i++ {
		t3.Square(&t3)
	}
	t2.Multiply(&t3, &t2) // 2^40-1

	t2.Square(&t2)
	for i := 0; i < 9; i++ {
		t2.Square(&t2)
	}
	t1.Multiply(&t2, &t1) // 2^50-1

	t2.Square(&t1)
	for i := 0; i < 49; i++ {
		t2.Square(&t2)
	}
	t2.Multiply(&t2, &t1) // 2^100-1

	t3.Square(&t2)
	for i := 0; i < 99; i++ {
		t3.Square(&t3)
	}
	t2.Multiply(&t3, &t2) // 2^200-1

	t2.Square(&t2)
	for i := 0; i < 49; i++ {
		t2.Square(&t2)
	}
	t1.Multiply(&t2, &t1) // 2^250-1

	t1.Square(&t1)
	for i := 0; i < 4; i++ {
		t1.Square(&t1)
	}
	return v.Multiply(&t1, &t0) // 2^255-21
}

// Pow22523 sets v = z^((p-5)/8), and returns v. (p-5)/8 = 2^252 - 3.
//
// The result is used by SqrtRatio to build a candidate square root.
func (v *Element) Pow22523(z *Element) *Element {
	var t0, t1 Element

	t0.Square(z)          // z^2
	t1.Square(&t0)        // z^4
	t1.Square(&t1)        // z^8
	t1.Multiply(z, &t1)   // z^9
	t0.Multiply(&t0, &t1) // z^11
	t0.Square(&t0)        // z^22
	t0.Multiply(&t1, &t0) // z^31 = 2^5-1

	t1.Square(&t0)
	for i := 0; i < 4; i++ {
		t1.Square(&t1)
	}
	t0.Multiply(&t1, &t0) // 2^10-1

	t1.Square(&t0)
	for i := 0; i < 9; i++ {
		t1.Square(&t1)
	}
	t1.Multiply(&t1, &t0) // 2^20-1

	var t2 Element
	t2.Square(&t1)
	for i := 0; i < 19; i++ {
		t2.Square(&t2)
	}
	t1.Multiply(&t2, &t1) // 2^40-1

	t1.Square(&t1)
	for i := 0; i < 9; i++ {
		t1.Square(&t1)
	}
	t0.Multiply(&t1, &t0) // 2^50-1

	t1.Square(&t0)
	for i := 0; i < 49; i++ {
		t1.Square(&t1)
	}
	t1.Multiply(&t1, &t0) // 2^100-1

	t2.Square(&t1)
	for i := 0; i < 99; i++ {
		t2.Square(&t2)
	}
	t1.Multiply(&t2, &t1) // 2^200-1

	t1.Square(&t1)
	for i := 0; i < 49; i++ {
		t1.Square(&t1)
	}
	t0.Multiply(&t1, &t0) // 2^250-1

	t0.Square(&t0) // 2^251-2
	t0.Square(&t0) // 2^252-4

	return v.Multiply(&t0, z) // 2^252-3
}

// Chi sets v = z^((p-1)/2), and returns v. This is the Legendre-symbol
// exponent: Chi returns one (as a field element) if z is a non-zero
// quadratic residue, minus one if z is a non-residue, and zero if z is
// zero.
func (v *Element) Chi(z *Element) *Element {
	var t0, t1, t2, t3 Element

	t0.Square(z)          // z^2
	t1.Multiply(&t0, z)   // z^3
	t0.Square(&t1)        // z^6
	t2.Square(&t0)        // z^12
	t2.Square(&t2)        // z^24
	t2.Multiply(&t2, &t0) // z^30
	t1.Multiply(&t2, z)   // z^31 = 2^5-1

	t2.Square(&t1)
	for i := 0; i < 4; i++ {
		t2.Square(&t2)
	}
	t1.Multiply(&t2, &t1) // 2^10-1

	t2.Square(&t1)
	for i := 0; i < 9; i++ {
		t2.Square(&t2)
	}
	t2.Multiply(&t2, &t1) // 2^20-1

	t3.Square(&t2)
	for i := 0; i < 19; i++ {
		t3.Square(&t3)
	}
	t2.Multiply(&t3, &t2) // 2^40-1

	t2.Square(&t2)
	for i := 0; i < 9; i++ {
		t2.Square(&t2)
	}
	t1.Multiply(&t2, &t1) // 2^50-1

	t2.Square(&t1)
	for i := 0; i < 49; i++ {
		t2.Square(&t2)
	}
	t2.Multiply(&t2, &t1) // 2^100-1

	t3.Square(&t2)
	for i := 0; i < 99; i++ {
		t3.Square(&t3)
	}
	t2.Multiply(&t3, &t2) // 2^200-1

	t2.Square(&t2)
	for i := 0; i < 49; i++ {
		t2.Square(&t2)
	}
	t1.Multiply(&t2, &t1) // 2^250-1

	t1.Square(&t1)
	for i := 0; i < 3; i++ {
		t1.Square(&t1)
	}

	return v.Multiply(&t1, &t0) // (p-1)/2
}
