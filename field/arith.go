// Copyright (c) 2017 George Tankersley. All rights reserved.
// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import "math/bits"

// madd64 computes accLo + accHi*2^64 + x*y and returns the low and high
// 64-bit words of the 128-bit result. This is the only place a 64x64->128
// product is formed; everywhere else the accumulator is threaded through
// repeated calls to this helper, one per schoolbook term.
func madd64(accLo, accHi, x, y uint64) (lo, hi uint64) {
	hi, lo = bits.Mul64(x, y)
	lo += accLo
	if lo < accLo {
		hi++
	}
	hi += accHi
	return
}

// Multiply sets v = x * y, and returns v.
//
// This is the standard five-limb schoolbook product: the reduction identity
// 2^255 ≡ 19 (mod p) means any term of total limb-degree >= 5 folds back
// into the result by multiplying one factor by 19 instead of carrying a
// sixth coefficient. x's limbs 1..4 are pre-multiplied by 19 once and reused
// across all five output coefficients.
func (v *Element) Multiply(x, y *Element) *Element {
	x0, x1, x2, x3, x4 := x.l0, x.l1, x.l2, x.l3, x.l4
	y0, y1, y2, y3, y4 := y.l0, y.l1, y.l2, y.l3, y.l4

	x1_19 := x1 * 19
	x2_19 := x2 * 19
	x3_19 := x3 * 19
	x4_19 := x4 * 19

	// r0 = x0*y0 + 19*(x1*y4 + x2*y3 + x3*y2 + x4*y1)
	r00, r01 := madd64(0, 0, x0, y0)
	r00, r01 = madd64(r00, r01, x1_19, y4)
	r00, r01 = madd64(r00, r01, x2_19, y3)
	r00, r01 = madd64(r00, r01, x3_19, y2)
	r00, r01 = madd64(r00, r01, x4_19, y1)

	// r1 = x0*y1 + x1*y0 + 19*(x2*y4 + x3*y3 + x4*y2)
	r10, r11 := madd64(0, 0, x0, y1)
	r10, r11 = madd64(r10, r11, x1, y0)
	r10, r11 = madd64(r10, r11, x2_19, y4)
	r10, r11 = madd64(r10, r11, x3_19, y3)
	r10, r11 = madd64(r10, r11, x4_19, y2)

	// r2 = x0*y2 + x1*y1 + x2*y0 + 19*(x3*y4 + x4*y3)
	r20, r21 := madd64(0, 0, x0, y2)
	r20, r21 = madd64(r20, r21, x1, y1)
	r20, r21 = madd64(r20, r21, x2, y0)
	r20, r21 = madd64(r20, r21, x3_19, y4)
	r20, r21 = madd64(r20, r21, x4_19, y3)

	// r3 = x0*y3 + x1*y2 + x2*y1 + x3*y0 + 19*x4*y4
	r30, r31 := madd64(0, 0, x0, y3)
	r30, r31 = madd64(r30, r31, x1, y2)
	r30, r31 = madd64(r30, r31, x2, y1)
	r30, r31 = madd64(r30, r31, x3, y0)
	r30, r31 = madd64(r30, r31, x4_19, y4)

	// r4 = x0*y4 + x1*y3 + x2*y2 + x3*y1 + x4*y0
	r40, r41 := madd64(0, 0, x0, y4)
	r40, r41 = madd64(r40, r41, x1, y3)
	r40, r41 = madd64(r40, r41, x2, y2)
	r40, r41 = madd64(r40, r41, x3, y1)
	r40, r41 = madd64(r40, r41, x4, y0)

	v.carryMul(r00, r01, r10, r11, r20, r21, r30, r31, r40, r41)
	return v
}

// Square sets v = x * x, and returns v. Squaring needs only 15 products
// instead of 25: terms with i == j appear once, terms with i != j appear
// doubled, folded into the 2x/38x/19x precomputed factors below.
func (v *Element) Square(x *Element) *Element {
	x0, x1, x2, x3, x4 := x.l0, x.l1, x.l2, x.l3, x.l4

	x0_2 := x0 << 1
	x1_2 := x1 << 1

	x1_38 := x1 * 38
	x2_38 := x2 * 38
	x3_38 := x3 * 38

	x3_19 := x3 * 19
	x4_19 := x4 * 19

	// r0 = x0^2 + 38*x1*x4 + 38*x2*x3
	r00, r01 := madd64(0, 0, x0, x0)
	r00, r01 = madd64(r00, r01, x1_38, x4)
	r00, r01 = madd64(r00, r01, x2_38, x3)

	// r1 = 2*x0*x1 + 38*x2*x4 + 19*x3^2
	r10, r11 := madd64(0, 0, x0_2, x1)
	r10, r11 = madd64(r10, r11, x2_38, x4)
	r10, r11 = madd64(r10, r11, x3_19, x3)

	// r2 = 2*x0*x2 + x1^2 + 38*x3*x4
	r20, r21 := madd64(0, 0, x0_2, x2)
	r20, r21 = madd64(r20, r21, x1, x1)
	r20, r21 = madd64(r20, r21, x3_38, x4)

	// r3 = 2*x0*x3 + 2*x1*x2 + 19*x4^2
	r30, r31 := madd64(0, 0, x0_2, x3)
	r30, r31 = madd64(r30, r31, x1_2, x2)
	r30, r31 = madd64(r30, r31, x4_19, x4)

	// r4 = 2*x0*x4 + 2*x1*x3 + x2^2
	r40, r41 := madd64(0, 0, x0_2, x4)
	r40, r41 = madd64(r40, r41, x1_2, x3)
	r40, r41 = madd64(r40, r41, x2, x2)

	v.carryMul(r00, r01, r10, r11, r20, r21, r30, r31, r40, r41)
	return v
}

// Square2 sets v = 2 * x * x, and returns v. The accumulator values are
// doubled before the carry chain runs, rather than doubling the squared
// result afterwards.
func (v *Element) Square2(x *Element) *Element {
	x0, x1, x2, x3, x4 := x.l0, x.l1, x.l2, x.l3, x.l4

	x0_2 := x0 << 1
	x1_2 := x1 << 1

	x1_38 := x1 * 38
	x2_38 := x2 * 38
	x3_38 := x3 * 38

	x3_19 := x3 * 19
	x4_19 := x4 * 19

	r00, r01 := madd64(0, 0, x0, x0)
	r00, r01 = madd64(r00, r01, x1_38, x4)
	r00, r01 = madd64(r00, r01, x2_38, x3)

	r10, r11 := madd64(0, 0, x0_2, x1)
	r10, r11 = madd64(r10, r11, x2_38, x4)
	r10, r11 = madd64(r10, r11, x3_19, x3)

	r20, r21 := madd64(0, 0, x0_2, x2)
	r20, r21 = madd64(r20, r21, x1, x1)
	r20, r21 = madd64(r20, r21, x3_38, x4)

	r30, r31 := madd64(0, 0, x0_2, x3)
	r30, r31 = madd64(r30, r31, x1_2, x2)
	r30, r31 = madd64(r30, r31, x4_19, x4)

	r40, r41 := madd64(0, 0, x0_2, x4)
	r40, r41 = madd64(r40, r41, x1_2, x3)
	r40, r41 = madd64(r40, r41, x2, x2)

	// Double the wide accumulators before the carry chain runs.
	r01 = r01<<1 | r00>>63
	r00 <<= 1
	r11 = r11<<1 | r10>>63
	r10 <<= 1
	r21 = r21<<1 | r20>>63
	r20 <<= 1
	r31 = r31<<1 | r30>>63
	r30 <<= 1
	r41 = r41<<1 | r40>>63
	r40 <<= 1

	v.carryMul(r00, r01, r10, r11, r20, r21, r30, r31, r40, r41)
	return v
}

// carryMul runs the post-multiplication carry chain shared by Multiply,
// Square, and Square2. Each r_k is held as a 128-bit value split into a low
// and high 64-bit word; the chain folds each high word into the next limb's
// low word (shifting by 13 bits, since a limb is 51 of the low word's 64
// bits), folds r4's overflow into r0 times 19, then runs one full carry pass
// r0->r1->r2->r3->r4 with r4's overflow again folded into r0 times 19. This
// leaves limbs 1-4 below 2^51 and limb 0 below 2^51 + 2^13*19. The chain
// does not stop after r0->r1->r2: limbs 2-4 are always carried as well.
func (v *Element) carryMul(r00, r01, r10, r11, r20, r21, r30, r31, r40, r41 uint64) {
	r01 = (r01 << 13) | (r00 >> 51)
	r00 &= maskLow51Bits

	r11 = (r11 << 13) | (r10 >> 51)
	r10 &= maskLow51Bits
	r10 += r01

	r21 = (r21 << 13) | (r20 >> 51)
	r20 &= maskLow51Bits
	r20 += r11

	r31 = (r31 << 13) | (r30 >> 51)
	r30 &= maskLow51Bits
	r30 += r21

	r41 = (r41 << 13) | (r40 >> 51)
	r40 &= maskLow51Bits
	r40 += r31

	r41 *= 19
	r00 += r41

	r10 += r00 >> 51
	r00 &= maskLow51Bits
	r20 += r10 >> 51
	r10 &= maskLow51Bits
	r30 += r20 >> 51
	r20 &= maskLow51Bits
	r40 += r30 >> 51
	r30 &= maskLow51Bits
	r00 += (r40 >> 51) * 19
	r40 &= maskLow51Bits

	v.l0, v.l1, v.l2, v.l3, v.l4 = r00, r10, r20, r30, r40
}
