// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"crypto/subtle"
	"encoding/binary"
	"errors"
)

// Element represents an element of the field GF(2^255-19). Note that this
// is not a cryptographically secure group on its own, and should only be
// used to interact with Ed25519/Ristretto255 point coordinates.
//
// This type works similarly to math/big.Int, and all arguments and receivers
// are allowed to alias.
//
// The zero value is a valid zero element.
type Element struct {
	// An element t represents the integer
	//     t.l0 + t.l1*2^51 + t.l2*2^102 + t.l3*2^153 + t.l4*2^204
	//
	// After Multiply, Square, Square2 or a carry pass, l1..l4 are lower than
	// 2^51 and l0 can be up to 2^51 + 2^13 * 19 due to carry propagation.
	// Add and Subtract do not carry, so their results can have wider limbs
	// (see their docs).
	l0 uint64
	l1 uint64
	l2 uint64
	l3 uint64
	l4 uint64
}

const maskLow51Bits uint64 = (1 << 51) - 1

var (
	feZero = &Element{0, 0, 0, 0, 0}
	feOne  = &Element{1, 0, 0, 0, 0}
	feTwo  = &Element{2, 0, 0, 0, 0}
)

// Zero sets v = 0, and returns v.
func (v *Element) Zero() *Element {
	*v = *feZero
	return v
}

// One sets v = 1, and returns v.
func (v *Element) One() *Element {
	*v = *feOne
	return v
}

// Two sets v = 2, and returns v.
func (v *Element) Two() *Element {
	*v = *feTwo
	return v
}

// carryPropagate1 brings the first three limb transitions below 51 bits. It
// is split from carryPropagate2 because of inliner heuristics; the two
// MUST always be called one after the other.
func (v *Element) carryPropagate1() *Element {
	v.l1 += v.l0 >> 51
	v.l0 &= maskLow51Bits
	v.l2 += v.l1 >> 51
	v.l1 &= maskLow51Bits
	v.l3 += v.l2 >> 51
	v.l2 &= maskLow51Bits
	return v
}

func (v *Element) carryPropagate2() *Element {
	v.l4 += v.l3 >> 51
	v.l3 &= maskLow51Bits
	v.l0 += (v.l4 >> 51) * 19
	v.l4 &= maskLow51Bits
	return v
}

func (v *Element) carryPropagate() *Element {
	return v.carryPropagate1().carryPropagate2()
}

// reduce reduces v modulo 2^255 - 19 and returns it. The sequence of
// operations never depends on the value of v.
func (v *Element) reduce() *Element {
	v.carryPropagate1().carryPropagate2()

	// After the light reduction we have v < 2^255 + 2^13*19, but need
	// v < 2^255 - 19.
	//
	// If v >= 2^255 - 19, then v + 19 >= 2^255, which overflows 2^255 - 1,
	// generating a carry. c is 0 if v < 2^255 - 19, and 1 otherwise.
	c := (v.l0 + 19) >> 51
	c = (v.l1 + c) >> 51
	c = (v.l2 + c) >> 51
	c = (v.l3 + c) >> 51
	c = (v.l4 + c) >> 51

	// If v < 2^255 - 19 and c == 0 this is a no-op; otherwise it applies
	// the reduction identity to the carry.
	v.l0 += 19 * c

	v.l1 += v.l0 >> 51
	v.l0 &= maskLow51Bits
	v.l2 += v.l1 >> 51
	v.l1 &= maskLow51Bits
	v.l3 += v.l2 >> 51
	v.l2 &= maskLow51Bits
	v.l4 += v.l3 >> 51
	v.l3 &= maskLow51Bits
	// no additional carry
	v.l4 &= maskLow51Bits

	return v
}

// Add sets v = a + b, and returns v. No reduction is performed: if both
// operands have limbs below 2^54 the result has limbs below 2^55, safe for
// one further multiplication without an interposed reduce.
func (v *Element) Add(a, b *Element) *Element {
	v.l0 = a.l0 + b.l0
	v.l1 = a.l1 + b.l1
	v.l2 = a.l2 + b.l2
	v.l3 = a.l3 + b.l3
	v.l4 = a.l4 + b.l4
	return v
}

// Subtract sets v = a - b, and returns v.
func (v *Element) Subtract(a, b *Element) *Element {
	// b is carried first so the subtraction below cannot underflow. a is left as passed; callers handing in a loose a
	// must ensure its limbs still fit after the 2*p bias.
	t := *b
	t.carryPropagate()

	// We add 2*p (as K_i below) before subtracting t, which is always safe
	// because t.l1..t.l4 are now below 2^51 and t.l0 below 2^51 + 2^13*19,
	// each smaller than its K_i.
	v.l0 = (a.l0 + 0xFFFFFFFFFFFDA) - t.l0
	v.l1 = (a.l1 + 0xFFFFFFFFFFFFE) - t.l1
	v.l2 = (a.l2 + 0xFFFFFFFFFFFFE) - t.l2
	v.l3 = (a.l3 + 0xFFFFFFFFFFFFE) - t.l3
	v.l4 = (a.l4 + 0xFFFFFFFFFFFFE) - t.l4
	return v
}

// Negate sets v = -a, and returns v.
func (v *Element) Negate(a *Element) *Element {
	return v.Subtract(feZero, a)
}

// Set sets v = a, and returns v.
func (v *Element) Set(a *Element) *Element {
	*v = *a
	return v
}

// SetBytes sets v to x, which must be a 32-byte little-endian encoding. If x
// is not 32 bytes, SetBytes returns nil and an error, and the receiver is
// unchanged.
//
// Consistent with RFC 7748, the most significant bit (the high bit of the
// last byte) is ignored, and non-canonical values (2^255-19 through
// 2^255-1) are accepted without being rejected; they are silently
// canonicalized the next time the value is reduced.
func (v *Element) SetBytes(x []byte) (*Element, error) {
	if len(x) != 32 {
		return nil, errors.New("field: invalid field element input size")
	}

	// Bits 0:51 (bytes 0:8, bits 0:64, shift 0, mask 51).
	v.l0 = binary.LittleEndian.Uint64(x[0:8])
	v.l0 &= maskLow51Bits
	// Bits 51:102 (bytes 6:14, bits 48:112, shift 3, mask 51).
	v.l1 = binary.LittleEndian.Uint64(x[6:14]) >> 3
	v.l1 &= maskLow51Bits
	// Bits 102:153 (bytes 12:20, bits 96:160, shift 6, mask 51).
	v.l2 = binary.LittleEndian.Uint64(x[12:20]) >> 6
	v.l2 &= maskLow51Bits
	// Bits 153:204 (bytes 19:27, bits 152:216, shift 1, mask 51).
	v.l3 = binary.LittleEndian.Uint64(x[19:27]) >> 1
	v.l3 &= maskLow51Bits
	// Bits 204:255 (bytes 24:32, bits 192:256, shift 12, mask 51).
	// Note: not bytes 25:33, shift 4, to avoid overreading x.
	v.l4 = binary.LittleEndian.Uint64(x[24:32]) >> 12
	v.l4 &= maskLow51Bits

	return v, nil
}

// Bytes returns the canonical 32-byte little-endian encoding of v, after
// reducing it to the unique representative in [0, p).
func (v *Element) Bytes() []byte {
	// This function is outlined to make the allocation inline in the caller.
	var out [32]byte
	return v.fillBytes(out[:])
}

func (v *Element) fillBytes(b []byte) []byte {
	if len(b) != 32 {
		panic("field: buffer of the wrong size passed to Element.fillBytes")
	}

	t := *v
	t.reduce()

	var buf [8]byte
	for i, l := range [5]uint64{t.l0, t.l1, t.l2, t.l3, t.l4} {
		bitsOffset := i * 51
		binary.LittleEndian.PutUint64(buf[:], l<<uint(bitsOffset%8))
		for j, bb := range buf {
			off := bitsOffset/8 + j
			if off >= len(b) {
				break
			}
			b[off] |= bb
		}
	}

	return b
}

// Equal returns 1 if v and u are equal mod p (compared canonically, via
// Bytes), and 0 otherwise. This is the semantic field equality; see
// equalLimbs for the non-canonical limb-wise comparison used in tests.
func (v *Element) Equal(u *Element) int {
	sa, sv := u.Bytes(), v.Bytes()
	return subtle.ConstantTimeCompare(sa, sv)
}

// equalLimbs compares the internal limb representation directly. Two loose
// representations of the same field element can compare unequal here even
// though Equal would report them equal; this is intentionally exposed only
// for tests that need to distinguish representation from value.
func (v *Element) equalLimbs(u *Element) bool {
	return v.l0 == u.l0 && v.l1 == u.l1 && v.l2 == u.l2 &&
		v.l3 == u.l3 && v.l4 == u.l4
}

const mask64Bits uint64 = (1 << 64) - 1

// Select sets v to a if cond == 1, and to b if cond == 0, using a branch-free
// XOR-mask: the same instruction sequence executes regardless of cond.
//
// cond must be 0 or 1.
func (v *Element) Select(a, b *Element, cond int) *Element {
	m := uint64(cond) * mask64Bits
	v.l0 = b.l0 ^ (m & (a.l0 ^ b.l0))
	v.l1 = b.l1 ^ (m & (a.l1 ^ b.l1))
	v.l2 = b.l2 ^ (m & (a.l2 ^ b.l2))
	v.l3 = b.l3 ^ (m & (a.l3 ^ b.l3))
	v.l4 = b.l4 ^ (m & (a.l4 ^ b.l4))
	return v
}

// Swap swaps v and u if cond == 1, or leaves them unchanged if cond == 0.
//
// cond must be 0 or 1.
func (v *Element) Swap(u *Element, cond int) {
	m := uint64(cond) * mask64Bits
	t := m & (v.l0 ^ u.l0)
	v.l0 ^= t
	u.l0 ^= t
	t = m & (v.l1 ^ u.l1)
	v.l1 ^= t
	u.l1 ^= t
	t = m & (v.l2 ^ u.l2)
	v.l2 ^= t
	u.l2 ^= t
	t = m & (v.l3 ^ u.l3)
	v.l3 ^= t
	u.l3 ^= t
	t = m & (v.l4 ^ u.l4)
	v.l4 ^= t
	u.l4 ^= t
}

// CondNegate sets v to -u if cond == 1, and to u if cond == 0.
//
// cond must be 0 or 1.
func (v *Element) CondNegate(u *Element, cond int) *Element {
	var neg Element
	neg.Negate(u)
	return v.Select(&neg, u, cond)
}

// IsNegative returns 1 if v (taken canonically) is negative — that is, if
// the least significant bit of its canonical encoding is set — and 0
// otherwise.
func (v *Element) IsNegative() int {
	b := v.Bytes()
	return int(b[0] & 1)
}

// IsZero returns 1 if v represents 0 mod p, and 0 otherwise, without
// branching on the value: it ORs every byte of the canonical encoding
// together and tests the result against zero arithmetically.
func (v *Element) IsZero() int {
	b := v.Bytes()
	var d byte
	for _, bb := range b {
		d |= bb
	}
	return int((uint64(d) - 1) >> 8 & 1)
}

// Absolute sets v to |u| (the non-negative representative of u's class),
// and returns v.
func (v *Element) Absolute(u *Element) *Element {
	return v.CondNegate(u, u.IsNegative())
}
