// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package field implements fast, constant-time arithmetic modulo the prime
// 2^255 - 19, the base field underlying the Ed25519 and Ristretto255
// elliptic-curve constructions.
//
// Elements of this field are the atomic operands manipulated by
// higher-level curve code: point coordinates, reduced scalars, and
// intermediate products in point addition, doubling, decoding, and
// hashing-to-curve. This package implements only the field itself; point
// arithmetic, scalar arithmetic, and Ed25519/Ristretto255 group encoding
// are the responsibility of callers.
package field
