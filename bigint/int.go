// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bigint implements signed arbitrary-precision integers over a
// base-2³² limb representation. The representation is sign/magnitude;
// two's-complement appears only at the text I/O boundary (hex and
// binary literals), never in memory. See text.go for that split.
package bigint

// Int is an arbitrary-precision signed integer. The zero value is not
// a valid Int; use Zero or one of the FromXxx constructors.
//
// Invariant (normalized form): either Sign == 0 and Limbs == [0], or
// Sign is ±1 and the top limb is non-zero. Every exported operation
// returns a normalized, freshly allocated Int; operands are never
// mutated except by the explicitly in-place shiftLeftOne helper.
type Int struct {
	Sign  int // -1, 0, or +1
	Limbs []uint32 // least-significant limb first
}

// Zero returns the canonical zero value.
func Zero() *Int {
	return &Int{Sign: 0, Limbs: []uint32{0}}
}

// Copy returns a fresh, independent copy of x.
func (x *Int) Copy() *Int {
	limbs := make([]uint32, len(x.Limbs))
	copy(limbs, x.Limbs)
	return &Int{Sign: x.Sign, Limbs: limbs}
}

// IsZero reports whether x is the canonical zero.
func (x *Int) IsZero() bool {
	return x.Sign == 0
}

// normalize restores the invariant: trims trailing zero limbs (keeping
// at least one) and forces Sign to 0 if the sole remaining limb is 0.
// Idempotent: normalize(normalize(x)) == normalize(x).
func (x *Int) normalize() *Int {
	for len(x.Limbs) > 1 && x.Limbs[len(x.Limbs)-1] == 0 {
		x.Limbs = x.Limbs[:len(x.Limbs)-1]
	}
	if len(x.Limbs) == 1 && x.Limbs[0] == 0 {
		x.Sign = 0
	}
	return x
}

// compareAbs compares |a| and |b|, returning -1, 0, or +1.
func compareAbs(a, b *Int) int {
	if len(a.Limbs) != len(b.Limbs) {
		if len(a.Limbs) > len(b.Limbs) {
			return 1
		}
		return -1
	}
	for i := len(a.Limbs) - 1; i >= 0; i-- {
		if a.Limbs[i] != b.Limbs[i] {
			if a.Limbs[i] > b.Limbs[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// CompareAbs compares |x| and |y|, returning -1, 0, or +1.
func (x *Int) CompareAbs(y *Int) int {
	return compareAbs(x, y)
}

// bit returns bit k of |n| (0 or 1), 0 beyond the limb array.
func bit(n *Int, k int) int {
	limbIdx := k / 32
	bitIdx := uint(k % 32)
	if limbIdx < 0 || limbIdx >= len(n.Limbs) {
		return 0
	}
	return int((n.Limbs[limbIdx] >> bitIdx) & 1)
}

// bitLength returns the number of significant bits in |n|; 0 for zero.
func bitLength(n *Int) int {
	if n.Sign == 0 {
		return 0
	}
	bits := (len(n.Limbs) - 1) * 32
	last := n.Limbs[len(n.Limbs)-1]
	for last > 0 {
		last >>= 1
		bits++
	}
	return bits
}

// BitLength returns the number of significant bits in |x|; 0 for zero.
func (x *Int) BitLength() int {
	return bitLength(x)
}

// shiftLeftOne multiplies |n| by 2 in place, growing the limb slice by
// one word if the top bit of the top limb was set.
func shiftLeftOne(n *Int) {
	if n.Sign == 0 {
		return
	}
	var carry uint32
	for i := range n.Limbs {
		next := n.Limbs[i] >> 31
		n.Limbs[i] = (n.Limbs[i] << 1) | carry
		carry = next
	}
	if carry != 0 {
		n.Limbs = append(n.Limbs, carry)
	}
}
