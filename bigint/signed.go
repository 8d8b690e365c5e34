// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

// Add returns x+y.
func Add(x, y *Int) *Int {
	if x.Sign == 0 {
		return y.Copy()
	}
	if y.Sign == 0 {
		return x.Copy()
	}
	if x.Sign == y.Sign {
		r := addAbs(x, y)
		r.Sign = x.Sign
		return r
	}
	switch compareAbs(x, y) {
	case 0:
		return Zero()
	case 1:
		r := subAbs(x, y)
		r.Sign = x.Sign
		return r
	default:
		r := subAbs(y, x)
		r.Sign = y.Sign
		return r
	}
}

// Sub returns x-y.
func Sub(x, y *Int) *Int {
	return Add(x, Neg(y))
}

// Mul returns x*y.
func Mul(x, y *Int) *Int {
	if x.Sign == 0 || y.Sign == 0 {
		return Zero()
	}
	r := mul(x, y)
	r.Sign = x.Sign * y.Sign
	return r
}

// Div returns the truncated (T-division) quotient x/y.
// Returns ErrDivisionByZero when y is zero.
func Div(x, y *Int) (*Int, error) {
	if y.Sign == 0 {
		return nil, ErrDivisionByZero
	}
	q, _ := divModAbs(x, y)
	if q.Sign != 0 {
		q.Sign = x.Sign * y.Sign
	}
	return q, nil
}

// Mod returns the T-division remainder of x/y: it carries the sign of
// the dividend x and satisfies |Mod(x,y)| < |y|.
// Returns ErrDivisionByZero when y is zero.
func Mod(x, y *Int) (*Int, error) {
	if y.Sign == 0 {
		return nil, ErrDivisionByZero
	}
	_, r := divModAbs(x, y)
	if r.Sign != 0 {
		r.Sign = x.Sign
	}
	return r, nil
}

// Neg returns -x; zero stays zero.
func Neg(x *Int) *Int {
	r := x.Copy()
	if r.Sign != 0 {
		r.Sign = -r.Sign
	}
	return r
}

var one = &Int{Sign: 1, Limbs: []uint32{1}}
var two = &Int{Sign: 1, Limbs: []uint32{2}}

// Pow returns base**exp, exponentiation by squaring. exp < 0 truncates
// to 0; exp == 0 yields 1 even when base == 0 (spec.md §4.3).
func Pow(base, exp *Int) *Int {
	if exp.Sign == 0 {
		return one.Copy()
	}
	if base.Sign == 0 {
		return Zero()
	}
	if exp.Sign < 0 {
		return Zero()
	}
	if compareAbs(base, one) == 0 {
		if base.Sign == 1 {
			return one.Copy()
		}
		m, _ := Mod(exp, two)
		if m.Sign == 0 {
			return one.Copy()
		}
		return Neg(one)
	}

	acc := one.Copy()
	cur := base.Copy()
	n := exp.Copy()
	for n.Sign > 0 {
		m, _ := Mod(n, two)
		if m.Sign != 0 {
			acc = Mul(acc, cur)
		}
		n, _ = Div(n, two)
		if n.Sign > 0 {
			cur = Mul(cur, cur)
		}
	}
	return acc
}

// Fact returns n! for n >= 0, built by repeated single-limb multiplies.
func Fact(n uint32) *Int {
	if n == 0 || n == 1 {
		return one.Copy()
	}
	res := one.Copy()
	for i := uint32(2); i <= n; i++ {
		res = Mul(res, &Int{Sign: 1, Limbs: []uint32{i}})
	}
	return res
}
