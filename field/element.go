// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package field

import (
	"crypto/rand"
	"math/big"

	"github.com/consensys/babyjubjub/internal/utils"
)

// Element is an integer modulo a prime, with field arithmetic.
//
// The zero value of Element is not usable; elements are built with New,
// NewFromModulus, Zero, One or Random. All operations return a new Element
// and leave their operands untouched.
type Element struct {
	v big.Int // 0 <= v < m
	m big.Int
}

// New returns v reduced modulo the default field modulus.
//
// v may be any integer kind accepted by utils.FromInterface (uintXX, intXX,
// string, []byte, big.Int, or a type exposing BigInt() *big.Int); anything
// else panics.
func New(v interface{}) Element {
	b := utils.FromInterface(v)
	return reduce(&b, &qModulus)
}

// NewFromModulus returns v reduced modulo the given modulus.
func NewFromModulus(modulus *big.Int, v interface{}) Element {
	if modulus.Sign() <= 0 {
		panic("field: modulus must be a positive prime")
	}
	b := utils.FromInterface(v)
	return reduce(&b, modulus)
}

// Zero returns 0 in the default field.
func Zero() Element { return New(0) }

// One returns 1 in the default field.
func One() Element { return New(1) }

// ZeroFromModulus returns 0 modulo the given modulus.
func ZeroFromModulus(modulus *big.Int) Element { return NewFromModulus(modulus, 0) }

// OneFromModulus returns 1 modulo the given modulus.
func OneFromModulus(modulus *big.Int) Element { return NewFromModulus(modulus, 1) }

// Random returns a uniformly random element of the default field in
// [1, q-1]. It never returns 0.
func Random() (Element, error) {
	return RandomFromModulus(&qModulus)
}

// RandomFromModulus returns a uniformly random element in [1, modulus-1].
func RandomFromModulus(modulus *big.Int) (Element, error) {
	max := new(big.Int).Sub(modulus, big.NewInt(1))
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return Element{}, err
	}
	n.Add(n, big.NewInt(1))
	return reduce(n, modulus), nil
}

func reduce(v, m *big.Int) Element {
	var e Element
	e.m.Set(m)
	e.v.Mod(v, &e.m)
	return e
}

// checkModulus panics with ErrModulusMismatch unless both elements belong
// to the same field.
func (z Element) checkModulus(x Element) {
	if z.m.Cmp(&x.m) != 0 {
		panic(ErrModulusMismatch)
	}
}

// Add returns z + x.
func (z Element) Add(x Element) Element {
	z.checkModulus(x)
	r := new(big.Int).Add(&z.v, &x.v)
	return reduce(r, &z.m)
}

// Sub returns z - x.
func (z Element) Sub(x Element) Element {
	z.checkModulus(x)
	r := new(big.Int).Sub(&z.v, &x.v)
	return reduce(r, &z.m)
}

// Mul returns z * x.
func (z Element) Mul(x Element) Element {
	z.checkModulus(x)
	r := new(big.Int).Mul(&z.v, &x.v)
	return reduce(r, &z.m)
}

// Square returns z * z.
func (z Element) Square() Element {
	return z.Mul(z)
}

// Neg returns -z.
func (z Element) Neg() Element {
	r := new(big.Int).Neg(&z.v)
	return reduce(r, &z.m)
}

// Div returns z / x, that is z * x⁻¹.
//
// Dividing by the zero element does not fail: Inverse maps 0 to 0, so the
// result is the zero element. See Inverse.
func (z Element) Div(x Element) Element {
	z.checkModulus(x)
	return z.Mul(x.Inverse())
}

// Inverse returns the modular multiplicative inverse of z, computed with
// the extended Euclidean algorithm.
//
// Inverse of the zero element is 0, not an error. Callers that need to
// treat 0 specially must check IsZero first.
func (z Element) Inverse() Element {
	if z.v.Sign() == 0 {
		return reduce(big.NewInt(0), &z.m)
	}
	lm, hm := big.NewInt(1), big.NewInt(0)
	low := new(big.Int).Set(&z.v)
	high := new(big.Int).Set(&z.m)
	one := big.NewInt(1)
	for low.Cmp(one) > 0 {
		r := new(big.Int).Div(high, low)
		nm := new(big.Int).Sub(hm, new(big.Int).Mul(lm, r))
		nw := new(big.Int).Sub(high, new(big.Int).Mul(low, r))
		lm, low, hm, high = nm, nw, lm, low
	}
	return reduce(lm, &z.m)
}

// Exp returns z^e for a non-negative integer exponent, using
// most-significant-bit-first square-and-multiply. z.Exp(0) is 1.
//
// e is coerced like the New argument; negative exponents panic.
func (z Element) Exp(e interface{}) Element {
	k := utils.FromInterface(e)
	if k.Sign() < 0 {
		panic("field: negative exponent")
	}
	res := OneFromModulus(&z.m)
	for i := k.BitLen() - 1; i >= 0; i-- {
		res = res.Square()
		if k.Bit(i) == 1 {
			res = res.Mul(z)
		}
	}
	return res
}

// Equal reports whether z and x have the same value and the same modulus.
func (z Element) Equal(x Element) bool {
	return z.m.Cmp(&x.m) == 0 && z.v.Cmp(&x.v) == 0
}

// Cmp compares the reduced values of z and x, returning -1, 0 or 1. Both
// elements must belong to the same field.
func (z Element) Cmp(x Element) int {
	z.checkModulus(x)
	return z.v.Cmp(&x.v)
}

// IsZero reports whether z is the zero element.
func (z Element) IsZero() bool { return z.v.Sign() == 0 }

// IsOne reports whether z is the one element.
func (z Element) IsOne() bool { return z.v.Cmp(big.NewInt(1)) == 0 }

// BigInt returns a copy of the reduced value of z.
func (z Element) BigInt() *big.Int {
	return new(big.Int).Set(&z.v)
}

// Modulus returns a copy of the modulus of z.
func (z Element) Modulus() *big.Int {
	return new(big.Int).Set(&z.m)
}

// String returns the decimal representation of the reduced value.
func (z Element) String() string {
	return z.v.String()
}
