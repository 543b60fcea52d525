// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package twistededwards

import (
	"math/big"

	"github.com/consensys/babyjubjub/field"
	"github.com/consensys/babyjubjub/internal/utils"
)

// GroupElement is the capability shared by the three point
// representations. The generic operations below (ScalarMult, IsNegative,
// Sign) are built only on top of this interface, so all representations
// share one scalar multiplication algorithm and one sign convention.
type GroupElement[P any] interface {
	Add(P) P
	Double() P
	Neg() P
	Identity() P
	Equal(P) bool
	IsOnCurve() bool
	Affine() (PointAffine, error)
}

// ScalarMult returns scalar*p by double-and-add, processing scalar bits
// least-significant first.
//
// The scalar is either a plain non-negative integer kind (anything
// utils.FromInterface accepts) or a field.Element whose modulus is one of
// the recognized scalar domains: the base field prime, the curve group
// order, or the prime subgroup order. Any other element modulus yields
// ErrInvalidScalarDomain.
//
// This is not constant-time; do not use it with secret scalars.
func ScalarMult[P GroupElement[P]](p P, scalar interface{}) (P, error) {
	k, err := scalarValue(scalar)
	if err != nil {
		var zero P
		return zero, err
	}
	acc := p.Identity()
	q := p
	for s := new(big.Int).Set(k); s.Sign() != 0; s.Rsh(s, 1) {
		if s.Bit(0) == 1 {
			acc = acc.Add(q)
		}
		q = q.Double()
	}
	return acc, nil
}

// scalarValue extracts the integer value of a scalar, enforcing the
// recognized moduli for field elements.
func scalarValue(scalar interface{}) (*big.Int, error) {
	if e, ok := scalar.(field.Element); ok {
		params := GetEdwardsCurve()
		m := e.Modulus()
		if m.Cmp(&params.Q) != 0 && m.Cmp(&params.Order) != 0 && m.Cmp(&params.L) != 0 {
			return nil, ErrInvalidScalarDomain
		}
		return e.BigInt(), nil
	}
	k := utils.FromInterface(scalar)
	if k.Sign() < 0 {
		return nil, ErrInvalidScalarDomain
	}
	return &k, nil
}

// IsNegative reports the canonical sign bit of p: true iff the x
// coordinate of p is the negation of the root that FromY recovers for
// p's y coordinate. External consumers (e.g. signature encodings) rely on
// this convention bit-for-bit.
func IsNegative[P GroupElement[P]](p P) (bool, error) {
	a, err := p.Affine()
	if err != nil {
		return false, err
	}
	q, err := FromY(a.Y)
	if err != nil {
		return false, err
	}
	return a.X.Equal(q.X.Neg()), nil
}

// Sign returns 1 when IsNegative reports true, 0 otherwise.
func Sign[P GroupElement[P]](p P) (int, error) {
	neg, err := IsNegative(p)
	if err != nil {
		return 0, err
	}
	if neg {
		return 1, nil
	}
	return 0, nil
}
