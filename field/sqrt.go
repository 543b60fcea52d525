// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package field

import "math/big"

// SquareRootFunc computes a square root of x modulo the prime p, or returns
// nil when x is a quadratic non-residue. An implementation must be
// deterministic and always pick the same one of the two roots; which of the
// two is unspecified.
type SquareRootFunc func(x, p *big.Int) *big.Int

// modularSquareRoot is the square root collaborator used by Element.Sqrt.
// The default delegates to (*big.Int).ModSqrt.
var modularSquareRoot SquareRootFunc = func(x, p *big.Int) *big.Int {
	return new(big.Int).ModSqrt(x, p)
}

// SetSquareRootFunc replaces the modular square root collaborator used by
// Element.Sqrt, for callers that need a specific root convention. It must
// be called before any arithmetic, not concurrently with it.
func SetSquareRootFunc(f SquareRootFunc) {
	modularSquareRoot = f
}

// Sqrt returns a square root of z, or ErrNoSquareRoot when z is a
// non-residue. It does not itself determine residuosity; that is left to
// the collaborator function.
func (z Element) Sqrt() (Element, error) {
	r := modularSquareRoot(&z.v, &z.m)
	if r == nil {
		return Element{}, ErrNoSquareRoot
	}
	return reduce(r, &z.m), nil
}
