// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package field implements arbitrary-precision arithmetic modulo a large prime.
//
// The default modulus is the BN254 scalar field prime
//
//	q = 21888242871839275222246405745257275088548364400416034343698204186575808495617
//
// which is the base field of the baby jubjub twisted Edwards curve. An
// Element carries its modulus with it; elements from different fields never
// mix silently, combining them panics with ErrModulusMismatch.
//
// Elements are immutable values: no operation modifies its receiver or its
// operands, so elements are safe to share between goroutines without
// synchronization.
package field

import (
	"errors"
	"math/big"
)

// ModulusStr is the decimal representation of the default field modulus.
const ModulusStr = "21888242871839275222246405745257275088548364400416034343698204186575808495617"

var qModulus big.Int

func init() {
	if _, ok := qModulus.SetString(ModulusStr, 10); !ok {
		panic("field: invalid modulus literal")
	}
}

// Modulus returns a copy of the default field modulus q.
func Modulus() *big.Int {
	return new(big.Int).Set(&qModulus)
}

var (
	// ErrModulusMismatch is the panic value raised when two elements of
	// different fields are combined.
	ErrModulusMismatch = errors.New("field: operands have different moduli")

	// ErrNoSquareRoot is returned by Sqrt when the element is a
	// quadratic non-residue.
	ErrNoSquareRoot = errors.New("field: element has no square root")
)
