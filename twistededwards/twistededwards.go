// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package twistededwards

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/consensys/babyjubjub/field"
	"github.com/consensys/babyjubjub/logger"
)

// CurveParams holds the baby jubjub curve parameters
//
//	a*x^2 + y^2 = 1 + d*x^2*y^2
//
// over the BN254 scalar field, together with the parameters of the
// associated Montgomery form used to validate them.
type CurveParams struct {
	Q        big.Int       // base field modulus, same prime as field.Modulus()
	A, D     field.Element // twisted Edwards coefficients
	Order    big.Int       // order of the full curve group, Cofactor * L
	Cofactor big.Int       // 8
	L        big.Int       // order of the prime subgroup

	// Montgomery form coefficients, "Twisted Edwards Curves" (BBJLP 2008)
	// theorem 3.2: MontA = 2(a+d)/(a-d), MontB = 4/(a-d).
	MontA, MontB big.Int
}

var (
	curveParams CurveParams
	initOnce    sync.Once
)

// GetEdwardsCurve returns the baby jubjub curve parameters. The parameters
// are initialized once and are read-only afterwards; a relationship
// mismatch between the Edwards and Montgomery forms is a fatal
// configuration error.
func GetEdwardsCurve() *CurveParams {
	initOnce.Do(initCurveParams)
	return &curveParams
}

func initCurveParams() {
	curveParams.Q.Set(field.Modulus())
	curveParams.A = field.New(168700)
	curveParams.D = field.New(168696)
	curveParams.Order.SetString("21888242871839275222246405745257275088614511777268538073601725287587578984328", 10)
	curveParams.Cofactor.SetUint64(8)
	curveParams.L.Div(&curveParams.Order, &curveParams.Cofactor)
	curveParams.MontA.SetUint64(168698)
	curveParams.MontB.SetUint64(1)

	if err := curveParams.validate(); err != nil {
		log := logger.Logger()
		log.Error().Err(err).Msg("twisted Edwards curve parameter validation failed")
		panic(err)
	}
}

// validate checks the algebraic relationship between the twisted Edwards
// and Montgomery parameters, per "Montgomery curves and the Montgomery
// ladder" (2017) section 4.3.5.
func (c *CurveParams) validate() error {
	var t big.Int
	if t.Mul(&c.Cofactor, &c.L); t.Cmp(&c.Order) != 0 {
		return fmt.Errorf("twistededwards: group order %s is not cofactor * L", c.Order.String())
	}

	montA := field.New(&c.MontA)
	montB := field.New(&c.MontB)
	two := field.New(2)

	// a = (MontA+2)/MontB, d = (MontA-2)/MontB
	if !c.A.Equal(montA.Add(two).Div(montB)) {
		return fmt.Errorf("twistededwards: coefficient a does not match Montgomery form")
	}
	if !c.D.Equal(montA.Sub(two).Div(montB)) {
		return fmt.Errorf("twistededwards: coefficient d does not match Montgomery form")
	}

	// (MontA+2)/4 must be exact
	t.Add(&c.MontA, big.NewInt(2))
	if t.Bit(0) != 0 || t.Bit(1) != 0 {
		return fmt.Errorf("twistededwards: MontA+2 is not divisible by 4")
	}

	// (MontA+2)(MontA-2) being a square would give two extra points of
	// order 2 with v = 0; (MontA-2)/MontB being a square, two points of
	// order 4 with u = -1. Both must be non-residues.
	if _, err := montA.Add(two).Mul(montA.Sub(two)).Sqrt(); err == nil {
		return fmt.Errorf("twistededwards: (MontA+2)*(MontA-2) is a quadratic residue")
	}
	if _, err := montA.Sub(two).Div(montB).Sqrt(); err == nil {
		return fmt.Errorf("twistededwards: (MontA-2)/MontB is a quadratic residue")
	}

	return nil
}
