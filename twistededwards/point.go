// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package twistededwards

import (
	"errors"

	"github.com/consensys/babyjubjub/field"
)

// PointAffine is a point on the curve in affine coordinates. It is an
// immutable value: operations return new points.
type PointAffine struct {
	X, Y field.Element
}

// NewPointAffine returns the affine point (x, y). The coordinates are not
// checked; use IsOnCurve.
func NewPointAffine(x, y field.Element) PointAffine {
	return PointAffine{X: x, Y: y}
}

// Identity returns the neutral element (0, 1).
func (PointAffine) Identity() PointAffine {
	return PointAffine{X: field.Zero(), Y: field.One()}
}

// FromY recovers the affine point with the given y coordinate, solving
//
//	x^2 = (y^2 - 1) / (d*y^2 - a)
//
// It returns field.ErrNoSquareRoot when no such point exists. The root
// returned is whichever one the square root collaborator picks; there is
// no sign normalization.
func FromY(y field.Element) (PointAffine, error) {
	params := GetEdwardsCurve()
	ysq := y.Square()
	xx := ysq.Sub(field.One()).Div(params.D.Mul(ysq).Sub(params.A))
	x, err := xx.Sqrt()
	if err != nil {
		return PointAffine{}, err
	}
	return PointAffine{X: x, Y: y}, nil
}

// FromX recovers an affine point with the given x coordinate, solving
//
//	y^2 = (a*x^2 - 1) / (d*x^2 - 1)
//
// For every x there are two points, (x, y) and (x, -y); only one of them
// is returned.
func FromX(x field.Element) (PointAffine, error) {
	params := GetEdwardsCurve()
	xsq := x.Square()
	ax2 := params.A.Mul(xsq)
	dxsqm1 := params.D.Mul(xsq).Sub(field.One()).Inverse()
	ysq := dxsqm1.Mul(ax2.Sub(field.One()))
	y, err := ysq.Sqrt()
	if err != nil {
		return PointAffine{}, err
	}
	return PointAffine{X: x, Y: y}, nil
}

// IsOnCurve checks that the curve equation a*x^2 + y^2 = 1 + d*x^2*y^2
// holds exactly.
func (p PointAffine) IsOnCurve() bool {
	params := GetEdwardsCurve()
	xsq := p.X.Square()
	ysq := p.Y.Square()
	lhs := params.A.Mul(xsq).Add(ysq)
	rhs := field.One().Add(params.D.Mul(xsq).Mul(ysq))
	return lhs.Equal(rhs)
}

// Add returns p + q using the unified affine addition law
//
//	u3 = (u1*v2 + v1*u2) / (1 + d*u1*u2*v1*v2)
//	v3 = (v1*v2 - a*u1*u2) / (1 - d*u1*u2*v1*v2)
//
// The degenerate all-zero tuple (0, 0) acts as an identity here; valid
// constructors never produce it, the guard is kept for compatibility with
// other implementations of this curve.
func (p PointAffine) Add(q PointAffine) PointAffine {
	if p.X.IsZero() && p.Y.IsZero() {
		return q
	}
	params := GetEdwardsCurve()
	u1, v1 := p.X, p.Y
	u2, v2 := q.X, q.Y
	duv := params.D.Mul(u1).Mul(u2).Mul(v1).Mul(v2)
	one := field.One()
	u3 := u1.Mul(v2).Add(v1.Mul(u2)).Div(one.Add(duv))
	v3 := v1.Mul(v2).Sub(params.A.Mul(u1).Mul(u2)).Div(one.Sub(duv))
	return PointAffine{X: u3, Y: v3}
}

// Double returns 2p. Affine coordinates have no dedicated doubling
// formula; the unified addition law covers it.
func (p PointAffine) Double() PointAffine {
	return p.Add(p)
}

// Sub returns p - q.
func (p PointAffine) Sub(q PointAffine) PointAffine {
	return p.Add(q.Neg())
}

// Neg returns -p = (-x, y).
func (p PointAffine) Neg() PointAffine {
	return PointAffine{X: p.X.Neg(), Y: p.Y}
}

// Equal reports whether p and q are the same point.
func (p PointAffine) Equal(q PointAffine) bool {
	return p.X.Equal(q.X) && p.Y.Equal(q.Y)
}

// ScalarMultiplication returns scalar*p. See ScalarMult for the accepted
// scalar kinds.
func (p PointAffine) ScalarMultiplication(scalar interface{}) (PointAffine, error) {
	return ScalarMult(p, scalar)
}

// IsNegative reports the canonical sign bit of p. See the package-level
// IsNegative.
func (p PointAffine) IsNegative() (bool, error) {
	return IsNegative(p)
}

// Affine returns p itself.
func (p PointAffine) Affine() (PointAffine, error) {
	return p, nil
}

// Proj lifts p to projective coordinates with Z = 1.
func (p PointAffine) Proj() PointProj {
	return PointProj{X: p.X, Y: p.Y, Z: field.One()}
}

// Extended lifts p to extended coordinates with T = X*Y and Z = 1.
func (p PointAffine) Extended() PointExtended {
	return PointExtended{X: p.X, Y: p.Y, T: p.X.Mul(p.Y), Z: field.One()}
}

// String returns the point in (x, y) decimal form.
func (p PointAffine) String() string {
	return "(" + p.X.String() + ", " + p.Y.String() + ")"
}

// errIsNoSquareRoot reports whether err is the no-square-root condition,
// the only recoverable error in point recovery.
func errIsNoSquareRoot(err error) bool {
	return errors.Is(err, field.ErrNoSquareRoot)
}
