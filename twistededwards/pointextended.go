// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package twistededwards

import "github.com/consensys/babyjubjub/field"

// PointExtended is a point in extended twisted Edwards coordinates
// (X : Y : T : Z), after "Twisted Edwards Curves Revisited" (Hisil, Wong,
// Carter, Dawson; https://eprint.iacr.org/2008/522). It represents the
// affine point (X/Z, Y/Z) and satisfies T*Z = X*Y for every valid,
// non-degenerate point.
type PointExtended struct {
	X, Y, T, Z field.Element
}

// Identity returns the neutral element (0 : 1 : 0 : 1).
func (PointExtended) Identity() PointExtended {
	return PointExtended{X: field.Zero(), Y: field.One(), T: field.Zero(), Z: field.One()}
}

// isIdentityTuple reports whether p is the literal identity quadruple,
// short-circuited before the generic formulas for efficiency and clarity.
func (p PointExtended) isIdentityTuple() bool {
	return p.X.IsZero() && p.Y.IsOne() && p.T.IsZero() && p.Z.IsOne()
}

// Add returns p + q with the unified addition of HWCD section 3.1. The
// generic formula is branch-free and valid for all inputs with nonzero Z,
// including p == q.
func (p PointExtended) Add(q PointExtended) PointExtended {
	if p.isIdentityTuple() {
		return q
	}
	params := GetEdwardsCurve()
	x1x2 := p.X.Mul(q.X)
	y1y2 := p.Y.Mul(q.Y)
	dt1t2 := params.D.Mul(p.T).Mul(q.T)
	z1z2 := p.Z.Mul(q.Z)
	e := p.X.Add(p.Y).Mul(q.X.Add(q.Y)).Sub(x1x2).Sub(y1y2)
	f := z1z2.Sub(dt1t2)
	g := z1z2.Add(dt1t2)
	h := y1y2.Sub(params.A.Mul(x1x2))
	return PointExtended{X: e.Mul(f), Y: g.Mul(h), T: e.Mul(h), Z: f.Mul(g)}
}

// Double returns 2p with the dedicated formula dbl-2008-hwcd. It produces
// the same point as Add(p, p) for every valid point.
func (p PointExtended) Double() PointExtended {
	if p.isIdentityTuple() {
		return p.Identity()
	}
	params := GetEdwardsCurve()
	a := p.X.Square()
	b := p.Y.Square()
	zsq := p.Z.Square()
	c := zsq.Add(zsq)
	d := params.A.Mul(a)
	e := p.X.Add(p.Y).Square().Sub(a).Sub(b)
	g := d.Add(b)
	f := g.Sub(c)
	h := d.Sub(b)
	return PointExtended{X: e.Mul(f), Y: g.Mul(h), T: e.Mul(h), Z: f.Mul(g)}
}

// Sub returns p - q.
func (p PointExtended) Sub(q PointExtended) PointExtended {
	return p.Add(q.Neg())
}

// Neg returns -(X : Y : T : Z) = (-X : Y : -T : Z) (HWCD section 3).
func (p PointExtended) Neg() PointExtended {
	return PointExtended{X: p.X.Neg(), Y: p.Y, T: p.T.Neg(), Z: p.Z}
}

// Rescale normalizes p to Z = 1, recomputing T from the rescaled
// coordinates.
func (p PointExtended) Rescale() PointExtended {
	zinv := p.Z.Inverse()
	x := p.X.Mul(zinv)
	y := p.Y.Mul(zinv)
	return PointExtended{X: x, Y: y, T: x.Mul(y), Z: field.One()}
}

// Equal reports whether p and q represent the same affine point,
// independently of their Z scaling.
func (p PointExtended) Equal(q PointExtended) bool {
	return p.X.Mul(q.Z).Equal(q.X.Mul(p.Z)) && p.Y.Mul(q.Z).Equal(q.Y.Mul(p.Z))
}

// IsOnCurve checks the curve equation on the affine image of p.
func (p PointExtended) IsOnCurve() bool {
	a, err := p.Affine()
	if err != nil {
		return false
	}
	return a.IsOnCurve()
}

// ScalarMultiplication returns scalar*p. See ScalarMult for the accepted
// scalar kinds.
func (p PointExtended) ScalarMultiplication(scalar interface{}) (PointExtended, error) {
	return ScalarMult(p, scalar)
}

// IsNegative reports the canonical sign bit of p. See the package-level
// IsNegative.
func (p PointExtended) IsNegative() (bool, error) {
	return IsNegative(p)
}

// Affine projects p to affine coordinates, ignoring T:
//
//	(X : Y : T : Z) -> (X/Z, Y/Z)
//
// A point with Z = 0 yields ErrPointAtInfinity.
func (p PointExtended) Affine() (PointAffine, error) {
	if p.Z.IsZero() {
		return PointAffine{}, ErrPointAtInfinity
	}
	zinv := p.Z.Inverse()
	return PointAffine{X: p.X.Mul(zinv), Y: p.Y.Mul(zinv)}, nil
}

// Proj drops the T coordinate:
//
//	(X : Y : T : Z) -> (X : Y : Z)
func (p PointExtended) Proj() PointProj {
	return PointProj{X: p.X, Y: p.Y, Z: p.Z}
}

// Extended returns p itself.
func (p PointExtended) Extended() PointExtended {
	return p
}

// String returns the point in (X : Y : T : Z) decimal form.
func (p PointExtended) String() string {
	return "(" + p.X.String() + " : " + p.Y.String() + " : " + p.T.String() + " : " + p.Z.String() + ")"
}
