// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package twistededwards

import "github.com/consensys/babyjubjub/field"

// PointProj is a point in projective coordinates (X : Y : Z), representing
// the affine point (X/Z, Y/Z) when Z != 0. Several triples represent the
// same affine point; Rescale normalizes Z to 1.
type PointProj struct {
	X, Y, Z field.Element
}

// Identity returns the neutral element (0 : 1 : 1).
func (PointProj) Identity() PointProj {
	return PointProj{X: field.Zero(), Y: field.One(), Z: field.One()}
}

// isIdentityTuple reports whether p is the literal identity triple. The
// addition and doubling formulas below are not valid for this affine-zero
// convention, so the triple is special-cased before the generic formulas
// run; a differently scaled representation of the identity is handled by
// the formulas themselves.
func (p PointProj) isIdentityTuple() bool {
	return p.X.IsZero() && p.Y.IsOne() && p.Z.IsOne()
}

// Add returns p + q with the strongly unified projective formula
// add-2008-bbjlp (Bernstein, Birkner, Joye, Lange, Peters;
// https://eprint.iacr.org/2008/013 section 6).
func (p PointProj) Add(q PointProj) PointProj {
	if p.isIdentityTuple() {
		return q
	}
	params := GetEdwardsCurve()
	a := p.Z.Mul(q.Z)
	b := a.Square()
	c := p.X.Mul(q.X)
	d := p.Y.Mul(q.Y)
	e := params.D.Mul(c.Mul(d))
	f := b.Sub(e)
	g := b.Add(e)
	t := p.X.Add(p.Y).Mul(q.X.Add(q.Y))
	x3 := a.Mul(f.Mul(t.Sub(c).Sub(d)))
	y3 := a.Mul(g.Mul(d.Sub(params.A.Mul(c))))
	z3 := f.Mul(g)
	return PointProj{X: x3, Y: y3, Z: z3}
}

// Double returns 2p with the dedicated doubling formula dbl-2008-bbjlp
// (3M + 4S + 1D + 7add, the 1D being the multiplication by a).
func (p PointProj) Double() PointProj {
	if p.isIdentityTuple() {
		return p.Identity()
	}
	params := GetEdwardsCurve()
	b := p.X.Add(p.Y).Square()
	c := p.X.Square()
	d := p.Y.Square()
	e := params.A.Mul(c)
	f := e.Add(d)
	h := p.Z.Square()
	j := f.Sub(h.Add(h))
	x3 := b.Sub(c).Sub(d).Mul(j)
	y3 := f.Mul(e.Sub(d))
	z3 := f.Mul(j)
	return PointProj{X: x3, Y: y3, Z: z3}
}

// Sub returns p - q.
func (p PointProj) Sub(q PointProj) PointProj {
	return p.Add(q.Neg())
}

// Neg returns -(X : Y : Z) = (-X : Y : Z).
func (p PointProj) Neg() PointProj {
	return PointProj{X: p.X.Neg(), Y: p.Y, Z: p.Z}
}

// Rescale divides both coordinates by Z. The result represents the same
// affine point with Z = 1, the canonical representation used for
// comparisons across coordinate systems.
func (p PointProj) Rescale() PointProj {
	zinv := p.Z.Inverse()
	return PointProj{X: p.X.Mul(zinv), Y: p.Y.Mul(zinv), Z: field.One()}
}

// Equal reports whether p and q represent the same affine point,
// independently of their Z scaling.
func (p PointProj) Equal(q PointProj) bool {
	return p.X.Mul(q.Z).Equal(q.X.Mul(p.Z)) && p.Y.Mul(q.Z).Equal(q.Y.Mul(p.Z))
}

// IsOnCurve checks the curve equation on the affine image of p.
func (p PointProj) IsOnCurve() bool {
	a, err := p.Affine()
	if err != nil {
		return false
	}
	return a.IsOnCurve()
}

// ScalarMultiplication returns scalar*p. See ScalarMult for the accepted
// scalar kinds.
func (p PointProj) ScalarMultiplication(scalar interface{}) (PointProj, error) {
	return ScalarMult(p, scalar)
}

// IsNegative reports the canonical sign bit of p. See the package-level
// IsNegative.
func (p PointProj) IsNegative() (bool, error) {
	return IsNegative(p)
}

// Affine projects p to affine coordinates. A true point at infinity
// (Z = 0) has no affine representative and yields ErrPointAtInfinity;
// note that the identity element has Z = 1 and converts fine.
func (p PointProj) Affine() (PointAffine, error) {
	if p.Z.IsZero() {
		return PointAffine{}, ErrPointAtInfinity
	}
	zinv := p.Z.Inverse()
	return PointAffine{X: p.X.Mul(zinv), Y: p.Y.Mul(zinv)}, nil
}

// Proj returns p itself.
func (p PointProj) Proj() PointProj {
	return p
}

// Extended lifts p to extended coordinates, recomputing T = X*Y.
//
//	(X : Y : Z) -> (X : Y : X*Y : Z)
//
// This is exact only when no rescale mismatch exists between the
// coordinates, i.e. when X, Y and Z come from the same representation.
func (p PointProj) Extended() PointExtended {
	return PointExtended{X: p.X, Y: p.Y, T: p.X.Mul(p.Y), Z: p.Z}
}

// String returns the point in (X : Y : Z) decimal form.
func (p PointProj) String() string {
	return "(" + p.X.String() + " : " + p.Y.String() + " : " + p.Z.String() + ")"
}
