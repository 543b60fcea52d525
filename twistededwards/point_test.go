// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package twistededwards

import (
	"fmt"
	"testing"

	"github.com/consensys/babyjubjub/field"
	"github.com/stretchr/testify/require"
)

// pointA and pointADouble are a fixed point on the curve and its double,
// used as a known-answer vector for all three coordinate systems.
func pointA() PointAffine {
	return NewPointAffine(
		field.New("0x274dbce8d15179969bc0d49fa725bddf9de555e0ba6a693c6adb52fc9ee7a82c"),
		field.New("0x5ce98c61b05f47fe2eae9a542bd99f6b2e78246231640b54595febfd51eb853"),
	)
}

func pointADouble() PointAffine {
	return NewPointAffine(
		field.New("6890855772600357754907169075114257697580319025794532037257385534741338397365"),
		field.New("4338620300185947561074059802482547481416142213883829469920100239455078257889"),
	)
}

// randomPoint returns a deterministic pseudo-random point on the
// prime-order subgroup.
func randomPoint(t *testing.T, i int) PointAffine {
	t.Helper()
	p, err := FromHash([]byte(fmt.Sprintf("point-%d", i)))
	require.NoError(t, err)
	return p
}

func TestPointAValid(t *testing.T) {
	assert := require.New(t)
	assert.True(pointA().IsOnCurve())
	assert.True(pointADouble().IsOnCurve())
}

func TestIdentityValid(t *testing.T) {
	assert := require.New(t)
	assert.True(PointAffine{}.Identity().IsOnCurve())
	assert.True(PointProj{}.Identity().IsOnCurve())
	assert.True(PointExtended{}.Identity().IsOnCurve())
}

func TestDoubleKnownAnswer(t *testing.T) {
	assert := require.New(t)
	a := pointA()
	expected := pointADouble()

	// affine, via unified addition
	assert.True(a.Add(a).Equal(expected))
	assert.True(a.Double().Equal(expected))

	// extended, dedicated doubling and unified addition
	ae := a.Extended()
	got, err := ae.Double().Affine()
	assert.NoError(err)
	assert.True(got.Equal(expected))
	got, err = ae.Add(ae).Affine()
	assert.NoError(err)
	assert.True(got.Equal(expected))

	// projective, dedicated doubling and unified addition
	ap := a.Proj()
	got, err = ap.Double().Affine()
	assert.NoError(err)
	assert.True(got.Equal(expected))
	got, err = ap.Add(ap).Affine()
	assert.NoError(err)
	assert.True(got.Equal(expected))
}

func TestScalarMultKnownAnswer(t *testing.T) {
	assert := require.New(t)
	scalar := field.New("6890855772600357754907169075114257697580319025794532037257385534741338397365").BigInt()
	expected := NewPointAffine(
		field.New("6317123931401941284657971611369077243307682877199795030160588338302336995127"),
		field.New("17705894757276775630165779951991641206660307982595100429224895554788146104270"),
	)

	pe, err := pointA().Extended().ScalarMultiplication(scalar)
	assert.NoError(err)
	got, err := pe.Affine()
	assert.NoError(err)
	assert.True(got.Equal(expected))

	pp, err := pointA().Proj().ScalarMultiplication(scalar)
	assert.NoError(err)
	got, err = pp.Affine()
	assert.NoError(err)
	assert.True(got.Equal(expected))

	pa, err := pointA().ScalarMultiplication(scalar)
	assert.NoError(err)
	assert.True(pa.Equal(expected))

	// mult by 2 equals the known double
	p2, err := pointA().Extended().ScalarMultiplication(2)
	assert.NoError(err)
	got, err = p2.Affine()
	assert.NoError(err)
	assert.True(got.Equal(pointADouble()))
}

func TestIdentityLaws(t *testing.T) {
	assert := require.New(t)
	a := pointA()

	// affine
	id := a.Identity()
	assert.True(a.Add(id).Equal(a))
	assert.True(id.Add(a).Equal(a))
	assert.True(a.Add(a.Neg()).Equal(id))
	assert.True(id.Neg().Equal(id))
	assert.True(id.Add(id).Equal(id))
	assert.True(id.Double().Equal(id))

	// projective
	ap := a.Proj()
	idp := ap.Identity()
	assert.True(ap.Add(idp).Equal(ap))
	assert.True(idp.Add(ap).Equal(ap))
	assert.True(ap.Add(ap.Neg()).Equal(idp))
	assert.True(idp.Neg().Equal(idp))
	assert.True(idp.Add(idp).Equal(idp))
	assert.True(idp.Double().Equal(idp))

	// extended
	ae := a.Extended()
	ide := ae.Identity()
	assert.True(ae.Add(ide).Equal(ae))
	assert.True(ide.Add(ae).Equal(ae))
	assert.True(ae.Add(ae.Neg()).Equal(ide))
	assert.True(ide.Neg().Equal(ide))
	assert.True(ide.Add(ide).Equal(ide))
	assert.True(ide.Double().Equal(ide))
}

func TestZeroTupleGuard(t *testing.T) {
	assert := require.New(t)

	// the degenerate all-zero tuple, which no valid constructor produces,
	// acts as a left identity in affine addition
	zero := PointAffine{X: field.Zero(), Y: field.Zero()}
	a := pointA()
	assert.True(zero.Add(a).Equal(a))
}

func TestNeg(t *testing.T) {
	assert := require.New(t)
	a := pointA()

	assert.True(a.Neg().IsOnCurve())
	assert.True(a.Neg().Neg().Equal(a))
	assert.True(a.Sub(a).Equal(a.Identity()))

	// p - p - p == -p
	assert.True(a.Sub(a).Sub(a).Equal(a.Neg()))
}

func TestConversionsRoundTrip(t *testing.T) {
	assert := require.New(t)

	for i := 0; i < 10; i++ {
		p := randomPoint(t, i)
		assert.True(p.IsOnCurve())

		// through extended
		viaExt, err := p.Extended().Affine()
		assert.NoError(err)
		assert.True(viaExt.Equal(p))

		// through projective
		viaProj, err := p.Proj().Affine()
		assert.NoError(err)
		assert.True(viaProj.Equal(p))

		// extended <-> projective
		viaBoth, err := p.Extended().Proj().Affine()
		assert.NoError(err)
		assert.True(viaBoth.Equal(p))
		viaBoth, err = p.Proj().Extended().Affine()
		assert.NoError(err)
		assert.True(viaBoth.Equal(p))

		// conversions preserve validity in every representation
		assert.True(p.Proj().IsOnCurve())
		assert.True(p.Extended().IsOnCurve())
	}
}

func TestRescale(t *testing.T) {
	assert := require.New(t)
	a := pointA()

	// a non-trivially scaled representation of the same point
	pp := a.Proj().Double().Add(a.Proj().Neg().Double()).Add(a.Proj())
	assert.True(pp.Equal(a.Proj()))

	r := pp.Rescale()
	assert.True(r.Z.IsOne())
	assert.True(r.Equal(pp))
	assert.True(r.Rescale().Equal(r))
	assert.True(r.X.Equal(a.X) && r.Y.Equal(a.Y))

	pe := a.Extended().Double().Add(a.Extended().Neg().Double()).Add(a.Extended())
	re := pe.Rescale()
	assert.True(re.Z.IsOne())
	assert.True(re.T.Equal(re.X.Mul(re.Y)))
	assert.True(re.Equal(pe))
	assert.True(re.Rescale().Equal(re))
}

func TestFromY(t *testing.T) {
	assert := require.New(t)

	for i := 0; i < 10; i++ {
		p := randomPoint(t, i)
		q, err := FromY(p.Y)
		assert.NoError(err)
		assert.True(q.IsOnCurve())
		assert.True(q.Y.Equal(p.Y))
		// one x root per y; the collaborator picks one of ±x
		assert.True(q.X.Equal(p.X) || q.X.Equal(p.X.Neg()))
	}

	// y = 2 has no matching x
	_, err := FromY(field.New(2))
	assert.ErrorIs(err, field.ErrNoSquareRoot)
}

func TestFromX(t *testing.T) {
	assert := require.New(t)

	for i := 0; i < 10; i++ {
		p := randomPoint(t, i)
		q, err := FromX(p.X)
		assert.NoError(err)
		assert.True(q.IsOnCurve())
		assert.True(q.X.Equal(p.X))
		// two y values per x; one of them is p's
		assert.True(q.Y.Equal(p.Y) || q.Y.Equal(p.Y.Neg()))
	}
}

func TestProjAffineAtInfinity(t *testing.T) {
	assert := require.New(t)

	inf := PointProj{X: field.Zero(), Y: field.One(), Z: field.Zero()}
	_, err := inf.Affine()
	assert.ErrorIs(err, ErrPointAtInfinity)

	infE := PointExtended{X: field.Zero(), Y: field.One(), T: field.Zero(), Z: field.Zero()}
	_, err = infE.Affine()
	assert.ErrorIs(err, ErrPointAtInfinity)
}

func TestEqualAcrossScalings(t *testing.T) {
	assert := require.New(t)
	a := pointA()

	// 3p computed projectively carries a non-trivial Z but compares equal
	// to the affine result lifted with Z = 1
	p1 := a.Proj().Double().Add(a.Proj())
	p2 := a.Double().Add(a).Proj()
	assert.False(p1.Z.IsOne())
	assert.True(p1.Equal(p2))

	e1 := a.Extended().Double().Add(a.Extended())
	e2 := a.Double().Add(a).Extended()
	assert.False(e1.Z.IsOne())
	assert.True(e1.Equal(e2))
}

func TestImmutabilityOfPoints(t *testing.T) {
	assert := require.New(t)
	a := pointA()
	b := pointADouble()

	_ = a.Add(b)
	_ = a.Neg()
	_ = a.Double()
	ap := a.Proj()
	_ = ap.Double()
	_ = ap.Rescale()

	assert.True(a.Equal(pointA()))
	assert.True(b.Equal(pointADouble()))
	assert.True(ap.Equal(pointA().Proj()))
}
