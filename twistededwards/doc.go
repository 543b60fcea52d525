// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package twistededwards implements arithmetic on the baby jubjub twisted
// Edwards curve
//
//	168700*x^2 + y^2 = 1 + 168696*x^2*y^2
//
// over the BN254 scalar field, in three interoperable coordinate systems:
// affine (PointAffine), projective (PointProj) and extended (PointExtended,
// "Twisted Edwards Curves Revisited", Hisil-Wong-Carter-Dawson,
// https://iacr.org/archive/asiacrypt2008/53500329/53500329.pdf).
//
// The projective and extended systems trade extra coordinates for fewer
// field inversions: a chain of additions and doublings needs a single
// projection back to affine at the end instead of one inversion per
// operation.
//
// All point types are immutable values; operations return new points and
// the package is safe for concurrent use. Scalar multiplication and field
// inversion are not constant-time, so secret scalars must not be fed to
// this package.
package twistededwards
