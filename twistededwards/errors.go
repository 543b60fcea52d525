// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package twistededwards

import "errors"

var (
	// ErrInvalidScalarDomain is returned by scalar multiplication when the
	// scalar is a field element from an unrecognized field, or a negative
	// plain integer. Recognized moduli are the base field prime, the curve
	// group order and the prime subgroup order.
	ErrInvalidScalarDomain = errors.New("twistededwards: scalar is negative or has an invalid modulus")

	// ErrSubgroupCheck is returned by hash-to-curve when the candidate
	// point fails the prime subgroup check. It indicates corrupted curve
	// constants and is never worth retrying.
	ErrSubgroupCheck = errors.New("twistededwards: point is not on the prime-order subgroup")

	// ErrPointAtInfinity is returned when converting a point with Z = 0 to
	// affine coordinates; such a point has no affine representative.
	ErrPointAtInfinity = errors.New("twistededwards: point at infinity has no affine coordinates")
)
