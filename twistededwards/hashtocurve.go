// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package twistededwards

import (
	"crypto/sha256"
	"fmt"

	"github.com/consensys/babyjubjub/field"
	"github.com/consensys/babyjubjub/logger"
)

// maxFromDigestAttempts bounds the y-increment loop in FromDigest. Roughly
// half the field elements are residues, so the expected attempt count is 2;
// exhausting the bound means the curve constants are corrupted.
const maxFromDigestAttempts = 256

// FromHash maps arbitrary bytes deterministically to a point on the
// prime-order subgroup. The input is digested with SHA-256 and passed to
// FromDigest. The result is never the identity for honest parameters, and
// repeated calls with equal input return equal points.
func FromHash(data []byte) (PointAffine, error) {
	digest := sha256.Sum256(data)
	return FromDigest(digest[:])
}

// FromDigest maps a 32-byte digest to a point on the prime-order subgroup.
//
// The digest is interpreted as a big-endian integer and reduced into the
// field as a candidate y coordinate. When no x exists for y, y is
// incremented and recovery retried. The recovered point is multiplied by
// the cofactor to land on the prime subgroup and the subgroup membership is
// then verified; a failed check signals corrupted curve constants and is
// returned as ErrSubgroupCheck, never retried.
func FromDigest(digest []byte) (PointAffine, error) {
	if len(digest) != sha256.Size {
		return PointAffine{}, fmt.Errorf("twistededwards: digest must be %d bytes, got %d", sha256.Size, len(digest))
	}
	params := GetEdwardsCurve()
	one := field.One()
	y := field.New(digest)
	for i := 0; i < maxFromDigestAttempts; i++ {
		p, err := FromY(y)
		if errIsNoSquareRoot(err) {
			y = y.Add(one)
			continue
		}
		if err != nil {
			return PointAffine{}, err
		}

		p, err = ScalarMult(p, &params.Cofactor)
		if err != nil {
			return PointAffine{}, err
		}

		check, err := ScalarMult(p, &params.L)
		if err != nil {
			return PointAffine{}, err
		}
		if !check.Equal(p.Identity()) {
			log := logger.Logger()
			log.Error().Str("point", p.String()).Msg("hash-to-curve result failed the subgroup check; curve constants are corrupted")
			return PointAffine{}, ErrSubgroupCheck
		}

		return p, nil
	}
	log := logger.Logger()
	log.Error().Int("attempts", maxFromDigestAttempts).Msg("hash-to-curve exhausted its retry bound; curve constants are corrupted")
	return PointAffine{}, ErrSubgroupCheck
}
