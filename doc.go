// Package babyjubjub provides arithmetic for the baby jubjub twisted
// Edwards curve, a zero-knowledge-proof-friendly elliptic curve group
// defined over the BN254 scalar field.
//
// The arithmetic lives in two sub-packages:
//   - field: arbitrary-precision modular field arithmetic
//   - twistededwards: curve points in affine, projective and extended
//     coordinates, scalar multiplication and hash-to-curve
//
// The package is a low-level primitive for higher-level protocols
// (commitment schemes, in-circuit signature verification); it provides no
// serialization format beyond the integer encoding of field elements and no
// circuit tooling.
package babyjubjub

import "github.com/blang/semver/v4"

// Version of the library.
var Version = semver.MustParse("0.1.0")
