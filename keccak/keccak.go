// Package keccak computes Keccak-256, the pre-NIST Keccak variant Ethereum
// uses for hashing. It differs from the FIPS-202 SHA3-256 standard only in
// the padding byte, which is why it needs its own package rather than
// crypto/sha3's NIST-standard implementation.
package keccak

import "golang.org/x/crypto/sha3"

// Sum256 computes the Keccak-256 hash of the concatenation of data.
func Sum256(data ...[]byte) [32]byte {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
