// Package quantity implements the fixed-width-to-minimal big-endian byte
// encoding Ethereum calls a "Quantity", plus the hex helpers used across
// this module to move between "0x..." strings and raw bytes.
package quantity

import (
	"encoding/hex"
	"math/big"
	"strings"

	"github.com/orlowskilp/evm-signer-kms/txerr"
)

// maxBytes is the width of a secp256k1/EVM word; any Quantity wider than
// this cannot occur on-chain.
const maxBytes = 32

// ToBytes returns the shortest big-endian representation of v with no
// leading zero byte. The value 0 (or a nil *big.Int) encodes as the empty
// byte slice.
func ToBytes(v *big.Int) []byte {
	if v == nil || v.Sign() == 0 {
		return []byte{}
	}
	return v.Bytes()
}

// FromBytes decodes a big-endian Quantity. It fails with InvalidLength if
// b is wider than 32 bytes.
func FromBytes(b []byte) (*big.Int, error) {
	if len(b) > maxBytes {
		return nil, txerr.Newf(txerr.InvalidLength, "quantity exceeds %d bytes: got %d", maxBytes, len(b))
	}
	return new(big.Int).SetBytes(b), nil
}

// HexToBytes decodes a hex string, accepting an optional "0x"/"0X" prefix.
// An odd-length input fails with InvalidHex.
func HexToBytes(s string) ([]byte, error) {
	cleaned := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(cleaned)%2 != 0 {
		return nil, txerr.Newf(txerr.InvalidHex, "odd-length hex string: %q", s)
	}
	b, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, txerr.Wrap(txerr.InvalidHex, "invalid hex string: "+s, err)
	}
	return b, nil
}

// BytesToHex encodes b as a lowercase "0x"-prefixed hex string.
func BytesToHex(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}
