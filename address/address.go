// Package address derives Ethereum addresses from secp256k1 public keys
// and implements EIP-55 mixed-case checksum formatting and validation.
package address

import (
	"strings"

	"github.com/orlowskilp/evm-signer-kms/keccak"
	"github.com/orlowskilp/evm-signer-kms/pubkey"
	"github.com/orlowskilp/evm-signer-kms/quantity"
	"github.com/orlowskilp/evm-signer-kms/txerr"
)

// Length is the width of an Ethereum address in raw bytes.
const Length = 20

// Address is a 20-byte Ethereum account address.
type Address [Length]byte

// FromPublicKey derives the address from an uncompressed secp256k1 public
// key: the last 20 bytes of Keccak256(X‖Y).
func FromPublicKey(pk pubkey.PublicKey) Address {
	hash := keccak.Sum256(pk[:])
	var a Address
	copy(a[:], hash[len(hash)-Length:])
	return a
}

// Hex returns the lowercase "0x"-prefixed hex form.
func (a Address) Hex() string {
	return "0x" + lowerHex(a)
}

// Checksum returns the EIP-55 mixed-case checksum hex form.
func (a Address) Checksum() string {
	return "0x" + toChecksum(lowerHex(a))
}

// Parse validates and decodes a hex Ethereum address per EIP-55.
//
// It accepts an all-lowercase body, an all-uppercase body, or a body that
// exactly matches its own EIP-55 checksum; any other mixed case fails with
// InvalidChecksum.
func Parse(s string) (Address, error) {
	body := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(body) != 2*Length {
		return Address{}, txerr.Newf(txerr.InvalidLength, "expected %d hex chars for an address, got %d", 2*Length, len(body))
	}

	lower := strings.ToLower(body)
	if body != lower && body != strings.ToUpper(lower) {
		if body != toChecksum(lower) {
			return Address{}, txerr.Newf(txerr.InvalidChecksum, "address %q does not match its EIP-55 checksum", s)
		}
	}

	raw, err := quantity.HexToBytes(lower)
	if err != nil {
		return Address{}, err
	}

	var a Address
	copy(a[:], raw)
	return a, nil
}

func lowerHex(a Address) string {
	const hexDigits = "0123456789abcdef"
	out := make([]byte, 2*Length)
	for i, b := range a {
		out[2*i] = hexDigits[b>>4]
		out[2*i+1] = hexDigits[b&0x0f]
	}
	return string(out)
}

// toChecksum applies EIP-55: uppercase the i-th hex character of lower
// iff the i-th nibble of keccak256(lower) is >= 8.
func toChecksum(lower string) string {
	hash := keccak.Sum256([]byte(lower))
	out := make([]byte, len(lower))
	for i, c := range lower {
		if c >= '0' && c <= '9' {
			out[i] = byte(c)
			continue
		}
		hashByte := hash[i/2]
		var nibble byte
		if i%2 == 0 {
			nibble = hashByte >> 4
		} else {
			nibble = hashByte & 0x0f
		}
		if nibble >= 8 {
			out[i] = byte(c) - 32 // uppercase
		} else {
			out[i] = byte(c)
		}
	}
	return string(out)
}
