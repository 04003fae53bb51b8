// Package accesslist implements the EIP-2930 access list: the set of
// (address, storage keys) pairs a type-1 or type-2 transaction declares it
// will touch, carried in the signed payload and RLP-encoded as a nested list.
package accesslist

import (
	"github.com/orlowskilp/evm-signer-kms/address"
	"github.com/orlowskilp/evm-signer-kms/rlp"
	"github.com/orlowskilp/evm-signer-kms/txerr"
)

// StorageKeyLength is the fixed width of a storage slot key.
const StorageKeyLength = 32

// Entry is one access tuple: an address and the storage keys under it that
// the transaction declares it will read or write.
type Entry struct {
	Address     address.Address
	StorageKeys [][StorageKeyLength]byte
}

// NewEntry constructs an Entry from raw storage key bytes, validating that
// every key is exactly 32 bytes. The corpus's own access list types accept
// keys of any width and only reject malformed ones at deserialization time;
// this constructor enforces the width up front instead.
func NewEntry(addr address.Address, keys [][]byte) (Entry, error) {
	storageKeys := make([][StorageKeyLength]byte, len(keys))
	for i, k := range keys {
		if len(k) != StorageKeyLength {
			return Entry{}, txerr.Newf(txerr.InvalidLength, "storage key %d must be %d bytes, got %d", i, StorageKeyLength, len(k))
		}
		copy(storageKeys[i][:], k)
	}
	return Entry{Address: addr, StorageKeys: storageKeys}, nil
}

// List is an ordered EIP-2930 access list.
type List []Entry

// RLP encodes the access list as a list of [address, [storageKey, ...]] items.
func (l List) RLP() rlp.List {
	out := make(rlp.List, len(l))
	for i, entry := range l {
		keys := make(rlp.List, len(entry.StorageKeys))
		for j, k := range entry.StorageKeys {
			keys[j] = rlp.Bytes(k[:])
		}
		out[i] = rlp.List{rlp.Bytes(entry.Address[:]), keys}
	}
	return out
}

// Encode returns the RLP encoding of l on its own, independent of any
// enclosing transaction payload.
func Encode(l List) []byte {
	return rlp.Encode(l.RLP())
}
