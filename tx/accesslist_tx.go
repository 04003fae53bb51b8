package tx

import (
	"math/big"

	"github.com/orlowskilp/evm-signer-kms/accesslist"
	"github.com/orlowskilp/evm-signer-kms/address"
	"github.com/orlowskilp/evm-signer-kms/rlp"
	"github.com/orlowskilp/evm-signer-kms/signature"
)

// accessListTypeByte is the EIP-2718 transaction type for EIP-2930.
var accessListTypeByte byte = 0x01

// AccessListTx is an EIP-2930 (type 1) transaction: a legacy-shaped
// transaction carrying an explicit access list, signed with a chain id
// baked into the envelope rather than folded into v.
type AccessListTx struct {
	ChainID    *big.Int
	Nonce      uint64
	GasPrice   *big.Int
	GasLimit   uint64
	To         *address.Address // nil for contract creation
	Value      *big.Int
	Data       []byte
	AccessList accesslist.List
}

// SigningHash returns Keccak256(0x01 || RLP([chainId, nonce, gasPrice,
// gasLimit, to, value, data, accessList])).
func (tx *AccessListTx) SigningHash() [32]byte {
	items := rlp.List{
		rlpBigInt(tx.ChainID),
		rlpUint64(tx.Nonce),
		rlpBigInt(tx.GasPrice),
		rlpUint64(tx.GasLimit),
		rlpAddress(tx.To),
		rlpBigInt(tx.Value),
		rlp.Bytes(tx.Data),
		rlpAccessList(tx.AccessList),
	}
	return signingDigest(&accessListTypeByte, rlp.Encode(items))
}

// Assemble returns 0x01 || RLP([chainId, nonce, gasPrice, gasLimit, to,
// value, data, accessList, v, r, s]), where v is the bare recovery id (0 or
// 1) per EIP-2930.
func (tx *AccessListTx) Assemble(sig signature.Signature) []byte {
	items := rlp.List{
		rlpBigInt(tx.ChainID),
		rlpUint64(tx.Nonce),
		rlpBigInt(tx.GasPrice),
		rlpUint64(tx.GasLimit),
		rlpAddress(tx.To),
		rlpBigInt(tx.Value),
		rlp.Bytes(tx.Data),
		rlpAccessList(tx.AccessList),
		rlpUint64(uint64(sig.RecoveryID)),
		rlp.Bytes(trimLeadingZeros(sig.R[:])),
		rlp.Bytes(trimLeadingZeros(sig.S[:])),
	}
	payload := rlp.Encode(items)
	out := make([]byte, 1+len(payload))
	out[0] = accessListTypeByte
	copy(out[1:], payload)
	return out
}
