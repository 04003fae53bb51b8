package tx

import (
	"math/big"

	"github.com/orlowskilp/evm-signer-kms/accesslist"
	"github.com/orlowskilp/evm-signer-kms/address"
	"github.com/orlowskilp/evm-signer-kms/rlp"
	"github.com/orlowskilp/evm-signer-kms/signature"
)

// dynamicFeeTypeByte is the EIP-2718 transaction type for EIP-1559.
var dynamicFeeTypeByte byte = 0x02

// DynamicFeeTx is an EIP-1559 (type 2) transaction: gas is priced as a base
// fee plus a priority fee rather than a single gas price.
type DynamicFeeTx struct {
	ChainID              *big.Int
	Nonce                uint64
	MaxPriorityFeePerGas *big.Int
	MaxFeePerGas         *big.Int
	GasLimit             uint64
	To                   *address.Address // nil for contract creation
	Value                *big.Int
	Data                 []byte
	AccessList           accesslist.List
}

// SigningHash returns Keccak256(0x02 || RLP([chainId, nonce,
// maxPriorityFeePerGas, maxFeePerGas, gasLimit, to, value, data, accessList])).
func (tx *DynamicFeeTx) SigningHash() [32]byte {
	items := rlp.List{
		rlpBigInt(tx.ChainID),
		rlpUint64(tx.Nonce),
		rlpBigInt(tx.MaxPriorityFeePerGas),
		rlpBigInt(tx.MaxFeePerGas),
		rlpUint64(tx.GasLimit),
		rlpAddress(tx.To),
		rlpBigInt(tx.Value),
		rlp.Bytes(tx.Data),
		rlpAccessList(tx.AccessList),
	}
	return signingDigest(&dynamicFeeTypeByte, rlp.Encode(items))
}

// Assemble returns 0x02 || RLP([chainId, nonce, maxPriorityFeePerGas,
// maxFeePerGas, gasLimit, to, value, data, accessList, v, r, s]), where v is
// the bare recovery id (0 or 1).
func (tx *DynamicFeeTx) Assemble(sig signature.Signature) []byte {
	items := rlp.List{
		rlpBigInt(tx.ChainID),
		rlpUint64(tx.Nonce),
		rlpBigInt(tx.MaxPriorityFeePerGas),
		rlpBigInt(tx.MaxFeePerGas),
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
	out[0] = dynamicFeeTypeByte
	copy(out[1:], payload)
	return out
}
