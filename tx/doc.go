// Package tx is the entry point for signing EVM transactions against a
// remote KMS or HSM that exposes only a GetPublicKey/Sign interface and
// never hands back a private key.
//
// # Quick Start
//
//	port := myKMS.AsPort() // implements kms.Port
//
//	txn := &tx.LegacyTx{
//	    Nonce:    0,
//	    GasPrice: big.NewInt(20_000_000_000),
//	    GasLimit: 21_000,
//	    To:       &recipient,
//	    Value:    big.NewInt(1_000_000_000_000_000_000),
//	    ChainID:  big.NewInt(1),
//	}
//
//	raw, err := tx.SignLegacy(ctx, "my-key-id", port, txn)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// raw is ready for eth_sendRawTransaction.
//
// # Transaction Types
//
// LegacyTx (type 0), AccessListTx (type 1, EIP-2930) and DynamicFeeTx
// (type 2, EIP-1559) all implement Transaction and can be passed to Sign
// directly, or through the typed SignLegacy/SignAccessList/SignDynamicFee
// wrappers.
//
// # Caching Public Keys
//
// Wrap a Port in kms.NewCachingPort to avoid a GetPublicKey round trip on
// every Sign call against the same key ID:
//
//	cached := kms.NewCachingPort(port)
//	raw, err := tx.SignLegacy(ctx, "my-key-id", cached, txn)
package tx
