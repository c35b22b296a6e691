// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

// Package signing verifies the two signature schemes gateway payloads carry:
// secp256k1 signatures from operator keys (burn signers, attesters) recovered
// the EVM way, and raw ed25519 signatures from user wallet keys.
package signing

import (
	"crypto/ecdsa"
	"math/big"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"

	"github.com/ChainSafe/gateway-custody/wire"
)

// EVMSignatureLength is r || s || v.
const EVMSignatureLength = 65

var (
	ErrInvalidSignatureLength = errors.New("invalid signature length")
	ErrInvalidRecoveryID      = errors.New("invalid recovery id, expected 27 or 28")
	ErrMalleableSignature     = errors.New("signature s value is in the upper half order")
	ErrSignerMismatch         = errors.New("recovered signer does not match expected signer")
)

// PayloadDigest hashes an arbitrary payload with keccak256.
func PayloadDigest(payload []byte) wire.Hash {
	var h wire.Hash
	copy(h[:], crypto.Keccak256(payload))
	return h
}

// EthSignedMessageHash applies the EIP-191 personal message wrapping to a
// 32-byte digest, mirroring what eth_sign produces.
func EthSignedMessageHash(digest wire.Hash) wire.Hash {
	var h wire.Hash
	copy(h[:], crypto.Keccak256([]byte("\x19Ethereum Signed Message:\n32"), digest[:]))
	return h
}

// RecoverSigner recovers the 20-byte account that produced sig over the given
// EIP-191 wrapped hash and returns it right-aligned in a 32-byte address.
// The recovery id must be 27 or 28 and the s value must be in the lower half
// order, so a third party cannot flip the signature into a second valid one.
func RecoverSigner(messageHash wire.Hash, sig []byte) (wire.Address, error) {
	if len(sig) != EVMSignatureLength {
		return wire.ZeroAddress, ErrInvalidSignatureLength
	}
	v := sig[64]
	if v != 27 && v != 28 {
		return wire.ZeroAddress, ErrInvalidRecoveryID
	}

	r := new(big.Int).SetBytes(sig[:32])
	s := new(big.Int).SetBytes(sig[32:64])
	if !crypto.ValidateSignatureValues(v-27, r, s, true) {
		return wire.ZeroAddress, ErrMalleableSignature
	}

	normalized := make([]byte, EVMSignatureLength)
	copy(normalized, sig[:64])
	normalized[64] = v - 27

	pub, err := crypto.Ecrecover(messageHash[:], normalized)
	if err != nil {
		return wire.ZeroAddress, errors.Wrap(err, "failed to recover public key")
	}
	// drop the uncompressed point prefix, address is the hash tail
	return wire.BytesToAddress(crypto.Keccak256(pub[1:])[12:]), nil
}

// VerifyOperatorSignature checks that sig is expected's EVM signature over
// payload. The payload is hashed with keccak256 and wrapped per EIP-191
// before recovery.
func VerifyOperatorSignature(expected wire.Address, payload []byte, sig []byte) error {
	var digest wire.Hash
	copy(digest[:], crypto.Keccak256(payload))

	recovered, err := RecoverSigner(EthSignedMessageHash(digest), sig)
	if err != nil {
		return err
	}
	if recovered != expected {
		return ErrSignerMismatch
	}
	return nil
}

// SignPayload produces the 65-byte EVM signature over payload that
// VerifyOperatorSignature accepts. Used by tests and relay tooling.
func SignPayload(payload []byte, key *ecdsa.PrivateKey) ([]byte, error) {
	var digest wire.Hash
	copy(digest[:], crypto.Keccak256(payload))
	wrapped := EthSignedMessageHash(digest)

	sig, err := crypto.Sign(wrapped[:], key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign payload")
	}
	sig[64] += 27
	return sig, nil
}

// PubkeyToAddress converts a secp256k1 public key into the right-aligned
// 32-byte form gateway payloads carry.
func PubkeyToAddress(pub ecdsa.PublicKey) wire.Address {
	return wire.BytesToAddress(crypto.PubkeyToAddress(pub).Bytes())
}
