// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package signing_test

import (
	"crypto/ed25519"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/suite"

	"github.com/ChainSafe/gateway-custody/signing"
	"github.com/ChainSafe/gateway-custody/wire"
)

type OperatorSignatureTestSuite struct {
	suite.Suite
}

func TestRunOperatorSignatureTestSuite(t *testing.T) {
	suite.Run(t, new(OperatorSignatureTestSuite))
}

func (s *OperatorSignatureTestSuite) Test_VerifyOperatorSignature_Valid() {
	key, err := crypto.GenerateKey()
	s.Nil(err)
	payload := []byte("relay payload")

	sig, err := signing.SignPayload(payload, key)
	s.Nil(err)

	err = signing.VerifyOperatorSignature(signing.PubkeyToAddress(key.PublicKey), payload, sig)
	s.Nil(err)
}

func (s *OperatorSignatureTestSuite) Test_VerifyOperatorSignature_WrongSigner() {
	key, err := crypto.GenerateKey()
	s.Nil(err)
	otherKey, err := crypto.GenerateKey()
	s.Nil(err)
	payload := []byte("relay payload")

	sig, err := signing.SignPayload(payload, key)
	s.Nil(err)

	err = signing.VerifyOperatorSignature(signing.PubkeyToAddress(otherKey.PublicKey), payload, sig)
	s.ErrorIs(err, signing.ErrSignerMismatch)
}

func (s *OperatorSignatureTestSuite) Test_VerifyOperatorSignature_TamperedPayload() {
	key, err := crypto.GenerateKey()
	s.Nil(err)
	payload := []byte("relay payload")

	sig, err := signing.SignPayload(payload, key)
	s.Nil(err)

	err = signing.VerifyOperatorSignature(signing.PubkeyToAddress(key.PublicKey), append(payload, 0x01), sig)
	s.ErrorIs(err, signing.ErrSignerMismatch)
}

func (s *OperatorSignatureTestSuite) Test_RecoverSigner_InvalidLength() {
	_, err := signing.RecoverSigner(wire.Hash{}, make([]byte, 64))

	s.ErrorIs(err, signing.ErrInvalidSignatureLength)
}

func (s *OperatorSignatureTestSuite) Test_RecoverSigner_InvalidRecoveryID() {
	key, err := crypto.GenerateKey()
	s.Nil(err)
	sig, err := signing.SignPayload([]byte("relay payload"), key)
	s.Nil(err)
	sig[64] = 2

	_, err = signing.RecoverSigner(wire.Hash{}, sig)
	s.ErrorIs(err, signing.ErrInvalidRecoveryID)
}

func (s *OperatorSignatureTestSuite) Test_RecoverSigner_HighS() {
	key, err := crypto.GenerateKey()
	s.Nil(err)
	sig, err := signing.SignPayload([]byte("relay payload"), key)
	s.Nil(err)

	// flip s into the upper half order: s' = N - s, v' = flipped v
	secp256k1N := crypto.S256().Params().N
	highS := new(big.Int).Sub(secp256k1N, new(big.Int).SetBytes(sig[32:64]))

	flipped := make([]byte, 65)
	copy(flipped, sig[:32])
	highS.FillBytes(flipped[32:64])
	if sig[64] == 27 {
		flipped[64] = 28
	} else {
		flipped[64] = 27
	}

	_, err = signing.RecoverSigner(wire.Hash{}, flipped)
	s.ErrorIs(err, signing.ErrMalleableSignature)
}

type UserSignatureTestSuite struct {
	suite.Suite
}

func TestRunUserSignatureTestSuite(t *testing.T) {
	suite.Run(t, new(UserSignatureTestSuite))
}

func (s *UserSignatureTestSuite) Test_VerifyUserSignature_Valid() {
	pub, priv, err := ed25519.GenerateKey(nil)
	s.Nil(err)
	message := []byte("prefixed intent bytes")

	var sig [wire.UserSignatureLength]byte
	copy(sig[:], ed25519.Sign(priv, message))

	err = signing.VerifyUserSignature(wire.BytesToAddress(pub), message, sig)
	s.Nil(err)
}

func (s *UserSignatureTestSuite) Test_VerifyUserSignature_WrongKey() {
	_, priv, err := ed25519.GenerateKey(nil)
	s.Nil(err)
	otherPub, _, err := ed25519.GenerateKey(nil)
	s.Nil(err)
	message := []byte("prefixed intent bytes")

	var sig [wire.UserSignatureLength]byte
	copy(sig[:], ed25519.Sign(priv, message))

	err = signing.VerifyUserSignature(wire.BytesToAddress(otherPub), message, sig)
	s.ErrorIs(err, signing.ErrInvalidUserSignature)
}

func (s *UserSignatureTestSuite) Test_VerifyUserSignature_TamperedMessage() {
	pub, priv, err := ed25519.GenerateKey(nil)
	s.Nil(err)
	message := []byte("prefixed intent bytes")

	var sig [wire.UserSignatureLength]byte
	copy(sig[:], ed25519.Sign(priv, message))

	err = signing.VerifyUserSignature(wire.BytesToAddress(pub), append(message, 0x01), sig)
	s.ErrorIs(err, signing.ErrInvalidUserSignature)
}
