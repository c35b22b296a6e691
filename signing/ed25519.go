// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package signing

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/ChainSafe/gateway-custody/wire"
)

var ErrInvalidUserSignature = errors.New("invalid user signature")

// VerifyUserSignature checks the user's raw ed25519 signature over message.
// The signer address is the ed25519 public key itself, so no recovery step is
// involved, a mismatched key simply fails verification.
func VerifyUserSignature(signer wire.Address, message []byte, sig [wire.UserSignatureLength]byte) error {
	if !ed25519.Verify(ed25519.PublicKey(signer[:]), message, sig[:]) {
		return ErrInvalidUserSignature
	}
	return nil
}
