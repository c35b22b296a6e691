// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package wire

import "errors"

var (
	ErrMalformedBurnData              = errors.New("malformed burn data")
	ErrInvalidBurnIntentMessagePrefix = errors.New("invalid burn intent message prefix")
	ErrBurnIntentMagicMismatch        = errors.New("burn intent magic mismatch")
	ErrBurnIntentSetNotSupported      = errors.New("burn intent sets are not supported")
	ErrBurnIntentLengthMismatch       = errors.New("burn intent length mismatch")
	ErrTransferSpecMagicMismatch      = errors.New("transfer spec magic mismatch")
	ErrTransferSpecLengthMismatch     = errors.New("transfer spec length mismatch")
	ErrInvalidTransferSpecValue       = errors.New("transfer spec value must be greater than zero")
	ErrInvalidU64HighBytes            = errors.New("invalid u64 high bytes")

	ErrMalformedMintAttestation = errors.New("malformed mint attestation")
	ErrAttestationMagicMismatch = errors.New("mint attestation magic mismatch")
	ErrAttestationTooShort      = errors.New("mint attestation too short")
	ErrAttestationTooLong       = errors.New("mint attestation too long")
	ErrEmptyAttestationSet      = errors.New("empty attestation set")
)
