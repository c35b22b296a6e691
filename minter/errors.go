// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package minter

import "errors"

var (
	ErrProgramPaused      = errors.New("program is paused")
	ErrNotOwner           = errors.New("caller is not the owner")
	ErrNotPendingOwner    = errors.New("caller is not the pending owner")
	ErrNotPauser          = errors.New("caller is not the pauser")
	ErrNotTokenController = errors.New("caller is not the token controller")
	ErrTokenNotSupported  = errors.New("token not supported")
	ErrMaxTokensSupported = errors.New("supported token limit exceeded")
	ErrInvalidAmount      = errors.New("amount must be greater than zero")

	ErrUnknownAttester             = errors.New("recovered attester is not allow-listed")
	ErrInvalidMessageVersion       = errors.New("unsupported message version")
	ErrAttestationExpired          = errors.New("mint attestation expired")
	ErrDestinationDomainMismatch   = errors.New("destination domain mismatch")
	ErrDestinationContractMismatch = errors.New("destination contract mismatch")
	ErrDestinationCallerMismatch   = errors.New("destination caller mismatch")
	ErrInvalidAttestationValue     = errors.New("attestation value must be greater than zero")
	ErrTransferSpecHashAlreadyUsed = errors.New("transfer spec hash already used")
	ErrAttesterLimitExceeded       = errors.New("attester limit exceeded")
)
