// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package wallet

import "errors"

var (
	ErrProgramPaused         = errors.New("program is paused")
	ErrNotOwner              = errors.New("caller is not the owner")
	ErrNotPendingOwner       = errors.New("caller is not the pending owner")
	ErrNotPauser             = errors.New("caller is not the pauser")
	ErrNotDenylister         = errors.New("caller is not the denylister")
	ErrNotTokenController    = errors.New("caller is not the token controller")
	ErrAccountDenylisted     = errors.New("account is denylisted")
	ErrAccountNotInitialized = errors.New("account not initialized")
	ErrTokenNotSupported     = errors.New("token not supported")
	ErrMaxTokensSupported    = errors.New("supported token limit exceeded")

	ErrInvalidAmount      = errors.New("amount must be greater than zero")
	ErrInvalidBeneficiary = errors.New("beneficiary must not be the zero address")

	ErrInsufficientDepositBalance = errors.New("insufficient deposit balance")
	ErrNoWithdrawalInProgress     = errors.New("no withdrawal in progress")
	ErrWithdrawalDelayNotElapsed  = errors.New("withdrawal delay not elapsed")

	ErrUnknownBurnSigner           = errors.New("recovered burn signer is not allow-listed")
	ErrInvalidMessageVersion       = errors.New("unsupported message version")
	ErrBurnIntentExpired           = errors.New("burn intent expired")
	ErrBurnFeeExceedsMaxFee        = errors.New("fee exceeds intent max fee")
	ErrSourceDomainMismatch        = errors.New("source domain mismatch")
	ErrSourceContractMismatch      = errors.New("source contract mismatch")
	ErrDelegateDepositorMismatch   = errors.New("delegate record depositor mismatch")
	ErrDelegateSignerMismatch      = errors.New("delegate record signer mismatch")
	ErrDelegateSignerNotAuthorized = errors.New("signer was never authorized by depositor")
	ErrTransferSpecHashAlreadyUsed = errors.New("transfer spec hash already used")
	ErrInsufficientCustodyBalance  = errors.New("insufficient custody balance")
	ErrBurnSignerLimitExceeded     = errors.New("burn signer limit exceeded")

	ErrInvalidDelegate = errors.New("delegate must not be the zero address")
	ErrSelfDelegation  = errors.New("depositor cannot delegate to itself")
)
