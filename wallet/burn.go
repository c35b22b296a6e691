// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package wallet

import (
	"math"

	"github.com/rs/zerolog/log"

	"github.com/ChainSafe/gateway-custody/events"
	"github.com/ChainSafe/gateway-custody/signing"
	"github.com/ChainSafe/gateway-custody/wire"
)

// BurnResult reports how a settled burn was funded.
type BurnResult struct {
	TransferSpecHash wire.Hash
	Value            uint64
	ChargedFee       uint64
	FromAvailable    uint64
	FromWithdrawing  uint64
}

// GatewayBurn settles one relayed burn payload against the custody ledger.
// burnData is the encoded relay payload (fee, user signature, prefixed
// intent), burnSignerSig the allow-listed burn signer's signature over those
// exact bytes. Either every effect commits (debit, fee transfer, replay
// record) or none does.
func (w *Wallet) GatewayBurn(burnData []byte, burnSignerSig []byte) (*BurnResult, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.requireNotPaused(); err != nil {
		return nil, err
	}

	// The relay signature is checked before anything is decoded so an
	// unauthenticated payload never reaches the parser.
	digest := signing.PayloadDigest(burnData)
	recovered, err := signing.RecoverSigner(signing.EthSignedMessageHash(digest), burnSignerSig)
	if err != nil {
		return nil, err
	}
	if !w.state.HasBurnSigner(recovered) {
		return nil, ErrUnknownBurnSigner
	}

	bd, err := wire.DecodeBurnData(burnData)
	if err != nil {
		return nil, err
	}
	spec := &bd.Intent.Spec

	// The signed message is re-derived from the decoded payload itself, so
	// the user signature can only ever be checked against the bytes that
	// drive the debit below.
	err = signing.VerifyUserSignature(spec.SourceSigner, bd.SignedMessage(), bd.UserSignature)
	if err != nil {
		return nil, err
	}

	if spec.Version != wire.MessageVersion {
		return nil, ErrInvalidMessageVersion
	}
	height, err := w.height.CurrentHeight()
	if err != nil {
		return nil, err
	}
	if height > bd.Intent.MaxBlockHeight {
		return nil, ErrBurnIntentExpired
	}
	if bd.Fee > bd.Intent.MaxFee {
		return nil, ErrBurnFeeExceedsMaxFee
	}

	if spec.SourceDomain != w.state.Domain {
		return nil, ErrSourceDomainMismatch
	}
	if spec.SourceContract != w.identity {
		return nil, ErrSourceContractMismatch
	}
	if err := w.requireSupportedToken(spec.SourceToken); err != nil {
		return nil, err
	}

	err = w.authorizeSigner(spec.SourceToken, spec.SourceDepositor, spec.SourceSigner)
	if err != nil {
		return nil, err
	}
	err = w.requireNotDenylisted(spec.SourceDepositor, spec.SourceSigner)
	if err != nil {
		return nil, err
	}

	specHash := spec.Hash()
	used, err := w.usedHashes.IsUsed(specHash)
	if err != nil {
		return nil, err
	}
	if used {
		return nil, ErrTransferSpecHashAlreadyUsed
	}

	deposit, err := w.deposits.Deposit(spec.SourceToken, spec.SourceDepositor)
	if err != nil {
		return nil, err
	}

	// Principal is the hard gate. The fee is the only reducible component:
	// when the balance covers the value but not the full fee, the burn still
	// settles with whatever fee remains.
	total := deposit.Total()
	if total < spec.Value {
		return nil, ErrInsufficientCustodyBalance
	}
	need := spec.Value + bd.Fee
	if need < spec.Value {
		// value + fee wrapped; the deductible amount is capped by the
		// balance anyway, so saturate instead of rejecting a valid intent
		need = math.MaxUint64
	}
	deducted := need
	if total < need {
		deducted = total
	}
	fromAvailable := deducted
	if deposit.AvailableAmount < deducted {
		fromAvailable = deposit.AvailableAmount
	}
	fromWithdrawing := deducted - fromAvailable
	chargedFee := deducted - spec.Value

	if chargedFee > 0 {
		err = w.tokens.TransferOut(spec.SourceToken, w.state.FeeRecipient, chargedFee)
		if err != nil {
			return nil, err
		}
	}
	err = w.tokens.Burn(spec.SourceToken, spec.Value)
	if err != nil {
		return nil, err
	}

	deposit.AvailableAmount -= fromAvailable
	deposit.WithdrawingAmount -= fromWithdrawing

	batch := w.db.NewBatch()
	err = w.deposits.StoreDeposit(batch, spec.SourceToken, spec.SourceDepositor, deposit)
	if err != nil {
		return nil, err
	}
	w.usedHashes.StoreUsed(batch, specHash)
	err = batch.Commit()
	if err != nil {
		return nil, err
	}

	if deducted < need {
		w.sink.Emit(events.InsufficientBalance{
			Token:              spec.SourceToken,
			Depositor:          spec.SourceDepositor,
			Value:              need,
			AvailableBalance:   fromAvailable,
			WithdrawingBalance: fromWithdrawing,
		})
	}
	w.sink.Emit(events.GatewayBurned{
		Token:                spec.SourceToken,
		Depositor:            spec.SourceDepositor,
		TransferSpecHash:     specHash,
		DestinationDomain:    spec.DestinationDomain,
		DestinationRecipient: spec.DestinationRecipient,
		Signer:               spec.SourceSigner,
		Value:                spec.Value,
		Fee:                  chargedFee,
		FromAvailable:        fromAvailable,
		FromWithdrawing:      fromWithdrawing,
	})
	log.Debug().
		Str("transferSpecHash", specHash.Hex()).
		Uint64("value", spec.Value).
		Uint64("fee", chargedFee).
		Msg("Settled gateway burn")

	return &BurnResult{
		TransferSpecHash: specHash,
		Value:            spec.Value,
		ChargedFee:       chargedFee,
		FromAvailable:    fromAvailable,
		FromWithdrawing:  fromWithdrawing,
	}, nil
}

// authorizeSigner resolves whether signer may burn from depositor's balance:
// either the depositor itself, or a delegate whose record names this exact
// depositor and this exact signer and was authorized at least once. A revoked
// record still authorizes, matching the original was-ever-authorized rule,
// revocation guards future delegations rather than already-signed intents.
func (w *Wallet) authorizeSigner(token, depositor, signer wire.Address) error {
	if signer == depositor {
		return nil
	}

	delegation, err := w.delegates.Delegation(token, depositor, signer)
	if err != nil {
		return err
	}
	if delegation == nil {
		return ErrDelegateSignerNotAuthorized
	}
	if delegation.Depositor != depositor {
		return ErrDelegateDepositorMismatch
	}
	if delegation.Signer != signer {
		return ErrDelegateSignerMismatch
	}
	return nil
}
