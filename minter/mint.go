// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package minter

import (
	"github.com/rs/zerolog/log"

	"github.com/ChainSafe/gateway-custody/events"
	"github.com/ChainSafe/gateway-custody/signing"
	"github.com/ChainSafe/gateway-custody/tokens"
	"github.com/ChainSafe/gateway-custody/wire"
)

// GatewayMint settles an attested mint set. attestationData is the encoded
// MintAttestationSet, attesterSig the allow-listed attester's signature over
// those exact bytes, caller the identity invoking the settlement. The whole
// set is one atomic unit: any failing element aborts everything.
func (m *Minter) GatewayMint(attestationData []byte, attesterSig []byte, caller wire.Address) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.requireNotPaused(); err != nil {
		return err
	}

	digest := signing.PayloadDigest(attestationData)
	recovered, err := signing.RecoverSigner(signing.EthSignedMessageHash(digest), attesterSig)
	if err != nil {
		return err
	}
	if !m.state.HasAttester(recovered) {
		return ErrUnknownAttester
	}

	set, err := wire.DecodeMintAttestationSet(attestationData)
	if err != nil {
		return err
	}

	if set.Version != wire.MessageVersion {
		return ErrInvalidMessageVersion
	}
	height, err := m.height.CurrentHeight()
	if err != nil {
		return err
	}
	if height > set.MaxBlockHeight {
		return ErrAttestationExpired
	}
	if set.DestinationDomain != m.state.Domain {
		return ErrDestinationDomainMismatch
	}
	if set.DestinationContract != m.identity {
		return ErrDestinationContractMismatch
	}
	if !set.DestinationCaller.IsZero() && set.DestinationCaller != caller {
		return ErrDestinationCallerMismatch
	}

	// Validate every element and stage every write before touching token
	// custody, so a failing element cannot leave a partial settlement.
	batch := m.db.NewBatch()
	staged := make(map[wire.Hash]struct{}, len(set.Attestations))
	needed := make(map[wire.Address]uint64)
	for i := range set.Attestations {
		a := &set.Attestations[i]
		if !m.state.SupportsToken(a.Token) {
			return ErrTokenNotSupported
		}
		if a.Value == 0 {
			return ErrInvalidAttestationValue
		}

		if _, ok := staged[a.TransferSpecHash]; ok {
			return ErrTransferSpecHashAlreadyUsed
		}
		used, err := m.usedHashes.IsUsed(a.TransferSpecHash)
		if err != nil {
			return err
		}
		if used {
			return ErrTransferSpecHashAlreadyUsed
		}
		staged[a.TransferSpecHash] = struct{}{}
		m.usedHashes.StoreUsed(batch, a.TransferSpecHash)

		// a wrapped sum always exceeds whatever custody holds; rejecting
		// here keeps the transfer loop below infallible
		sum := needed[a.Token] + a.Value
		if sum < a.Value {
			return tokens.ErrInsufficientTokenCustody
		}
		needed[a.Token] = sum
	}

	for token, amount := range needed {
		custody, err := m.tokens.Custody(token)
		if err != nil {
			return err
		}
		if custody < amount {
			return tokens.ErrInsufficientTokenCustody
		}
	}

	for i := range set.Attestations {
		a := &set.Attestations[i]
		err = m.tokens.TransferOut(a.Token, a.Recipient, a.Value)
		if err != nil {
			return err
		}
	}
	err = batch.Commit()
	if err != nil {
		return err
	}

	for i := range set.Attestations {
		a := &set.Attestations[i]
		m.sink.Emit(events.AttestationUsed{
			Token:            a.Token,
			Recipient:        a.Recipient,
			TransferSpecHash: a.TransferSpecHash,
			Value:            a.Value,
		})
	}
	log.Debug().
		Int("attestations", len(set.Attestations)).
		Str("attester", recovered.Hex()).
		Msg("Settled gateway mint")
	return nil
}
