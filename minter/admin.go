// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package minter

import (
	"github.com/ChainSafe/gateway-custody/events"
	"github.com/ChainSafe/gateway-custody/store"
	"github.com/ChainSafe/gateway-custody/wire"
)

// TransferOwnership stages a two-step ownership handover.
func (m *Minter) TransferOwnership(caller, newOwner wire.Address) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if caller != m.state.Owner {
		return ErrNotOwner
	}

	m.state.PendingOwner = newOwner
	err := m.commitState()
	if err != nil {
		return err
	}

	m.sink.Emit(events.OwnershipTransferStarted{
		PreviousOwner: m.state.Owner,
		NewOwner:      newOwner,
	})
	return nil
}

// AcceptOwnership finalizes a staged handover.
func (m *Minter) AcceptOwnership(caller wire.Address) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if caller.IsZero() || caller != m.state.PendingOwner {
		return ErrNotPendingOwner
	}

	previous := m.state.Owner
	m.state.Owner = caller
	m.state.PendingOwner = wire.ZeroAddress
	err := m.commitState()
	if err != nil {
		return err
	}

	m.sink.Emit(events.OwnershipTransferred{
		PreviousOwner: previous,
		NewOwner:      caller,
	})
	return nil
}

// Pause halts settlement and custody burns.
func (m *Minter) Pause(caller wire.Address) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if caller != m.state.Pauser {
		return ErrNotPauser
	}

	m.state.Paused = true
	err := m.commitState()
	if err != nil {
		return err
	}

	m.sink.Emit(events.Paused{Account: caller})
	return nil
}

// Unpause resumes normal operation.
func (m *Minter) Unpause(caller wire.Address) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if caller != m.state.Pauser {
		return ErrNotPauser
	}

	m.state.Paused = false
	err := m.commitState()
	if err != nil {
		return err
	}

	m.sink.Emit(events.Unpaused{Account: caller})
	return nil
}

func (m *Minter) UpdatePauser(caller, newPauser wire.Address) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if caller != m.state.Owner {
		return ErrNotOwner
	}

	old := m.state.Pauser
	m.state.Pauser = newPauser
	err := m.commitState()
	if err != nil {
		return err
	}

	m.sink.Emit(events.PauserChanged{OldPauser: old, NewPauser: newPauser})
	return nil
}

func (m *Minter) UpdateTokenController(caller, newController wire.Address) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if caller != m.state.Owner {
		return ErrNotOwner
	}

	old := m.state.TokenController
	m.state.TokenController = newController
	err := m.commitState()
	if err != nil {
		return err
	}

	m.sink.Emit(events.TokenControllerUpdated{
		PreviousTokenController: old,
		NewTokenController:      newController,
	})
	return nil
}

// AddToken puts token on the supported list. Idempotent; the list is capped.
func (m *Minter) AddToken(caller, token wire.Address) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if caller != m.state.TokenController {
		return ErrNotTokenController
	}

	tokenList, grew := store.AppendAddress(m.state.Tokens, token)
	if grew && len(tokenList) > MaxSupportedTokens {
		return ErrMaxTokensSupported
	}
	m.state.Tokens = tokenList
	err := m.commitState()
	if err != nil {
		return err
	}

	m.sink.Emit(events.TokenSupported{Token: token})
	return nil
}

// AddAttester allow-lists an attester key. Idempotent; capped.
func (m *Minter) AddAttester(caller, attester wire.Address) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if caller != m.state.Owner {
		return ErrNotOwner
	}

	attesters, grew := store.AppendAddress(m.state.Attesters, attester)
	if grew && len(attesters) > MaxAttesters {
		return ErrAttesterLimitExceeded
	}
	m.state.Attesters = attesters
	err := m.commitState()
	if err != nil {
		return err
	}

	m.sink.Emit(events.AttestationSignerAdded{Signer: attester})
	return nil
}

// RemoveAttester drops an attester key. Removing an absent key is a state
// no-op but still emits.
func (m *Minter) RemoveAttester(caller, attester wire.Address) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if caller != m.state.Owner {
		return ErrNotOwner
	}

	m.state.Attesters, _ = store.RemoveAddress(m.state.Attesters, attester)
	err := m.commitState()
	if err != nil {
		return err
	}

	m.sink.Emit(events.AttestationSignerRemoved{Signer: attester})
	return nil
}

// BurnTokenCustody destroys part of the minter's custody for a token,
// shrinking the releasable supply on this domain.
func (m *Minter) BurnTokenCustody(caller, token wire.Address, amount uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.requireNotPaused(); err != nil {
		return err
	}
	if caller != m.state.TokenController {
		return ErrNotTokenController
	}
	if amount == 0 {
		return ErrInvalidAmount
	}
	if !m.state.SupportsToken(token) {
		return ErrTokenNotSupported
	}

	err := m.tokens.Burn(token, amount)
	if err != nil {
		return err
	}

	m.sink.Emit(events.TokenCustodyBurned{Token: token, Amount: amount})
	return nil
}
