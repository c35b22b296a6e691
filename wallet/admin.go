// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package wallet

import (
	"github.com/ChainSafe/gateway-custody/events"
	"github.com/ChainSafe/gateway-custody/store"
	"github.com/ChainSafe/gateway-custody/wire"
)

// TransferOwnership stages a two-step ownership handover. Nothing changes
// hands until the new owner accepts.
func (w *Wallet) TransferOwnership(caller, newOwner wire.Address) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if caller != w.state.Owner {
		return ErrNotOwner
	}

	w.state.PendingOwner = newOwner
	err := w.commitState()
	if err != nil {
		return err
	}

	w.sink.Emit(events.OwnershipTransferStarted{
		PreviousOwner: w.state.Owner,
		NewOwner:      newOwner,
	})
	return nil
}

// AcceptOwnership finalizes a staged handover.
func (w *Wallet) AcceptOwnership(caller wire.Address) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if caller.IsZero() || caller != w.state.PendingOwner {
		return ErrNotPendingOwner
	}

	previous := w.state.Owner
	w.state.Owner = caller
	w.state.PendingOwner = wire.ZeroAddress
	err := w.commitState()
	if err != nil {
		return err
	}

	w.sink.Emit(events.OwnershipTransferred{
		PreviousOwner: previous,
		NewOwner:      caller,
	})
	return nil
}

// Pause halts all balance-mutating and delegation operations.
func (w *Wallet) Pause(caller wire.Address) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if caller != w.state.Pauser {
		return ErrNotPauser
	}

	w.state.Paused = true
	err := w.commitState()
	if err != nil {
		return err
	}

	w.sink.Emit(events.Paused{Account: caller})
	return nil
}

// Unpause resumes normal operation.
func (w *Wallet) Unpause(caller wire.Address) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if caller != w.state.Pauser {
		return ErrNotPauser
	}

	w.state.Paused = false
	err := w.commitState()
	if err != nil {
		return err
	}

	w.sink.Emit(events.Unpaused{Account: caller})
	return nil
}

func (w *Wallet) UpdatePauser(caller, newPauser wire.Address) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if caller != w.state.Owner {
		return ErrNotOwner
	}

	old := w.state.Pauser
	w.state.Pauser = newPauser
	err := w.commitState()
	if err != nil {
		return err
	}

	w.sink.Emit(events.PauserChanged{OldPauser: old, NewPauser: newPauser})
	return nil
}

func (w *Wallet) UpdateDenylister(caller, newDenylister wire.Address) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if caller != w.state.Owner {
		return ErrNotOwner
	}

	old := w.state.Denylister
	w.state.Denylister = newDenylister
	err := w.commitState()
	if err != nil {
		return err
	}

	w.sink.Emit(events.DenylisterChanged{OldDenylister: old, NewDenylister: newDenylister})
	return nil
}

func (w *Wallet) UpdateTokenController(caller, newController wire.Address) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if caller != w.state.Owner {
		return ErrNotOwner
	}

	old := w.state.TokenController
	w.state.TokenController = newController
	err := w.commitState()
	if err != nil {
		return err
	}

	w.sink.Emit(events.TokenControllerUpdated{
		PreviousTokenController: old,
		NewTokenController:      newController,
	})
	return nil
}

func (w *Wallet) UpdateFeeRecipient(caller, newRecipient wire.Address) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if caller != w.state.Owner {
		return ErrNotOwner
	}

	old := w.state.FeeRecipient
	w.state.FeeRecipient = newRecipient
	err := w.commitState()
	if err != nil {
		return err
	}

	w.sink.Emit(events.FeeRecipientChanged{
		OldFeeRecipient: old,
		NewFeeRecipient: newRecipient,
	})
	return nil
}

func (w *Wallet) UpdateWithdrawalDelay(caller wire.Address, newDelay uint64) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if caller != w.state.Owner {
		return ErrNotOwner
	}

	old := w.state.WithdrawalDelay
	w.state.WithdrawalDelay = newDelay
	err := w.commitState()
	if err != nil {
		return err
	}

	w.sink.Emit(events.WithdrawalDelayChanged{OldDelay: old, NewDelay: newDelay})
	return nil
}

// AddToken puts token on the supported list. Idempotent; the list is capped.
func (w *Wallet) AddToken(caller, token wire.Address) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if caller != w.state.TokenController {
		return ErrNotTokenController
	}

	tokens, grew := store.AppendAddress(w.state.Tokens, token)
	if grew && len(tokens) > MaxSupportedTokens {
		return ErrMaxTokensSupported
	}
	w.state.Tokens = tokens
	err := w.commitState()
	if err != nil {
		return err
	}

	w.sink.Emit(events.TokenSupported{Token: token})
	return nil
}

// AddBurnSigner allow-lists a burn signer key. Idempotent; capped.
func (w *Wallet) AddBurnSigner(caller, signer wire.Address) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if caller != w.state.Owner {
		return ErrNotOwner
	}

	signers, grew := store.AppendAddress(w.state.BurnSigners, signer)
	if grew && len(signers) > MaxBurnSigners {
		return ErrBurnSignerLimitExceeded
	}
	w.state.BurnSigners = signers
	err := w.commitState()
	if err != nil {
		return err
	}

	w.sink.Emit(events.BurnSignerAdded{Signer: signer})
	return nil
}

// RemoveBurnSigner drops a burn signer key. Removing an absent key is a
// state no-op but still emits.
func (w *Wallet) RemoveBurnSigner(caller, signer wire.Address) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if caller != w.state.Owner {
		return ErrNotOwner
	}

	w.state.BurnSigners, _ = store.RemoveAddress(w.state.BurnSigners, signer)
	err := w.commitState()
	if err != nil {
		return err
	}

	w.sink.Emit(events.BurnSignerRemoved{Signer: signer})
	return nil
}

func (w *Wallet) commitState() error {
	batch := w.db.NewBatch()
	err := w.writeState(batch)
	if err != nil {
		return err
	}
	return batch.Commit()
}
