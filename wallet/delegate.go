// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package wallet

import (
	"github.com/ChainSafe/gateway-custody/events"
	"github.com/ChainSafe/gateway-custody/store"
	"github.com/ChainSafe/gateway-custody/wire"
)

// AddDelegate authorizes delegate to sign burn intents against the
// depositor's balance in token. Idempotent: re-adding an authorized delegate
// or re-authorizing a revoked one both succeed, and every call emits.
func (w *Wallet) AddDelegate(depositor, token, delegate wire.Address) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.requireNotPaused(); err != nil {
		return err
	}
	if delegate.IsZero() {
		return ErrInvalidDelegate
	}
	if delegate == depositor {
		return ErrSelfDelegation
	}
	if err := w.requireSupportedToken(token); err != nil {
		return err
	}
	if err := w.requireNotDenylisted(depositor, delegate); err != nil {
		return err
	}

	batch := w.db.NewBatch()
	err := w.delegates.StoreDelegation(batch, &store.Delegation{
		Token:     token,
		Depositor: depositor,
		Signer:    delegate,
		Status:    store.DelegationAuthorized,
	})
	if err != nil {
		return err
	}
	err = batch.Commit()
	if err != nil {
		return err
	}

	w.sink.Emit(events.DelegateAdded{
		Token:     token,
		Depositor: depositor,
		Delegate:  delegate,
	})
	return nil
}

// RemoveDelegate revokes a delegation. Revoking an already-revoked record is
// a no-op without an event; a record that never existed cannot be revoked.
func (w *Wallet) RemoveDelegate(depositor, token, delegate wire.Address) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.requireNotPaused(); err != nil {
		return err
	}
	if delegate.IsZero() {
		return ErrInvalidDelegate
	}
	if err := w.requireSupportedToken(token); err != nil {
		return err
	}
	if err := w.requireNotDenylisted(depositor); err != nil {
		return err
	}

	delegation, err := w.delegates.Delegation(token, depositor, delegate)
	if err != nil {
		return err
	}
	if delegation == nil {
		return ErrAccountNotInitialized
	}
	if delegation.Status == store.DelegationRevoked {
		return nil
	}

	delegation.Status = store.DelegationRevoked
	batch := w.db.NewBatch()
	err = w.delegates.StoreDelegation(batch, delegation)
	if err != nil {
		return err
	}
	err = batch.Commit()
	if err != nil {
		return err
	}

	w.sink.Emit(events.DelegateRemoved{
		Token:     token,
		Depositor: depositor,
		Delegate:  delegate,
	})
	return nil
}
