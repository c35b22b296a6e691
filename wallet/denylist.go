// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package wallet

import (
	"github.com/ChainSafe/gateway-custody/events"
	"github.com/ChainSafe/gateway-custody/wire"
)

// Denylist bars addr from every ledger-mutating operation that names it.
// Idempotent, and intentionally available while paused.
func (w *Wallet) Denylist(caller, addr wire.Address) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if caller != w.state.Denylister {
		return ErrNotDenylister
	}

	batch := w.db.NewBatch()
	w.denylist.StoreDenylisted(batch, addr)
	err := batch.Commit()
	if err != nil {
		return err
	}

	w.sink.Emit(events.Denylisted{Address: addr})
	return nil
}

// Undenylist clears addr's entry. Fails when no entry exists, there is
// nothing to close.
func (w *Wallet) Undenylist(caller, addr wire.Address) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if caller != w.state.Denylister {
		return ErrNotDenylister
	}

	denied, err := w.denylist.IsDenylisted(addr)
	if err != nil {
		return err
	}
	if !denied {
		return ErrAccountNotInitialized
	}

	batch := w.db.NewBatch()
	w.denylist.DeleteDenylisted(batch, addr)
	err = batch.Commit()
	if err != nil {
		return err
	}

	w.sink.Emit(events.UnDenylisted{Address: addr})
	return nil
}

// IsDenylisted reports addr's current denylist status.
func (w *Wallet) IsDenylisted(addr wire.Address) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.denylist.IsDenylisted(addr)
}
