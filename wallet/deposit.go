// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package wallet

import (
	"github.com/ChainSafe/gateway-custody/events"
	"github.com/ChainSafe/gateway-custody/wire"
)

// DepositSelf credits the caller's own custody balance.
func (w *Wallet) DepositSelf(caller, token wire.Address, amount uint64) error {
	return w.DepositFor(caller, token, caller, amount)
}

// DepositFor moves amount of token from the caller into custody and credits
// the beneficiary's available balance.
func (w *Wallet) DepositFor(caller, token, beneficiary wire.Address, amount uint64) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.requireNotPaused(); err != nil {
		return err
	}
	if amount == 0 {
		return ErrInvalidAmount
	}
	if beneficiary.IsZero() {
		return ErrInvalidBeneficiary
	}
	if err := w.requireSupportedToken(token); err != nil {
		return err
	}
	if err := w.requireNotDenylisted(caller, beneficiary); err != nil {
		return err
	}

	deposit, err := w.deposits.Deposit(token, beneficiary)
	if err != nil {
		return err
	}

	err = w.tokens.TransferIn(token, caller, amount)
	if err != nil {
		return err
	}

	deposit.AvailableAmount += amount
	batch := w.db.NewBatch()
	err = w.deposits.StoreDeposit(batch, token, beneficiary, deposit)
	if err != nil {
		return err
	}
	err = batch.Commit()
	if err != nil {
		return err
	}

	w.sink.Emit(events.Deposited{
		Token:     token,
		Depositor: beneficiary,
		Sender:    caller,
		Value:     amount,
	})
	return nil
}
