// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package wallet

import (
	"github.com/ChainSafe/gateway-custody/events"
	"github.com/ChainSafe/gateway-custody/wire"
)

// InitiateWithdrawal queues amount of the depositor's available balance for
// release. Repeat calls accumulate into the withdrawing bucket and push the
// maturity deadline forward. Queued funds stay burnable until withdrawn.
func (w *Wallet) InitiateWithdrawal(depositor, token wire.Address, amount uint64) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.requireNotPaused(); err != nil {
		return err
	}
	if amount == 0 {
		return ErrInvalidAmount
	}
	if err := w.requireSupportedToken(token); err != nil {
		return err
	}
	if err := w.requireNotDenylisted(depositor); err != nil {
		return err
	}

	deposit, err := w.deposits.Deposit(token, depositor)
	if err != nil {
		return err
	}
	if amount > deposit.AvailableAmount {
		return ErrInsufficientDepositBalance
	}

	height, err := w.height.CurrentHeight()
	if err != nil {
		return err
	}

	deposit.AvailableAmount -= amount
	deposit.WithdrawingAmount += amount
	deposit.WithdrawalBlock = height + w.state.WithdrawalDelay

	batch := w.db.NewBatch()
	err = w.deposits.StoreDeposit(batch, token, depositor, deposit)
	if err != nil {
		return err
	}
	err = batch.Commit()
	if err != nil {
		return err
	}

	w.sink.Emit(events.WithdrawalInitiated{
		Token:              token,
		Depositor:          depositor,
		Value:              amount,
		RemainingAvailable: deposit.AvailableAmount,
		TotalWithdrawing:   deposit.WithdrawingAmount,
		WithdrawalBlock:    deposit.WithdrawalBlock,
	})
	return nil
}

// Withdraw releases the depositor's entire withdrawing balance once the
// maturity deadline has passed. The available balance is untouched.
func (w *Wallet) Withdraw(depositor, token wire.Address) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.requireNotPaused(); err != nil {
		return err
	}
	if err := w.requireSupportedToken(token); err != nil {
		return err
	}
	if err := w.requireNotDenylisted(depositor); err != nil {
		return err
	}

	deposit, err := w.deposits.Deposit(token, depositor)
	if err != nil {
		return err
	}
	if deposit.WithdrawingAmount == 0 {
		return ErrNoWithdrawalInProgress
	}

	height, err := w.height.CurrentHeight()
	if err != nil {
		return err
	}
	if height < deposit.WithdrawalBlock {
		return ErrWithdrawalDelayNotElapsed
	}

	value := deposit.WithdrawingAmount
	err = w.tokens.TransferOut(token, depositor, value)
	if err != nil {
		return err
	}

	deposit.WithdrawingAmount = 0
	deposit.WithdrawalBlock = 0

	batch := w.db.NewBatch()
	err = w.deposits.StoreDeposit(batch, token, depositor, deposit)
	if err != nil {
		return err
	}
	err = batch.Commit()
	if err != nil {
		return err
	}

	w.sink.Emit(events.WithdrawalCompleted{
		Token:     token,
		Depositor: depositor,
		Value:     value,
	})
	return nil
}
