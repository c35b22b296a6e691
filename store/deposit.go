// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package store

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/ChainSafe/gateway-custody/lvldb"
	"github.com/ChainSafe/gateway-custody/wire"
)

var depositKey = "deposit:%s:%s"

// Deposit is one depositor's custody balance in a single token. Available
// funds are burnable, withdrawing funds are queued for release at
// WithdrawalBlock but stay burnable until withdrawn.
type Deposit struct {
	AvailableAmount   uint64 `json:"availableAmount"`
	WithdrawingAmount uint64 `json:"withdrawingAmount"`
	WithdrawalBlock   uint64 `json:"withdrawalBlock"`
}

// Total is the full burnable balance.
func (d *Deposit) Total() uint64 {
	return d.AvailableAmount + d.WithdrawingAmount
}

type DepositStore struct {
	db lvldb.KeyValueReaderWriter
}

func NewDepositStore(db lvldb.KeyValueReaderWriter) *DepositStore {
	return &DepositStore{db: db}
}

// Deposit fetches the balance record for a (token, depositor) pair. A missing
// record reads as a zero balance.
func (ds *DepositStore) Deposit(token, depositor wire.Address) (*Deposit, error) {
	v, err := ds.db.GetByKey([]byte(fmt.Sprintf(depositKey, token.Hex(), depositor.Hex())))
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return &Deposit{}, nil
		}
		return nil, err
	}

	d := &Deposit{}
	err = json.Unmarshal(v, d)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// StoreDeposit queues the updated record into batch. The write lands when the
// caller commits the batch alongside the rest of the operation.
func (ds *DepositStore) StoreDeposit(batch lvldb.Batch, token, depositor wire.Address, d *Deposit) error {
	v, err := json.Marshal(d)
	if err != nil {
		return err
	}

	batch.SetByKey([]byte(fmt.Sprintf(depositKey, token.Hex(), depositor.Hex())), v)
	return nil
}
