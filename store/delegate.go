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

var delegateKey = "delegate:%s:%s:%s"

type DelegationStatus string

var (
	DelegationAuthorized DelegationStatus = "authorized"
	DelegationRevoked    DelegationStatus = "revoked"
)

// Delegation records that a depositor once allowed a signer to authorize
// burns from their balance in a token. Records are never deleted, a revoked
// delegation still proves past authorization.
type Delegation struct {
	Token     wire.Address     `json:"token"`
	Depositor wire.Address     `json:"depositor"`
	Signer    wire.Address     `json:"signer"`
	Status    DelegationStatus `json:"status"`
}

type DelegateStore struct {
	db lvldb.KeyValueReaderWriter
}

func NewDelegateStore(db lvldb.KeyValueReaderWriter) *DelegateStore {
	return &DelegateStore{db: db}
}

// Delegation fetches the record for a (token, depositor, signer) triple.
// Returns nil without error when no record was ever created.
func (ds *DelegateStore) Delegation(token, depositor, signer wire.Address) (*Delegation, error) {
	v, err := ds.db.GetByKey([]byte(fmt.Sprintf(delegateKey, token.Hex(), depositor.Hex(), signer.Hex())))
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	d := &Delegation{}
	err = json.Unmarshal(v, d)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// StoreDelegation queues the record into batch under its triple key.
func (ds *DelegateStore) StoreDelegation(batch lvldb.Batch, d *Delegation) error {
	v, err := json.Marshal(d)
	if err != nil {
		return err
	}

	batch.SetByKey([]byte(fmt.Sprintf(delegateKey, d.Token.Hex(), d.Depositor.Hex(), d.Signer.Hex())), v)
	return nil
}
