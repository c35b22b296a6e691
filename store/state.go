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

var stateKey = "%s:state"

// LedgerState is the administrative configuration of one ledger. The wallet
// side populates BurnSigners, the minter side Attesters.
type LedgerState struct {
	Domain          uint32         `json:"domain"`
	Owner           wire.Address   `json:"owner"`
	PendingOwner    wire.Address   `json:"pendingOwner"`
	Pauser          wire.Address   `json:"pauser"`
	Denylister      wire.Address   `json:"denylister"`
	TokenController wire.Address   `json:"tokenController"`
	FeeRecipient    wire.Address   `json:"feeRecipient"`
	Paused          bool           `json:"paused"`
	WithdrawalDelay uint64         `json:"withdrawalDelay"`
	Tokens          []wire.Address `json:"tokens"`
	BurnSigners     []wire.Address `json:"burnSigners,omitempty"`
	Attesters       []wire.Address `json:"attesters,omitempty"`
}

// SupportsToken reports whether token is on the supported list.
func (s *LedgerState) SupportsToken(token wire.Address) bool {
	return containsAddress(s.Tokens, token)
}

// HasBurnSigner reports whether signer is on the burn signer allow-list.
func (s *LedgerState) HasBurnSigner(signer wire.Address) bool {
	return containsAddress(s.BurnSigners, signer)
}

// HasAttester reports whether signer is on the attester allow-list.
func (s *LedgerState) HasAttester(signer wire.Address) bool {
	return containsAddress(s.Attesters, signer)
}

func containsAddress(list []wire.Address, addr wire.Address) bool {
	for _, a := range list {
		if a == addr {
			return true
		}
	}
	return false
}

// AppendAddress adds addr to list if absent. Reports whether the list grew.
func AppendAddress(list []wire.Address, addr wire.Address) ([]wire.Address, bool) {
	if containsAddress(list, addr) {
		return list, false
	}
	return append(list, addr), true
}

// RemoveAddress drops addr from list. Reports whether anything was removed.
func RemoveAddress(list []wire.Address, addr wire.Address) ([]wire.Address, bool) {
	for i, a := range list {
		if a == addr {
			return append(list[:i], list[i+1:]...), true
		}
	}
	return list, false
}

// StateStore persists one ledger's state as a single JSON document, keyed by
// the ledger prefix.
type StateStore struct {
	db     lvldb.KeyValueReaderWriter
	prefix string
}

func NewStateStore(db lvldb.KeyValueReaderWriter, prefix string) *StateStore {
	return &StateStore{db: db, prefix: prefix}
}

// State fetches the ledger state. Returns nil without error when the ledger
// was never initialized.
func (ss *StateStore) State() (*LedgerState, error) {
	v, err := ss.db.GetByKey([]byte(fmt.Sprintf(stateKey, ss.prefix)))
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	state := &LedgerState{}
	err = json.Unmarshal(v, state)
	if err != nil {
		return nil, err
	}
	return state, nil
}

// StoreState queues the serialized state into batch.
func (ss *StateStore) StoreState(batch lvldb.Batch, state *LedgerState) error {
	v, err := json.Marshal(state)
	if err != nil {
		return err
	}

	batch.SetByKey([]byte(fmt.Sprintf(stateKey, ss.prefix)), v)
	return nil
}
