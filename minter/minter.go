// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

// Package minter implements the destination-chain ledger: it verifies
// attester-signed mint attestation sets and releases custodied funds to
// recipients, each transfer exactly once.
package minter

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/ChainSafe/gateway-custody/chains"
	"github.com/ChainSafe/gateway-custody/events"
	"github.com/ChainSafe/gateway-custody/lvldb"
	"github.com/ChainSafe/gateway-custody/store"
	"github.com/ChainSafe/gateway-custody/tokens"
	"github.com/ChainSafe/gateway-custody/wire"
)

// StorePrefix namespaces all minter-side keys. Its replay space is distinct
// from the wallet's, the same transfer spec hash is legitimately consumed
// once on each side.
const StorePrefix = "minter"

const (
	MaxSupportedTokens = 10
	MaxAttesters       = 10
)

// Config seeds a ledger that was never initialized.
type Config struct {
	Domain          uint32
	Identity        wire.Address
	Owner           wire.Address
	Pauser          wire.Address
	TokenController wire.Address
}

// Minter is the destination ledger. Operations follow the wallet's
// discipline: ledger mutex, one leveldb batch, events after commit.
type Minter struct {
	mu sync.Mutex

	db         lvldb.KeyValueReaderWriter
	identity   wire.Address
	state      *store.LedgerState
	stateStore *store.StateStore
	usedHashes *store.UsedHashStore

	tokens tokens.Backend
	height chains.HeightProvider
	sink   events.Sink
}

func NewMinter(
	db lvldb.KeyValueReaderWriter,
	backend tokens.Backend,
	height chains.HeightProvider,
	sink events.Sink,
	cfg Config,
) (*Minter, error) {
	m := &Minter{
		db:         db,
		identity:   cfg.Identity,
		stateStore: store.NewStateStore(db, StorePrefix),
		usedHashes: store.NewUsedHashStore(db, StorePrefix),
		tokens:     backend,
		height:     height,
		sink:       sink,
	}

	state, err := m.stateStore.State()
	if err != nil {
		return nil, err
	}
	if state == nil {
		state = &store.LedgerState{
			Domain:          cfg.Domain,
			Owner:           cfg.Owner,
			Pauser:          cfg.Pauser,
			TokenController: cfg.TokenController,
		}
		batch := db.NewBatch()
		err = m.stateStore.StoreState(batch, state)
		if err != nil {
			return nil, err
		}
		err = batch.Commit()
		if err != nil {
			return nil, err
		}
		sink.Emit(events.MinterInitialized{Domain: state.Domain})
		log.Info().Uint32("domain", state.Domain).Msg("Initialized gateway minter ledger")
	}
	m.state = state
	return m, nil
}

// Domain returns the chain domain this ledger serves.
func (m *Minter) Domain() uint32 {
	return m.state.Domain
}

// Identity returns the 32-byte contract identity attestation sets must name.
func (m *Minter) Identity() wire.Address {
	return m.identity
}

// SupportedTokens returns a copy of the supported token list.
func (m *Minter) SupportedTokens() []wire.Address {
	m.mu.Lock()
	defer m.mu.Unlock()
	supported := make([]wire.Address, len(m.state.Tokens))
	copy(supported, m.state.Tokens)
	return supported
}

func (m *Minter) requireNotPaused() error {
	if m.state.Paused {
		return ErrProgramPaused
	}
	return nil
}

func (m *Minter) commitState() error {
	batch := m.db.NewBatch()
	err := m.stateStore.StoreState(batch, m.state)
	if err != nil {
		return err
	}
	return batch.Commit()
}
