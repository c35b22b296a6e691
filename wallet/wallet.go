// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

// Package wallet implements the source-chain custody ledger: deposits, the
// timed withdrawal queue, delegated signing, the denylist and the burn
// authorization engine.
package wallet

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

// StorePrefix namespaces all wallet-side keys, including the replay space.
const StorePrefix = "wallet"

// MaxSupportedTokens and MaxBurnSigners cap the administrative lists.
const (
	MaxSupportedTokens = 10
	MaxBurnSigners     = 10
)

// Config seeds a ledger that was never initialized. An existing ledger loads
// its state from the store and ignores the role fields here.
type Config struct {
	Domain          uint32
	Identity        wire.Address
	Owner           wire.Address
	Pauser          wire.Address
	Denylister      wire.Address
	TokenController wire.Address
	FeeRecipient    wire.Address
	WithdrawalDelay uint64
}

// Wallet is the custody ledger. All operations take the ledger mutex, stage
// their writes into one leveldb batch and emit events only after the batch
// commits, so a failed operation leaves no trace.
type Wallet struct {
	mu sync.Mutex

	db         lvldb.KeyValueReaderWriter
	identity   wire.Address
	state      *store.LedgerState
	stateStore *store.StateStore
	deposits   *store.DepositStore
	delegates  *store.DelegateStore
	denylist   *store.DenylistStore
	usedHashes *store.UsedHashStore

	tokens tokens.Backend
	height chains.HeightProvider
	sink   events.Sink
}

func NewWallet(
	db lvldb.KeyValueReaderWriter,
	backend tokens.Backend,
	height chains.HeightProvider,
	sink events.Sink,
	cfg Config,
) (*Wallet, error) {
	w := &Wallet{
		db:         db,
		identity:   cfg.Identity,
		stateStore: store.NewStateStore(db, StorePrefix),
		deposits:   store.NewDepositStore(db),
		delegates:  store.NewDelegateStore(db),
		denylist:   store.NewDenylistStore(db),
		usedHashes: store.NewUsedHashStore(db, StorePrefix),
		tokens:     backend,
		height:     height,
		sink:       sink,
	}

	state, err := w.stateStore.State()
	if err != nil {
		return nil, err
	}
	if state == nil {
		state = &store.LedgerState{
			Domain:          cfg.Domain,
			Owner:           cfg.Owner,
			Pauser:          cfg.Pauser,
			Denylister:      cfg.Denylister,
			TokenController: cfg.TokenController,
			FeeRecipient:    cfg.FeeRecipient,
			WithdrawalDelay: cfg.WithdrawalDelay,
		}
		batch := db.NewBatch()
		err = w.stateStore.StoreState(batch, state)
		if err != nil {
			return nil, err
		}
		err = batch.Commit()
		if err != nil {
			return nil, err
		}
		sink.Emit(events.WalletInitialized{Domain: state.Domain})
		log.Info().Uint32("domain", state.Domain).Msg("Initialized gateway wallet ledger")
	}
	w.state = state
	return w, nil
}

// Domain returns the chain domain this ledger serves.
func (w *Wallet) Domain() uint32 {
	return w.state.Domain
}

// Identity returns the 32-byte contract identity burn intents must name.
func (w *Wallet) Identity() wire.Address {
	return w.identity
}

// SupportedTokens returns a copy of the supported token list.
func (w *Wallet) SupportedTokens() []wire.Address {
	w.mu.Lock()
	defer w.mu.Unlock()
	supported := make([]wire.Address, len(w.state.Tokens))
	copy(supported, w.state.Tokens)
	return supported
}

// Deposit fetches the custody record for a (token, depositor) pair.
func (w *Wallet) Deposit(token, depositor wire.Address) (*store.Deposit, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.deposits.Deposit(token, depositor)
}

func (w *Wallet) requireNotPaused() error {
	if w.state.Paused {
		return ErrProgramPaused
	}
	return nil
}

func (w *Wallet) requireSupportedToken(token wire.Address) error {
	if !w.state.SupportsToken(token) {
		return ErrTokenNotSupported
	}
	return nil
}

func (w *Wallet) requireNotDenylisted(addrs ...wire.Address) error {
	for _, addr := range addrs {
		denied, err := w.denylist.IsDenylisted(addr)
		if err != nil {
			return err
		}
		if denied {
			return ErrAccountDenylisted
		}
	}
	return nil
}

// writeState persists the cached state into batch.
func (w *Wallet) writeState(batch lvldb.Batch) error {
	return w.stateStore.StoreState(batch, w.state)
}
