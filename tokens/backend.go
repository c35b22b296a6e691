// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

// Package tokens abstracts the token movements the ledgers trigger. A real
// deployment backs this with chain transactions, the in-memory backend backs
// tests and local runs.
package tokens

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"

	"github.com/ChainSafe/gateway-custody/wire"
)

var (
	ErrInsufficientFunds        = errors.New("insufficient funds")
	ErrInsufficientTokenCustody = errors.New("insufficient token custody")
)

// Backend executes the token movements a ledger operation decides on. The
// ledger owns all authorization, the backend only moves value.
type Backend interface {
	// TransferIn moves amount of token from the holder into custody.
	TransferIn(token, from wire.Address, amount uint64) error
	// TransferOut releases amount of token from custody to the holder.
	TransferOut(token, to wire.Address, amount uint64) error
	// Burn destroys amount of custodied token.
	Burn(token wire.Address, amount uint64) error
	// Mint creates amount of token for the holder.
	Mint(token, to wire.Address, amount uint64) error
	// Custody reports the total funds held in custody for a token.
	Custody(token wire.Address) (uint64, error)
}

// InMemoryBackend tracks holder balances and per-token custody in memory.
type InMemoryBackend struct {
	mu       sync.Mutex
	balances map[string]uint64
	custody  map[wire.Address]uint64
}

func NewInMemoryBackend() *InMemoryBackend {
	return &InMemoryBackend{
		balances: make(map[string]uint64),
		custody:  make(map[wire.Address]uint64),
	}
}

func balanceKey(token, holder wire.Address) string {
	return fmt.Sprintf("%s:%s", token.Hex(), holder.Hex())
}

// Fund credits a holder directly. Used to seed tests and local runs.
func (b *InMemoryBackend) Fund(token, holder wire.Address, amount uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.balances[balanceKey(token, holder)] += amount
}

// Balance returns the holder's liquid balance outside custody.
func (b *InMemoryBackend) Balance(token, holder wire.Address) uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.balances[balanceKey(token, holder)]
}

func (b *InMemoryBackend) Custody(token wire.Address) (uint64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.custody[token], nil
}

func (b *InMemoryBackend) TransferIn(token, from wire.Address, amount uint64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	key := balanceKey(token, from)
	if b.balances[key] < amount {
		return ErrInsufficientFunds
	}
	b.balances[key] -= amount
	b.custody[token] += amount
	return nil
}

func (b *InMemoryBackend) TransferOut(token, to wire.Address, amount uint64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.custody[token] < amount {
		return ErrInsufficientTokenCustody
	}
	b.custody[token] -= amount
	b.balances[balanceKey(token, to)] += amount
	return nil
}

func (b *InMemoryBackend) Burn(token wire.Address, amount uint64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.custody[token] < amount {
		return ErrInsufficientTokenCustody
	}
	b.custody[token] -= amount
	return nil
}

func (b *InMemoryBackend) Mint(token, to wire.Address, amount uint64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.balances[balanceKey(token, to)] += amount
	return nil
}
