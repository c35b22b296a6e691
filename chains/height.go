// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

// Package chains provides the block height source the ledgers consult for
// intent expiry and withdrawal maturity.
package chains

import (
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
)

// HeightProvider reports the current block height of the chain a ledger
// anchors its deadlines to.
type HeightProvider interface {
	CurrentHeight() (uint64, error)
}

// SlotClock derives the current height from wall-clock time, treating the
// chain as producing one slot per fixed interval since a genesis instant.
type SlotClock struct {
	genesis      time.Time
	slotDuration time.Duration
}

func NewSlotClock(genesis time.Time, slotDuration time.Duration) (*SlotClock, error) {
	if slotDuration <= 0 {
		return nil, errors.New("slot duration must be positive")
	}
	return &SlotClock{genesis: genesis, slotDuration: slotDuration}, nil
}

func (sc *SlotClock) CurrentHeight() (uint64, error) {
	elapsed := time.Since(sc.genesis)
	if elapsed < 0 {
		return 0, nil
	}
	return uint64(elapsed / sc.slotDuration), nil
}

// StaticHeight is a manually advanced height source. Used in tests.
type StaticHeight struct {
	height atomic.Uint64
}

func NewStaticHeight(height uint64) *StaticHeight {
	sh := &StaticHeight{}
	sh.height.Store(height)
	return sh
}

func (sh *StaticHeight) CurrentHeight() (uint64, error) {
	return sh.height.Load(), nil
}

func (sh *StaticHeight) Set(height uint64) {
	sh.height.Store(height)
}
