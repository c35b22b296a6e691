// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package store

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/ChainSafe/gateway-custody/lvldb"
	"github.com/ChainSafe/gateway-custody/wire"
)

var usedHashKey = "%s:usedHash:%s"

// UsedHashStore tracks consumed transfer spec hashes for one ledger. The
// prefix keeps the wallet and minter replay spaces separate, the same hash is
// legitimately consumed once on each side.
type UsedHashStore struct {
	db     lvldb.KeyValueReaderWriter
	prefix string
}

func NewUsedHashStore(db lvldb.KeyValueReaderWriter, prefix string) *UsedHashStore {
	return &UsedHashStore{db: db, prefix: prefix}
}

// IsUsed reports whether hash was already consumed on this ledger.
func (us *UsedHashStore) IsUsed(hash wire.Hash) (bool, error) {
	_, err := us.db.GetByKey([]byte(fmt.Sprintf(usedHashKey, us.prefix, hash.Hex())))
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// StoreUsed queues the consumed marker for hash into batch.
func (us *UsedHashStore) StoreUsed(batch lvldb.Batch, hash wire.Hash) {
	batch.SetByKey([]byte(fmt.Sprintf(usedHashKey, us.prefix, hash.Hex())), []byte{1})
}
