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

var denylistKey = "denylist:%s"

type DenylistStore struct {
	db lvldb.KeyValueReaderWriter
}

func NewDenylistStore(db lvldb.KeyValueReaderWriter) *DenylistStore {
	return &DenylistStore{db: db}
}

// IsDenylisted reports whether addr currently holds a denylist entry.
func (ds *DenylistStore) IsDenylisted(addr wire.Address) (bool, error) {
	_, err := ds.db.GetByKey([]byte(fmt.Sprintf(denylistKey, addr.Hex())))
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// StoreDenylisted queues a denylist entry for addr into batch.
func (ds *DenylistStore) StoreDenylisted(batch lvldb.Batch, addr wire.Address) {
	batch.SetByKey([]byte(fmt.Sprintf(denylistKey, addr.Hex())), []byte{1})
}

// DeleteDenylisted queues removal of addr's entry into batch.
func (ds *DenylistStore) DeleteDenylisted(batch lvldb.Batch, addr wire.Address) {
	batch.DeleteByKey([]byte(fmt.Sprintf(denylistKey, addr.Hex())))
}
