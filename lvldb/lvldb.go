// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package lvldb

import (
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/storage"
)

// KeyValueReaderWriter is the persistence surface the ledger stores build on.
// Reads return leveldb.ErrNotFound for missing keys. Writes that must land
// atomically go through a Batch.
type KeyValueReaderWriter interface {
	GetByKey(key []byte) ([]byte, error)
	SetByKey(key []byte, value []byte) error
	DeleteByKey(key []byte) error
	NewBatch() Batch
}

// Batch accumulates writes and commits them in one atomic leveldb write.
type Batch interface {
	SetByKey(key []byte, value []byte)
	DeleteByKey(key []byte)
	Commit() error
}

type LVLDB struct {
	db *leveldb.DB
}

// NewLvlDB opens (creating if needed) the database at path. The handle stays
// open for the process lifetime, call Close on shutdown.
func NewLvlDB(path string) (*LVLDB, error) {
	ldb, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, errors.Wrap(err, "levelDB.OpenFile fail")
	}
	return &LVLDB{db: ldb}, nil
}

// NewMemLvlDB opens a database backed by in-memory storage. Used in tests.
func NewMemLvlDB() (*LVLDB, error) {
	ldb, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "levelDB.Open fail")
	}
	return &LVLDB{db: ldb}, nil
}

func (db *LVLDB) GetByKey(key []byte) ([]byte, error) {
	return db.db.Get(key, nil)
}

func (db *LVLDB) SetByKey(key []byte, value []byte) error {
	return db.db.Put(key, value, nil)
}

func (db *LVLDB) DeleteByKey(key []byte) error {
	return db.db.Delete(key, nil)
}

func (db *LVLDB) NewBatch() Batch {
	return &lvlBatch{db: db.db, batch: new(leveldb.Batch)}
}

func (db *LVLDB) Close() error {
	return db.db.Close()
}

type lvlBatch struct {
	db    *leveldb.DB
	batch *leveldb.Batch
}

func (b *lvlBatch) SetByKey(key []byte, value []byte) {
	b.batch.Put(key, value)
}

func (b *lvlBatch) DeleteByKey(key []byte) {
	b.batch.Delete(key)
}

func (b *lvlBatch) Commit() error {
	return b.db.Write(b.batch, nil)
}
