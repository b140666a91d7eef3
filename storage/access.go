// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/recordd/fault"
)

// Access - staged access to a database
type Access interface {
	Abort()
	Begin() error
	Commit() error
	Delete([]byte)
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	InUse() bool
	Iterator(*ldb_util.Range) iterator.Iterator
	Put([]byte, []byte)
}

type accessData struct {
	sync.Mutex
	inUse bool
	db    *leveldb.DB
	batch *leveldb.Batch
	cache *dbCache
}

func newDA(db *leveldb.DB, batch *leveldb.Batch, cache *dbCache) *accessData {
	return &accessData{
		inUse: false,
		db:    db,
		batch: batch,
		cache: cache,
	}
}

func (d *accessData) Begin() error {
	d.Lock()
	defer d.Unlock()

	if d.inUse {
		return fault.TransactionInUse
	}

	d.inUse = true
	return nil
}

func (d *accessData) Put(key []byte, value []byte) {
	stored := make([]byte, len(value))
	copy(stored, value)
	d.cache.set(dbPut, string(key), stored)
	d.batch.Put(key, stored)
}

func (d *accessData) Delete(key []byte) {
	d.cache.set(dbDelete, string(key), nil)
	d.batch.Delete(key)
}

// Commit - write the batch; cached entries now match the database
func (d *accessData) Commit() error {
	d.Lock()
	defer d.Unlock()

	err := d.db.Write(d.batch, nil)
	if nil != err {
		d.batch.Reset()
		d.cache.clear()
		d.inUse = false
		return err
	}
	d.batch.Reset()
	d.inUse = false
	return nil
}

// Abort - discard the batch and everything it staged
func (d *accessData) Abort() {
	d.Lock()
	defer d.Unlock()

	d.batch.Reset()
	d.cache.clear()
	d.inUse = false
}

func (d *accessData) Get(key []byte) ([]byte, error) {
	data, found := d.cache.get(string(key))
	if found {
		if dbDelete == data.op {
			return nil, leveldb.ErrNotFound
		}
		return data.value, nil
	}

	value, err := d.db.Get(key, nil)
	if nil != err {
		return nil, err
	}
	d.cache.set(dbRead, string(key), value)
	return value, nil
}

func (d *accessData) Has(key []byte) (bool, error) {
	data, found := d.cache.get(string(key))
	if found {
		return dbDelete != data.op, nil
	}
	return d.db.Has(key, nil)
}

func (d *accessData) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}

func (d *accessData) InUse() bool {
	d.Lock()
	defer d.Unlock()
	return d.inUse
}
