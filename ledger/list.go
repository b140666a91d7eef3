// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/storage"
)

// maximum accounts returned by one List call
const MaximumListCount = 100

// List - decoded accounts in address order
//
// if after is not nil, listing starts with the first address greater
// than it; accounts that cannot be decoded are skipped and logged, so a
// page may hold fewer than count accounts while more remain
//
// next is the last address scanned when the scan filled count keys,
// nil when the pool is exhausted
func (l *Ledger) List(after *account.Account, count int) ([]*Account, *account.Account, error) {
	if count > MaximumListCount {
		count = MaximumListCount
	}

	cursor := storage.Pool.Accounts.NewFetchCursor()
	if nil != after {
		cursor.Seek(append(after.Bytes(), 0x00))
	}

	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, nil, err
	}

	var next *account.Account
	if count == len(elements) {
		last, err := account.FromBytes(elements[len(elements)-1].Key)
		if nil != err {
			return nil, nil, err
		}
		next = &last
	}

	accounts := make([]*Account, 0, len(elements))
	for _, e := range elements {
		address, err := account.FromBytes(e.Key)
		if nil != err {
			l.log.Warnf("list: invalid key: %x  error: %s", e.Key, err)
			continue
		}
		a, err := l.decode(address, e.Value)
		if nil != err {
			l.log.Warnf("list: account: %s  error: %s", address, err)
			continue
		}
		accounts = append(accounts, a)
	}
	return accounts, next, nil
}
