// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/chain"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/layout"
	"github.com/bitmark-inc/recordd/storage"
)

// Account - decoded view of a stored account
type Account struct {
	Address    account.Account `json:"address"`
	ProgramId  account.Account `json:"programId"`
	RecordName string          `json:"recordName"`
	Capacity   int             `json:"capacity"`
	Balance    uint64          `json:"balance,string"`
	Record     *layout.Record  `json:"record"`
}

// Fetch - read and decode the record stored at an address
func (l *Ledger) Fetch(address account.Account) (*Account, error) {
	stored := storage.Pool.Accounts.Get(address.Bytes())
	if nil == stored {
		return nil, fault.NotFound
	}
	return l.decode(address, stored)
}

// decode a stored value: owning program followed by record data
func (l *Ledger) decode(address account.Account, stored []byte) (*Account, error) {
	if len(stored) < account.PublicKeySize {
		return nil, fault.CorruptRecord
	}

	owner, err := account.FromBytes(stored[:account.PublicKeySize])
	if nil != err {
		return nil, err
	}

	p, ok := l.dispatcher.Program(owner)
	if !ok {
		return nil, fault.ProgramNotFound
	}

	record, err := p.Decode(stored[account.PublicKeySize:])
	if nil != err {
		return nil, err
	}

	a := &Account{
		Address:    address,
		ProgramId:  owner,
		RecordName: p.Schema().Name(),
		Capacity:   p.Schema().Capacity(),
		Balance:    l.Balance(address),
		Record:     record,
	}
	return a, nil
}

// Balance - current balance, zero for unknown addresses
func (l *Ledger) Balance(address account.Account) uint64 {
	balance, _ := storage.Pool.Balances.GetN(address.Bytes())
	return balance
}

// Airdrop - credit an address on a development chain
func (l *Ledger) Airdrop(address account.Account, amount uint64) (uint64, error) {
	if chain.IsLive(l.chain) {
		return 0, fault.NotAvailableOnLive
	}
	if 0 == amount || amount > l.airdropLimit {
		return 0, fault.InvalidCount
	}

	l.Lock()
	defer l.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return 0, err
	}

	balance, _ := trx.GetN(storage.Pool.Balances, address.Bytes())
	if balance+amount < balance {
		trx.Abort()
		return 0, fault.CounterOverflow
	}
	balance += amount
	trx.PutN(storage.Pool.Balances, address.Bytes(), balance)

	err = trx.Commit()
	if nil != err {
		trx.Abort()
		return 0, err
	}

	l.log.Infof("airdrop: %d to: %s  balance: %d", amount, address, balance)
	return balance, nil
}
