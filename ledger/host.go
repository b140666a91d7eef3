// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"fmt"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/program"
	"github.com/bitmark-inc/recordd/storage"
)

// services for one instruction, all writes go to the open transaction
type host struct {
	ledger  *Ledger
	trx     storage.Transaction
	program account.Account
	receipt *Receipt
}

// Allocate - reserve storage at target and move the rent from payer
//
// the new address must have signed so that nobody can claim an
// address they do not control
func (h *host) Allocate(payer *program.AccountRef, target *program.AccountRef, capacity int) error {
	if nil == payer || nil == target {
		return fault.MissingAccount
	}
	if !payer.IsSigner || !target.IsSigner {
		return fault.NotSigner
	}
	if !payer.IsWritable || !target.IsWritable {
		return fault.NotMutable
	}
	if h.trx.Has(storage.Pool.Accounts, target.Address.Bytes()) {
		return fault.AddressInUse
	}

	cost, err := h.ledger.rate.MinimumBalance(capacity)
	if nil != err {
		return err
	}

	balance, _ := h.trx.GetN(storage.Pool.Balances, payer.Address.Bytes())
	if balance < cost {
		h.Logf("insufficient funds: balance: %d  required: %d", balance, cost)
		return fault.InsufficientFunds
	}

	locked, _ := h.trx.GetN(storage.Pool.Balances, target.Address.Bytes())
	if locked+cost < locked {
		return fault.CounterOverflow
	}

	h.trx.PutN(storage.Pool.Balances, payer.Address.Bytes(), balance-cost)
	h.trx.PutN(storage.Pool.Balances, target.Address.Bytes(), locked+cost)

	target.Data = make([]byte, capacity)
	target.IsNewlyAllocated = true

	h.ledger.log.Debugf("allocate: %s  capacity: %d  rent: %d  payer: %s", target.Address, capacity, cost, payer.Address)
	return nil
}

// Logf - add a line to the receipt
func (h *host) Logf(format string, arguments ...interface{}) {
	line := fmt.Sprintf(format, arguments...)
	h.receipt.Logs = append(h.receipt.Logs, "Program log: "+line)
	h.ledger.log.Debugf("program: %s  log: %s", h.program, line)
}
