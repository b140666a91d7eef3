// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/instruction"
)

// Service - ledger operations offered to clients
type Service interface {
	Airdrop(account.Account, uint64) (uint64, error)
	Balance(account.Account) uint64
	Chain() string
	Fetch(account.Account) (*Account, error)
	List(*account.Account, int) ([]*Account, *account.Account, error)
	Statistics() Statistics
	Submit(instruction.Packed) (*Receipt, error)
}

var _ Service = (*Ledger)(nil)
