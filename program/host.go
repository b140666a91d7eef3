// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program

import (
	"github.com/bitmark-inc/recordd/account"
)

// AccountRef - an account resolved by the host for one invocation
//
// the flags are the capabilities the host granted; handlers check them
// again rather than assume the host did
type AccountRef struct {
	Address          account.Account
	IsSigner         bool // a valid signature by Address covers the invocation
	IsWritable       bool // changes to Data will be committed
	IsNewlyAllocated bool // storage was reserved during this invocation
	Data             []byte
}

// Host - services a program needs from its runtime
type Host interface {
	// Allocate - reserve capacity bytes at target, funded by payer
	//
	// on success target.Data is a zero filled slice of capacity bytes
	// and target.IsNewlyAllocated is set; the cost is debited from
	// payer; fails with fault.InsufficientFunds if payer cannot cover it
	Allocate(payer *AccountRef, target *AccountRef, capacity int) error

	// Logf - add a line to the invocation log
	Logf(format string, arguments ...interface{})
}
