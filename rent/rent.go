// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rent - the balance an allocation must lock up
package rent

import (
	"math/bits"

	"github.com/bitmark-inc/recordd/fault"
)

// defaults
const (
	AccountOverhead    = 128  // bytes charged for every account besides its data
	DefaultPerByteYear = 3480 // units per byte per year
	DefaultYears       = 2    // years of rent a new account must hold
)

// Rate - rent parameters
type Rate struct {
	PerByteYear uint64 `gluamapper:"per_byte_year" json:"per_byte_year"`
	Years       uint64 `gluamapper:"years" json:"years"`
}

// Default - the rate used when configuration is silent
func Default() Rate {
	return Rate{
		PerByteYear: DefaultPerByteYear,
		Years:       DefaultYears,
	}
}

// MinimumBalance - cost of allocating capacity data bytes
//
//   (AccountOverhead + capacity) × PerByteYear × Years
func (r Rate) MinimumBalance(capacity int) (uint64, error) {
	if capacity < 0 {
		return 0, fault.InvalidCount
	}

	hi, perByte := bits.Mul64(r.PerByteYear, r.Years)
	if 0 != hi {
		return 0, fault.CounterOverflow
	}
	hi, total := bits.Mul64(uint64(AccountOverhead+capacity), perByte)
	if 0 != hi {
		return 0, fault.CounterOverflow
	}
	return total, nil
}
