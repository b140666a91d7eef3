// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dispatch

import (
	"github.com/bitmark-inc/recordd/fault"
)

// Operation - a handler selected by name
type Operation int

// operations
const (
	Allocate Operation = iota
	Mutate
	Read
	Greet

	operationCount // must be last
)

// accepted names, first is canonical
var operationNames = [operationCount][]string{
	Allocate: {"initialize", "allocate"},
	Mutate:   {"update", "mutate"},
	Read:     {"get", "read"},
	Greet:    {"greet"},
}

// account roles in declared order, optional ones marked by minimum
type shape struct {
	minimumAccounts int
	maximumAccounts int
	minimumStrings  int
	maximumStrings  int
}

var operationShapes = [operationCount]shape{
	Allocate: {minimumAccounts: 2, maximumAccounts: 2, minimumStrings: 0, maximumStrings: 1}, // [target, payer]
	Mutate:   {minimumAccounts: 1, maximumAccounts: 2, minimumStrings: 1, maximumStrings: 1}, // [target, caller?]
	Read:     {minimumAccounts: 1, maximumAccounts: 1},                                       // [target]
	Greet:    {},                                                                             // []
}

// OperationFromString - look up an operation by any of its names
func OperationFromString(name string) (Operation, error) {
	for op, names := range operationNames {
		for _, n := range names {
			if n == name {
				return Operation(op), nil
			}
		}
	}
	return 0, fault.InvalidOperation
}

func (op Operation) String() string {
	if op < 0 || op >= operationCount {
		return "unknown"
	}
	return operationNames[op][0]
}
