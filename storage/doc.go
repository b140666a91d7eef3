// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++         = concatenation of byte data
// 3. address    = 32 byte ed25519 public key
// 4. program    = address of the program owning an account
// 5. balance    = big endian uint64 (8 bytes)
// 6. id         = SHA3-256 of a packed instruction
//
// Accounts:
//
//   A ++ address             - allocated account
//                              data: program ++ record bytes
//
// Balances:
//
//   B ++ address             - spendable balance
//                              data: balance
//
// Processed:
//
//   P ++ instruction id      - instructions already applied
//                              data: unix time (big endian uint64)
//
// Testing:
//   Z ++ key                 - testing data
package storage

//go:generate mockgen -destination=mocks/handle.go -package=mocks github.com/bitmark-inc/recordd/storage Handle,Transaction
