// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - this is to setup and handle all of the incoming JSON RPC requests
// from clients requiring recordd services
//
// standard golang RPC services can be used on the client side to
// access these services:
//
//   Record.Submit   apply a signed instruction, returns a receipt
//   Record.Fetch    decode the record at an address
//   Record.List     page through all records
//   Record.Balance  balance of an address
//   Record.Airdrop  development funds (not on live chain)
//   Node.Info       chain, version and record types
package rpc

//go:generate mockgen -destination=mocks/ledger.go -package=mocks github.com/bitmark-inc/recordd/ledger Service
//go:generate mockgen -destination=mocks/registry.go -package=mocks github.com/bitmark-inc/recordd/dispatch Registry
