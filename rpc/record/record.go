// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - RPC access to the record programs
package record

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/instruction"
	"github.com/bitmark-inc/recordd/ledger"
	"github.com/bitmark-inc/recordd/rpc/ratelimit"
)

const (
	rateLimitRecord = 200
	rateBurstRecord = 100
)

// Record - type for the RPC
type Record struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  ledger.Service
}

// New - create the record RPC service
func New(log *logger.L, l ledger.Service) *Record {
	return &Record{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitRecord, rateBurstRecord),
		Ledger:  l,
	}
}

// Submit
// ------

// SubmitArguments - a packed and signed instruction in hex
type SubmitArguments struct {
	Instruction instruction.Packed `json:"instruction"`
}

// Submit - apply an instruction
//
// program failures are reported in the receipt status so that the
// program log still reaches the caller; only a missing instruction or
// rate limiting is returned as an RPC error
func (r *Record) Submit(arguments *SubmitArguments, reply *ledger.Receipt) error {

	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	if nil == arguments || 0 == len(arguments.Instruction) {
		return fault.MissingParameters
	}

	receipt, err := r.Ledger.Submit(arguments.Instruction)
	if nil == receipt {
		return err
	}
	if nil != err {
		r.Log.Infof("Record.Submit: id: %s  status: %s  error: %s", receipt.Id, receipt.Status, err)
	}
	*reply = *receipt
	return nil
}

// Fetch
// -----

// FetchArguments - record address
type FetchArguments struct {
	Address account.Account `json:"address"`
}

// Fetch - decode the record stored at an address
func (r *Record) Fetch(arguments *FetchArguments, reply *ledger.Account) error {

	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	if nil == arguments || arguments.Address.IsZero() {
		return fault.MissingParameters
	}

	a, err := r.Ledger.Fetch(arguments.Address)
	if nil != err {
		return err
	}
	*reply = *a
	return nil
}

// List
// ----

// ListArguments - page through all records
type ListArguments struct {
	After *account.Account `json:"after,omitempty"`
	Count int              `json:"count"`
}

// ListReply - a page of records
type ListReply struct {
	Records []*ledger.Account `json:"records"`
	Next    *account.Account  `json:"next,omitempty"` // After value for the next call
}

// List - records in address order
func (r *Record) List(arguments *ListArguments, reply *ListReply) error {

	if nil == arguments {
		return fault.MissingParameters
	}

	if err := ratelimit.LimitN(r.Limiter, arguments.Count, ledger.MaximumListCount, fault.InvalidCount); nil != err {
		return err
	}

	records, next, err := r.Ledger.List(arguments.After, arguments.Count)
	if nil != err {
		return err
	}

	reply.Records = records
	reply.Next = next
	return nil
}

// Balance
// -------

// BalanceArguments - address to query
type BalanceArguments struct {
	Address account.Account `json:"address"`
}

// BalanceReply - current balance of an address
type BalanceReply struct {
	Address account.Account `json:"address"`
	Balance uint64          `json:"balance,string"`
}

// Balance - read the balance of an address
func (r *Record) Balance(arguments *BalanceArguments, reply *BalanceReply) error {

	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	if nil == arguments || arguments.Address.IsZero() {
		return fault.MissingParameters
	}

	reply.Address = arguments.Address
	reply.Balance = r.Ledger.Balance(arguments.Address)
	return nil
}

// Airdrop
// -------

// AirdropArguments - development funds request
type AirdropArguments struct {
	Address account.Account `json:"address"`
	Amount  uint64          `json:"amount,string"`
}

// Airdrop - credit an address on a non-live chain
func (r *Record) Airdrop(arguments *AirdropArguments, reply *BalanceReply) error {

	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	if nil == arguments || arguments.Address.IsZero() {
		return fault.MissingParameters
	}

	balance, err := r.Ledger.Airdrop(arguments.Address, arguments.Amount)
	if nil != err {
		return err
	}

	r.Log.Infof("Record.Airdrop: %s  amount: %d", arguments.Address, arguments.Amount)

	reply.Address = arguments.Address
	reply.Balance = balance
	return nil
}
