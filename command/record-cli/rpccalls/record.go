// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"time"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/dispatch"
	"github.com/bitmark-inc/recordd/instruction"
	"github.com/bitmark-inc/recordd/ledger"
	"github.com/bitmark-inc/recordd/rpc/record"
)

// SubmitData - an operation to sign and send
type SubmitData struct {
	ProgramId account.Account
	Operation string
	Accounts  []instruction.AccountMeta
	Arguments []string
	Keys      []*account.PrivateKey
}

// Submit - sign an instruction and send it
//
// a receipt with a failure status is not an error
func (c *Client) Submit(data *SubmitData) (*ledger.Receipt, error) {

	ins := &instruction.Instruction{
		ProgramId: data.ProgramId,
		Operation: data.Operation,
		Accounts:  data.Accounts,
		Arguments: dispatch.EncodeArguments(data.Arguments...),
		Nonce:     uint64(time.Now().UnixNano()),
	}

	err := ins.Sign(data.Keys...)
	if nil != err {
		return nil, err
	}

	packed, err := ins.Pack()
	if nil != err {
		return nil, err
	}

	arguments := record.SubmitArguments{
		Instruction: packed,
	}
	var reply ledger.Receipt
	if err := c.call("Record.Submit", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Fetch - decoded record at an address
func (c *Client) Fetch(address account.Account) (*ledger.Account, error) {
	arguments := record.FetchArguments{
		Address: address,
	}
	var reply ledger.Account
	if err := c.call("Record.Fetch", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// List - one page of records
func (c *Client) List(after *account.Account, count int) (*record.ListReply, error) {
	arguments := record.ListArguments{
		After: after,
		Count: count,
	}
	var reply record.ListReply
	if err := c.call("Record.List", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Balance - balance of an address
func (c *Client) Balance(address account.Account) (*record.BalanceReply, error) {
	arguments := record.BalanceArguments{
		Address: address,
	}
	var reply record.BalanceReply
	if err := c.call("Record.Balance", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Airdrop - request development funds
func (c *Client) Airdrop(address account.Account, amount uint64) (*record.BalanceReply, error) {
	arguments := record.AirdropArguments{
		Address: address,
		Amount:  amount,
	}
	var reply record.BalanceReply
	if err := c.call("Record.Airdrop", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
