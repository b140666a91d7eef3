// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/command/record-cli/rpccalls"
	"github.com/bitmark-inc/recordd/instruction"
	"github.com/bitmark-inc/recordd/ledger"
)

// allocation reply adds the new address to the receipt
type allocateReply struct {
	Address account.Account `json:"address"`
	Receipt *ledger.Receipt `json:"receipt"`
}

func runAllocate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	recordName := c.String("record")
	if "" == recordName {
		return ErrRequiredRecordName
	}

	private, err := checkPrivate(c, m)
	if nil != err {
		return err
	}

	// fresh address, it only signs the allocation
	target, err := account.NewPrivateKey()
	if nil != err {
		return err
	}

	arguments := []string{}
	if c.IsSet("payload") {
		arguments = append(arguments, c.String("payload"))
	}

	if m.verbose {
		fmt.Fprintf(m.e, "record: %s\n", recordName)
		fmt.Fprintf(m.e, "payer: %s\n", private.Account)
		fmt.Fprintf(m.e, "address: %s\n", target.Account())
	}

	client, err := connect(c, m)
	if nil != err {
		return err
	}
	defer client.Close()

	programId, err := client.ProgramId(recordName)
	if nil != err {
		return err
	}

	receipt, err := client.Submit(&rpccalls.SubmitData{
		ProgramId: programId,
		Operation: "initialize",
		Accounts: []instruction.AccountMeta{
			{Address: target.Account(), IsSigner: true, IsWritable: true},
			{Address: private.Account, IsSigner: true, IsWritable: true},
		},
		Arguments: arguments,
		Keys:      []*account.PrivateKey{private.PrivateKey, target},
	})
	if nil != err {
		return err
	}

	return printJson(m.w, allocateReply{
		Address: target.Account(),
		Receipt: receipt,
	})
}

func runUpdate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	address, err := checkAddress(c.String("address"), m.config)
	if nil != err {
		return err
	}

	if !c.IsSet("payload") {
		return ErrRequiredPayload
	}
	payload := c.String("payload")

	accounts := []instruction.AccountMeta{
		{Address: address, IsSigner: false, IsWritable: true},
	}
	keys := []*account.PrivateKey{}

	if !c.Bool("unsigned") {
		private, err := checkPrivate(c, m)
		if nil != err {
			return err
		}
		accounts = append(accounts, instruction.AccountMeta{Address: private.Account, IsSigner: true, IsWritable: false})
		keys = append(keys, private.PrivateKey)
	}

	client, err := connect(c, m)
	if nil != err {
		return err
	}
	defer client.Close()

	stored, err := client.Fetch(address)
	if nil != err {
		return err
	}

	receipt, err := client.Submit(&rpccalls.SubmitData{
		ProgramId: stored.ProgramId,
		Operation: "update",
		Accounts:  accounts,
		Arguments: []string{payload},
		Keys:      keys,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, receipt)
}

func runRead(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	address, err := checkAddress(c.String("address"), m.config)
	if nil != err {
		return err
	}

	client, err := connect(c, m)
	if nil != err {
		return err
	}
	defer client.Close()

	stored, err := client.Fetch(address)
	if nil != err {
		return err
	}

	receipt, err := client.Submit(&rpccalls.SubmitData{
		ProgramId: stored.ProgramId,
		Operation: "get",
		Accounts: []instruction.AccountMeta{
			{Address: address, IsSigner: false, IsWritable: false},
		},
	})
	if nil != err {
		return err
	}

	return printJson(m.w, receipt)
}

func runGreet(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	recordName := c.String("record")
	if "" == recordName {
		return ErrRequiredRecordName
	}

	client, err := connect(c, m)
	if nil != err {
		return err
	}
	defer client.Close()

	programId, err := client.ProgramId(recordName)
	if nil != err {
		return err
	}

	receipt, err := client.Submit(&rpccalls.SubmitData{
		ProgramId: programId,
		Operation: "greet",
	})
	if nil != err {
		return err
	}

	return printJson(m.w, receipt)
}
