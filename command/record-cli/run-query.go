// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/recordd/account"
)

func runFetch(c *cli.Context) error {

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

	reply, err := client.Fetch(address)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	count := c.Int("count")
	if count <= 0 {
		return ErrInvalidCount
	}

	var after *account.Account
	if s := c.String("after"); "" != s {
		a, err := checkAddress(s, m.config)
		if nil != err {
			return err
		}
		after = &a
	}

	if m.verbose {
		fmt.Fprintf(m.e, "after: %v\n", after)
		fmt.Fprintf(m.e, "count: %d\n", count)
	}

	client, err := connect(c, m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.List(after, count)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := checkOwner(c, m)
	if nil != err {
		return err
	}

	client, err := connect(c, m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Balance(owner)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runAirdrop(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := checkOwner(c, m)
	if nil != err {
		return err
	}

	amount := c.Uint64("amount")

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", owner)
		fmt.Fprintf(m.e, "amount: %d\n", amount)
	}

	client, err := connect(c, m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Airdrop(owner, amount)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}
