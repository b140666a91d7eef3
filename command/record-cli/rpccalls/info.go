// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/rpc/node"
)

// GetInfo - request status from recordd
func (c *Client) GetInfo() (*node.InfoReply, error) {
	var reply node.InfoReply
	if err := c.call("Node.Info", node.InfoArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ProgramId - find the program serving a record type
func (c *Client) ProgramId(recordName string) (account.Account, error) {
	info, err := c.GetInfo()
	if nil != err {
		return account.Account{}, err
	}
	for _, p := range info.Programs {
		if p.RecordName == recordName {
			return p.Id, nil
		}
	}
	return account.Account{}, fault.ProgramNotFound
}
