// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program

import (
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/layout"
)

// Read - snapshot of an existing record
func (p *Program) Read(host Host, target *AccountRef) (*layout.Record, error) {

	record, err := p.load(target)
	if nil != err {
		return nil, err
	}

	if p.schema.HasCounter() {
		host.Logf("Current %s: %q (accessed %d times)", p.schema.Name(), record.Payload, record.Count)
	} else {
		host.Logf("Current %s: %q owner: %s", p.schema.Name(), record.Payload, record.Owner)
	}
	return record, nil
}

// Decode - unpack stored bytes outside of an invocation
func (p *Program) Decode(data []byte) (*layout.Record, error) {
	if 0 == len(data) {
		return nil, fault.NotFound
	}
	return p.schema.Unpack(data)
}

func (p *Program) load(target *AccountRef) (*layout.Record, error) {
	if nil == target {
		return nil, fault.MissingAccount
	}
	return p.Decode(target.Data)
}
