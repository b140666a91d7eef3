// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program

import (
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/layout"
)

// Allocate - create a new record at target funded by payer
//
// a nil payload selects the configured default; the target bytes are
// only written once every check and the host allocation have passed
func (p *Program) Allocate(host Host, target *AccountRef, payer *AccountRef, payload *string) (*Change, error) {

	if nil == payer {
		return nil, fault.MissingAccount
	}
	if !payer.IsSigner {
		return nil, fault.Unauthorized
	}
	if !payer.IsWritable {
		return nil, fault.NotMutable
	}

	if nil == target {
		return nil, fault.MissingAccount
	}
	if target.Address == payer.Address {
		return nil, fault.DuplicateAccount
	}
	if !target.IsWritable {
		return nil, fault.NotMutable
	}

	if p.schema.IsAllocated(target.Data) {
		return nil, fault.AlreadyAllocated
	}
	if 0 != len(target.Data) {
		return nil, fault.AddressInUse
	}

	text := p.defaultPayload
	if nil != payload {
		text = *payload
	}

	record := &layout.Record{
		Owner:   payer.Address,
		Payload: text,
		Count:   0,
	}

	// pack first so nothing is reserved for a record that cannot be stored
	packed, err := p.schema.Pack(record)
	if nil != err {
		return nil, err
	}

	capacity := p.schema.Capacity()
	err = host.Allocate(payer, target, capacity)
	if nil != err {
		p.log.Debugf("allocate: %s for payer: %s error: %s", target.Address, payer.Address, err)
		return nil, err
	}
	if len(target.Data) != capacity {
		p.log.Errorf("allocate: %s host reserved: %d bytes expected: %d", target.Address, len(target.Data), capacity)
		return nil, fault.RecordSizeMismatch
	}

	copy(target.Data, packed)

	host.Logf("created %s at: %s owner: %s payload: %q", p.schema.Name(), target.Address, payer.Address, text)
	p.log.Infof("allocated: %s  type: %s  capacity: %d", target.Address, p.schema.Name(), capacity)

	c := &Change{
		Address:  target.Address,
		Previous: nil,
		Current:  record,
	}
	return c, nil
}
