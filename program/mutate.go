// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program

import (
	"math"

	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/layout"
)

// Mutate - replace the payload of an existing record
//
// caller may be nil when the record type accepts mutation from anyone;
// on any error target.Data is left untouched
func (p *Program) Mutate(host Host, target *AccountRef, caller *AccountRef, payload string) (*Change, error) {

	previous, err := p.load(target)
	if nil != err {
		return nil, err
	}

	if !target.IsWritable {
		return nil, fault.NotMutable
	}

	switch p.mutation {
	case OwnerOnly:
		if nil == caller || !caller.IsSigner || caller.Address != previous.Owner {
			return nil, fault.Unauthorized
		}
	case Anyone:
	default:
		return nil, fault.InvalidMutationPolicy
	}

	if err := p.schema.CheckPayload(payload); nil != err {
		return nil, err
	}

	current := &layout.Record{
		Owner:   previous.Owner,
		Payload: payload,
		Count:   previous.Count,
	}
	if p.schema.HasCounter() {
		if math.MaxUint64 == previous.Count {
			return nil, fault.CounterOverflow
		}
		current.Count += 1
	}

	packed, err := p.schema.Pack(current)
	if nil != err {
		return nil, err
	}

	copy(target.Data, packed)

	if p.schema.HasCounter() {
		host.Logf("updated %s from: %q to: %q (count: %d)", p.schema.Name(), previous.Payload, current.Payload, current.Count)
	} else {
		host.Logf("updated %s from: %q to: %q", p.schema.Name(), previous.Payload, current.Payload)
	}
	p.log.Debugf("mutated: %s  count: %d", target.Address, current.Count)

	c := &Change{
		Address:  target.Address,
		Previous: previous,
		Current:  current,
	}
	return c, nil
}
