// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package dispatch - route named invocations to program handlers
package dispatch

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/layout"
	"github.com/bitmark-inc/recordd/program"
)

// Invocation - one external call after host admission checks
type Invocation struct {
	ProgramId account.Account
	Operation string
	Accounts  []*program.AccountRef
	Arguments []byte
}

// Result - outcome of an invocation
type Result struct {
	Operation Operation       `json:"-"`
	Status    Status          `json:"status"`
	Change    *program.Change `json:"change,omitempty"`
	Record    *layout.Record  `json:"record,omitempty"`
}

// Counters - successful invocations of a program per operation name
type Counters map[string]uint64

// Registry - read access to the registered programs
type Registry interface {
	Counters(account.Account) Counters
	Programs() []*program.Program
}

type entry struct {
	program *program.Program
	counts  [operationCount]uint64
}

// Dispatcher - registry of programs keyed by program id
type Dispatcher struct {
	sync.RWMutex
	log      *logger.L
	programs map[account.Account]*entry
}

// New - create an empty dispatcher
func New(log *logger.L) *Dispatcher {
	return &Dispatcher{
		log:      log,
		programs: make(map[account.Account]*entry),
	}
}

// Register - add a program, ids must be unique
func (d *Dispatcher) Register(p *program.Program) error {
	d.Lock()
	defer d.Unlock()

	if _, ok := d.programs[p.Id()]; ok {
		return fault.AlreadyRegistered
	}
	d.programs[p.Id()] = &entry{program: p}

	d.log.Infof("registered program: %s  record: %s  capacity: %d  mutation: %s",
		p.Id(), p.Schema().Name(), p.Schema().Capacity(), p.Mutation())
	return nil
}

// Program - find a registered program
func (d *Dispatcher) Program(id account.Account) (*program.Program, bool) {
	d.RLock()
	defer d.RUnlock()

	e, ok := d.programs[id]
	if !ok {
		return nil, false
	}
	return e.program, true
}

// Programs - all registered programs ordered by record name
func (d *Dispatcher) Programs() []*program.Program {
	d.RLock()
	defer d.RUnlock()

	programs := make([]*program.Program, 0, len(d.programs))
	for _, e := range d.programs {
		programs = append(programs, e.program)
	}
	sort.Slice(programs, func(i, j int) bool {
		return programs[i].Schema().Name() < programs[j].Schema().Name()
	})
	return programs
}

// Counters - snapshot of the operation counts of one program
func (d *Dispatcher) Counters(id account.Account) Counters {
	d.RLock()
	defer d.RUnlock()

	c := make(Counters)
	e, ok := d.programs[id]
	if !ok {
		return c
	}
	for op := Operation(0); op < operationCount; op += 1 {
		c[op.String()] = atomic.LoadUint64(&e.counts[op])
	}
	return c
}

// Invoke - decode and run one invocation
//
// the result is never nil and its status always reflects the error
func (d *Dispatcher) Invoke(host program.Host, invocation *Invocation) (*Result, error) {
	result := &Result{}

	op, change, record, err := d.invoke(host, invocation)
	result.Operation = op
	result.Status = StatusOf(err)
	if nil != err {
		d.log.Debugf("invoke: %s error: %s", op, err)
		return result, err
	}

	result.Change = change
	result.Record = record
	return result, nil
}

func (d *Dispatcher) invoke(host program.Host, invocation *Invocation) (Operation, *program.Change, *layout.Record, error) {
	if nil == invocation {
		return 0, nil, nil, fault.MissingParameters
	}

	op, err := OperationFromString(invocation.Operation)
	if nil != err {
		return op, nil, nil, err
	}

	d.RLock()
	e, ok := d.programs[invocation.ProgramId]
	d.RUnlock()
	if !ok {
		return op, nil, nil, fault.ProgramNotFound
	}

	s := operationShapes[op]
	accounts := invocation.Accounts
	if len(accounts) < s.minimumAccounts {
		return op, nil, nil, fault.MissingAccount
	}
	if len(accounts) > s.maximumAccounts {
		return op, nil, nil, fault.InvalidArguments
	}

	arguments, err := DecodeArguments(invocation.Arguments)
	if nil != err {
		return op, nil, nil, err
	}
	if len(arguments) < s.minimumStrings || len(arguments) > s.maximumStrings {
		return op, nil, nil, fault.InvalidArguments
	}

	p := e.program

	var change *program.Change
	var record *layout.Record

	switch op {
	case Allocate:
		var payload *string
		if 1 == len(arguments) {
			payload = &arguments[0]
		}
		change, err = p.Allocate(host, accounts[0], accounts[1], payload)

	case Mutate:
		var caller *program.AccountRef
		if 2 == len(accounts) {
			caller = accounts[1]
		}
		change, err = p.Mutate(host, accounts[0], caller, arguments[0])

	case Read:
		record, err = p.Read(host, accounts[0])

	case Greet:
		p.Greet(host)

	default:
		err = fault.InvalidOperation
	}
	if nil != err {
		return op, nil, nil, err
	}

	atomic.AddUint64(&e.counts[op], 1)
	return op, change, record, nil
}

var _ Registry = (*Dispatcher)(nil)
