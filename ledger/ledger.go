// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - single node host for record programs
//
// every submitted instruction is verified, its accounts resolved from
// storage, the program run through the dispatcher and all changes
// written in one batch; a failed instruction leaves storage untouched
package ledger

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/chain"
	"github.com/bitmark-inc/recordd/counter"
	"github.com/bitmark-inc/recordd/dispatch"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/instruction"
	"github.com/bitmark-inc/recordd/layout"
	"github.com/bitmark-inc/recordd/messagebus"
	"github.com/bitmark-inc/recordd/program"
	"github.com/bitmark-inc/recordd/rent"
	"github.com/bitmark-inc/recordd/storage"
)

// default faucet limit per request
const defaultAirdropLimit = 1000000000

// Configuration - ledger settings
type Configuration struct {
	Chain        string
	Rent         rent.Rate
	AirdropLimit uint64
}

// Receipt - result of a submitted instruction
type Receipt struct {
	Id     instruction.Id  `json:"id"`
	Status dispatch.Status `json:"status"`
	Error  string          `json:"error,omitempty"`
	Logs   []string        `json:"logs"`
	Change *program.Change `json:"change,omitempty"`
	Record *layout.Record  `json:"record,omitempty"`
}

// Statistics - instruction counts since start
type Statistics struct {
	Accepted uint64 `json:"accepted"`
	Rejected uint64 `json:"rejected"`
}

// Ledger - serialises instructions against the store
type Ledger struct {
	sync.Mutex

	log          *logger.L
	chain        string
	rate         rent.Rate
	airdropLimit uint64
	dispatcher   *dispatch.Dispatcher
	bus          *messagebus.BroadcastQueue

	accepted counter.Counter
	rejected counter.Counter
}

// New - create a ledger over the already initialised storage pools
func New(log *logger.L, configuration *Configuration, dispatcher *dispatch.Dispatcher, bus *messagebus.BroadcastQueue) (*Ledger, error) {
	if nil == configuration || nil == dispatcher {
		return nil, fault.MissingParameters
	}
	if !chain.Valid(configuration.Chain) {
		return nil, fault.InvalidChain
	}

	limit := configuration.AirdropLimit
	if 0 == limit {
		limit = defaultAirdropLimit
	}

	l := &Ledger{
		log:          log,
		chain:        configuration.Chain,
		rate:         configuration.Rent,
		airdropLimit: limit,
		dispatcher:   dispatcher,
		bus:          bus,
	}
	return l, nil
}

// Chain - name of the chain served
func (l *Ledger) Chain() string {
	return l.chain
}

// Rate - rent parameters in force
func (l *Ledger) Rate() rent.Rate {
	return l.rate
}

// Statistics - counts of accepted and rejected instructions
func (l *Ledger) Statistics() Statistics {
	return Statistics{
		Accepted: l.accepted.Uint64(),
		Rejected: l.rejected.Uint64(),
	}
}

// Submit - apply one packed instruction
//
// the receipt is returned even on failure so that the caller can see
// the status and the program log
func (l *Ledger) Submit(packed instruction.Packed) (*Receipt, error) {
	receipt, err := l.submit(packed)
	if nil != err {
		l.rejected.Increment()
		receipt.Status = dispatch.StatusOf(err)
		receipt.Error = err.Error()
		receipt.Change = nil
		receipt.Record = nil
		return receipt, err
	}
	l.accepted.Increment()
	return receipt, nil
}

func (l *Ledger) submit(packed instruction.Packed) (*Receipt, error) {
	receipt := &Receipt{
		Logs: []string{},
	}

	ins, n, err := packed.Unpack()
	if nil != err {
		return receipt, err
	}
	if n != len(packed) {
		return receipt, fault.NotInstructionPack
	}

	id := packed.MakeId()
	receipt.Id = id

	err = ins.Verify()
	if nil != err {
		return receipt, err
	}

	l.Lock()
	defer l.Unlock()

	if storage.Pool.Processed.Has(id[:]) {
		return receipt, fault.DuplicateInstruction
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return receipt, err
	}

	ok := false
	defer func() {
		if !ok {
			trx.Abort()
		}
	}()

	refs, err := l.resolve(trx, ins)
	if nil != err {
		return receipt, err
	}

	h := &host{
		ledger:  l,
		trx:     trx,
		program: ins.ProgramId,
		receipt: receipt,
	}

	result, err := l.dispatcher.Invoke(h, &dispatch.Invocation{
		ProgramId: ins.ProgramId,
		Operation: ins.Operation,
		Accounts:  refs,
		Arguments: ins.Arguments,
	})
	if nil != err {
		l.log.Debugf("instruction: %s  rejected: %s", id, err)
		return receipt, err
	}

	// writable accounts holding data belong to this program, resolve
	// refused any other
	for _, ref := range refs {
		if !ref.IsWritable || nil == ref.Data {
			continue
		}
		value := make([]byte, 0, account.PublicKeySize+len(ref.Data))
		value = append(value, ins.ProgramId.Bytes()...)
		value = append(value, ref.Data...)
		trx.Put(storage.Pool.Accounts, ref.Address.Bytes(), value)
	}
	trx.PutN(storage.Pool.Processed, id[:], uint64(time.Now().Unix()))

	err = trx.Commit()
	if nil != err {
		l.log.Errorf("instruction: %s  commit error: %s", id, err)
		return receipt, err
	}
	ok = true

	receipt.Status = result.Status
	receipt.Change = result.Change
	receipt.Record = result.Record

	l.log.Infof("instruction: %s  program: %s  operation: %s  accepted", id, ins.ProgramId, ins.Operation)
	l.publish(result)

	return receipt, nil
}

// resolve the accounts of an instruction into capability descriptors
//
// signatures were verified so signer flags can be trusted; a writable
// account owned by another program is refused here
func (l *Ledger) resolve(trx storage.Transaction, ins *instruction.Instruction) ([]*program.AccountRef, error) {
	refs := make([]*program.AccountRef, len(ins.Accounts))
	for i, meta := range ins.Accounts {
		ref := &program.AccountRef{
			Address:    meta.Address,
			IsSigner:   meta.IsSigner,
			IsWritable: meta.IsWritable,
		}

		stored := trx.Get(storage.Pool.Accounts, meta.Address.Bytes())
		if nil != stored {
			if len(stored) < account.PublicKeySize {
				l.log.Criticalf("account: %s  truncated value: %x", meta.Address, stored)
				return nil, fault.CorruptRecord
			}
			owner, err := account.FromBytes(stored[:account.PublicKeySize])
			if nil != err {
				return nil, err
			}
			if owner != ins.ProgramId && meta.IsWritable {
				return nil, fault.WrongProgramOwner
			}
			data := make([]byte, len(stored)-account.PublicKeySize)
			copy(data, stored[account.PublicKeySize:])
			ref.Data = data
		}
		refs[i] = ref
	}
	return refs, nil
}

// send the change to all listeners
func (l *Ledger) publish(result *dispatch.Result) {
	if nil == l.bus || nil == result.Change {
		return
	}
	buffer, err := json.Marshal(result.Change)
	if nil != err {
		l.log.Errorf("publish: marshal error: %s", err)
		return
	}
	l.bus.Send(result.Operation.String(), result.Change.Address.Bytes(), buffer)
}
