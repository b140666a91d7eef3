// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dispatch_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/dispatch"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/fixtures"
	"github.com/bitmark-inc/recordd/program"
)

type testHost struct {
	lines []string
}

func (h *testHost) Allocate(payer *program.AccountRef, target *program.AccountRef, capacity int) error {
	target.Data = make([]byte, capacity)
	target.IsNewlyAllocated = true
	return nil
}

func (h *testHost) Logf(format string, arguments ...interface{}) {
	h.lines = append(h.lines, fmt.Sprintf(format, arguments...))
}

var (
	messageId  = account.Account{0x01, 'm', 's', 'g'}
	greetingId = account.Account{0x02, 'g', 'r', 't'}
)

func setupDispatcher(t *testing.T) *dispatch.Dispatcher {
	log := logger.New(fixtures.LogCategory)
	d := dispatch.New(log)

	configurations := []*program.Configuration{
		{
			Id:            messageId,
			RecordName:    "MessageAccount",
			MaximumLength: 280,
			Counter:       false,
			Mutation:      program.OwnerOnly,
		},
		{
			Id:             greetingId,
			RecordName:     "GreetingAccount",
			MaximumLength:  200,
			Counter:        true,
			Mutation:       program.Anyone,
			DefaultPayload: "Hello, World!",
		},
	}
	for _, c := range configurations {
		p, err := program.New(log, c)
		require.Nil(t, err, "program: %s", c.RecordName)
		require.Nil(t, d.Register(p), "register: %s", c.RecordName)
	}
	return d
}

func payer() *program.AccountRef {
	return &program.AccountRef{
		Address:    fixtures.PayerKey.Account(),
		IsSigner:   true,
		IsWritable: true,
	}
}

func newTarget() *program.AccountRef {
	return &program.AccountRef{
		Address:    fixtures.NewKey().Account(),
		IsSigner:   true,
		IsWritable: true,
	}
}

func TestRegisterTwice(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	d := setupDispatcher(t)
	p, ok := d.Program(messageId)
	require.True(t, ok, "message program")
	assert.Equal(t, fault.AlreadyRegistered, d.Register(p), "register twice")

	programs := d.Programs()
	require.Equal(t, 2, len(programs), "program count")
	assert.Equal(t, "GreetingAccount", programs[0].Schema().Name(), "sorted first")
	assert.Equal(t, "MessageAccount", programs[1].Schema().Name(), "sorted second")
}

func TestOperationNames(t *testing.T) {
	items := []struct {
		name string
		op   dispatch.Operation
	}{
		{"initialize", dispatch.Allocate},
		{"allocate", dispatch.Allocate},
		{"update", dispatch.Mutate},
		{"mutate", dispatch.Mutate},
		{"get", dispatch.Read},
		{"read", dispatch.Read},
		{"greet", dispatch.Greet},
	}
	for i, item := range items {
		op, err := dispatch.OperationFromString(item.name)
		assert.Nil(t, err, "%d: error", i)
		assert.Equal(t, item.op, op, "%d: operation", i)
	}

	_, err := dispatch.OperationFromString("delete")
	assert.Equal(t, fault.InvalidOperation, err, "unknown operation")
	assert.Equal(t, "update", dispatch.Mutate.String(), "canonical name")
}

func TestStatusOf(t *testing.T) {
	items := []struct {
		err    error
		status dispatch.Status
	}{
		{nil, dispatch.OK},
		{fault.AlreadyAllocated, dispatch.AlreadyAllocated},
		{fault.AddressInUse, dispatch.AlreadyAllocated},
		{fault.NotFound, dispatch.NotFound},
		{fault.CorruptRecord, dispatch.CorruptRecord},
		{fault.DiscriminatorMismatch, dispatch.CorruptRecord},
		{fault.RecordSizeMismatch, dispatch.CorruptRecord},
		{fault.PayloadTooLong, dispatch.PayloadTooLong},
		{fault.Unauthorized, dispatch.Unauthorized},
		{fault.NotSigner, dispatch.Unauthorized},
		{fault.NotMutable, dispatch.NotMutable},
		{fault.InsufficientFunds, dispatch.InsufficientFunds},
		{fault.InvalidArguments, dispatch.InvalidArguments},
		{fault.MissingAccount, dispatch.InvalidArguments},
		{fault.CounterOverflow, dispatch.Internal},
		{fmt.Errorf("disk on fire"), dispatch.Internal},
	}
	for i, item := range items {
		assert.Equal(t, item.status, dispatch.StatusOf(item.err), "%d: status for: %v", i, item.err)
	}
}

func TestStatusJSON(t *testing.T) {
	buffer, err := json.Marshal(dispatch.PayloadTooLong)
	require.Nil(t, err, "marshal")
	assert.Equal(t, `"PayloadTooLong"`, string(buffer), "json")

	var s dispatch.Status
	require.Nil(t, json.Unmarshal([]byte(`"NotMutable"`), &s), "unmarshal")
	assert.Equal(t, dispatch.NotMutable, s, "status")

	assert.NotNil(t, json.Unmarshal([]byte(`"Bogus"`), &s), "unknown name")
}

func TestInvokeScenario(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	d := setupDispatcher(t)
	host := &testHost{}
	target := newTarget()

	result, err := d.Invoke(host, &dispatch.Invocation{
		ProgramId: messageId,
		Operation: "initialize",
		Accounts:  []*program.AccountRef{target, payer()},
		Arguments: dispatch.EncodeArguments("hello"),
	})
	require.Nil(t, err, "initialize")
	assert.Equal(t, dispatch.OK, result.Status, "initialize status")
	assert.Equal(t, "hello", result.Change.Current.Payload, "initialize payload")

	result, err = d.Invoke(host, &dispatch.Invocation{
		ProgramId: messageId,
		Operation: "update",
		Accounts:  []*program.AccountRef{target, payer()},
		Arguments: dispatch.EncodeArguments("world"),
	})
	require.Nil(t, err, "update")
	assert.Equal(t, "hello", result.Change.Previous.Payload, "previous payload")

	result, err = d.Invoke(host, &dispatch.Invocation{
		ProgramId: messageId,
		Operation: "update",
		Accounts:  []*program.AccountRef{target, payer()},
		Arguments: dispatch.EncodeArguments(strings.Repeat("a", 281)),
	})
	assert.Equal(t, fault.PayloadTooLong, err, "too long")
	assert.Equal(t, dispatch.PayloadTooLong, result.Status, "too long status")
	assert.Nil(t, result.Change, "no change on failure")

	result, err = d.Invoke(host, &dispatch.Invocation{
		ProgramId: messageId,
		Operation: "get",
		Accounts:  []*program.AccountRef{target},
	})
	require.Nil(t, err, "get")
	assert.Equal(t, "world", result.Record.Payload, "read payload")

	result, err = d.Invoke(host, &dispatch.Invocation{
		ProgramId: messageId,
		Operation: "initialize",
		Accounts:  []*program.AccountRef{target, payer()},
	})
	assert.Equal(t, fault.AlreadyAllocated, err, "second initialize")
	assert.Equal(t, dispatch.AlreadyAllocated, result.Status, "second initialize status")

	counters := d.Counters(messageId)
	assert.Equal(t, uint64(1), counters["initialize"], "initialize count")
	assert.Equal(t, uint64(1), counters["update"], "update count")
	assert.Equal(t, uint64(1), counters["get"], "get count")
	assert.Equal(t, uint64(0), counters["greet"], "greet count")
}

func TestInvokeDefaultAndAnyone(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	d := setupDispatcher(t)
	host := &testHost{}
	target := newTarget()

	_, err := d.Invoke(host, &dispatch.Invocation{
		ProgramId: greetingId,
		Operation: "allocate",
		Accounts:  []*program.AccountRef{target, payer()},
	})
	require.Nil(t, err, "allocate")

	// no caller account at all
	result, err := d.Invoke(host, &dispatch.Invocation{
		ProgramId: greetingId,
		Operation: "mutate",
		Accounts:  []*program.AccountRef{target},
		Arguments: dispatch.EncodeArguments("Hi"),
	})
	require.Nil(t, err, "mutate")
	assert.Equal(t, "Hello, World!", result.Change.Previous.Payload, "default payload")
	assert.Equal(t, uint64(1), result.Change.Current.Count, "count")

	_, err = d.Invoke(host, &dispatch.Invocation{ProgramId: greetingId, Operation: "greet"})
	require.Nil(t, err, "greet")
	assert.Equal(t, "Greetings from: "+greetingId.String(), host.lines[len(host.lines)-1], "greet log")
}

func TestInvokeInvalid(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	d := setupDispatcher(t)
	host := &testHost{}

	items := []struct {
		invocation *dispatch.Invocation
		err        error
		status     dispatch.Status
	}{
		{nil, fault.MissingParameters, dispatch.InvalidArguments},
		{&dispatch.Invocation{ProgramId: messageId, Operation: "destroy"}, fault.InvalidOperation, dispatch.InvalidArguments},
		{&dispatch.Invocation{ProgramId: account.Account{9}, Operation: "get", Accounts: []*program.AccountRef{newTarget()}}, fault.ProgramNotFound, dispatch.NotFound},
		{&dispatch.Invocation{ProgramId: messageId, Operation: "initialize", Accounts: []*program.AccountRef{newTarget()}}, fault.MissingAccount, dispatch.InvalidArguments},
		{&dispatch.Invocation{ProgramId: messageId, Operation: "get", Accounts: []*program.AccountRef{newTarget(), payer()}}, fault.InvalidArguments, dispatch.InvalidArguments},
		{&dispatch.Invocation{ProgramId: messageId, Operation: "update", Accounts: []*program.AccountRef{newTarget()}}, fault.InvalidArguments, dispatch.InvalidArguments},
		{&dispatch.Invocation{ProgramId: messageId, Operation: "initialize", Accounts: []*program.AccountRef{newTarget(), payer()}, Arguments: dispatch.EncodeArguments("a", "b")}, fault.InvalidArguments, dispatch.InvalidArguments},
		{&dispatch.Invocation{ProgramId: messageId, Operation: "initialize", Accounts: []*program.AccountRef{newTarget(), payer()}, Arguments: []byte{0x09, 'x'}}, fault.InvalidArguments, dispatch.InvalidArguments},
		{&dispatch.Invocation{ProgramId: messageId, Operation: "get", Accounts: []*program.AccountRef{newTarget()}}, fault.NotFound, dispatch.NotFound},
	}

	for i, item := range items {
		result, err := d.Invoke(host, item.invocation)
		assert.Equal(t, item.err, err, "%d: error", i)
		require.NotNil(t, result, "%d: result", i)
		assert.Equal(t, item.status, result.Status, "%d: status", i)
	}
}
