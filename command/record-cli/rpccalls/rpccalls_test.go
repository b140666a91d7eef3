// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"io/ioutil"
	"net"
	"net/rpc/jsonrpc"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/counter"
	"github.com/bitmark-inc/recordd/dispatch"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/fixtures"
	"github.com/bitmark-inc/recordd/instruction"
	"github.com/bitmark-inc/recordd/layout"
	"github.com/bitmark-inc/recordd/ledger"
	"github.com/bitmark-inc/recordd/program"
	"github.com/bitmark-inc/recordd/rpc/mocks"
	"github.com/bitmark-inc/recordd/rpc/server"
)

var greetingId = account.Account{0x47}

func setupClient(t *testing.T) (*Client, *mocks.MockService, *mocks.MockRegistry, *gomock.Controller) {
	ctl := gomock.NewController(t)

	l := mocks.NewMockService(ctl)
	r := mocks.NewMockRegistry(ctl)

	count := counter.Counter(0)
	s := server.Create(logger.New(fixtures.LogCategory), "1.0", &count, l, r)

	serverConn, clientConn := net.Pipe()
	go s.ServeCodec(jsonrpc.NewServerCodec(serverConn))

	return newClient(clientConn, true, ioutil.Discard), l, r, ctl
}

func TestSubmit(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	client, l, _, ctl := setupClient(t)
	defer ctl.Finish()
	defer client.Close()

	target := fixtures.NewKey()
	payer := fixtures.PayerKey

	l.EXPECT().Submit(gomock.Any()).DoAndReturn(func(packed instruction.Packed) (*ledger.Receipt, error) {
		ins, n, err := packed.Unpack()
		require.Nil(t, err, "unpack")
		assert.Equal(t, len(packed), n, "packed length")
		assert.Nil(t, ins.Verify(), "signatures")
		assert.Equal(t, greetingId, ins.ProgramId, "program id")
		assert.Equal(t, "initialize", ins.Operation, "operation")

		arguments, err := dispatch.DecodeArguments(ins.Arguments)
		require.Nil(t, err, "arguments")
		assert.Equal(t, []string{"hi"}, arguments, "arguments")

		return &ledger.Receipt{
			Id:     packed.MakeId(),
			Status: dispatch.OK,
			Logs:   []string{"allocated"},
			Record: &layout.Record{Owner: payer.Account(), Payload: "hi"},
		}, nil
	}).Times(1)

	receipt, err := client.Submit(&SubmitData{
		ProgramId: greetingId,
		Operation: "initialize",
		Accounts: []instruction.AccountMeta{
			{Address: target.Account(), IsSigner: true, IsWritable: true},
			{Address: payer.Account(), IsSigner: true, IsWritable: true},
		},
		Arguments: []string{"hi"},
		Keys:      []*account.PrivateKey{payer, target},
	})
	require.Nil(t, err, "submit")
	assert.Equal(t, dispatch.OK, receipt.Status, "status")
	assert.Equal(t, []string{"allocated"}, receipt.Logs, "logs")
	assert.Equal(t, "hi", receipt.Record.Payload, "payload")
}

func TestSubmitMissingKey(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	client, _, _, ctl := setupClient(t)
	defer ctl.Finish()
	defer client.Close()

	_, err := client.Submit(&SubmitData{
		ProgramId: greetingId,
		Operation: "initialize",
		Accounts: []instruction.AccountMeta{
			{Address: fixtures.NewKey().Account(), IsSigner: true, IsWritable: true},
			{Address: fixtures.PayerKey.Account(), IsSigner: true, IsWritable: true},
		},
		Keys: []*account.PrivateKey{fixtures.PayerKey},
	})
	assert.Equal(t, fault.MissingSignature, err, "unsigned target")
}

func TestProgramId(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	client, l, r, ctl := setupClient(t)
	defer ctl.Finish()
	defer client.Close()

	greeting, err := program.New(logger.New(fixtures.LogCategory), &program.Configuration{
		Id:            greetingId,
		RecordName:    "GreetingAccount",
		MaximumLength: 200,
		Counter:       true,
		Mutation:      program.Anyone,
	})
	require.Nil(t, err, "program")

	l.EXPECT().Chain().Return("local").Times(2)
	l.EXPECT().Statistics().Return(ledger.Statistics{}).Times(2)
	r.EXPECT().Programs().Return([]*program.Program{greeting}).Times(2)
	r.EXPECT().Counters(greetingId).Return(dispatch.Counters{"greet": 1}).Times(2)

	id, err := client.ProgramId("GreetingAccount")
	assert.Nil(t, err, "known record name")
	assert.Equal(t, greetingId, id, "program id")

	_, err = client.ProgramId("MessageAccount")
	assert.Equal(t, fault.ProgramNotFound, err, "unknown record name")
}

func TestQueries(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	client, l, _, ctl := setupClient(t)
	defer ctl.Finish()
	defer client.Close()

	address := fixtures.OtherKey.Account()
	stored := &ledger.Account{
		Address:    address,
		ProgramId:  greetingId,
		RecordName: "GreetingAccount",
		Capacity:   252,
		Balance:    2640,
		Record:     &layout.Record{Payload: "Hello", Count: 2},
	}

	gomock.InOrder(
		l.EXPECT().Fetch(address).Return(stored, nil).Times(1),
		l.EXPECT().List(nil, 1).Return([]*ledger.Account{stored}, &address, nil).Times(1),
		l.EXPECT().Balance(address).Return(uint64(2640)).Times(1),
		l.EXPECT().Airdrop(address, uint64(100)).Return(uint64(2740), nil).Times(1),
	)

	a, err := client.Fetch(address)
	require.Nil(t, err, "fetch")
	assert.Equal(t, stored, a, "fetched")

	page, err := client.List(nil, 1)
	require.Nil(t, err, "list")
	assert.Equal(t, []*ledger.Account{stored}, page.Records, "records")
	require.NotNil(t, page.Next, "full page has next")
	assert.Equal(t, address, *page.Next, "next")

	balance, err := client.Balance(address)
	require.Nil(t, err, "balance")
	assert.Equal(t, uint64(2640), balance.Balance, "balance")

	balance, err = client.Airdrop(address, 100)
	require.Nil(t, err, "airdrop")
	assert.Equal(t, uint64(2740), balance.Balance, "balance after airdrop")
}
