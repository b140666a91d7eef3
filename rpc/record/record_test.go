// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/dispatch"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/fixtures"
	"github.com/bitmark-inc/recordd/instruction"
	"github.com/bitmark-inc/recordd/layout"
	"github.com/bitmark-inc/recordd/ledger"
	"github.com/bitmark-inc/recordd/rpc/mocks"
	"github.com/bitmark-inc/recordd/rpc/record"
)

func TestSubmit(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockService(ctl)
	r := record.New(logger.New(fixtures.LogCategory), l)

	packed := instruction.Packed{0x52, 0x01, 0x02}
	receipt := &ledger.Receipt{
		Status: dispatch.OK,
		Logs:   []string{"Program log: created"},
		Record: &layout.Record{Payload: "hello"},
	}
	l.EXPECT().Submit(packed).Return(receipt, nil).Times(1)

	var reply ledger.Receipt
	err := r.Submit(&record.SubmitArguments{Instruction: packed}, &reply)
	assert.Nil(t, err, "wrong Submit")
	assert.Equal(t, *receipt, reply, "wrong receipt")
}

func TestSubmitFailedInstruction(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockService(ctl)
	r := record.New(logger.New(fixtures.LogCategory), l)

	packed := instruction.Packed{0x52}
	receipt := &ledger.Receipt{
		Status: dispatch.PayloadTooLong,
		Error:  fault.PayloadTooLong.Error(),
		Logs:   []string{},
	}
	l.EXPECT().Submit(packed).Return(receipt, fault.PayloadTooLong).Times(1)

	var reply ledger.Receipt
	err := r.Submit(&record.SubmitArguments{Instruction: packed}, &reply)
	assert.Nil(t, err, "status must be in the receipt")
	assert.Equal(t, dispatch.PayloadTooLong, reply.Status, "wrong status")
	assert.Equal(t, "payload too long", reply.Error, "wrong error text")
}

func TestSubmitEmpty(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := record.New(logger.New(fixtures.LogCategory), mocks.NewMockService(ctl))

	var reply ledger.Receipt
	err := r.Submit(&record.SubmitArguments{}, &reply)
	assert.Equal(t, fault.MissingParameters, err, "wrong empty Submit")
}

func TestFetch(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockService(ctl)
	r := record.New(logger.New(fixtures.LogCategory), l)

	address := fixtures.OtherKey.Account()
	a := &ledger.Account{
		Address:    address,
		RecordName: "MessageAccount",
		Capacity:   324,
		Record:     &layout.Record{Payload: "world"},
	}

	l.EXPECT().Fetch(address).Return(a, nil).Times(1)
	l.EXPECT().Fetch(fixtures.PayerKey.Account()).Return(nil, fault.NotFound).Times(1)

	var reply ledger.Account
	err := r.Fetch(&record.FetchArguments{Address: address}, &reply)
	assert.Nil(t, err, "wrong Fetch")
	assert.Equal(t, *a, reply, "wrong account")

	err = r.Fetch(&record.FetchArguments{Address: fixtures.PayerKey.Account()}, &reply)
	assert.Equal(t, fault.NotFound, err, "wrong missing record")

	err = r.Fetch(&record.FetchArguments{}, &reply)
	assert.Equal(t, fault.MissingParameters, err, "wrong zero address")
}

func TestList(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockService(ctl)
	r := record.New(logger.New(fixtures.LogCategory), l)

	first := account.Account{0x01}
	second := account.Account{0x02}
	page := []*ledger.Account{{Address: first}, {Address: second}}

	l.EXPECT().List((*account.Account)(nil), 2).Return(page, &second, nil).Times(1)
	l.EXPECT().List(&second, 2).Return([]*ledger.Account{}, (*account.Account)(nil), nil).Times(1)

	var reply record.ListReply
	err := r.List(&record.ListArguments{Count: 2}, &reply)
	assert.Nil(t, err, "wrong List")
	assert.Equal(t, page, reply.Records, "wrong records")
	assert.Equal(t, &second, reply.Next, "wrong next")

	reply = record.ListReply{}
	err = r.List(&record.ListArguments{After: &second, Count: 2}, &reply)
	assert.Nil(t, err, "wrong second List")
	assert.Equal(t, 0, len(reply.Records), "wrong record count")
	assert.Nil(t, reply.Next, "wrong end of list")
}

func TestListShortPage(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockService(ctl)
	r := record.New(logger.New(fixtures.LogCategory), l)

	decoded := account.Account{0x01}
	scanned := account.Account{0x03}
	page := []*ledger.Account{{Address: decoded}}

	l.EXPECT().List((*account.Account)(nil), 3).Return(page, &scanned, nil).Times(1)

	var reply record.ListReply
	err := r.List(&record.ListArguments{Count: 3}, &reply)
	assert.Nil(t, err, "wrong List")
	assert.Equal(t, page, reply.Records, "wrong records")
	assert.Equal(t, &scanned, reply.Next, "next must follow the scan, not the records")
}

func TestListInvalidCount(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := record.New(logger.New(fixtures.LogCategory), mocks.NewMockService(ctl))

	var reply record.ListReply
	for _, count := range []int{-1, 0, ledger.MaximumListCount + 1} {
		err := r.List(&record.ListArguments{Count: count}, &reply)
		assert.Equal(t, fault.InvalidCount, err, "count: %d", count)
	}
}

func TestBalanceAirdrop(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockService(ctl)
	r := record.New(logger.New(fixtures.LogCategory), l)

	address := fixtures.PayerKey.Account()

	gomock.InOrder(
		l.EXPECT().Airdrop(address, uint64(500)).Return(uint64(500), nil),
		l.EXPECT().Balance(address).Return(uint64(500)),
		l.EXPECT().Airdrop(address, uint64(7)).Return(uint64(0), fault.NotAvailableOnLive),
	)

	var reply record.BalanceReply
	err := r.Airdrop(&record.AirdropArguments{Address: address, Amount: 500}, &reply)
	assert.Nil(t, err, "wrong Airdrop")
	assert.Equal(t, uint64(500), reply.Balance, "wrong airdrop balance")

	reply = record.BalanceReply{}
	err = r.Balance(&record.BalanceArguments{Address: address}, &reply)
	assert.Nil(t, err, "wrong Balance")
	assert.Equal(t, address, reply.Address, "wrong address")
	assert.Equal(t, uint64(500), reply.Balance, "wrong balance")

	err = r.Airdrop(&record.AirdropArguments{Address: address, Amount: 7}, &reply)
	assert.Equal(t, fault.NotAvailableOnLive, err, "wrong live airdrop")
}
