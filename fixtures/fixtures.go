// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared helpers for package tests
package fixtures

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/recordd/account"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// fixed seeds so that test accounts are stable between runs
var (
	payerSeed = []byte{
		0xa1, 0x0b, 0x5f, 0x2e, 0x97, 0x30, 0x6c, 0x44,
		0x12, 0x8d, 0xe3, 0x7a, 0x01, 0xf9, 0x6b, 0x20,
		0x3c, 0x55, 0x8e, 0xd2, 0x40, 0x19, 0xab, 0x77,
		0x65, 0x0e, 0xc4, 0x38, 0x9f, 0x21, 0x5a, 0x06,
	}
	otherSeed = []byte{
		0x3f, 0x81, 0x22, 0x6d, 0x0c, 0xb7, 0x49, 0xe5,
		0x70, 0x13, 0x9a, 0x2b, 0xd8, 0x64, 0x07, 0xc1,
		0x5e, 0x33, 0xf0, 0x8a, 0x16, 0x4d, 0xbe, 0x92,
		0x27, 0x68, 0x0a, 0xe9, 0x51, 0x3b, 0xc6, 0x7f,
	}
)

// PayerKey - signs and pays for allocations
var PayerKey = mustKey(payerSeed)

// OtherKey - a second identity that does not own anything
var OtherKey = mustKey(otherSeed)

func mustKey(seed []byte) *account.PrivateKey {
	key, err := account.PrivateKeyFromSeed(seed)
	if nil != err {
		panic(err)
	}
	return key
}

// NewKey - a fresh random key, panics on failure
func NewKey() *account.PrivateKey {
	key, err := account.NewPrivateKey()
	if nil != err {
		panic(err)
	}
	return key
}

// SetupTestLogger - send all test logging to a scratch directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
