// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/recordd/fault"
)

// command line errors - keep in alphabetic order
const (
	ErrIncompatibleOptions   = fault.InvalidError("incompatible options")
	ErrInvalidConnection     = fault.InvalidError("connection index out of range")
	ErrInvalidCount          = fault.InvalidError("count must be positive")
	ErrInvalidNetwork        = fault.InvalidError("network can only be live/testing/local")
	ErrInvalidPasswordLength = fault.InvalidError("password must be at least 8 characters")
	ErrNoConsole             = fault.ProcessError("no console for password entry")
	ErrPasswordMismatch      = fault.InvalidError("passwords do not match")
	ErrRequiredAddress       = fault.InvalidError("address is required")
	ErrRequiredConnect       = fault.InvalidError("connect is required")
	ErrRequiredDescription   = fault.InvalidError("description is required")
	ErrRequiredIdentity      = fault.InvalidError("identity is required")
	ErrRequiredPayload       = fault.InvalidError("payload is required")
	ErrRequiredRecordName    = fault.InvalidError("record name is required")
)
