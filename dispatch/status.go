// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dispatch

import (
	"github.com/bitmark-inc/recordd/fault"
)

// Status - uniform result of an invocation
type Status int

// possible statuses
const (
	OK Status = iota
	AlreadyAllocated
	NotFound
	CorruptRecord
	PayloadTooLong
	Unauthorized
	NotMutable
	InsufficientFunds
	InvalidArguments
	Internal
)

var statusNames = map[Status]string{
	OK:                "OK",
	AlreadyAllocated:  "AlreadyAllocated",
	NotFound:          "NotFound",
	CorruptRecord:     "CorruptRecord",
	PayloadTooLong:    "PayloadTooLong",
	Unauthorized:      "Unauthorized",
	NotMutable:        "NotMutable",
	InsufficientFunds: "InsufficientFunds",
	InvalidArguments:  "InvalidArguments",
	Internal:          "Internal",
}

// StatusOf - map an error to a status by its fault class
func StatusOf(err error) Status {
	switch {
	case nil == err:
		return OK
	case fault.IsErrExists(err):
		return AlreadyAllocated
	case fault.IsErrNotFound(err):
		return NotFound
	case fault.IsErrRecord(err):
		return CorruptRecord
	case fault.IsErrLength(err):
		return PayloadTooLong
	case fault.IsErrAuthorisation(err):
		return Unauthorized
	case fault.IsErrMutability(err):
		return NotMutable
	case fault.IsErrBalance(err):
		return InsufficientFunds
	case fault.IsErrInvalid(err):
		return InvalidArguments
	default:
		return Internal
	}
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

// MarshalText - status name for JSON
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText - status from its name
func (s *Status) UnmarshalText(text []byte) error {
	for status, name := range statusNames {
		if name == string(text) {
			*s = status
			return nil
		}
	}
	return fault.InvalidArguments
}
