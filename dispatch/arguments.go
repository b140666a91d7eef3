// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dispatch

import (
	"unicode/utf8"

	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/util"
)

// limit on a single argument, larger than any record payload
const maximumArgumentLength = 65535

// EncodeArguments - pack strings as varint length prefixed bytes
func EncodeArguments(arguments ...string) []byte {
	buffer := make([]byte, 0, 64)
	for _, a := range arguments {
		buffer = util.AppendBytes(buffer, []byte(a))
	}
	return buffer
}

// DecodeArguments - unpack a sequence of varint length prefixed strings
//
// every byte must be consumed and every string must be valid UTF-8
func DecodeArguments(buffer []byte) ([]string, error) {
	arguments := []string{}
	for n := 0; n < len(buffer); {
		data, count := util.ClippedBytes(buffer[n:], maximumArgumentLength)
		if 0 == count {
			return nil, fault.InvalidArguments
		}
		if !utf8.Valid(data) {
			return nil, fault.InvalidArguments
		}
		arguments = append(arguments, string(data))
		n += count
	}
	return arguments, nil
}
