// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package layout

import (
	"encoding/binary"
	"unicode/utf8"

	"github.com/bitmark-inc/recordd/fault"
)

// Pack - serialise a record into exactly Capacity() bytes
//
// fields are written contiguously in declared order after the
// discriminator and the unused tail is zero filled:
//
//   discriminator ⧺ owner ⧺ le32(len) ⧺ payload [⧺ le64(count)] ⧺ 00…
func (s *Schema) Pack(record *Record) ([]byte, error) {
	if nil == record {
		return nil, fault.InvalidArguments
	}
	if err := s.CheckPayload(record.Payload); nil != err {
		return nil, err
	}
	if !utf8.ValidString(record.Payload) {
		return nil, fault.InvalidArguments
	}

	buffer := make([]byte, s.capacity)
	n := copy(buffer, s.discriminator[:])

	for _, f := range s.fields {
		switch f.Kind {
		case Identity:
			n += copy(buffer[n:], record.Owner[:])

		case Text:
			binary.LittleEndian.PutUint32(buffer[n:], uint32(len(record.Payload)))
			n += LengthPrefixSize
			n += copy(buffer[n:], record.Payload)

		case Counter:
			binary.LittleEndian.PutUint64(buffer[n:], record.Count)
			n += CounterSize
		}
	}
	return buffer, nil
}
