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

// Unpack - turn stored bytes back into a record
//
// any size mismatch, foreign discriminator, out of range length or
// truncated field is reported as a record error
func (s *Schema) Unpack(buffer []byte) (*Record, error) {
	if len(buffer) != s.capacity {
		return nil, fault.RecordSizeMismatch
	}
	if !s.IsAllocated(buffer) {
		return nil, fault.DiscriminatorMismatch
	}

	record := &Record{}
	n := DiscriminatorSize

	for _, f := range s.fields {
		switch f.Kind {
		case Identity:
			if n+IdentitySize > len(buffer) {
				return nil, fault.CorruptRecord
			}
			copy(record.Owner[:], buffer[n:n+IdentitySize])
			n += IdentitySize

		case Text:
			if n+LengthPrefixSize > len(buffer) {
				return nil, fault.CorruptRecord
			}
			length := int(binary.LittleEndian.Uint32(buffer[n:]))
			n += LengthPrefixSize
			if length > f.MaximumLength || n+length > len(buffer) {
				return nil, fault.CorruptRecord
			}
			text := buffer[n : n+length]
			if !utf8.Valid(text) {
				return nil, fault.CorruptRecord
			}
			record.Payload = string(text)
			n += length

		case Counter:
			if n+CounterSize > len(buffer) {
				return nil, fault.CorruptRecord
			}
			record.Count = binary.LittleEndian.Uint64(buffer[n:])
			n += CounterSize

		default:
			return nil, fault.CorruptRecord
		}
	}
	return record, nil
}
