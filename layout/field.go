// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package layout

import (
	"github.com/bitmark-inc/recordd/account"
)

// Kind - the encoding of a field
type Kind int

// all field kinds
const (
	Identity Kind = iota // fixed: public key
	Text                 // variable: u32 length ++ utf-8 bytes
	Counter              // fixed: u64
)

// byte sizes of the fixed parts of a record
const (
	DiscriminatorSize = 8
	IdentitySize      = account.PublicKeySize
	LengthPrefixSize  = 4
	CounterSize       = 8
)

// Field - descriptor of one stored field
type Field struct {
	Name          string
	Kind          Kind
	MaximumLength int // Text only: maximum bytes of content
}

// Size - the maximum bytes this field can occupy
func (f Field) Size() int {
	switch f.Kind {
	case Identity:
		return IdentitySize
	case Text:
		return LengthPrefixSize + f.MaximumLength
	case Counter:
		return CounterSize
	default:
		return 0
	}
}

// Capacity - total bytes to reserve for a record with these fields
//
// capacity = discriminator + Σ field maximum size
func Capacity(fields []Field) int {
	n := DiscriminatorSize
	for _, f := range fields {
		n += f.Size()
	}
	return n
}

func (k Kind) String() string {
	switch k {
	case Identity:
		return "identity"
	case Text:
		return "text"
	case Counter:
		return "counter"
	default:
		return "unknown"
	}
}
