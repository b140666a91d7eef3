// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package layout

import (
	"bytes"
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/fault"
)

// field names
const (
	OwnerField   = "owner"
	PayloadField = "payload"
	CountField   = "count"
)

// Discriminator - type tag at the start of every stored record
type Discriminator [DiscriminatorSize]byte

// NewDiscriminator - the tag for a record type name
//
// first 8 bytes of SHA3-256("record:" ⧺ name)
func NewDiscriminator(name string) Discriminator {
	digest := sha3.Sum256([]byte("record:" + name))
	d := Discriminator{}
	copy(d[:], digest[:])
	return d
}

// MarshalText - hex form for JSON
func (d Discriminator) MarshalText() ([]byte, error) {
	return []byte(hex.EncodeToString(d[:])), nil
}

// Record - the unpacked values of a stored record
type Record struct {
	Owner   account.Account `json:"owner"`
	Payload string          `json:"payload"`
	Count   uint64          `json:"count"`
}

// Schema - the layout of one record type
type Schema struct {
	name          string
	discriminator Discriminator
	maximumLength int
	counter       bool
	fields        []Field
	capacity      int
}

// NewSchema - describe a record holding an owner, a bounded text
// payload and optionally a counter
func NewSchema(name string, maximumLength int, counter bool) (*Schema, error) {
	if "" == name {
		return nil, fault.MissingParameters
	}
	if maximumLength <= 0 {
		return nil, fault.ZeroCapacity
	}

	fields := []Field{
		{Name: OwnerField, Kind: Identity},
		{Name: PayloadField, Kind: Text, MaximumLength: maximumLength},
	}
	if counter {
		fields = append(fields, Field{Name: CountField, Kind: Counter})
	}

	s := &Schema{
		name:          name,
		discriminator: NewDiscriminator(name),
		maximumLength: maximumLength,
		counter:       counter,
		fields:        fields,
		capacity:      Capacity(fields),
	}
	return s, nil
}

// Name - record type name
func (s *Schema) Name() string {
	return s.name
}

// Discriminator - record type tag
func (s *Schema) Discriminator() Discriminator {
	return s.discriminator
}

// MaximumLength - maximum payload bytes
func (s *Schema) MaximumLength() int {
	return s.maximumLength
}

// HasCounter - true if records carry a count
func (s *Schema) HasCounter() bool {
	return s.counter
}

// Fields - copy of the field descriptors in stored order
func (s *Schema) Fields() []Field {
	f := make([]Field, len(s.fields))
	copy(f, s.fields)
	return f
}

// Capacity - bytes reserved for every record of this type
func (s *Schema) Capacity() int {
	return s.capacity
}

// CheckPayload - ensure a payload fits the declared maximum
func (s *Schema) CheckPayload(payload string) error {
	if len(payload) > s.maximumLength {
		return fault.PayloadTooLong
	}
	return nil
}

// IsAllocated - true if the buffer starts with this type's tag
func (s *Schema) IsAllocated(buffer []byte) bool {
	return len(buffer) >= DiscriminatorSize &&
		bytes.Equal(buffer[:DiscriminatorSize], s.discriminator[:])
}
