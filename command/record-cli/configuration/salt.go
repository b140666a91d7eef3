// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"crypto/rand"
	"encoding/hex"
	"io"

	"github.com/bitmark-inc/recordd/fault"
)

const saltSize = 32

// Salt - random input to the password hash
type Salt [saltSize]byte

// MakeSalt - a new random salt
func MakeSalt() (*Salt, error) {
	salt := new(Salt)
	if _, err := io.ReadFull(rand.Reader, salt[:]); nil != err {
		return nil, err
	}
	return salt, nil
}

// Bytes - salt as a byte slice
func (salt Salt) Bytes() []byte {
	return salt[:]
}

func (salt Salt) String() string {
	return hex.EncodeToString(salt[:])
}

// MarshalText - hex text
func (salt Salt) MarshalText() ([]byte, error) {
	return []byte(salt.String()), nil
}

// UnmarshalText - hex text to salt
func (salt *Salt) UnmarshalText(s []byte) error {
	if hex.DecodedLen(len(s)) != saltSize {
		return fault.InvalidArguments
	}
	_, err := hex.Decode(salt[:], s)
	return err
}
