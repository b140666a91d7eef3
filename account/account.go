// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/recordd/fault"
)

// PublicKeySize - bytes in an account
const PublicKeySize = ed25519.PublicKeySize

// Account - an ed25519 public key
//
// the same type identifies payers, record owners, record addresses and
// programs; being an array it can be compared and used as a map key
type Account [PublicKeySize]byte

// FromBytes - convert a raw public key
func FromBytes(buffer []byte) (Account, error) {
	a := Account{}
	if PublicKeySize != len(buffer) {
		return a, fault.InvalidKeyLength
	}
	copy(a[:], buffer)
	return a, nil
}

// FromBase58 - decode the text form of an account
func FromBase58(s string) (Account, error) {
	buffer, err := base58.Decode(s)
	if nil != err {
		return Account{}, fault.InvalidKeyLength
	}
	return FromBytes(buffer)
}

// Bytes - the raw public key
func (account Account) Bytes() []byte {
	return account[:]
}

// String - base58 text form
func (account Account) String() string {
	return base58.Encode(account[:])
}

// IsZero - true for the unset account
func (account Account) IsZero() bool {
	return Account{} == account
}

// MarshalText - convert to base58 for JSON
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - convert from base58 for JSON
func (account *Account) UnmarshalText(s []byte) error {
	a, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*account = a
	return nil
}

// CheckSignature - verify that signature was made by this account
func (account Account) CheckSignature(message []byte, signature Signature) error {
	if ed25519.SignatureSize != len(signature) {
		return fault.InvalidSignature
	}
	if !ed25519.Verify(ed25519.PublicKey(account[:]), message, signature) {
		return fault.InvalidSignature
	}
	return nil
}
