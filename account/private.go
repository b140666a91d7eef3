// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"crypto/rand"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/recordd/fault"
)

// SeedSize - bytes in a private key seed
const SeedSize = ed25519.SeedSize

// PrivateKey - a signing key together with its account
type PrivateKey struct {
	account Account
	key     ed25519.PrivateKey
}

// NewPrivateKey - create a random key
func NewPrivateKey() (*PrivateKey, error) {
	seed := make([]byte, SeedSize)
	if _, err := rand.Read(seed); nil != err {
		return nil, err
	}
	return PrivateKeyFromSeed(seed)
}

// PrivateKeyFromSeed - regenerate a key from its seed
func PrivateKeyFromSeed(seed []byte) (*PrivateKey, error) {
	if SeedSize != len(seed) {
		return nil, fault.InvalidKeyLength
	}
	key := ed25519.NewKeyFromSeed(seed)

	p := &PrivateKey{
		key: key,
	}
	copy(p.account[:], key.Public().(ed25519.PublicKey))
	return p, nil
}

// Account - the public half
func (p *PrivateKey) Account() Account {
	return p.account
}

// Seed - the bytes needed to recreate this key
func (p *PrivateKey) Seed() []byte {
	return p.key.Seed()
}

// Sign - sign a message
func (p *PrivateKey) Sign(message []byte) Signature {
	return Signature(ed25519.Sign(p.key, message))
}
