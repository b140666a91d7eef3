// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - record-cli identities and connections
package configuration

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/fault"
)

// errors local to the configuration file
const (
	ErrIdentityNameAlreadyExists = fault.ExistsError("identity name already exists")
	ErrIdentityNameNotFound      = fault.NotFoundError("identity name not found")
	ErrNotPrivateKey             = fault.InvalidError("identity has no private key")
)

// Configuration - configuration file data format
type Configuration struct {
	DefaultIdentity string              `json:"default_identity"`
	Network         string              `json:"network"`
	Connections     []string            `json:"connections"`
	Identities      map[string]Identity `json:"identities"`
}

// Identity - mix of plain and encrypted data
type Identity struct {
	Description string `json:"description"`
	Account     string `json:"account"`
	Data        string `json:"data"`
	Salt        string `json:"salt"`
}

// Load - read the configuration
func Load(filename string) (*Configuration, error) {

	filename, err := filepath.Abs(filepath.Clean(filename))
	if nil != err {
		return nil, err
	}

	f, err := os.Open(filename)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	config := &Configuration{}
	err = json.NewDecoder(f).Decode(config)
	if nil != err {
		return nil, err
	}
	if nil == config.Identities {
		config.Identities = make(map[string]Identity)
	}
	return config, nil
}

// Identity - find identity for a given name
func (config *Configuration) Identity(name string) (*Identity, error) {
	id, ok := config.Identities[name]
	if !ok {
		return nil, ErrIdentityNameNotFound
	}
	return &id, nil
}

// Account - find identity for a given name and convert to an account
func (config *Configuration) Account(name string) (account.Account, error) {
	id, err := config.Identity(name)
	if nil != err {
		return account.Account{}, err
	}
	return account.FromBase58(id.Account)
}

// Private - find identity and decrypt its key
func (config *Configuration) Private(password string, name string) (*Private, error) {
	id, err := config.Identity(name)
	if nil != err {
		return nil, err
	}
	return decryptIdentity(password, id)
}

// AddIdentity - store encrypted identity
//
// seed is the hex form of a 32 byte private key seed
func (config *Configuration) AddIdentity(name string, description string, seed string, password string) error {

	if _, ok := config.Identities[name]; ok {
		return ErrIdentityNameAlreadyExists
	}

	private, err := privateKeyFromHexSeed(seed)
	if nil != err {
		return err
	}

	identity, err := encryptIdentity(password, description, private.Account(), seed)
	if nil != err {
		return err
	}

	if nil == config.Identities {
		config.Identities = make(map[string]Identity)
	}
	config.Identities[name] = *identity
	return nil
}

// AddReceiveOnlyIdentity - store public-only identity
func (config *Configuration) AddReceiveOnlyIdentity(name string, description string, acc string) error {

	if _, ok := config.Identities[name]; ok {
		return ErrIdentityNameAlreadyExists
	}

	if _, err := account.FromBase58(acc); nil != err {
		return err
	}

	if nil == config.Identities {
		config.Identities = make(map[string]Identity)
	}
	config.Identities[name] = Identity{
		Description: description,
		Account:     acc,
	}
	return nil
}

// ChangePassword - re-encrypt an identity under a new password
func (config *Configuration) ChangePassword(name string, oldPassword string, newPassword string) error {
	id, err := config.Identity(name)
	if nil != err {
		return err
	}

	private, err := decryptIdentity(oldPassword, id)
	if nil != err {
		return err
	}

	identity, err := encryptIdentity(newPassword, id.Description, private.PrivateKey.Account(), private.Seed)
	if nil != err {
		return err
	}
	config.Identities[name] = *identity
	return nil
}

// MakeSeed - hex seed for a fresh private key
func MakeSeed() (string, error) {
	private, err := account.NewPrivateKey()
	if nil != err {
		return "", err
	}
	return hex.EncodeToString(private.Seed()), nil
}

func privateKeyFromHexSeed(seed string) (*account.PrivateKey, error) {
	buffer, err := hex.DecodeString(seed)
	if nil != err {
		return nil, err
	}
	return account.PrivateKeyFromSeed(buffer)
}
