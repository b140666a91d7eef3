// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/command/record-cli/configuration"
	"github.com/bitmark-inc/recordd/command/record-cli/rpccalls"
)

// network names match the recordd chain names
func checkNetwork(network string) (string, error) {
	switch strings.ToLower(network) {
	case "live", "":
		return "live", nil
	case "testing", "test":
		return "testing", nil
	case "local":
		return "local", nil
	default:
		return "", ErrInvalidNetwork
	}
}

// returns true if the name is a directory
func checkFileExists(name string) (bool, error) {
	info, err := os.Stat(name)
	if nil != err {
		return false, err
	}
	return info.IsDir(), nil
}

// identity is required, but not check the config file
func checkName(name string) (string, error) {
	if "" == name {
		return "", ErrRequiredIdentity
	}
	return name, nil
}

// connect is required
func checkConnect(connect string) ([]string, error) {
	connections := []string{}
	for _, c := range strings.Split(connect, ",") {
		c = strings.TrimSpace(c)
		if "" != c {
			connections = append(connections, c)
		}
	}
	if 0 == len(connections) {
		return nil, ErrRequiredConnect
	}
	return connections, nil
}

// description is required
func checkDescription(description string) (string, error) {
	if "" == description {
		return "", ErrRequiredDescription
	}
	return description, nil
}

// blank seed makes a new one
func checkSeed(seed string) (string, error) {
	if "" == seed {
		return configuration.MakeSeed()
	}
	buffer, err := hex.DecodeString(seed)
	if nil != err {
		return "", err
	}
	if _, err := account.PrivateKeyFromSeed(buffer); nil != err {
		return "", err
	}
	return strings.ToLower(seed), nil
}

// global identity or the configured default
func identityName(c *cli.Context, config *configuration.Configuration) (string, error) {
	name := c.GlobalString("identity")
	if "" == name {
		name = config.DefaultIdentity
	}
	return checkName(name)
}

// an identity name from the configuration or a base58 address
func checkAddress(address string, config *configuration.Configuration) (account.Account, error) {
	if "" == address {
		return account.Account{}, ErrRequiredAddress
	}
	if nil != config {
		if a, err := config.Account(address); nil == err {
			return a, nil
		}
	}
	return account.FromBase58(address)
}

// optional owner, defaults to the current identity
func checkOwner(c *cli.Context, m *metadata) (account.Account, error) {
	owner := c.String("owner")
	if "" == owner {
		name, err := identityName(c, m.config)
		if nil != err {
			return account.Account{}, err
		}
		return m.config.Account(name)
	}
	return checkAddress(owner, m.config)
}

// decrypt the current identity, prompting when no password was given
func checkPrivate(c *cli.Context, m *metadata) (*configuration.Private, error) {
	name, err := identityName(c, m.config)
	if nil != err {
		return nil, err
	}

	// fail before prompting if the identity is missing
	if _, err := m.config.Identity(name); nil != err {
		return nil, err
	}

	password := c.GlobalString("password")
	if "" == password {
		password, err = promptPassword()
		if nil != err {
			return nil, err
		}
	}
	return m.config.Private(password, name)
}

// connect to the selected recordd
func connect(c *cli.Context, m *metadata) (*rpccalls.Client, error) {
	n := c.GlobalInt("connection")
	if n < 0 || n >= len(m.config.Connections) {
		return nil, ErrInvalidConnection
	}
	return rpccalls.NewClient(m.config.Connections[n], m.verbose, m.e)
}
