// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/layout"
)

// Policy - who may mutate an existing record
type Policy int

// mutation policies
const (
	OwnerOnly Policy = iota // caller must sign as the stored owner
	Anyone                  // no identity check at all
)

// policy names as used in configuration
const (
	ownerOnlyName = "owner"
	anyoneName    = "anyone"
)

// PolicyFromString - convert a configuration name to a policy
func PolicyFromString(s string) (Policy, error) {
	switch s {
	case ownerOnlyName, "":
		return OwnerOnly, nil
	case anyoneName:
		return Anyone, nil
	default:
		return OwnerOnly, fault.InvalidMutationPolicy
	}
}

func (p Policy) String() string {
	switch p {
	case OwnerOnly:
		return ownerOnlyName
	case Anyone:
		return anyoneName
	default:
		return "invalid"
	}
}

// Configuration - the record type served by one program
type Configuration struct {
	Id             account.Account
	RecordName     string
	MaximumLength  int
	Counter        bool
	Mutation       Policy
	DefaultPayload string
}

// Change - an observable transition of one record
type Change struct {
	Address  account.Account `json:"address"`
	Previous *layout.Record  `json:"previous,omitempty"`
	Current  *layout.Record  `json:"current"`
}

// Program - handlers for a single record type
type Program struct {
	log            *logger.L
	id             account.Account
	schema         *layout.Schema
	mutation       Policy
	defaultPayload string
}

// New - create a program from its configuration
func New(log *logger.L, configuration *Configuration) (*Program, error) {
	if nil == configuration || configuration.Id.IsZero() {
		return nil, fault.MissingParameters
	}

	switch configuration.Mutation {
	case OwnerOnly, Anyone:
	default:
		return nil, fault.InvalidMutationPolicy
	}

	schema, err := layout.NewSchema(configuration.RecordName, configuration.MaximumLength, configuration.Counter)
	if nil != err {
		return nil, err
	}

	if err := schema.CheckPayload(configuration.DefaultPayload); nil != err {
		return nil, err
	}

	p := &Program{
		log:            log,
		id:             configuration.Id,
		schema:         schema,
		mutation:       configuration.Mutation,
		defaultPayload: configuration.DefaultPayload,
	}
	return p, nil
}

// Id - the program's own address
func (p *Program) Id() account.Account {
	return p.id
}

// Schema - layout of the records this program owns
func (p *Program) Schema() *layout.Schema {
	return p.schema
}

// Mutation - the configured mutation policy
func (p *Program) Mutation() Policy {
	return p.mutation
}

// Greet - log the program identity
func (p *Program) Greet(host Host) {
	host.Logf("Greetings from: %s", p.id)
}
