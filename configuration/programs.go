// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/program"
)

// names and limits of the built in record types
const (
	MessageRecordName   = "MessageAccount"
	MessageLength       = 280
	GreetingRecordName  = "GreetingAccount"
	GreetingLength      = 200
	GreetingDefaultText = "Hello"
)

// ProgramConfiguration - one record type as written in the configuration file
type ProgramConfiguration struct {
	Id             string `gluamapper:"id" json:"id" validate:"omitempty,alphanum"`
	RecordName     string `gluamapper:"record_name" json:"record_name" validate:"required,alphanum,max=64"`
	MaximumLength  int    `gluamapper:"maximum_length" json:"maximum_length" validate:"min=1,max=10240"`
	Counter        bool   `gluamapper:"counter" json:"counter"`
	Mutation       string `gluamapper:"mutation" json:"mutation" validate:"omitempty,oneof=owner anyone"`
	DefaultPayload string `gluamapper:"default_payload" json:"default_payload"`
}

// DefaultPrograms - the message and greeting record types
func DefaultPrograms() []ProgramConfiguration {
	return []ProgramConfiguration{
		{
			RecordName:    MessageRecordName,
			MaximumLength: MessageLength,
			Mutation:      "owner",
		},
		{
			RecordName:     GreetingRecordName,
			MaximumLength:  GreetingLength,
			Counter:        true,
			Mutation:       "anyone",
			DefaultPayload: GreetingDefaultText,
		},
	}
}

// ProgramId - the id used when a record type does not set one
//
// derived from the record name so every node of a chain agrees on it
func ProgramId(recordName string) account.Account {
	return account.Account(sha3.Sum256([]byte("recordd program:" + recordName)))
}

// Programs - validate the entries and convert them to program
// configurations
func Programs(entries []ProgramConfiguration) ([]*program.Configuration, error) {
	if 0 == len(entries) {
		return nil, fault.MissingParameters
	}

	validate := validator.New()

	ids := make(map[account.Account]struct{})
	names := make(map[string]struct{})

	result := make([]*program.Configuration, 0, len(entries))
	for i, entry := range entries {
		if err := validate.Struct(entry); nil != err {
			return nil, fmt.Errorf("programs[%d]: %s", i, err)
		}

		id := ProgramId(entry.RecordName)
		if "" != entry.Id {
			a, err := account.FromBase58(entry.Id)
			if nil != err {
				return nil, fmt.Errorf("programs[%d]: id: %q  error: %s", i, entry.Id, err)
			}
			id = a
		}

		if _, ok := ids[id]; ok {
			return nil, fault.AlreadyRegistered
		}
		ids[id] = struct{}{}
		if _, ok := names[entry.RecordName]; ok {
			return nil, fault.DuplicateRecordName
		}
		names[entry.RecordName] = struct{}{}

		mutation, err := program.PolicyFromString(entry.Mutation)
		if nil != err {
			return nil, err
		}

		result = append(result, &program.Configuration{
			Id:             id,
			RecordName:     entry.RecordName,
			MaximumLength:  entry.MaximumLength,
			Counter:        entry.Counter,
			Mutation:       mutation,
			DefaultPayload: entry.DefaultPayload,
		})
	}
	return result, nil
}
