// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package instruction - the signed external form of an invocation
package instruction

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/fault"
)

// Packed - packed instruction bytes
type Packed []byte

// tag at the start of every packed instruction
const instructionTag = 0x52

// limits
const (
	maximumOperationLength = 32
	maximumAccounts        = 16
	maximumArgumentsLength = 4096
	maximumSignatureLength = 128
)

// account flag bits
const (
	flagSigner   = 0x01
	flagWritable = 0x02
	flagMask     = flagSigner | flagWritable
)

// AccountMeta - an account with the capabilities requested for it
type AccountMeta struct {
	Address    account.Account `json:"address"`
	IsSigner   bool            `json:"isSigner"`
	IsWritable bool            `json:"isWritable"`
}

// Instruction - a request to run one operation of one program
type Instruction struct {
	ProgramId  account.Account     `json:"programId"`
	Operation  string              `json:"operation"`
	Accounts   []AccountMeta       `json:"accounts"`
	Arguments  HexBytes            `json:"arguments"`
	Nonce      uint64              `json:"nonce,string"`
	Signatures []account.Signature `json:"signatures"`
}

// Id - identifier of a packed instruction
type Id [32]byte

// MakeId - SHA3-256 of the packed bytes
func (packed Packed) MakeId() Id {
	return Id(sha3.Sum256(packed))
}

func (id Id) String() string {
	return hex.EncodeToString(id[:])
}

// MarshalText - hex form for JSON
func (id Id) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - convert hex JSON to an id
func (id *Id) UnmarshalText(s []byte) error {
	if hex.DecodedLen(len(s)) != len(id) {
		return fault.InvalidArguments
	}
	_, err := hex.Decode(id[:], s)
	return err
}

// MarshalText - convert packed bytes to hex for JSON
func (packed Packed) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(packed))
	b := make([]byte, size)
	hex.Encode(b, packed)
	return b, nil
}

// UnmarshalText - convert hex JSON to packed bytes
func (packed *Packed) UnmarshalText(s []byte) error {
	size := hex.DecodedLen(len(s))
	*packed = make([]byte, size)
	_, err := hex.Decode(*packed, s)
	return err
}

// HexBytes - byte slice carried as hex in JSON
type HexBytes []byte

// MarshalText - convert bytes to hex
func (b HexBytes) MarshalText() ([]byte, error) {
	return []byte(hex.EncodeToString(b)), nil
}

// UnmarshalText - convert hex to bytes
func (b *HexBytes) UnmarshalText(s []byte) error {
	buffer, err := hex.DecodeString(string(s))
	if nil != err {
		return err
	}
	*b = buffer
	return nil
}

// Signers - the accounts whose signatures are required, in order
func (instruction *Instruction) Signers() []account.Account {
	signers := make([]account.Account, 0, len(instruction.Accounts))
	for _, a := range instruction.Accounts {
		if a.IsSigner {
			signers = append(signers, a.Address)
		}
	}
	return signers
}
