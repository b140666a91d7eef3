// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"unicode/utf8"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/util"
)

// Message - the bytes covered by every signature
//
// Varint64(tag) followed by the fields in struct order, each variable
// length field prefixed by Varint64(length):
//
//   tag ++ program ++ operation ++ count ++ [address ++ flags] ++ arguments ++ nonce
func (instruction *Instruction) Message() (Packed, error) {
	if instruction.ProgramId.IsZero() {
		return nil, fault.MissingParameters
	}
	if 0 == len(instruction.Operation) || len(instruction.Operation) > maximumOperationLength || !utf8.ValidString(instruction.Operation) {
		return nil, fault.InvalidOperation
	}
	if len(instruction.Accounts) > maximumAccounts {
		return nil, fault.InvalidArguments
	}
	if len(instruction.Arguments) > maximumArgumentsLength {
		return nil, fault.InvalidArguments
	}

	message := util.ToVarint64(instructionTag)
	message = appendBytes(message, instruction.ProgramId.Bytes())
	message = appendString(message, instruction.Operation)
	message = appendUint64(message, uint64(len(instruction.Accounts)))
	for _, a := range instruction.Accounts {
		flags := byte(0)
		if a.IsSigner {
			flags |= flagSigner
		}
		if a.IsWritable {
			flags |= flagWritable
		}
		message = append(message, a.Address.Bytes()...)
		message = append(message, flags)
	}
	message = appendBytes(message, instruction.Arguments)
	message = appendUint64(message, instruction.Nonce)
	return message, nil
}

// Pack - message followed by the signatures
//
// all required signatures must be present and valid
//
// NOTE: returns the unsigned message on signature failure - for
//       debugging/testing
func (instruction *Instruction) Pack() (Packed, error) {
	message, err := instruction.Message()
	if nil != err {
		return nil, err
	}

	err = instruction.verify(message)
	if nil != err {
		return message, err
	}

	packed := appendUint64(message, uint64(len(instruction.Signatures)))
	for _, signature := range instruction.Signatures {
		packed = appendBytes(packed, signature)
	}
	return packed, nil
}

// Sign - add signatures for every signer account
//
// keys may be given in any order, one is required per signer
func (instruction *Instruction) Sign(keys ...*account.PrivateKey) error {
	message, err := instruction.Message()
	if nil != err {
		return err
	}

	signers := instruction.Signers()
	signatures := make([]account.Signature, len(signers))
	for i, signer := range signers {
		for _, key := range keys {
			if key.Account() == signer {
				signatures[i] = key.Sign(message)
				break
			}
		}
		if nil == signatures[i] {
			return fault.MissingSignature
		}
	}
	instruction.Signatures = signatures
	return nil
}

// Verify - check that every signer account has signed the message
func (instruction *Instruction) Verify() error {
	message, err := instruction.Message()
	if nil != err {
		return err
	}
	return instruction.verify(message)
}

func (instruction *Instruction) verify(message Packed) error {
	seen := make(map[account.Account]struct{}, len(instruction.Accounts))
	for _, a := range instruction.Accounts {
		if _, ok := seen[a.Address]; ok {
			return fault.DuplicateAccount
		}
		seen[a.Address] = struct{}{}
	}

	signers := instruction.Signers()
	if len(instruction.Signatures) < len(signers) {
		return fault.MissingSignature
	}
	if len(instruction.Signatures) > len(signers) {
		return fault.TooManySignatures
	}
	for i, signer := range signers {
		err := signer.CheckSignature(message, instruction.Signatures[i])
		if nil != err {
			return err
		}
	}
	return nil
}

// append a single field to a buffer
//
// the field is prefixed by Varint64(length)
func appendString(buffer Packed, s string) Packed {
	return util.AppendBytes(buffer, []byte(s))
}

// append a bytes to a buffer
//
// the field is prefixed by Varint64(length)
func appendBytes(buffer Packed, data []byte) Packed {
	return util.AppendBytes(buffer, data)
}

// append a Varint64 to buffer
func appendUint64(buffer Packed, value uint64) Packed {
	return append(buffer, util.ToVarint64(value)...)
}
