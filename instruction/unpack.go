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

// Unpack - turn a byte slice into an instruction
//
// returns the instruction and the number of bytes consumed; the
// signatures are decoded but not verified
func (packed Packed) Unpack() (i *Instruction, n int, e error) {

	defer func() {
		if r := recover(); nil != r {
			i = nil
			n = 0
			e = fault.NotInstructionPack
		}
	}()

	tag, n := util.ClippedVarint64(packed, 1, 8192)
	if 0 == n || instructionTag != tag {
		return nil, 0, fault.NotInstructionPack
	}

	instruction := &Instruction{}

	// program
	programId, count := util.ClippedBytes(packed[n:], account.PublicKeySize)
	if 0 == count || account.PublicKeySize != len(programId) {
		return nil, 0, fault.NotInstructionPack
	}
	n += count
	copy(instruction.ProgramId[:], programId)

	// operation
	operation, count := util.ClippedBytes(packed[n:], maximumOperationLength)
	if 0 == count || 0 == len(operation) || !utf8.Valid(operation) {
		return nil, 0, fault.NotInstructionPack
	}
	n += count
	instruction.Operation = string(operation)

	// accounts
	accountCount, count := util.ClippedVarint64(packed[n:], 0, maximumAccounts)
	if 0 == count {
		return nil, 0, fault.NotInstructionPack
	}
	n += count
	instruction.Accounts = make([]AccountMeta, accountCount)
	for j := 0; j < accountCount; j += 1 {
		a := &instruction.Accounts[j]
		n += copy(a.Address[:], packed[n:n+account.PublicKeySize])
		flags := packed[n]
		n += 1
		if 0 != flags&^flagMask {
			return nil, 0, fault.NotInstructionPack
		}
		a.IsSigner = 0 != flags&flagSigner
		a.IsWritable = 0 != flags&flagWritable
	}

	// arguments
	arguments, count := util.ClippedBytes(packed[n:], maximumArgumentsLength)
	if 0 == count {
		return nil, 0, fault.NotInstructionPack
	}
	n += count
	instruction.Arguments = arguments

	// nonce
	nonce, count := util.FromVarint64(packed[n:])
	if 0 == count {
		return nil, 0, fault.NotInstructionPack
	}
	n += count
	instruction.Nonce = nonce

	// signatures
	signatureCount, count := util.ClippedVarint64(packed[n:], 0, maximumAccounts)
	if 0 == count {
		return nil, 0, fault.NotInstructionPack
	}
	n += count
	instruction.Signatures = make([]account.Signature, signatureCount)
	for j := 0; j < signatureCount; j += 1 {
		signature, count := util.ClippedBytes(packed[n:], maximumSignatureLength)
		if 0 == count {
			return nil, 0, fault.NotInstructionPack
		}
		n += count
		instruction.Signatures[j] = signature
	}

	return instruction, n, nil
}
