// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AuthorisationError GenericError
type BalanceError GenericError
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type MutabilityError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	AddressInUse          = ExistsError("address already holds data")
	AlreadyAllocated      = ExistsError("record already allocated")
	AlreadyInitialised    = ExistsError("already initialised")
	AlreadyRegistered     = ExistsError("program already registered")
	CertificateFileExists = ExistsError("certificate file already exists")
	ConnectionLimit       = ProcessError("connection limit reached")
	CorruptRecord         = RecordError("corrupt record")
	CounterOverflow       = ProcessError("counter overflow")
	CryptoFailed          = InvalidError("crypto failed")
	DatabaseIsNotSet      = ProcessError("database is not set")
	DiscriminatorMismatch = RecordError("discriminator mismatch")
	DuplicateAccount      = InvalidError("duplicate account in instruction")
	DuplicateInstruction  = InvalidError("instruction already processed")
	DuplicateRecordName   = ExistsError("duplicate record name")
	InsufficientFunds     = BalanceError("insufficient funds")
	InvalidArguments      = InvalidError("invalid arguments")
	InvalidChain          = InvalidError("invalid chain")
	InvalidCount          = InvalidError("invalid count")
	InvalidCursor         = InvalidError("invalid cursor")
	InvalidIPAddress      = InvalidError("invalid IP address")
	InvalidKeyLength      = InvalidError("invalid key length")
	InvalidMutationPolicy = InvalidError("invalid mutation policy")
	InvalidOperation      = InvalidError("invalid operation")
	InvalidPortNumber     = InvalidError("invalid port number")
	InvalidPrivateKeyFile = InvalidError("invalid private key file")
	InvalidPublicKeyFile  = InvalidError("invalid public key file")
	InvalidSignature      = AuthorisationError("invalid signature")
	InvalidStructPointer  = InvalidError("invalid struct pointer")
	KeyFileExists         = ExistsError("key file already exists")
	MissingAccount        = InvalidError("missing account")
	MissingListener       = InvalidError("no listen addresses")
	MissingParameters     = InvalidError("missing parameters")
	MissingSignature      = AuthorisationError("missing signature")
	NotAvailableOnLive    = ProcessError("not available on live chain")
	NotConfigurationTable = InvalidError("configuration did not return a table")
	NotFound              = NotFoundError("record not found")
	NotInitialised        = ProcessError("not initialised")
	NotInstructionPack    = InvalidError("not instruction pack")
	NotMutable            = MutabilityError("account is not mutable")
	NotSigner             = AuthorisationError("account is not a signer")
	PayloadTooLong        = LengthError("payload too long")
	ProgramNotFound       = NotFoundError("program not found")
	RateLimiting          = ProcessError("rate limiting")
	RecordSizeMismatch    = RecordError("record size mismatch")
	TooManySignatures     = InvalidError("too many signatures")
	TransactionInUse      = ProcessError("transaction already in use")
	Unauthorized          = AuthorisationError("unauthorised")
	WrongPassword         = InvalidError("wrong password")
	WrongProgramOwner     = RecordError("account owned by another program")
	ZeroCapacity          = InvalidError("capacity must be positive")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AuthorisationError) Error() string { return string(e) }
func (e BalanceError) Error() string       { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e LengthError) Error() string        { return string(e) }
func (e MutabilityError) Error() string    { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }
func (e RecordError) Error() string        { return string(e) }

// determine the class of an error
func IsErrAuthorisation(e error) bool { _, ok := e.(AuthorisationError); return ok }
func IsErrBalance(e error) bool       { _, ok := e.(BalanceError); return ok }
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool        { _, ok := e.(LengthError); return ok }
func IsErrMutability(e error) bool    { _, ok := e.(MutabilityError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool        { _, ok := e.(RecordError); return ok }
