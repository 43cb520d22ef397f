// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised           = ExistsError("already initialised")
	ErrAmountOverflow               = RecordError("amount overflow")
	ErrCannotDecodeAddress          = InvalidError("cannot decode address")
	ErrCertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ErrChecksumMismatch             = ProcessError("checksum mismatch")
	ErrConfigurationNotATable       = InvalidError("configuration did not return a table")
	ErrCryptoFailed                 = ProcessError("crypto failed")
	ErrDuplicateRequest             = ExistsError("duplicate request")
	ErrIdentityNameAlreadyExists    = ExistsError("identity name already exists")
	ErrIdentityNameNotFound         = NotFoundError("identity name not found")
	ErrInvalidAddressLength         = LengthError("invalid address length")
	ErrInvalidAmount                = InvalidError("invalid amount")
	ErrInvalidCount                 = InvalidError("invalid count")
	ErrInvalidCursor                = InvalidError("invalid cursor")
	ErrInvalidIPAddress             = InvalidError("invalid IP address")
	ErrInvalidIdentityName          = InvalidError("invalid identity name")
	ErrInvalidItem                  = InvalidError("invalid item")
	ErrInvalidLoggerChannel         = InvalidError("invalid logger channel")
	ErrInvalidPasswordLength        = LengthError("invalid password length")
	ErrInvalidPrivateKey            = InvalidError("invalid private key")
	ErrInvalidPrivateKeyFile        = InvalidError("invalid private key file")
	ErrInvalidPublicKey             = InvalidError("invalid public key")
	ErrInvalidPublicKeyFile         = InvalidError("invalid public key file")
	ErrInvalidSeedLength            = LengthError("invalid seed length")
	ErrInvalidSignature             = InvalidError("invalid signature")
	ErrInvalidStructPointer         = InvalidError("invalid struct pointer")
	ErrInvalidTokenId               = InvalidError("invalid token id")
	ErrKeyFileAlreadyExists         = ExistsError("key file already exists")
	ErrMetadataMismatch             = RecordError("token metadata does not match database")
	ErrMissingParameters            = InvalidError("missing parameters")
	ErrNotAMinter                   = InvalidError("caller is not a minter")
	ErrNotAPrivateIdentity          = InvalidError("identity has no private key")
	ErrNotAvailableInReadOnlyMode   = InvalidError("not available in read-only mode")
	ErrNotInitialised               = NotFoundError("not initialised")
	ErrPasswordMismatch             = InvalidError("password mismatch")
	ErrRateLimiting                 = InvalidError("rate limiting")
	ErrRequestExpired               = InvalidError("request timestamp outside of window")
	ErrTransactionAlreadyInUse      = ProcessError("transaction already in use")
	ErrTransactionNotInUse          = ProcessError("transaction not in use")
	ErrWrongPassword                = InvalidError("wrong password")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
