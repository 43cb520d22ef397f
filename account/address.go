// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"encoding/hex"
	"strings"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/multitokend/fault"
)

// miscellaneous constants
const (
	AddressLength  = 20
	checksumLength = 4
	hexPrefix      = "0x"
)

// Address - an opaque account identifier
type Address [AddressLength]byte

// Zero - the reserved address
var Zero Address

// AddressFromBytes - convert a byte slice to an address
func AddressFromBytes(buffer []byte) (Address, error) {
	a := Address{}
	if AddressLength != len(buffer) {
		return a, fault.ErrInvalidAddressLength
	}
	copy(a[:], buffer)
	return a, nil
}

// AddressFromPublicKey - derive the address controlled by an ed25519 public key
//
// this is the last 20 bytes of SHA3-256(public key)
func AddressFromPublicKey(publicKey []byte) Address {
	digest := sha3.Sum256(publicKey)
	a := Address{}
	copy(a[:], digest[len(digest)-AddressLength:])
	return a
}

// AddressFromString - decode either the Base58 or the 0x-hex form
func AddressFromString(s string) (Address, error) {
	if strings.HasPrefix(s, hexPrefix) {
		buffer, err := hex.DecodeString(s[len(hexPrefix):])
		if nil != err {
			return Address{}, fault.ErrCannotDecodeAddress
		}
		return AddressFromBytes(buffer)
	}

	decoded, err := base58.Decode(s)
	if nil != err || 0 == len(decoded) {
		return Address{}, fault.ErrCannotDecodeAddress
	}
	if AddressLength+checksumLength != len(decoded) {
		return Address{}, fault.ErrInvalidAddressLength
	}

	checksumStart := len(decoded) - checksumLength
	checksum := sha3.Sum256(decoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], decoded[checksumStart:]) {
		return Address{}, fault.ErrChecksumMismatch
	}
	return AddressFromBytes(decoded[:checksumStart])
}

// IsZero - true for the reserved address
func (a Address) IsZero() bool {
	return Zero == a
}

// Bytes - copy of the raw bytes
func (a Address) Bytes() []byte {
	buffer := make([]byte, AddressLength)
	copy(buffer, a[:])
	return buffer
}

// String - Base58 encoding with checksum
func (a Address) String() string {
	checksum := sha3.Sum256(a[:])
	buffer := make([]byte, 0, AddressLength+checksumLength)
	buffer = append(buffer, a[:]...)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// Hex - 0x prefixed hex form
func (a Address) Hex() string {
	return hexPrefix + hex.EncodeToString(a[:])
}

// MarshalText - convert an address to its Base58 JSON form
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - convert Base58 or hex text to an address
func (a *Address) UnmarshalText(s []byte) error {
	decoded, err := AddressFromString(string(s))
	if nil != err {
		return err
	}
	*a = decoded
	return nil
}
