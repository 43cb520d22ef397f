// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package value

import (
	"github.com/holiman/uint256"

	"github.com/bitmark-inc/multitokend/fault"
)

// TokenId - identifies one asset class within the ledger
type TokenId struct {
	n uint256.Int
}

// NewTokenId - token id from a small integer
func NewTokenId(n uint64) TokenId {
	id := TokenId{}
	id.n.SetUint64(n)
	return id
}

// TokenIdFromBytes - decode big endian bytes (at most 32)
func TokenIdFromBytes(buffer []byte) (TokenId, error) {
	id := TokenId{}
	if !unpack(buffer, &id.n) {
		return TokenId{}, fault.ErrInvalidTokenId
	}
	return id, nil
}

// TokenIdFromString - decode decimal or 0x hex
func TokenIdFromString(s string) (TokenId, error) {
	id := TokenId{}
	if !parse(s, &id.n) {
		return TokenId{}, fault.ErrInvalidTokenId
	}
	return id, nil
}

// Bytes - 32 byte big endian form
func (id TokenId) Bytes() []byte {
	return pack(&id.n)
}

// String - decimal form
func (id TokenId) String() string {
	return id.n.Dec()
}

// MarshalText - decimal JSON form
func (id TokenId) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - decimal or hex JSON form
func (id *TokenId) UnmarshalText(s []byte) error {
	decoded, err := TokenIdFromString(string(s))
	if nil != err {
		return err
	}
	*id = decoded
	return nil
}
