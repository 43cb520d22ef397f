// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package value

import (
	"github.com/holiman/uint256"

	"github.com/bitmark-inc/multitokend/fault"
)

// Amount - a number of token units
type Amount struct {
	n uint256.Int
}

// MaximumAmount - the largest representable amount
var MaximumAmount = Amount{n: *new(uint256.Int).SetAllOne()}

// NewAmount - amount from a small integer
func NewAmount(n uint64) Amount {
	a := Amount{}
	a.n.SetUint64(n)
	return a
}

// AmountFromBytes - decode big endian bytes (at most 32)
func AmountFromBytes(buffer []byte) (Amount, error) {
	a := Amount{}
	if !unpack(buffer, &a.n) {
		return Amount{}, fault.ErrInvalidAmount
	}
	return a, nil
}

// AmountFromString - decode decimal or 0x hex
func AmountFromString(s string) (Amount, error) {
	a := Amount{}
	if !parse(s, &a.n) {
		return Amount{}, fault.ErrInvalidAmount
	}
	return a, nil
}

// Bytes - 32 byte big endian form
func (a Amount) Bytes() []byte {
	return pack(&a.n)
}

// IsZero - true if no units
func (a Amount) IsZero() bool {
	return a.n.IsZero()
}

// Less - a < b
func (a Amount) Less(b Amount) bool {
	return a.n.Lt(&b.n)
}

// Add - a + b, the flag is set if the result wrapped
func (a Amount) Add(b Amount) (Amount, bool) {
	r := Amount{}
	_, overflow := r.n.AddOverflow(&a.n, &b.n)
	return r, overflow
}

// Sub - a - b, the flag is set if the result wrapped
func (a Amount) Sub(b Amount) (Amount, bool) {
	r := Amount{}
	_, underflow := r.n.SubOverflow(&a.n, &b.n)
	return r, underflow
}

// String - decimal form
func (a Amount) String() string {
	return a.n.Dec()
}

// MarshalText - decimal JSON form
func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - decimal or hex JSON form
func (a *Amount) UnmarshalText(s []byte) error {
	decoded, err := AmountFromString(string(s))
	if nil != err {
		return err
	}
	*a = decoded
	return nil
}
