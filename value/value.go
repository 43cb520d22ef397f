// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package value

import (
	"strings"

	"github.com/holiman/uint256"
)

// Length - bytes in the storage form
const Length = 32

const hexPrefix = "0x"

// decode text into a 256 bit integer
func parse(s string, n *uint256.Int) bool {
	if strings.HasPrefix(s, hexPrefix) {
		digits := strings.TrimLeft(s[len(hexPrefix):], "0")
		if "" == digits {
			if len(s) == len(hexPrefix) {
				return false
			}
			digits = "0"
		}
		// SetFromHex rejects leading zeros
		return nil == n.SetFromHex(hexPrefix+digits)
	}
	return nil == n.SetFromDecimal(s)
}

// 32 bytes big endian
func pack(n *uint256.Int) []byte {
	b := n.Bytes32()
	return b[:]
}

// decode big endian bytes, false if too long
func unpack(buffer []byte, n *uint256.Int) bool {
	if len(buffer) > Length {
		return false
	}
	n.SetBytes(buffer)
	return true
}
