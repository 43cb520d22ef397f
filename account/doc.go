// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - 160 bit ledger addresses and the ed25519 keys
// that control them
//
// the text form of an address is Base58 of the 20 address bytes
// followed by the first 4 bytes of their SHA3-256 digest; a "0x"
// prefixed hex string is also accepted on input
//
// the zero address is reserved: it is never the owner of a balance
// and stands for the mint source and the burn destination
package account
