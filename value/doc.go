// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package value - unsigned 256 bit token identifiers and amounts
//
// both share the same numeric domain but are separate types so one
// can never be passed where the other is expected
//
// storage form is 32 bytes big endian; text form is decimal, and
// "0x" prefixed hex is also accepted on input
package value
