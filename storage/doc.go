// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage maintains the on-disk ledger state
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// All writes go through a Transaction which buffers them in a LevelDB
// batch and an overlay cache, so reads inside the transaction see
// earlier writes.  Commit writes the batch atomically; Abort discards
// it.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++       = concatenation of byte data
// 3. owner    = 20 byte account address
// 4. spender  = 20 byte account address
// 5. id       = token id as 32 byte big endian
// 6. amount   = 32 byte big endian
// 7. count    = sequence value as big endian uint64 (8 bytes)
//
// Balances:
//
//   B ++ owner ++ id            - token balance, absent when zero
//                                 data: amount
//
// Allowances:
//
//   A ++ owner ++ spender ++ id - units spender may move for owner, absent when zero
//                                 data: amount
//
// Operators:
//
//   O ++ owner ++ spender       - spender may move any of owner's tokens
//                                 data: 0x01
//
// Supply:
//
//   C ++ id                     - cumulative minted
//                                 data: amount
//   D ++ id                     - cumulative burned
//                                 data: amount
//
// Metadata:
//
//   M ++ name                   - token metadata field ("name", "symbol", "decimals", "owner")
//                                 data: field value bytes
//
// Events:
//
//   E ++ count                  - committed events in order
//                                 data: JSON event record
//   N ++ "events"               - next event count
//                                 data: count
//
// Testing:
//   Z ++ key                    - testing data
package storage
