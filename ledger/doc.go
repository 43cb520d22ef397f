// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the transfer engine over balances, allowances and operators
//
// Every mutating call runs inside a single storage transaction: either
// all of its writes and events are committed, or none are.  Committed
// events are appended to the event log and then passed to the notifier.
//
// The caller identity is always an explicit parameter; authorisation of
// mint and burn is left to the entry point.
package ledger
