// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - a queuing system for committed ledger events
//
// a broadcast queue fans each message out to every listener, a slow
// listener loses messages rather than blocking the sender
package messagebus
