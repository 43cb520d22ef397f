// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledgererrors holds the rejections raised by the token ledger.
//
// Each error carries the offending addresses, token id and amounts so
// that a client can report exactly why a request was refused.  Any of
// these errors aborts the enclosing storage transaction.
package ledgererrors
