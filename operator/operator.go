// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package operator - blanket rights for a spender over all of an owner's tokens
package operator

import (
	"github.com/bitmark-inc/multitokend/account"
	"github.com/bitmark-inc/multitokend/event"
	"github.com/bitmark-inc/multitokend/ledgererrors"
	"github.com/bitmark-inc/multitokend/storage"
)

// stored for approved pairs, revoked pairs have no record
var approvedFlag = []byte{0x01}

// Registry - operator approvals held in a storage pool
type Registry struct {
	pool storage.Handle
}

// New - operator approvals stored in the given pool
func New(pool storage.Handle) *Registry {
	return &Registry{
		pool: pool,
	}
}

// owner ++ spender
func key(owner account.Address, spender account.Address) []byte {
	k := make([]byte, 0, 2*account.AddressLength)
	k = append(k, owner[:]...)
	return append(k, spender[:]...)
}

// Get - true if spender is an operator for owner
func (r *Registry) Get(owner account.Address, spender account.Address) bool {
	return r.pool.Has(key(owner, spender))
}

// Set - grant or revoke operator rights and emit OperatorSet
//
// both a zero owner and a zero spender are reported as an invalid sender
func (r *Registry) Set(trx storage.Transaction, emitter event.Emitter, owner account.Address, spender account.Address, approved bool) error {
	if owner.IsZero() {
		return ledgererrors.NewInvalidSender(owner)
	}
	if spender.IsZero() {
		return ledgererrors.NewInvalidSender(spender)
	}

	k := key(owner, spender)
	if approved {
		trx.Put(r.pool, k, approvedFlag)
	} else {
		trx.Delete(r.pool, k)
	}

	emitter.Emit(event.OperatorSet{
		Owner:    owner,
		Spender:  spender,
		Approved: approved,
	})
	return nil
}
