// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package allowance - amounts an owner lets a spender move for one token id
package allowance

import (
	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/multitokend/account"
	"github.com/bitmark-inc/multitokend/event"
	"github.com/bitmark-inc/multitokend/ledgererrors"
	"github.com/bitmark-inc/multitokend/storage"
	"github.com/bitmark-inc/multitokend/value"
)

// Registry - allowances held in a storage pool
type Registry struct {
	pool storage.Handle
}

// New - allowances stored in the given pool
func New(pool storage.Handle) *Registry {
	return &Registry{
		pool: pool,
	}
}

// owner ++ spender ++ id
func key(owner account.Address, spender account.Address, id value.TokenId) []byte {
	k := make([]byte, 0, 2*account.AddressLength+value.Length)
	k = append(k, owner[:]...)
	k = append(k, spender[:]...)
	return append(k, id.Bytes()...)
}

// Get - remaining allowance, zero if never approved
func (r *Registry) Get(owner account.Address, spender account.Address, id value.TokenId) value.Amount {
	buffer := r.pool.Get(key(owner, spender, id))
	if nil == buffer {
		return value.Amount{}
	}
	amount, err := value.AmountFromBytes(buffer)
	logger.PanicIfError("allowance.Get", err)
	return amount
}

// Set - overwrite an allowance and emit Approval
func (r *Registry) Set(trx storage.Transaction, emitter event.Emitter, owner account.Address, spender account.Address, id value.TokenId, amount value.Amount) error {
	if owner.IsZero() {
		return ledgererrors.NewInvalidSender(owner)
	}
	if spender.IsZero() {
		return ledgererrors.NewInvalidReceiver(spender)
	}

	r.store(trx, owner, spender, id, amount)

	emitter.Emit(event.Approval{
		Owner:   owner,
		Spender: spender,
		Id:      id,
		Value:   amount,
	})
	return nil
}

// Consume - reduce an allowance by an amount no larger than it
func (r *Registry) Consume(trx storage.Transaction, owner account.Address, spender account.Address, id value.TokenId, amount value.Amount) error {
	allowance := r.Get(owner, spender, id)
	if allowance.Less(amount) {
		return ledgererrors.NewInsufficientAllowance(owner, allowance, amount, id)
	}
	remainder, _ := allowance.Sub(amount)
	r.store(trx, owner, spender, id, remainder)
	return nil
}

func (r *Registry) store(trx storage.Transaction, owner account.Address, spender account.Address, id value.TokenId, amount value.Amount) {
	k := key(owner, spender, id)
	if amount.IsZero() {
		trx.Delete(r.pool, k)
	} else {
		trx.Put(r.pool, k, amount.Bytes())
	}
}
