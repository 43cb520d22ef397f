// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package balance - per owner and token id balances
//
// an absent record is a zero balance and a balance reduced to zero is
// deleted, so the pool only holds non-zero entries
package balance

import (
	"errors"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/multitokend/account"
	"github.com/bitmark-inc/multitokend/fault"
	"github.com/bitmark-inc/multitokend/ledgererrors"
	"github.com/bitmark-inc/multitokend/storage"
	"github.com/bitmark-inc/multitokend/value"
)

// Ledger - balances held in a storage pool
type Ledger struct {
	pool storage.Handle
}

// Holding - one non-zero balance of an owner
type Holding struct {
	Id    value.TokenId `json:"id"`
	Value value.Amount  `json:"value"`
}

// New - balances stored in the given pool
func New(pool storage.Handle) *Ledger {
	return &Ledger{
		pool: pool,
	}
}

// owner ++ id
func key(owner account.Address, id value.TokenId) []byte {
	k := make([]byte, 0, account.AddressLength+value.Length)
	k = append(k, owner[:]...)
	return append(k, id.Bytes()...)
}

// Get - current balance, zero if unknown
func (l *Ledger) Get(owner account.Address, id value.TokenId) value.Amount {
	buffer := l.pool.Get(key(owner, id))
	if nil == buffer {
		return value.Amount{}
	}
	amount, err := value.AmountFromBytes(buffer)
	logger.PanicIfError("balance.Get", err)
	return amount
}

// Credit - add to a balance
func (l *Ledger) Credit(trx storage.Transaction, owner account.Address, id value.TokenId, amount value.Amount) error {
	balance := l.Get(owner, id)
	total, overflow := balance.Add(amount)
	if overflow {
		return fault.ErrAmountOverflow
	}
	l.store(trx, owner, id, total)
	return nil
}

// Debit - subtract from a balance, which must be large enough
func (l *Ledger) Debit(trx storage.Transaction, owner account.Address, id value.TokenId, amount value.Amount) error {
	balance := l.Get(owner, id)
	if balance.Less(amount) {
		return ledgererrors.NewInsufficientBalance(owner, balance, amount, id)
	}
	remainder, _ := balance.Sub(amount)
	l.store(trx, owner, id, remainder)
	return nil
}

func (l *Ledger) store(trx storage.Transaction, owner account.Address, id value.TokenId, amount value.Amount) {
	k := key(owner, id)
	if amount.IsZero() {
		trx.Delete(l.pool, k)
	} else {
		trx.Put(l.pool, k, amount.Bytes())
	}
}

var errEndOfOwner = errors.New("end of owner")

// Holdings - all committed non-zero balances of an owner in token id order
func (l *Ledger) Holdings(owner account.Address) ([]Holding, error) {
	holdings := []Holding{}

	err := l.pool.NewFetchCursor().Seek(owner[:]).Map(func(k []byte, v []byte) error {
		if len(k) != account.AddressLength+value.Length {
			return fault.ErrInvalidItem
		}
		if owner != addressOf(k) {
			return errEndOfOwner
		}
		id, err := value.TokenIdFromBytes(k[account.AddressLength:])
		if nil != err {
			return err
		}
		amount, err := value.AmountFromBytes(v)
		if nil != err {
			return err
		}
		holdings = append(holdings, Holding{Id: id, Value: amount})
		return nil
	})
	if nil != err && errEndOfOwner != err {
		return nil, err
	}
	return holdings, nil
}

func addressOf(k []byte) account.Address {
	a := account.Address{}
	copy(a[:], k[:account.AddressLength])
	return a
}
