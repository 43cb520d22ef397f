// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/multitokend/fault"
	"github.com/bitmark-inc/multitokend/storage"
	"github.com/bitmark-inc/multitokend/value"
)

// Supply - totals for one token id
//
// Total is the outstanding supply and always equals the sum of all
// balances. Minted and Burned are cumulative and stop at the maximum
// amount, so Total == Minted - Burned only while neither has saturated
type Supply struct {
	Minted value.Amount `json:"minted"`
	Burned value.Amount `json:"burned"`
	Total  value.Amount `json:"total"`
}

func readAmount(pool storage.Handle, id value.TokenId) value.Amount {
	buffer := pool.Get(id.Bytes())
	if nil == buffer {
		return value.Amount{}
	}
	amount, err := value.AmountFromBytes(buffer)
	logger.PanicIfError("ledger.readAmount", err)
	return amount
}

// read through the transaction so several updates in one call accumulate
func readTransactionAmount(trx storage.Transaction, pool storage.Handle, id value.TokenId) value.Amount {
	buffer := trx.Get(pool, id.Bytes())
	if nil == buffer {
		return value.Amount{}
	}
	amount, err := value.AmountFromBytes(buffer)
	logger.PanicIfError("ledger.readTransactionAmount", err)
	return amount
}

// increase a cumulative counter, holding at the maximum
func saturatingAdd(trx storage.Transaction, pool storage.Handle, id value.TokenId, amount value.Amount) {
	total, overflow := readTransactionAmount(trx, pool, id).Add(amount)
	if overflow {
		total = value.MaximumAmount
	}
	trx.Put(pool, id.Bytes(), total.Bytes())
}

// new units enter the outstanding supply
//
// fails only if the sum of all balances would not fit an amount
func (l *Engine) mintSupply(trx storage.Transaction, id value.TokenId, amount value.Amount) error {
	if amount.IsZero() {
		return nil
	}
	total, overflow := readTransactionAmount(trx, l.pools.Outstanding, id).Add(amount)
	if overflow {
		return fault.ErrAmountOverflow
	}
	trx.Put(l.pools.Outstanding, id.Bytes(), total.Bytes())
	saturatingAdd(trx, l.pools.Minted, id, amount)
	return nil
}

// units leave the outstanding supply
//
// the caller has already debited them from a balance so this cannot underflow
func (l *Engine) burnSupply(trx storage.Transaction, id value.TokenId, amount value.Amount) {
	if amount.IsZero() {
		return
	}
	current := readTransactionAmount(trx, l.pools.Outstanding, id)
	total, underflow := current.Sub(amount)
	if underflow {
		logger.Panicf("ledger.burnSupply: id: %s  burn: %s > outstanding: %s", id, amount, current)
	}
	trx.Put(l.pools.Outstanding, id.Bytes(), total.Bytes())
	saturatingAdd(trx, l.pools.Burned, id, amount)
}

// TotalSupply - minted, burned and outstanding units of id
func (l *Engine) TotalSupply(id value.TokenId) Supply {
	l.RLock()
	defer l.RUnlock()

	return Supply{
		Minted: readAmount(l.pools.Minted, id),
		Burned: readAmount(l.pools.Burned, id),
		Total:  readAmount(l.pools.Outstanding, id),
	}
}
