// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/multitokend/account"
	"github.com/bitmark-inc/multitokend/allowance"
	"github.com/bitmark-inc/multitokend/balance"
	"github.com/bitmark-inc/multitokend/event"
	"github.com/bitmark-inc/multitokend/ledgererrors"
	"github.com/bitmark-inc/multitokend/operator"
	"github.com/bitmark-inc/multitokend/storage"
	"github.com/bitmark-inc/multitokend/value"
)

// Ledger - operations available to the entry point
type Ledger interface {
	BalanceOf(account.Address, value.TokenId) value.Amount
	Allowance(account.Address, account.Address, value.TokenId) value.Amount
	IsOperator(account.Address, account.Address) bool
	TotalSupply(value.TokenId) Supply
	Holdings(account.Address) ([]balance.Holding, error)
	Metadata() Metadata
	Events(uint64, int) ([]event.Record, uint64, error)

	Mint(account.Address, value.TokenId, value.Amount) error
	Burn(account.Address, value.TokenId, value.Amount) error
	Transfer(account.Address, account.Address, value.TokenId, value.Amount) error
	TransferFrom(account.Address, account.Address, account.Address, value.TokenId, value.Amount) error
	Approve(account.Address, account.Address, value.TokenId, value.Amount) error
	SetOperator(account.Address, account.Address, bool) error
	SpendAllowance(account.Address, account.Address, value.TokenId, value.Amount) error
}

// Handles - storage pools of the ledger
type Handles struct {
	Balances    storage.Handle
	Allowances  storage.Handle
	Operators   storage.Handle
	Minted      storage.Handle
	Burned      storage.Handle
	Outstanding storage.Handle
	Metadata    storage.Handle
	Events      storage.Handle
}

// Notifier - receives each event after its transaction commits
type Notifier interface {
	Notify(e event.Event, packed []byte)
}

// Engine - the ledger state machine
//
// one call runs at a time, reads may share
type Engine struct {
	sync.RWMutex

	log            *logger.L
	pools          Handles
	balances       *balance.Ledger
	allowances     *allowance.Registry
	operators      *operator.Registry
	newTransaction func() (storage.Transaction, error)
	notifier       Notifier
}

// New - create a ledger engine
func New(log *logger.L, pools Handles, newTransaction func() (storage.Transaction, error), notifier Notifier) *Engine {
	return &Engine{
		log:            log,
		pools:          pools,
		balances:       balance.New(pools.Balances),
		allowances:     allowance.New(pools.Allowances),
		operators:      operator.New(pools.Operators),
		newTransaction: newTransaction,
		notifier:       notifier,
	}
}

// run one mutation in a transaction
//
// on error nothing is written and nothing is notified
func (l *Engine) execute(operation string, f func(storage.Transaction, event.Emitter) error) error {
	l.Lock()
	defer l.Unlock()

	trx, err := l.newTransaction()
	if nil != err {
		l.log.Errorf("%s: begin transaction error: %s", operation, err)
		return err
	}

	events := &event.Buffer{}

	err = f(trx, events)
	if nil != err {
		trx.Abort()
		l.log.Debugf("%s: rejected: %s", operation, err)
		return err
	}

	packed, err := l.appendEvents(trx, events.Events())
	if nil != err {
		trx.Abort()
		l.log.Errorf("%s: event log error: %s", operation, err)
		return err
	}

	err = trx.Commit()
	if nil != err {
		l.log.Criticalf("%s: commit error: %s", operation, err)
		return err
	}

	if nil != l.notifier {
		for i, e := range events.Events() {
			l.notifier.Notify(e, packed[i])
		}
	}
	return nil
}

// update - move value between accounts, zero from mints and zero to burns
func (l *Engine) update(trx storage.Transaction, emitter event.Emitter, from account.Address, to account.Address, id value.TokenId, amount value.Amount) error {
	if from.IsZero() {
		err := l.mintSupply(trx, id, amount)
		if nil != err {
			return err
		}
	} else {
		err := l.balances.Debit(trx, from, id, amount)
		if nil != err {
			return err
		}
	}

	if to.IsZero() {
		l.burnSupply(trx, id, amount)
	} else {
		err := l.balances.Credit(trx, to, id, amount)
		if nil != err {
			return err
		}
	}

	emitter.Emit(event.Transfer{
		From:  from,
		To:    to,
		Id:    id,
		Value: amount,
	})
	return nil
}

func (l *Engine) transfer(trx storage.Transaction, emitter event.Emitter, from account.Address, to account.Address, id value.TokenId, amount value.Amount) error {
	if from.IsZero() {
		return ledgererrors.NewInvalidSender(from)
	}
	if to.IsZero() {
		return ledgererrors.NewInvalidReceiver(to)
	}
	return l.update(trx, emitter, from, to, id, amount)
}

// Mint - create new units for an account
func (l *Engine) Mint(to account.Address, id value.TokenId, amount value.Amount) error {
	l.log.Infof("mint: to: %s  id: %s  value: %s", to, id, amount)
	return l.execute("mint", func(trx storage.Transaction, emitter event.Emitter) error {
		return l.update(trx, emitter, account.Zero, to, id, amount)
	})
}

// Burn - destroy units held by an account
func (l *Engine) Burn(owner account.Address, id value.TokenId, amount value.Amount) error {
	l.log.Infof("burn: owner: %s  id: %s  value: %s", owner, id, amount)
	return l.execute("burn", func(trx storage.Transaction, emitter event.Emitter) error {
		current := l.balances.Get(owner, id)
		if current.Less(amount) {
			return ledgererrors.NewInsufficientBalance(owner, current, amount, id)
		}
		return l.update(trx, emitter, owner, account.Zero, id, amount)
	})
}

// Transfer - move units between two real accounts
//
// no allowance or operator check, the entry point only offers this to from itself
func (l *Engine) Transfer(from account.Address, to account.Address, id value.TokenId, amount value.Amount) error {
	l.log.Infof("transfer: from: %s  to: %s  id: %s  value: %s", from, to, id, amount)
	return l.execute("transfer", func(trx storage.Transaction, emitter event.Emitter) error {
		return l.transfer(trx, emitter, from, to, id, amount)
	})
}

// TransferFrom - move units on behalf of from
//
// caller is authorised as from itself, then as an operator of from,
// then by consuming caller's allowance from from
func (l *Engine) TransferFrom(caller account.Address, from account.Address, to account.Address, id value.TokenId, amount value.Amount) error {
	l.log.Infof("transferFrom: caller: %s  from: %s  to: %s  id: %s  value: %s", caller, from, to, id, amount)
	return l.execute("transferFrom", func(trx storage.Transaction, emitter event.Emitter) error {
		if caller != from && !l.operators.Get(from, caller) {
			err := l.allowances.Consume(trx, from, caller, id, amount)
			if nil != err {
				return err
			}
		}
		return l.transfer(trx, emitter, from, to, id, amount)
	})
}

// Approve - caller sets spender's allowance
func (l *Engine) Approve(caller account.Address, spender account.Address, id value.TokenId, amount value.Amount) error {
	l.log.Infof("approve: owner: %s  spender: %s  id: %s  value: %s", caller, spender, id, amount)
	return l.execute("approve", func(trx storage.Transaction, emitter event.Emitter) error {
		return l.allowances.Set(trx, emitter, caller, spender, id, amount)
	})
}

// SetOperator - caller grants or revokes operator rights for spender
func (l *Engine) SetOperator(caller account.Address, spender account.Address, approved bool) error {
	l.log.Infof("setOperator: owner: %s  spender: %s  approved: %t", caller, spender, approved)
	return l.execute("setOperator", func(trx storage.Transaction, emitter event.Emitter) error {
		return l.operators.Set(trx, emitter, caller, spender, approved)
	})
}

// SpendAllowance - consume part of an allowance without moving any units
func (l *Engine) SpendAllowance(owner account.Address, spender account.Address, id value.TokenId, amount value.Amount) error {
	l.log.Infof("spendAllowance: owner: %s  spender: %s  id: %s  value: %s", owner, spender, id, amount)
	return l.execute("spendAllowance", func(trx storage.Transaction, _ event.Emitter) error {
		return l.allowances.Consume(trx, owner, spender, id, amount)
	})
}

// BalanceOf - units of id held by owner
func (l *Engine) BalanceOf(owner account.Address, id value.TokenId) value.Amount {
	l.RLock()
	defer l.RUnlock()
	return l.balances.Get(owner, id)
}

// Allowance - units of id that spender may still move for owner
func (l *Engine) Allowance(owner account.Address, spender account.Address, id value.TokenId) value.Amount {
	l.RLock()
	defer l.RUnlock()
	return l.allowances.Get(owner, spender, id)
}

// IsOperator - true if spender may move all of owner's units
func (l *Engine) IsOperator(owner account.Address, spender account.Address) bool {
	l.RLock()
	defer l.RUnlock()
	return l.operators.Get(owner, spender)
}

// Holdings - all non-zero balances of owner
func (l *Engine) Holdings(owner account.Address) ([]balance.Holding, error) {
	l.RLock()
	defer l.RUnlock()
	return l.balances.Holdings(owner)
}
