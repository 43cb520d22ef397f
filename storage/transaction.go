// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/logger"
)

// Transaction - all-or-nothing group of pool writes
type Transaction interface {
	Abort()
	Begin() error
	Commit() error
	Delete(Handle, []byte)
	Get(Handle, []byte) []byte
	Has(Handle, []byte) bool
	InUse() bool
	Put(Handle, []byte, []byte)
}

// TransactionImpl - transaction over a single data access
type TransactionImpl struct {
	access Access
}

func newTransaction(access Access) Transaction {
	return &TransactionImpl{
		access: access,
	}
}

func (t *TransactionImpl) Begin() error {
	return t.access.Begin()
}

func (t *TransactionImpl) InUse() bool {
	return t.access.InUse()
}

func (t *TransactionImpl) Put(handle Handle, key []byte, value []byte) {
	t.mustBeInUse("Put")
	handle.put(key, value)
}

func (t *TransactionImpl) Delete(handle Handle, key []byte) {
	t.mustBeInUse("Delete")
	handle.remove(key)
}

// Get - read, seeing any earlier writes in this transaction
func (t *TransactionImpl) Get(handle Handle, key []byte) []byte {
	return handle.Get(key)
}

func (t *TransactionImpl) Has(handle Handle, key []byte) bool {
	return handle.Has(key)
}

func (t *TransactionImpl) Commit() error {
	return t.access.Commit()
}

func (t *TransactionImpl) Abort() {
	t.access.Abort()
}

func (t *TransactionImpl) mustBeInUse(operation string) {
	if !t.access.InUse() {
		logger.Panicf("transaction.%s: transaction not in use", operation)
	}
}
