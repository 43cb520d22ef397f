// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledgererrors

import (
	"errors"
	"fmt"

	"github.com/bitmark-inc/multitokend/account"
	"github.com/bitmark-inc/multitokend/value"
)

// InvalidSenderError - zero address used where a sender or owner is required
type InvalidSenderError struct {
	Sender account.Address
}

// InvalidReceiverError - zero address used as a recipient or spender
type InvalidReceiverError struct {
	Receiver account.Address
}

// InvalidApproverError - unusable approver
//
// never raised by the ledger, kept so clients can classify it
type InvalidApproverError struct {
	Approver account.Address
}

// InvalidSpenderError - unusable spender
//
// never raised by the ledger, kept so clients can classify it
type InvalidSpenderError struct {
	Spender account.Address
}

// InsufficientBalanceError - a debit larger than the balance
type InsufficientBalanceError struct {
	Sender  account.Address
	Balance value.Amount
	Needed  value.Amount
	Id      value.TokenId
}

// InsufficientAllowanceError - a spend larger than the allowance
type InsufficientAllowanceError struct {
	Owner     account.Address
	Allowance value.Amount
	Needed    value.Amount
	Id        value.TokenId
}

// NewInvalidSender - create an invalid sender error
func NewInvalidSender(sender account.Address) error {
	return &InvalidSenderError{Sender: sender}
}

// NewInvalidReceiver - create an invalid receiver error
func NewInvalidReceiver(receiver account.Address) error {
	return &InvalidReceiverError{Receiver: receiver}
}

// NewInvalidApprover - create an invalid approver error
func NewInvalidApprover(approver account.Address) error {
	return &InvalidApproverError{Approver: approver}
}

// NewInvalidSpender - create an invalid spender error
func NewInvalidSpender(spender account.Address) error {
	return &InvalidSpenderError{Spender: spender}
}

// NewInsufficientBalance - create an insufficient balance error
func NewInsufficientBalance(sender account.Address, balance value.Amount, needed value.Amount, id value.TokenId) error {
	return &InsufficientBalanceError{
		Sender:  sender,
		Balance: balance,
		Needed:  needed,
		Id:      id,
	}
}

// NewInsufficientAllowance - create an insufficient allowance error
func NewInsufficientAllowance(owner account.Address, allowance value.Amount, needed value.Amount, id value.TokenId) error {
	return &InsufficientAllowanceError{
		Owner:     owner,
		Allowance: allowance,
		Needed:    needed,
		Id:        id,
	}
}

func (e *InvalidSenderError) Error() string {
	return fmt.Sprintf("invalid sender: %s", e.Sender)
}

func (e *InvalidReceiverError) Error() string {
	return fmt.Sprintf("invalid receiver: %s", e.Receiver)
}

func (e *InvalidApproverError) Error() string {
	return fmt.Sprintf("invalid approver: %s", e.Approver)
}

func (e *InvalidSpenderError) Error() string {
	return fmt.Sprintf("invalid spender: %s", e.Spender)
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: sender: %s  balance: %s  needed: %s  id: %s", e.Sender, e.Balance, e.Needed, e.Id)
}

func (e *InsufficientAllowanceError) Error() string {
	return fmt.Sprintf("insufficient allowance: owner: %s  allowance: %s  needed: %s  id: %s", e.Owner, e.Allowance, e.Needed, e.Id)
}

// classification

func IsInvalidSender(err error) bool {
	var e *InvalidSenderError
	return errors.As(err, &e)
}

func IsInvalidReceiver(err error) bool {
	var e *InvalidReceiverError
	return errors.As(err, &e)
}

func IsInvalidApprover(err error) bool {
	var e *InvalidApproverError
	return errors.As(err, &e)
}

func IsInvalidSpender(err error) bool {
	var e *InvalidSpenderError
	return errors.As(err, &e)
}

func IsInsufficientBalance(err error) bool {
	var e *InsufficientBalanceError
	return errors.As(err, &e)
}

func IsInsufficientAllowance(err error) bool {
	var e *InsufficientAllowanceError
	return errors.As(err, &e)
}

// IsLedgerError - true for any rejection raised by the ledger
func IsLedgerError(err error) bool {
	return IsInvalidSender(err) ||
		IsInvalidReceiver(err) ||
		IsInvalidApprover(err) ||
		IsInvalidSpender(err) ||
		IsInsufficientBalance(err) ||
		IsInsufficientAllowance(err)
}
