// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package event defines the notifications produced by ledger state changes
package event

import (
	"github.com/bitmark-inc/multitokend/account"
	"github.com/bitmark-inc/multitokend/value"
)

// event type names
const (
	TransferType    = "transfer"
	ApprovalType    = "approval"
	OperatorSetType = "operatorSet"
)

// Event - any ledger notification
type Event interface {
	Type() string
}

// Transfer - value moved between accounts
//
// From is zero for a mint, To is zero for a burn
type Transfer struct {
	From  account.Address `json:"from"`
	To    account.Address `json:"to"`
	Id    value.TokenId   `json:"id"`
	Value value.Amount    `json:"value"`
}

// Approval - allowance overwritten
type Approval struct {
	Owner   account.Address `json:"owner"`
	Spender account.Address `json:"spender"`
	Id      value.TokenId   `json:"id"`
	Value   value.Amount    `json:"value"`
}

// OperatorSet - operator rights granted or revoked
type OperatorSet struct {
	Owner    account.Address `json:"owner"`
	Spender  account.Address `json:"spender"`
	Approved bool            `json:"approved"`
}

func (Transfer) Type() string    { return TransferType }
func (Approval) Type() string    { return ApprovalType }
func (OperatorSet) Type() string { return OperatorSetType }

// Emitter - receives events as they are produced
type Emitter interface {
	Emit(Event)
}

// Buffer - hold events until the producing call commits
type Buffer struct {
	events []Event
}

// Emit - append an event
func (b *Buffer) Emit(e Event) {
	b.events = append(b.events, e)
}

// Events - everything emitted so far
func (b *Buffer) Events() []Event {
	return b.events
}
