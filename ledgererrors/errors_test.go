// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledgererrors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/multitokend/account"
	"github.com/bitmark-inc/multitokend/fault"
	"github.com/bitmark-inc/multitokend/ledgererrors"
	"github.com/bitmark-inc/multitokend/value"
)

func TestClassification(t *testing.T) {
	owner := account.Address{1}
	id := value.NewTokenId(1)

	items := []struct {
		err       error
		sender    bool
		receiver  bool
		approver  bool
		spender   bool
		balance   bool
		allowance bool
	}{
		{ledgererrors.NewInvalidSender(account.Zero), true, false, false, false, false, false},
		{ledgererrors.NewInvalidReceiver(account.Zero), false, true, false, false, false, false},
		{ledgererrors.NewInvalidApprover(account.Zero), false, false, true, false, false, false},
		{ledgererrors.NewInvalidSpender(account.Zero), false, false, false, true, false, false},
		{ledgererrors.NewInsufficientBalance(owner, value.NewAmount(1), value.NewAmount(2), id), false, false, false, false, true, false},
		{ledgererrors.NewInsufficientAllowance(owner, value.NewAmount(40), value.NewAmount(50), id), false, false, false, false, false, true},
	}

	for i, item := range items {
		assert.Equal(t, item.sender, ledgererrors.IsInvalidSender(item.err), "%d: sender", i)
		assert.Equal(t, item.receiver, ledgererrors.IsInvalidReceiver(item.err), "%d: receiver", i)
		assert.Equal(t, item.approver, ledgererrors.IsInvalidApprover(item.err), "%d: approver", i)
		assert.Equal(t, item.spender, ledgererrors.IsInvalidSpender(item.err), "%d: spender", i)
		assert.Equal(t, item.balance, ledgererrors.IsInsufficientBalance(item.err), "%d: balance", i)
		assert.Equal(t, item.allowance, ledgererrors.IsInsufficientAllowance(item.err), "%d: allowance", i)
		assert.True(t, ledgererrors.IsLedgerError(item.err), "%d: ledger error", i)

		wrapped := fmt.Errorf("outer: %w", item.err)
		assert.True(t, ledgererrors.IsLedgerError(wrapped), "%d: wrapped", i)
	}

	assert.False(t, ledgererrors.IsLedgerError(fault.ErrInvalidAmount), "fault error")
	assert.False(t, ledgererrors.IsLedgerError(nil), "nil")
}

func TestInsufficientAllowanceFields(t *testing.T) {
	owner := account.Address{0xaa}
	err := ledgererrors.NewInsufficientAllowance(owner, value.NewAmount(40), value.NewAmount(50), value.NewTokenId(1))

	e, ok := err.(*ledgererrors.InsufficientAllowanceError)
	assert.True(t, ok, "type")
	assert.Equal(t, owner, e.Owner, "owner")
	assert.Equal(t, value.NewAmount(40), e.Allowance, "allowance")
	assert.Equal(t, value.NewAmount(50), e.Needed, "needed")
	assert.Equal(t, value.NewTokenId(1), e.Id, "id")
	assert.Contains(t, err.Error(), "allowance: 40", "message")
}
