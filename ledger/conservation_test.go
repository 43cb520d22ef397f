// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/multitokend/account"
	"github.com/bitmark-inc/multitokend/fixtures"
	"github.com/bitmark-inc/multitokend/ledger"
	"github.com/bitmark-inc/multitokend/ledgererrors"
	"github.com/bitmark-inc/multitokend/value"
)

var accounts = []account.Address{
	fixtures.Alice,
	fixtures.Bob,
	fixtures.Carol,
	fixtures.Dave,
}

var ids = []value.TokenId{
	value.NewTokenId(1),
	value.NewTokenId(2),
	value.NewTokenId(1 << 40),
}

type snapshot map[account.Address]map[value.TokenId]value.Amount

func takeSnapshot(l ledger.Ledger) snapshot {
	s := snapshot{}
	for _, a := range accounts {
		s[a] = map[value.TokenId]value.Amount{}
		for _, id := range ids {
			s[a][id] = l.BalanceOf(a, id)
		}
	}
	return s
}

func checkConservation(t *testing.T, l ledger.Ledger, step int) {
	for _, id := range ids {
		sum := value.Amount{}
		for _, a := range accounts {
			var overflow bool
			sum, overflow = sum.Add(l.BalanceOf(a, id))
			assert.False(t, overflow, "step %d: sum overflow", step)
		}
		assert.Equal(t, l.TotalSupply(id).Total, sum, "step %d: id: %s conservation", step, id)
	}
}

func TestConservationUnderRandomOperations(t *testing.T) {
	l := setupEngine(t, nil)
	defer fixtures.TeardownTestDatabase()

	r := rand.New(rand.NewSource(6909))
	pick := func() account.Address { return accounts[r.Intn(len(accounts))] }

	failures := 0
	for step := 0; step < 300; step += 1 {
		id := ids[r.Intn(len(ids))]
		n := amount(uint64(r.Intn(60)))
		before := takeSnapshot(l)

		var err error
		switch r.Intn(6) {
		case 0:
			err = l.Mint(pick(), id, n)
		case 1:
			err = l.Burn(pick(), id, n)
		case 2:
			err = l.Transfer(pick(), pick(), id, n)
		case 3:
			err = l.TransferFrom(pick(), pick(), pick(), id, n)
		case 4:
			err = l.Approve(pick(), pick(), id, n)
		case 5:
			err = l.SetOperator(pick(), pick(), 0 == r.Intn(2))
		}

		if nil != err {
			failures += 1
			assert.True(t, ledgererrors.IsLedgerError(err), "step %d: unexpected error: %v", step, err)
			assert.Equal(t, before, takeSnapshot(l), "step %d: failed call changed balances", step)
		}
		checkConservation(t, l, step)
	}

	// the sequence must exercise both outcomes
	assert.NotEqual(t, 0, failures, "no failures")
	assert.NotEqual(t, 300, failures, "no successes")
}
