// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/multitokend/account"
	"github.com/bitmark-inc/multitokend/balance"
	"github.com/bitmark-inc/multitokend/fault"
	"github.com/bitmark-inc/multitokend/fixtures"
	"github.com/bitmark-inc/multitokend/ledger"
	"github.com/bitmark-inc/multitokend/ledgererrors"
	"github.com/bitmark-inc/multitokend/rpc/mocks"
	"github.com/bitmark-inc/multitokend/rpc/request"
	"github.com/bitmark-inc/multitokend/rpc/token"
	"github.com/bitmark-inc/multitokend/value"
)

type harness struct {
	ctl    *gomock.Controller
	ledger *mocks.MockLedger
	token  *token.Token
	user   *account.PrivateKey
	minter *account.PrivateKey
}

func setup(t *testing.T) *harness {
	fixtures.SetupTestLogger()

	ctl := gomock.NewController(t)
	l := mocks.NewMockLedger(ctl)

	user, err := account.NewPrivateKey()
	assert.Nil(t, err, "user key")
	minter, err := account.NewPrivateKey()
	assert.Nil(t, err, "minter key")

	return &harness{
		ctl:    ctl,
		ledger: l,
		token: token.New(
			logger.New(fixtures.LogCategory),
			l,
			[]account.Address{minter.Address()},
			request.NewVerifier(request.DefaultWindow),
		),
		user:   user,
		minter: minter,
	}
}

func (h *harness) teardown() {
	h.ctl.Finish()
	fixtures.TeardownTestLogger()
}

func TestTokenReads(t *testing.T) {
	h := setup(t)
	defer h.teardown()

	id := value.NewTokenId(1)

	h.ledger.EXPECT().BalanceOf(fixtures.Alice, id).Return(value.NewAmount(100)).Times(1)
	var amount token.AmountReply
	err := h.token.BalanceOf(&token.BalanceOfArguments{Owner: fixtures.Alice, Id: id}, &amount)
	assert.Nil(t, err, "wrong BalanceOf")
	assert.Equal(t, value.NewAmount(100), amount.Value, "wrong balance")

	h.ledger.EXPECT().Allowance(fixtures.Alice, fixtures.Bob, id).Return(value.NewAmount(40)).Times(1)
	err = h.token.Allowance(&token.AllowanceArguments{Owner: fixtures.Alice, Spender: fixtures.Bob, Id: id}, &amount)
	assert.Nil(t, err, "wrong Allowance")
	assert.Equal(t, value.NewAmount(40), amount.Value, "wrong allowance")

	h.ledger.EXPECT().IsOperator(fixtures.Alice, fixtures.Carol).Return(true).Times(1)
	var operator token.IsOperatorReply
	err = h.token.IsOperator(&token.IsOperatorArguments{Owner: fixtures.Alice, Spender: fixtures.Carol}, &operator)
	assert.Nil(t, err, "wrong IsOperator")
	assert.True(t, operator.Approved, "wrong operator flag")

	supply := ledger.Supply{
		Minted: value.NewAmount(10),
		Burned: value.NewAmount(3),
		Total:  value.NewAmount(7),
	}
	h.ledger.EXPECT().TotalSupply(id).Return(supply).Times(1)
	var s ledger.Supply
	err = h.token.TotalSupply(&token.TotalSupplyArguments{Id: id}, &s)
	assert.Nil(t, err, "wrong TotalSupply")
	assert.Equal(t, supply, s, "wrong supply")

	holdings := []balance.Holding{{Id: id, Value: value.NewAmount(7)}}
	h.ledger.EXPECT().Holdings(fixtures.Alice).Return(holdings, nil).Times(1)
	var held token.HoldingsReply
	err = h.token.Holdings(&token.HoldingsArguments{Owner: fixtures.Alice}, &held)
	assert.Nil(t, err, "wrong Holdings")
	assert.Equal(t, holdings, held.Holdings, "wrong holdings")
}

func TestTokenTransfer(t *testing.T) {
	h := setup(t)
	defer h.teardown()

	arguments := token.TransferArguments{
		To:    fixtures.Bob,
		Id:    value.NewTokenId(1),
		Value: value.NewAmount(25),
	}
	arguments.Authorisation = request.Sign(h.user, "Token.Transfer", arguments.Fields()...)

	h.ledger.EXPECT().Transfer(h.user.Address(), fixtures.Bob, arguments.Id, arguments.Value).Return(nil).Times(1)

	var reply token.MutationReply
	err := h.token.Transfer(&arguments, &reply)
	assert.Nil(t, err, "wrong Transfer")
	assert.Equal(t, h.user.Address(), reply.Caller, "wrong caller")

	// replay is rejected before reaching the ledger
	err = h.token.Transfer(&arguments, &reply)
	assert.Equal(t, fault.ErrDuplicateRequest, err, "replay accepted")
}

func TestTokenTransferLedgerError(t *testing.T) {
	h := setup(t)
	defer h.teardown()

	arguments := token.TransferArguments{
		To:    fixtures.Bob,
		Id:    value.NewTokenId(1),
		Value: value.NewAmount(25),
	}
	arguments.Authorisation = request.Sign(h.user, "Token.Transfer", arguments.Fields()...)

	rejection := ledgererrors.NewInsufficientBalance(h.user.Address(), value.Amount{}, arguments.Value, arguments.Id)
	h.ledger.EXPECT().Transfer(h.user.Address(), fixtures.Bob, arguments.Id, arguments.Value).Return(rejection).Times(1)

	var reply token.MutationReply
	err := h.token.Transfer(&arguments, &reply)
	assert.True(t, ledgererrors.IsInsufficientBalance(err), "wrong error: %v", err)
	assert.Equal(t, account.Zero, reply.Caller, "caller set on failure")
}

func TestTokenTamperedArguments(t *testing.T) {
	h := setup(t)
	defer h.teardown()

	arguments := token.ApproveArguments{
		Spender: fixtures.Bob,
		Id:      value.NewTokenId(1),
		Value:   value.NewAmount(40),
	}
	arguments.Authorisation = request.Sign(h.user, "Token.Approve", arguments.Fields()...)
	arguments.Value = value.NewAmount(4000)

	var reply token.MutationReply
	err := h.token.Approve(&arguments, &reply)
	assert.Equal(t, fault.ErrInvalidSignature, err, "tampered request accepted")
}

func TestTokenApproveAndOperator(t *testing.T) {
	h := setup(t)
	defer h.teardown()

	approve := token.ApproveArguments{
		Spender: fixtures.Bob,
		Id:      value.NewTokenId(1),
		Value:   value.NewAmount(40),
	}
	approve.Authorisation = request.Sign(h.user, "Token.Approve", approve.Fields()...)
	h.ledger.EXPECT().Approve(h.user.Address(), fixtures.Bob, approve.Id, approve.Value).Return(nil).Times(1)

	var reply token.MutationReply
	err := h.token.Approve(&approve, &reply)
	assert.Nil(t, err, "wrong Approve")

	operator := token.SetOperatorArguments{
		Spender:  fixtures.Carol,
		Approved: true,
	}
	operator.Authorisation = request.Sign(h.user, "Token.SetOperator", operator.Fields()...)
	h.ledger.EXPECT().SetOperator(h.user.Address(), fixtures.Carol, true).Return(nil).Times(1)

	err = h.token.SetOperator(&operator, &reply)
	assert.Nil(t, err, "wrong SetOperator")

	from := token.TransferFromArguments{
		From:  fixtures.Alice,
		To:    fixtures.Dave,
		Id:    value.NewTokenId(1),
		Value: value.NewAmount(5),
	}
	from.Authorisation = request.Sign(h.user, "Token.TransferFrom", from.Fields()...)
	h.ledger.EXPECT().TransferFrom(h.user.Address(), fixtures.Alice, fixtures.Dave, from.Id, from.Value).Return(nil).Times(1)

	err = h.token.TransferFrom(&from, &reply)
	assert.Nil(t, err, "wrong TransferFrom")
}

func TestTokenMintBurn(t *testing.T) {
	h := setup(t)
	defer h.teardown()

	mint := token.MintArguments{
		To:    fixtures.Alice,
		Id:    value.NewTokenId(7),
		Value: value.NewAmount(100),
	}
	mint.Authorisation = request.Sign(h.minter, "Token.Mint", mint.Fields()...)
	h.ledger.EXPECT().Mint(fixtures.Alice, mint.Id, mint.Value).Return(nil).Times(1)

	var reply token.MutationReply
	err := h.token.Mint(&mint, &reply)
	assert.Nil(t, err, "wrong Mint")
	assert.Equal(t, h.minter.Address(), reply.Caller, "wrong caller")

	burn := token.BurnArguments{
		Owner: fixtures.Alice,
		Id:    value.NewTokenId(7),
		Value: value.NewAmount(30),
	}
	burn.Authorisation = request.Sign(h.minter, "Token.Burn", burn.Fields()...)
	h.ledger.EXPECT().Burn(fixtures.Alice, burn.Id, burn.Value).Return(nil).Times(1)

	err = h.token.Burn(&burn, &reply)
	assert.Nil(t, err, "wrong Burn")
}

func TestTokenMintRestrictions(t *testing.T) {
	h := setup(t)
	defer h.teardown()

	var reply token.MutationReply

	mint := token.MintArguments{
		To:    fixtures.Alice,
		Id:    value.NewTokenId(7),
		Value: value.NewAmount(100),
	}
	mint.Authorisation = request.Sign(h.user, "Token.Mint", mint.Fields()...)
	err := h.token.Mint(&mint, &reply)
	assert.Equal(t, fault.ErrNotAMinter, err, "non-minter minted")

	zero := token.MintArguments{
		To:    account.Zero,
		Id:    value.NewTokenId(7),
		Value: value.NewAmount(100),
	}
	zero.Authorisation = request.Sign(h.minter, "Token.Mint", zero.Fields()...)
	err = h.token.Mint(&zero, &reply)
	assert.True(t, ledgererrors.IsInvalidReceiver(err), "minted to zero: %v", err)

	burn := token.BurnArguments{
		Owner: fixtures.Alice,
		Id:    value.NewTokenId(7),
		Value: value.NewAmount(1),
	}
	burn.Authorisation = request.Sign(h.user, "Token.Burn", burn.Fields()...)
	err = h.token.Burn(&burn, &reply)
	assert.Equal(t, fault.ErrNotAMinter, err, "non-minter burned")

	burnZero := token.BurnArguments{
		Owner: account.Zero,
		Id:    value.NewTokenId(7),
		Value: value.NewAmount(1),
	}
	burnZero.Authorisation = request.Sign(h.minter, "Token.Burn", burnZero.Fields()...)
	err = h.token.Burn(&burnZero, &reply)
	assert.True(t, ledgererrors.IsInvalidSender(err), "burned from zero: %v", err)
}
