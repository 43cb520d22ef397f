// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/multitokend/account"
	"github.com/bitmark-inc/multitokend/balance"
	"github.com/bitmark-inc/multitokend/fault"
	"github.com/bitmark-inc/multitokend/ledger"
	"github.com/bitmark-inc/multitokend/ledgererrors"
	"github.com/bitmark-inc/multitokend/rpc/ratelimit"
	"github.com/bitmark-inc/multitokend/rpc/request"
	"github.com/bitmark-inc/multitokend/value"
)

const (
	rateLimitToken = 200
	rateBurstToken = 100
)

// Token - type for RPC calls
type Token struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Ledger   ledger.Ledger
	Verifier *request.Verifier
	minters  map[account.Address]struct{}
}

// New - create the token RPC service
func New(log *logger.L, l ledger.Ledger, minters []account.Address, verifier *request.Verifier) *Token {
	m := make(map[account.Address]struct{}, len(minters))
	for _, a := range minters {
		m[a] = struct{}{}
	}
	return &Token{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitToken, rateBurstToken),
		Ledger:   l,
		Verifier: verifier,
		minters:  m,
	}
}

// ---

// BalanceOfArguments - arguments for RPC
type BalanceOfArguments struct {
	Owner account.Address `json:"owner"`
	Id    value.TokenId   `json:"id"`
}

// AmountReply - a single amount
type AmountReply struct {
	Value value.Amount `json:"value"`
}

// BalanceOf - units of a token held by an account
func (token *Token) BalanceOf(arguments *BalanceOfArguments, reply *AmountReply) error {
	if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}

	token.Log.Infof("Token.BalanceOf: %+v", arguments)
	reply.Value = token.Ledger.BalanceOf(arguments.Owner, arguments.Id)
	return nil
}

// ---

// AllowanceArguments - arguments for RPC
type AllowanceArguments struct {
	Owner   account.Address `json:"owner"`
	Spender account.Address `json:"spender"`
	Id      value.TokenId   `json:"id"`
}

// Allowance - units a spender may still move for an owner
func (token *Token) Allowance(arguments *AllowanceArguments, reply *AmountReply) error {
	if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}

	token.Log.Infof("Token.Allowance: %+v", arguments)
	reply.Value = token.Ledger.Allowance(arguments.Owner, arguments.Spender, arguments.Id)
	return nil
}

// ---

// IsOperatorArguments - arguments for RPC
type IsOperatorArguments struct {
	Owner   account.Address `json:"owner"`
	Spender account.Address `json:"spender"`
}

// IsOperatorReply - result from RPC
type IsOperatorReply struct {
	Approved bool `json:"approved"`
}

// IsOperator - true if spender may move every unit of owner
func (token *Token) IsOperator(arguments *IsOperatorArguments, reply *IsOperatorReply) error {
	if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}

	token.Log.Infof("Token.IsOperator: %+v", arguments)
	reply.Approved = token.Ledger.IsOperator(arguments.Owner, arguments.Spender)
	return nil
}

// ---

// TotalSupplyArguments - arguments for RPC
type TotalSupplyArguments struct {
	Id value.TokenId `json:"id"`
}

// TotalSupply - minted, burned and outstanding units of a token
func (token *Token) TotalSupply(arguments *TotalSupplyArguments, reply *ledger.Supply) error {
	if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}

	token.Log.Infof("Token.TotalSupply: %+v", arguments)
	*reply = token.Ledger.TotalSupply(arguments.Id)
	return nil
}

// ---

// HoldingsArguments - arguments for RPC
type HoldingsArguments struct {
	Owner account.Address `json:"owner"`
}

// HoldingsReply - result from RPC
type HoldingsReply struct {
	Holdings []balance.Holding `json:"holdings"`
}

// Holdings - every non-zero balance of an account
func (token *Token) Holdings(arguments *HoldingsArguments, reply *HoldingsReply) error {
	if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}

	token.Log.Infof("Token.Holdings: %+v", arguments)
	holdings, err := token.Ledger.Holdings(arguments.Owner)
	if nil != err {
		return err
	}
	reply.Holdings = holdings
	return nil
}

// ---

// MutationReply - the verified caller of a successful mutation
type MutationReply struct {
	Caller account.Address `json:"caller"`
}

// verify the signature and rate limit
func (token *Token) authorise(method string, auth request.Authorisation, fields []string) (account.Address, error) {
	if err := ratelimit.Limit(token.Limiter); nil != err {
		return account.Zero, err
	}

	caller, err := token.Verifier.Verify(auth, method, fields...)
	if nil != err {
		token.Log.Warnf("%s: authorisation error: %s", method, err)
		return account.Zero, err
	}
	token.Log.Infof("%s: caller: %s", method, caller)
	return caller, nil
}

// true if the account is a configured minter
func (token *Token) isMinter(a account.Address) bool {
	_, ok := token.minters[a]
	return ok
}

// ---

// TransferArguments - move units from the caller
type TransferArguments struct {
	To            account.Address       `json:"to"`
	Id            value.TokenId         `json:"id"`
	Value         value.Amount          `json:"value"`
	Authorisation request.Authorisation `json:"authorisation"`
}

// Fields - the signed text of the arguments
func (a *TransferArguments) Fields() []string {
	return []string{a.To.String(), a.Id.String(), a.Value.String()}
}

// Transfer - move units from the caller to another account
func (token *Token) Transfer(arguments *TransferArguments, reply *MutationReply) error {
	caller, err := token.authorise("Token.Transfer", arguments.Authorisation, arguments.Fields())
	if nil != err {
		return err
	}

	err = token.Ledger.Transfer(caller, arguments.To, arguments.Id, arguments.Value)
	if nil != err {
		return err
	}
	reply.Caller = caller
	return nil
}

// ---

// TransferFromArguments - move units on behalf of another account
type TransferFromArguments struct {
	From          account.Address       `json:"from"`
	To            account.Address       `json:"to"`
	Id            value.TokenId         `json:"id"`
	Value         value.Amount          `json:"value"`
	Authorisation request.Authorisation `json:"authorisation"`
}

// Fields - the signed text of the arguments
func (a *TransferFromArguments) Fields() []string {
	return []string{a.From.String(), a.To.String(), a.Id.String(), a.Value.String()}
}

// TransferFrom - move units as the owner, an operator or by allowance
func (token *Token) TransferFrom(arguments *TransferFromArguments, reply *MutationReply) error {
	caller, err := token.authorise("Token.TransferFrom", arguments.Authorisation, arguments.Fields())
	if nil != err {
		return err
	}

	err = token.Ledger.TransferFrom(caller, arguments.From, arguments.To, arguments.Id, arguments.Value)
	if nil != err {
		return err
	}
	reply.Caller = caller
	return nil
}

// ---

// ApproveArguments - set an allowance of the caller
type ApproveArguments struct {
	Spender       account.Address       `json:"spender"`
	Id            value.TokenId         `json:"id"`
	Value         value.Amount          `json:"value"`
	Authorisation request.Authorisation `json:"authorisation"`
}

// Fields - the signed text of the arguments
func (a *ApproveArguments) Fields() []string {
	return []string{a.Spender.String(), a.Id.String(), a.Value.String()}
}

// Approve - overwrite the allowance the caller gives to a spender
func (token *Token) Approve(arguments *ApproveArguments, reply *MutationReply) error {
	caller, err := token.authorise("Token.Approve", arguments.Authorisation, arguments.Fields())
	if nil != err {
		return err
	}

	err = token.Ledger.Approve(caller, arguments.Spender, arguments.Id, arguments.Value)
	if nil != err {
		return err
	}
	reply.Caller = caller
	return nil
}

// ---

// SetOperatorArguments - grant or revoke operator rights of the caller
type SetOperatorArguments struct {
	Spender       account.Address       `json:"spender"`
	Approved      bool                  `json:"approved"`
	Authorisation request.Authorisation `json:"authorisation"`
}

// Fields - the signed text of the arguments
func (a *SetOperatorArguments) Fields() []string {
	approved := "false"
	if a.Approved {
		approved = "true"
	}
	return []string{a.Spender.String(), approved}
}

// SetOperator - grant or revoke blanket rights over the caller's units
func (token *Token) SetOperator(arguments *SetOperatorArguments, reply *MutationReply) error {
	caller, err := token.authorise("Token.SetOperator", arguments.Authorisation, arguments.Fields())
	if nil != err {
		return err
	}

	err = token.Ledger.SetOperator(caller, arguments.Spender, arguments.Approved)
	if nil != err {
		return err
	}
	reply.Caller = caller
	return nil
}

// ---

// MintArguments - create units for an account
type MintArguments struct {
	To            account.Address       `json:"to"`
	Id            value.TokenId         `json:"id"`
	Value         value.Amount          `json:"value"`
	Authorisation request.Authorisation `json:"authorisation"`
}

// Fields - the signed text of the arguments
func (a *MintArguments) Fields() []string {
	return []string{a.To.String(), a.Id.String(), a.Value.String()}
}

// Mint - create units, only for minters
func (token *Token) Mint(arguments *MintArguments, reply *MutationReply) error {
	caller, err := token.authorise("Token.Mint", arguments.Authorisation, arguments.Fields())
	if nil != err {
		return err
	}

	if !token.isMinter(caller) {
		return fault.ErrNotAMinter
	}
	if arguments.To.IsZero() {
		return ledgererrors.NewInvalidReceiver(arguments.To)
	}

	err = token.Ledger.Mint(arguments.To, arguments.Id, arguments.Value)
	if nil != err {
		return err
	}
	reply.Caller = caller
	return nil
}

// ---

// BurnArguments - destroy units of an account
type BurnArguments struct {
	Owner         account.Address       `json:"owner"`
	Id            value.TokenId         `json:"id"`
	Value         value.Amount          `json:"value"`
	Authorisation request.Authorisation `json:"authorisation"`
}

// Fields - the signed text of the arguments
func (a *BurnArguments) Fields() []string {
	return []string{a.Owner.String(), a.Id.String(), a.Value.String()}
}

// Burn - destroy units, only for minters
func (token *Token) Burn(arguments *BurnArguments, reply *MutationReply) error {
	caller, err := token.authorise("Token.Burn", arguments.Authorisation, arguments.Fields())
	if nil != err {
		return err
	}

	if !token.isMinter(caller) {
		return fault.ErrNotAMinter
	}
	if arguments.Owner.IsZero() {
		return ledgererrors.NewInvalidSender(arguments.Owner)
	}

	err = token.Ledger.Burn(arguments.Owner, arguments.Id, arguments.Value)
	if nil != err {
		return err
	}
	reply.Caller = caller
	return nil
}
