// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/multitokend/account"
	"github.com/bitmark-inc/multitokend/ledger"
	"github.com/bitmark-inc/multitokend/rpc/events"
	"github.com/bitmark-inc/multitokend/rpc/node"
	"github.com/bitmark-inc/multitokend/rpc/token"
	"github.com/bitmark-inc/multitokend/value"
)

// BalanceOf - units of one token held by an owner
func (client *Client) BalanceOf(owner account.Address, id value.TokenId) (*token.AmountReply, error) {
	arguments := token.BalanceOfArguments{
		Owner: owner,
		Id:    id,
	}
	reply := &token.AmountReply{}
	if err := client.call("Token.BalanceOf", &arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Allowance - units a spender may move for an owner
func (client *Client) Allowance(owner account.Address, spender account.Address, id value.TokenId) (*token.AmountReply, error) {
	arguments := token.AllowanceArguments{
		Owner:   owner,
		Spender: spender,
		Id:      id,
	}
	reply := &token.AmountReply{}
	if err := client.call("Token.Allowance", &arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// IsOperator - whether spender is an operator for owner
func (client *Client) IsOperator(owner account.Address, spender account.Address) (*token.IsOperatorReply, error) {
	arguments := token.IsOperatorArguments{
		Owner:   owner,
		Spender: spender,
	}
	reply := &token.IsOperatorReply{}
	if err := client.call("Token.IsOperator", &arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// TotalSupply - minted, burned and outstanding units
func (client *Client) TotalSupply(id value.TokenId) (*ledger.Supply, error) {
	arguments := token.TotalSupplyArguments{
		Id: id,
	}
	reply := &ledger.Supply{}
	if err := client.call("Token.TotalSupply", &arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Holdings - all non-zero balances of an owner
func (client *Client) Holdings(owner account.Address) (*token.HoldingsReply, error) {
	arguments := token.HoldingsArguments{
		Owner: owner,
	}
	reply := &token.HoldingsReply{}
	if err := client.call("Token.Holdings", &arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Events - page through the committed event log
func (client *Client) Events(start uint64, count int) (*events.ListReply, error) {
	arguments := events.ListArguments{
		Start: start,
		Count: count,
	}
	reply := &events.ListReply{}
	if err := client.call("Events.List", &arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// GetInfo - request status from multitokend
func (client *Client) GetInfo() (*node.InfoReply, error) {
	reply := &node.InfoReply{}
	if err := client.call("Node.Info", &node.InfoArguments{}, reply); nil != err {
		return nil, err
	}
	return reply, nil
}
