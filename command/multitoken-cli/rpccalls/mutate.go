// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/multitokend/account"
	"github.com/bitmark-inc/multitokend/rpc/request"
	"github.com/bitmark-inc/multitokend/rpc/token"
	"github.com/bitmark-inc/multitokend/value"
)

// every mutation is signed by the key of the calling identity

// Transfer - move units from the signer
func (client *Client) Transfer(key *account.PrivateKey, to account.Address, id value.TokenId, amount value.Amount) (*token.MutationReply, error) {
	arguments := token.TransferArguments{
		To:    to,
		Id:    id,
		Value: amount,
	}
	arguments.Authorisation = request.Sign(key, "Token.Transfer", arguments.Fields()...)

	reply := &token.MutationReply{}
	if err := client.call("Token.Transfer", &arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// TransferFrom - move units on behalf of another owner
func (client *Client) TransferFrom(key *account.PrivateKey, from account.Address, to account.Address, id value.TokenId, amount value.Amount) (*token.MutationReply, error) {
	arguments := token.TransferFromArguments{
		From:  from,
		To:    to,
		Id:    id,
		Value: amount,
	}
	arguments.Authorisation = request.Sign(key, "Token.TransferFrom", arguments.Fields()...)

	reply := &token.MutationReply{}
	if err := client.call("Token.TransferFrom", &arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Approve - set the allowance of a spender
func (client *Client) Approve(key *account.PrivateKey, spender account.Address, id value.TokenId, amount value.Amount) (*token.MutationReply, error) {
	arguments := token.ApproveArguments{
		Spender: spender,
		Id:      id,
		Value:   amount,
	}
	arguments.Authorisation = request.Sign(key, "Token.Approve", arguments.Fields()...)

	reply := &token.MutationReply{}
	if err := client.call("Token.Approve", &arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// SetOperator - grant or revoke operator rights
func (client *Client) SetOperator(key *account.PrivateKey, spender account.Address, approved bool) (*token.MutationReply, error) {
	arguments := token.SetOperatorArguments{
		Spender:  spender,
		Approved: approved,
	}
	arguments.Authorisation = request.Sign(key, "Token.SetOperator", arguments.Fields()...)

	reply := &token.MutationReply{}
	if err := client.call("Token.SetOperator", &arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Mint - create units, signer must be a minter
func (client *Client) Mint(key *account.PrivateKey, to account.Address, id value.TokenId, amount value.Amount) (*token.MutationReply, error) {
	arguments := token.MintArguments{
		To:    to,
		Id:    id,
		Value: amount,
	}
	arguments.Authorisation = request.Sign(key, "Token.Mint", arguments.Fields()...)

	reply := &token.MutationReply{}
	if err := client.call("Token.Mint", &arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Burn - destroy units, signer must be a minter
func (client *Client) Burn(key *account.PrivateKey, owner account.Address, id value.TokenId, amount value.Amount) (*token.MutationReply, error) {
	arguments := token.BurnArguments{
		Owner: owner,
		Id:    id,
		Value: amount,
	}
	arguments.Authorisation = request.Sign(key, "Token.Burn", arguments.Fields()...)

	reply := &token.MutationReply{}
	if err := client.call("Token.Burn", &arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}
