// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/multitokend/account"
	"github.com/bitmark-inc/multitokend/command/multitoken-cli/rpccalls"
	"github.com/bitmark-inc/multitokend/value"
)

// common arguments of the value moving commands
type movement struct {
	account account.Address
	id      value.TokenId
	amount  value.Amount
}

func checkMovement(c *cli.Context, m *metadata, flag string) (*movement, error) {
	a, err := checkRequiredAccount(flag, c.String(flag), m.config)
	if nil != err {
		return nil, err
	}
	id, err := checkTokenId(c.String("id"))
	if nil != err {
		return nil, err
	}
	amount, err := checkAmount(c.String("amount"))
	if nil != err {
		return nil, err
	}
	return &movement{
		account: a,
		id:      id,
		amount:  amount,
	}, nil
}

// decrypt the signer, connect, run the call and print its reply
func signed(c *cli.Context, m *metadata, call func(*rpccalls.Client, *account.PrivateKey) (interface{}, error)) error {
	private, err := getPrivate(c, m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := call(client, private.PrivateKey)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runTransfer(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	mv, err := checkMovement(c, m, "receiver")
	if nil != err {
		return err
	}

	return signed(c, m, func(client *rpccalls.Client, key *account.PrivateKey) (interface{}, error) {
		return client.Transfer(key, mv.account, mv.id, mv.amount)
	})
}

func runTransferFrom(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	from, err := checkRequiredAccount("from", c.String("from"), m.config)
	if nil != err {
		return err
	}
	mv, err := checkMovement(c, m, "receiver")
	if nil != err {
		return err
	}

	return signed(c, m, func(client *rpccalls.Client, key *account.PrivateKey) (interface{}, error) {
		return client.TransferFrom(key, from, mv.account, mv.id, mv.amount)
	})
}

func runApprove(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	mv, err := checkMovement(c, m, "spender")
	if nil != err {
		return err
	}

	return signed(c, m, func(client *rpccalls.Client, key *account.PrivateKey) (interface{}, error) {
		return client.Approve(key, mv.account, mv.id, mv.amount)
	})
}

func runSetOperator(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	spender, err := checkRequiredAccount("spender", c.String("spender"), m.config)
	if nil != err {
		return err
	}
	approved := !c.Bool("revoke")

	return signed(c, m, func(client *rpccalls.Client, key *account.PrivateKey) (interface{}, error) {
		return client.SetOperator(key, spender, approved)
	})
}

func runMint(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	mv, err := checkMovement(c, m, "receiver")
	if nil != err {
		return err
	}

	return signed(c, m, func(client *rpccalls.Client, key *account.PrivateKey) (interface{}, error) {
		return client.Mint(key, mv.account, mv.id, mv.amount)
	})
}

func runBurn(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	mv, err := checkMovement(c, m, "owner")
	if nil != err {
		return err
	}

	return signed(c, m, func(client *rpccalls.Client, key *account.PrivateKey) (interface{}, error) {
		return client.Burn(key, mv.account, mv.id, mv.amount)
	})
}
