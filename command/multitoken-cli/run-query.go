// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := checkAccount(c.String("owner"), m.config)
	if nil != err {
		return err
	}
	id, err := checkTokenId(c.String("id"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", owner)
		fmt.Fprintf(m.e, "id: %s\n", id)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.BalanceOf(owner, id)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runAllowance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := checkAccount(c.String("owner"), m.config)
	if nil != err {
		return err
	}
	spender, err := checkRequiredAccount("spender", c.String("spender"), m.config)
	if nil != err {
		return err
	}
	id, err := checkTokenId(c.String("id"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Allowance(owner, spender, id)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runIsOperator(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := checkAccount(c.String("owner"), m.config)
	if nil != err {
		return err
	}
	spender, err := checkRequiredAccount("spender", c.String("spender"), m.config)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.IsOperator(owner, spender)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runSupply(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkTokenId(c.String("id"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.TotalSupply(id)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runHoldings(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := checkAccount(c.String("owner"), m.config)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Holdings(owner)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runEvents(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	count := c.Int("count")
	if count <= 0 {
		return fmt.Errorf("invalid count: %d", count)
	}
	start := c.Uint64("start")

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Events(start, count)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetInfo()
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
