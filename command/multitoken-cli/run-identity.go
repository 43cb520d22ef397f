// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/multitokend/account"
	"github.com/bitmark-inc/multitokend/command/multitoken-cli/configuration"
)

type generatedKey struct {
	Account   account.Address `json:"account"`
	Hex       string          `json:"hex"`
	PublicKey string          `json:"publicKey"`
	Seed      string          `json:"seed"`
}

func runGenerate(c *cli.Context) error {
	key, err := account.NewPrivateKey()
	if nil != err {
		return err
	}

	return printJson(c.App.Writer, generatedKey{
		Account:   key.Address(),
		Hex:       key.Address().Hex(),
		PublicKey: hex.EncodeToString(key.PublicKey()),
		Seed:      hex.EncodeToString(key.Seed()),
	})
}

func runSetup(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.GlobalString("identity"), nil)
	if nil != err {
		return err
	}

	connect, err := checkConnect(c.String("connect"))
	if nil != err {
		return err
	}

	description, err := checkDescription(c.String("description"))
	if nil != err {
		return err
	}

	key, err := checkSeed(c.String("seed"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "config: %s\n", m.file)
		fmt.Fprintf(m.e, "connect: %s\n", connect)
		fmt.Fprintf(m.e, "identity: %s\n", name)
		fmt.Fprintf(m.e, "description: %s\n", description)
	}

	password, err := newPassword(c.GlobalString("password"))
	if nil != err {
		return err
	}

	config := configuration.New(connect, c.String("fingerprint"))
	err = config.AddIdentity(name, description, key, password)
	if nil != err {
		return err
	}

	m.config = config
	m.save = true

	return nil
}

func runAdd(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name := c.GlobalString("identity")
	if "" == name {
		return fmt.Errorf("identity name is required")
	}

	description, err := checkDescription(c.String("description"))
	if nil != err {
		return err
	}

	seed := c.String("seed")
	generate := c.Bool("new")
	acc := c.String("account")

	selected := 0
	for _, b := range []bool{"" != seed, generate, "" != acc} {
		if b {
			selected += 1
		}
	}
	if 1 != selected {
		return fmt.Errorf("only one of seed, new or account may be given")
	}

	if "" != acc {
		err = m.config.AddReceiveOnlyIdentity(name, description, acc)
	} else {
		err = addPrivateIdentity(c, m.config, name, description, seed)
	}
	if nil != err {
		return err
	}

	if c.Bool("default") {
		m.config.DefaultIdentity = name
	}
	m.save = true

	return nil
}

func addPrivateIdentity(c *cli.Context, config *configuration.Configuration, name string, description string, seed string) error {
	key, err := checkSeed(seed)
	if nil != err {
		return err
	}
	password, err := newPassword(c.GlobalString("password"))
	if nil != err {
		return err
	}
	return config.AddIdentity(name, description, key, password)
}

func runList(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	return printJson(m.w, m.config.List())
}

func runChangePassword(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.GlobalString("identity"), m.config)
	if nil != err {
		return err
	}

	oldPassword := c.GlobalString("password")
	if "" == oldPassword {
		oldPassword, err = promptPassword()
		if nil != err {
			return err
		}
	}

	password, err := promptNewPassword()
	if nil != err {
		return err
	}

	err = m.config.ChangePassword(name, oldPassword, password)
	if nil != err {
		return err
	}
	m.save = true

	return nil
}
