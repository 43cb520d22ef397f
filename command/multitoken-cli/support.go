// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"net"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/multitokend/account"
	"github.com/bitmark-inc/multitokend/command/multitoken-cli/configuration"
	"github.com/bitmark-inc/multitokend/command/multitoken-cli/rpccalls"
	"github.com/bitmark-inc/multitokend/fault"
	"github.com/bitmark-inc/multitokend/value"
)

// returns true if the path is a directory
func checkFileExists(name string) (bool, error) {
	info, err := os.Stat(name)
	if nil != err {
		return false, err
	}
	return info.IsDir(), nil
}

// identity name: explicit or the default
func checkName(name string, config *configuration.Configuration) (string, error) {
	if "" == name && nil != config {
		name = config.DefaultIdentity
	}
	if "" == name {
		return "", fault.ErrInvalidIdentityName
	}
	return name, nil
}

func checkConnect(connect string) (string, error) {
	connect = strings.TrimSpace(connect)
	if "" == connect {
		return "", fmt.Errorf("connect is required")
	}
	host, port, err := net.SplitHostPort(connect)
	if nil != err {
		return "", err
	}
	if "" == host || "" == port {
		return "", fmt.Errorf("invalid connect: %q", connect)
	}
	return connect, nil
}

func checkDescription(description string) (string, error) {
	if "" == description {
		return "", fmt.Errorf("description is required")
	}
	return description, nil
}

// seed: existing hex or a fresh random key
func checkSeed(seed string) (*account.PrivateKey, error) {
	if "" == seed {
		return account.NewPrivateKey()
	}
	return account.PrivateKeyFromHex(seed)
}

// resolve an identity name from the configuration, else decode an address
//
// an empty argument selects the default identity
func checkAccount(s string, config *configuration.Configuration) (account.Address, error) {
	if "" == s {
		if nil == config || "" == config.DefaultIdentity {
			return account.Zero, fault.ErrIdentityNameNotFound
		}
		s = config.DefaultIdentity
	}
	if nil != config {
		if _, ok := config.Identities[s]; ok {
			return config.Account(s)
		}
	}
	return account.AddressFromString(s)
}

// same as checkAccount but the value is mandatory
func checkRequiredAccount(flag string, s string, config *configuration.Configuration) (account.Address, error) {
	if "" == s {
		return account.Zero, fmt.Errorf("%s is required", flag)
	}
	return checkAccount(s, config)
}

func checkTokenId(s string) (value.TokenId, error) {
	if "" == s {
		return value.TokenId{}, fmt.Errorf("token id is required")
	}
	return value.TokenIdFromString(s)
}

func checkAmount(s string) (value.Amount, error) {
	if "" == s {
		return value.Amount{}, fmt.Errorf("amount is required")
	}
	return value.AmountFromString(s)
}

// decrypt the signing key of the selected identity
func getPrivate(c *cli.Context, m *metadata) (*configuration.Private, error) {
	name, err := checkName(c.GlobalString("identity"), m.config)
	if nil != err {
		return nil, err
	}

	password := c.GlobalString("password")
	if "" == password {
		password, err = promptPassword()
		if nil != err {
			return nil, err
		}
	}

	private, err := m.config.Private(password, name)
	if nil != err {
		return nil, err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "identity: %s  account: %s\n", name, private.Account)
	}
	return private, nil
}

func connect(m *metadata) (*rpccalls.Client, error) {
	if m.verbose {
		fmt.Fprintf(m.e, "connect: %s\n", m.config.Connect)
	}
	return rpccalls.NewClient(m.config.Connect, m.config.Fingerprint, m.verbose, m.e)
}
