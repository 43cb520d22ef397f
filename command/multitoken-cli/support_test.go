// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/multitokend/account"
	"github.com/bitmark-inc/multitokend/command/multitoken-cli/configuration"
	"github.com/bitmark-inc/multitokend/fault"
	"github.com/bitmark-inc/multitokend/value"
)

func testConfiguration(t *testing.T) (*configuration.Configuration, *account.PrivateKey) {
	key, err := account.NewPrivateKey()
	require.Nil(t, err, "key")

	config := configuration.New("127.0.0.1:2150", "")
	require.Nil(t, config.AddIdentity("alice", "first", key, "password123"), "add alice")
	return config, key
}

func TestCheckAccount(t *testing.T) {
	config, key := testConfiguration(t)

	a, err := checkAccount("", config)
	require.Nil(t, err, "default identity")
	assert.Equal(t, key.Address(), a, "default address")

	a, err = checkAccount("alice", config)
	require.Nil(t, err, "named identity")
	assert.Equal(t, key.Address(), a, "named address")

	other, err := account.NewPrivateKey()
	require.Nil(t, err, "other key")

	a, err = checkAccount(other.Address().String(), config)
	require.Nil(t, err, "base58 address")
	assert.Equal(t, other.Address(), a, "base58")

	a, err = checkAccount(other.Address().Hex(), nil)
	require.Nil(t, err, "hex address")
	assert.Equal(t, other.Address(), a, "hex")

	_, err = checkAccount("", nil)
	assert.Equal(t, fault.ErrIdentityNameNotFound, err, "no default")

	_, err = checkAccount("nobody", config)
	assert.NotNil(t, err, "neither identity nor address")

	_, err = checkRequiredAccount("spender", "", config)
	assert.EqualError(t, err, "spender is required", "required")
}

func TestCheckName(t *testing.T) {
	config, _ := testConfiguration(t)

	name, err := checkName("", config)
	require.Nil(t, err, "default")
	assert.Equal(t, "alice", name, "default name")

	name, err = checkName("bob", config)
	require.Nil(t, err, "explicit")
	assert.Equal(t, "bob", name, "explicit name")

	_, err = checkName("", nil)
	assert.Equal(t, fault.ErrInvalidIdentityName, err, "no name")
}

func TestCheckConnect(t *testing.T) {
	connect, err := checkConnect(" 127.0.0.1:2150 ")
	require.Nil(t, err, "valid")
	assert.Equal(t, "127.0.0.1:2150", connect, "trimmed")

	_, err = checkConnect("[::1]:2150")
	assert.Nil(t, err, "IPv6")

	for _, s := range []string{"", "127.0.0.1", ":2150", "host:"} {
		_, err := checkConnect(s)
		assert.NotNil(t, err, "invalid: %q", s)
	}
}

func TestCheckValues(t *testing.T) {
	id, err := checkTokenId("0x10")
	require.Nil(t, err, "hex id")
	assert.Equal(t, value.NewTokenId(16), id, "id")

	_, err = checkTokenId("")
	assert.NotNil(t, err, "missing id")

	_, err = checkTokenId("-1")
	assert.Equal(t, fault.ErrInvalidTokenId, err, "negative id")

	amount, err := checkAmount("1000")
	require.Nil(t, err, "amount")
	assert.Equal(t, value.NewAmount(1000), amount, "amount value")

	_, err = checkAmount("")
	assert.NotNil(t, err, "missing amount")
}

func TestCheckSeed(t *testing.T) {
	fresh, err := checkSeed("")
	require.Nil(t, err, "new key")

	again, err := checkSeed(fmt.Sprintf("%x", fresh.Seed()))
	require.Nil(t, err, "existing seed")
	assert.Equal(t, fresh.Address(), again.Address(), "same account")

	_, err = checkSeed("abcd")
	assert.Equal(t, fault.ErrInvalidSeedLength, err, "short seed")
}

func TestConfigurationFile(t *testing.T) {
	file, err := configurationFile("some/file.json", "multitoken-cli")
	require.Nil(t, err, "explicit")
	assert.True(t, filepath.IsAbs(file), "absolute")

	old, set := os.LookupEnv("XDG_CONFIG_HOME")
	defer func() {
		if set {
			os.Setenv("XDG_CONFIG_HOME", old)
		} else {
			os.Unsetenv("XDG_CONFIG_HOME")
		}
	}()

	os.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	file, err = configurationFile("", "multitoken-cli")
	require.Nil(t, err, "xdg")
	assert.Equal(t, "/tmp/xdg/multitoken-cli/multitoken-cli.json", file, "xdg path")
}

func TestPrintJson(t *testing.T) {
	buffer := &bytes.Buffer{}
	err := printJson(buffer, map[string]int{"a": 1})
	require.Nil(t, err, "print")
	assert.Equal(t, "{\n  \"a\": 1\n}\n", buffer.String(), "output")
}

func TestNewPassword(t *testing.T) {
	_, err := newPassword("short")
	assert.Equal(t, fault.ErrInvalidPasswordLength, err, "short flag password")

	password, err := newPassword("long enough")
	require.Nil(t, err, "flag password")
	assert.Equal(t, "long enough", password, "unchanged")
}
