// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/multitokend/account"
)

func writeConfiguration(t *testing.T, content string) (string, string, func()) {
	dir, err := ioutil.TempDir("", "multitokend")
	assert.Nil(t, err, "temp dir")
	dir, _ = filepath.EvalSymlinks(dir)

	name := filepath.Join(dir, "multitokend.conf")
	err = ioutil.WriteFile(name, []byte(content), 0600)
	assert.Nil(t, err, "write configuration")
	return dir, name, func() { os.RemoveAll(dir) }
}

func TestSampleConfiguration(t *testing.T) {
	sample, err := ioutil.ReadFile("multitokend.conf.sample")
	assert.Nil(t, err, "read sample")

	dir, name, cleanup := writeConfiguration(t, string(sample))
	defer cleanup()

	c, err := getConfiguration(name, nil)
	assert.Nil(t, err, "wrong getConfiguration")

	assert.Equal(t, filepath.Clean(dir)+"/", c.DataDirectory, "wrong data directory")
	assert.Equal(t, filepath.Join(dir, "data", "multitoken.leveldb"), c.Database.Name, "wrong database")
	assert.Equal(t, filepath.Join(dir, "rpc.crt"), c.ClientRPC.Certificate, "wrong certificate")
	assert.Equal(t, uint64(50), c.ClientRPC.MaximumConnections, "wrong connections")
	assert.Equal(t, []string{"127.0.0.1:2150"}, c.ClientRPC.Listen, "wrong listen")
	assert.Equal(t, 0, len(c.Publishing.Broadcast), "publishing enabled")
	assert.Equal(t, "EMT", c.Token.Symbol, "wrong symbol")
	assert.Equal(t, uint8(18), c.Token.Decimals, "wrong decimals")
	assert.Equal(t, "", c.PidFile, "unexpected pid file")

	fileInfo, err := os.Stat(filepath.Join(dir, "data"))
	assert.Nil(t, err, "database directory not created")
	assert.True(t, fileInfo.IsDir(), "database directory is a file")
}

const minimal = `
return {
    data_directory = ".",
    pidfile = "run.pid",
    token = {
        name = "T",
        symbol = "T",
        owner = owner,
        minters = { minter },
    },
}
`

func TestConfigurationAddresses(t *testing.T) {
	dir, name, cleanup := writeConfiguration(t, minimal)
	defer cleanup()

	minter := account.Address{0x01, 0x02}
	owner := account.Address{0xee}

	c, err := getConfiguration(name, map[string]string{
		"owner":  owner.Hex(),
		"minter": minter.String(),
	})
	assert.Nil(t, err, "wrong getConfiguration")
	assert.Equal(t, filepath.Join(dir, "run.pid"), c.PidFile, "wrong pid file")

	m, err := c.metadata()
	assert.Nil(t, err, "wrong metadata")
	assert.Equal(t, owner, m.Owner, "wrong owner")

	minters, err := c.minters()
	assert.Nil(t, err, "wrong minters")
	assert.Equal(t, []account.Address{minter}, minters, "wrong minters")
}

func TestConfigurationErrors(t *testing.T) {
	_, name, cleanup := writeConfiguration(t, minimal)
	defer cleanup()

	_, err := getConfiguration(name, map[string]string{"minter": "not-an-address"})
	assert.NotNil(t, err, "bad minter accepted")

	_, err = getConfiguration(name, map[string]string{"minter": account.Zero.Hex()})
	assert.NotNil(t, err, "zero minter accepted")

	_, err = getConfiguration(name, map[string]string{"owner": "0x1234"})
	assert.NotNil(t, err, "short owner accepted")

	_, noToken, cleanupNoToken := writeConfiguration(t, `return { data_directory = "." }`)
	defer cleanupNoToken()
	_, err = getConfiguration(noToken, nil)
	assert.NotNil(t, err, "missing token accepted")

	_, badDir, cleanupBadDir := writeConfiguration(t, `return { data_directory = "", token = { name = "T", symbol = "T" } }`)
	defer cleanupBadDir()
	_, err = getConfiguration(badDir, nil)
	assert.NotNil(t, err, "blank data directory accepted")
}
