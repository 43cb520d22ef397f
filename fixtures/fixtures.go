// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - common setup for tests that need logging and a database
package fixtures

import (
	"fmt"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/multitokend/account"
	"github.com/bitmark-inc/multitokend/storage"
)

const (
	dir          = "testing"
	DatabaseName = dir + "/test.leveldb"
	LogCategory  = "testing"
)

// fixed test accounts
var (
	Alice = account.Address{0xa1, 0x1c, 0xe0}
	Bob   = account.Address{0xb0, 0xb0}
	Carol = account.Address{0xca, 0x10, 0x1e}
	Dave  = account.Address{0xda, 0x7e}
)

// SetupTestLogger - start logging into a scratch directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - remove the scratch directory
func TeardownTestLogger() {
	removeFiles()
}

// SetupTestDatabase - logging plus an empty database
func SetupTestDatabase(t *testing.T) {
	SetupTestLogger()
	err := storage.Initialise(DatabaseName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

// TeardownTestDatabase - close and remove everything
func TeardownTestDatabase() {
	storage.Finalise()
	TeardownTestLogger()
}

func removeFiles() {
	os.RemoveAll(dir)
}
