// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/multitokend/fault"
)

// a string data item
type stringElement struct {
	key   string
	value string
}

// this is the expected order
var expectedElements = []stringElement{
	{"key-five", "data-five"},
	{"key-four", "data-four"},
	{"key-one", "data-one(NEW)"},
	{"key-seven", "data-seven"},
	{"key-six", "data-six"},
	{"key-three", "data-three"},
	{"key-two", "data-two"},
}

func fillTestData(t *testing.T) {
	trx, err := NewDBTransaction()
	if nil != err {
		t.Fatalf("new transaction error: %s", err)
	}

	p := testPool()
	put := func(key string, data string) {
		trx.Put(p, []byte(key), []byte(data))
	}

	put("key-one", "data-one")
	put("key-two", "data-two")
	put("key-remove-me", "to be deleted")
	trx.Delete(p, []byte("key-remove-me"))
	put("key-three", "data-three")
	put("key-four", "data-four")
	put("key-delete-this", "to be deleted")
	put("key-five", "data-five")
	put("key-six", "data-six")
	trx.Delete(p, []byte("key-delete-this"))
	put("key-seven", "data-seven")
	put("key-one", "data-one(NEW)") // duplicate

	// visible before commit
	assert.Equal(t, []byte("data-one(NEW)"), trx.Get(p, []byte("key-one")), "read own write")
	assert.False(t, trx.Has(p, []byte("key-remove-me")), "deleted key visible")

	err = trx.Commit()
	assert.Nil(t, err, "commit")
}

func checkResults(t *testing.T) {
	cursor := testPool().NewFetchCursor()
	data, err := cursor.Fetch(20)
	assert.Nil(t, err, "fetch")
	assert.Equal(t, len(expectedElements), len(data), "length mismatch")

	for i, e := range data {
		if i >= len(expectedElements) {
			break
		}
		assert.Equal(t, expectedElements[i].key, string(e.Key), "%d: key", i)
		assert.Equal(t, expectedElements[i].value, string(e.Value), "%d: value", i)
	}
}

func TestPool(t *testing.T) {
	setupTestDatabase(t)
	defer teardownTestDatabase()

	fillTestData(t)
	checkResults(t)

	// restarting database keeps data
	Finalise()
	err := Initialise(databaseName, ReadWrite)
	assert.Nil(t, err, "re-initialise")
	checkResults(t)
}

func TestFetchInPages(t *testing.T) {
	setupTestDatabase(t)
	defer teardownTestDatabase()

	fillTestData(t)

	cursor := testPool().NewFetchCursor()
	seen := 0
	for {
		data, err := cursor.Fetch(3)
		assert.Nil(t, err, "fetch")
		if 0 == len(data) {
			break
		}
		for _, e := range data {
			assert.Equal(t, expectedElements[seen].key, string(e.Key), "%d: key", seen)
			seen += 1
		}
	}
	assert.Equal(t, len(expectedElements), seen, "paged count")

	_, err := cursor.Fetch(0)
	assert.Equal(t, fault.ErrInvalidCount, err, "zero count")
}

func TestSeekAndMap(t *testing.T) {
	setupTestDatabase(t)
	defer teardownTestDatabase()

	fillTestData(t)

	keys := []string{}
	err := testPool().NewFetchCursor().Seek([]byte("key-s")).Map(func(key []byte, value []byte) error {
		keys = append(keys, string(key))
		return nil
	})
	assert.Nil(t, err, "map")
	assert.Equal(t, []string{"key-seven", "key-six", "key-three", "key-two"}, keys, "keys after seek")

	last, found := testPool().LastElement()
	assert.True(t, found, "last element")
	assert.Equal(t, "key-two", string(last.Key), "last key")
}

func TestAbortedTransaction(t *testing.T) {
	setupTestDatabase(t)
	defer teardownTestDatabase()

	trx, err := NewDBTransaction()
	assert.Nil(t, err, "new transaction")

	_, err = NewDBTransaction()
	assert.Equal(t, fault.ErrTransactionAlreadyInUse, err, "second transaction")

	trx.Put(testPool(), []byte("count"), []byte{42})
	assert.Equal(t, []byte{42}, trx.Get(testPool(), []byte("count")), "count in transaction")

	trx.Abort()

	assert.False(t, testPool().Has([]byte("count")), "aborted count visible")

	trx, err = NewDBTransaction()
	assert.Nil(t, err, "transaction after abort")
	trx.Abort()
}

func TestInitialiseTwice(t *testing.T) {
	setupTestDatabase(t)
	defer teardownTestDatabase()

	err := Initialise(databaseName, ReadWrite)
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "second initialise")
}

func TestReadOnly(t *testing.T) {
	setupTestDatabase(t)
	defer teardownTestDatabase()

	fillTestData(t)
	Finalise()

	err := Initialise(databaseName, ReadOnly)
	assert.Nil(t, err, "read only initialise")

	checkResults(t)

	_, err = NewDBTransaction()
	assert.Equal(t, fault.ErrNotAvailableInReadOnlyMode, err, "transaction in read only mode")
}
