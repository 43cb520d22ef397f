// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"math/big"

	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/multitokend/fault"
)

// FetchCursor - position within the committed data of one pool
//
// cursors read the database directly so they never see the writes
// of an open transaction
type FetchCursor struct {
	pool     *PoolHandle
	maxRange util.Range
}

// NewFetchCursor - cursor covering the whole pool
func (p *PoolHandle) NewFetchCursor() *FetchCursor {
	return &FetchCursor{
		pool: p,
		maxRange: util.Range{
			Start: []byte{p.prefix}, // included
			Limit: p.limit,          // excluded
		},
	}
}

// Seek - move the start of the cursor to key
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	cursor.maxRange.Start = cursor.pool.prefixKey(key)
	return cursor
}

// Fetch - up to count elements, advancing the cursor past the last one
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if nil == cursor {
		return nil, fault.ErrInvalidCursor
	}
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}

	results := make([]Element, 0, count)
	err := cursor.each(func(e Element) bool {
		results = append(results, e)
		return len(results) < count
	})

	if n := len(results); n > 0 {
		cursor.advance(results[n-1].Key)
	}
	return results, err
}

// Map - call f for each element until it returns an error
func (cursor *FetchCursor) Map(f func(key []byte, value []byte) error) error {
	if nil == cursor {
		return fault.ErrInvalidCursor
	}

	var mapErr error
	err := cursor.each(func(e Element) bool {
		mapErr = f(e.Key, e.Value)
		return nil == mapErr
	})
	if nil != mapErr {
		return mapErr
	}
	return err
}

// iterate the range with copies of the key (prefix stripped) and value
// stopping when f returns false
func (cursor *FetchCursor) each(f func(Element) bool) error {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.db {
		return nil
	}

	iter := cursor.pool.dataAccess.Iterator(&cursor.maxRange)
	defer iter.Release()

	for iter.Next() {
		// iterator slices are only valid until the next call to Next
		key := iter.Key()
		e := Element{
			Key:   append([]byte{}, key[1:]...),
			Value: append([]byte{}, iter.Value()...),
		}
		if !f(e) {
			break
		}
	}
	return iter.Error()
}

var one = big.NewInt(1)

// next start is the successor of key as a fixed width integer
func (cursor *FetchCursor) advance(key []byte) {
	keyLen := len(key)
	b := big.Int{}
	next := b.SetBytes(key).Add(&b, one).Bytes()
	if len(next) > keyLen {
		// key was all 0xff so nothing further within this range
		cursor.maxRange.Start = cursor.pool.limit
		return
	}

	start := make([]byte, keyLen+1)
	start[0] = cursor.pool.prefix
	copy(start[1+keyLen-len(next):], next)
	cursor.maxRange.Start = start
}
