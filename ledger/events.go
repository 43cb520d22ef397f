// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/multitokend/event"
	"github.com/bitmark-inc/multitokend/fault"
	"github.com/bitmark-inc/multitokend/storage"
)

// maximum records returned by one Events call
const MaximumEventCount = 100

func sequenceKey(n uint64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, n)
	return k
}

// append events to the log, numbering from one
//
// returns the packed form of each
func (l *Engine) appendEvents(trx storage.Transaction, events []event.Event) ([][]byte, error) {
	if 0 == len(events) {
		return nil, nil
	}

	next := l.lastSequence() + 1

	packed := make([][]byte, 0, len(events))
	for _, e := range events {
		buffer, err := event.Pack(next, e)
		if nil != err {
			return nil, err
		}
		trx.Put(l.pools.Events, sequenceKey(next), buffer)
		packed = append(packed, buffer)
		next += 1
	}
	return packed, nil
}

// highest committed sequence number, zero for an empty log
//
// sequence keys are big endian so the last element is the newest
func (l *Engine) lastSequence() uint64 {
	last, found := l.pools.Events.LastElement()
	if !found {
		return 0
	}
	if 8 != len(last.Key) {
		logger.Panicf("ledger.lastSequence: invalid key: %x", last.Key)
	}
	return binary.BigEndian.Uint64(last.Key)
}

// Events - committed events from sequence start onwards
//
// returns the start for the following call
func (l *Engine) Events(start uint64, count int) ([]event.Record, uint64, error) {
	if count <= 0 || count > MaximumEventCount {
		return nil, start, fault.ErrInvalidCount
	}

	l.RLock()
	defer l.RUnlock()

	elements, err := l.pools.Events.NewFetchCursor().Seek(sequenceKey(start)).Fetch(count)
	if nil != err {
		return nil, start, err
	}

	records := make([]event.Record, 0, len(elements))
	next := start
	for _, e := range elements {
		r, err := event.Unpack(e.Value)
		if nil != err {
			return nil, start, err
		}
		records = append(records, *r)
		next = r.Sequence + 1
	}
	return records, next, nil
}
