// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/multitokend/account"
	"github.com/bitmark-inc/multitokend/event"
	"github.com/bitmark-inc/multitokend/fault"
	"github.com/bitmark-inc/multitokend/value"
)

func TestBuffer(t *testing.T) {
	b := event.Buffer{}
	assert.Equal(t, 0, len(b.Events()), "initially empty")

	b.Emit(event.OperatorSet{Owner: account.Address{1}, Spender: account.Address{2}, Approved: true})
	b.Emit(event.Approval{Owner: account.Address{1}, Spender: account.Address{2}, Id: value.NewTokenId(1), Value: value.NewAmount(5)})

	events := b.Events()
	assert.Equal(t, 2, len(events), "event count")
	assert.Equal(t, event.OperatorSetType, events[0].Type(), "first type")
	assert.Equal(t, event.ApprovalType, events[1].Type(), "second type")
}

func TestRecord(t *testing.T) {
	items := []event.Event{
		event.Transfer{From: account.Zero, To: account.Address{7}, Id: value.NewTokenId(3), Value: value.NewAmount(100)},
		event.Approval{Owner: account.Address{7}, Spender: account.Address{8}, Id: value.NewTokenId(3), Value: value.NewAmount(40)},
		event.OperatorSet{Owner: account.Address{7}, Spender: account.Address{9}, Approved: false},
	}

	for i, item := range items {
		packed, err := event.Pack(uint64(i+1), item)
		assert.Nil(t, err, "%d: pack", i)

		r, err := event.Unpack(packed)
		assert.Nil(t, err, "%d: unpack", i)
		assert.Equal(t, uint64(i+1), r.Sequence, "%d: sequence", i)
		assert.Equal(t, item.Type(), r.Type, "%d: type", i)

		e, err := r.Event()
		assert.Nil(t, err, "%d: event", i)
		assert.Equal(t, item, e, "%d: decoded event", i)
	}
}

func TestUnknownRecord(t *testing.T) {
	r := event.Record{Type: "unknown"}
	_, err := r.Event()
	assert.Equal(t, fault.ErrInvalidItem, err, "unknown type")

	_, err = event.Unpack([]byte("{not json"))
	assert.NotNil(t, err, "bad JSON")
}
