// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package events

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/multitokend/event"
	"github.com/bitmark-inc/multitokend/ledger"
	"github.com/bitmark-inc/multitokend/rpc/ratelimit"
)

const (
	rateLimitEvents = 200
	rateBurstEvents = 100
)

// Events - type for RPC calls
type Events struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  ledger.Ledger
}

// ListArguments - arguments for RPC
type ListArguments struct {
	Start uint64 `json:"start,string"`
	Count int    `json:"count"`
}

// ListReply - result from RPC
type ListReply struct {
	Events    []event.Record `json:"events"`
	NextStart uint64         `json:"nextStart,string"`
}

// New - create the event log RPC service
func New(log *logger.L, l ledger.Ledger) *Events {
	return &Events{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitEvents, rateBurstEvents),
		Ledger:  l,
	}
}

// List - committed events in sequence order
func (events *Events) List(arguments *ListArguments, reply *ListReply) error {

	if err := ratelimit.LimitN(events.Limiter, arguments.Count, ledger.MaximumEventCount); nil != err {
		return err
	}

	events.Log.Infof("Events.List: start: %d  count: %d", arguments.Start, arguments.Count)

	records, nextStart, err := events.Ledger.Events(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}
	reply.Events = records
	reply.NextStart = nextStart

	return nil
}
