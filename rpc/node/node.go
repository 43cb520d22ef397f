// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"encoding/hex"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/multitokend/account"
	"github.com/bitmark-inc/multitokend/counter"
	"github.com/bitmark-inc/multitokend/fault"
	"github.com/bitmark-inc/multitokend/ledger"
	"github.com/bitmark-inc/multitokend/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Start     time.Time
	Version   string
	Ledger    ledger.Ledger
	Minters   []account.Address
	PublicKey []byte
	counter   *counter.Counter
}

// New - create the node information RPC service
//
// publicKey is the event publisher's CURVE key, nil if publishing is disabled
func New(log *logger.L, l ledger.Ledger, start time.Time, version string, counter *counter.Counter, minters []account.Address, publicKey []byte) *Node {
	return &Node{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:     start,
		Version:   version,
		Ledger:    l,
		Minters:   minters,
		PublicKey: publicKey,
		counter:   counter,
	}
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Token     ledger.Metadata   `json:"token"`
	Minters   []account.Address `json:"minters"`
	RPCs      uint64            `json:"rpcs"`
	Version   string            `json:"version"`
	Uptime    string            `json:"uptime"`
	PublicKey string            `json:"publicKey"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	if nil == node.Ledger {
		return fault.ErrNotInitialised
	}

	reply.Token = node.Ledger.Metadata()
	reply.Minters = node.Minters
	reply.RPCs = node.counter.Uint64()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	if nil != node.PublicKey {
		reply.PublicKey = hex.EncodeToString(node.PublicKey)
	}
	return nil
}
