// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/multitokend/account"
	"github.com/bitmark-inc/multitokend/counter"
	"github.com/bitmark-inc/multitokend/ledger"
	"github.com/bitmark-inc/multitokend/rpc/events"
	"github.com/bitmark-inc/multitokend/rpc/node"
	"github.com/bitmark-inc/multitokend/rpc/request"
	"github.com/bitmark-inc/multitokend/rpc/token"
)

// Create - an RPC server with every service registered
func Create(log *logger.L, version string, rpcCount *counter.Counter, l ledger.Ledger, minters []account.Address, publicKey []byte) *rpc.Server {

	start := time.Now().UTC()
	verifier := request.NewVerifier(request.DefaultWindow)

	server := rpc.NewServer()

	_ = server.Register(token.New(log, l, minters, verifier))
	_ = server.Register(events.New(log, l))
	_ = server.Register(node.New(log, l, start, version, rpcCount, minters, publicKey))

	return server
}
