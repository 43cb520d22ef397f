// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - this is to setup and handle all of the incoming JSON RPC requests
// from clients requiring multitokend services
//
// standard golang RPC services can be used on the client side to
// access these services:
//
//   Token.BalanceOf  Token.Allowance  Token.IsOperator  Token.TotalSupply  Token.Holdings
//   Token.Transfer   Token.TransferFrom  Token.Approve  Token.SetOperator  Token.Mint  Token.Burn
//   Events.List
//   Node.Info
//
// mutating Token calls carry a signed request.Authorisation
package rpc
