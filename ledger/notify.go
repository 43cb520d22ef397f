// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/multitokend/event"
	"github.com/bitmark-inc/multitokend/messagebus"
)

// BusNotifier - forward committed events to the broadcast bus
type BusNotifier struct{}

// Notify - command is the event type, the single parameter its packed record
func (BusNotifier) Notify(e event.Event, packed []byte) {
	messagebus.Bus.Broadcast.Send(e.Type(), packed)
}
