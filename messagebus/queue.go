// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"
)

// Message - a command and its packed parameters
type Message struct {
	Command    string
	Parameters [][]byte
}

// BroadcastQueue - send each message to all current listeners
type BroadcastQueue struct {
	sync.RWMutex
	listeners []chan Message
}

type busses struct {
	Broadcast *BroadcastQueue
}

// Bus - all available queues
var Bus = busses{
	Broadcast: &BroadcastQueue{},
}

// Send - queue a message to every listener
//
// dropped for any listener whose channel is full
func (queue *BroadcastQueue) Send(command string, parameters ...[]byte) {
	m := Message{
		Command:    command,
		Parameters: parameters,
	}

	queue.RLock()
	defer queue.RUnlock()

	for _, c := range queue.listeners {
		select {
		case c <- m:
		default:
		}
	}
}

// Chan - add a new listener with the given buffer size
func (queue *BroadcastQueue) Chan(size int) <-chan Message {
	if size < 0 {
		size = 0
	}
	c := make(chan Message, size)

	queue.Lock()
	queue.listeners = append(queue.listeners, c)
	queue.Unlock()

	return c
}

// Release - close and remove all listeners
func (queue *BroadcastQueue) Release() {
	queue.Lock()
	defer queue.Unlock()

	for _, c := range queue.listeners {
		close(c)
	}
	queue.listeners = nil
}
