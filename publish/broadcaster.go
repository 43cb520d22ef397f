// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/multitokend/fault"
	"github.com/bitmark-inc/multitokend/messagebus"
)

const (
	broadcasterZapDomain = "broadcaster"
	queueSize            = 1000
)

// sender - the part of a socket used to publish
type sender interface {
	Send(string, zmq.Flag) (int, error)
	SendBytes([]byte, zmq.Flag) (int, error)
}

type broadcaster struct {
	log     *logger.L
	queue   <-chan messagebus.Message
	socket4 *zmq.Socket
	socket6 *zmq.Socket
}

// initialise the broadcaster
func (brdc *broadcaster) initialise(privateKey []byte, publicKey []byte, broadcast []string) error {

	log := logger.New("broadcaster")
	if nil == log {
		return fault.ErrInvalidLoggerChannel
	}
	brdc.log = log

	log.Info("initialising…")

	err := startAuthentication()
	if nil != err {
		log.Errorf("zmq authentication error: %s", err)
		return err
	}

	// allocate IPv4 and IPv6 sockets
	brdc.socket4, brdc.socket6, err = newBind(log, zmq.PUB, broadcasterZapDomain, privateKey, publicKey, broadcast)
	if nil != err {
		log.Errorf("bind error: %s", err)
		return err
	}

	// listen before any event can be committed
	brdc.queue = messagebus.Bus.Broadcast.Chan(queueSize)

	return nil
}

// Run - publish committed events until shutdown
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	log := brdc.log

	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item, ok := <-brdc.queue:
			if !ok {
				break loop
			}
			log.Debugf("sending: %s  data: %s", item.Command, item.Parameters)
			brdc.publish(brdc.socket4, &item)
			brdc.publish(brdc.socket6, &item)
		}
	}
	if nil != brdc.socket4 {
		brdc.socket4.Close()
	}
	if nil != brdc.socket6 {
		brdc.socket6.Close()
	}
	log.Info("stopped")
}

func (brdc *broadcaster) publish(socket *zmq.Socket, item *messagebus.Message) {
	if nil == socket {
		return
	}
	err := send(socket, item)
	if nil != err {
		brdc.log.Errorf("publish: %s  error: %s", item.Command, err)
	}
}

// send one message as a multipart frame: command then each parameter
func send(socket sender, item *messagebus.Message) error {
	flag := zmq.DONTWAIT
	if 0 != len(item.Parameters) {
		flag |= zmq.SNDMORE
	}
	_, err := socket.Send(item.Command, flag)
	if nil != err {
		return err
	}

	last := len(item.Parameters) - 1
	for i, p := range item.Parameters {
		flag := zmq.DONTWAIT
		if i != last {
			flag |= zmq.SNDMORE
		}
		_, err = socket.SendBytes(p, flag)
		if nil != err {
			return err
		}
	}
	return nil
}
