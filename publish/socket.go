// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"net"
	"strconv"
	"strings"
	"sync"
	"time"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/multitokend/fault"
)

const (
	heartbeatInterval = 15 * time.Second
	heartbeatTimeout  = 60 * time.Second
	heartbeatTTL      = 60 * time.Second
)

// to ensure only one auth start
var oneTimeAuthStart sync.Once

// initialise the ZMQ security subsystem
func startAuthentication() error {
	err := error(nil)
	oneTimeAuthStart.Do(func() {
		zmq.AuthSetVerbose(false)
		err = zmq.AuthStart()
	})
	return err
}

// convert "IP:port" to a "tcp://" bind address
//
// "*:port" binds all IPv4 and IPv6 interfaces
func bindAddress(hostPort string) (string, bool, error) {
	host, port, err := net.SplitHostPort(strings.TrimSpace(hostPort))
	if nil != err {
		return "", false, fault.ErrInvalidIPAddress
	}

	numericPort, err := strconv.Atoi(port)
	if nil != err || numericPort < 1 || numericPort > 65535 {
		return "", false, fault.ErrInvalidIPAddress
	}

	if "*" == host {
		return "tcp://*:" + strconv.Itoa(numericPort), true, nil
	}

	ip := net.ParseIP(host)
	if nil == ip {
		return "", false, fault.ErrInvalidIPAddress
	}
	if nil != ip.To4() {
		return "tcp://" + ip.String() + ":" + strconv.Itoa(numericPort), false, nil
	}
	return "tcp://[" + ip.String() + "]:" + strconv.Itoa(numericPort), true, nil
}

// bind IPv4 and IPv6 sockets to all listen addresses
//
// either socket may be nil if no address of that type was given
func newBind(log *logger.L, socketType zmq.Type, zapDomain string, privateKey []byte, publicKey []byte, listen []string) (*zmq.Socket, *zmq.Socket, error) {

	socket4 := (*zmq.Socket)(nil) // IPv4 traffic
	socket6 := (*zmq.Socket)(nil) // IPv6 traffic

	fail := func(err error) (*zmq.Socket, *zmq.Socket, error) {
		if nil != socket4 {
			socket4.Close()
		}
		if nil != socket6 {
			socket6.Close()
		}
		return nil, nil, err
	}

	for i, address := range listen {
		bindTo, v6, err := bindAddress(address)
		if nil != err {
			log.Errorf("invalid broadcast[%d]: %q  error: %s", i, address, err)
			return fail(err)
		}

		socket := &socket4
		if v6 {
			socket = &socket6
		}
		if nil == *socket {
			*socket, err = newServerSocket(socketType, zapDomain, privateKey, publicKey, v6)
			if nil != err {
				return fail(err)
			}
		}

		err = (*socket).Bind(bindTo)
		if nil != err {
			log.Errorf("cannot bind[%d]: %q  error: %s", i, bindTo, err)
			return fail(err)
		}
		log.Infof("bind[%d]: %q  IPv6: %t", i, bindTo, v6)
	}
	return socket4, socket6, nil
}

// create a CURVE encrypted socket for the server side
func newServerSocket(socketType zmq.Type, zapDomain string, privateKey []byte, publicKey []byte, v6 bool) (*zmq.Socket, error) {

	socket, err := zmq.NewSocket(socketType)
	if nil != err {
		return nil, err
	}

	// allow any client to connect
	zmq.AuthCurveAdd(zapDomain, zmq.CURVE_ALLOW_ANY)

	settings := []error{
		socket.SetCurveServer(1),
		socket.SetCurveSecretkey(string(privateKey)),
		socket.SetZapDomain(zapDomain),
		socket.SetIdentity(string(publicKey)), // just use public key for identity
		socket.SetIpv6(v6),
		socket.SetHeartbeatIvl(heartbeatInterval),
		socket.SetHeartbeatTimeout(heartbeatTimeout),
		socket.SetHeartbeatTtl(heartbeatTTL),
	}
	for _, err := range settings {
		if nil != err {
			socket.Close()
			return nil, err
		}
	}

	return socket, nil
}
