// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"

	"github.com/bitmark-inc/listener"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/multitokend/counter"
	"github.com/bitmark-inc/multitokend/fault"
)

const (
	logName            = "client_rpc"
	minConnectionCount = 1
)

// Listener - a started or startable RPC endpoint
type Listener interface {
	Serve() error
	Stop()
}

// RPCConfiguration - configuration file data for RPC setup
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

// the argument passed to the callback
type serverArgument struct {
	log    *logger.L
	server *rpc.Server
	count  *counter.Counter
}

type rpcListener struct {
	log      *logger.L
	multi    *listener.MultiListener
	argument *serverArgument
}

// NewRPC - validate the configuration and prepare a TLS JSON-RPC listener
func NewRPC(
	configuration *RPCConfiguration,
	log *logger.L,
	count *counter.Counter,
	server *rpc.Server,
	tlsConfig *tls.Config,
	certificateFingerprint [32]byte,
) (Listener, error) {
	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", logName, configuration.MaximumConnections)
		return nil, fault.ErrMissingParameters
	}

	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", logName)
		return nil, fault.ErrMissingParameters
	}

	log.Infof("%s: SHA3-256 fingerprint: %x", logName, certificateFingerprint)

	// validate all listen addresses
	addresses, err := parseListenAddress(configuration.Listen, log)
	if nil != err {
		return nil, err
	}

	limiter := listener.NewLimiter(int(configuration.MaximumConnections))
	multi, err := listener.NewMultiListener(logName, addresses, tlsConfig, limiter, callback)
	if nil != err {
		log.Errorf("%s: listen error: %s", logName, err)
		return nil, err
	}

	r := &rpcListener{
		log:   log,
		multi: multi,
		argument: &serverArgument{
			log:    log,
			server: server,
			count:  count,
		},
	}
	return r, nil
}

// Serve - start accepting connections
func (r *rpcListener) Serve() error {
	r.log.Infof("starting RPC server: %s", logName)
	r.multi.Start(r.argument)
	return nil
}

// Stop - close all listening sockets
func (r *rpcListener) Stop() {
	r.log.Infof("stopping RPC server: %s", logName)
	r.multi.Stop()
}

// listener callback
func callback(conn io.ReadWriteCloser, argument interface{}) {

	serverArgument := argument.(*serverArgument)

	serverArgument.count.Increment()
	defer serverArgument.count.Decrement()

	serverArgument.log.Debug("connection start")

	codec := jsonrpc.NewServerCodec(conn)
	defer codec.Close()
	serverArgument.server.ServeCodec(codec)

	serverArgument.log.Debug("connection finished")
}

// convert "*:PORT" to "[::]:PORT" and check the IP of everything else
func parseListenAddress(addrs []string, log *logger.L) ([]string, error) {
	parsed := make([]string, len(addrs))
	for i, listen := range addrs {
		listen = strings.TrimSpace(listen)

		host, port, err := net.SplitHostPort(listen)
		if nil != err {
			log.Errorf("rpc server listen: %q  error: %s", listen, err)
			return nil, fault.ErrInvalidIPAddress
		}

		if "*" == host {
			// on the assumption that this will listen on tcp4 and tcp6
			parsed[i] = "[::]:" + port
			continue
		}

		if ip := net.ParseIP(host); nil == ip {
			err := fault.ErrInvalidIPAddress
			log.Errorf("rpc server listen: %q  error: %s", listen, err)
			return nil, err
		}
		parsed[i] = listen
	}

	return parsed, nil
}
