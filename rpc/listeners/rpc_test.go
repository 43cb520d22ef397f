// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"fmt"
	"io/ioutil"
	"math/rand"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/multitokend/counter"
	"github.com/bitmark-inc/multitokend/fault"
	"github.com/bitmark-inc/multitokend/fixtures"
	"github.com/bitmark-inc/multitokend/rpc/certificate"
	"github.com/bitmark-inc/multitokend/rpc/listeners"
)

type Add struct{}
type AddArg struct {
	A, B int
}

func (a Add) Add(arg *AddArg, reply *int) error {
	*reply = arg.A + arg.B
	return nil
}

func selfSigned(t *testing.T) (*tls.Config, [32]byte, func()) {
	dir, err := ioutil.TempDir("", "listeners")
	assert.Nil(t, err, "temp dir")

	crt := filepath.Join(dir, "rpc.crt")
	key := filepath.Join(dir, "rpc.key")
	err = certificate.MakeSelfSigned("test", crt, key, false, nil)
	assert.Nil(t, err, "self signed")

	tlsConfig, fin, err := certificate.Load(logger.New(fixtures.LogCategory), "test", crt, key)
	assert.Nil(t, err, "load certificate")

	return tlsConfig, fin, func() { os.RemoveAll(dir) }
}

func TestRpcListenerServe(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	tlsConfig, fin, cleanup := selfSigned(t)
	defer cleanup()

	port := rand.Intn(30000) + 30000
	con := listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{fmt.Sprintf("127.0.0.1:%d", port)},
	}

	s := rpc.NewServer()
	err := s.Register(Add{})
	assert.Nil(t, err, "register")

	count := counter.Counter{}
	l, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), &count, s, tlsConfig, fin)
	assert.Nil(t, err, "wrong NewRPC")

	err = l.Serve()
	assert.Nil(t, err, "wrong Serve")
	defer l.Stop()

	var c *tls.Conn
	for i := 0; i < 20; i += 1 {
		c, err = tls.Dial("tcp", fmt.Sprintf("127.0.0.1:%d", port), &tls.Config{InsecureSkipVerify: true})
		if nil == err {
			break
		}
		time.Sleep(50 * time.Millisecond)
	}
	if nil != err {
		t.Fatalf("dial error: %s", err)
	}

	client := jsonrpc.NewClient(c)
	defer client.Close()

	arg := AddArg{A: 2, B: 5}
	var reply int
	err = client.Call("Add.Add", &arg, &reply)
	assert.Nil(t, err, "wrong client Call")
	assert.Equal(t, arg.A+arg.B, reply, "wrong result")
	assert.Equal(t, uint64(1), count.Uint64(), "wrong connection count")
}

func TestNewRPCInvalidConfiguration(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	log := logger.New(fixtures.LogCategory)
	count := counter.Counter{}

	_, err := listeners.NewRPC(&listeners.RPCConfiguration{
		MaximumConnections: 0,
		Listen:             []string{"127.0.0.1:2130"},
	}, log, &count, rpc.NewServer(), &tls.Config{}, [32]byte{})
	assert.Equal(t, fault.ErrMissingParameters, err, "zero connections")

	_, err = listeners.NewRPC(&listeners.RPCConfiguration{
		MaximumConnections: 10,
	}, log, &count, rpc.NewServer(), &tls.Config{}, [32]byte{})
	assert.Equal(t, fault.ErrMissingParameters, err, "no listen address")

	_, err = listeners.NewRPC(&listeners.RPCConfiguration{
		MaximumConnections: 10,
		Listen:             []string{"localhost:2130"},
	}, log, &count, rpc.NewServer(), &tls.Config{}, [32]byte{})
	assert.Equal(t, fault.ErrInvalidIPAddress, err, "host name accepted")
}

func TestParseListenAddress(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	log := logger.New(fixtures.LogCategory)

	parsed, err := listeners.ParseListenAddress([]string{"*:2130", "127.0.0.1:2131", " [::1]:2132"}, log)
	assert.Nil(t, err, "wrong parse")
	assert.Equal(t, []string{"[::]:2130", "127.0.0.1:2131", "[::1]:2132"}, parsed, "wrong addresses")

	_, err = listeners.ParseListenAddress([]string{"2130"}, log)
	assert.Equal(t, fault.ErrInvalidIPAddress, err, "missing host accepted")
}
