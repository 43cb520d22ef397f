// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package request - signed authorisation carried by mutating RPC calls
//
// the signed message is the method name, the decimal unix timestamp
// and each argument field in its text form, separated by newlines.
// The caller is the address derived from the signing public key.
package request

import (
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/multitokend/account"
	"github.com/bitmark-inc/multitokend/fault"
)

// DefaultWindow - how far a request timestamp may drift from the server clock
const DefaultWindow = 5 * time.Minute

// Authorisation - proof that the caller holds the key for its address
type Authorisation struct {
	PublicKey string `json:"publicKey"`
	Timestamp int64  `json:"timestamp,string"`
	Signature string `json:"signature"`
}

// Message - the bytes that are signed
func Message(method string, timestamp int64, fields ...string) []byte {
	parts := make([]string, 0, len(fields)+2)
	parts = append(parts, method, strconv.FormatInt(timestamp, 10))
	parts = append(parts, fields...)
	return []byte(strings.Join(parts, "\n"))
}

// Sign - authorise a request with the current time
func Sign(key *account.PrivateKey, method string, fields ...string) Authorisation {
	return SignAt(key, time.Now().Unix(), method, fields...)
}

// SignAt - authorise a request with a fixed timestamp
func SignAt(key *account.PrivateKey, timestamp int64, method string, fields ...string) Authorisation {
	signature := key.Sign(Message(method, timestamp, fields...))
	return Authorisation{
		PublicKey: hex.EncodeToString(key.PublicKey()),
		Timestamp: timestamp,
		Signature: hex.EncodeToString(signature),
	}
}

// Verifier - checks authorisations and rejects replays
//
// a signature is remembered for twice the window so any copy
// inside the acceptable time range is detected
type Verifier struct {
	window time.Duration
	seen   *cache.Cache
	now    func() time.Time
}

// NewVerifier - create a verifier for the given clock drift window
func NewVerifier(window time.Duration) *Verifier {
	return &Verifier{
		window: window,
		seen:   cache.New(2*window, window),
		now:    time.Now,
	}
}

// Verify - check the authorisation and return the caller address
func (v *Verifier) Verify(auth Authorisation, method string, fields ...string) (account.Address, error) {
	if "" == auth.PublicKey || "" == auth.Signature {
		return account.Zero, fault.ErrMissingParameters
	}

	publicKey, err := hex.DecodeString(auth.PublicKey)
	if nil != err {
		return account.Zero, fault.ErrInvalidPublicKey
	}
	signature, err := hex.DecodeString(auth.Signature)
	if nil != err {
		return account.Zero, fault.ErrInvalidSignature
	}

	drift := v.now().Sub(time.Unix(auth.Timestamp, 0))
	if drift > v.window || drift < -v.window {
		return account.Zero, fault.ErrRequestExpired
	}

	err = account.CheckSignature(publicKey, Message(method, auth.Timestamp, fields...), signature)
	if nil != err {
		return account.Zero, err
	}

	// keyed on the decoded bytes, hex case must not make a new entry;
	// Add fails if the signature is already present
	err = v.seen.Add(string(signature), struct{}{}, cache.DefaultExpiration)
	if nil != err {
		return account.Zero, fault.ErrDuplicateRequest
	}

	return account.AddressFromPublicKey(publicKey), nil
}
