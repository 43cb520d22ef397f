// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package request

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/multitokend/account"
	"github.com/bitmark-inc/multitokend/fault"
)

func fixedVerifier(now time.Time) *Verifier {
	v := NewVerifier(DefaultWindow)
	v.now = func() time.Time { return now }
	return v
}

func TestMessage(t *testing.T) {
	m := Message("Token.Transfer", 1234, "to", "1", "100")
	assert.Equal(t, "Token.Transfer\n1234\nto\n1\n100", string(m), "wrong message")
}

func TestVerify(t *testing.T) {
	key, err := account.NewPrivateKey()
	assert.Nil(t, err, "new key")

	now := time.Unix(1600000000, 0)
	v := fixedVerifier(now)

	auth := SignAt(key, now.Unix(), "Token.Approve", "spender", "1", "40")

	caller, err := v.Verify(auth, "Token.Approve", "spender", "1", "40")
	assert.Nil(t, err, "wrong Verify")
	assert.Equal(t, key.Address(), caller, "wrong caller")

	_, err = v.Verify(auth, "Token.Approve", "spender", "1", "40")
	assert.Equal(t, fault.ErrDuplicateRequest, err, "replay accepted")

	upper := auth
	upper.Signature = strings.ToUpper(auth.Signature)
	_, err = v.Verify(upper, "Token.Approve", "spender", "1", "40")
	assert.Equal(t, fault.ErrDuplicateRequest, err, "upper case replay accepted")

	mixed := auth
	mixed.Signature = strings.ToUpper(auth.Signature[:10]) + auth.Signature[10:]
	mixed.PublicKey = strings.ToUpper(auth.PublicKey)
	_, err = v.Verify(mixed, "Token.Approve", "spender", "1", "40")
	assert.Equal(t, fault.ErrDuplicateRequest, err, "mixed case replay accepted")
}

func TestVerifyTampered(t *testing.T) {
	key, _ := account.NewPrivateKey()
	now := time.Unix(1600000000, 0)
	v := fixedVerifier(now)

	auth := SignAt(key, now.Unix(), "Token.Approve", "spender", "1", "40")

	_, err := v.Verify(auth, "Token.Approve", "spender", "1", "41")
	assert.Equal(t, fault.ErrInvalidSignature, err, "changed field accepted")

	_, err = v.Verify(auth, "Token.Transfer", "spender", "1", "40")
	assert.Equal(t, fault.ErrInvalidSignature, err, "changed method accepted")

	other, _ := account.NewPrivateKey()
	forged := SignAt(other, now.Unix(), "Token.Approve", "spender", "1", "40")
	forged.PublicKey = auth.PublicKey
	_, err = v.Verify(forged, "Token.Approve", "spender", "1", "40")
	assert.Equal(t, fault.ErrInvalidSignature, err, "foreign signature accepted")
}

func TestVerifyWindow(t *testing.T) {
	key, _ := account.NewPrivateKey()
	now := time.Unix(1600000000, 0)
	v := fixedVerifier(now)

	old := SignAt(key, now.Add(-DefaultWindow-time.Second).Unix(), "Node.Info")
	_, err := v.Verify(old, "Node.Info")
	assert.Equal(t, fault.ErrRequestExpired, err, "old request accepted")

	future := SignAt(key, now.Add(DefaultWindow+time.Second).Unix(), "Node.Info")
	_, err = v.Verify(future, "Node.Info")
	assert.Equal(t, fault.ErrRequestExpired, err, "future request accepted")

	edge := SignAt(key, now.Add(-DefaultWindow).Unix(), "Node.Info")
	_, err = v.Verify(edge, "Node.Info")
	assert.Nil(t, err, "edge of window rejected")
}

func TestVerifyMalformed(t *testing.T) {
	v := fixedVerifier(time.Now())

	_, err := v.Verify(Authorisation{}, "Node.Info")
	assert.Equal(t, fault.ErrMissingParameters, err, "empty authorisation")

	_, err = v.Verify(Authorisation{PublicKey: "zz", Signature: "00"}, "Node.Info")
	assert.Equal(t, fault.ErrInvalidPublicKey, err, "bad public key hex")

	_, err = v.Verify(Authorisation{PublicKey: "00", Signature: "zz"}, "Node.Info")
	assert.Equal(t, fault.ErrInvalidSignature, err, "bad signature hex")

	_, err = v.Verify(Authorisation{PublicKey: "0011", Signature: "0011", Timestamp: time.Now().Unix()}, "Node.Info")
	assert.Equal(t, fault.ErrInvalidPublicKey, err, "short public key")
}
