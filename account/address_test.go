// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"encoding/json"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/multitokend/account"
	"github.com/bitmark-inc/multitokend/fault"
)

func TestAddressHexForm(t *testing.T) {
	a, err := account.AddressFromString("0x00112233445566778899aabbccddeeff00112233")
	assert.Nil(t, err, "hex decode")
	assert.Equal(t, byte(0x00), a[0], "first byte")
	assert.Equal(t, byte(0x33), a[19], "last byte")
	assert.Equal(t, "0x00112233445566778899aabbccddeeff00112233", a.Hex(), "hex round trip")
	assert.False(t, a.IsZero(), "not zero")
}

func TestAddressBase58RoundTrip(t *testing.T) {
	a, err := account.AddressFromString("0x8c1c6a0bd1e7a0e1d2b7f3c5a1e0f9d8c7b6a594")
	assert.Nil(t, err, "hex decode")

	s := a.String()
	b, err := account.AddressFromString(s)
	assert.Nil(t, err, "base58 decode of: %q", s)
	assert.Equal(t, a, b, "base58 round trip")
}

func TestAddressChecksum(t *testing.T) {
	a, _ := account.AddressFromString("0x8c1c6a0bd1e7a0e1d2b7f3c5a1e0f9d8c7b6a594")

	decoded, err := base58.Decode(a.String())
	assert.Nil(t, err, "base58 decode")

	// corrupt the checksum
	decoded[len(decoded)-1] ^= 0xff
	_, err = account.AddressFromString(base58.Encode(decoded))
	assert.Equal(t, fault.ErrChecksumMismatch, err, "corrupt checksum")
}

func TestAddressInvalid(t *testing.T) {
	items := []struct {
		text string
		err  error
	}{
		{"0x0011", fault.ErrInvalidAddressLength},
		{"0xzz112233445566778899aabbccddeeff00112233", fault.ErrCannotDecodeAddress},
		{"", fault.ErrCannotDecodeAddress},
		{"0OIl", fault.ErrCannotDecodeAddress},
		{base58.Encode([]byte{1, 2, 3, 4, 5, 6}), fault.ErrInvalidAddressLength},
	}

	for i, item := range items {
		_, err := account.AddressFromString(item.text)
		assert.Equal(t, item.err, err, "%d: text: %q", i, item.text)
	}
}

func TestZeroAddress(t *testing.T) {
	assert.True(t, account.Zero.IsZero(), "zero is zero")

	a, err := account.AddressFromBytes(make([]byte, account.AddressLength))
	assert.Nil(t, err, "from bytes")
	assert.True(t, a.IsZero(), "all zero bytes")

	z, err := account.AddressFromString(account.Zero.String())
	assert.Nil(t, err, "zero round trip")
	assert.Equal(t, account.Zero, z, "zero round trip")
}

func TestAddressJSON(t *testing.T) {
	a, _ := account.AddressFromString("0x00112233445566778899aabbccddeeff00112233")

	type item struct {
		Owner account.Address `json:"owner"`
	}

	buffer, err := json.Marshal(item{Owner: a})
	assert.Nil(t, err, "marshal")
	assert.Equal(t, `{"owner":"`+a.String()+`"}`, string(buffer), "marshalled text")

	var decoded item
	err = json.Unmarshal(buffer, &decoded)
	assert.Nil(t, err, "unmarshal")
	assert.Equal(t, a, decoded.Owner, "unmarshalled address")

	err = json.Unmarshal([]byte(`{"owner":"0x00112233445566778899aabbccddeeff00112233"}`), &decoded)
	assert.Nil(t, err, "unmarshal hex")
	assert.Equal(t, a, decoded.Owner, "unmarshalled hex address")
}

func TestBytesIsACopy(t *testing.T) {
	a, _ := account.AddressFromString("0x00112233445566778899aabbccddeeff00112233")
	b := a.Bytes()
	b[0] = 0xff
	assert.Equal(t, byte(0x00), a[0], "address must not change")
}
