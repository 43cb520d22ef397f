// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/multitokend/fault"
)

// SeedLength - bytes in a private key seed
const SeedLength = ed25519.SeedSize

// PrivateKey - the signing key for an address
type PrivateKey struct {
	key ed25519.PrivateKey
}

// NewPrivateKey - create a random private key
func NewPrivateKey() (*PrivateKey, error) {
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, err
	}
	return &PrivateKey{key: key}, nil
}

// PrivateKeyFromSeed - regenerate a private key from its 32 byte seed
func PrivateKeyFromSeed(seed []byte) (*PrivateKey, error) {
	if SeedLength != len(seed) {
		return nil, fault.ErrInvalidSeedLength
	}
	return &PrivateKey{key: ed25519.NewKeyFromSeed(seed)}, nil
}

// PrivateKeyFromHex - decode a hex seed
func PrivateKeyFromHex(s string) (*PrivateKey, error) {
	seed, err := hex.DecodeString(s)
	if nil != err {
		return nil, fault.ErrInvalidPrivateKey
	}
	return PrivateKeyFromSeed(seed)
}

// Seed - the 32 byte seed
func (k *PrivateKey) Seed() []byte {
	return k.key.Seed()
}

// PublicKey - the ed25519 public key
func (k *PrivateKey) PublicKey() []byte {
	publicKey := make([]byte, ed25519.PublicKeySize)
	copy(publicKey, k.key.Public().(ed25519.PublicKey))
	return publicKey
}

// Address - the address this key controls
func (k *PrivateKey) Address() Address {
	return AddressFromPublicKey(k.PublicKey())
}

// Sign - sign a message
func (k *PrivateKey) Sign(message []byte) []byte {
	return ed25519.Sign(k.key, message)
}

// CheckSignature - verify that a public key signed a message
func CheckSignature(publicKey []byte, message []byte, signature []byte) error {
	if ed25519.PublicKeySize != len(publicKey) {
		return fault.ErrInvalidPublicKey
	}
	if ed25519.SignatureSize != len(signature) {
		return fault.ErrInvalidSignature
	}
	if !ed25519.Verify(publicKey, message, signature) {
		return fault.ErrInvalidSignature
	}
	return nil
}
