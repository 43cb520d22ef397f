// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/multitokend/account"
	"github.com/bitmark-inc/multitokend/event"
	"github.com/bitmark-inc/multitokend/fault"
	"github.com/bitmark-inc/multitokend/storage"
)

// metadata field keys
var (
	nameKey     = []byte("name")
	symbolKey   = []byte("symbol")
	decimalsKey = []byte("decimals")
	ownerKey    = []byte("owner")
)

// Metadata - descriptive fields fixed when the ledger is first created
type Metadata struct {
	Name     string          `json:"name"`
	Symbol   string          `json:"symbol"`
	Decimals uint8           `json:"decimals"`
	Owner    account.Address `json:"owner"`
}

// SetupMetadata - store metadata into an empty ledger or check it matches
func (l *Engine) SetupMetadata(m Metadata) error {
	if l.pools.Metadata.Has(nameKey) {
		stored := l.Metadata()
		if stored != m {
			l.log.Errorf("metadata: stored: %+v  configured: %+v", stored, m)
			return fault.ErrMetadataMismatch
		}
		return nil
	}

	l.log.Infof("metadata: initialise: %+v", m)
	return l.execute("metadata", func(trx storage.Transaction, _ event.Emitter) error {
		trx.Put(l.pools.Metadata, nameKey, []byte(m.Name))
		trx.Put(l.pools.Metadata, symbolKey, []byte(m.Symbol))
		trx.Put(l.pools.Metadata, decimalsKey, []byte{m.Decimals})
		trx.Put(l.pools.Metadata, ownerKey, m.Owner.Bytes())
		return nil
	})
}

// Metadata - the stored metadata
func (l *Engine) Metadata() Metadata {
	l.RLock()
	defer l.RUnlock()

	m := Metadata{
		Name:   string(l.pools.Metadata.Get(nameKey)),
		Symbol: string(l.pools.Metadata.Get(symbolKey)),
	}
	if d := l.pools.Metadata.Get(decimalsKey); 1 == len(d) {
		m.Decimals = d[0]
	}
	if owner, err := account.AddressFromBytes(l.pools.Metadata.Get(ownerKey)); nil == err {
		m.Owner = owner
	}
	return m
}
