// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/multitokend/fault"
	"github.com/bitmark-inc/multitokend/storage"
)

// globals
type ledgerData struct {
	sync.RWMutex // to allow locking

	log *logger.L

	ledger *Engine

	// set once during initialise
	initialised bool
}

// global data
var globalData ledgerData

// Initialise - create the ledger over the storage pools
//
// storage must already be initialised
func Initialise(metadata Metadata, notifier Notifier) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("ledger")
	globalData.log.Info("starting…")

	l := New(globalData.log, PoolHandles(), storage.NewDBTransaction, notifier)

	err := l.SetupMetadata(metadata)
	if nil != err {
		globalData.log.Errorf("metadata error: %s", err)
		return err
	}

	globalData.ledger = l
	globalData.initialised = true

	return nil
}

// Finalise - release the ledger
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.ledger = nil
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// Get - the ledger created by Initialise
func Get() Ledger {
	globalData.RLock()
	defer globalData.RUnlock()
	if nil == globalData.ledger {
		return nil
	}
	return globalData.ledger
}

// PoolHandles - the storage pools used by the ledger
func PoolHandles() Handles {
	return Handles{
		Balances:    storage.Pool.Balances,
		Allowances:  storage.Pool.Allowances,
		Operators:   storage.Pool.Operators,
		Minted:      storage.Pool.Minted,
		Burned:      storage.Pool.Burned,
		Outstanding: storage.Pool.Outstanding,
		Metadata:    storage.Pool.Metadata,
		Events:      storage.Pool.Events,
	}
}
