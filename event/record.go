// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event

import (
	"encoding/json"

	"github.com/bitmark-inc/multitokend/fault"
)

// Record - a stored event with its position in the log
type Record struct {
	Sequence uint64          `json:"sequence,string"`
	Type     string          `json:"type"`
	Data     json.RawMessage `json:"data"`
}

// Pack - encode an event for storage or publishing
func Pack(sequence uint64, e Event) ([]byte, error) {
	data, err := json.Marshal(e)
	if nil != err {
		return nil, err
	}
	return json.Marshal(Record{
		Sequence: sequence,
		Type:     e.Type(),
		Data:     data,
	})
}

// Unpack - decode a stored record
func Unpack(buffer []byte) (*Record, error) {
	r := &Record{}
	err := json.Unmarshal(buffer, r)
	if nil != err {
		return nil, err
	}
	return r, nil
}

// Event - decode the data into its concrete event
func (r *Record) Event() (Event, error) {
	switch r.Type {
	case TransferType:
		e := Transfer{}
		err := json.Unmarshal(r.Data, &e)
		return e, err

	case ApprovalType:
		e := Approval{}
		err := json.Unmarshal(r.Data, &e)
		return e, err

	case OperatorSetType:
		e := OperatorSet{}
		err := json.Unmarshal(r.Data, &e)
		return e, err

	default:
		return nil, fault.ErrInvalidItem
	}
}
