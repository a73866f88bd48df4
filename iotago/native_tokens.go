// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package iotago

import (
	"fmt"
	"sort"

	"github.com/holiman/uint256"
)

// NativeToken pairs a token id with the unsigned 256-bit amount an output
// carries of it.
type NativeToken struct {
	ID     TokenID
	Amount *uint256.Int
}

// NativeTokens is a bag of native tokens with no duplicate ids and no
// zero-amount entries, per the data model invariants.
type NativeTokens map[TokenID]*uint256.Int

// NewNativeTokens validates and builds a NativeTokens bag from a slice,
// rejecting duplicate token ids and zero amounts.
func NewNativeTokens(tokens []NativeToken) (NativeTokens, error) {
	set := make(NativeTokens, len(tokens))
	for _, t := range tokens {
		if t.Amount == nil || t.Amount.IsZero() {
			return nil, fmt.Errorf("%w: token %s", ErrZeroNativeTokenAmount, t.ID)
		}
		if _, exists := set[t.ID]; exists {
			return nil, fmt.Errorf("%w: token %s", ErrDuplicateNativeToken, t.ID)
		}
		set[t.ID] = new(uint256.Int).Set(t.Amount)
	}
	return set, nil
}

// Clone returns a deep copy so callers can mutate the result without
// aliasing the receiver's amounts.
func (n NativeTokens) Clone() NativeTokens {
	out := make(NativeTokens, len(n))
	for id, amt := range n {
		out[id] = new(uint256.Int).Set(amt)
	}
	return out
}

// SortedIDs returns the bag's token ids in ascending byte order, for
// deterministic iteration.
func (n NativeTokens) SortedIDs() []TokenID {
	ids := make([]TokenID, 0, len(n))
	for id := range n {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return string(ids[i][:]) < string(ids[j][:])
	})
	return ids
}

// Add increases the bag's amount for id by delta, creating the entry if
// absent.
func (n NativeTokens) Add(id TokenID, delta *uint256.Int) {
	cur, ok := n[id]
	if !ok {
		n[id] = new(uint256.Int).Set(delta)
		return
	}
	cur.Add(cur, delta)
}
