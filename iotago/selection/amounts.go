// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package selection

import "github.com/holiman/uint256"

// totalOutputsAmount sums the base-token amount across every output queued
// for production so far, including transition successors already appended
// by earlier fulfillers.
func (is *InputSelection) totalOutputsAmount() uint64 {
	var total uint64
	for _, out := range is.outputs {
		total += out.Amount()
	}
	return total
}

func (is *InputSelection) totalSelectedAmount() uint64 {
	var total uint64
	for _, in := range is.selectedInputs {
		total += in.Output.Amount()
	}
	return total
}

// totalSDRObligations sums the storage-deposit-return amounts owed back to
// the return address of every already-selected input that carries one.
// These amounts are spoken for the moment the input is selected; they are
// never part of the spendable balance.
func (is *InputSelection) totalSDRObligations() uint64 {
	var total uint64
	for _, in := range is.selectedInputs {
		if sdr, ok := in.Output.UnlockConditions.StorageDepositReturn(); ok {
			total += sdr.ReturnAmount
		}
	}
	return total
}

// totalRequiredAmount is the base-token total the selection must cover:
// every queued output plus every storage-deposit-return obligation already
// taken on by selected inputs. It grows as the amount fulfiller pulls in
// more SDR-bearing inputs, which is why fulfillAmount recomputes it on
// every iteration instead of once upfront.
func (is *InputSelection) totalRequiredAmount() uint64 {
	return is.totalOutputsAmount() + is.totalSDRObligations()
}

// requiredNativeTokens sums, per token id, the amount every queued output
// demands.
func (is *InputSelection) requiredNativeTokens() map[tokenIDKey]*uint256.Int {
	required := make(map[tokenIDKey]*uint256.Int)
	for _, out := range is.outputs {
		for id, amt := range out.Tokens() {
			addToken(required, tokenIDKey(id), amt)
		}
	}
	return required
}

func (is *InputSelection) selectedNativeTokens() map[tokenIDKey]*uint256.Int {
	selected := make(map[tokenIDKey]*uint256.Int)
	for _, in := range is.selectedInputs {
		for id, amt := range in.Output.Tokens() {
			addToken(selected, tokenIDKey(id), amt)
		}
	}
	return selected
}

// tokenIDKey is the comparable array form of iotago.TokenID, usable as a
// map key without importing iotago into the map's type parameter position
// more than once.
type tokenIDKey [38]byte

func addToken(m map[tokenIDKey]*uint256.Int, id tokenIDKey, delta *uint256.Int) {
	if cur, ok := m[id]; ok {
		cur.Add(cur, delta)
		return
	}
	m[id] = new(uint256.Int).Set(delta)
}

func zeroU256() *uint256.Int {
	return new(uint256.Int)
}
