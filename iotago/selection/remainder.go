// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package selection

import (
	"bytes"

	"github.com/holiman/uint256"
	"golang.org/x/exp/slices"

	"github.com/iotaledger/iota.go/iotago"
)

// buildRemainderAndReturns closes the balance after the fulfillment loop
// finishes: it materializes one basic output per distinct return address
// owed storage deposits by selected inputs, then folds any leftover base-token
// and native-token surplus into a single remainder output paid to the
// remainder address (spec §4.6).
func (is *InputSelection) buildRemainderAndReturns() (*Remainder, []*iotago.Output, error) {
	returns := is.buildStorageDepositReturns()

	spendable := is.totalSelectedAmount() - is.totalSDRObligations()
	required := is.totalOutputsAmount()
	surplusBase := spendable - required

	surplusTokens := is.surplusNativeTokens()

	if surplusBase == 0 && len(surplusTokens) == 0 {
		return nil, returns, nil
	}

	addr, err := is.resolveRemainderAddress()
	if err != nil {
		return nil, nil, err
	}

	tokens := make(iotago.NativeTokens, len(surplusTokens))
	for id, amt := range surplusTokens {
		tokens[iotago.TokenID(id)] = amt
	}

	out := &iotago.Output{
		Kind:             iotago.OutputBasic,
		BaseAmount:       surplusBase,
		NativeTokens:     tokens,
		UnlockConditions: iotago.UnlockConditionSet{iotago.AddressUnlockCondition(addr)},
	}

	minimum := iotago.StorageDepositMinimum(is.protocolParams, out)
	if out.BaseAmount < minimum {
		if len(surplusTokens) > 0 {
			return nil, nil, ErrNoBalanceForNativeTokenRemainder
		}
		return nil, nil, &InvalidStorageDepositAmountError{Amount: out.BaseAmount, Required: minimum}
	}

	return &Remainder{Output: out, Address: addr}, returns, nil
}

// buildStorageDepositReturns materializes one basic output per distinct
// return address owed a storage deposit back, summing obligations to the
// same address into a single output.
func (is *InputSelection) buildStorageDepositReturns() []*iotago.Output {
	totals := make(map[addressKey]uint64)
	addrs := make(map[addressKey]iotago.Address)
	for _, in := range is.selectedInputs {
		sdr, ok := in.Output.UnlockConditions.StorageDepositReturn()
		if !ok {
			continue
		}
		key := keyOf(sdr.ReturnAddress)
		totals[key] += sdr.ReturnAmount
		addrs[key] = sdr.ReturnAddress
	}

	keys := make([]addressKey, 0, len(totals))
	for key := range totals {
		keys = append(keys, key)
	}
	// Map iteration order is randomized; sort by key so repeated selections
	// over the same inputs produce the outputs in the same order.
	slices.SortFunc(keys, func(a, b addressKey) int {
		if a.kind != b.kind {
			return int(a.kind) - int(b.kind)
		}
		return bytes.Compare(a.payload[:], b.payload[:])
	})

	outs := make([]*iotago.Output, 0, len(totals))
	for _, key := range keys {
		outs = append(outs, &iotago.Output{
			Kind:             iotago.OutputBasic,
			BaseAmount:       totals[key],
			UnlockConditions: iotago.UnlockConditionSet{iotago.AddressUnlockCondition(addrs[key])},
		})
	}
	return outs
}

// surplusNativeTokens returns, per token id, the amount selected but not
// demanded by any queued output.
func (is *InputSelection) surplusNativeTokens() map[tokenIDKey]*uint256.Int {
	selected := is.selectedNativeTokens()
	required := is.requiredNativeTokens()

	surplus := make(map[tokenIDKey]*uint256.Int)
	for id, have := range selected {
		need, ok := required[id]
		if !ok {
			need = zeroU256()
		}
		if have.Cmp(need) > 0 {
			diff := new(uint256.Int).Sub(have, need)
			if !diff.IsZero() {
				surplus[id] = diff
			}
		}
	}
	return surplus
}

// resolveRemainderAddress returns the caller-fixed remainder address, or
// the first selected Ed25519-unlocked input's address if none was fixed.
func (is *InputSelection) resolveRemainderAddress() (iotago.Address, error) {
	if is.remainderAddr != nil {
		return *is.remainderAddr, nil
	}
	for _, in := range is.selectedInputs {
		unlocker, _, err := requiredAndUnlockedAddress(in.Output, is.timestamp, in.OutputID, nil)
		if err != nil {
			continue
		}
		if unlocker.Kind == iotago.AddressEd25519 {
			return unlocker, nil
		}
	}
	return iotago.Address{}, ErrNoChangeAddress
}
