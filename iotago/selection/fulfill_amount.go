// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package selection

import "github.com/iotaledger/iota.go/iotago"

// fulfillAmount picks additional inputs until the selected base-token total
// covers every queued output plus the storage-deposit minimum of the
// remainder that selection will eventually have to produce, preferring
// inputs that carry no native tokens so later native-token fulfillment
// isn't forced into unwanted token obligations (spec §4.4, base_token
// fulfiller: "until in_sum ≥ out_sum + storage_deposit_of_potential_remainder").
// An exact match (no remainder at all) is also accepted.
func (is *InputSelection) fulfillAmount() ([]InputSigningData, error) {
	minRemainder := is.potentialRemainderMinimum()

	var picked []InputSigningData
	for {
		total := is.totalSelectedAmount()
		required := is.totalRequiredAmount()
		if total == required || (total > required && total-required >= minRemainder) {
			break
		}
		if len(is.availableInputs) == 0 {
			return nil, &NotEnoughBalanceError{Found: total, Required: required}
		}
		idx := is.pickAmountInputIndex()
		in := is.removeAvailableAt(idx)
		picked = append(picked, in)
		// Picking an input with its own SDR obligation can raise the
		// requirement, so totalRequiredAmount is re-evaluated next
		// iteration rather than compared against a snapshot.
		is.selectedInputs = append(is.selectedInputs, in)
	}
	// selectedInputs was provisionally grown above to make
	// totalRequiredAmount see SDR obligations as they're picked; undo that
	// here since the caller (selectInput, via Select's loop) is responsible
	// for actually committing each picked input.
	is.selectedInputs = is.selectedInputs[:len(is.selectedInputs)-len(picked)]
	return picked, nil
}

// potentialRemainderMinimum estimates the storage-deposit minimum of the
// remainder output selection will produce if there is a base-token
// surplus, so fulfillAmount can target a surplus that actually clears it
// instead of leaving dust fulfillAmount considered "enough". Native-token
// fulfillment (C4) always runs before the amount fulfiller (spec §4.3's
// init order), so the native-token surplus it will carry is already known.
func (is *InputSelection) potentialRemainderMinimum() uint64 {
	surplus := is.surplusNativeTokens()
	tokens := make(iotago.NativeTokens, len(surplus))
	for id, amt := range surplus {
		tokens[iotago.TokenID(id)] = amt
	}
	template := &iotago.Output{
		Kind:             iotago.OutputBasic,
		NativeTokens:     tokens,
		UnlockConditions: iotago.UnlockConditionSet{iotago.AddressUnlockCondition(iotago.Address{Kind: iotago.AddressEd25519})},
	}
	return iotago.StorageDepositMinimum(is.protocolParams, template)
}

// pickAmountInputIndex prefers the available input with the largest amount
// among those carrying no native tokens, falling back to the largest
// amount overall. Preferring large inputs keeps the selected-input count
// low; preferring token-free inputs avoids pulling in obligations the
// NativeTokens requirement would otherwise have to cover.
func (is *InputSelection) pickAmountInputIndex() int {
	best := -1
	bestTokenFree := false
	for i, in := range is.availableInputs {
		tokenFree := len(in.Output.Tokens()) == 0
		if best == -1 {
			best, bestTokenFree = i, tokenFree
			continue
		}
		if tokenFree && !bestTokenFree {
			best, bestTokenFree = i, tokenFree
			continue
		}
		if tokenFree == bestTokenFree && in.Output.Amount() > is.availableInputs[best].Output.Amount() {
			best, bestTokenFree = i, tokenFree
		}
	}
	return best
}
