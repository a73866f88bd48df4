// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package selection

import "github.com/iotaledger/iota.go/iotago"

// fulfillAddress is shared by the Sender and Issuer fulfillers: both need
// an input whose effective unlocker equals the feature's address already
// present in the selection, or pick one from the available pool (spec
// §4.4, sender/issuer fulfillers).
func (is *InputSelection) fulfillAddress(addr iotago.Address) ([]InputSigningData, error) {
	for _, in := range is.selectedInputs {
		if is.unlockerEquals(in, addr) {
			return nil, nil
		}
	}
	for i, in := range is.availableInputs {
		if is.unlockerEquals(in, addr) {
			return []InputSigningData{is.removeAvailableAt(i)}, nil
		}
	}
	return nil, &UnfulfillableRequirementError{Requirement: SenderRequirement(addr)}
}

func (is *InputSelection) unlockerEquals(in InputSigningData, addr iotago.Address) bool {
	var hint *AliasTransition
	if in.Output.IsAlias() {
		t := AliasTransitionState
		hint = &t
	}
	unlocker, _, err := requiredAndUnlockedAddress(in.Output, is.timestamp, in.OutputID, hint)
	if err != nil {
		return false
	}
	return unlocker.Equal(addr)
}
