// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package selection

import (
	"fmt"

	"github.com/iotaledger/iota.go/iotago"
)

// requiredAndUnlockedAddress is the sole place time- and condition-
// dependent unlockability is decided (spec §4.2). All other components go
// through this function rather than inspecting unlock conditions directly.
//
// aliasTransition is only consulted for alias outputs; callers pass nil
// when the output is not an alias or when the transition kind is not
// known. A nil hint on an alias output is treated as a State transition, so
// the state controller address is returned.
func requiredAndUnlockedAddress(
	out *iotago.Output,
	timestamp uint32,
	outputID iotago.OutputID,
	aliasTransition *AliasTransition,
) (effectiveUnlocker iotago.Address, storageDepositReturnReceiver *iotago.Address, err error) {
	switch out.Kind {
	case iotago.OutputAlias:
		return aliasUnlocker(out, aliasTransition)
	case iotago.OutputFoundry:
		cond, ok := out.UnlockConditions.ImmutableAliasAddress()
		if !ok {
			return iotago.Address{}, nil, fmt.Errorf("%w: foundry output missing ImmutableAliasAddress", iotago.ErrMissingImmutableAliasAddr)
		}
		return cond.Address, nil, nil
	default: // Basic, Nft
		return basicLikeUnlocker(out, timestamp)
	}
}

func aliasUnlocker(out *iotago.Output, aliasTransition *AliasTransition) (iotago.Address, *iotago.Address, error) {
	transition := AliasTransitionState
	if aliasTransition != nil {
		transition = *aliasTransition
	}
	if transition == AliasTransitionGovernance {
		cond, ok := out.UnlockConditions.GovernorAddress()
		if !ok {
			return iotago.Address{}, nil, iotago.ErrMissingAliasControllers
		}
		return cond.Address, nil, nil
	}
	cond, ok := out.UnlockConditions.StateControllerAddress()
	if !ok {
		return iotago.Address{}, nil, iotago.ErrMissingAliasControllers
	}
	return cond.Address, nil, nil
}

func basicLikeUnlocker(out *iotago.Output, timestamp uint32) (iotago.Address, *iotago.Address, error) {
	if tl, ok := out.UnlockConditions.Timelock(); ok && timestamp < tl.UnixTime {
		return iotago.Address{}, nil, errLocked
	}

	effective, ok := out.UnlockConditions.Address()
	if !ok {
		return iotago.Address{}, nil, iotago.ErrMissingAddressCondition
	}
	if exp, ok := out.UnlockConditions.Expiration(); ok && timestamp >= exp.UnixTime {
		effective = exp.ReturnAddress
	}

	var receiver *iotago.Address
	if sdr, ok := out.UnlockConditions.StorageDepositReturn(); ok {
		addr := sdr.ReturnAddress
		receiver = &addr
	}
	return effective, receiver, nil
}

// isTimeLocked reports whether out would currently fail requiredAndUnlockedAddress
// due to an unexpired Timelock, without needing an alias-transition hint.
// Used by the driver's input-pool filter (spec §4.7 / source's filter_inputs).
func isTimeLocked(out *iotago.Output, timestamp uint32) bool {
	return out.UnlockConditions.IsTimelocked(timestamp)
}
