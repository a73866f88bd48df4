// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package selection

import (
	"github.com/iotaledger/iota.go/iotago"
)

// initRequirements seeds the requirement queue before the fulfillment loop
// starts: a base-token and a native-token requirement, anything implied by
// the requested outputs, and anything implied by the burn set. It also
// resolves the caller's forced required-inputs first (spec §4.3).
func (is *InputSelection) initRequirements() error {
	is.requirements.push(AmountRequirement())
	is.requirements.push(NativeTokensRequirement())

	if err := is.resolveRequiredInputs(); err != nil {
		return err
	}

	is.outputsRequirements()
	is.burnRequirements()

	return nil
}

func (is *InputSelection) resolveRequiredInputs() error {
	if is.requiredInputs == nil {
		return nil
	}
	for id := range is.requiredInputs {
		if is.forbiddenInputs[id] {
			return &RequiredInputIsForbiddenError{OutputID: id}
		}

		index := -1
		for i, in := range is.availableInputs {
			if in.OutputID == id {
				index = i
				break
			}
		}
		if index == -1 {
			return &RequiredInputIsNotAvailableError{OutputID: id}
		}

		in := is.removeAvailableAt(index)
		if err := is.selectInput(in); err != nil {
			return err
		}
	}
	return nil
}

// hasChainInput reports whether any available or already-selected input
// carries the given chain id.
func (is *InputSelection) hasChainInput(chainID [38]byte) bool {
	for _, in := range is.selectedInputs {
		if id, ok := in.Output.ChainID(in.OutputID); ok && id == chainID {
			return true
		}
	}
	for _, in := range is.availableInputs {
		if id, ok := in.Output.ChainID(in.OutputID); ok && id == chainID {
			return true
		}
	}
	return false
}

// outputsRequirements walks the requested outputs, collecting: every
// non-null chain id referenced but not yet present in the input set, every
// sender/issuer feature address, and every foundry's controlling alias.
func (is *InputSelection) outputsRequirements() {
	for _, out := range is.outputs {
		switch out.Kind {
		case iotago.OutputAlias:
			if !out.AliasID.IsEmpty() {
				var id [38]byte
				copy(id[:32], out.AliasID[:])
				if !is.hasChainInput(id) {
					is.requirements.push(AliasRequirement(out.AliasID, AliasTransitionState))
				}
			}
		case iotago.OutputNft:
			if !out.NftID.IsEmpty() {
				var id [38]byte
				copy(id[:32], out.NftID[:])
				if !is.hasChainInput(id) {
					is.requirements.push(NftRequirement(out.NftID))
				}
			}
		case iotago.OutputFoundry:
			is.requirements.push(AliasRequirement(out.ControllingAlias, AliasTransitionState))
			foundryID := out.FoundryID()
			if is.hasChainInput([38]byte(foundryID)) {
				is.requirements.push(FoundryRequirement(foundryID))
			}
		}

		if sender, ok := out.Features.Sender(); ok {
			is.requirements.push(SenderRequirement(sender.Address))
		}
		if issuer, ok := out.ImmutableFeatures.Issuer(); ok {
			is.requirements.push(IssuerRequirement(issuer.Address))
		}
	}
}

func (is *InputSelection) burnRequirements() {
	if is.burn.IsEmpty() {
		return
	}
	for id := range is.burn.Aliases {
		is.requirements.push(AliasRequirement(id, AliasTransitionState))
	}
	for id := range is.burn.Nfts {
		is.requirements.push(NftRequirement(id))
	}
	for id := range is.burn.Foundries {
		is.requirements.push(FoundryRequirement(id))
	}
}
