// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package selection

// fulfillRequirement dispatches one popped requirement to its fulfiller
// (spec §4.4). The returned inputs still need is.selectInput to be applied
// to them by the caller; a fulfiller never selects on the driver's behalf,
// so that selectInput's side effects (transition synthesis, induced
// requirements) run uniformly regardless of which fulfiller produced the
// input.
func (is *InputSelection) fulfillRequirement(r Requirement) ([]InputSigningData, error) {
	switch r.Kind {
	case RequirementAmount:
		return is.fulfillAmount()
	case RequirementNativeTokens:
		return is.fulfillNativeTokens()
	case RequirementAlias:
		return is.fulfillAlias(r)
	case RequirementFoundry:
		return is.fulfillFoundry(r)
	case RequirementNft:
		return is.fulfillNft(r)
	case RequirementSender:
		return is.fulfillAddress(r.Address)
	case RequirementIssuer:
		return is.fulfillIssuer(r.Address)
	default:
		return nil, &UnfulfillableRequirementError{Requirement: r}
	}
}
