// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package selection

// fulfillFoundry matches an input's foundry id (serial number, controlling
// alias, and token scheme kind together) against the requirement, and
// additionally enqueues the foundry's controlling alias as a requirement of
// its own, since a foundry can never be unlocked without its alias being
// present too (spec §4.4, foundry fulfiller).
func (is *InputSelection) fulfillFoundry(r Requirement) ([]InputSigningData, error) {
	for _, in := range is.selectedInputs {
		if in.Output.IsFoundry() && in.Output.FoundryID() == r.FoundryID {
			is.requirements.push(AliasRequirement(in.Output.ControllingAlias, AliasTransitionState))
			return nil, nil
		}
	}
	for i, in := range is.availableInputs {
		if in.Output.IsFoundry() && in.Output.FoundryID() == r.FoundryID {
			match := is.removeAvailableAt(i)
			is.requirements.push(AliasRequirement(match.Output.ControllingAlias, AliasTransitionState))
			return []InputSigningData{match}, nil
		}
	}
	return nil, &UnfulfillableRequirementError{Requirement: r}
}
