// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package selection

// fulfillAlias finds the input whose non-null alias id matches the
// requirement. Already-selected matches satisfy the requirement trivially;
// otherwise the matching available input is returned for selection. A miss
// is unrecoverable, since alias ids are unique per chain (spec §4.4,
// alias fulfiller).
func (is *InputSelection) fulfillAlias(r Requirement) ([]InputSigningData, error) {
	for _, in := range is.selectedInputs {
		if in.Output.IsAlias() && in.Output.AliasIDNonNull(in.OutputID) == r.AliasID {
			return nil, nil
		}
	}
	for i, in := range is.availableInputs {
		if in.Output.IsAlias() && in.Output.AliasIDNonNull(in.OutputID) == r.AliasID {
			return []InputSigningData{is.removeAvailableAt(i)}, nil
		}
	}
	return nil, &UnfulfillableRequirementError{Requirement: r}
}
