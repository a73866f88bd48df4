// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package selection

// fulfillNft is the Nft analogue of fulfillAlias (spec §4.4, nft fulfiller).
func (is *InputSelection) fulfillNft(r Requirement) ([]InputSigningData, error) {
	for _, in := range is.selectedInputs {
		if in.Output.IsNft() && in.Output.NftIDNonNull(in.OutputID) == r.NftID {
			return nil, nil
		}
	}
	for i, in := range is.availableInputs {
		if in.Output.IsNft() && in.Output.NftIDNonNull(in.OutputID) == r.NftID {
			return []InputSigningData{is.removeAvailableAt(i)}, nil
		}
	}
	return nil, &UnfulfillableRequirementError{Requirement: r}
}
