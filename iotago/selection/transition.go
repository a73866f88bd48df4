// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package selection

import "github.com/iotaledger/iota.go/iotago"

// transitionInput synthesizes the successor output a selected chain input
// needs, unless the caller already queued one explicitly. Basic outputs
// never transition. Each chain id transitions at most once per Select call
// (spec §4.5).
func (is *InputSelection) transitionInput(in InputSigningData) (*iotago.Output, error) {
	chainID, ok := in.Output.ChainID(in.OutputID)
	if !ok {
		return nil, nil
	}
	if is.automaticallyTransitioned[chainID] {
		return nil, nil
	}
	if is.hasExplicitSuccessor(in) {
		is.automaticallyTransitioned[chainID] = true
		return nil, nil
	}

	var successor *iotago.Output
	var err error
	switch in.Output.Kind {
	case iotago.OutputAlias:
		successor, err = is.transitionAlias(in)
	case iotago.OutputNft:
		successor, err = is.transitionNft(in)
	case iotago.OutputFoundry:
		successor, err = is.transitionFoundry(in)
	}
	if err != nil {
		return nil, err
	}
	if successor != nil {
		is.automaticallyTransitioned[chainID] = true
	}
	return successor, nil
}

// hasExplicitSuccessor reports whether the caller already queued an output
// carrying this exact chain id among is.outputs.
func (is *InputSelection) hasExplicitSuccessor(in InputSigningData) bool {
	switch in.Output.Kind {
	case iotago.OutputAlias:
		aliasID := in.Output.AliasIDNonNull(in.OutputID)
		for _, out := range is.outputs {
			if out.IsAlias() && out.AliasID == aliasID {
				return true
			}
		}
	case iotago.OutputNft:
		nftID := in.Output.NftIDNonNull(in.OutputID)
		for _, out := range is.outputs {
			if out.IsNft() && out.NftID == nftID {
				return true
			}
		}
	case iotago.OutputFoundry:
		for _, out := range is.outputs {
			if out.IsFoundry() && out.FoundryID() == in.Output.FoundryID() {
				return true
			}
		}
	}
	return false
}

// transitionAlias produces a State-transition successor: state index
// advanced by one, state metadata and controllers unchanged, foundry counter
// raised to the highest serial number among queued foundries of this alias,
// and the input's balance and tokens carried forward. If burned, no
// successor is produced.
func (is *InputSelection) transitionAlias(in InputSigningData) (*iotago.Output, error) {
	aliasID := in.Output.AliasIDNonNull(in.OutputID)
	if is.burn != nil && is.burn.Aliases[aliasID] {
		return nil, nil
	}

	stateCtrl, _ := in.Output.UnlockConditions.StateControllerAddress()
	governor, _ := in.Output.UnlockConditions.GovernorAddress()

	foundryCounter := in.Output.FoundryCounter
	for _, out := range is.outputs {
		if !out.IsFoundry() || out.ControllingAlias != aliasID {
			continue
		}
		if out.SerialNumber > foundryCounter {
			foundryCounter = out.SerialNumber
		}
	}

	successor := &iotago.Output{
		Kind:              iotago.OutputAlias,
		AliasID:           aliasID,
		BaseAmount:        in.Output.Amount(),
		NativeTokens:      in.Output.Tokens().Clone(),
		StateIndex:        in.Output.StateIndex + 1,
		FoundryCounter:    foundryCounter,
		StateMetadata:     in.Output.StateMetadata,
		UnlockConditions:  iotago.UnlockConditionSet{stateCtrl, governor},
		Features:          in.Output.Features,
		ImmutableFeatures: in.Output.ImmutableFeatures,
	}
	return successor, nil
}

// transitionNft produces an unchanged successor carrying balance and
// tokens forward, or none if the caller is burning this NFT.
func (is *InputSelection) transitionNft(in InputSigningData) (*iotago.Output, error) {
	nftID := in.Output.NftIDNonNull(in.OutputID)
	if is.burn != nil && is.burn.Nfts[nftID] {
		return nil, nil
	}

	successor := &iotago.Output{
		Kind:              iotago.OutputNft,
		NftID:             nftID,
		BaseAmount:        in.Output.Amount(),
		NativeTokens:      in.Output.Tokens().Clone(),
		UnlockConditions:  in.Output.UnlockConditions,
		Features:          in.Output.Features,
		ImmutableFeatures: in.Output.ImmutableFeatures,
	}
	return successor, nil
}

// transitionFoundry produces an unchanged successor; mint/melt deltas are
// applied by the caller explicitly queuing a differently-scoped Foundry
// output rather than relying on automatic transition, so this is only the
// passthrough path for foundries the caller never mentioned.
func (is *InputSelection) transitionFoundry(in InputSigningData) (*iotago.Output, error) {
	foundryID := in.Output.FoundryID()
	if is.burn != nil && is.burn.Foundries[foundryID] {
		return nil, nil
	}

	successor := &iotago.Output{
		Kind:              iotago.OutputFoundry,
		ControllingAlias:  in.Output.ControllingAlias,
		SerialNumber:      in.Output.SerialNumber,
		TokenScheme:       in.Output.TokenScheme,
		BaseAmount:        in.Output.Amount(),
		NativeTokens:      in.Output.Tokens().Clone(),
		UnlockConditions:  in.Output.UnlockConditions,
		Features:          in.Output.Features,
		ImmutableFeatures: in.Output.ImmutableFeatures,
	}
	return successor, nil
}
