// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package iotago

import (
	"fmt"

	"github.com/holiman/uint256"
)

// OutputKind discriminates the four output variants the ledger supports.
type OutputKind uint8

const (
	OutputBasic OutputKind = iota
	OutputNft
	OutputAlias
	OutputFoundry
)

func (k OutputKind) String() string {
	switch k {
	case OutputBasic:
		return "Basic"
	case OutputNft:
		return "Nft"
	case OutputAlias:
		return "Alias"
	case OutputFoundry:
		return "Foundry"
	default:
		return fmt.Sprintf("OutputKind(%d)", uint8(k))
	}
}

// TokenScheme describes a foundry's minted/melted/maximum supply. Only the
// simple scheme exists in the source; the Kind field keeps the door open
// without requiring every caller to branch on it today.
type TokenScheme struct {
	Kind    TokenSchemeKind
	Minted  *uint256.Int
	Melted  *uint256.Int
	Maximum *uint256.Int
}

// CirculatingSupply returns Minted - Melted.
func (s TokenScheme) CirculatingSupply() *uint256.Int {
	return new(uint256.Int).Sub(s.Minted, s.Melted)
}

// Output is a tagged union over Basic, Nft, Alias, and Foundry outputs.
// Only the fields relevant to Kind are meaningful; constructors enforce the
// per-variant unlock-condition whitelist and the mandatory conditions of
// each kind. Features and immutable features are stored as given and are
// not checked against any whitelist.
type Output struct {
	Kind OutputKind

	BaseAmount        uint64
	NativeTokens      NativeTokens
	UnlockConditions  UnlockConditionSet
	Features          FeatureSet
	ImmutableFeatures FeatureSet

	// Nft
	NftID NftID

	// Alias
	AliasID        AliasID
	StateIndex     uint32
	FoundryCounter uint32
	StateMetadata  []byte

	// Foundry
	SerialNumber      uint32
	TokenScheme       TokenScheme
	ControllingAlias  AliasID // the immutable alias address, cached for quick access
}

// NewBasicOutput validates and constructs a Basic output.
func NewBasicOutput(amount uint64, tokens NativeTokens, conditions UnlockConditionSet, features, immutableFeatures FeatureSet) (*Output, error) {
	out := &Output{
		Kind:              OutputBasic,
		BaseAmount:        amount,
		NativeTokens:      tokens,
		UnlockConditions:  conditions,
		Features:          features,
		ImmutableFeatures: immutableFeatures,
	}
	if err := checkWhitelist(conditions, basicWhitelist); err != nil {
		return nil, err
	}
	if _, ok := conditions.Address(); !ok {
		return nil, ErrMissingAddressCondition
	}
	return out, nil
}

// NewNftOutput validates and constructs an Nft output.
func NewNftOutput(id NftID, amount uint64, tokens NativeTokens, conditions UnlockConditionSet, features, immutableFeatures FeatureSet) (*Output, error) {
	out := &Output{
		Kind:              OutputNft,
		NftID:             id,
		BaseAmount:        amount,
		NativeTokens:      tokens,
		UnlockConditions:  conditions,
		Features:          features,
		ImmutableFeatures: immutableFeatures,
	}
	if err := checkWhitelist(conditions, nftWhitelist); err != nil {
		return nil, err
	}
	if _, ok := conditions.Address(); !ok {
		return nil, ErrMissingAddressCondition
	}
	return out, nil
}

// NewAliasOutput validates and constructs an Alias output.
func NewAliasOutput(id AliasID, amount uint64, stateIndex, foundryCounter uint32, stateMetadata []byte, tokens NativeTokens, conditions UnlockConditionSet, features, immutableFeatures FeatureSet) (*Output, error) {
	out := &Output{
		Kind:              OutputAlias,
		AliasID:           id,
		BaseAmount:        amount,
		StateIndex:        stateIndex,
		FoundryCounter:    foundryCounter,
		StateMetadata:     stateMetadata,
		NativeTokens:      tokens,
		UnlockConditions:  conditions,
		Features:          features,
		ImmutableFeatures: immutableFeatures,
	}
	if err := checkWhitelist(conditions, aliasWhitelist); err != nil {
		return nil, err
	}
	if _, ok := conditions.StateControllerAddress(); !ok {
		return nil, ErrMissingAliasControllers
	}
	if _, ok := conditions.GovernorAddress(); !ok {
		return nil, ErrMissingAliasControllers
	}
	return out, nil
}

// NewFoundryOutput validates and constructs a Foundry output. The
// controlling alias is both recorded as ControllingAlias and wrapped in the
// mandatory ImmutableAliasAddress unlock condition.
func NewFoundryOutput(controllingAlias AliasID, serialNumber uint32, scheme TokenScheme, amount uint64, tokens NativeTokens, features, immutableFeatures FeatureSet) (*Output, error) {
	conditions := UnlockConditionSet{ImmutableAliasAddressUnlockCondition(NewAliasAddress(controllingAlias))}
	out := &Output{
		Kind:              OutputFoundry,
		ControllingAlias:  controllingAlias,
		SerialNumber:      serialNumber,
		TokenScheme:       scheme,
		BaseAmount:        amount,
		NativeTokens:      tokens,
		UnlockConditions:  conditions,
		Features:          features,
		ImmutableFeatures: immutableFeatures,
	}
	if err := checkWhitelist(conditions, foundryWhitelist); err != nil {
		return nil, err
	}
	return out, nil
}

func checkWhitelist(conditions UnlockConditionSet, whitelist map[UnlockConditionKind]bool) error {
	for _, c := range conditions {
		if !whitelist[c.Kind] {
			return fmt.Errorf("%w: %s", ErrDisallowedUnlockCondition, c.Kind)
		}
	}
	return nil
}

func (o *Output) IsBasic() bool   { return o.Kind == OutputBasic }
func (o *Output) IsNft() bool     { return o.Kind == OutputNft }
func (o *Output) IsAlias() bool   { return o.Kind == OutputAlias }
func (o *Output) IsFoundry() bool { return o.Kind == OutputFoundry }

// Amount returns the output's base token amount.
func (o *Output) Amount() uint64 { return o.BaseAmount }

// Tokens returns the output's native-token bag (possibly nil).
func (o *Output) Tokens() NativeTokens { return o.NativeTokens }

// FoundryID computes this foundry's 38-byte chain id. Only valid when
// Kind == OutputFoundry.
func (o *Output) FoundryID() FoundryID {
	return NewFoundryID(o.ControllingAlias, o.SerialNumber, o.TokenScheme.Kind)
}

// ChainID returns the output's chain identity (non-null form) if it has
// one, and whether the output carries one at all. Basic outputs never do.
func (o *Output) ChainID(id OutputID) (chainID [38]byte, ok bool) {
	switch o.Kind {
	case OutputAlias:
		var out [38]byte
		copy(out[:32], o.AliasIDNonNull(id)[:])
		return out, true
	case OutputNft:
		var out [38]byte
		copy(out[:32], o.NftIDNonNull(id)[:])
		return out, true
	case OutputFoundry:
		return [38]byte(o.FoundryID()), true
	default:
		return [38]byte{}, false
	}
}

// AliasIDNonNull returns the stored alias id if non-zero, otherwise the
// hash of the creating output id (i.e. this output is a fresh mint).
// Only valid when Kind == OutputAlias.
func (o *Output) AliasIDNonNull(id OutputID) AliasID {
	if !o.AliasID.IsEmpty() {
		return o.AliasID
	}
	return AliasID(id.Hash())
}

// NftIDNonNull is the Nft analogue of AliasIDNonNull.
func (o *Output) NftIDNonNull(id OutputID) NftID {
	if !o.NftID.IsEmpty() {
		return o.NftID
	}
	return NftID(id.Hash())
}
