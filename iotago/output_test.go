// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package iotago

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func testEd25519(b byte) Address {
	var h [32]byte
	h[0] = b
	return NewEd25519Address(h)
}

func TestNewBasicOutput_RequiresAddressCondition(t *testing.T) {
	require := require.New(t)

	_, err := NewBasicOutput(1_000_000, nil, nil, nil, nil)
	require.ErrorIs(err, ErrMissingAddressCondition)

	out, err := NewBasicOutput(1_000_000, nil, UnlockConditionSet{AddressUnlockCondition(testEd25519(1))}, nil, nil)
	require.NoError(err)
	require.True(out.IsBasic())
}

func TestNewBasicOutput_RejectsDisallowedCondition(t *testing.T) {
	require := require.New(t)

	_, err := NewBasicOutput(1_000_000, nil, UnlockConditionSet{
		AddressUnlockCondition(testEd25519(1)),
		StateControllerAddressUnlockCondition(testEd25519(2)),
	}, nil, nil)
	require.ErrorIs(err, ErrDisallowedUnlockCondition)
}

func TestNewAliasOutput_RequiresBothControllers(t *testing.T) {
	require := require.New(t)

	_, err := NewAliasOutput(EmptyAliasID, 1_000_000, 0, 0, nil, nil,
		UnlockConditionSet{StateControllerAddressUnlockCondition(testEd25519(1))}, nil, nil)
	require.ErrorIs(err, ErrMissingAliasControllers)

	out, err := NewAliasOutput(EmptyAliasID, 1_000_000, 0, 0, nil, nil,
		UnlockConditionSet{
			StateControllerAddressUnlockCondition(testEd25519(1)),
			GovernorAddressUnlockCondition(testEd25519(1)),
		}, nil, nil)
	require.NoError(err)
	require.True(out.IsAlias())
}

func TestAliasIDNonNull_FreshMintUsesOutputIDHash(t *testing.T) {
	require := require.New(t)

	out, err := NewAliasOutput(EmptyAliasID, 1_000_000, 0, 0, nil, nil,
		UnlockConditionSet{
			StateControllerAddressUnlockCondition(testEd25519(1)),
			GovernorAddressUnlockCondition(testEd25519(1)),
		}, nil, nil)
	require.NoError(err)

	var txID TransactionID
	txID[0] = 0xAB
	id := OutputID{TransactionID: txID, OutputIndex: 0}

	nonNull := out.AliasIDNonNull(id)
	require.Equal(AliasID(id.Hash()), nonNull)

	out.AliasID = AliasID{0x11}
	require.Equal(AliasID{0x11}, out.AliasIDNonNull(id))
}

func TestFoundryID_Deterministic(t *testing.T) {
	require := require.New(t)

	alias := AliasID{0x11}
	id1 := NewFoundryID(alias, 1, SimpleTokenSchemeKind)
	id2 := NewFoundryID(alias, 1, SimpleTokenSchemeKind)
	id3 := NewFoundryID(alias, 2, SimpleTokenSchemeKind)
	require.Equal(id1, id2)
	require.NotEqual(id1, id3)
}

func TestTokenScheme_CirculatingSupply(t *testing.T) {
	require := require.New(t)

	s := TokenScheme{
		Kind:    SimpleTokenSchemeKind,
		Minted:  uint256.NewInt(10),
		Melted:  uint256.NewInt(3),
		Maximum: uint256.NewInt(100),
	}
	require.Equal(uint256.NewInt(7), s.CirculatingSupply())
}
