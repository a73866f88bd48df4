// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package selection

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/iota.go/iotago"
)

func TestSelect_SimpleSend(t *testing.T) {
	require := require.New(t)

	sender := testEd25519(1)
	receiver := testEd25519(2)

	available := []InputSigningData{
		{Output: basicOutput(2_000_000, sender), OutputID: testOutputID(1, 0)},
		{Output: basicOutput(500_000, sender), OutputID: testOutputID(1, 1)},
	}
	target := basicOutput(1_750_000, receiver)

	selected, err := New(available, []*iotago.Output{target}, []iotago.Address{sender}, testParams()).
		Timestamp(1_700_000_000).
		Select()
	require.NoError(err)
	require.Len(selected.Inputs, 1)
	require.Equal(uint64(2_000_000), selected.Inputs[0].Output.Amount())

	require.NotNil(selected.Remainder)
	require.Equal(uint64(250_000), selected.Remainder.Output.Amount())
	require.True(selected.Remainder.Address.Equal(sender))
}

func TestSelect_NotEnoughBalance(t *testing.T) {
	require := require.New(t)

	sender := testEd25519(1)
	receiver := testEd25519(2)

	available := []InputSigningData{
		{Output: basicOutput(100, sender), OutputID: testOutputID(1, 0)},
	}
	target := basicOutput(1_000, receiver)

	_, err := New(available, []*iotago.Output{target}, []iotago.Address{sender}, testParams()).
		Timestamp(1_700_000_000).
		Select()
	require.Error(err)

	var balErr *NotEnoughBalanceError
	require.ErrorAs(err, &balErr)
	require.Equal(uint64(100), balErr.Found)
	require.Equal(uint64(1_000), balErr.Required)
}

func TestSelect_MintAlias(t *testing.T) {
	require := require.New(t)

	sender := testEd25519(1)

	available := []InputSigningData{
		{Output: basicOutput(2_000_000, sender), OutputID: testOutputID(1, 0)},
	}

	aliasOut, err := iotago.NewAliasOutput(
		iotago.EmptyAliasID, 900_000, 0, 0, nil, nil,
		iotago.UnlockConditionSet{
			iotago.StateControllerAddressUnlockCondition(sender),
			iotago.GovernorAddressUnlockCondition(sender),
		}, nil, nil,
	)
	require.NoError(err)

	selected, err := New(available, []*iotago.Output{aliasOut}, []iotago.Address{sender}, testParams()).
		Timestamp(1_700_000_000).
		Select()
	require.NoError(err)
	require.Len(selected.Inputs, 1)
	require.NotNil(selected.Remainder)
	require.Equal(uint64(1_100_000), selected.Remainder.Output.Amount())
}

func TestSelect_MintFoundryTransitionsControllingAlias(t *testing.T) {
	require := require.New(t)

	sender := testEd25519(1)
	aliasID := iotago.AliasID{0xAA}

	aliasIn, err := iotago.NewAliasOutput(
		aliasID, 1_000_000, 5, 2, nil, nil,
		iotago.UnlockConditionSet{
			iotago.StateControllerAddressUnlockCondition(sender),
			iotago.GovernorAddressUnlockCondition(sender),
		}, nil, nil,
	)
	require.NoError(err)

	available := []InputSigningData{
		{Output: aliasIn, OutputID: testOutputID(1, 0)},
		{Output: basicOutput(1_000_000, sender), OutputID: testOutputID(2, 0)},
	}

	foundryOut, err := iotago.NewFoundryOutput(
		aliasID, 3,
		iotago.TokenScheme{Kind: iotago.SimpleTokenSchemeKind, Minted: uint256.NewInt(10), Melted: uint256.NewInt(0), Maximum: uint256.NewInt(1000)},
		300_000, nil, nil, nil,
	)
	require.NoError(err)

	selected, err := New(available, []*iotago.Output{foundryOut}, []iotago.Address{sender}, testParams()).
		Timestamp(1_700_000_000).
		Select()
	require.NoError(err)
	require.Len(selected.Inputs, 2)

	var aliasSuccessor *iotago.Output
	for _, out := range selected.Outputs {
		if out.IsAlias() {
			aliasSuccessor = out
		}
	}
	require.NotNil(aliasSuccessor)
	require.Equal(uint32(6), aliasSuccessor.StateIndex)
	require.Equal(uint64(1_000_000), aliasSuccessor.Amount())

	// The successor must carry the same controllers forward unchanged, and
	// its foundry counter must advance to the new foundry's serial number.
	if diff := cmp.Diff(aliasIn.UnlockConditions, aliasSuccessor.UnlockConditions); diff != "" {
		t.Fatalf("alias successor unlock conditions changed unexpectedly (-want +got):\n%s", diff)
	}
	require.Equal(uint32(3), aliasSuccessor.FoundryCounter)

	require.NotNil(selected.Remainder)
	require.Equal(uint64(700_000), selected.Remainder.Output.Amount())
}

func TestSelect_NotEnoughNativeTokens(t *testing.T) {
	require := require.New(t)

	sender := testEd25519(1)
	receiver := testEd25519(2)

	var tokenID iotago.TokenID
	tokenID[0] = 0x01

	in := basicOutput(1_000_000, sender)
	in.NativeTokens = iotago.NativeTokens{tokenID: uint256.NewInt(300)}

	available := []InputSigningData{
		{Output: in, OutputID: testOutputID(1, 0)},
	}

	target := basicOutput(500_000, receiver)
	target.NativeTokens = iotago.NativeTokens{tokenID: uint256.NewInt(301)}

	_, err := New(available, []*iotago.Output{target}, []iotago.Address{sender}, testParams()).
		Timestamp(1_700_000_000).
		Select()
	require.Error(err)

	var tokenErr *NotEnoughNativeTokensError
	require.ErrorAs(err, &tokenErr)
	require.Equal(tokenID, tokenErr.TokenID)
	require.Equal(uint256.NewInt(300), tokenErr.Found)
	require.Equal(uint256.NewInt(301), tokenErr.Required)
}

func TestSelect_NoAvailableInputs(t *testing.T) {
	require := require.New(t)

	receiver := testEd25519(2)
	target := basicOutput(1_000, receiver)

	_, err := New(nil, []*iotago.Output{target}, nil, testParams()).Select()
	require.ErrorIs(err, ErrNoAvailableInputsProvided)
}

func TestSelect_NoOutputsProvided(t *testing.T) {
	require := require.New(t)

	sender := testEd25519(1)
	available := []InputSigningData{
		{Output: basicOutput(1_000, sender), OutputID: testOutputID(1, 0)},
	}

	_, err := New(available, nil, []iotago.Address{sender}, testParams()).Select()
	require.ErrorIs(err, ErrNoOutputsProvided)
}
