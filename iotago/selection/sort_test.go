// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package selection

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/iota.go/iotago"
)

func TestSortInputSigningData_AliasOwnedInputFollowsOwner(t *testing.T) {
	require := require.New(t)

	controller := testEd25519(1)
	aliasID := iotago.AliasID{0x42}

	aliasOut, err := iotago.NewAliasOutput(aliasID, 1_000, 0, 0, nil, nil,
		iotago.UnlockConditionSet{
			iotago.StateControllerAddressUnlockCondition(controller),
			iotago.GovernorAddressUnlockCondition(controller),
		}, nil, nil)
	require.NoError(err)

	aliasOwnedOut, err := iotago.NewBasicOutput(500, nil,
		iotago.UnlockConditionSet{iotago.AddressUnlockCondition(iotago.NewAliasAddress(aliasID))}, nil, nil)
	require.NoError(err)

	aliasIn := InputSigningData{Output: aliasOut, OutputID: testOutputID(1, 0)}
	ownedIn := InputSigningData{Output: aliasOwnedOut, OutputID: testOutputID(2, 0)}

	is := &InputSelection{timestamp: 0}

	// Feed the inputs in an order that violates the invariant; the sort
	// must repair it regardless of input order.
	sorted, err := is.sortInputSigningData([]InputSigningData{ownedIn, aliasIn})
	require.NoError(err)
	require.Len(sorted, 2)

	aliasIdx, ownedIdx := -1, -1
	for i, in := range sorted {
		if in.OutputID == aliasIn.OutputID {
			aliasIdx = i
		}
		if in.OutputID == ownedIn.OutputID {
			ownedIdx = i
		}
	}
	require.True(aliasIdx < ownedIdx, "alias-owning input must precede the input it unlocks")
}

func TestSortInputSigningData_NoChainReferencesIsStable(t *testing.T) {
	require := require.New(t)

	owner := testEd25519(1)
	in1 := InputSigningData{Output: basicOutput(100, owner), OutputID: testOutputID(1, 0)}
	in2 := InputSigningData{Output: basicOutput(200, owner), OutputID: testOutputID(2, 0)}

	is := &InputSelection{timestamp: 0}
	sorted, err := is.sortInputSigningData([]InputSigningData{in1, in2})
	require.NoError(err)
	require.Equal([]InputSigningData{in1, in2}, sorted)
}
