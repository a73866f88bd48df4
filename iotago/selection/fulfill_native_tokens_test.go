// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package selection

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/iota.go/iotago"
)

// A single input carrying two distinct native tokens must have both token
// balances credited once it is picked, regardless of which deficit it was
// picked to cover — otherwise a later token id's deficit could be reported
// as unfulfillable even though the already-picked input already covers it.
func TestSelect_NativeTokenFulfillmentCreditsAllTokensOnOnePickedInput(t *testing.T) {
	require := require.New(t)

	sender := testEd25519(1)
	receiver := testEd25519(2)

	var tokenA, tokenB iotago.TokenID
	tokenA[0] = 0x01
	tokenB[0] = 0x02

	in := basicOutput(1_000_000, sender)
	in.NativeTokens = iotago.NativeTokens{
		tokenA: uint256.NewInt(100),
		tokenB: uint256.NewInt(100),
	}

	available := []InputSigningData{
		{Output: in, OutputID: testOutputID(1, 0)},
	}

	target := basicOutput(500_000, receiver)
	target.NativeTokens = iotago.NativeTokens{
		tokenA: uint256.NewInt(50),
		tokenB: uint256.NewInt(50),
	}

	selected, err := New(available, []*iotago.Output{target}, []iotago.Address{sender}, testParams()).
		Timestamp(1_700_000_000).
		Select()
	require.NoError(err)
	require.Len(selected.Inputs, 1)
}
