// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package iotago

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func testParams() ProtocolParameters {
	return ProtocolParameters{
		RentStructure: RentStructure{
			VByteCost:       500,
			VByteFactorKey:  10,
			VByteFactorData: 1,
		},
		TokenSupply: 1_000_000_000,
		Bech32HRP:   "smr",
	}
}

func TestStorageDepositMinimum_GrowsWithNativeTokens(t *testing.T) {
	require := require.New(t)

	params := testParams()
	plain, err := NewBasicOutput(0, nil, UnlockConditionSet{AddressUnlockCondition(testEd25519(1))}, nil, nil)
	require.NoError(err)

	tokens, err := NewNativeTokens([]NativeToken{{ID: TokenID{0x01}, Amount: uint256.NewInt(1)}})
	require.NoError(err)
	withToken, err := NewBasicOutput(0, tokens, UnlockConditionSet{AddressUnlockCondition(testEd25519(1))}, nil, nil)
	require.NoError(err)

	require.Greater(StorageDepositMinimum(params, withToken), StorageDepositMinimum(params, plain))
}

func TestStorageDepositMinimum_IsPositive(t *testing.T) {
	require := require.New(t)

	params := testParams()
	out, err := NewBasicOutput(0, nil, UnlockConditionSet{AddressUnlockCondition(testEd25519(1))}, nil, nil)
	require.NoError(err)

	require.Positive(StorageDepositMinimum(params, out))
}
