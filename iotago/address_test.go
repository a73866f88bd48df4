// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package iotago

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddressBech32RoundTrip(t *testing.T) {
	require := require.New(t)

	cases := []Address{
		testEd25519(0xAA),
		NewAliasAddress(AliasID{0x11}),
		NewNftAddress(NftID{0x22}),
	}

	for _, addr := range cases {
		encoded, err := addr.Bech32("smr")
		require.NoError(err)

		hrp, decoded, err := ParseBech32Address(encoded)
		require.NoError(err)
		require.Equal("smr", hrp)
		require.True(addr.Equal(decoded))
	}
}

func TestParseBech32Address_RejectsMalformed(t *testing.T) {
	require := require.New(t)

	_, _, err := ParseBech32Address("not-a-bech32-string")
	require.Error(err)
}
