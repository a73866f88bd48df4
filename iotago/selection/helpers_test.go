// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package selection

import (
	"github.com/iotaledger/iota.go/iotago"
)

func testEd25519(b byte) iotago.Address {
	var h [32]byte
	h[0] = b
	return iotago.NewEd25519Address(h)
}

func testOutputID(txByte byte, index uint16) iotago.OutputID {
	var tx iotago.TransactionID
	tx[0] = txByte
	return iotago.OutputID{TransactionID: tx, OutputIndex: index}
}

func testParams() iotago.ProtocolParameters {
	return iotago.ProtocolParameters{
		RentStructure: iotago.RentStructure{
			VByteCost:       100,
			VByteFactorKey:  10,
			VByteFactorData: 1,
		},
		TokenSupply: 1_000_000_000,
		Bech32HRP:   "iota",
	}
}

func basicOutput(amount uint64, addr iotago.Address) *iotago.Output {
	out, err := iotago.NewBasicOutput(amount, nil, iotago.UnlockConditionSet{iotago.AddressUnlockCondition(addr)}, nil, nil)
	if err != nil {
		panic(err)
	}
	return out
}
