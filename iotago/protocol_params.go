// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package iotago

// RentStructure carries the per-byte cost factors used to compute an
// output's storage-deposit minimum.
type RentStructure struct {
	VByteCost       uint16
	VByteFactorKey  uint8
	VByteFactorData uint8
}

// ProtocolParameters is the subset of node-configured protocol parameters
// the selection engine consumes. It is supplied by the caller; the core
// never reads it from a file, flag, or environment variable itself.
type ProtocolParameters struct {
	RentStructure RentStructure
	TokenSupply   uint64
	Bech32HRP     string
}
