// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package bech32 encodes and decodes the HRP-prefixed addresses used
// throughout the ledger, on top of btcutil's bech32 implementation rather
// than hand-rolling the checksum algorithm.
package bech32

import (
	"github.com/btcsuite/btcd/btcutil/bech32"
)

// Encode converts raw bytes to 5-bit groups and bech32-encodes them behind
// the given human-readable prefix.
func Encode(hrp string, data []byte) (string, error) {
	converted, err := bech32.ConvertBits(data, 8, 5, true)
	if err != nil {
		return "", err
	}
	return bech32.Encode(hrp, converted)
}

// Decode bech32-decodes s and converts its data part back to 8-bit bytes,
// returning the human-readable prefix and the decoded payload.
func Decode(s string) (hrp string, data []byte, err error) {
	hrp, converted, err := bech32.Decode(s)
	if err != nil {
		return "", nil, err
	}
	data, err = bech32.ConvertBits(converted, 5, 8, false)
	if err != nil {
		return "", nil, err
	}
	return hrp, data, nil
}
