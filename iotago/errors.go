// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package iotago

import "errors"

var (
	ErrMalformedAddress           = errors.New("malformed address")
	ErrZeroNativeTokenAmount      = errors.New("native token amount must not be zero")
	ErrDuplicateNativeToken       = errors.New("duplicate native token id")
	ErrDisallowedUnlockCondition  = errors.New("unlock condition not allowed on this output kind")
	ErrDisallowedFeature          = errors.New("feature not allowed on this output kind")
	ErrMissingAddressCondition    = errors.New("basic/nft output must carry an Address unlock condition")
	ErrMissingAliasControllers    = errors.New("alias output must carry state controller and governor unlock conditions")
	ErrMissingImmutableAliasAddr  = errors.New("foundry output must carry an ImmutableAliasAddress unlock condition")
	ErrInvalidStorageDepositAmount = errors.New("output amount below storage deposit minimum")
)
