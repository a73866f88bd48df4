// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package iotago

// Byte-size constants used by the rent estimator below. They approximate
// the wire size of each field; the exact codec lives outside this module's
// scope (see spec §1 Out of scope), so only the sizes needed to compute a
// storage-deposit minimum are modeled here.
const (
	addressPayloadBytes = 34 // 1 kind tag + 32-byte hash/id + 1 condition-kind tag
	outputCoreBytes     = 12 // discriminator + amount + condition/feature counts
	timeValueBytes      = 4
	amountValueBytes    = 8
	nativeTokenBytes    = 70 // 38-byte token id + 32-byte amount
	aliasStateBytes     = 8  // state_index + foundry_counter, both u32
	foundryStateBytes   = 97 // scheme kind byte + 3 x 32-byte integers
)

// keyAndDataBytes splits an output's fields into the "key-like" bytes
// (address payloads, which the protocol charges VByteFactorKey for because
// they must remain indexable) and the "data-like" bytes (everything else),
// per spec §6's storage-deposit formula.
func keyAndDataBytes(out *Output) (kBytes, dBytes uint64) {
	dBytes += outputCoreBytes

	for _, c := range out.UnlockConditions {
		switch c.Kind {
		case UnlockConditionAddress, UnlockConditionStateControllerAddress,
			UnlockConditionGovernorAddress, UnlockConditionImmutableAliasAddress:
			kBytes += addressPayloadBytes
		case UnlockConditionStorageDepositReturn:
			kBytes += addressPayloadBytes
			dBytes += amountValueBytes
		case UnlockConditionTimelock:
			dBytes += timeValueBytes
		case UnlockConditionExpiration:
			kBytes += addressPayloadBytes
			dBytes += timeValueBytes
		}
	}

	for _, f := range out.Features {
		dBytes += featureBytes(f)
	}
	for _, f := range out.ImmutableFeatures {
		dBytes += featureBytes(f)
	}

	dBytes += uint64(len(out.NativeTokens)) * nativeTokenBytes

	switch out.Kind {
	case OutputNft:
		kBytes += 32 // NftID, reused as an address payload by successor unlocks
	case OutputAlias:
		kBytes += 32 // AliasID, ditto
		dBytes += aliasStateBytes
		dBytes += uint64(len(out.StateMetadata))
	case OutputFoundry:
		dBytes += foundryStateBytes
	}

	return kBytes, dBytes
}

func featureBytes(f Feature) uint64 {
	switch f.Kind {
	case FeatureSender, FeatureIssuer:
		return addressPayloadBytes
	default:
		return uint64(len(f.Bytes)) + 2
	}
}

// StorageDepositMinimum computes the minimum base_amount the output must
// carry, per spec §6:
//
//	minimum = v_byte_cost * (v_byte_factor_key*k_bytes + v_byte_factor_data*d_bytes)
func StorageDepositMinimum(params ProtocolParameters, out *Output) uint64 {
	k, d := keyAndDataBytes(out)
	rs := params.RentStructure
	weighted := uint64(rs.VByteFactorKey)*k + uint64(rs.VByteFactorData)*d
	return uint64(rs.VByteCost) * weighted
}
