// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package iotago

import "fmt"

// UnlockConditionKind discriminates the seven unlock-condition shapes an
// output can carry. The per-variant whitelist of which kinds an output
// kind may carry is enforced by the Output constructors.
type UnlockConditionKind uint8

const (
	UnlockConditionAddress UnlockConditionKind = iota
	UnlockConditionStorageDepositReturn
	UnlockConditionTimelock
	UnlockConditionExpiration
	UnlockConditionStateControllerAddress
	UnlockConditionGovernorAddress
	UnlockConditionImmutableAliasAddress
)

func (k UnlockConditionKind) String() string {
	switch k {
	case UnlockConditionAddress:
		return "Address"
	case UnlockConditionStorageDepositReturn:
		return "StorageDepositReturn"
	case UnlockConditionTimelock:
		return "Timelock"
	case UnlockConditionExpiration:
		return "Expiration"
	case UnlockConditionStateControllerAddress:
		return "StateControllerAddress"
	case UnlockConditionGovernorAddress:
		return "GovernorAddress"
	case UnlockConditionImmutableAliasAddress:
		return "ImmutableAliasAddress"
	default:
		return fmt.Sprintf("UnlockConditionKind(%d)", uint8(k))
	}
}

// UnlockCondition is a tagged union over the conditions an output may
// carry. Only the fields relevant to Kind are populated.
type UnlockCondition struct {
	Kind UnlockConditionKind

	Address Address // Address, StateControllerAddress, GovernorAddress, ImmutableAliasAddress

	ReturnAddress Address // StorageDepositReturn, Expiration
	ReturnAmount  uint64  // StorageDepositReturn

	UnixTime uint32 // Timelock, Expiration
}

func AddressUnlockCondition(addr Address) UnlockCondition {
	return UnlockCondition{Kind: UnlockConditionAddress, Address: addr}
}

func StorageDepositReturnUnlockCondition(returnAddr Address, amount uint64) UnlockCondition {
	return UnlockCondition{Kind: UnlockConditionStorageDepositReturn, ReturnAddress: returnAddr, ReturnAmount: amount}
}

func TimelockUnlockCondition(unixTime uint32) UnlockCondition {
	return UnlockCondition{Kind: UnlockConditionTimelock, UnixTime: unixTime}
}

func ExpirationUnlockCondition(returnAddr Address, unixTime uint32) UnlockCondition {
	return UnlockCondition{Kind: UnlockConditionExpiration, ReturnAddress: returnAddr, UnixTime: unixTime}
}

func StateControllerAddressUnlockCondition(addr Address) UnlockCondition {
	return UnlockCondition{Kind: UnlockConditionStateControllerAddress, Address: addr}
}

func GovernorAddressUnlockCondition(addr Address) UnlockCondition {
	return UnlockCondition{Kind: UnlockConditionGovernorAddress, Address: addr}
}

func ImmutableAliasAddressUnlockCondition(addr Address) UnlockCondition {
	return UnlockCondition{Kind: UnlockConditionImmutableAliasAddress, Address: addr}
}

// UnlockConditionSet is the set of conditions carried by one output. Per
// the data model, an output never carries two conditions of the same kind.
type UnlockConditionSet []UnlockCondition

func (s UnlockConditionSet) find(kind UnlockConditionKind) (UnlockCondition, bool) {
	for _, c := range s {
		if c.Kind == kind {
			return c, true
		}
	}
	return UnlockCondition{}, false
}

func (s UnlockConditionSet) Address() (UnlockCondition, bool) {
	return s.find(UnlockConditionAddress)
}

func (s UnlockConditionSet) StorageDepositReturn() (UnlockCondition, bool) {
	return s.find(UnlockConditionStorageDepositReturn)
}

func (s UnlockConditionSet) Timelock() (UnlockCondition, bool) {
	return s.find(UnlockConditionTimelock)
}

func (s UnlockConditionSet) Expiration() (UnlockCondition, bool) {
	return s.find(UnlockConditionExpiration)
}

func (s UnlockConditionSet) StateControllerAddress() (UnlockCondition, bool) {
	return s.find(UnlockConditionStateControllerAddress)
}

func (s UnlockConditionSet) GovernorAddress() (UnlockCondition, bool) {
	return s.find(UnlockConditionGovernorAddress)
}

func (s UnlockConditionSet) ImmutableAliasAddress() (UnlockCondition, bool) {
	return s.find(UnlockConditionImmutableAliasAddress)
}

// IsTimelocked reports whether a Timelock condition is present and has not
// yet expired at the given timestamp.
func (s UnlockConditionSet) IsTimelocked(timestamp uint32) bool {
	tl, ok := s.Timelock()
	return ok && timestamp < tl.UnixTime
}

// basicWhitelist, nftWhitelist, aliasWhitelist, foundryWhitelist enumerate
// the unlock-condition kinds each output variant may carry.
var (
	basicWhitelist = map[UnlockConditionKind]bool{
		UnlockConditionAddress:              true,
		UnlockConditionStorageDepositReturn: true,
		UnlockConditionTimelock:             true,
		UnlockConditionExpiration:           true,
	}
	nftWhitelist = basicWhitelist
	aliasWhitelist = map[UnlockConditionKind]bool{
		UnlockConditionStateControllerAddress: true,
		UnlockConditionGovernorAddress:        true,
	}
	foundryWhitelist = map[UnlockConditionKind]bool{
		UnlockConditionImmutableAliasAddress: true,
	}
)
