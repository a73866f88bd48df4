// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package selection

import (
	"fmt"

	"github.com/iotaledger/iota.go/iotago"
)

// AliasTransition distinguishes a state transition (advances state_index,
// may rewrite state_metadata) from a governance transition (changes
// controllers only; state_index and state_metadata must not move).
type AliasTransition uint8

const (
	AliasTransitionState AliasTransition = iota
	AliasTransitionGovernance
)

func (t AliasTransition) String() string {
	if t == AliasTransitionGovernance {
		return "Governance"
	}
	return "State"
}

// RequirementKind discriminates the seven requirement shapes C3's queue
// can hold.
type RequirementKind uint8

const (
	RequirementAmount RequirementKind = iota
	RequirementNativeTokens
	RequirementAlias
	RequirementFoundry
	RequirementNft
	RequirementSender
	RequirementIssuer
)

func (k RequirementKind) String() string {
	switch k {
	case RequirementAmount:
		return "Amount"
	case RequirementNativeTokens:
		return "NativeTokens"
	case RequirementAlias:
		return "Alias"
	case RequirementFoundry:
		return "Foundry"
	case RequirementNft:
		return "Nft"
	case RequirementSender:
		return "Sender"
	case RequirementIssuer:
		return "Issuer"
	default:
		return fmt.Sprintf("RequirementKind(%d)", uint8(k))
	}
}

// Requirement is one pending constraint on the selection in progress. Only
// the fields relevant to Kind are populated.
type Requirement struct {
	Kind RequirementKind

	AliasID         iotago.AliasID // Alias
	AliasTransition AliasTransition

	FoundryID iotago.FoundryID // Foundry
	NftID     iotago.NftID     // Nft

	Address iotago.Address // Sender, Issuer
}

func (r Requirement) String() string {
	switch r.Kind {
	case RequirementAlias:
		return fmt.Sprintf("Alias(%s, %s)", r.AliasID, r.AliasTransition)
	case RequirementFoundry:
		return fmt.Sprintf("Foundry(%s)", r.FoundryID)
	case RequirementNft:
		return fmt.Sprintf("Nft(%s)", r.NftID)
	case RequirementSender:
		return fmt.Sprintf("Sender(%+v)", r.Address)
	case RequirementIssuer:
		return fmt.Sprintf("Issuer(%+v)", r.Address)
	default:
		return r.Kind.String()
	}
}

func AmountRequirement() Requirement { return Requirement{Kind: RequirementAmount} }

func NativeTokensRequirement() Requirement { return Requirement{Kind: RequirementNativeTokens} }

func AliasRequirement(id iotago.AliasID, transition AliasTransition) Requirement {
	return Requirement{Kind: RequirementAlias, AliasID: id, AliasTransition: transition}
}

func FoundryRequirement(id iotago.FoundryID) Requirement {
	return Requirement{Kind: RequirementFoundry, FoundryID: id}
}

func NftRequirement(id iotago.NftID) Requirement {
	return Requirement{Kind: RequirementNft, NftID: id}
}

func SenderRequirement(addr iotago.Address) Requirement {
	return Requirement{Kind: RequirementSender, Address: addr}
}

func IssuerRequirement(addr iotago.Address) Requirement {
	return Requirement{Kind: RequirementIssuer, Address: addr}
}

// requirementQueue is a last-in-first-out stack of pending requirements.
// Duplicates are allowed: fulfillers are idempotent and tolerate re-entry
// (spec §4.3).
type requirementQueue []Requirement

func (q *requirementQueue) push(r Requirement) {
	*q = append(*q, r)
}

func (q *requirementQueue) pop() (Requirement, bool) {
	n := len(*q)
	if n == 0 {
		return Requirement{}, false
	}
	r := (*q)[n-1]
	*q = (*q)[:n-1]
	return r, true
}
