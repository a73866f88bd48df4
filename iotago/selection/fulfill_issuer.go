// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package selection

import "github.com/iotaledger/iota.go/iotago"

// fulfillIssuer resolves an Issuer requirement. Issuer is an immutable
// feature set only at genesis, but the unlockability check is identical to
// Sender: some input in the selection must already unlock to this address,
// or one must be pulled in from the available pool (spec §4.4, issuer
// fulfiller).
func (is *InputSelection) fulfillIssuer(addr iotago.Address) ([]InputSigningData, error) {
	inputs, err := is.fulfillAddress(addr)
	if err != nil {
		return nil, &UnfulfillableRequirementError{Requirement: IssuerRequirement(addr)}
	}
	return inputs, nil
}
