// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package selection

import "github.com/iotaledger/iota.go/iotago"

// sortInputSigningData orders selected inputs so that any input unlocked by
// an alias or NFT address comes after the input that owns that chain id.
// It walks the inputs once in their given order: an input with no chain
// reference is appended as met; for an input referencing a chain owned by
// another input in the set, the owner is appended first if it has not been
// placed yet, and the referencing input is appended after it.
// Ed25519-unlocked inputs are not moved to the front, and an owner that
// itself references a chain owned by a later input is not reordered for
// that second reference.
func (is *InputSelection) sortInputSigningData(inputs []InputSigningData) ([]InputSigningData, error) {
	owner := make(map[[38]byte]int, len(inputs))
	for i, in := range inputs {
		if id, ok := in.Output.ChainID(in.OutputID); ok {
			owner[id] = i
		}
	}

	sorted := make([]InputSigningData, 0, len(inputs))
	placed := make([]bool, len(inputs))

	var place func(i int)
	place = func(i int) {
		if placed[i] {
			return
		}
		placed[i] = true
		sorted = append(sorted, inputs[i])
	}

	for i, in := range inputs {
		if placed[i] {
			continue
		}
		referenced, hasRef := is.referencedChainID(in)
		if !hasRef {
			place(i)
			continue
		}
		if ownerIdx, ok := owner[referenced]; ok {
			place(ownerIdx)
			place(i)
			continue
		}
		place(i)
	}

	return sorted, nil
}

// referencedChainID returns the chain id an input's effective unlocker
// resolves to, if that unlocker is itself an alias or NFT address.
func (is *InputSelection) referencedChainID(in InputSigningData) (id [38]byte, ok bool) {
	out := in.Output
	var hint *AliasTransition
	if out.IsAlias() {
		t := is.inferAliasTransition(in)
		hint = &t
	}
	addr, _, err := requiredAndUnlockedAddress(out, is.timestamp, in.OutputID, hint)
	if err != nil {
		return id, false
	}
	switch addr.Kind {
	case iotago.AddressAlias:
		var out38 [38]byte
		copy(out38[:32], addr.Alias[:])
		return out38, true
	case iotago.AddressNft:
		var out38 [38]byte
		copy(out38[:32], addr.Nft[:])
		return out38, true
	default:
		return id, false
	}
}
