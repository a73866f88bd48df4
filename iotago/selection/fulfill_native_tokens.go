// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package selection

import "github.com/iotaledger/iota.go/iotago"

// fulfillNativeTokens picks additional inputs until every native token
// demanded by the queued outputs is covered, one token id at a time (spec
// §4.4, native_tokens fulfiller). A single input can carry more than one
// token, so every token a newly-picked input carries is credited against
// the running totals, not just the id it was picked for — otherwise a
// later id's deficit could be reported as unfulfillable even though an
// already-picked input already covers it.
func (is *InputSelection) fulfillNativeTokens() ([]InputSigningData, error) {
	required := is.requiredNativeTokens()
	if len(required) == 0 {
		return nil, nil
	}
	have := is.selectedNativeTokens()

	var picked []InputSigningData
	for id, need := range required {
		current, ok := have[id]
		if !ok {
			current = zeroU256()
			have[id] = current
		}
		for current.Cmp(need) < 0 && is.hasAvailableWithToken(id) {
			idx := is.pickTokenInputIndex(id)
			in := is.removeAvailableAt(idx)
			picked = append(picked, in)
			for tid, amt := range in.Output.Tokens() {
				addToken(have, tokenIDKey(tid), amt)
			}
			current = have[id]
		}
		if current.Cmp(need) < 0 {
			return nil, &NotEnoughNativeTokensError{
				TokenID:  iotago.TokenID(id),
				Found:    current,
				Required: need,
			}
		}
	}
	return picked, nil
}

func (is *InputSelection) hasAvailableWithToken(id tokenIDKey) bool {
	return is.pickTokenInputIndex(id) != -1
}

func (is *InputSelection) pickTokenInputIndex(id tokenIDKey) int {
	best := -1
	for i, in := range is.availableInputs {
		amt, ok := in.Output.Tokens()[iotago.TokenID(id)]
		if !ok {
			continue
		}
		if best == -1 || amt.Cmp(is.availableInputs[best].Output.Tokens()[iotago.TokenID(id)]) > 0 {
			best = i
		}
	}
	return best
}
