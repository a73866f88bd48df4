// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package selection

import (
	"github.com/holiman/uint256"

	"github.com/iotaledger/iota.go/iotago"
	"github.com/iotaledger/iota.go/iotago/nodeclient"
)

// InputSigningData bundles a candidate (or selected) input's output with
// everything needed to sign for it later: the origin OutputID, the
// derivation chain, and the bech32 form of the input's controlling address.
type InputSigningData struct {
	Output        *iotago.Output
	OutputID      iotago.OutputID
	Chain         nodeclient.BIP44Path
	Bech32Address string
}

// Burn is an explicit caller declaration that some consumed chain outputs
// (and, for foundries, a matching amount of circulating supply) have no
// successor in this transaction.
type Burn struct {
	Aliases      map[iotago.AliasID]bool
	Nfts         map[iotago.NftID]bool
	Foundries    map[iotago.FoundryID]bool
	NativeTokens map[iotago.TokenID]*uint256.Int // amount explicitly melted/burned per token
}

// NewBurn returns an empty Burn specification.
func NewBurn() *Burn {
	return &Burn{
		Aliases:      make(map[iotago.AliasID]bool),
		Nfts:         make(map[iotago.NftID]bool),
		Foundries:    make(map[iotago.FoundryID]bool),
		NativeTokens: make(map[iotago.TokenID]*uint256.Int),
	}
}

func (b *Burn) AddAlias(id iotago.AliasID) *Burn {
	b.Aliases[id] = true
	return b
}

func (b *Burn) AddNft(id iotago.NftID) *Burn {
	b.Nfts[id] = true
	return b
}

func (b *Burn) AddFoundry(id iotago.FoundryID) *Burn {
	b.Foundries[id] = true
	return b
}

func (b *Burn) AddNativeToken(id iotago.TokenID, amount *uint256.Int) *Burn {
	b.NativeTokens[id] = amount
	return b
}

func (b *Burn) IsEmpty() bool {
	return b == nil || (len(b.Aliases) == 0 && len(b.Nfts) == 0 && len(b.Foundries) == 0 && len(b.NativeTokens) == 0)
}
