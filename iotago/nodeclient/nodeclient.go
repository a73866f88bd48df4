// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package nodeclient specifies, but does not implement, the external
// collaborators the selection engine's caller depends on: a node query
// client that resolves an OutputID to its output and booking metadata, and
// a signer that turns a derivation path into an Ed25519 signature. Both are
// out of scope for the core (spec §1, §6): this package only pins their
// contract shape so a realistic caller can be assembled around
// iotago/selection.
//
// HTTP timeouts, retries, and connection pooling belong to a concrete
// NodeClient implementation and are deliberately not modeled here.
package nodeclient

import (
	"context"

	"github.com/iotaledger/iota.go/iotago"
)

// OutputMetadata is the subset of a node's output-metadata response the
// core's InputSigningData needs.
type OutputMetadata struct {
	TransactionID        iotago.TransactionID
	OutputIndex           uint16
	Spent                 bool
	MilestoneIndexBooked  uint32
}

// OutputResponse bundles a queried output with its booking metadata,
// mirroring the node's GET /outputs/{outputId} response shape.
type OutputResponse struct {
	Output   *iotago.Output
	Metadata OutputMetadata
}

// NodeClient resolves chain state the selection engine's caller needs
// before it can assemble an iotago/selection.InputSelection: looking up a
// specific output, and (for a fuller wallet) listing the outputs owned by
// an address. Cancellation is the caller's own mechanism (context); once an
// InputSelection is constructed, selection itself never calls back into
// this interface.
type NodeClient interface {
	OutputByID(ctx context.Context, id iotago.OutputID) (*OutputResponse, error)
	OutputIDsByAddress(ctx context.Context, bech32Address string) ([]iotago.OutputID, error)
}

// BIP44Path is the derivation chain recorded alongside a signed input, in
// the m/44'/coin'/account'/change/index shape.
type BIP44Path struct {
	CoinType uint32
	Account  uint32
	Change   uint32
	Index    uint32
}

// Signer produces an Ed25519 signature over a transaction essence hash for
// the key at the given derivation path. Mnemonic/seed management and key
// derivation themselves are out of scope (spec §1); this is only the
// contract a signing collaborator must satisfy.
type Signer interface {
	Sign(ctx context.Context, essenceHash [32]byte, path BIP44Path) (signature [64]byte, publicKey [32]byte, err error)
}
