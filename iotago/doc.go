// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package iotago provides the typed output and address model for a
// Tangle-style UTXO ledger: basic, NFT, alias and foundry outputs, their
// unlock conditions and features, chain identities, and native-token bags.
//
// The package only models data and pure predicates over it. The actual
// input-selection algorithm that turns a pool of these outputs into a
// balanced pre-transaction lives in the sibling selection package.
package iotago
