// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package iotago

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// TransactionID is the 32-byte digest identifying a transaction.
type TransactionID [32]byte

// OutputID references a single output produced by a transaction: the
// transaction id plus the output's index within that transaction.
type OutputID struct {
	TransactionID TransactionID
	OutputIndex   uint16
}

// Hash returns the 32-byte digest used to derive a chain id for an output
// created by this OutputID, matching the source's output-id hashing.
func (id OutputID) Hash() [32]byte {
	var buf [34]byte
	copy(buf[:32], id.TransactionID[:])
	binary.BigEndian.PutUint16(buf[32:], id.OutputIndex)
	return blake2b.Sum256(buf[:])
}

func (id OutputID) String() string {
	return fmt.Sprintf("%s%04x", hex.EncodeToString(id.TransactionID[:]), id.OutputIndex)
}

// AliasID is the persistent identity of an alias output across transitions.
type AliasID [32]byte

var EmptyAliasID AliasID

func (id AliasID) IsEmpty() bool { return id == EmptyAliasID }

func (id AliasID) String() string { return hex.EncodeToString(id[:]) }

// NftID is the persistent identity of an NFT output across transitions.
type NftID [32]byte

var EmptyNftID NftID

func (id NftID) IsEmpty() bool { return id == EmptyNftID }

func (id NftID) String() string { return hex.EncodeToString(id[:]) }

// FoundryID is the persistent identity of a foundry output: its controlling
// alias id, serial number, and token scheme kind, concatenated.
type FoundryID [38]byte

func (id FoundryID) String() string { return hex.EncodeToString(id[:]) }

// TokenID identifies a native token; it is always derived from the foundry
// that controls it, so TokenID and FoundryID share their 38-byte shape.
type TokenID [38]byte

func (id TokenID) String() string { return hex.EncodeToString(id[:]) }

// TokenSchemeKind distinguishes the supported token-scheme shapes. The
// source only ever defines one (simple mint/melt/maximum), but the kind
// byte is part of the wire format of a FoundryID/TokenID, so it is modeled
// explicitly rather than assumed.
type TokenSchemeKind uint8

const SimpleTokenSchemeKind TokenSchemeKind = 0

// NewFoundryID computes the 38-byte foundry id from its controlling alias,
// serial number, and token scheme kind.
func NewFoundryID(controllingAlias AliasID, serialNumber uint32, schemeKind TokenSchemeKind) FoundryID {
	var id FoundryID
	copy(id[:32], controllingAlias[:])
	binary.BigEndian.PutUint32(id[32:36], serialNumber)
	id[36] = byte(schemeKind)
	// id[37] reserved, left zero; kept as a distinct byte so FoundryID and
	// TokenID can diverge later without reshaping either type.
	return id
}

// TokenID derives the native-token id minted by this foundry: identical
// bytes to the FoundryID, by construction of the protocol.
func (id FoundryID) TokenID() TokenID {
	return TokenID(id)
}
