// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package iotago

import (
	"fmt"

	ibech32 "github.com/iotaledger/iota.go/iotago/bech32"
)

// AddressKind discriminates the three address shapes a Tangle-style ledger
// supports. The set is closed and bounded by the protocol, so it is modeled
// as an enum rather than open-ended dispatch (see spec design notes).
type AddressKind uint8

const (
	AddressEd25519 AddressKind = 0
	AddressAlias   AddressKind = 8
	AddressNft     AddressKind = 16
)

func (k AddressKind) String() string {
	switch k {
	case AddressEd25519:
		return "Ed25519"
	case AddressAlias:
		return "Alias"
	case AddressNft:
		return "Nft"
	default:
		return fmt.Sprintf("AddressKind(%d)", uint8(k))
	}
}

// Address is a tagged union over the three address kinds an unlock
// condition can name. Alias and Nft addresses are unlocked transitively by
// unlocking the corresponding chain output in the same transaction.
type Address struct {
	Kind    AddressKind
	Ed25519 [32]byte // valid iff Kind == AddressEd25519
	Alias   AliasID  // valid iff Kind == AddressAlias
	Nft     NftID    // valid iff Kind == AddressNft
}

func NewEd25519Address(hash [32]byte) Address {
	return Address{Kind: AddressEd25519, Ed25519: hash}
}

func NewAliasAddress(id AliasID) Address {
	return Address{Kind: AddressAlias, Alias: id}
}

func NewNftAddress(id NftID) Address {
	return Address{Kind: AddressNft, Nft: id}
}

// Equal reports whether two addresses denote the same owner.
func (a Address) Equal(other Address) bool {
	if a.Kind != other.Kind {
		return false
	}
	switch a.Kind {
	case AddressEd25519:
		return a.Ed25519 == other.Ed25519
	case AddressAlias:
		return a.Alias == other.Alias
	case AddressNft:
		return a.Nft == other.Nft
	default:
		return false
	}
}

// payload returns the 32-byte identifying hash/id carried by the address,
// regardless of kind.
func (a Address) payload() [32]byte {
	switch a.Kind {
	case AddressAlias:
		return a.Alias
	case AddressNft:
		return a.Nft
	default:
		return a.Ed25519
	}
}

// Bech32 encodes the address as hrp + "1" + base32(kind-tag || payload) +
// 6-char checksum, per the protocol's address-encoding contract.
func (a Address) Bech32(hrp string) (string, error) {
	payload := a.payload()
	data := make([]byte, 1, 33)
	data[0] = byte(a.Kind)
	data = append(data, payload[:]...)
	return ibech32.Encode(hrp, data)
}

// ParseBech32Address decodes a bech32 address string, returning the HRP and
// the decoded Address.
func ParseBech32Address(s string) (hrp string, addr Address, err error) {
	hrp, data, err := ibech32.Decode(s)
	if err != nil {
		return "", Address{}, err
	}
	if len(data) != 33 {
		return "", Address{}, fmt.Errorf("%w: payload length %d", ErrMalformedAddress, len(data))
	}
	kind := AddressKind(data[0])
	var payload [32]byte
	copy(payload[:], data[1:])

	switch kind {
	case AddressEd25519:
		return hrp, NewEd25519Address(payload), nil
	case AddressAlias:
		return hrp, NewAliasAddress(AliasID(payload)), nil
	case AddressNft:
		return hrp, NewNftAddress(NftID(payload)), nil
	default:
		return "", Address{}, fmt.Errorf("%w: unknown address kind %d", ErrMalformedAddress, kind)
	}
}
