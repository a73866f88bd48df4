// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package iotago

import "fmt"

// FeatureKind discriminates the four feature shapes an output can carry.
type FeatureKind uint8

const (
	FeatureSender FeatureKind = iota
	FeatureIssuer
	FeatureMetadata
	FeatureTag
)

func (k FeatureKind) String() string {
	switch k {
	case FeatureSender:
		return "Sender"
	case FeatureIssuer:
		return "Issuer"
	case FeatureMetadata:
		return "Metadata"
	case FeatureTag:
		return "Tag"
	default:
		return fmt.Sprintf("FeatureKind(%d)", uint8(k))
	}
}

// Feature is a tagged union over Sender/Issuer/Metadata/Tag features.
type Feature struct {
	Kind    FeatureKind
	Address Address // Sender, Issuer
	Bytes   []byte  // Metadata, Tag
}

func SenderFeature(addr Address) Feature { return Feature{Kind: FeatureSender, Address: addr} }
func IssuerFeature(addr Address) Feature { return Feature{Kind: FeatureIssuer, Address: addr} }
func MetadataFeature(b []byte) Feature   { return Feature{Kind: FeatureMetadata, Bytes: b} }
func TagFeature(b []byte) Feature        { return Feature{Kind: FeatureTag, Bytes: b} }

// FeatureSet is the set of features carried by one output, split between
// the mutable feature block and the immutable-features block (set only at
// genesis). Issuer is only ever valid in the immutable block.
type FeatureSet []Feature

func (s FeatureSet) find(kind FeatureKind) (Feature, bool) {
	for _, f := range s {
		if f.Kind == kind {
			return f, true
		}
	}
	return Feature{}, false
}

func (s FeatureSet) Sender() (Feature, bool)   { return s.find(FeatureSender) }
func (s FeatureSet) Issuer() (Feature, bool)   { return s.find(FeatureIssuer) }
func (s FeatureSet) Metadata() (Feature, bool) { return s.find(FeatureMetadata) }
func (s FeatureSet) Tag() (Feature, bool)      { return s.find(FeatureTag) }
