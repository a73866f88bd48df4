// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package selection implements the UTXO input-selection engine: given a
// pool of candidate inputs and a set of desired outputs, it chooses a
// minimal subset of inputs, synthesizes any required chain-transition
// outputs, computes a storage-deposit-safe remainder, and returns a fully
// balanced pre-transaction ready for signing.
//
// Selection is strictly synchronous: it does no I/O, reads no clock, and
// holds no shared mutable state beyond the one InputSelection value the
// caller builds and consumes (spec §5).
package selection

import (
	"go.uber.org/zap"

	"github.com/iotaledger/iota.go/iotago"
)

// Remainder describes the single basic output (if any) the remainder
// builder produced to balance base-token and native-token surplus.
type Remainder struct {
	Output  *iotago.Output
	Address iotago.Address
}

// Selected is the result of a successful Select call.
type Selected struct {
	Inputs    []InputSigningData
	Outputs   []*iotago.Output
	Remainder *Remainder
}

// MaxInputs bounds the number of inputs a single transaction may hold, per
// the protocol's ConsolidationRequired error.
const MaxInputs = 128

// InputSelection is the working state of one selection run. It is built
// once via New, configured through its chained setters, and consumed by a
// single call to Select; inputs and outputs inside its result are
// immutable thereafter (spec §3 Lifecycle).
type InputSelection struct {
	availableInputs []InputSigningData
	requiredInputs  map[iotago.OutputID]bool
	forbiddenInputs map[iotago.OutputID]bool
	selectedInputs  []InputSigningData
	outputs         []*iotago.Output
	addresses       map[addressKey]iotago.Address
	burn            *Burn
	remainderAddr   *iotago.Address
	protocolParams  iotago.ProtocolParameters
	timestamp       uint32
	requirements    requirementQueue

	// automaticallyTransitioned records chain ids for which a successor has
	// already been synthesized, so re-entrant selection of the same chain
	// doesn't double-create one (spec §4.5 / design note: checked but never
	// cleared within one Select call, which is correct because selection is
	// linear).
	automaticallyTransitioned map[[38]byte]bool

	logger *zap.Logger
}

// addressKey is a hashable projection of an iotago.Address, used as a map
// key since iotago.Address itself embeds fixed-size arrays of differing
// meaning per Kind.
type addressKey struct {
	kind    iotago.AddressKind
	payload [32]byte
}

func keyOf(a iotago.Address) addressKey {
	switch a.Kind {
	case iotago.AddressAlias:
		return addressKey{kind: a.Kind, payload: a.Alias}
	case iotago.AddressNft:
		return addressKey{kind: a.Kind, payload: a.Nft}
	default:
		return addressKey{kind: a.Kind, payload: a.Ed25519}
	}
}

// New builds an InputSelection from the available inputs, the outputs the
// caller wants produced, the addresses the caller can sign for, and the
// protocol parameters governing storage deposits and token supply.
//
// Every alias/NFT output present in availableInputs implicitly contributes
// its own chain address to the address set, the same way the source
// extends its address set with Address::Alias/Address::Nft derived from
// the input pool itself.
func New(availableInputs []InputSigningData, outputs []*iotago.Output, addresses []iotago.Address, protocolParams iotago.ProtocolParameters) *InputSelection {
	addrSet := make(map[addressKey]iotago.Address, len(addresses))
	for _, a := range addresses {
		addrSet[keyOf(a)] = a
	}
	for _, in := range availableInputs {
		switch in.Output.Kind {
		case iotago.OutputAlias:
			addr := iotago.NewAliasAddress(in.Output.AliasIDNonNull(in.OutputID))
			addrSet[keyOf(addr)] = addr
		case iotago.OutputNft:
			addr := iotago.NewNftAddress(in.Output.NftIDNonNull(in.OutputID))
			addrSet[keyOf(addr)] = addr
		}
	}

	return &InputSelection{
		availableInputs:           availableInputs,
		forbiddenInputs:           make(map[iotago.OutputID]bool),
		outputs:                   outputs,
		addresses:                 addrSet,
		protocolParams:            protocolParams,
		automaticallyTransitioned: make(map[[38]byte]bool),
		logger:                    zap.NewNop(),
	}
}

// WithLogger attaches a zap logger the driver uses to trace requirement
// fulfillment at debug level. The default is a no-op logger.
func (is *InputSelection) WithLogger(logger *zap.Logger) *InputSelection {
	is.logger = logger
	return is
}

// RequiredInputs forces the given output ids to be selected before the
// fulfillment loop begins.
func (is *InputSelection) RequiredInputs(ids []iotago.OutputID) *InputSelection {
	set := make(map[iotago.OutputID]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	is.requiredInputs = set
	return is
}

// ForbiddenInputs excludes the given output ids from the available pool.
func (is *InputSelection) ForbiddenInputs(ids []iotago.OutputID) *InputSelection {
	for _, id := range ids {
		is.forbiddenInputs[id] = true
	}
	return is
}

// SetBurn declares chain outputs (and native-token amounts) to consume
// without a successor.
func (is *InputSelection) SetBurn(burn *Burn) *InputSelection {
	is.burn = burn
	return is
}

// RemainderAddress fixes the address the remainder builder pays surplus
// back to, overriding the default (the first selected Ed25519 input's
// address).
func (is *InputSelection) RemainderAddress(addr iotago.Address) *InputSelection {
	is.remainderAddr = &addr
	return is
}

// Timestamp sets the UNIX-seconds time selection reasons about. The core
// never reads the system clock itself (spec §5): this is the only way it
// learns the current time.
func (is *InputSelection) Timestamp(ts uint32) *InputSelection {
	is.timestamp = ts
	return is
}

// Select runs the fulfillment loop to completion and returns the balanced
// pre-transaction, or the most informative error encountered.
func (is *InputSelection) Select() (*Selected, error) {
	is.filterAvailableInputs()

	if len(is.availableInputs) == 0 {
		return nil, ErrNoAvailableInputsProvided
	}
	if len(is.outputs) == 0 && is.burn.IsEmpty() {
		return nil, ErrNoOutputsProvided
	}

	if err := is.initRequirements(); err != nil {
		return nil, err
	}

	for {
		requirement, ok := is.requirements.pop()
		if !ok {
			break
		}

		is.logger.Debug("fulfilling requirement", zap.String("requirement", requirement.String()))

		inputs, err := is.fulfillRequirement(requirement)
		if err != nil {
			return nil, err
		}
		for _, in := range inputs {
			if err := is.selectInput(in); err != nil {
				return nil, err
			}
		}
	}

	remainder, storageDepositReturns, err := is.buildRemainderAndReturns()
	if err != nil {
		return nil, err
	}
	if remainder != nil {
		is.outputs = append(is.outputs, remainder.Output)
	}
	is.outputs = append(is.outputs, storageDepositReturns...)

	if len(is.selectedInputs) > MaxInputs {
		return nil, &ConsolidationRequiredError{MaxInputs: MaxInputs}
	}

	sorted, err := is.sortInputSigningData(is.selectedInputs)
	if err != nil {
		return nil, err
	}

	return &Selected{
		Inputs:    sorted,
		Outputs:   is.outputs,
		Remainder: remainder,
	}, nil
}

// filterAvailableInputs removes forbidden inputs and anything the selection
// couldn't possibly spend: non basic/alias/foundry/nft kinds (there are
// none in this closed data model, kept for parity with the source), still-
// timelocked outputs, and outputs whose effective unlocker isn't among the
// caller's addresses. Alias outputs are always kept, because whether a
// State or Governance address will be required isn't known yet.
func (is *InputSelection) filterAvailableInputs() {
	kept := is.availableInputs[:0:0]
	for _, in := range is.availableInputs {
		if is.forbiddenInputs[in.OutputID] {
			continue
		}
		if in.Output.IsAlias() {
			kept = append(kept, in)
			continue
		}
		if isTimeLocked(in.Output, is.timestamp) {
			continue
		}
		addr, _, err := requiredAndUnlockedAddress(in.Output, is.timestamp, in.OutputID, nil)
		if err != nil {
			continue
		}
		if _, ok := is.addresses[keyOf(addr)]; ok {
			kept = append(kept, in)
		}
	}
	is.availableInputs = kept
}

func (is *InputSelection) removeAvailableAt(i int) InputSigningData {
	in := is.availableInputs[i]
	last := len(is.availableInputs) - 1
	is.availableInputs[i] = is.availableInputs[last]
	is.availableInputs = is.availableInputs[:last]
	return in
}

// selectInput finalizes one chosen input: synthesizes its transition
// output (if any), enqueues any alias/NFT address requirements its unlock
// conditions induce, then records it as selected.
func (is *InputSelection) selectInput(in InputSigningData) error {
	is.logger.Debug("selecting input", zap.String("outputID", in.OutputID.String()))

	successor, err := is.transitionInput(in)
	if err != nil {
		return err
	}
	if successor != nil {
		is.outputs = append(is.outputs, successor)
	}

	if req, ok := is.requiredAliasOrNftAddress(in); ok {
		is.logger.Debug("enqueuing induced requirement", zap.String("requirement", req.String()), zap.String("outputID", in.OutputID.String()))
		is.requirements.push(req)
	}

	is.selectedInputs = append(is.selectedInputs, in)
	return nil
}

// requiredAliasOrNftAddress inspects the input's effective unlocker; if it
// is itself an alias or NFT address, that chain must also be unlocked in
// this transaction, so a follow-up requirement is returned.
func (is *InputSelection) requiredAliasOrNftAddress(in InputSigningData) (Requirement, bool) {
	var transitionHint *AliasTransition
	if in.Output.IsAlias() {
		t := is.inferAliasTransition(in)
		transitionHint = &t
	}

	addr, _, err := requiredAndUnlockedAddress(in.Output, is.timestamp, in.OutputID, transitionHint)
	if err != nil {
		return Requirement{}, false
	}

	switch addr.Kind {
	case iotago.AddressAlias:
		return AliasRequirement(addr.Alias, AliasTransitionState), true
	case iotago.AddressNft:
		return NftRequirement(addr.Nft), true
	default:
		return Requirement{}, false
	}
}

// inferAliasTransition decides whether the consumption of an alias input
// is a State or Governance transition by inspecting the outputs the caller
// (or a prior fulfiller) already queued: if a successor with the same
// alias id advances state_index, it's State; otherwise (same or lower
// state_index) it's Governance, without comparing controllers. Absent a
// successor, State is assumed, since the transition synthesizer will create
// a State successor.
func (is *InputSelection) inferAliasTransition(in InputSigningData) AliasTransition {
	aliasID := in.Output.AliasIDNonNull(in.OutputID)
	for _, out := range is.outputs {
		if !out.IsAlias() || out.AliasID != aliasID {
			continue
		}
		if out.StateIndex > in.Output.StateIndex {
			return AliasTransitionState
		}
		return AliasTransitionGovernance
	}
	return AliasTransitionState
}
