// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package selection

import (
	"errors"
	"fmt"

	"github.com/holiman/uint256"

	"github.com/iotaledger/iota.go/iotago"
)

var (
	ErrNoAvailableInputsProvided = errors.New("no available inputs provided")
	ErrNoOutputsProvided         = errors.New("no outputs provided")
	ErrNoChangeAddress           = errors.New("no possible change/remainder address")
	ErrUnknownOutputType         = errors.New("unknown output type")

	// errLocked and errTimelockNotExpired are internal: the driver filters
	// outputs that would trigger them out of the available pool before the
	// fulfillment loop runs, so they are never surfaced from Select.
	errLocked             = errors.New("output is timelocked")
	errTimelockNotExpired = errors.New("timelock not expired")
)

// RequiredInputIsForbiddenError reports that a caller-forced required input
// also appears in the forbidden set.
type RequiredInputIsForbiddenError struct {
	OutputID iotago.OutputID
}

func (e *RequiredInputIsForbiddenError) Error() string {
	return fmt.Sprintf("required input %s is forbidden", e.OutputID)
}

// RequiredInputIsNotAvailableError reports that a caller-forced required
// input is absent from the available pool.
type RequiredInputIsNotAvailableError struct {
	OutputID iotago.OutputID
}

func (e *RequiredInputIsNotAvailableError) Error() string {
	return fmt.Sprintf("required input %s is not available", e.OutputID)
}

// UnfulfillableRequirementError reports that no available input can
// satisfy a chain/sender/issuer requirement.
type UnfulfillableRequirementError struct {
	Requirement Requirement
}

func (e *UnfulfillableRequirementError) Error() string {
	return fmt.Sprintf("unfulfillable requirement: %s", e.Requirement)
}

// NotEnoughBalanceError reports an unrecoverable base-token deficit after
// exhausting the available pool.
type NotEnoughBalanceError struct {
	Found    uint64
	Required uint64
}

func (e *NotEnoughBalanceError) Error() string {
	return fmt.Sprintf("not enough balance: found %d, required %d", e.Found, e.Required)
}

// NotEnoughNativeTokensError reports an unrecoverable per-token deficit.
type NotEnoughNativeTokensError struct {
	TokenID  iotago.TokenID
	Found    *uint256.Int
	Required *uint256.Int
}

func (e *NotEnoughNativeTokensError) Error() string {
	return fmt.Sprintf("not enough native tokens %s: found %s, required %s", e.TokenID, e.Found, e.Required)
}

// ErrNoBalanceForNativeTokenRemainder reports that a native-token surplus
// exists but there is no base-token budget left for the remainder output
// that would have to carry it.
var ErrNoBalanceForNativeTokenRemainder = errors.New("no balance left for native token remainder")

// InvalidStorageDepositAmountError reports a produced output (including a
// remainder) falling below its storage-deposit minimum with no way left to
// top it up.
type InvalidStorageDepositAmountError struct {
	Amount   uint64
	Required uint64
}

func (e *InvalidStorageDepositAmountError) Error() string {
	return fmt.Sprintf("invalid storage deposit amount: have %d, required %d", e.Amount, e.Required)
}

// ConsolidationRequiredError reports that the selected-input count would
// exceed the protocol's per-transaction maximum.
type ConsolidationRequiredError struct {
	MaxInputs int
}

func (e *ConsolidationRequiredError) Error() string {
	return fmt.Sprintf("consolidation required: selection exceeds the maximum of %d inputs", e.MaxInputs)
}
