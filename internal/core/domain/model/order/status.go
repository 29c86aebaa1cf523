package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct processing workflow.
//
// State transitions:
//
//	Received ──> Processing ──┬──> Processed
//	    ^             │  ^    │
//	    │             └──┘    └──> Failed ──┐
//	    │     (re-drive allowed)            │
//	    └───────────────────────────────────┘
//	              (explicit reprocess)
//
// Processed and Failed are terminal: no processing transition leaves them
// except the explicit Reset of a Failed order back to Received.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Received is the initial status assigned at order intake.
	// Orders in this status are waiting to be processed.
	Received

	// Processing indicates the pipeline has picked the order up.
	// An order left in this status after a processing attempt is partially
	// assigned and awaits a follow-up pass for its remaining items.
	Processing

	// Processed indicates every item was assigned a distribution center.
	// Terminal.
	Processed

	// Failed indicates processing could not assign any item, or an
	// unrecoverable error occurred. Terminal until explicitly reset.
	Failed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Received:   "RECEIVED",
		Processing: "PROCESSING",
		Processed:  "PROCESSED",
		Failed:     "FAILED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Received:   "RECEIVED",
		Processing: "PROCESSING",
		Processed:  "PROCESSED",
		Failed:     "FAILED",
	}
}

// StatusFromString parses the string form produced by String.
// Returns an error for unrecognized input.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are Received, Processing, Processed, and Failed.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the uppercase name of the status.
// Implements the fmt.Stringer interface and is safe to call on any Status
// value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status is a final processing outcome.
// Terminal orders are not picked up by the pipeline again without an explicit
// reset.
func (s Status) IsTerminal() bool {
	return s == Processed || s == Failed
}

// StartProcessing transitions the status to Processing.
//
// Valid transitions:
//   - Received -> Processing (initial pickup)
//   - Processing -> Processing (re-drive of a partially assigned order)
//
// Returns an error if the transition is not allowed from the current status.
func (s Status) StartProcessing() (Status, error) {
	if s != Received && s != Processing {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to start processing", s))
	}

	return Processing, nil
}

// Complete transitions the status to Processed.
// Only valid from Processing.
func (s Status) Complete() (Status, error) {
	if s != Processing {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to complete", s))
	}

	return Processed, nil
}

// Fail transitions the status to Failed.
// Valid from Received and Processing; a mid-pipeline failure must always be
// able to leave the order in a queryable terminal state.
func (s Status) Fail() (Status, error) {
	if s != Received && s != Processing {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to fail", s))
	}

	return Failed, nil
}

// Reset transitions the status back to Received for reprocessing.
// Only valid from Failed.
func (s Status) Reset() (Status, error) {
	if s != Failed {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to reset", s))
	}

	return Received, nil
}
