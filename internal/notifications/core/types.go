// Package core provides the notification pieces that do not depend on the
// delivery platform: reading the validation outcome out of an SNS message
// and recording delivery telemetry.
package core

import (
	"errors"
	"fmt"
)

// Theme colors for the rendered card.
const (
	// ColorFailure is used when the outcome is exactly OutcomeFailure.
	ColorFailure = "#ff0000"
	// ColorSuccess is used for every other outcome value.
	ColorSuccess = "#008000"
)

// OutcomeFailure is the only outcome value rendered with ColorFailure.
// The comparison is case sensitive: "failure" or "Failure" render green.
const OutcomeFailure = "FAILURE"

// SNS message attribute names published by the validation service.
const (
	AttrOutcome = "outcome"
	AttrFormat  = "format"
	AttrRefID   = "refid"
	AttrService = "service"
	AttrMessage = "message"
)

// ErrMissingAttribute is the sentinel wrapped by MissingAttributeError.
var ErrMissingAttribute = errors.New("missing required message attribute")

// MissingAttributeError reports a required attribute that was absent from the
// event, or present without a Value.
type MissingAttributeError struct {
	Name string
}

// Error implements the error interface.
func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("%v: %q", ErrMissingAttribute, e.Name)
}

// Unwrap returns ErrMissingAttribute for use with errors.Is.
func (e *MissingAttributeError) Unwrap() error {
	return ErrMissingAttribute
}

// Attributes is the validation outcome extracted from one SNS message.
type Attributes struct {
	// Color is the card theme color derived from the raw outcome.
	Color   string
	Format  string
	RefID   string
	Service string
	// Outcome is the lower-cased outcome, used for display.
	Outcome string
	// Message is the optional human readable detail. Empty when absent.
	Message string
}
