package core

import (
	"fmt"
	"strings"
)

// ParseAttributes reads the validation outcome from SNS message attributes.
//
// Each attribute arrives as a JSON object with at least a "Value" field, e.g.
//
//	"outcome": {"Type": "String", "Value": "FAILURE"}
//
// outcome, format, refid and service are required; a missing one returns a
// *MissingAttributeError. message is optional.
func ParseAttributes(attrs map[string]interface{}) (Attributes, error) {
	required := make(map[string]string, 4)
	for _, name := range []string{AttrOutcome, AttrFormat, AttrRefID, AttrService} {
		v, ok := attributeValue(attrs, name)
		if !ok {
			return Attributes{}, &MissingAttributeError{Name: name}
		}
		required[name] = v
	}

	message, _ := attributeValue(attrs, AttrMessage)

	outcome := required[AttrOutcome]
	return Attributes{
		Color:   colorFor(outcome),
		Format:  required[AttrFormat],
		RefID:   required[AttrRefID],
		Service: required[AttrService],
		Outcome: strings.ToLower(outcome),
		Message: message,
	}, nil
}

// colorFor compares against the literal OutcomeFailure. Any other value,
// including case variants, is success-colored.
func colorFor(outcome string) string {
	if outcome == OutcomeFailure {
		return ColorFailure
	}
	return ColorSuccess
}

// attributeValue returns the Value of the named attribute. The second result
// is false when the attribute is absent, is not an object, or has a null or
// missing Value.
func attributeValue(attrs map[string]interface{}, name string) (string, bool) {
	raw, ok := attrs[name]
	if !ok {
		return "", false
	}
	attr, ok := raw.(map[string]interface{})
	if !ok {
		return "", false
	}
	value, ok := attr["Value"]
	if !ok || value == nil {
		return "", false
	}
	if s, ok := value.(string); ok {
		return s, true
	}
	return fmt.Sprint(value), true
}
