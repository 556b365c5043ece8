package webhook

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// TeamsFormatter renders validation notifications as Teams MessageCards.
type TeamsFormatter struct{}

// ValidationFacts returns the card facts in their fixed display order:
// Service, Outcome, Format, RefID.
func ValidationFacts(service, outcome, format, refID string) []Fact {
	return []Fact{
		{Name: "Service", Value: service},
		{Name: "Outcome", Value: outcome},
		{Name: "Format", Value: format},
		{Name: "RefID", Value: refID},
	}
}

// Format renders a MessageCard and returns its JSON encoding, ready to be
// used as an HTTP body. It is pure: equal inputs give byte-identical output.
//
// summary and text both carry message, or "Summary" when message is empty.
// Facts are emitted in the order given.
func (f *TeamsFormatter) Format(color, title, message string, facts []Fact) ([]byte, error) {
	summary := message
	if summary == "" {
		summary = defaultSummary
	}
	if facts == nil {
		facts = []Fact{}
	}

	card := MessageCard{
		Type:       messageCardType,
		Context:    messageCardContext,
		ThemeColor: color,
		Summary:    summary,
		Sections: []MessageCardSection{
			{
				ActivityTitle: title,
				Text:          summary,
				Facts:         facts,
			},
		},
	}

	// Titles and messages are sent verbatim; json.Marshal would rewrite
	// '<', '>' and '&' as \u escapes.
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(card); err != nil {
		return nil, fmt.Errorf("teams formatter: %w", err)
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// ValidateResponse checks the Teams webhook response. Legacy connectors
// answer 200 with body "1"; Power Automate workflows answer 202.
func (f *TeamsFormatter) ValidateResponse(statusCode int, body []byte) error {
	if statusCode >= 200 && statusCode < 300 {
		return nil
	}
	return fmt.Errorf("teams: unexpected status %d: %s", statusCode, truncateBody(body))
}

// truncateBody returns a truncated version of the response body for error messages.
func truncateBody(body []byte) string {
	const maxLen = 200
	if len(body) > maxLen {
		return string(body[:maxLen]) + "..."
	}
	return string(body)
}
