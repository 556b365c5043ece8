package webhook

// --- Microsoft Teams Payload Types (legacy MessageCard) ---
// Field order is significant: it fixes the key order of the serialized card.

// Fixed MessageCard discriminators.
const (
	messageCardType    = "MessageCard"
	messageCardContext = "http://schema.org/extensions"
)

// defaultSummary is used for summary and text when no message was supplied.
const defaultSummary = "Summary"

// MessageCard is the top-level structure for Teams incoming webhook cards.
type MessageCard struct {
	Type       string               `json:"@type"`    // "MessageCard"
	Context    string               `json:"@context"` // "http://schema.org/extensions"
	ThemeColor string               `json:"themeColor"`
	Summary    string               `json:"summary"`
	Sections   []MessageCardSection `json:"sections"`
}

// MessageCardSection is a single section of a MessageCard.
type MessageCardSection struct {
	ActivityTitle string `json:"activityTitle"`
	Text          string `json:"text"`
	Facts         []Fact `json:"facts"`
}

// Fact is a name/value pair rendered as a row in a card section.
type Fact struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// DeliveryResult describes the webhook's answer to a single POST.
type DeliveryResult struct {
	DeliveryID string
	StatusCode int
	Body       []byte
}

// OK reports whether the webhook answered with a 2xx status.
func (r *DeliveryResult) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
