package domain

import "encoding/json"

// Dealership records are owned by the remote dealer service; the gateway
// passes them through opaquely and never edits fields.
type Dealership map[string]any

// Review is the raw record from the dealer service plus the sentiment label
// attached during enrichment. Sentiment is derived on every fetch, never stored.
type Review map[string]any

// Text returns the free-text review body, or "" when absent.
func (r Review) Text() string {
	s, _ := r["review"].(string)
	return s
}

// Sentiment is the label attached to a review after enrichment.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// ParseSentiment maps a downstream label onto the known set, defaulting to
// neutral for anything unrecognized.
func ParseSentiment(s string) Sentiment {
	switch Sentiment(s) {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
		return Sentiment(s)
	}
	return SentimentNeutral
}

// ReviewPayload is a caller-submitted review forwarded verbatim to the dealer
// service. The schema is owned downstream; the gateway only requires it to be
// well-formed JSON.
type ReviewPayload = json.RawMessage

// StateAll is the sentinel meaning "no state filter". It must never reach the
// dealer service as a literal filter value.
const StateAll = "All"
