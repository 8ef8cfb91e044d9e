package sentiment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"dealerhub/internal/adapters/observability"
	"dealerhub/internal/domain"
)

// Client calls the sentiment analyzer. Enrichment is best-effort: every
// failure path falls back to neutral so a slow or broken analyzer can never
// block a review listing.
type Client struct {
	base string
	hc   *http.Client
}

func New(base string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: timeout},
	}
}

func (c *Client) Classify(ctx context.Context, text string) domain.Sentiment {
	// the text rides in a path segment, so it must be path-escaped
	u := c.base + "/analyze/" + url.PathEscape(text)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return domain.SentimentNeutral
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("sentiment", "/analyze", 0, time.Since(start))
		log.Warn().Err(err).Msg("sentiment analyzer unreachable, defaulting to neutral")
		return domain.SentimentNeutral
	}
	defer resp.Body.Close()
	observability.ObserveExternal("sentiment", "/analyze", resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return domain.SentimentNeutral
	}
	var body struct {
		Sentiment string `json:"sentiment"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.SentimentNeutral
	}
	return domain.ParseSentiment(body.Sentiment)
}
