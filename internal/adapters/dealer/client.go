// internal/adapters/dealer/client.go
package dealer

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"dealerhub/internal/adapters/observability"
	"dealerhub/internal/domain"
)

// Client calls the remote dealer service. It is stateless and safe for
// concurrent use by any number of in-flight gateway requests. Failed calls
// come back as *domain.DownstreamError; there are no retries.
type Client struct {
	base string
	hc   *http.Client
	rl   *rate.Limiter
}

func New(base string, timeout time.Duration, rps int) *Client {
	if rps <= 0 {
		rps = 20
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: timeout},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}
}

func (c *Client) Fetch(ctx context.Context, endpoint string, query url.Values, cred *domain.Credential, out any) error {
	u := c.base + endpoint
	if qs := encodeQuery(query); qs != "" {
		u += "?" + qs
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return domain.NetworkUnavailable(err.Error())
	}
	if cred != nil {
		cred.Apply(req)
	}
	return c.do(req, endpoint, out)
}

func (c *Client) Submit(ctx context.Context, endpoint string, body any, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return domain.MalformedBody("encode request body: " + err.Error())
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+endpoint, bytes.NewReader(b))
	if err != nil {
		return domain.NetworkUnavailable(err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, endpoint, out)
}

func (c *Client) do(req *http.Request, endpoint string, out any) error {
	if err := c.rl.Wait(req.Context()); err != nil {
		return domain.NetworkUnavailable(err.Error())
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "dealerhub/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		// timeout and connection failure look the same to callers
		observability.ObserveExternal("dealer", endpoint, 0, time.Since(start))
		if req.Context().Err() != nil {
			return domain.NetworkUnavailable(req.Context().Err().Error())
		}
		return domain.NetworkUnavailable(err.Error())
	}
	defer resp.Body.Close()
	observability.ObserveExternal("dealer", endpoint, resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return domain.BadStatus(resp.StatusCode, strings.TrimSpace(string(b)))
	}
	// An auth redirect can hand back an HTML login page with status 200;
	// refuse to surface it as dealer data.
	if ct := resp.Header.Get("Content-Type"); ct != "" {
		if mt, _, err := mime.ParseMediaType(ct); err != nil || !isJSON(mt) {
			return domain.MalformedBody("unexpected content type " + ct)
		}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domain.MalformedBody("decode response: " + err.Error())
	}
	return nil
}

func isJSON(mediaType string) bool {
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

// encodeQuery builds the outgoing query string. Values equal to the "All"
// sentinel mean "no filter" and are dropped: the dealer service treats the
// literal as an unrecognized filter and returns nothing.
func encodeQuery(query url.Values) string {
	if len(query) == 0 {
		return ""
	}
	q := url.Values{}
	for k, vs := range query {
		for _, v := range vs {
			if v == domain.StateAll {
				continue
			}
			q.Add(k, v)
		}
	}
	return q.Encode()
}
