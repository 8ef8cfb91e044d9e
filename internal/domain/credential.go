package domain

import "net/http"

// SessionCookie is the cookie name carrying the session token between the
// front end and the gateway, and onward to the dealer service.
const SessionCookie = "sessionid"

// Credential is the caller's session token, forwarded verbatim to downstreams
// that act on the caller's behalf. The gateway holds it for a single request
// only. Both conversion schemes are applied on outbound calls because the
// dealer service's exact expectation is not pinned down.
type Credential struct {
	Token    string
	Username string
}

// AsCookie returns the credential in session-cookie form.
func (c Credential) AsCookie() *http.Cookie {
	return &http.Cookie{Name: SessionCookie, Value: c.Token}
}

// Apply sets both credential-passing schemes on an outbound request.
func (c Credential) Apply(req *http.Request) {
	req.AddCookie(c.AsCookie())
	req.Header.Set("Authorization", "Bearer "+c.Token)
}
