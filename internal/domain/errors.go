package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrDuplicateUser      = errors.New("user already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingFields      = errors.New("missing username or password")
)

// FailureKind classifies why a downstream call produced no usable data.
type FailureKind string

const (
	KindBadStatus          FailureKind = "bad_status"
	KindMalformedBody      FailureKind = "malformed_body"
	KindNetworkUnavailable FailureKind = "network_unavailable"
)

// DownstreamError is the typed outcome of a failed dealer-service call.
// Clients convert every transport or parse failure into one of these; nothing
// escapes as a panic or an untyped error.
type DownstreamError struct {
	Kind       FailureKind
	StatusCode int // set for KindBadStatus
	Detail     string
}

func (e *DownstreamError) Error() string {
	if e.Kind == KindBadStatus {
		return fmt.Sprintf("dealer service: status %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("dealer service: %s: %s", e.Kind, e.Detail)
}

func BadStatus(code int, detail string) *DownstreamError {
	return &DownstreamError{Kind: KindBadStatus, StatusCode: code, Detail: detail}
}

func MalformedBody(detail string) *DownstreamError {
	return &DownstreamError{Kind: KindMalformedBody, Detail: detail}
}

func NetworkUnavailable(detail string) *DownstreamError {
	return &DownstreamError{Kind: KindNetworkUnavailable, Detail: detail}
}

// FailureKindOf extracts the failure kind from err, or "" if err is not a
// DownstreamError.
func FailureKindOf(err error) FailureKind {
	var de *DownstreamError
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}
