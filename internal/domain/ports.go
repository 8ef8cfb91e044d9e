package domain

import (
	"context"
	"net/url"
)

// DealerClient talks to the remote dealer service. Implementations are
// stateless and safe for concurrent reuse across in-flight requests.
type DealerClient interface {
	// Fetch GETs endpoint with the given query parameters and decodes the JSON
	// body into out. Query values equal to StateAll are omitted entirely. A
	// non-nil cred is forwarded on the outbound request.
	Fetch(ctx context.Context, endpoint string, query url.Values, cred *Credential, out any) error

	// Submit POSTs body as JSON to endpoint and decodes the response into out.
	Submit(ctx context.Context, endpoint string, body any, out any) error
}

// SentimentClient classifies review text. It never fails: any transport or
// parse problem yields SentimentNeutral.
type SentimentClient interface {
	Classify(ctx context.Context, text string) Sentiment
}

// CatalogSeed pairs a make with its model rows for the one-time seed.
type CatalogSeed struct {
	Make   CarMake
	Models []CarModel
}

type CarRepository interface {
	CountMakes(ctx context.Context) (int, error)
	// SeedCatalog is idempotent: concurrent first reads must not double-insert.
	SeedCatalog(ctx context.Context, seeds []CatalogSeed) error
	ListCars(ctx context.Context) ([]CarEntry, error)
}

type UserRepository interface {
	// CreateUser returns ErrDuplicateUser when the username is taken.
	CreateUser(ctx context.Context, u User) (int64, error)
	// GetUserByUsername returns ErrNotFound for unknown accounts.
	GetUserByUsername(ctx context.Context, username string) (User, error)
}

// SessionStore owns session tokens between requests. Tokens expire server-side.
type SessionStore interface {
	Create(ctx context.Context, username string) (string, error)
	Get(ctx context.Context, token string) (string, bool, error)
	Delete(ctx context.Context, token string) error
}
