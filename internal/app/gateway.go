package app

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"dealerhub/internal/domain"
)

// GatewayService fans inbound requests out to the dealer and sentiment
// services, merges the results, and owns the lazy car-catalog seed. It holds
// no per-request state; any number of requests may run through it at once.
type GatewayService struct {
	dealers     domain.DealerClient
	sentiments  domain.SentimentClient
	cars        domain.CarRepository
	seeds       []domain.CatalogSeed
	workers     int
	requireAuth bool
}

func NewGatewayService(dc domain.DealerClient, sc domain.SentimentClient, cars domain.CarRepository, seeds []domain.CatalogSeed, workers int, requireAuth bool) *GatewayService {
	if workers <= 0 {
		workers = 8
	}
	return &GatewayService{
		dealers:     dc,
		sentiments:  sc,
		cars:        cars,
		seeds:       seeds,
		workers:     workers,
		requireAuth: requireAuth,
	}
}

// ListDealers fetches all dealerships, or the ones in a single state when the
// filter is neither empty nor the "All" sentinel. In authenticated-only mode
// an absent credential fails fast without touching the downstream.
func (s *GatewayService) ListDealers(ctx context.Context, state string, cred *domain.Credential) ([]domain.Dealership, error) {
	if s.requireAuth && cred == nil {
		return nil, domain.ErrUnauthenticated
	}
	endpoint := "/fetchDealers"
	if state != "" && state != domain.StateAll {
		endpoint += "/" + url.PathEscape(state)
	}
	var out []domain.Dealership
	if err := s.dealers.Fetch(ctx, endpoint, nil, cred, &out); err != nil {
		log.Error().Err(err).Str("state", state).Msg("fetch dealerships failed")
		return nil, err
	}
	if len(out) == 0 {
		return nil, domain.MalformedBody("dealer service returned no dealerships")
	}
	return out, nil
}

// GetDealer fetches a single dealership by id.
func (s *GatewayService) GetDealer(ctx context.Context, id int64) (domain.Dealership, error) {
	var out domain.Dealership
	if err := s.dealers.Fetch(ctx, fmt.Sprintf("/fetchDealer/%d", id), nil, nil, &out); err != nil {
		log.Error().Err(err).Int64("dealer_id", id).Msg("fetch dealer failed")
		return nil, err
	}
	if len(out) == 0 {
		return nil, domain.ErrNotFound
	}
	return out, nil
}

// ListDealerReviews fetches a dealer's reviews and attaches a sentiment label
// to each. Lookups run concurrently under a bounded semaphore but the output
// keeps the downstream order; a failed lookup labels that one review neutral
// and never fails the operation.
func (s *GatewayService) ListDealerReviews(ctx context.Context, id int64) ([]domain.Review, error) {
	var reviews []domain.Review
	if err := s.dealers.Fetch(ctx, fmt.Sprintf("/fetchReviews/dealer/%d", id), nil, nil, &reviews); err != nil {
		log.Error().Err(err).Int64("dealer_id", id).Msg("fetch reviews failed")
		return nil, err
	}
	if len(reviews) == 0 {
		return nil, domain.ErrNotFound
	}

	sem := semaphore.NewWeighted(int64(s.workers))
	var wg sync.WaitGroup
	for i := range reviews {
		if err := sem.Acquire(ctx, 1); err != nil {
			// caller went away; label the rest neutral and stop fanning out
			for ; i < len(reviews); i++ {
				reviews[i]["sentiment"] = string(domain.SentimentNeutral)
			}
			break
		}
		wg.Add(1)
		go func(r domain.Review) {
			defer wg.Done()
			defer sem.Release(1)
			r["sentiment"] = string(s.sentiments.Classify(ctx, r.Text()))
		}(reviews[i])
	}
	wg.Wait()
	return reviews, nil
}

// SubmitReview forwards a caller-authored review verbatim to the dealer
// service. The caller must hold a live session.
func (s *GatewayService) SubmitReview(ctx context.Context, cred *domain.Credential, payload domain.ReviewPayload) (map[string]any, error) {
	if cred == nil {
		return nil, domain.ErrUnauthenticated
	}
	var resp map[string]any
	if err := s.dealers.Submit(ctx, "/insert_review", payload, &resp); err != nil {
		log.Error().Err(err).Msg("submit review failed")
		return nil, err
	}
	return resp, nil
}

// ListCars reads the local catalog, seeding it from the fixture on first use.
func (s *GatewayService) ListCars(ctx context.Context) ([]domain.CarEntry, error) {
	n, err := s.cars.CountMakes(ctx)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		if err := s.cars.SeedCatalog(ctx, s.seeds); err != nil {
			return nil, err
		}
		log.Info().Msg("car catalog seeded")
	}
	return s.cars.ListCars(ctx)
}
