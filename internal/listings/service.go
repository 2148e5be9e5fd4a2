package listings

import (
	"cmp"
	"context"
	"slices"

	"dealer-site/internal/platform/models"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

//go:generate mockery --name Cache --filename cache.go
//go:generate mockery --name Fetcher --filename fetcher.go

// Cache is the snapshot store for raw upstream data.
type Cache interface {
	// Read returns the cached snapshot if it is still fresh.
	Read() (*models.Snapshot, bool)
	// ReadStale returns the last written raw data regardless of age.
	ReadStale() ([]models.RawListing, bool)
	// Write persists a new snapshot, best effort.
	Write(data []models.RawListing)
}

// Fetcher fetches raw listings from the inventory API.
type Fetcher interface {
	FetchListings(ctx context.Context) ([]models.RawListing, error)
}

// Normalizer maps raw records into canonical listings.
type Normalizer interface {
	Normalize(raw models.RawListing) models.Listing
}

// Service orchestrates cache, upstream fetch and normalization into the
// listing sequence the web layer renders.
type Service struct {
	cache      Cache
	fetcher    Fetcher
	normalizer Normalizer
	logger     *zerolog.Logger
}

// NewService returns new Service.
func NewService(cache Cache, fetcher Fetcher, normalizer Normalizer, logger *zerolog.Logger) *Service {
	return &Service{
		cache:      cache,
		fetcher:    fetcher,
		normalizer: normalizer,
		logger:     logger,
	}
}

// Listings returns the current normalized listings, newest first. It never
// fails: upstream or cache trouble degrades to stale data or an empty slice.
func (s *Service) Listings(ctx context.Context) []models.Listing {
	raw := s.rawListings(ctx)

	listings := lo.Map(raw, func(listing models.RawListing, _ int) models.Listing {
		return s.normalizer.Normalize(listing)
	})

	slices.SortStableFunc(listings, func(a, b models.Listing) int {
		return cmp.Compare(b.CreatedTimestamp, a.CreatedTimestamp)
	})

	return listings
}

// ListingByID finds one listing by id in the current set, falling back to a
// direct upstream fetch when the id is not in the cached set.
func (s *Service) ListingByID(ctx context.Context, id string) (*models.Listing, bool) {
	for _, listing := range s.Listings(ctx) {
		if listing.ID == id {
			return &listing, true
		}
	}

	raw, err := s.fetcher.FetchListings(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Str("id", id).Msg("can't fetch listing from upstream")
		return nil, false
	}

	for _, item := range raw {
		listing := s.normalizer.Normalize(item)
		if listing.ID == id {
			return &listing, true
		}
	}

	return nil, false
}

// rawListings runs the fetch-or-cache-or-stale-fallback flow.
func (s *Service) rawListings(ctx context.Context) []models.RawListing {
	if snapshot, ok := s.cache.Read(); ok {
		s.logger.Debug().Int("listings", len(snapshot.Data)).Msg("using cached data")
		return snapshot.Data
	}

	raw, err := s.fetcher.FetchListings(ctx)
	if err == nil {
		s.cache.Write(raw)
		return raw
	}

	s.logger.Warn().Err(err).Msg("can't fetch listings from upstream")

	if stale, ok := s.cache.ReadStale(); ok {
		s.logger.Warn().Int("listings", len(stale)).Msg("serving stale cache after fetch failure")
		return stale
	}

	s.logger.Error().Msg("no cache available, serving empty inventory")

	return nil
}
