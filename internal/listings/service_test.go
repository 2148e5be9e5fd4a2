package listings_test

import (
	"context"
	"testing"

	"dealer-site/internal/listings"
	"dealer-site/internal/listings/mocks"
	"dealer-site/internal/normalizer"
	"dealer-site/internal/platform/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = float64(1720000000)

type fakeClock struct {
	timestamp float64
}

func (c fakeClock) Timestamp() float64 {
	return c.timestamp
}

// reusable test data, ordered oldest first so sorting is observable
var rawData = []models.RawListing{
	{ID: "old", Make: "audi", Created: "2023-01-01T00:00:00Z"},
	{ID: "mid", Make: "bmw", Created: "2024-01-01T00:00:00Z"},
	{ID: "new", Make: "ford", Created: "2024-06-01T00:00:00Z"},
}

func newService(t *testing.T) (*listings.Service, *mocks.Cache, *mocks.Fetcher) {
	t.Helper()

	cacheMock := mocks.NewCache(t)
	fetcherMock := mocks.NewFetcher(t)
	logger := zerolog.Nop()

	service := listings.NewService(
		cacheMock,
		fetcherMock,
		normalizer.NewNormalizer(normalizer.WithClock(fakeClock{timestamp: now})),
		&logger,
	)

	return service, cacheMock, fetcherMock
}

func TestUnitListingsFreshCache(t *testing.T) {
	service, cacheMock, _ := newService(t)

	cacheMock.On("Read").Return(&models.Snapshot{Timestamp: now, Data: rawData}, true).Once()

	got := service.Listings(context.TODO())

	// upstream fetch must not happen: the fetcher mock has no expectations
	require.Len(t, got, 3, "should return all cached listings")
	assert.Equal(t, []string{"new", "mid", "old"}, ids(got), "should sort newest first")
}

func TestUnitListingsCacheMissFetchOK(t *testing.T) {
	service, cacheMock, fetcherMock := newService(t)

	cacheMock.On("Read").Return(nil, false).Once()
	fetcherMock.On("FetchListings", mock.Anything).Return(rawData, nil).Once()
	cacheMock.On("Write", rawData).Once()

	got := service.Listings(context.TODO())

	require.Len(t, got, 3, "should return all fetched listings")
	assert.Equal(t, []string{"new", "mid", "old"}, ids(got), "should sort newest first")
}

func TestUnitListingsStaleFallback(t *testing.T) {
	service, cacheMock, fetcherMock := newService(t)

	cacheMock.On("Read").Return(nil, false).Once()
	fetcherMock.On("FetchListings", mock.Anything).Return(nil, assert.AnError).Once()
	cacheMock.On("ReadStale").Return(rawData, true).Once()

	got := service.Listings(context.TODO())

	require.Len(t, got, 3, "should serve stale listings after fetch failure")
	assert.Equal(t, []string{"new", "mid", "old"}, ids(got), "should sort newest first")
}

func TestUnitListingsFullyDegraded(t *testing.T) {
	service, cacheMock, fetcherMock := newService(t)

	cacheMock.On("Read").Return(nil, false).Once()
	fetcherMock.On("FetchListings", mock.Anything).Return(nil, assert.AnError).Once()
	cacheMock.On("ReadStale").Return(nil, false).Once()

	got := service.Listings(context.TODO())

	assert.Empty(t, got, "should degrade to an empty result set without failing")
}

func TestUnitListingsSortIsStable(t *testing.T) {
	service, cacheMock, _ := newService(t)

	data := []models.RawListing{
		{ID: "a", Created: "2024-01-01T00:00:00Z"},
		{ID: "b", Created: "2024-01-01T00:00:00Z"},
		{ID: "c", Created: "2024-06-01T00:00:00Z"},
		{ID: "d", Created: "2024-01-01T00:00:00Z"},
		{ID: "e"}, // absent created sorts as "now", newest of all
	}

	cacheMock.On("Read").Return(&models.Snapshot{Timestamp: now, Data: data}, true).Once()

	got := service.Listings(context.TODO())

	assert.Equal(t, []string{"e", "c", "a", "b", "d"}, ids(got),
		"equal timestamps should keep original relative order",
	)

	for ix := 1; ix < len(got); ix++ {
		assert.GreaterOrEqual(t, got[ix-1].CreatedTimestamp, got[ix].CreatedTimestamp,
			"timestamps should be non-increasing",
		)
	}
}

func TestUnitListingByID(t *testing.T) {
	t.Run("found in cached set", func(t *testing.T) {
		service, cacheMock, _ := newService(t)

		cacheMock.On("Read").Return(&models.Snapshot{Timestamp: now, Data: rawData}, true).Once()

		got, ok := service.ListingByID(context.TODO(), "mid")

		require.True(t, ok, "should find listing by id")
		assert.Equal(t, "Bmw", got.Make, "should return the normalized listing")
	})

	t.Run("not cached, found upstream", func(t *testing.T) {
		service, cacheMock, fetcherMock := newService(t)

		cacheMock.On("Read").Return(&models.Snapshot{Timestamp: now, Data: rawData}, true).Once()
		fetcherMock.On("FetchListings", mock.Anything).
			Return([]models.RawListing{{ID: "fresh", Make: "kia"}}, nil).
			Once()

		got, ok := service.ListingByID(context.TODO(), "fresh")

		require.True(t, ok, "should find listing via direct upstream fetch")
		assert.Equal(t, "Kia", got.Make, "should return the normalized listing")
	})

	t.Run("not found anywhere", func(t *testing.T) {
		service, cacheMock, fetcherMock := newService(t)

		cacheMock.On("Read").Return(&models.Snapshot{Timestamp: now, Data: rawData}, true).Once()
		fetcherMock.On("FetchListings", mock.Anything).Return([]models.RawListing{}, nil).Once()

		_, ok := service.ListingByID(context.TODO(), "ghost")

		assert.False(t, ok, "should report listing as not found")
	})

	t.Run("not cached, upstream down", func(t *testing.T) {
		service, cacheMock, fetcherMock := newService(t)

		cacheMock.On("Read").Return(&models.Snapshot{Timestamp: now, Data: rawData}, true).Once()
		fetcherMock.On("FetchListings", mock.Anything).Return(nil, assert.AnError).Once()

		_, ok := service.ListingByID(context.TODO(), "ghost")

		assert.False(t, ok, "should degrade to not found, not an error")
	})
}

func ids(listings []models.Listing) []string {
	result := make([]string, 0, len(listings))
	for _, listing := range listings {
		result = append(result, listing.ID)
	}

	return result
}
