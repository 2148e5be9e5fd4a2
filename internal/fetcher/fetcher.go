package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"dealer-site/internal/platform/models"
)

// Fetcher performs the authenticated fetch against the inventory API.
type Fetcher struct {
	client    *http.Client
	url       string
	username  string
	password  string
	userAgent string
}

// NewFetcher returns new Fetcher.
func NewFetcher(client *http.Client, url, username, password, userAgent string) *Fetcher {
	return &Fetcher{
		client:    client,
		url:       url,
		username:  username,
		password:  password,
		userAgent: userAgent,
	}
}

// FetchListings fetches the current raw listings. A non-nil error means
// upstream could not be reached or served garbage, which is distinct from an
// empty result: the API legitimately serving zero listings returns an empty
// slice and no error.
func (f *Fetcher) FetchListings(ctx context.Context) ([]models.RawListing, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("can't build http request: %w", err)
	}

	req.Header.Add("Accept", "application/json")
	req.Header.Add("User-Agent", f.userAgent)
	req.SetBasicAuth(f.username, f.password)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("can't get http response: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrStatusNotOK
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("can't read response body: %w", err)
	}

	return decodeListings(body)
}

// decodeListings normalizes the response shapes the API serves: a bare array
// of listings, or an object keyed by "listings" or "vehicles" where the first
// non-empty key wins. Any other valid JSON carries no listings.
func decodeListings(body []byte) ([]models.RawListing, error) {
	var listings []models.RawListing
	if err := json.Unmarshal(body, &listings); err == nil {
		return listings, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		if !json.Valid(body) {
			return nil, fmt.Errorf("can't decode response body: %w", err)
		}
		return []models.RawListing{}, nil
	}

	for _, key := range []string{"listings", "vehicles"} {
		raw, ok := envelope[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, &listings); err != nil {
			return nil, fmt.Errorf("can't decode %q key: %w", key, err)
		}
		if len(listings) > 0 {
			return listings, nil
		}
	}

	return []models.RawListing{}, nil
}
