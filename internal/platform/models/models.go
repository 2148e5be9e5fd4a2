package models

// RawListing is one vehicle record as returned by the inventory API.
// No field is guaranteed to be present and some fields change type between
// responses (price arrives as string or number, year as number or string),
// so those stay untyped until normalization.
type RawListing struct {
	ID          any      `json:"id,omitempty"`
	Make        string   `json:"make,omitempty"`
	Model       string   `json:"model,omitempty"`
	Year        any      `json:"year,omitempty"`
	Location    string   `json:"location,omitempty"`
	Colour      string   `json:"colour,omitempty"`
	Description string   `json:"description,omitempty"`
	Variant     string   `json:"variant,omitempty"`
	BodyType    string   `json:"bodyType,omitempty"`
	Engine      string   `json:"engine,omitempty"`
	Price       any      `json:"price,omitempty"`
	MileageInKm any      `json:"mileageInKm,omitempty"`
	ImageURLs   []string `json:"imageUrls,omitempty"`
	Created     string   `json:"created,omitempty"`
}

// Listing is the canonical vehicle listing rendered by the web layer.
// Every Listing has usable Price and CreatedTimestamp sort keys even when
// the upstream record was missing or malformed.
type Listing struct {
	ID               string   `json:"id"`
	Make             string   `json:"make"`
	Model            string   `json:"model"`
	Year             string   `json:"year"`
	PriceDisplay     string   `json:"price_display"`
	Price            float64  `json:"price"`
	Mileage          string   `json:"mileage"`
	ImageURLs        []string `json:"image_urls"`
	Variant          string   `json:"variant"`
	BodyType         string   `json:"body_type"`
	Engine           string   `json:"engine"`
	Colour           string   `json:"colour"`
	Location         string   `json:"location"`
	Description      string   `json:"description"`
	Created          string   `json:"created"`
	CreatedTimestamp float64  `json:"created_timestamp"`
}

// Snapshot is one cached copy of the raw upstream data.
// It is written wholesale on every successful fetch and read on every request.
type Snapshot struct {
	Timestamp float64      `json:"timestamp"`
	Data      []RawListing `json:"data"`
}
