package normalizer

import (
	"fmt"
	"strings"

	"dealer-site/internal/platform/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Field defaults for records the upstream API serves incomplete.
const (
	defaultMake        = "Unknown"
	defaultModel       = "Model"
	defaultYear        = "N/A"
	defaultColour      = "Unknown"
	defaultLocation    = "South Africa"
	defaultDescription = "No description available."
)

// Option is custom configuration of Normalizer.
type Option func(n *Normalizer)

// Normalizer maps raw upstream records into canonical listings.
type Normalizer struct {
	clock Clock
}

// NewNormalizer returns new Normalizer.
func NewNormalizer(ops ...Option) *Normalizer {
	nor := &Normalizer{
		clock: systemClock{},
	}

	for _, op := range ops {
		op(nor)
	}

	return nor
}

// Normalize maps one raw record into a Listing. It never fails: every
// missing or malformed field degrades to its default, so the result always
// carries usable Price and CreatedTimestamp sort keys.
func (n Normalizer) Normalize(raw models.RawListing) models.Listing {
	makeName := titleCase(defaultString(raw.Make, defaultMake))
	modelName := titleCase(defaultString(raw.Model, defaultModel))

	priceDisplay, price := FormatPrice(raw.Price)

	imageURLs := raw.ImageURLs
	if len(imageURLs) == 0 {
		imageURLs = []string{placeholderImageURL(makeName, modelName)}
	}

	createdTimestamp := n.clock.Timestamp()
	if raw.Created != "" {
		createdTimestamp = ParseCreated(raw.Created)
	}

	return models.Listing{
		ID:               stringify(raw.ID),
		Make:             makeName,
		Model:            modelName,
		Year:             yearString(raw.Year),
		PriceDisplay:     priceDisplay,
		Price:            price,
		Mileage:          FormatMileage(raw.MileageInKm),
		ImageURLs:        imageURLs,
		Variant:          raw.Variant,
		BodyType:         raw.BodyType,
		Engine:           raw.Engine,
		Colour:           defaultString(raw.Colour, defaultColour),
		Location:         defaultString(raw.Location, defaultLocation),
		Description:      strings.ReplaceAll(defaultString(raw.Description, defaultDescription), "\r", ""),
		Created:          raw.Created,
		CreatedTimestamp: createdTimestamp,
	}
}

// WithClock sets Normalizer's custom Clock.
func WithClock(c Clock) Option {
	return func(n *Normalizer) {
		n.clock = c
	}
}

func titleCase(value string) string {
	return cases.Title(language.English).String(value)
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func stringify(value any) string {
	if value == nil {
		return ""
	}
	return fmt.Sprint(value)
}

func yearString(value any) string {
	if value == nil {
		return defaultYear
	}
	return fmt.Sprint(value)
}

func placeholderImageURL(makeName, modelName string) string {
	return fmt.Sprintf(
		"https://source.unsplash.com/random/800x600/?car,%s+%s",
		strings.ToLower(makeName),
		strings.ToLower(modelName),
	)
}
