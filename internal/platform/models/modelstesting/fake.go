package modelstesting

import (
	"fmt"
	"math/rand"
	"time"

	"dealer-site/internal/platform/models"

	"github.com/go-faker/faker/v4"
)

// FakeRawListing returns models.RawListing with fake data.
func FakeRawListing(ops ...func(l *models.RawListing)) models.RawListing {
	listing := models.RawListing{
		ID:          faker.UUIDHyphenated(),
		Make:        faker.Word(),
		Model:       faker.Word(),
		Year:        float64(1990 + rand.Intn(35)),
		Location:    faker.Word(),
		Colour:      faker.Word(),
		Description: faker.Sentence(),
		Variant:     faker.Word(),
		BodyType:    faker.Word(),
		Engine:      faker.Word(),
		Price:       fmt.Sprintf("%d,00", 10000+rand.Intn(1000000)),
		MileageInKm: float64(rand.Intn(300000)),
		ImageURLs:   fakeImageURLs(),
		Created:     time.Unix(rand.Int63n(1700000000), 0).UTC().Format(time.RFC3339),
	}

	for _, op := range ops {
		op(&listing)
	}

	return listing
}

// FakeListing returns models.Listing with fake data.
func FakeListing(ops ...func(l *models.Listing)) models.Listing {
	listing := models.Listing{
		ID:               faker.UUIDHyphenated(),
		Make:             faker.Word(),
		Model:            faker.Word(),
		Year:             fmt.Sprint(1990 + rand.Intn(35)),
		PriceDisplay:     "R" + faker.Word(),
		Price:            float64(rand.Intn(1000000)),
		Mileage:          faker.Word(),
		ImageURLs:        fakeImageURLs(),
		Variant:          faker.Word(),
		BodyType:         faker.Word(),
		Engine:           faker.Word(),
		Colour:           faker.Word(),
		Location:         faker.Word(),
		Description:      faker.Sentence(),
		Created:          time.Unix(rand.Int63n(1700000000), 0).UTC().Format(time.RFC3339),
		CreatedTimestamp: float64(rand.Int63n(1700000000)),
	}

	for _, op := range ops {
		op(&listing)
	}

	return listing
}

func fakeImageURLs() []string {
	urlsLen := 1 + rand.Intn(4)
	urls := make([]string, 0, urlsLen)
	for i := 0; i < urlsLen; i++ {
		urls = append(urls, faker.URL())
	}

	return urls
}
