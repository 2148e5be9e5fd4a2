package server

import (
	"net/http"

	"dealer-site/internal/platform/models"

	"github.com/labstack/echo/v4"
)

// homePageListings caps how many of the newest listings the home page shows.
const homePageListings = 6

type pageData struct {
	Title    string
	Listings []models.Listing
	Listing  *models.Listing
}

func (s *Server) home(c echo.Context) error {
	listings := s.listings.Listings(c.Request().Context())
	if len(listings) > homePageListings {
		listings = listings[:homePageListings]
	}

	return c.Render(http.StatusOK, "index.html", pageData{
		Title:    "Home",
		Listings: listings,
	})
}

func (s *Server) inventory(c echo.Context) error {
	return c.Render(http.StatusOK, "inventory.html", pageData{
		Title:    "Inventory",
		Listings: s.listings.Listings(c.Request().Context()),
	})
}

func (s *Server) listing(c echo.Context) error {
	listing, ok := s.listings.ListingByID(c.Request().Context(), c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "listing not found")
	}

	return c.Render(http.StatusOK, "listing.html", pageData{
		Title:   listing.Make + " " + listing.Model,
		Listing: listing,
	})
}

func (s *Server) gallery(c echo.Context) error {
	return c.Render(http.StatusOK, "gallery.html", pageData{
		Title:    "Gallery",
		Listings: s.listings.Listings(c.Request().Context()),
	})
}

func (s *Server) staticPage(name, title string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Render(http.StatusOK, name, pageData{Title: title})
	}
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
