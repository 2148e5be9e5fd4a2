package server

import (
	"context"
	"fmt"
	"net/http"

	"dealer-site/internal/platform/models"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// Listings provides normalized listings for page rendering.
type Listings interface {
	// Listings returns the current listings, newest first.
	Listings(ctx context.Context) []models.Listing
	// ListingByID finds one listing by its id.
	ListingByID(ctx context.Context, id string) (*models.Listing, bool)
}

// Server renders the dealership pages.
type Server struct {
	echo     *echo.Echo
	listings Listings
	logger   *zerolog.Logger
}

// New returns new Server with all routes registered.
func New(listings Listings, logger *zerolog.Logger) (*Server, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("can't build renderer: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer

	srv := &Server{
		echo:     e,
		listings: listings,
		logger:   logger,
	}

	e.Use(RequestID())
	e.Use(LogRequest(logger))
	e.Use(middleware.Recover())

	e.GET("/", srv.home)
	e.GET("/inventory", srv.inventory)
	e.GET("/listing/:id", srv.listing)
	e.GET("/gallery", srv.gallery)
	e.GET("/about", srv.staticPage("about.html", "About Us"))
	e.GET("/contact", srv.staticPage("contact.html", "Contact Us"))
	e.GET("/finance", srv.staticPage("finance.html", "Vehicle Finance"))
	e.GET("/trade-in", srv.staticPage("trade_in.html", "Trade In"))
	e.GET("/health", srv.health)

	return srv, nil
}

// ServeHTTP lets the server act as a plain http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Start starts the HTTP server on address, blocking until shutdown.
func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
