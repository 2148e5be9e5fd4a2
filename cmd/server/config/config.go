package config

import "time"

// Config holds application configuration.
type Config struct {
	APIURL      string        `env:"API_URL" validate:"required,url"`
	Username    string        `env:"AUTOTRADER_USERNAME" validate:"required"`
	Password    string        `env:"AUTOTRADER_PASSWORD" validate:"required"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`
	Port        string        `env:"PORT" envDefault:"8080"`

	Cache Cache
}

// Cache holds listing cache configuration.
type Cache struct {
	Path   string        `env:"CACHE_FILE" envDefault:"cache_listings.json"`
	MaxAge time.Duration `env:"CACHE_TIMEOUT" envDefault:"30m"`
}
