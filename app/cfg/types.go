package cfg

import "time"

type Cfg struct {
	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Application configuration
	Port           string
	CityConfig     string
	ScrapeInterval int

	// Scraper pacing
	VenueDelay   time.Duration
	GeocodeDelay time.Duration

	// Application metadata
	UserAgent string
	Timezone  string
	Debug     bool
	Version   string
}
