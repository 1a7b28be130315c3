package reconcile

import "time"

// Config holds settings for reconcile runs driven from the CLI or HTTP API.
type Config struct {
	// FeedObject is the object name of the supplier feed in the storage bucket.
	FeedObject string `mapstructure:"feed_object" default:"feeds/products.json"`
	// ReportPrefix is the object prefix under which reports are saved.
	ReportPrefix string `mapstructure:"report_prefix" default:"reports/"`
	// CacheTTLSeconds is how long a downloaded feed is reused. Zero disables caching.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"300"`
	// Workers is the number of goroutines used for scoring.
	Workers int `mapstructure:"workers" default:"4"`
}

// CacheTTL returns CacheTTLSeconds as a duration.
func (c Config) CacheTTL() time.Duration {
	if c.CacheTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(c.CacheTTLSeconds) * time.Second
}
