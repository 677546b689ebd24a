package config

import (
	"strings"
	"time"
)

// CacheConfig controls the response cache middleware.  Only routes listed
// in Routes are cached (GET only); seat, cart and ticket endpoints must
// never appear here because their responses change within a session.
type CacheConfig struct {
	Enabled      bool
	TTL          time.Duration
	Prefix       string
	MaxBodyBytes int
	Routes       map[string]bool // echo route paths eligible for caching
}

// LoadCacheConfig reads cache settings with defaults.  The default route
// set covers the public and admin catalog listings.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled:      envBool("CACHE_ENABLED", true),
		TTL:          envDur("CACHE_TTL", 30*time.Second),
		Prefix:       getenv("CACHE_PREFIX", "cache"),
		MaxBodyBytes: envInt("CACHE_MAX_BODY_BYTES", 1<<20),
		Routes:       parseRoutes(getenv("CACHE_ROUTES", "/movies,/movies/:id/showtimes,/admin/showtimes")),
	}
}

func parseRoutes(s string) map[string]bool {
	routes := map[string]bool{}
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			routes[p] = true
		}
	}
	return routes
}
