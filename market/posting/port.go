package posting

import (
	"context"
	"time"
)

// Provider fetches candidate postings from an external job-search source.
// A provider failure is recoverable: the caller substitutes fallback data.
type Provider interface {
	// Search issues a single request for one page of postings
	Search(ctx context.Context, query, location string, page, limit int) ([]JobPosting, error)

	// Configured reports whether credentials are available
	Configured() bool
}

// PageCache stores raw provider pages for a short time. Implementations
// must degrade silently: a cache error is treated as a miss.
type PageCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration)
}
