// Package cache provides the result cache fronting the advocate search
// query path. Entries map a canonical serialization of an AdvocateFilter
// to one computed page of results plus its total count, with a fixed TTL
// and namespace-wide invalidation on writes.
//
// Every backend failure degrades to a cache miss or no-op. The cache is
// best-effort: it must never fail a request.
package cache

import (
	"context"

	"advocate-directory/internal/domain/entity"
)

type ResultCache interface {
	// Get returns the cached result for the filter, or false on miss,
	// expiry, or backend failure.
	Get(ctx context.Context, filter *entity.AdvocateFilter) (*entity.SearchResult, bool)

	// Set stores the result under the filter's key with the configured
	// TTL, overwriting any existing entry. Failures are logged and
	// swallowed.
	Set(ctx context.Context, filter *entity.AdvocateFilter, result *entity.SearchResult)

	// InvalidateAll discards every entry in the cache namespace. Called
	// after any successful write to the advocates table; there is no
	// per-key invalidation.
	InvalidateAll(ctx context.Context)
}
