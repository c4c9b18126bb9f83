package cache

import (
	"net/url"
	"strconv"
	"strings"

	"advocate-directory/internal/domain/entity"
)

// KeyPrefix scopes every search entry so InvalidateAll can discard the
// namespace without touching unrelated keys in a shared Redis database.
const KeyPrefix = "advocates:search:"

// Key derives the cache key for a filter as a fixed-position tuple of
// all eight fields. Position, not presence, carries identity: an absent
// field and an empty string both serialize to the empty segment, so two
// filters that are field-wise equal after that normalization always map
// to the same key. Each segment is query-escaped so separator characters
// inside a field value cannot collide with the tuple layout.
func Key(filter *entity.AdvocateFilter) string {
	if filter == nil {
		filter = &entity.AdvocateFilter{}
	}

	segments := []string{
		url.QueryEscape(filter.Search),
		url.QueryEscape(filter.City),
		url.QueryEscape(filter.Degree),
		intSegment(filter.MinExperience),
		intSegment(filter.MaxExperience),
		url.QueryEscape(filter.Specialty),
		intSegment(filter.Limit),
		intSegment(filter.Offset),
	}

	return KeyPrefix + strings.Join(segments, "|")
}

func intSegment(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
