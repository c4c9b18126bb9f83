package entity

// AdvocateFilter is a domain-level filter for querying advocates.
// Used by repository layer to avoid coupling with delivery DTOs.
// Nil pointer / empty string means no constraint on that dimension.
type AdvocateFilter struct {
	Search        string // Matched against name, city, degree, and specialties (ILIKE)
	City          string // Filter by city (ILIKE)
	Degree        string // Filter by degree (ILIKE)
	MinExperience *int   // years_of_experience >= value
	MaxExperience *int   // years_of_experience <= value
	Specialty     string // Exact membership in the specialties array
	Limit         *int   // Max rows returned; nil returns all matches
	Offset        *int   // Rows skipped from the start of id-ascending order
}

// SearchResult is one computed page of a filtered advocate query together
// with the total count of matching rows. This is the unit stored in the
// result cache.
type SearchResult struct {
	Advocates []Advocate `json:"advocates"`
	Total     int64      `json:"total"`
}
