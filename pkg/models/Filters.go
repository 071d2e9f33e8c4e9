package models

import "strings"

// Tab is the active top-level view scope.
const (
	TabAll      = "all"
	TabTried    = "tried"
	TabWishlist = "wishlist"
	TabAdmin    = "admin"
)

// SortOption selects the view comparator.
type SortOption string

const (
	SortRating SortOption = "rating"
	SortName   SortOption = "name"
	SortAge    SortOption = "age"
	SortAbv    SortOption = "abv"
	SortNewest SortOption = "newest"
)

// ParseSortOption maps a query value to a sort, defaulting to rating.
func ParseSortOption(s string) SortOption {
	switch SortOption(s) {
	case SortName, SortAge, SortAbv, SortNewest:
		return SortOption(s)
	default:
		return SortRating
	}
}

// WhiskeyFilters is the ephemeral filter selection. Empty slices mean "no
// constraint", never "match nothing". The min/max range fields are declared
// for the filter panel but are not consulted by the view engine.
type WhiskeyFilters struct {
	Types      []string `json:"types"`
	Regions    []string `json:"regions"`
	Attributes []string `json:"attributes"`
	MinAge     *int     `json:"minAge,omitempty"`
	MaxAge     *int     `json:"maxAge,omitempty"`
	MinAbv     *float64 `json:"minAbv,omitempty"`
	MaxAbv     *float64 `json:"maxAbv,omitempty"`
}

// SplitFilterValues parses a comma-separated query param into a selection
// set, dropping empty entries so "a,,b" and "" behave sensibly.
func SplitFilterValues(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, v := range strings.Split(s, ",") {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
