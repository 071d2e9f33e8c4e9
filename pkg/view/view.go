// Package view derives the ordered set of whiskey cards from snapshots of the
// catalog, the review list, and the current filter state. Everything here is
// a pure function of its inputs: callers recompute whenever whiskeys, reviews,
// filters, sort, search text, tab, or profile change.
package view

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/whiskeynotes/go-whiskey-api/pkg/models"
)

var nameCollator = collate.New(language.English)

// ratingStats is the per-whiskey aggregate over one review snapshot.
type ratingStats struct {
	sum   float64
	count int
}

func collectStats(reviews []models.Review) map[string]ratingStats {
	stats := make(map[string]ratingStats, len(reviews))
	for _, r := range reviews {
		s := stats[r.WhiskeyID]
		s.sum += r.Rating
		s.count++
		stats[r.WhiskeyID] = s
	}
	return stats
}

// AverageRating is the mean rating across reviews for the whiskey, 0 when no
// review references it. The zero participates in rating-sort comparisons.
func AverageRating(reviews []models.Review, whiskeyID string) float64 {
	var sum float64
	var count int
	for _, r := range reviews {
		if r.WhiskeyID == whiskeyID {
			sum += r.Rating
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// ReviewCount is the number of reviews referencing the whiskey.
func ReviewCount(reviews []models.Review, whiskeyID string) int {
	count := 0
	for _, r := range reviews {
		if r.WhiskeyID == whiskeyID {
			count++
		}
	}
	return count
}

// ReviewsFor returns the reviews referencing the whiskey, in snapshot order.
func ReviewsFor(reviews []models.Review, whiskeyID string) []models.Review {
	out := make([]models.Review, 0)
	for _, r := range reviews {
		if r.WhiskeyID == whiskeyID {
			out = append(out, r)
		}
	}
	return out
}

func matchesSearch(w *models.Whiskey, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(w.Name), q) ||
		strings.Contains(strings.ToLower(w.Distillery), q)
}

func matchesSelection(value string, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if s == value {
			return true
		}
	}
	return false
}

func matchesAttributes(attrs, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		for _, a := range attrs {
			if a == s {
				return true
			}
		}
	}
	return false
}

func inTabScope(w *models.Whiskey, activeTab string, profile *models.UserProfile) bool {
	switch activeTab {
	case models.TabTried:
		return profile.HasTried(w.ID)
	case models.TabWishlist:
		return profile.HasWishlisted(w.ID)
	default:
		return true
	}
}

// Compute runs the full filter pipeline and sort over the given snapshots and
// returns the whiskeys in display order. All filter conditions are ANDed; an
// empty selection set is "no constraint". The tried and wishlist tabs with no
// profile yield an empty result. Compute never fails - empty or missing
// inputs degrade to an empty slice.
func Compute(
	whiskeys []models.Whiskey,
	reviews []models.Review,
	filters models.WhiskeyFilters,
	sortBy models.SortOption,
	searchQuery, activeTab string,
	profile *models.UserProfile,
) []models.Whiskey {
	filtered := make([]models.Whiskey, 0, len(whiskeys))
	for _, w := range whiskeys {
		if !matchesSearch(&w, searchQuery) {
			continue
		}
		if !matchesSelection(w.Type, filters.Types) {
			continue
		}
		if !matchesSelection(w.Region, filters.Regions) {
			continue
		}
		if !matchesAttributes(w.Attributes, filters.Attributes) {
			continue
		}
		if !inTabScope(&w, activeTab, profile) {
			continue
		}
		filtered = append(filtered, w)
	}

	switch sortBy {
	case models.SortName:
		sort.SliceStable(filtered, func(i, j int) bool {
			return nameCollator.CompareString(filtered[i].Name, filtered[j].Name) < 0
		})
	case models.SortAge:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].AgeYears() > filtered[j].AgeYears()
		})
	case models.SortAbv:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Abv > filtered[j].Abv
		})
	case models.SortNewest:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CreatedAt > filtered[j].CreatedAt
		})
	default: // rating
		stats := collectStats(reviews)
		avg := func(id string) float64 {
			s := stats[id]
			if s.count == 0 {
				return 0
			}
			return s.sum / float64(s.count)
		}
		sort.SliceStable(filtered, func(i, j int) bool {
			return avg(filtered[i].ID) > avg(filtered[j].ID)
		})
	}

	return filtered
}
