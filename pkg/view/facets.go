package view

import (
	"sort"

	"github.com/whiskeynotes/go-whiskey-api/pkg/models"
)

func distinctSorted(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Facets returns the sorted distinct types, regions, and attributes over the
// full catalog. They feed the filter panel choices and depend only on the
// whiskey collection, never on the current selection.
func Facets(whiskeys []models.Whiskey) (types, regions, attributes []string) {
	allTypes := make([]string, 0, len(whiskeys))
	allRegions := make([]string, 0, len(whiskeys))
	var allAttributes []string
	for _, w := range whiskeys {
		allTypes = append(allTypes, w.Type)
		allRegions = append(allRegions, w.Region)
		allAttributes = append(allAttributes, w.Attributes...)
	}
	return distinctSorted(allTypes), distinctSorted(allRegions), distinctSorted(allAttributes)
}
