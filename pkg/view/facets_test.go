package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/whiskeynotes/go-whiskey-api/pkg/models"
)

func TestFacets_DistinctAndSorted(t *testing.T) {
	types, regions, attributes := Facets(testCatalog())
	assert.Equal(t, []string{"Blended Malt", "Bourbon", "Single Malt"}, types)
	assert.Equal(t, []string{"American", "Islay", "Speyside"}, regions)
	assert.Equal(t, []string{"Fruity", "Maritime", "Peaty", "Smoky", "Smooth", "Sweet", "Vanilla"}, attributes)
}

func TestFacets_EmptyCatalog(t *testing.T) {
	types, regions, attributes := Facets(nil)
	assert.Empty(t, types)
	assert.Empty(t, regions)
	assert.Empty(t, attributes)
}

func TestFacets_IndependentOfFilterSelection(t *testing.T) {
	// Facets cover the unfiltered collection; a narrow view state has no
	// bearing on them, so they are computed from the catalog alone.
	catalog := testCatalog()
	before, _, _ := Facets(catalog)
	_ = Compute(catalog, nil, models.WhiskeyFilters{Types: []string{"Bourbon"}}, models.SortName, "", models.TabAll, nil)
	after, _, _ := Facets(catalog)
	assert.Equal(t, before, after)
}

func TestReviewsFor_FiltersByWhiskeyID(t *testing.T) {
	reviews := []models.Review{
		{ID: "r1", WhiskeyID: "a"},
		{ID: "r2", WhiskeyID: "b"},
		{ID: "r3", WhiskeyID: "a"},
	}
	got := ReviewsFor(reviews, "a")
	assert.Len(t, got, 2)
	assert.Equal(t, "r1", got[0].ID)
	assert.Equal(t, "r3", got[1].ID)

	assert.Empty(t, ReviewsFor(reviews, "dangling"))
}
