package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/whiskeynotes/go-whiskey-api/pkg/models"
	"github.com/whiskeynotes/go-whiskey-api/pkg/responses"
	"github.com/whiskeynotes/go-whiskey-api/pkg/view"
)

// GetWhiskeys returns the derived view: the catalog filtered by search text,
// type/region/attribute selections, and tab scope, sorted by the requested
// option, with per-whiskey review aggregates. Store failures degrade to empty
// inputs so the view never errors.
func (h *Handler) GetWhiskeys(w http.ResponseWriter, r *http.Request) {
	var sr responses.StandardResponse
	ctx := r.Context()
	q := r.URL.Query()

	filters := models.WhiskeyFilters{
		Types:      models.SplitFilterValues(q.Get("types")),
		Regions:    models.SplitFilterValues(q.Get("regions")),
		Attributes: models.SplitFilterValues(q.Get("attributes")),
	}
	sortBy := models.ParseSortOption(q.Get("sort"))
	activeTab := q.Get("tab")
	if activeTab == "" {
		activeTab = models.TabAll
	}

	whiskeys := h.Catalog.List(ctx)

	reviews, err := h.Store.Reviews(ctx)
	if err != nil {
		h.Logger.Error("load reviews failed", zap.Error(err))
		reviews = []models.Review{}
	}

	var profile *models.UserProfile
	if userID := q.Get("user"); userID != "" {
		profile, err = h.Store.Profile(ctx, userID)
		if err != nil {
			h.Logger.Error("load profile failed", zap.String("user", userID), zap.Error(err))
			profile = nil
		}
	}

	ordered := view.Compute(whiskeys, reviews, filters, sortBy, q.Get("search"), activeTab, profile)

	cards := make([]responses.WhiskeyCard, 0, len(ordered))
	for _, wk := range ordered {
		cards = append(cards, responses.WhiskeyCard{
			Whiskey:       wk,
			AverageRating: view.AverageRating(reviews, wk.ID),
			ReviewCount:   view.ReviewCount(reviews, wk.ID),
		})
	}
	sr.Respond(w, 200, "success", responses.WhiskeysResponse{
		Whiskeys:     cards,
		TotalRecords: len(cards),
	})
}

// GetWhiskeyFacets returns the distinct types, regions, and attributes across
// the full catalog for the filter panel.
func (h *Handler) GetWhiskeyFacets(w http.ResponseWriter, r *http.Request) {
	var sr responses.StandardResponse
	whiskeys := h.Catalog.List(r.Context())
	types, regions, attributes := view.Facets(whiskeys)
	sr.Respond(w, 200, "success", responses.FacetsResponse{
		Types:      types,
		Regions:    regions,
		Attributes: attributes,
	})
}

// GetWhiskeyById returns one whiskey with its reviews and aggregates.
func (h *Handler) GetWhiskeyById(w http.ResponseWriter, r *http.Request) {
	var er responses.ErrorResponse
	var sr responses.StandardResponse
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	whiskey := h.Catalog.GetByID(ctx, id)
	if whiskey == nil {
		er.Respond(w, 404, "error", "not found")
		return
	}
	reviews, err := h.Store.Reviews(ctx)
	if err != nil {
		h.Logger.Error("load reviews failed", zap.Error(err))
		reviews = []models.Review{}
	}
	sr.Respond(w, 200, "success", responses.WhiskeyDetailResponse{
		Whiskey:       whiskey,
		Reviews:       view.ReviewsFor(reviews, id),
		AverageRating: view.AverageRating(reviews, id),
		ReviewCount:   view.ReviewCount(reviews, id),
	})
}

// CreateWhiskey adds a catalog entry. Owner-gated by the router; the
// repository assigns the id and creation timestamp.
func (h *Handler) CreateWhiskey(w http.ResponseWriter, r *http.Request) {
	var er responses.ErrorResponse
	var sr responses.StandardResponse
	var req models.WhiskeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		er.Respond(w, 400, "error", "invalid request body")
		return
	}
	if !req.Validate() {
		er.Respond(w, 400, "error", "missing or invalid whiskey fields")
		return
	}
	created := h.Catalog.Create(r.Context(), req)
	if created == nil {
		er.Respond(w, 502, "error", "failed to add whiskey")
		return
	}
	sr.Respond(w, 201, "success", created)
}

// UpdateWhiskey replaces the mutable fields of an existing whiskey.
func (h *Handler) UpdateWhiskey(w http.ResponseWriter, r *http.Request) {
	var er responses.ErrorResponse
	var sr responses.StandardResponse
	var req models.WhiskeyRequest
	id := mux.Vars(r)["id"]
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		er.Respond(w, 400, "error", "invalid request body")
		return
	}
	if !req.Validate() {
		er.Respond(w, 400, "error", "missing or invalid whiskey fields")
		return
	}
	updated := h.Catalog.Update(r.Context(), id, req)
	if updated == nil {
		er.Respond(w, 404, "error", "not found")
		return
	}
	sr.Respond(w, 200, "success", updated)
}

// DeleteWhiskey removes a whiskey from the catalog.
func (h *Handler) DeleteWhiskey(w http.ResponseWriter, r *http.Request) {
	var er responses.ErrorResponse
	var sr responses.StandardResponse
	id := mux.Vars(r)["id"]
	if !h.Catalog.Delete(r.Context(), id) {
		er.Respond(w, 404, "error", "not found")
		return
	}
	sr.Respond(w, 200, "success", id)
}
