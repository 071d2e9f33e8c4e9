package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/whiskeynotes/go-whiskey-api/pkg/models"
	"github.com/whiskeynotes/go-whiskey-api/pkg/responses"
	"github.com/whiskeynotes/go-whiskey-api/pkg/store"
)

// CreateProfile is the nickname gate: a valid nickname creates a fresh
// profile, or renames an existing one when the body names its user id.
func (h *Handler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var er responses.ErrorResponse
	var sr responses.StandardResponse
	var req models.ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		er.Respond(w, 400, "error", "invalid request body")
		return
	}
	if !req.Validate() {
		er.Respond(w, 400, "error", "nickname must be 1-20 characters")
		return
	}
	profile, err := h.Store.CreateProfile(r.Context(), req)
	if err != nil {
		er.Respond(w, 500, "error", err.Error())
		return
	}
	sr.Respond(w, 201, "success", responses.ProfileResponse{Profile: profile})
}

// GetProfile returns the profile for a user id, 404 when none exists yet.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	var er responses.ErrorResponse
	var sr responses.StandardResponse
	profile, err := h.Store.Profile(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		er.Respond(w, 500, "error", err.Error())
		return
	}
	if profile == nil {
		er.Respond(w, 404, "error", "not found")
		return
	}
	sr.Respond(w, 200, "success", responses.ProfileResponse{Profile: profile})
}

// ToggleWishlist flips wishlist membership for one whiskey: add if absent,
// remove if present.
func (h *Handler) ToggleWishlist(w http.ResponseWriter, r *http.Request) {
	var er responses.ErrorResponse
	var sr responses.StandardResponse
	params := mux.Vars(r)
	profile, err := h.Store.ToggleWishlist(r.Context(), params["id"], params["whiskeyId"])
	if err != nil {
		if errors.Is(err, store.ErrNoProfile) {
			er.Respond(w, 404, "error", "no profile exists for user")
			return
		}
		er.Respond(w, 500, "error", err.Error())
		return
	}
	sr.Respond(w, 200, "success", responses.ProfileResponse{Profile: profile})
}

// GetOwner answers whether the caller is the catalog owner. Any failure to
// answer is "false" - the admin surface never appears by accident.
func (h *Handler) GetOwner(w http.ResponseWriter, r *http.Request) {
	var sr responses.StandardResponse
	sr.Respond(w, 200, "success", responses.OwnerResponse{IsOwner: h.Owner.IsOwner(r)})
}
