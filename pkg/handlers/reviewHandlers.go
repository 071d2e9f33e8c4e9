package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/whiskeynotes/go-whiskey-api/pkg/models"
	"github.com/whiskeynotes/go-whiskey-api/pkg/responses"
	"github.com/whiskeynotes/go-whiskey-api/pkg/store"
	"github.com/whiskeynotes/go-whiskey-api/pkg/view"
)

// GetReviewsByWhiskey returns every review referencing the whiskey id. An
// unknown or dangling id yields an empty list, not an error.
func (h *Handler) GetReviewsByWhiskey(w http.ResponseWriter, r *http.Request) {
	var er responses.ErrorResponse
	var sr responses.StandardResponse
	reviews, err := h.Store.Reviews(r.Context())
	if err != nil {
		er.Respond(w, 500, "error", err.Error())
		return
	}
	sr.Respond(w, 200, "success", responses.ReviewsResponse{
		Reviews: view.ReviewsFor(reviews, mux.Vars(r)["id"]),
	})
}

// GetReviewsByUser returns every review submitted under the user id.
func (h *Handler) GetReviewsByUser(w http.ResponseWriter, r *http.Request) {
	var er responses.ErrorResponse
	var sr responses.StandardResponse
	reviews, err := h.Store.Reviews(r.Context())
	if err != nil {
		er.Respond(w, 500, "error", err.Error())
		return
	}
	userID := mux.Vars(r)["id"]
	mine := make([]models.Review, 0)
	for _, rv := range reviews {
		if rv.UserID == userID {
			mine = append(mine, rv)
		}
	}
	sr.Respond(w, 200, "success", responses.ReviewsResponse{Reviews: mine})
}

// CreateReview submits a rating and tasting notes. A second submission for
// the same whiskey by the same user overwrites the first; either way the
// whiskey joins the submitter's tried list.
func (h *Handler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var er responses.ErrorResponse
	var sr responses.StandardResponse
	var req models.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		er.Respond(w, 400, "error", "invalid request body")
		return
	}
	if !req.Validate() {
		er.Respond(w, 400, "error", "review requires a rating and tasting notes")
		return
	}
	review, updated, err := h.Store.SubmitReview(r.Context(), req)
	if err != nil {
		if errors.Is(err, store.ErrNoProfile) {
			er.Respond(w, 400, "error", "no profile exists for user")
			return
		}
		er.Respond(w, 500, "error", err.Error())
		return
	}
	if updated {
		sr.Respond(w, 200, "review updated", review)
		return
	}
	sr.Respond(w, 201, "review added", review)
}
