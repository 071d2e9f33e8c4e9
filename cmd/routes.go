package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	appHandlers "github.com/whiskeynotes/go-whiskey-api/pkg/handlers"
	"github.com/whiskeynotes/go-whiskey-api/pkg/middleware"
)

func routes(h *appHandlers.Handler, gate *middleware.OwnerGate, logger *zap.Logger) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.Metrics)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.JSONContent)

	// **whiskey routes**
	// the derived view: search/filter/sort/tab scoped catalog with aggregates
	api.HandleFunc("/whiskeys", h.GetWhiskeys).Methods("GET")
	// filter panel facets over the full catalog
	api.HandleFunc("/whiskeys/facets", h.GetWhiskeyFacets).Methods("GET")
	// whiskey detail with its reviews
	api.HandleFunc("/whiskeys/{id}", h.GetWhiskeyById).Methods("GET")
	// owner-only catalog management
	api.Handle("/whiskeys", gate.Require(http.HandlerFunc(h.CreateWhiskey))).Methods("POST")
	api.Handle("/whiskeys/update/{id}", gate.Require(http.HandlerFunc(h.UpdateWhiskey))).Methods("POST")
	api.Handle("/whiskeys/{id}", gate.Require(http.HandlerFunc(h.DeleteWhiskey))).Methods("DELETE")

	// **review routes**
	// submit (or overwrite) a review and mark the whiskey tried
	api.HandleFunc("/review", h.CreateReview).Methods("POST")
	// reviews filtered by whiskey or by user
	api.HandleFunc("/reviews/whiskey/{id}", h.GetReviewsByWhiskey).Methods("GET")
	api.HandleFunc("/reviews/user/{id}", h.GetReviewsByUser).Methods("GET")

	// **profile routes**
	// nickname setup / rename
	api.HandleFunc("/profile", h.CreateProfile).Methods("POST")
	api.HandleFunc("/profile/{id}", h.GetProfile).Methods("GET")
	// wishlist toggle
	api.HandleFunc("/profile/{id}/wishlist/{whiskeyId}", h.ToggleWishlist).Methods("POST")

	// is the caller the catalog owner?
	api.HandleFunc("/owner", h.GetOwner).Methods("GET")

	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return r
}
