package responses

import (
	"encoding/json"
	"net/http"

	"github.com/whiskeynotes/go-whiskey-api/pkg/models"
)

type StandardResponse struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func (r StandardResponse) Respond(w http.ResponseWriter, status int, m string, d interface{}) {
	r.Status = status
	r.Message = m
	r.Data = d
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(r)
}

// whiskey responses

// WhiskeyCard is a catalog entry plus the review aggregates the card displays.
type WhiskeyCard struct {
	models.Whiskey
	AverageRating float64 `json:"averageRating"`
	ReviewCount   int     `json:"reviewCount"`
}

type WhiskeysResponse struct {
	Whiskeys     []WhiskeyCard `json:"whiskeys"`
	TotalRecords int           `json:"total_records"`
}

type WhiskeyDetailResponse struct {
	Whiskey       *models.Whiskey `json:"whiskey"`
	Reviews       []models.Review `json:"reviews"`
	AverageRating float64         `json:"averageRating"`
	ReviewCount   int             `json:"reviewCount"`
}

type FacetsResponse struct {
	Types      []string `json:"types"`
	Regions    []string `json:"regions"`
	Attributes []string `json:"attributes"`
}

// review responses

type ReviewsResponse struct {
	Reviews []models.Review `json:"reviews"`
}

// profile responses

type ProfileResponse struct {
	Profile *models.UserProfile `json:"profile"`
}

// owner response

type OwnerResponse struct {
	IsOwner bool `json:"is_owner"`
}
