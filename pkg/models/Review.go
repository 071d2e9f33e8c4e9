package models

// Review is one user's rating and tasting notes for one whiskey. Nickname is a
// copy of the profile nickname taken when the review was first submitted; a
// later profile rename does not rewrite it. WhiskeyID is not a foreign key -
// a review may outlive its whiskey and readers must tolerate that.
type Review struct {
	ID        string  `json:"id"`
	WhiskeyID string  `json:"whiskeyId"`
	UserID    string  `json:"userId"`
	Nickname  string  `json:"nickname"`
	Rating    float64 `json:"rating"`
	Notes     string  `json:"notes"`
	CreatedAt int64   `json:"createdAt"`
}

// ReviewRequest is the submit-review payload.
type ReviewRequest struct {
	WhiskeyID string  `json:"whiskeyId"`
	UserID    string  `json:"userId"`
	Rating    float64 `json:"rating"`
	Notes     string  `json:"notes"`
}

// Validate trims the notes and reports whether the submission may construct a
// review at all: a whiskey and user must be named, the rating must be in
// (0,5], and the notes must survive trimming.
func (r *ReviewRequest) Validate() bool {
	r.Notes = trim(r.Notes)
	if r.WhiskeyID == "" || r.UserID == "" {
		return false
	}
	if r.Rating <= 0 || r.Rating > 5 {
		return false
	}
	return r.Notes != ""
}
