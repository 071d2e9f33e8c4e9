package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/whiskeynotes/go-whiskey-api/pkg/models"
)

// UpsertReview applies one validated submission to a review snapshot and
// returns the new snapshot, the resulting review, and whether an existing
// review was updated. At most one review may exist per (whiskeyID, userID)
// pair: a match keeps its id and originally-denormalized nickname and takes
// the new rating, notes, and timestamp; otherwise a fresh review is appended
// with the submitter's current nickname.
func UpsertReview(reviews []models.Review, req models.ReviewRequest, nickname string, now int64) ([]models.Review, models.Review, bool) {
	for i, r := range reviews {
		if r.WhiskeyID == req.WhiskeyID && r.UserID == req.UserID {
			r.Rating = req.Rating
			r.Notes = req.Notes
			r.CreatedAt = now
			next := make([]models.Review, len(reviews))
			copy(next, reviews)
			next[i] = r
			return next, r, true
		}
	}
	review := models.Review{
		ID:        uuid.NewString(),
		WhiskeyID: req.WhiskeyID,
		UserID:    req.UserID,
		Nickname:  nickname,
		Rating:    req.Rating,
		Notes:     req.Notes,
		CreatedAt: now,
	}
	next := make([]models.Review, 0, len(reviews)+1)
	next = append(next, reviews...)
	next = append(next, review)
	return next, review, false
}

// SubmitReview runs the review mutation protocol: upsert the review keyed on
// (whiskeyID, userID) and ensure the whiskey is in the submitter's tried set.
// The request must already be validated; a missing profile yields
// ErrNoProfile with no mutation.
func (s *Store) SubmitReview(ctx context.Context, req models.ReviewRequest) (*models.Review, bool, error) {
	profile, err := s.Profile(ctx, req.UserID)
	if err != nil {
		return nil, false, err
	}
	if profile == nil {
		return nil, false, ErrNoProfile
	}

	reviews, err := s.Reviews(ctx)
	if err != nil {
		return nil, false, err
	}

	now := time.Now().UnixMilli()
	next, review, updated := UpsertReview(reviews, req, profile.Nickname, now)

	var profileDelta *models.UserProfile
	if profile.MarkTried(req.WhiskeyID) {
		profileDelta = profile
	}
	if err := s.saveReviewsAndProfile(ctx, next, profileDelta); err != nil {
		return nil, false, err
	}
	return &review, updated, nil
}
