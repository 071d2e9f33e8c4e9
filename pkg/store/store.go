// Package store persists the review list and user profiles in Redis as JSON
// values with read-modify-write semantics. It owns the review upsert protocol
// and the tried/wishlist set invariants.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/whiskeynotes/go-whiskey-api/pkg/models"
)

const (
	reviewsKey       = "reviews"
	profileKeyPrefix = "profile:"
)

// ErrNoProfile is returned by mutations that require an existing profile.
var ErrNoProfile = errors.New("no profile exists for user")

type Store struct {
	client *redis.Client
}

func New(client *redis.Client) *Store {
	return &Store{client: client}
}

// Reviews loads the full review list. An absent key is loaded-empty, not an
// error: the store has simply never been written.
func (s *Store) Reviews(ctx context.Context) ([]models.Review, error) {
	data, err := s.client.Get(ctx, reviewsKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return []models.Review{}, nil
		}
		return nil, fmt.Errorf("redis get reviews: %w", err)
	}
	var reviews []models.Review
	if err := json.Unmarshal(data, &reviews); err != nil {
		return nil, fmt.Errorf("unmarshal reviews: %w", err)
	}
	return reviews, nil
}

// Profile loads one user profile. An absent key yields (nil, nil): callers
// treat a missing profile as a state, not a failure.
func (s *Store) Profile(ctx context.Context, userID string) (*models.UserProfile, error) {
	data, err := s.client.Get(ctx, profileKeyPrefix+userID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get profile: %w", err)
	}
	var profile models.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}
	return &profile, nil
}

// SaveProfile writes one user profile.
func (s *Store) SaveProfile(ctx context.Context, profile *models.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	if err := s.client.Set(ctx, profileKeyPrefix+profile.UserID, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set profile: %w", err)
	}
	return nil
}

// saveReviewsAndProfile writes the review list and, when profile is non-nil,
// the profile, inside one MULTI/EXEC so no reader can observe a review whose
// whiskey is missing from the submitter's tried set.
func (s *Store) saveReviewsAndProfile(ctx context.Context, reviews []models.Review, profile *models.UserProfile) error {
	reviewData, err := json.Marshal(reviews)
	if err != nil {
		return fmt.Errorf("marshal reviews: %w", err)
	}
	var profileData []byte
	if profile != nil {
		profileData, err = json.Marshal(profile)
		if err != nil {
			return fmt.Errorf("marshal profile: %w", err)
		}
	}
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, reviewsKey, reviewData, 0)
		if profile != nil {
			pipe.Set(ctx, profileKeyPrefix+profile.UserID, profileData, 0)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis tx set reviews/profile: %w", err)
	}
	return nil
}
