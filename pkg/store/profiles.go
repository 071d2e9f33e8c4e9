package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/whiskeynotes/go-whiskey-api/pkg/models"
)

// CreateProfile runs the identity bootstrap: a new profile gets a freshly
// generated user id and empty tried/wishlist sets. When the request names an
// existing user id, the nickname is updated in place and the id and both sets
// are kept - reviews already submitted keep the nickname they were written
// under.
func (s *Store) CreateProfile(ctx context.Context, req models.ProfileRequest) (*models.UserProfile, error) {
	if req.UserID != "" {
		existing, err := s.Profile(ctx, req.UserID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			existing.Nickname = req.Nickname
			if err := s.SaveProfile(ctx, existing); err != nil {
				return nil, err
			}
			return existing, nil
		}
	}

	profile := &models.UserProfile{
		Nickname: req.Nickname,
		UserID:   uuid.NewString(),
		Tried:    []string{},
		Wishlist: []string{},
	}
	if err := s.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// ToggleWishlist flips wishlist membership for the whiskey. A missing profile
// is a quiet no-op reported as ErrNoProfile so the handler can answer 404
// without having mutated anything.
func (s *Store) ToggleWishlist(ctx context.Context, userID, whiskeyID string) (*models.UserProfile, error) {
	profile, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrNoProfile
	}
	profile.ToggleWishlist(whiskeyID)
	if err := s.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
