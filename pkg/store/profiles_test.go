package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whiskeynotes/go-whiskey-api/pkg/models"
)

func TestCreateProfile_New(t *testing.T) {
	s, mr := setupTestStore(t)
	profile, err := s.CreateProfile(context.Background(), models.ProfileRequest{Nickname: "WhiskyExplorer"})
	require.NoError(t, err)

	assert.Equal(t, "WhiskyExplorer", profile.Nickname)
	assert.NotEmpty(t, profile.UserID)
	assert.Empty(t, profile.Tried)
	assert.Empty(t, profile.Wishlist)
	assert.True(t, mr.Exists(profileKeyPrefix+profile.UserID))
}

func TestCreateProfile_GeneratesDistinctUserIDs(t *testing.T) {
	s, _ := setupTestStore(t)
	a, err := s.CreateProfile(context.Background(), models.ProfileRequest{Nickname: "one"})
	require.NoError(t, err)
	b, err := s.CreateProfile(context.Background(), models.ProfileRequest{Nickname: "two"})
	require.NoError(t, err)
	assert.NotEqual(t, a.UserID, b.UserID)
}

func TestCreateProfile_RenameKeepsIdentityAndSets(t *testing.T) {
	s, mr := setupTestStore(t)
	mustSetJSON(t, mr, profileKeyPrefix+"u1", models.UserProfile{
		Nickname: "OldName", UserID: "u1",
		Tried:    []string{"lagavulin-16"},
		Wishlist: []string{"buffalo-trace"},
	})

	profile, err := s.CreateProfile(context.Background(), models.ProfileRequest{Nickname: "NewName", UserID: "u1"})
	require.NoError(t, err)

	assert.Equal(t, "u1", profile.UserID)
	assert.Equal(t, "NewName", profile.Nickname)
	assert.Equal(t, []string{"lagavulin-16"}, profile.Tried)
	assert.Equal(t, []string{"buffalo-trace"}, profile.Wishlist)
}

func TestCreateProfile_UnknownUserIDFallsBackToFreshProfile(t *testing.T) {
	s, _ := setupTestStore(t)
	profile, err := s.CreateProfile(context.Background(), models.ProfileRequest{Nickname: "nick", UserID: "vanished"})
	require.NoError(t, err)
	assert.NotEqual(t, "vanished", profile.UserID)
	assert.Empty(t, profile.Tried)
}

// ---------------------------------------------------------------------------
// ToggleWishlist
// ---------------------------------------------------------------------------

func TestToggleWishlist_AddThenRemove(t *testing.T) {
	s, mr := setupTestStore(t)
	mustSetJSON(t, mr, profileKeyPrefix+"u1", models.UserProfile{
		Nickname: "n", UserID: "u1", Tried: []string{}, Wishlist: []string{},
	})

	ctx := context.Background()
	profile, err := s.ToggleWishlist(ctx, "u1", "lagavulin-16")
	require.NoError(t, err)
	assert.Equal(t, []string{"lagavulin-16"}, profile.Wishlist)

	// A second toggle restores the original membership state.
	profile, err = s.ToggleWishlist(ctx, "u1", "lagavulin-16")
	require.NoError(t, err)
	assert.Empty(t, profile.Wishlist)
}

func TestToggleWishlist_DoesNotTouchTried(t *testing.T) {
	s, mr := setupTestStore(t)
	mustSetJSON(t, mr, profileKeyPrefix+"u1", models.UserProfile{
		Nickname: "n", UserID: "u1", Tried: []string{"glenfiddich-12"}, Wishlist: []string{},
	})

	profile, err := s.ToggleWishlist(context.Background(), "u1", "glenfiddich-12")
	require.NoError(t, err)
	// The two sets are independent: a whiskey can be both tried and wishlisted.
	assert.Equal(t, []string{"glenfiddich-12"}, profile.Tried)
	assert.Equal(t, []string{"glenfiddich-12"}, profile.Wishlist)
}

func TestToggleWishlist_NoProfileIsNoOp(t *testing.T) {
	s, mr := setupTestStore(t)
	_, err := s.ToggleWishlist(context.Background(), "ghost", "w")
	assert.ErrorIs(t, err, ErrNoProfile)
	assert.False(t, mr.Exists(profileKeyPrefix+"ghost"))
}
