package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whiskeynotes/go-whiskey-api/pkg/models"
)

// ---------------------------------------------------------------------------
// UpsertReview (pure protocol)
// ---------------------------------------------------------------------------

func TestUpsertReview_InsertsWhenNoMatch(t *testing.T) {
	req := models.ReviewRequest{WhiskeyID: "lagavulin-16", UserID: "u1", Rating: 4.5, Notes: "intense"}
	next, review, updated := UpsertReview(nil, req, "WhiskyExplorer", 1000)

	assert.False(t, updated)
	require.Len(t, next, 1)
	assert.NotEmpty(t, review.ID)
	assert.Equal(t, "WhiskyExplorer", review.Nickname)
	assert.Equal(t, int64(1000), review.CreatedAt)
	assert.Equal(t, 4.5, review.Rating)
}

func TestUpsertReview_UpdatesInPlaceKeepingIdentity(t *testing.T) {
	existing := []models.Review{
		{ID: "r1", WhiskeyID: "lagavulin-16", UserID: "u1", Nickname: "OldName", Rating: 2, Notes: "meh", CreatedAt: 100},
		{ID: "r2", WhiskeyID: "lagavulin-16", UserID: "u2", Nickname: "PeatLover", Rating: 5, Notes: "great", CreatedAt: 100},
	}
	req := models.ReviewRequest{WhiskeyID: "lagavulin-16", UserID: "u1", Rating: 4, Notes: "grew on me"}
	next, review, updated := UpsertReview(existing, req, "NewName", 2000)

	assert.True(t, updated)
	require.Len(t, next, 2)
	// Same identifier, refreshed content, historical nickname untouched.
	assert.Equal(t, "r1", review.ID)
	assert.Equal(t, "OldName", review.Nickname)
	assert.Equal(t, 4.0, review.Rating)
	assert.Equal(t, "grew on me", review.Notes)
	assert.Equal(t, int64(2000), review.CreatedAt)
	// The other user's review is untouched.
	assert.Equal(t, "r2", next[1].ID)
	assert.Equal(t, 5.0, next[1].Rating)
}

func TestUpsertReview_AtMostOnePerWhiskeyUserPair(t *testing.T) {
	var reviews []models.Review
	req := models.ReviewRequest{WhiskeyID: "w", UserID: "u", Rating: 1, Notes: "n"}
	for i := 0; i < 5; i++ {
		reviews, _, _ = UpsertReview(reviews, req, "nick", int64(i))
	}
	assert.Len(t, reviews, 1)
}

func TestUpsertReview_DoesNotMutateInput(t *testing.T) {
	existing := []models.Review{
		{ID: "r1", WhiskeyID: "w", UserID: "u", Rating: 2, Notes: "old", CreatedAt: 100},
	}
	req := models.ReviewRequest{WhiskeyID: "w", UserID: "u", Rating: 5, Notes: "new"}
	_, _, _ = UpsertReview(existing, req, "nick", 200)
	assert.Equal(t, 2.0, existing[0].Rating)
	assert.Equal(t, "old", existing[0].Notes)
}

// ---------------------------------------------------------------------------
// SubmitReview (store protocol)
// ---------------------------------------------------------------------------

func TestSubmitReview_RequiresProfile(t *testing.T) {
	s, mr := setupTestStore(t)
	req := models.ReviewRequest{WhiskeyID: "w", UserID: "ghost", Rating: 4, Notes: "notes"}
	_, _, err := s.SubmitReview(context.Background(), req)
	assert.ErrorIs(t, err, ErrNoProfile)
	// Rejected at the boundary: nothing was written.
	assert.False(t, mr.Exists(reviewsKey))
}

func TestSubmitReview_InsertAddsTried(t *testing.T) {
	s, mr := setupTestStore(t)
	mustSetJSON(t, mr, profileKeyPrefix+"u1", models.UserProfile{
		Nickname: "WhiskyExplorer", UserID: "u1", Tried: []string{}, Wishlist: []string{},
	})

	review, updated, err := s.SubmitReview(context.Background(), models.ReviewRequest{
		WhiskeyID: "lagavulin-16", UserID: "u1", Rating: 4.5, Notes: "intense",
	})
	require.NoError(t, err)
	assert.False(t, updated)
	assert.Equal(t, "WhiskyExplorer", review.Nickname)

	assert.Len(t, storedReviews(t, mr), 1)
	assert.Contains(t, storedProfile(t, mr, "u1").Tried, "lagavulin-16")
}

func TestSubmitReview_SecondSubmissionOverwrites(t *testing.T) {
	s, mr := setupTestStore(t)
	mustSetJSON(t, mr, profileKeyPrefix+"u1", models.UserProfile{
		Nickname: "WhiskyExplorer", UserID: "u1", Tried: []string{}, Wishlist: []string{},
	})

	ctx := context.Background()
	first, _, err := s.SubmitReview(ctx, models.ReviewRequest{
		WhiskeyID: "lagavulin-16", UserID: "u1", Rating: 3, Notes: "fine",
	})
	require.NoError(t, err)

	second, updated, err := s.SubmitReview(ctx, models.ReviewRequest{
		WhiskeyID: "lagavulin-16", UserID: "u1", Rating: 5, Notes: "changed my mind",
	})
	require.NoError(t, err)
	assert.True(t, updated)
	assert.Equal(t, first.ID, second.ID)

	stored := storedReviews(t, mr)
	require.Len(t, stored, 1)
	assert.Equal(t, 5.0, stored[0].Rating)
	assert.Equal(t, "changed my mind", stored[0].Notes)

	// Tried membership is idempotent across repeat submissions.
	assert.Equal(t, []string{"lagavulin-16"}, storedProfile(t, mr, "u1").Tried)
}

func TestSubmitReview_DistinctUsersKeepSeparateReviews(t *testing.T) {
	s, mr := setupTestStore(t)
	mustSetJSON(t, mr, profileKeyPrefix+"u1", models.UserProfile{Nickname: "A", UserID: "u1", Tried: []string{}, Wishlist: []string{}})
	mustSetJSON(t, mr, profileKeyPrefix+"u2", models.UserProfile{Nickname: "B", UserID: "u2", Tried: []string{}, Wishlist: []string{}})

	ctx := context.Background()
	_, _, err := s.SubmitReview(ctx, models.ReviewRequest{WhiskeyID: "w", UserID: "u1", Rating: 4, Notes: "a"})
	require.NoError(t, err)
	_, _, err = s.SubmitReview(ctx, models.ReviewRequest{WhiskeyID: "w", UserID: "u2", Rating: 2, Notes: "b"})
	require.NoError(t, err)

	assert.Len(t, storedReviews(t, mr), 2)
}

func TestSubmitReview_NicknameSnapshotSurvivesRename(t *testing.T) {
	s, mr := setupTestStore(t)
	mustSetJSON(t, mr, profileKeyPrefix+"u1", models.UserProfile{
		Nickname: "OldName", UserID: "u1", Tried: []string{}, Wishlist: []string{},
	})

	ctx := context.Background()
	_, _, err := s.SubmitReview(ctx, models.ReviewRequest{WhiskeyID: "w", UserID: "u1", Rating: 4, Notes: "a"})
	require.NoError(t, err)

	_, err = s.CreateProfile(ctx, models.ProfileRequest{Nickname: "NewName", UserID: "u1"})
	require.NoError(t, err)

	// The stored review keeps the nickname it was submitted under, and an
	// update to it does too.
	assert.Equal(t, "OldName", storedReviews(t, mr)[0].Nickname)
	_, _, err = s.SubmitReview(ctx, models.ReviewRequest{WhiskeyID: "w", UserID: "u1", Rating: 5, Notes: "b"})
	require.NoError(t, err)
	assert.Equal(t, "OldName", storedReviews(t, mr)[0].Nickname)
}
