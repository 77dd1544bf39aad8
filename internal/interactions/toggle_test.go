package interactions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/proconnect-app/backend/internal/models"
)

func TestToggleLikePair(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	author := store.addUser("alice")
	caller := store.addUser("bob")

	post, err := svc.CreatePost(ctx, author, models.CreatePostRequest{Content: "hello"})
	require.NoError(t, err)

	first, err := svc.ToggleLike(ctx, caller, TargetPost, post.ID)
	require.NoError(t, err)
	assert.True(t, first.Liked)
	assert.Equal(t, 1, first.LikeCount)

	second, err := svc.ToggleLike(ctx, caller, TargetPost, post.ID)
	require.NoError(t, err)
	assert.False(t, second.Liked)
	assert.Equal(t, 0, second.LikeCount, "pair of toggles must return to the original count")
}

func TestToggleLikeNoDuplicates(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	author := store.addUser("alice")
	caller := store.addUser("bob")

	post, err := svc.CreatePost(ctx, author, models.CreatePostRequest{Content: "hello"})
	require.NoError(t, err)

	// Odd number of toggles ends liked; the set must still hold a
	// single entry for the caller.
	for i := 0; i < 5; i++ {
		_, err := svc.ToggleLike(ctx, caller, TargetPost, post.ID)
		require.NoError(t, err)
	}

	target, err := store.GetTarget(ctx, TargetPost, post.ID)
	require.NoError(t, err)
	entries := 0
	for _, l := range target.Likes {
		if l.UserID == caller {
			entries++
		}
	}
	assert.Equal(t, 1, entries)
}

func TestToggleLikeSelfProfileForbidden(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	caller := store.addUser("alice")

	_, err := svc.ToggleLike(ctx, caller, TargetProfile, caller)
	assert.ErrorIs(t, err, ErrForbidden)

	// Still forbidden regardless of prior state.
	_, err = svc.ToggleLike(ctx, caller, TargetProfile, caller)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestToggleLikeOwnPostAllowed(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	author := store.addUser("alice")
	post, err := svc.CreatePost(ctx, author, models.CreatePostRequest{Content: "hello"})
	require.NoError(t, err)

	result, err := svc.ToggleLike(ctx, author, TargetPost, post.ID)
	require.NoError(t, err)
	assert.True(t, result.Liked)
	assert.Equal(t, 1, result.LikeCount)
}

func TestToggleLikeProfile(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	owner := store.addUser("alice")
	caller := store.addUser("bob")

	result, err := svc.ToggleLike(ctx, caller, TargetProfile, owner)
	require.NoError(t, err)
	assert.True(t, result.Liked)
	assert.Equal(t, 1, result.LikeCount)

	result, err = svc.ToggleLike(ctx, caller, TargetProfile, owner)
	require.NoError(t, err)
	assert.False(t, result.Liked)
	assert.Equal(t, 0, result.LikeCount)
}

func TestToggleLikeMissingTarget(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	caller := store.addUser("alice")

	_, err := svc.ToggleLike(ctx, caller, TargetPost, primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.ToggleLike(ctx, caller, TargetProfile, primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrNotFound)
}
