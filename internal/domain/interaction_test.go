package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wishwall/backend/internal/model"
	"github.com/wishwall/backend/internal/repository"
	"github.com/wishwall/backend/pkg/testutil"
)

func newTestInteractionDomain() *interactionDomain {
	return NewInteractionDomain(
		repository.NewInteractionRepository(),
		repository.NewWishRepository(),
		repository.NewUserRepository(testutil.NewMockRedisClient()),
	)
}

func Test_interactionDomain_ToggleLike(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	interactionDomain := newTestInteractionDomain()
	ctxUser2 := testutil.MockContextWithUserID(ctx, testutil.User2.ID)

	// First toggle likes and bumps the counter.
	resp, err := interactionDomain.ToggleLike(ctxUser2, &model.ToggleLikeRequest{WishID: testutil.Wish1.ID})
	require.NoError(t, err)
	require.True(t, resp.Liked)
	require.Equal(t, 1, resp.LikeCount)

	// Second toggle unlikes and restores the counter.
	resp, err = interactionDomain.ToggleLike(ctxUser2, &model.ToggleLikeRequest{WishID: testutil.Wish1.ID})
	require.NoError(t, err)
	require.False(t, resp.Liked)
	require.Equal(t, 0, resp.LikeCount)

	// No interaction row is left behind.
	interactions, err := interactionDomain.GetList(ctx, &model.GetInteractionsRequest{WishID: testutil.Wish1.ID})
	require.NoError(t, err)
	require.Empty(t, interactions.Interactions)

	_, err = interactionDomain.ToggleLike(ctxUser2, &model.ToggleLikeRequest{WishID: "nothing"})
	require.Equal(t, "Not found wish", err.Error())

	_, err = interactionDomain.ToggleLike(ctx, &model.ToggleLikeRequest{WishID: testutil.Wish1.ID})
	require.Equal(t, "You need to authenticate before", err.Error())
}

func Test_interactionDomain_ToggleLike_independentUsers(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	interactionDomain := newTestInteractionDomain()

	// Likes from different users accumulate.
	for _, userID := range []string{testutil.User2.ID, testutil.User3.ID, testutil.User4.ID} {
		_, err := interactionDomain.ToggleLike(
			testutil.MockContextWithUserID(ctx, userID),
			&model.ToggleLikeRequest{WishID: testutil.Wish1.ID},
		)
		require.NoError(t, err)
	}

	// One user withdrawing leaves the others in place.
	resp, err := interactionDomain.ToggleLike(
		testutil.MockContextWithUserID(ctx, testutil.User3.ID),
		&model.ToggleLikeRequest{WishID: testutil.Wish1.ID},
	)
	require.NoError(t, err)
	require.False(t, resp.Liked)
	require.Equal(t, 2, resp.LikeCount)
}

func Test_interactionDomain_AddComment(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	interactionDomain := newTestInteractionDomain()
	ctxUser2 := testutil.MockContextWithUserID(ctx, testutil.User2.ID)

	resp, err := interactionDomain.AddComment(ctxUser2, &model.AddCommentRequest{
		WishID:  testutil.Wish1.ID,
		Content: "  Kyoto is lovely in autumn  ",
	})
	require.NoError(t, err)
	require.Equal(t, "Kyoto is lovely in autumn", resp.Comment.Content)
	require.Equal(t, "comment", resp.Comment.Kind)
	require.Equal(t, testutil.User2.ID, resp.Comment.User.ID)

	// Comments, unlike likes, stack up.
	_, err = interactionDomain.AddComment(ctxUser2, &model.AddCommentRequest{
		WishID:  testutil.Wish1.ID,
		Content: "Go in November",
	})
	require.NoError(t, err)

	wish, err := repository.NewWishRepository().GetByID(ctx, testutil.Wish1.ID)
	require.NoError(t, err)
	require.Equal(t, 2, wish.CommentCount)

	_, err = interactionDomain.AddComment(ctxUser2, &model.AddCommentRequest{
		WishID:  testutil.Wish1.ID,
		Content: "   ",
	})
	require.Equal(t, "Not allow empty comment", err.Error())
}

func Test_interactionDomain_GetList(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	interactionDomain := newTestInteractionDomain()

	_, err := interactionDomain.ToggleLike(
		testutil.MockContextWithUserID(ctx, testutil.User2.ID),
		&model.ToggleLikeRequest{WishID: testutil.Wish1.ID},
	)
	require.NoError(t, err)

	_, err = interactionDomain.AddComment(
		testutil.MockContextWithUserID(ctx, testutil.User3.ID),
		&model.AddCommentRequest{WishID: testutil.Wish1.ID, Content: "Nice"},
	)
	require.NoError(t, err)

	resp, err := interactionDomain.GetList(ctx, &model.GetInteractionsRequest{WishID: testutil.Wish1.ID})
	require.NoError(t, err)
	require.Len(t, resp.Interactions, 2)
	require.Equal(t, testutil.User2.Name, resp.Interactions[0].User.Name)
	require.Equal(t, testutil.User3.Name, resp.Interactions[1].User.Name)

	_, err = interactionDomain.GetList(ctx, &model.GetInteractionsRequest{})
	require.Equal(t, "Not allow empty wish id", err.Error())
}

func Test_interactionDomain_RecountLikes(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	interactionDomain := newTestInteractionDomain()
	wishRepo := repository.NewWishRepository()

	_, err := interactionDomain.ToggleLike(
		testutil.MockContextWithUserID(ctx, testutil.User2.ID),
		&model.ToggleLikeRequest{WishID: testutil.Wish1.ID},
	)
	require.NoError(t, err)

	// Force the counter out of step with the interactions.
	require.NoError(t, wishRepo.SetLikeCount(ctx, testutil.Wish1.ID, 42))

	// Only the author can repair it.
	_, err = interactionDomain.RecountLikes(
		testutil.MockContextWithUserID(ctx, testutil.User2.ID),
		&model.RecountLikesRequest{WishID: testutil.Wish1.ID},
	)
	require.Equal(t, "Only the author can recount likes", err.Error())

	resp, err := interactionDomain.RecountLikes(
		testutil.MockContextWithUserID(ctx, testutil.User1.ID),
		&model.RecountLikesRequest{WishID: testutil.Wish1.ID},
	)
	require.NoError(t, err)
	require.Equal(t, 1, resp.LikeCount)

	wish, err := wishRepo.GetByID(ctx, testutil.Wish1.ID)
	require.NoError(t, err)
	require.Equal(t, 1, wish.LikeCount)
}
