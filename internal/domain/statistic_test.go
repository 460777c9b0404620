package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wishwall/backend/internal/entity"
	"github.com/wishwall/backend/internal/model"
	"github.com/wishwall/backend/internal/repository"
	"github.com/wishwall/backend/pkg/testutil"
)

func newTestStatisticDomain() *statisticDomain {
	return NewStatisticDomain(
		repository.NewWishRepository(),
		repository.NewFollowRepository(),
	)
}

func insertStatWishes(t *testing.T, ctx context.Context, authorID string) {
	wishRepo := repository.NewWishRepository()
	wishes := []entity.Wish{
		{Base: entity.Base{ID: "stat1"}, Visibility: entity.VisibilityPublic, LikeCount: 3, CommentCount: 1},
		{Base: entity.Base{ID: "stat2"}, Visibility: entity.VisibilityPublic, LikeCount: 1},
		{Base: entity.Base{ID: "stat3"}, Visibility: entity.VisibilityPublic},
		{Base: entity.Base{ID: "stat4"}, Visibility: entity.VisibilityPrivate, LikeCount: 2, CommentCount: 4},
		{Base: entity.Base{ID: "stat5"}, Visibility: entity.VisibilityPrivate},
		{Base: entity.Base{ID: "stat6"}, Visibility: entity.VisibilityFriends, CommentCount: 2},
	}

	for i := range wishes {
		wishes[i].AuthorID = authorID
		wishes[i].Title = wishes[i].ID
		wishes[i].Content = wishes[i].ID
		wishes[i].Category = entity.CategoryPersonal
		require.NoError(t, wishRepo.Create(ctx, &wishes[i]))
	}
}

func Test_statisticDomain_GetUserStats(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	insertStatWishes(t, ctx, testutil.User4.ID)

	statisticDomain := newTestStatisticDomain()

	// The owner counts everything.
	resp, err := statisticDomain.GetUserStats(
		testutil.MockContextWithUserID(ctx, testutil.User4.ID),
		&model.GetUserStatsRequest{UserID: testutil.User4.ID},
	)
	require.NoError(t, err)
	require.Equal(t, &model.GetUserStatsResponse{
		Total:           6,
		Public:          3,
		Private:         2,
		Friends:         1,
		TotalLikes:      6,
		TotalComments:   7,
		PermissionLevel: "all",
	}, resp)

	// A stranger counts only the public slice; hidden wishes do not
	// leak into any number, not even the totals.
	resp, err = statisticDomain.GetUserStats(
		testutil.MockContextWithUserID(ctx, testutil.User1.ID),
		&model.GetUserStatsRequest{UserID: testutil.User4.ID},
	)
	require.NoError(t, err)
	require.Equal(t, &model.GetUserStatsResponse{
		Total:           3,
		Public:          3,
		TotalLikes:      4,
		TotalComments:   1,
		PermissionLevel: "public",
	}, resp)

	// An anonymous viewer gets the same slice as a stranger.
	anon, err := statisticDomain.GetUserStats(ctx, &model.GetUserStatsRequest{UserID: testutil.User4.ID})
	require.NoError(t, err)
	require.Equal(t, resp, anon)
}

func Test_statisticDomain_GetUserStats_friend(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	insertStatWishes(t, ctx, testutil.User1.ID)

	statisticDomain := newTestStatisticDomain()

	// user2 is a mutual friend of user1: friends-only wishes count,
	// private ones stay out.
	resp, err := statisticDomain.GetUserStats(
		testutil.MockContextWithUserID(ctx, testutil.User2.ID),
		&model.GetUserStatsRequest{UserID: testutil.User1.ID},
	)
	require.NoError(t, err)
	require.Equal(t, "friends", resp.PermissionLevel)
	require.Equal(t, 1, resp.Friends)
	require.Equal(t, 0, resp.Private)

	_, err = statisticDomain.GetUserStats(ctx, &model.GetUserStatsRequest{})
	require.Equal(t, "Not allow empty user id", err.Error())
}
