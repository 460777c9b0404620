package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wishwall/backend/internal/model"
	"github.com/wishwall/backend/internal/repository"
	"github.com/wishwall/backend/pkg/testutil"
)

func newTestWishDomain() *wishDomain {
	return NewWishDomain(
		repository.NewWishRepository(),
		repository.NewFollowRepository(),
		repository.NewUserRepository(testutil.NewMockRedisClient()),
	)
}

func wishIDs(wishes []model.Wish) []string {
	ids := make([]string, len(wishes))
	for i := range wishes {
		ids[i] = wishes[i].ID
	}
	return ids
}

func Test_wishDomain_GetFeed(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	wishDomain := newTestWishDomain()

	// user1 sees their own wishes first (any visibility), then public
	// wishes from followed authors, then the rest, each most recent
	// first.
	resp, err := wishDomain.GetFeed(
		testutil.MockContextWithUserID(ctx, testutil.User1.ID),
		&model.GetFeedRequest{},
	)
	require.NoError(t, err)
	require.Equal(t,
		[]string{
			testutil.Wish1.ID, testutil.Wish5.ID,
			testutil.Wish4.ID, testutil.Wish6.ID,
			testutil.Wish3.ID, testutil.Wish2.ID,
		},
		wishIDs(resp.Wishes))

	// Authors are resolved without leaking emails.
	require.Equal(t, testutil.User1.Name, resp.Wishes[0].Author.Name)
	require.Empty(t, resp.Wishes[0].Author.Email)
}

func Test_wishDomain_GetFeed_anonymous(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	wishDomain := newTestWishDomain()

	// Anonymous viewers get public wishes only, by recency.
	resp, err := wishDomain.GetFeed(ctx, &model.GetFeedRequest{})
	require.NoError(t, err)
	require.Equal(t,
		[]string{testutil.Wish4.ID, testutil.Wish1.ID, testutil.Wish6.ID},
		wishIDs(resp.Wishes))
}

func Test_wishDomain_GetFeed_category(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	wishDomain := newTestWishDomain()
	ctxUser1 := testutil.MockContextWithUserID(ctx, testutil.User1.ID)

	resp, err := wishDomain.GetFeed(ctxUser1, &model.GetFeedRequest{Category: "travel"})
	require.NoError(t, err)
	require.Equal(t, []string{testutil.Wish1.ID, testutil.Wish4.ID}, wishIDs(resp.Wishes))

	// The special category "all" means no restriction.
	resp, err = wishDomain.GetFeed(ctxUser1, &model.GetFeedRequest{Category: "all"})
	require.NoError(t, err)
	require.Len(t, resp.Wishes, 6)

	_, err = wishDomain.GetFeed(ctxUser1, &model.GetFeedRequest{Category: "unicorns"})
	require.Equal(t, "Invalid category unicorns", err.Error())
}

func Test_wishDomain_GetFeed_followedNotFriend(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	wishDomain := newTestWishDomain()

	// user3 never follows user1 back, yet user3's friends-only wish
	// still reaches user1's feed. Friends-only visibility in the feed
	// keys off the raw following set, not mutual friendship.
	resp, err := wishDomain.GetFeed(
		testutil.MockContextWithUserID(ctx, testutil.User1.ID),
		&model.GetFeedRequest{},
	)
	require.NoError(t, err)
	require.Contains(t, wishIDs(resp.Wishes), testutil.Wish3.ID)

	// user4 follows nobody, so the same wish is invisible to them.
	resp, err = wishDomain.GetFeed(
		testutil.MockContextWithUserID(ctx, testutil.User4.ID),
		&model.GetFeedRequest{},
	)
	require.NoError(t, err)
	require.NotContains(t, wishIDs(resp.Wishes), testutil.Wish3.ID)
}

func Test_wishDomain_GetUserWishes(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	wishDomain := newTestWishDomain()

	// The owner sees all of their wishes.
	resp, err := wishDomain.GetUserWishes(
		testutil.MockContextWithUserID(ctx, testutil.User1.ID),
		&model.GetUserWishesRequest{UserID: testutil.User1.ID},
	)
	require.NoError(t, err)
	require.Equal(t, "all", resp.PermissionLevel)
	require.Equal(t, []string{testutil.Wish1.ID, testutil.Wish5.ID}, wishIDs(resp.Wishes))

	// A mutual friend sees public and friends-only, never private.
	resp, err = wishDomain.GetUserWishes(
		testutil.MockContextWithUserID(ctx, testutil.User2.ID),
		&model.GetUserWishesRequest{UserID: testutil.User1.ID},
	)
	require.NoError(t, err)
	require.Equal(t, "friends", resp.PermissionLevel)
	require.Equal(t, []string{testutil.Wish1.ID}, wishIDs(resp.Wishes))

	// A one-way follow grants public only: user1 follows user3, but
	// user3's friends-only wish stays hidden on user3's profile page.
	resp, err = wishDomain.GetUserWishes(
		testutil.MockContextWithUserID(ctx, testutil.User1.ID),
		&model.GetUserWishesRequest{UserID: testutil.User3.ID},
	)
	require.NoError(t, err)
	require.Equal(t, "public", resp.PermissionLevel)
	require.Equal(t, []string{testutil.Wish6.ID}, wishIDs(resp.Wishes))

	// So does anonymous access.
	resp, err = wishDomain.GetUserWishes(ctx, &model.GetUserWishesRequest{UserID: testutil.User1.ID})
	require.NoError(t, err)
	require.Equal(t, "public", resp.PermissionLevel)
	require.Equal(t, []string{testutil.Wish1.ID}, wishIDs(resp.Wishes))

	_, err = wishDomain.GetUserWishes(ctx, &model.GetUserWishesRequest{UserID: "nobody"})
	require.Equal(t, "Not found user", err.Error())
}

func Test_wishDomain_Create(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	wishDomain := newTestWishDomain()
	ctxUser4 := testutil.MockContextWithUserID(ctx, testutil.User4.ID)

	resp, err := wishDomain.Create(ctxUser4, &model.CreateWishRequest{
		Title:      "  Learn the piano  ",
		Content:    "One hour a day",
		Category:   "education",
		Visibility: "friends",
		Tags:       []string{"music", " ", "practice"},
	})
	require.NoError(t, err)
	require.Equal(t, "Learn the piano", resp.Wish.Title)
	require.Equal(t, "friends", resp.Wish.Visibility)
	require.Equal(t, []string{"music", "practice"}, resp.Wish.Tags)
	require.Equal(t, testutil.User4.ID, resp.Wish.Author.ID)

	_, err = wishDomain.Create(ctxUser4, &model.CreateWishRequest{
		Title: "   ", Content: "x", Category: "personal", Visibility: "public",
	})
	require.Equal(t, "Not allow empty title or content", err.Error())

	_, err = wishDomain.Create(ctxUser4, &model.CreateWishRequest{
		Title: "x", Content: "y", Category: "nonsense", Visibility: "public",
	})
	require.Equal(t, "Invalid category nonsense", err.Error())

	_, err = wishDomain.Create(ctxUser4, &model.CreateWishRequest{
		Title: "x", Content: "y", Category: "personal", Visibility: "secret",
	})
	require.Equal(t, "Invalid visibility secret", err.Error())

	_, err = wishDomain.Create(ctx, &model.CreateWishRequest{
		Title: "x", Content: "y", Category: "personal", Visibility: "public",
	})
	require.Equal(t, "You need to authenticate before", err.Error())
}

func Test_wishDomain_DeleteAndComplete(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	wishDomain := newTestWishDomain()
	ctxUser1 := testutil.MockContextWithUserID(ctx, testutil.User1.ID)
	ctxUser2 := testutil.MockContextWithUserID(ctx, testutil.User2.ID)

	// Only the author can modify a wish.
	_, err := wishDomain.Delete(ctxUser2, &model.DeleteWishRequest{ID: testutil.Wish1.ID})
	require.Equal(t, "Only the author can modify a wish", err.Error())

	_, err = wishDomain.MarkCompleted(ctxUser2, &model.CompleteWishRequest{ID: testutil.Wish1.ID})
	require.Equal(t, "Only the author can modify a wish", err.Error())

	// Completing records the timestamp; a second completion is rejected.
	resp, err := wishDomain.MarkCompleted(ctxUser1, &model.CompleteWishRequest{ID: testutil.Wish1.ID})
	require.NoError(t, err)
	require.True(t, resp.Wish.IsCompleted)
	require.NotEmpty(t, resp.Wish.CompletedAt)

	_, err = wishDomain.MarkCompleted(ctxUser1, &model.CompleteWishRequest{ID: testutil.Wish1.ID})
	require.Equal(t, "Wish is already completed", err.Error())

	// Deleting removes the wish from the author's list.
	_, err = wishDomain.Delete(ctxUser1, &model.DeleteWishRequest{ID: testutil.Wish5.ID})
	require.NoError(t, err)

	list, err := wishDomain.GetUserWishes(ctxUser1, &model.GetUserWishesRequest{UserID: testutil.User1.ID})
	require.NoError(t, err)
	require.Equal(t, []string{testutil.Wish1.ID}, wishIDs(list.Wishes))

	_, err = wishDomain.Delete(ctxUser1, &model.DeleteWishRequest{ID: "nothing"})
	require.Equal(t, "Not found wish", err.Error())
}
