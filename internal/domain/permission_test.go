package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wishwall/backend/internal/entity"
	"github.com/wishwall/backend/internal/repository"
	"github.com/wishwall/backend/pkg/testutil"
)

func Test_PermissionLevelFor(t *testing.T) {
	tests := []struct {
		name     string
		viewerID string
		targetID string
		isFriend bool
		want     PermissionLevel
	}{
		{
			name:     "owner sees everything",
			viewerID: "user1",
			targetID: "user1",
			want:     PermissionAll,
		},
		{
			name:     "mutual friend sees friends level",
			viewerID: "user1",
			targetID: "user2",
			isFriend: true,
			want:     PermissionFriend,
		},
		{
			name:     "one-way follow grants nothing",
			viewerID: "user1",
			targetID: "user3",
			isFriend: false,
			want:     PermissionPublic,
		},
		{
			name:     "anonymous viewer",
			viewerID: "",
			targetID: "user1",
			want:     PermissionPublic,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, PermissionLevelFor(tt.viewerID, tt.targetID, tt.isFriend))
		})
	}
}

func Test_AllowedVisibilities(t *testing.T) {
	require.Equal(t,
		[]entity.WishVisibility{
			entity.VisibilityPublic,
			entity.VisibilityPrivate,
			entity.VisibilityFriends,
		},
		AllowedVisibilities(PermissionAll))

	require.Equal(t,
		[]entity.WishVisibility{entity.VisibilityPublic, entity.VisibilityFriends},
		AllowedVisibilities(PermissionFriend))

	require.Equal(t,
		[]entity.WishVisibility{entity.VisibilityPublic},
		AllowedVisibilities(PermissionPublic))
}

func Test_isMutualFollow(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	followRepo := repository.NewFollowRepository()

	// user1 and user2 follow each other.
	isFriend, err := isMutualFollow(ctx, followRepo, "user1", "user2")
	require.NoError(t, err)
	require.True(t, isFriend)

	isFriend, err = isMutualFollow(ctx, followRepo, "user2", "user1")
	require.NoError(t, err)
	require.True(t, isFriend)

	// user1 follows user3 one-way.
	isFriend, err = isMutualFollow(ctx, followRepo, "user1", "user3")
	require.NoError(t, err)
	require.False(t, isFriend)

	isFriend, err = isMutualFollow(ctx, followRepo, "user3", "user1")
	require.NoError(t, err)
	require.False(t, isFriend)
}
