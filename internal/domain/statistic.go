package domain

import (
	"context"

	"github.com/wishwall/backend/internal/entity"
	"github.com/wishwall/backend/internal/model"
	"github.com/wishwall/backend/internal/repository"
	"github.com/wishwall/backend/pkg/errorx"
	"github.com/wishwall/backend/pkg/xcontext"
)

type StatisticDomain interface {
	GetUserStats(context.Context, *model.GetUserStatsRequest) (*model.GetUserStatsResponse, error)
}

type statisticDomain struct {
	wishRepo   repository.WishRepository
	followRepo repository.FollowRepository
}

func NewStatisticDomain(
	wishRepo repository.WishRepository,
	followRepo repository.FollowRepository,
) *statisticDomain {
	return &statisticDomain{
		wishRepo:   wishRepo,
		followRepo: followRepo,
	}
}

// GetUserStats summarizes a user's wishes as seen by the viewer. The
// counts cover only the visibility-filtered set, so a stranger's total
// equals the public count; private and friends-only wishes never leak
// into the numbers. Like and comment totals sum the denormalized
// per-wish counters.
func (d *statisticDomain) GetUserStats(
	ctx context.Context, req *model.GetUserStatsRequest,
) (*model.GetUserStatsResponse, error) {
	if req.UserID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty user id")
	}

	viewerID := xcontext.RequestUserID(ctx)

	isFriend := false
	if viewerID != "" && viewerID != req.UserID {
		var err error
		isFriend, err = isMutualFollow(ctx, d.followRepo, viewerID, req.UserID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot check friendship: %v", err)
			return nil, errorx.New(errorx.Unavailable, "Cannot check friendship")
		}
	}

	level := PermissionLevelFor(viewerID, req.UserID, isFriend)

	wishes, err := d.wishRepo.GetListByAuthor(ctx, repository.AuthorFilter{
		AuthorID:     req.UserID,
		Visibilities: AllowedVisibilities(level),
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user wishes: %v", err)
		return nil, errorx.New(errorx.Unavailable, "Cannot get user wishes")
	}

	resp := &model.GetUserStatsResponse{PermissionLevel: string(level)}
	for i := range wishes {
		resp.Total++
		switch wishes[i].Visibility {
		case entity.VisibilityPublic:
			resp.Public++
		case entity.VisibilityPrivate:
			resp.Private++
		case entity.VisibilityFriends:
			resp.Friends++
		}

		resp.TotalLikes += wishes[i].LikeCount
		resp.TotalComments += wishes[i].CommentCount
	}

	return resp, nil
}
