package domain

import (
	"context"
	"errors"

	"github.com/wishwall/backend/internal/entity"
	"github.com/wishwall/backend/internal/model"
	"github.com/wishwall/backend/internal/repository"
	"github.com/wishwall/backend/pkg/errorx"
	"github.com/wishwall/backend/pkg/xcontext"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type FollowDomain interface {
	GetGraph(context.Context, *model.GetFollowGraphRequest) (*model.GetFollowGraphResponse, error)
	Toggle(context.Context, *model.ToggleFollowRequest) (*model.ToggleFollowResponse, error)
}

type followDomain struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
	notifier   *GraphNotifier
}

func NewFollowDomain(
	followRepo repository.FollowRepository,
	userRepo repository.UserRepository,
	notifier *GraphNotifier,
) *followDomain {
	return &followDomain{
		followRepo: followRepo,
		userRepo:   userRepo,
		notifier:   notifier,
	}
}

func (d *followDomain) GetGraph(
	ctx context.Context, req *model.GetFollowGraphRequest,
) (*model.GetFollowGraphResponse, error) {
	userID := req.UserID
	if userID == "" {
		userID = xcontext.RequestUserID(ctx)
	}

	if userID == "" {
		return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
	}

	var following, followers []entity.Follow
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		following, err = d.followRepo.GetListByFollowerID(egCtx, userID)
		return err
	})
	eg.Go(func() error {
		var err error
		followers, err = d.followRepo.GetListByFollowingID(egCtx, userID)
		return err
	})

	if err := eg.Wait(); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot resolve follow graph: %v", err)
		return nil, errorx.New(errorx.Unavailable, "Cannot resolve follow graph")
	}

	followerSet := map[string]bool{}
	for _, edge := range followers {
		followerSet[edge.FollowerID] = true
	}

	followingIDs := []string{}
	friendSet := map[string]bool{}
	for _, edge := range following {
		followingIDs = append(followingIDs, edge.FollowingID)
		if followerSet[edge.FollowingID] {
			friendSet[edge.FollowingID] = true
		}
	}

	involved := append([]string{}, followingIDs...)
	for _, edge := range followers {
		if !friendSet[edge.FollowerID] {
			involved = append(involved, edge.FollowerID)
		}
	}

	users, err := d.userRepo.GetByIDs(ctx, involved)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get users of follow graph: %v", err)
		return nil, errorx.Unknown
	}

	userMap := map[string]*entity.User{}
	for i := range users {
		userMap[users[i].ID] = &users[i]
	}

	resp := &model.GetFollowGraphResponse{
		FollowingIDs:  followingIDs,
		Friends:       []model.User{},
		FollowingOnly: []model.User{},
		FollowersOnly: []model.User{},
	}

	for _, edge := range following {
		u := model.ConvertUser(userMap[edge.FollowingID], false)
		if friendSet[edge.FollowingID] {
			resp.Friends = append(resp.Friends, u)
		} else {
			resp.FollowingOnly = append(resp.FollowingOnly, u)
		}
	}

	for _, edge := range followers {
		if !friendSet[edge.FollowerID] {
			resp.FollowersOnly = append(resp.FollowersOnly, model.ConvertUser(userMap[edge.FollowerID], false))
		}
	}

	return resp, nil
}

func (d *followDomain) Toggle(
	ctx context.Context, req *model.ToggleFollowRequest,
) (*model.ToggleFollowResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
	}

	if req.UserID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty user id")
	}

	if req.UserID == userID {
		return nil, errorx.New(errorx.BadRequest, "Not allow following yourself")
	}

	if _, err := d.userRepo.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	// The existence check runs immediately before the write. Concurrent
	// toggles can still race past it; the composite primary key turns a
	// double create into a storage error instead of a duplicate edge.
	_, err := d.followRepo.Get(ctx, userID, req.UserID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot check follow state: %v", err)
		return nil, errorx.New(errorx.Unavailable, "Cannot check follow state")
	}

	if err == nil {
		if err := d.followRepo.Delete(ctx, userID, req.UserID); err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				xcontext.Logger(ctx).Errorf("Cannot delete follow edge: %v", err)
				return nil, errorx.Unknown
			}
		}

		d.notifier.Notify(GraphEvent{UserID: userID, Change: GraphChangeUnfollow})
		return &model.ToggleFollowResponse{Following: false}, nil
	}

	err = d.followRepo.Create(ctx, &entity.Follow{
		FollowerID:  userID,
		FollowingID: req.UserID,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create follow edge: %v", err)
		return nil, errorx.Unknown
	}

	d.notifier.Notify(GraphEvent{UserID: userID, Change: GraphChangeFollow})
	return &model.ToggleFollowResponse{Following: true}, nil
}
