package domain

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/wishwall/backend/internal/entity"
	"github.com/wishwall/backend/internal/model"
	"github.com/wishwall/backend/internal/repository"
	"github.com/wishwall/backend/pkg/enum"
	"github.com/wishwall/backend/pkg/errorx"
	"github.com/wishwall/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type WishDomain interface {
	Create(context.Context, *model.CreateWishRequest) (*model.CreateWishResponse, error)
	Delete(context.Context, *model.DeleteWishRequest) (*model.DeleteWishResponse, error)
	MarkCompleted(context.Context, *model.CompleteWishRequest) (*model.CompleteWishResponse, error)
	GetFeed(context.Context, *model.GetFeedRequest) (*model.GetFeedResponse, error)
	GetUserWishes(context.Context, *model.GetUserWishesRequest) (*model.GetUserWishesResponse, error)
}

type wishDomain struct {
	wishRepo   repository.WishRepository
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewWishDomain(
	wishRepo repository.WishRepository,
	followRepo repository.FollowRepository,
	userRepo repository.UserRepository,
) *wishDomain {
	return &wishDomain{
		wishRepo:   wishRepo,
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// parseCategory maps the wire category to the enum. Both an empty value
// and the special value "all" mean no category restriction.
func parseCategory(category string) (entity.WishCategory, error) {
	if category == "" || category == "all" {
		return "", nil
	}

	return enum.ToEnum[entity.WishCategory](category)
}

func (d *wishDomain) Create(
	ctx context.Context, req *model.CreateWishRequest,
) (*model.CreateWishResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
	}

	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	if title == "" || content == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty title or content")
	}

	category, err := enum.ToEnum[entity.WishCategory](req.Category)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Invalid category: %v", err)
		return nil, errorx.New(errorx.BadRequest, "Invalid category %s", req.Category)
	}

	visibility, err := enum.ToEnum[entity.WishVisibility](req.Visibility)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Invalid visibility: %v", err)
		return nil, errorx.New(errorx.BadRequest, "Invalid visibility %s", req.Visibility)
	}

	tags := []string{}
	for _, tag := range req.Tags {
		if t := strings.TrimSpace(tag); t != "" {
			tags = append(tags, t)
		}
	}

	wish := &entity.Wish{
		Base:       entity.Base{ID: uuid.NewString()},
		AuthorID:   userID,
		Title:      title,
		Content:    content,
		Category:   category,
		Visibility: visibility,
		Tags:       tags,
	}

	if err := d.wishRepo.Create(ctx, wish); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create wish: %v", err)
		return nil, errorx.Unknown
	}

	author, err := d.userRepo.GetByID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get wish author: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.CreateWishResponse{Wish: model.ConvertWish(wish, model.ConvertUser(author, false))}
	return &resp, nil
}

func (d *wishDomain) Delete(
	ctx context.Context, req *model.DeleteWishRequest,
) (*model.DeleteWishResponse, error) {
	wish, err := d.authorizedWish(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if err := d.wishRepo.Delete(ctx, wish.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete wish: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeleteWishResponse{Success: true}, nil
}

func (d *wishDomain) MarkCompleted(
	ctx context.Context, req *model.CompleteWishRequest,
) (*model.CompleteWishResponse, error) {
	wish, err := d.authorizedWish(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if err := d.wishRepo.MarkCompleted(ctx, wish.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.BadRequest, "Wish is already completed")
		}

		xcontext.Logger(ctx).Errorf("Cannot complete wish: %v", err)
		return nil, errorx.Unknown
	}

	completed, err := d.wishRepo.GetByID(ctx, wish.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot reload wish: %v", err)
		return nil, errorx.Unknown
	}

	author, err := d.userRepo.GetByID(ctx, completed.AuthorID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get wish author: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.CompleteWishResponse{Wish: model.ConvertWish(completed, model.ConvertUser(author, false))}
	return &resp, nil
}

func (d *wishDomain) GetFeed(
	ctx context.Context, req *model.GetFeedRequest,
) (*model.GetFeedResponse, error) {
	category, err := parseCategory(req.Category)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Invalid category: %v", err)
		return nil, errorx.New(errorx.BadRequest, "Invalid category %s", req.Category)
	}

	viewerID := xcontext.RequestUserID(ctx)

	followingIDs := []string{}
	followingSet := map[string]bool{}
	if viewerID != "" {
		edges, err := d.followRepo.GetListByFollowerID(ctx, viewerID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot resolve following list: %v", err)
			return nil, errorx.New(errorx.Unavailable, "Cannot resolve following list")
		}

		for _, edge := range edges {
			followingIDs = append(followingIDs, edge.FollowingID)
			followingSet[edge.FollowingID] = true
		}
	}

	wishes, err := d.wishRepo.GetFeed(ctx, repository.FeedFilter{
		ViewerID:     viewerID,
		FollowingIDs: followingIDs,
		Category:     category,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get feed: %v", err)
		return nil, errorx.New(errorx.Unavailable, "Cannot get feed")
	}

	ranked := rankFeed(wishes, viewerID, followingSet)

	authors, err := d.authorMap(ctx, ranked)
	if err != nil {
		return nil, err
	}

	resp := &model.GetFeedResponse{Wishes: []model.Wish{}}
	for i := range ranked {
		author := model.ConvertUser(authors[ranked[i].AuthorID], false)
		resp.Wishes = append(resp.Wishes, model.ConvertWish(&ranked[i], author))
	}

	return resp, nil
}

func (d *wishDomain) GetUserWishes(
	ctx context.Context, req *model.GetUserWishesRequest,
) (*model.GetUserWishesResponse, error) {
	if req.UserID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty user id")
	}

	category, err := parseCategory(req.Category)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Invalid category: %v", err)
		return nil, errorx.New(errorx.BadRequest, "Invalid category %s", req.Category)
	}

	viewerID := xcontext.RequestUserID(ctx)

	isFriend := false
	if viewerID != "" && viewerID != req.UserID {
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
		Category:     category,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user wishes: %v", err)
		return nil, errorx.New(errorx.Unavailable, "Cannot get user wishes")
	}

	author, err := d.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetUserWishesResponse{
		Wishes:          []model.Wish{},
		PermissionLevel: string(level),
	}
	authorModel := model.ConvertUser(author, false)
	for i := range wishes {
		resp.Wishes = append(resp.Wishes, model.ConvertWish(&wishes[i], authorModel))
	}

	return resp, nil
}

func (d *wishDomain) authorizedWish(ctx context.Context, wishID string) (*entity.Wish, error) {
	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
	}

	if wishID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty wish id")
	}

	wish, err := d.wishRepo.GetByID(ctx, wishID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found wish")
		}

		xcontext.Logger(ctx).Errorf("Cannot get wish: %v", err)
		return nil, errorx.Unknown
	}

	if wish.AuthorID != userID {
		return nil, errorx.New(errorx.PermissionDenied, "Only the author can modify a wish")
	}

	return wish, nil
}

func (d *wishDomain) authorMap(ctx context.Context, wishes []entity.Wish) (map[string]*entity.User, error) {
	idSet := map[string]bool{}
	ids := []string{}
	for i := range wishes {
		if !idSet[wishes[i].AuthorID] {
			idSet[wishes[i].AuthorID] = true
			ids = append(ids, wishes[i].AuthorID)
		}
	}

	if len(ids) == 0 {
		return map[string]*entity.User{}, nil
	}

	users, err := d.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get wish authors: %v", err)
		return nil, errorx.Unknown
	}

	userMap := map[string]*entity.User{}
	for i := range users {
		userMap[users[i].ID] = &users[i]
	}

	return userMap, nil
}
