package domain

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/wishwall/backend/internal/entity"
	"github.com/wishwall/backend/internal/model"
	"github.com/wishwall/backend/internal/repository"
	"github.com/wishwall/backend/pkg/errorx"
	"github.com/wishwall/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type InteractionDomain interface {
	ToggleLike(context.Context, *model.ToggleLikeRequest) (*model.ToggleLikeResponse, error)
	AddComment(context.Context, *model.AddCommentRequest) (*model.AddCommentResponse, error)
	GetList(context.Context, *model.GetInteractionsRequest) (*model.GetInteractionsResponse, error)
	RecountLikes(context.Context, *model.RecountLikesRequest) (*model.RecountLikesResponse, error)
}

type interactionDomain struct {
	interactionRepo repository.InteractionRepository
	wishRepo        repository.WishRepository
	userRepo        repository.UserRepository
}

func NewInteractionDomain(
	interactionRepo repository.InteractionRepository,
	wishRepo repository.WishRepository,
	userRepo repository.UserRepository,
) *interactionDomain {
	return &interactionDomain{
		interactionRepo: interactionRepo,
		wishRepo:        wishRepo,
		userRepo:        userRepo,
	}
}

func (d *interactionDomain) ToggleLike(
	ctx context.Context, req *model.ToggleLikeRequest,
) (*model.ToggleLikeResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
	}

	if _, err := d.wishRepo.GetByID(ctx, req.WishID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found wish")
		}

		xcontext.Logger(ctx).Errorf("Cannot get wish: %v", err)
		return nil, errorx.Unknown
	}

	// The existence probe runs immediately before the write so a user
	// holds at most one like per wish. The counter moves by a relative
	// update inside the same transaction as the interaction write.
	like, err := d.interactionRepo.GetLike(ctx, req.WishID, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot check like state: %v", err)
		return nil, errorx.New(errorx.Unavailable, "Cannot check like state")
	}

	liked := false
	if like != nil {
		err = xcontext.Transaction(ctx, func(ctx context.Context) error {
			if err := d.interactionRepo.Delete(ctx, like.ID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					// Someone else removed it first; leave the counter alone.
					return nil
				}

				return err
			}

			return d.wishRepo.DecreaseLikeCount(ctx, req.WishID)
		})
	} else {
		liked = true
		err = xcontext.Transaction(ctx, func(ctx context.Context) error {
			interaction := &entity.Interaction{
				Base:   entity.Base{ID: uuid.NewString()},
				WishID: req.WishID,
				UserID: userID,
				Kind:   entity.InteractionLike,
			}

			if err := d.interactionRepo.Create(ctx, interaction); err != nil {
				return err
			}

			return d.wishRepo.IncreaseLikeCount(ctx, req.WishID)
		})
	}

	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot toggle like: %v", err)
		return nil, errorx.Unknown
	}

	wish, err := d.wishRepo.GetByID(ctx, req.WishID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot reload wish: %v", err)
		return nil, errorx.Unknown
	}

	return &model.ToggleLikeResponse{Liked: liked, LikeCount: wish.LikeCount}, nil
}

func (d *interactionDomain) AddComment(
	ctx context.Context, req *model.AddCommentRequest,
) (*model.AddCommentResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty comment")
	}

	if _, err := d.wishRepo.GetByID(ctx, req.WishID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found wish")
		}

		xcontext.Logger(ctx).Errorf("Cannot get wish: %v", err)
		return nil, errorx.Unknown
	}

	comment := &entity.Interaction{
		Base:    entity.Base{ID: uuid.NewString()},
		WishID:  req.WishID,
		UserID:  userID,
		Kind:    entity.InteractionComment,
		Content: content,
	}

	err := xcontext.Transaction(ctx, func(ctx context.Context) error {
		if err := d.interactionRepo.Create(ctx, comment); err != nil {
			return err
		}

		return d.wishRepo.IncreaseCommentCount(ctx, req.WishID)
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create comment: %v", err)
		return nil, errorx.Unknown
	}

	user, err := d.userRepo.GetByID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get comment author: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.AddCommentResponse{
		Comment: model.ConvertInteraction(comment, model.ConvertUser(user, false)),
	}
	return &resp, nil
}

func (d *interactionDomain) GetList(
	ctx context.Context, req *model.GetInteractionsRequest,
) (*model.GetInteractionsResponse, error) {
	if req.WishID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty wish id")
	}

	interactions, err := d.interactionRepo.GetListByWishID(ctx, req.WishID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get interactions: %v", err)
		return nil, errorx.New(errorx.Unavailable, "Cannot get interactions")
	}

	idSet := map[string]bool{}
	ids := []string{}
	for i := range interactions {
		if !idSet[interactions[i].UserID] {
			idSet[interactions[i].UserID] = true
			ids = append(ids, interactions[i].UserID)
		}
	}

	userMap := map[string]*entity.User{}
	if len(ids) > 0 {
		users, err := d.userRepo.GetByIDs(ctx, ids)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get interaction users: %v", err)
			return nil, errorx.Unknown
		}

		for i := range users {
			userMap[users[i].ID] = &users[i]
		}
	}

	resp := &model.GetInteractionsResponse{Interactions: []model.Interaction{}}
	for i := range interactions {
		user := model.ConvertUser(userMap[interactions[i].UserID], false)
		resp.Interactions = append(resp.Interactions, model.ConvertInteraction(&interactions[i], user))
	}

	return resp, nil
}

// RecountLikes reconciles the denormalized counter with the true number
// of like interactions. Counters drift only when concurrent toggles race
// past each other; this is the repair path for that gap.
func (d *interactionDomain) RecountLikes(
	ctx context.Context, req *model.RecountLikesRequest,
) (*model.RecountLikesResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
	}

	wish, err := d.wishRepo.GetByID(ctx, req.WishID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found wish")
		}

		xcontext.Logger(ctx).Errorf("Cannot get wish: %v", err)
		return nil, errorx.Unknown
	}

	if wish.AuthorID != userID {
		return nil, errorx.New(errorx.PermissionDenied, "Only the author can recount likes")
	}

	count, err := d.interactionRepo.CountLikes(ctx, req.WishID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count likes: %v", err)
		return nil, errorx.New(errorx.Unavailable, "Cannot count likes")
	}

	if err := d.wishRepo.SetLikeCount(ctx, req.WishID, int(count)); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot set like count: %v", err)
		return nil, errorx.Unknown
	}

	return &model.RecountLikesResponse{LikeCount: int(count)}, nil
}
