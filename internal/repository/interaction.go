package repository

import (
	"context"
	"errors"

	"github.com/wishwall/backend/internal/entity"
	"github.com/wishwall/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type InteractionRepository interface {
	GetLike(ctx context.Context, wishID, userID string) (*entity.Interaction, error)
	GetListByWishID(ctx context.Context, wishID string) ([]entity.Interaction, error)
	Create(ctx context.Context, data *entity.Interaction) error
	Delete(ctx context.Context, id string) error
	CountLikes(ctx context.Context, wishID string) (int64, error)
}

type interactionRepository struct{}

func NewInteractionRepository() *interactionRepository {
	return &interactionRepository{}
}

func (r *interactionRepository) GetLike(ctx context.Context, wishID, userID string) (*entity.Interaction, error) {
	var result entity.Interaction
	err := xcontext.DB(ctx).
		Where("wish_id=? AND user_id=? AND kind=?", wishID, userID, entity.InteractionLike).
		Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *interactionRepository) GetListByWishID(ctx context.Context, wishID string) ([]entity.Interaction, error) {
	var result []entity.Interaction
	err := xcontext.DB(ctx).
		Where("wish_id=?", wishID).
		Order("created_at ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *interactionRepository) Create(ctx context.Context, data *entity.Interaction) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *interactionRepository) Delete(ctx context.Context, id string) error {
	tx := xcontext.DB(ctx).Where("id=?", id).Delete(&entity.Interaction{})
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected > 1 {
		return errors.New("the number of affected rows is invalid")
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *interactionRepository) CountLikes(ctx context.Context, wishID string) (int64, error) {
	var result int64
	err := xcontext.DB(ctx).
		Model(&entity.Interaction{}).
		Where("wish_id=? AND kind=?", wishID, entity.InteractionLike).
		Count(&result).Error
	if err != nil {
		return 0, err
	}

	return result, nil
}
