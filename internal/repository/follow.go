package repository

import (
	"context"
	"errors"

	"github.com/wishwall/backend/internal/entity"
	"github.com/wishwall/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type FollowRepository interface {
	Get(ctx context.Context, followerID, followingID string) (*entity.Follow, error)
	GetListByFollowerID(ctx context.Context, followerID string) ([]entity.Follow, error)
	GetListByFollowingID(ctx context.Context, followingID string) ([]entity.Follow, error)
	Create(ctx context.Context, data *entity.Follow) error
	Delete(ctx context.Context, followerID, followingID string) error
}

type followRepository struct{}

func NewFollowRepository() *followRepository {
	return &followRepository{}
}

func (r *followRepository) Get(ctx context.Context, followerID, followingID string) (*entity.Follow, error) {
	var result entity.Follow
	err := xcontext.DB(ctx).
		Where("follower_id=? AND following_id=?", followerID, followingID).
		Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *followRepository) GetListByFollowerID(ctx context.Context, followerID string) ([]entity.Follow, error) {
	var result []entity.Follow
	err := xcontext.DB(ctx).Where("follower_id=?", followerID).Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *followRepository) GetListByFollowingID(ctx context.Context, followingID string) ([]entity.Follow, error) {
	var result []entity.Follow
	err := xcontext.DB(ctx).Where("following_id=?", followingID).Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *followRepository) Create(ctx context.Context, data *entity.Follow) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *followRepository) Delete(ctx context.Context, followerID, followingID string) error {
	tx := xcontext.DB(ctx).
		Where("follower_id=? AND following_id=?", followerID, followingID).
		Delete(&entity.Follow{})

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
