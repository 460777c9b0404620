package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/wishwall/backend/internal/entity"
	"github.com/wishwall/backend/pkg/xcontext"
	"github.com/wishwall/backend/pkg/xredis"
)

const cacheUserTTL = 5 * time.Minute

func cacheKeyUser(id string) string {
	return fmt.Sprintf("cache:user:%s", id)
}

type UserRepository interface {
	Create(ctx context.Context, data *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByIDs(ctx context.Context, ids []string) ([]entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}

type userRepository struct {
	redisClient xredis.Client
}

func NewUserRepository(redisClient xredis.Client) *userRepository {
	return &userRepository{redisClient: redisClient}
}

func (r *userRepository) Create(ctx context.Context, data *entity.User) error {
	if err := xcontext.DB(ctx).Create(data).Error; err != nil {
		return err
	}

	if err := r.redisClient.Del(ctx, cacheKeyUser(data.ID)); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot invalidate user cache: %v", err)
	}

	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var cached entity.User
	if err := r.redisClient.GetObj(ctx, cacheKeyUser(id), &cached); err == nil {
		return &cached, nil
	}

	var result entity.User
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	if err := r.redisClient.SetObj(ctx, cacheKeyUser(id), result, cacheUserTTL); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot cache user: %v", err)
	}

	return &result, nil
}

func (r *userRepository) GetByIDs(ctx context.Context, ids []string) ([]entity.User, error) {
	var result []entity.User
	if err := xcontext.DB(ctx).Find(&result, "id IN ?", ids).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var result entity.User
	if err := xcontext.DB(ctx).Take(&result, "email=?", email).Error; err != nil {
		return nil, err
	}

	return &result, nil
}
