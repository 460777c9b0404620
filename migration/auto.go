package migration

import (
	"context"

	"github.com/wishwall/backend/internal/entity"
	"github.com/wishwall/backend/pkg/xcontext"
)

func AutoMigrate(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&entity.User{},
		&entity.Follow{},
		&entity.Wish{},
		&entity.Interaction{},
	)
}
