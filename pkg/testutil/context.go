package testutil

import (
	"context"
	"time"

	"github.com/gorilla/sessions"
	"github.com/wishwall/backend/config"
	"github.com/wishwall/backend/internal/model"
	"github.com/wishwall/backend/migration"
	"github.com/wishwall/backend/pkg/authenticator"
	"github.com/wishwall/backend/pkg/logger"
	"github.com/wishwall/backend/pkg/xcontext"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// MockContext returns an anonymous context backed by an in-memory sqlite
// database with all tables migrated.
func MockContext() context.Context {
	cfg := config.Configs{
		Env: "testing",
		ApiServer: config.ServerConfigs{
			DefaultLimit: 10,
			MaxLimit:     50,
		},
		Auth: config.AuthConfigs{
			AccessToken: config.TokenConfigs{
				Name:       "access_token",
				Secret:     "token-secret",
				Expiration: time.Minute,
			},
		},
		Session: config.SessionConfigs{
			Secret: "session-secret",
			Name:   "test-session",
		},
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.SILENCE))
	ctx = xcontext.WithDB(ctx, db)
	ctx = xcontext.WithTokenEngine(ctx, authenticator.NewTokenEngine[model.AccessToken](cfg.Auth.AccessToken))
	ctx = xcontext.WithSessionStore(ctx, sessions.NewCookieStore([]byte(cfg.Session.Secret)))

	if err := migration.AutoMigrate(ctx); err != nil {
		panic(err)
	}

	return ctx
}

// MockContextWithUserID returns a MockContext authenticated as the given
// user.
func MockContextWithUserID(ctx context.Context, userID string) context.Context {
	if ctx == nil {
		ctx = MockContext()
	}

	return xcontext.WithRequestUserID(ctx, userID)
}
