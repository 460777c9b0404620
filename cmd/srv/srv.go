package main

import (
	"context"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"github.com/wishwall/backend/config"
	"github.com/wishwall/backend/internal/domain"
	"github.com/wishwall/backend/internal/repository"
	"github.com/wishwall/backend/pkg/logger"
	"github.com/wishwall/backend/pkg/router"
	"github.com/wishwall/backend/pkg/xcontext"
	"github.com/wishwall/backend/pkg/xredis"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type srv struct {
	app *cli.App
	ctx context.Context

	configs *config.Configs
	logger  logger.Logger

	db          *gorm.DB
	redisClient xredis.Client

	userRepo        repository.UserRepository
	followRepo      repository.FollowRepository
	wishRepo        repository.WishRepository
	interactionRepo repository.InteractionRepository

	notifier *domain.GraphNotifier

	authDomain        domain.AuthDomain
	followDomain      domain.FollowDomain
	wishDomain        domain.WishDomain
	interactionDomain domain.InteractionDomain
	statisticDomain   domain.StatisticDomain

	router *router.Router
}

func (s *srv) loadConfig() {
	s.configs = &config.Configs{
		Env: getEnv("ENV", "local"),
		Database: config.DatabaseConfigs{
			Host:     getEnv("MYSQL_HOST", "localhost"),
			Port:     getEnv("MYSQL_PORT", "3306"),
			User:     getEnv("MYSQL_USER", "wishwall"),
			Password: getEnv("MYSQL_PASSWORD", "wishwall"),
			Database: getEnv("MYSQL_DATABASE", "wishwall"),
		},
		ApiServer: config.ServerConfigs{
			Host:         getEnv("HOST", "localhost"),
			Port:         getEnv("PORT", "8080"),
			DefaultLimit: getEnvAsInt("DEFAULT_LIMIT", 10),
			MaxLimit:     getEnvAsInt("MAX_LIMIT", 50),
			AllowCORS:    strings.Fields(getEnv("ALLOW_CORS", "")),
		},
		Auth: config.AuthConfigs{
			AccessToken: config.TokenConfigs{
				Name:       "access_token",
				Secret:     getEnv("TOKEN_SECRET", "token_secret"),
				Expiration: getEnvAsDuration("TOKEN_EXPIRATION", 24*time.Hour),
			},
		},
		Session: config.SessionConfigs{
			Secret: getEnv("AUTH_SESSION_SECRET", "session_secret"),
			Name:   "auth_session",
		},
		Redis: config.RedisConfigs{
			Addr: getEnv("REDIS_ADDRESS", "localhost:6379"),
		},
	}

	s.ctx = xcontext.WithConfigs(context.Background(), *s.configs)
}

func (s *srv) loadLogger() {
	level := logger.INFO
	if s.configs.Env == "local" {
		level = logger.DEBUG
	}

	s.logger = logger.NewLogger(level)
	s.ctx = xcontext.WithLogger(s.ctx, s.logger)
}

func (s *srv) loadDatabase() {
	var err error
	s.db, err = gorm.Open(mysql.Open(s.configs.Database.ConnectionString()), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	s.ctx = xcontext.WithDB(s.ctx, s.db)
}

func (s *srv) loadRedis() {
	var err error
	s.redisClient, err = xredis.NewClient(s.ctx)
	if err != nil {
		panic(err)
	}
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository(s.redisClient)
	s.followRepo = repository.NewFollowRepository()
	s.wishRepo = repository.NewWishRepository()
	s.interactionRepo = repository.NewInteractionRepository()
}

func (s *srv) loadDomains() {
	s.notifier = domain.NewGraphNotifier()
	s.authDomain = domain.NewAuthDomain(s.userRepo, s.notifier)
	s.followDomain = domain.NewFollowDomain(s.followRepo, s.userRepo, s.notifier)
	s.wishDomain = domain.NewWishDomain(s.wishRepo, s.followRepo, s.userRepo)
	s.interactionDomain = domain.NewInteractionDomain(s.interactionRepo, s.wishRepo, s.userRepo)
	s.statisticDomain = domain.NewStatisticDomain(s.wishRepo, s.followRepo)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}

	return value
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}

	return value
}
