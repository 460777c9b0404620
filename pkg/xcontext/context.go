package xcontext

import (
	"context"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/wishwall/backend/config"
	"github.com/wishwall/backend/internal/model"
	"github.com/wishwall/backend/pkg/authenticator"
	"github.com/wishwall/backend/pkg/logger"
	"gorm.io/gorm"
)

type (
	dbKey           struct{}
	loggerKey       struct{}
	configsKey      struct{}
	userIDKey       struct{}
	tokenEngineKey  struct{}
	sessionStoreKey struct{}
	httpRequestKey  struct{}
	httpWriterKey   struct{}
)

func WithDB(ctx context.Context, db *gorm.DB) context.Context {
	return context.WithValue(ctx, dbKey{}, db)
}

// DB returns the gorm handle carried by the context. It panics if the
// context was not set up with WithDB, which always indicates a wiring bug.
func DB(ctx context.Context) *gorm.DB {
	return ctx.Value(dbKey{}).(*gorm.DB)
}

// Transaction runs fn with the context database replaced by a transaction.
// The transaction commits if fn returns nil and rolls back otherwise.
func Transaction(ctx context.Context, fn func(context.Context) error) error {
	return DB(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(WithDB(ctx, tx))
	})
}

func WithLogger(ctx context.Context, l logger.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

func Logger(ctx context.Context) logger.Logger {
	if l, ok := ctx.Value(loggerKey{}).(logger.Logger); ok {
		return l
	}

	return logger.NewLogger(logger.INFO)
}

func WithConfigs(ctx context.Context, cfg config.Configs) context.Context {
	return context.WithValue(ctx, configsKey{}, cfg)
}

func Configs(ctx context.Context) config.Configs {
	return ctx.Value(configsKey{}).(config.Configs)
}

func WithRequestUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// RequestUserID returns the authenticated user id of the current request,
// or an empty string for anonymous requests.
func RequestUserID(ctx context.Context) string {
	if id, ok := ctx.Value(userIDKey{}).(string); ok {
		return id
	}

	return ""
}

func WithTokenEngine(ctx context.Context, engine authenticator.TokenEngine[model.AccessToken]) context.Context {
	return context.WithValue(ctx, tokenEngineKey{}, engine)
}

func TokenEngine(ctx context.Context) authenticator.TokenEngine[model.AccessToken] {
	return ctx.Value(tokenEngineKey{}).(authenticator.TokenEngine[model.AccessToken])
}

func WithSessionStore(ctx context.Context, store sessions.Store) context.Context {
	return context.WithValue(ctx, sessionStoreKey{}, store)
}

func SessionStore(ctx context.Context) sessions.Store {
	return ctx.Value(sessionStoreKey{}).(sessions.Store)
}

func WithHTTPRequest(ctx context.Context, r *http.Request) context.Context {
	return context.WithValue(ctx, httpRequestKey{}, r)
}

func HTTPRequest(ctx context.Context) *http.Request {
	if r, ok := ctx.Value(httpRequestKey{}).(*http.Request); ok {
		return r
	}

	return nil
}

func WithHTTPWriter(ctx context.Context, w http.ResponseWriter) context.Context {
	return context.WithValue(ctx, httpWriterKey{}, w)
}

func HTTPWriter(ctx context.Context) http.ResponseWriter {
	if w, ok := ctx.Value(httpWriterKey{}).(http.ResponseWriter); ok {
		return w
	}

	return nil
}
