package router

import (
	"context"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/rs/cors"
	"github.com/wishwall/backend/config"
	"github.com/wishwall/backend/internal/model"
	"github.com/wishwall/backend/pkg/authenticator"
	"github.com/wishwall/backend/pkg/errorx"
	"github.com/wishwall/backend/pkg/logger"
	"github.com/wishwall/backend/pkg/xcontext"
	"gorm.io/gorm"
)

// HandlerFunc is the generic signature of an endpoint handler. The request is
// already bound from the query string or the json body when it is called.
type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// MiddlewareFunc runs before the handler. It can enrich the context or stop
// the request by returning an error.
type MiddlewareFunc func(ctx context.Context) (context.Context, error)

// CloserFunc runs after the handler and after the response is recorded. It is
// used for session saving and request logging.
type CloserFunc func(ctx context.Context)

type Router struct {
	mux *http.ServeMux

	db     *gorm.DB
	cfg    config.Configs
	logger logger.Logger

	tokenEngine  authenticator.TokenEngine[model.AccessToken]
	sessionStore sessions.Store

	befores []MiddlewareFunc
	closers []CloserFunc
}

func New(db *gorm.DB, cfg config.Configs, logger logger.Logger) *Router {
	return &Router{
		mux:          http.NewServeMux(),
		db:           db,
		cfg:          cfg,
		logger:       logger,
		tokenEngine:  authenticator.NewTokenEngine[model.AccessToken](cfg.Auth.AccessToken),
		sessionStore: sessions.NewCookieStore([]byte(cfg.Session.Secret)),
	}
}

// Branch returns a router sharing the same mux but with an independent
// middleware and closer chain. Endpoints registered on the branch inherit the
// middlewares registered on it before the registration.
func (r *Router) Branch() *Router {
	clone := *r
	clone.befores = make([]MiddlewareFunc, len(r.befores))
	copy(clone.befores, r.befores)
	clone.closers = make([]CloserFunc, len(r.closers))
	copy(clone.closers, r.closers)
	return &clone
}

func (r *Router) Before(middleware MiddlewareFunc) {
	r.befores = append(r.befores, middleware)
}

func (r *Router) AfterResponse(closer CloserFunc) {
	r.closers = append(r.closers, closer)
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	registerHandler(r, http.MethodGet, pattern, handler)
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	registerHandler(r, http.MethodPost, pattern, handler)
}

func (r *Router) Handler() http.Handler {
	if len(r.cfg.ApiServer.AllowCORS) == 0 {
		return r.mux
	}

	return cors.New(cors.Options{
		AllowedOrigins:   r.cfg.ApiServer.AllowCORS,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler(r.mux)
}

func registerHandler[Request, Response any](
	r *Router, method, pattern string, handler HandlerFunc[Request, Response],
) {
	befores := make([]MiddlewareFunc, len(r.befores))
	copy(befores, r.befores)
	closers := make([]CloserFunc, len(r.closers))
	copy(closers, r.closers)

	r.mux.HandleFunc(pattern, func(w http.ResponseWriter, req *http.Request) {
		if req.Method != method {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		ctx := r.newRequestContext(req, w)

		func() {
			for _, before := range befores {
				newCtx, err := before(ctx)
				if err != nil {
					setError(ctx, err)
					return
				}
				ctx = newCtx
			}

			var request Request
			if err := bindRequest(req, method, &request); err != nil {
				r.logger.Warnf("cannot bind the request: %v", err)
				setError(ctx, errorx.New(errorx.BadRequest, "Cannot bind the request"))
				return
			}

			resp, err := handler(ctx, &request)
			if err != nil {
				setError(ctx, err)
				return
			}

			setResponse(ctx, resp)
		}()

		// Closers run before the body is written so they can still set
		// headers and cookies.
		for _, closer := range closers {
			closer(ctx)
		}

		if err := Error(ctx); err != nil {
			writeResponse(ctx, newErrorResponse(err))
		} else {
			writeResponse(ctx, newResponse(getRequestState(ctx).response))
		}
	})
}

func (r *Router) newRequestContext(req *http.Request, w http.ResponseWriter) context.Context {
	ctx := req.Context()
	ctx = xcontext.WithDB(ctx, r.db)
	ctx = xcontext.WithConfigs(ctx, r.cfg)
	ctx = xcontext.WithLogger(ctx, r.logger)
	ctx = xcontext.WithTokenEngine(ctx, r.tokenEngine)
	ctx = xcontext.WithSessionStore(ctx, r.sessionStore)
	ctx = xcontext.WithHTTPRequest(ctx, req)
	ctx = xcontext.WithHTTPWriter(ctx, w)
	return withRequestState(ctx)
}
