package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/wishwall/backend/pkg/errorx"
	"github.com/wishwall/backend/pkg/router"
	"github.com/wishwall/backend/pkg/xcontext"
)

// ResolveUserID resolves the caller identity from the bearer token or the
// session cookie and stores it in the context. A request with no credential
// passes through as anonymous, but an explicit invalid token is rejected.
func ResolveUserID() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		req := xcontext.HTTPRequest(ctx)

		if token := bearerToken(req); token != "" {
			info, err := xcontext.TokenEngine(ctx).Verify(token)
			if err != nil {
				return nil, errorx.New(errorx.Unauthenticated, "Invalid access token")
			}

			return xcontext.WithRequestUserID(ctx, info.ID), nil
		}

		session, err := xcontext.SessionStore(ctx).Get(req, xcontext.Configs(ctx).Session.Name)
		if err != nil {
			// A corrupted cookie is treated as anonymous.
			return ctx, nil
		}

		if userID, ok := session.Values["user_id"].(string); ok && userID != "" {
			return xcontext.WithRequestUserID(ctx, userID), nil
		}

		return ctx, nil
	}
}

// Authenticate rejects anonymous requests. It must run after ResolveUserID.
func Authenticate() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		if xcontext.RequestUserID(ctx) == "" {
			return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
		}

		return ctx, nil
	}
}

func bearerToken(req *http.Request) string {
	authorization := req.Header.Get("Authorization")
	auth, token, found := strings.Cut(authorization, " ")
	if found && auth == "Bearer" {
		return token
	}

	return ""
}
