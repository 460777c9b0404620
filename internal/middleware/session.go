package middleware

import (
	"context"

	"github.com/wishwall/backend/pkg/router"
	"github.com/wishwall/backend/pkg/xcontext"
)

// SessionStarter is implemented by responses that open an authenticated
// session for the returned user id.
type SessionStarter interface {
	SessionUserID() string
}

// SessionEnder is implemented by responses that terminate the session.
type SessionEnder interface {
	EndSession() bool
}

func HandleSaveSession() router.CloserFunc {
	return func(ctx context.Context) {
		resp := router.Response(ctx)
		if resp == nil {
			return
		}

		switch r := resp.(type) {
		case SessionStarter:
			saveSession(ctx, r.SessionUserID())
		case SessionEnder:
			if r.EndSession() {
				saveSession(ctx, "")
			}
		}
	}
}

func saveSession(ctx context.Context, userID string) {
	req := xcontext.HTTPRequest(ctx)
	session, err := xcontext.SessionStore(ctx).Get(req, xcontext.Configs(ctx).Session.Name)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot get session: %v", err)
		return
	}

	if userID == "" {
		session.Options.MaxAge = -1
		delete(session.Values, "user_id")
	} else {
		session.Values["user_id"] = userID
	}

	if err := session.Save(req, xcontext.HTTPWriter(ctx)); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot save session: %v", err)
	}
}
