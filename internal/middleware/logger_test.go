package middleware

import (
	"bytes"
	"context"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wishwall/backend/pkg/logger"
	"github.com/wishwall/backend/pkg/xcontext"
)

func Test_Logger_verbatimPath(t *testing.T) {
	var buf bytes.Buffer
	orig := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(orig)

	ctx := context.Background()
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.INFO))
	ctx = xcontext.WithHTTPRequest(ctx, httptest.NewRequest(http.MethodGet, "/getFeed%25x", nil))

	Logger()(ctx)

	require.Contains(t, buf.String(), "GET | /getFeed%x")
	require.NotContains(t, buf.String(), "%!")
}
