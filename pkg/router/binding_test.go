package router

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type sampleQuery struct {
	UserID   string `json:"user_id"`
	Category string `json:"category"`
	Limit    int    `json:"limit"`
	Detailed bool   `json:"detailed"`
	skipped  string
}

func Test_bindQuery(t *testing.T) {
	r := httptest.NewRequest("GET", "/wishes?user_id=user1&category=travel&limit=20&detailed=true", nil)

	var query sampleQuery
	require.NoError(t, bindQuery(r, &query))
	require.Equal(t, "user1", query.UserID)
	require.Equal(t, "travel", query.Category)
	require.Equal(t, 20, query.Limit)
	require.True(t, query.Detailed)
	require.Empty(t, query.skipped)

	// Missing parameters keep their zero values.
	r = httptest.NewRequest("GET", "/wishes?user_id=user1", nil)
	query = sampleQuery{}
	require.NoError(t, bindQuery(r, &query))
	require.Equal(t, "user1", query.UserID)
	require.Zero(t, query.Limit)

	r = httptest.NewRequest("GET", "/wishes?limit=twenty", nil)
	require.Error(t, bindQuery(r, &sampleQuery{}))
}

func Test_bindJSON(t *testing.T) {
	r := httptest.NewRequest("POST", "/wishes", strings.NewReader(`{"user_id":"user1","limit":3}`))

	var query sampleQuery
	require.NoError(t, bindJSON(r, &query))
	require.Equal(t, "user1", query.UserID)
	require.Equal(t, 3, query.Limit)

	// An empty body binds the zero value instead of failing.
	r = httptest.NewRequest("POST", "/wishes", strings.NewReader(""))
	require.NoError(t, bindJSON(r, &sampleQuery{}))
}
