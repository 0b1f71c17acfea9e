package cookie

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/jobmarket-server/internal/model"
)

func cookiesByName(rec *httptest.ResponseRecorder) map[string]*http.Cookie {
	out := map[string]*http.Cookie{}
	for _, c := range rec.Result().Cookies() {
		out[c.Name] = c
	}
	return out
}

func TestJar_SetSession(t *testing.T) {
	rec := httptest.NewRecorder()
	NewJar(true, time.Hour, 24*time.Hour).SetSession(rec, model.TokenPair{AccessToken: "a", RefreshToken: "r"})

	got := cookiesByName(rec)
	require.Contains(t, got, AccessToken)
	require.Contains(t, got, RefreshToken)

	access := got[AccessToken]
	assert.Equal(t, "a", access.Value)
	assert.Equal(t, 3600, access.MaxAge)
	assert.True(t, access.HttpOnly)
	assert.True(t, access.Secure)
	assert.Equal(t, http.SameSiteLaxMode, access.SameSite)
	assert.Equal(t, "/", access.Path)

	assert.Equal(t, "r", got[RefreshToken].Value)
	assert.Equal(t, 86400, got[RefreshToken].MaxAge)
}

func TestJar_ClearSession(t *testing.T) {
	rec := httptest.NewRecorder()
	NewJar(false, time.Hour, time.Hour).ClearSession(rec)

	got := cookiesByName(rec)
	require.Len(t, got, 2)
	for _, c := range got {
		assert.Empty(t, c.Value)
		assert.Equal(t, -1, c.MaxAge)
		assert.False(t, c.Secure)
	}
}

func TestAccessTokenFrom(t *testing.T) {
	tests := []struct {
		name   string
		cookie string
		header string
		want   string
	}{
		{name: "cookie wins over header", cookie: "from-cookie", header: "Bearer from-header", want: "from-cookie"},
		{name: "bearer fallback", header: "Bearer from-header", want: "from-header"},
		{name: "scheme is case insensitive", header: "bearer tok", want: "tok"},
		{name: "other scheme ignored", header: "Basic dXNlcg==", want: ""},
		{name: "nothing presented", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != "" {
				r.AddCookie(&http.Cookie{Name: AccessToken, Value: tt.cookie})
			}
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			assert.Equal(t, tt.want, AccessTokenFrom(r))
		})
	}
}
