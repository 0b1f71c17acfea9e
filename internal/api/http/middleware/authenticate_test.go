package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apicontext "github.com/dtroode/jobmarket-server/internal/api/context"
	"github.com/dtroode/jobmarket-server/internal/api/http/cookie"
	"github.com/dtroode/jobmarket-server/internal/mocks"
	"github.com/dtroode/jobmarket-server/internal/model"
	"github.com/dtroode/jobmarket-server/internal/testutil"
)

func TestAuthenticate_Handle(t *testing.T) {
	t.Parallel()

	user := model.SessionUser{ID: 3, Email: "ann@x.com", Role: model.RoleUser}

	tests := []struct {
		name       string
		prepare    func(r *http.Request)
		token      string
		authErr    error
		wantStatus int
	}{
		{
			name:       "cookie token",
			prepare:    func(r *http.Request) { r.AddCookie(&http.Cookie{Name: cookie.AccessToken, Value: "tok"}) },
			token:      "tok",
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "bearer token",
			prepare:    func(r *http.Request) { r.Header.Set("Authorization", "Bearer tok") },
			token:      "tok",
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "no token",
			prepare:    func(*http.Request) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "rejected token",
			prepare:    func(r *http.Request) { r.Header.Set("Authorization", "Bearer tok") },
			token:      "tok",
			authErr:    model.ErrUnauthenticated,
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			authenticator := mocks.NewAuthenticator(t)
			if tt.token != "" {
				authenticator.On("Authenticate", mock.Anything, tt.token).Return(user, tt.authErr).Once()
			}

			cm := apicontext.NewManager()
			var got model.SessionUser
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, _ = cm.SessionUserFromContext(r.Context())
				w.WriteHeader(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			tt.prepare(req)
			rec := httptest.NewRecorder()
			NewAuthenticate(authenticator, cm, testutil.MakeNoopLogger()).Handle(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusNoContent {
				assert.Equal(t, user, got)
			}
		})
	}
}
