package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apicontext "github.com/dtroode/jobmarket-server/internal/api/context"
	"github.com/dtroode/jobmarket-server/internal/api/http/cookie"
	"github.com/dtroode/jobmarket-server/internal/mocks"
	"github.com/dtroode/jobmarket-server/internal/model"
	"github.com/dtroode/jobmarket-server/internal/testutil"
)

func newTestAuth(t *testing.T, google OAuthProvider) (*Auth, *mocks.AuthService) {
	t.Helper()
	svc := mocks.NewAuthService(t)
	return NewAuth(svc, google, testJar, apicontext.NewManager(), "http://front.test/", testutil.MakeNoopLogger()), svc
}

func TestAuth_SignUp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       any
		svcErr     error
		callSvc    bool
		wantStatus int
		wantCode   string
	}{
		{
			name:       "created",
			body:       map[string]string{"name": "Ann", "email": "ann@x.com", "password": "secret1"},
			callSvc:    true,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "validation failure",
			body:       map[string]string{"name": "Ann", "email": "nope", "password": "123"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "validation_error",
		},
		{
			name:       "password longer than 72 bytes",
			body:       map[string]string{"name": "Ann", "email": "ann@x.com", "password": strings.Repeat("p", 80)},
			wantStatus: http.StatusBadRequest,
			wantCode:   "validation_error",
		},
		{
			name:       "duplicate email",
			body:       map[string]string{"name": "Ann", "email": "ann@x.com", "password": "secret1"},
			svcErr:     model.ErrDuplicateIdentity,
			callSvc:    true,
			wantStatus: http.StatusConflict,
			wantCode:   "conflict",
		},
		{
			name:       "empty body",
			wantStatus: http.StatusBadRequest,
			wantCode:   "bad_request",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, svc := newTestAuth(t, nil)
			if tt.callSvc {
				session := model.Session{
					User:   model.Profile{ID: 5, Name: "Ann", Email: "ann@x.com", Role: model.RoleUser},
					Tokens: model.TokenPair{AccessToken: "acc", RefreshToken: "ref"},
				}
				svc.On("RegisterWithPassword", mock.Anything, mock.MatchedBy(func(reg model.Registration) bool {
					return reg.Email == "ann@x.com" && reg.Password == "secret1"
				})).Return(session, tt.svcErr).Once()
			}

			rec := httptest.NewRecorder()
			h.SignUp(rec, jsonRequest(t, http.MethodPost, "/api/auth/signup", tt.body))

			assert.Equal(t, tt.wantStatus, rec.Code)
			env := decodeEnvelope(t, rec)
			if tt.wantCode != "" {
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.wantCode, env.Error.Code)
				assert.Empty(t, responseCookies(rec))
				return
			}

			assert.Equal(t, "User created successfully", env.Message)
			assert.JSONEq(t, `{"user":{"id":5,"name":"Ann","email":"ann@x.com","phone":null,"birthDay":null,"gender":null,"role":"user","skill":null,"certification":null,"avatar":null,"createdAt":"0001-01-01T00:00:00Z","updatedAt":"0001-01-01T00:00:00Z"}}`, string(env.Content))
			assert.NotContains(t, rec.Body.String(), "passwordHash")

			cookies := responseCookies(rec)
			assert.Equal(t, "acc", cookies[cookie.AccessToken].Value)
			assert.Equal(t, "ref", cookies[cookie.RefreshToken].Value)
		})
	}
}

func TestAuth_SignIn(t *testing.T) {
	t.Parallel()

	t.Run("success sets cookies", func(t *testing.T) {
		t.Parallel()
		h, svc := newTestAuth(t, nil)
		svc.On("AuthenticateWithPassword", mock.Anything, "ann@x.com", "secret1").Return(model.Session{
			User:   model.Profile{ID: 5, Email: "ann@x.com"},
			Tokens: model.TokenPair{AccessToken: "acc", RefreshToken: "ref"},
		}, nil).Once()

		rec := httptest.NewRecorder()
		h.SignIn(rec, jsonRequest(t, http.MethodPost, "/api/auth/signin", map[string]string{"email": "ann@x.com", "password": "secret1"}))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Login successful", decodeEnvelope(t, rec).Message)
		assert.Len(t, responseCookies(rec), 2)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		t.Parallel()
		h, svc := newTestAuth(t, nil)
		svc.On("AuthenticateWithPassword", mock.Anything, "ann@x.com", "bad").Return(model.Session{}, model.ErrInvalidCredentials).Once()

		rec := httptest.NewRecorder()
		h.SignIn(rec, jsonRequest(t, http.MethodPost, "/api/auth/signin", map[string]string{"email": "ann@x.com", "password": "bad"}))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		env := decodeEnvelope(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, "Invalid credentials", env.Error.Message)
	})

	t.Run("malformed json", func(t *testing.T) {
		t.Parallel()
		h, _ := newTestAuth(t, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/signin", strings.NewReader("{"))
		rec := httptest.NewRecorder()
		h.SignIn(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuth_Google(t *testing.T) {
	t.Parallel()

	t.Run("redirects with state cookie", func(t *testing.T) {
		t.Parallel()
		google := mocks.NewOAuthProvider(t)
		var state string
		google.On("AuthURL", mock.AnythingOfType("string")).Run(func(args mock.Arguments) {
			state = args.String(0)
		}).Return("https://accounts.test/auth").Once()
		h, _ := newTestAuth(t, google)

		rec := httptest.NewRecorder()
		h.Google(rec, httptest.NewRequest(http.MethodGet, "/api/auth/google", nil))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "https://accounts.test/auth", rec.Header().Get("Location"))
		stateCookie := responseCookies(rec)[cookie.OAuthState]
		require.NotNil(t, stateCookie)
		assert.Len(t, stateCookie.Value, 32)
		assert.Equal(t, state, stateCookie.Value)
	})

	t.Run("not configured", func(t *testing.T) {
		t.Parallel()
		h, _ := newTestAuth(t, nil)

		rec := httptest.NewRecorder()
		h.Google(rec, httptest.NewRequest(http.MethodGet, "/api/auth/google", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAuth_GoogleCallback(t *testing.T) {
	t.Parallel()

	callback := func(state, cookieState string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/google/callback?code=c0de&state="+state, nil)
		if cookieState != "" {
			req.AddCookie(&http.Cookie{Name: cookie.OAuthState, Value: cookieState})
		}
		return req
	}

	t.Run("success redirects to frontend", func(t *testing.T) {
		t.Parallel()
		google := mocks.NewOAuthProvider(t)
		google.On("Callback", mock.Anything, "c0de").Return(model.Session{
			User:   model.Profile{ID: 9},
			Tokens: model.TokenPair{AccessToken: "acc", RefreshToken: "ref"},
		}, nil).Once()
		h, _ := newTestAuth(t, google)

		rec := httptest.NewRecorder()
		h.GoogleCallback(rec, callback("abc", "abc"))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "http://front.test/auth/callback", rec.Header().Get("Location"))
		cookies := responseCookies(rec)
		assert.Equal(t, "acc", cookies[cookie.AccessToken].Value)
		assert.Equal(t, "ref", cookies[cookie.RefreshToken].Value)
		assert.Equal(t, -1, cookies[cookie.OAuthState].MaxAge)
	})

	t.Run("state mismatch", func(t *testing.T) {
		t.Parallel()
		h, _ := newTestAuth(t, mocks.NewOAuthProvider(t))

		rec := httptest.NewRecorder()
		h.GoogleCallback(rec, callback("abc", "xyz"))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing state cookie", func(t *testing.T) {
		t.Parallel()
		h, _ := newTestAuth(t, mocks.NewOAuthProvider(t))

		rec := httptest.NewRecorder()
		h.GoogleCallback(rec, callback("", ""))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("exchange failure", func(t *testing.T) {
		t.Parallel()
		google := mocks.NewOAuthProvider(t)
		google.On("Callback", mock.Anything, "c0de").Return(model.Session{}, assert.AnError).Once()
		h, _ := newTestAuth(t, google)

		rec := httptest.NewRecorder()
		h.GoogleCallback(rec, callback("abc", "abc"))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.NotContains(t, responseCookies(rec), cookie.AccessToken)
	})
}

func TestAuth_Me(t *testing.T) {
	t.Parallel()

	t.Run("returns profile", func(t *testing.T) {
		t.Parallel()
		h, svc := newTestAuth(t, nil)
		svc.On("CurrentUser", mock.Anything, int64(2)).Return(model.Profile{ID: 2, Email: "ann@x.com", GoogleID: testutil.Ptr("g-2")}, nil).Once()

		rec := httptest.NewRecorder()
		h.Me(rec, asUser(httptest.NewRequest(http.MethodGet, "/api/auth/me", nil), testUser))

		assert.Equal(t, http.StatusOK, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "Get current user successfully", env.Message)
		assert.Contains(t, string(env.Content), `"email":"ann@x.com"`)
		assert.Contains(t, string(env.Content), `"googleId":"g-2"`)
	})

	t.Run("no session user", func(t *testing.T) {
		t.Parallel()
		h, _ := newTestAuth(t, nil)

		rec := httptest.NewRecorder()
		h.Me(rec, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuth_Refresh(t *testing.T) {
	t.Parallel()

	rotated := model.TokenPair{AccessToken: "acc2", RefreshToken: "ref2"}

	t.Run("from cookie", func(t *testing.T) {
		t.Parallel()
		h, svc := newTestAuth(t, nil)
		svc.On("Refresh", mock.Anything, "ref1").Return(rotated, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
		req.AddCookie(&http.Cookie{Name: cookie.RefreshToken, Value: "ref1"})
		rec := httptest.NewRecorder()
		h.Refresh(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Tokens refreshed successfully", decodeEnvelope(t, rec).Message)
		assert.Equal(t, "ref2", responseCookies(rec)[cookie.RefreshToken].Value)
	})

	t.Run("from body", func(t *testing.T) {
		t.Parallel()
		h, svc := newTestAuth(t, nil)
		svc.On("Refresh", mock.Anything, "ref1").Return(rotated, nil).Once()

		rec := httptest.NewRecorder()
		h.Refresh(rec, jsonRequest(t, http.MethodPost, "/api/auth/refresh", map[string]string{"refreshToken": "ref1"}))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		t.Parallel()
		h, _ := newTestAuth(t, nil)

		rec := httptest.NewRecorder()
		h.Refresh(rec, httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "access_denied", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("stale token", func(t *testing.T) {
		t.Parallel()
		h, svc := newTestAuth(t, nil)
		svc.On("Refresh", mock.Anything, "old").Return(model.TokenPair{}, model.ErrAccessDenied).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
		req.AddCookie(&http.Cookie{Name: cookie.RefreshToken, Value: "old"})
		rec := httptest.NewRecorder()
		h.Refresh(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Access Denied", decodeEnvelope(t, rec).Error.Message)
	})
}

func TestAuth_Logout(t *testing.T) {
	t.Parallel()

	h, svc := newTestAuth(t, nil)
	svc.On("EndSession", mock.Anything, int64(2)).Return(nil).Once()

	rec := httptest.NewRecorder()
	h.Logout(rec, asUser(httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil), testUser))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Logged out successfully", decodeEnvelope(t, rec).Message)
	cookies := responseCookies(rec)
	assert.Equal(t, -1, cookies[cookie.AccessToken].MaxAge)
	assert.Equal(t, -1, cookies[cookie.RefreshToken].MaxAge)
}
