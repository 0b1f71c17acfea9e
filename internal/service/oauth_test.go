package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/dtroode/jobmarket-server/internal/model"
	"github.com/dtroode/jobmarket-server/internal/testutil"
)

type recordingAuthenticator struct {
	got model.ExternalIdentity
}

func (r *recordingAuthenticator) AuthenticateWithExternalIdentity(_ context.Context, identity model.ExternalIdentity) (model.Session, error) {
	r.got = identity
	return model.Session{User: model.Profile{ID: 1, Email: identity.Email}, Tokens: model.TokenPair{AccessToken: "a", RefreshToken: "r"}}, nil
}

func newGoogleStub(t *testing.T, userStatus int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil || r.Form.Get("code") != "good-code" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "google-access",
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer google-access" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if userStatus != http.StatusOK {
			w.WriteHeader(userStatus)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{
			"id":      "1098",
			"email":   "ann@gmail.com",
			"name":    "Ann",
			"picture": "https://lh3/ann.png",
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestGoogle(srv *httptest.Server, auth ExternalAuthenticator) *GoogleOAuth {
	return NewGoogleOAuth("client", "secret", "http://localhost/cb", auth, testutil.MakeNoopLogger(),
		WithGoogleEndpoints(oauth2.Endpoint{
			AuthURL:   srv.URL + "/auth",
			TokenURL:  srv.URL + "/token",
			AuthStyle: oauth2.AuthStyleInParams,
		}, srv.URL+"/userinfo"))
}

func TestGoogleOAuth_AuthURL(t *testing.T) {
	t.Parallel()

	g := NewGoogleOAuth("client", "secret", "http://localhost/cb", &recordingAuthenticator{}, testutil.MakeNoopLogger())

	u, err := url.Parse(g.AuthURL("state-123"))
	require.NoError(t, err)
	assert.Equal(t, "accounts.google.com", u.Host)
	assert.Equal(t, "state-123", u.Query().Get("state"))
	assert.Equal(t, "client", u.Query().Get("client_id"))
	assert.Equal(t, "http://localhost/cb", u.Query().Get("redirect_uri"))
}

func TestGoogleOAuth_Callback(t *testing.T) {
	t.Parallel()

	srv := newGoogleStub(t, http.StatusOK)
	rec := &recordingAuthenticator{}
	g := newTestGoogle(srv, rec)

	s, err := g.Callback(context.Background(), "good-code")
	require.NoError(t, err)
	assert.Equal(t, "a", s.Tokens.AccessToken)
	assert.Equal(t, model.ExternalIdentity{
		ExternalID: "1098",
		Email:      "ann@gmail.com",
		Name:       "Ann",
		AvatarURL:  "https://lh3/ann.png",
	}, rec.got)
}

func TestGoogleOAuth_Callback_BadCode(t *testing.T) {
	t.Parallel()

	srv := newGoogleStub(t, http.StatusOK)
	g := newTestGoogle(srv, &recordingAuthenticator{})

	_, err := g.Callback(context.Background(), "bad-code")
	require.ErrorIs(t, err, ErrOAuthExchange)
}

func TestGoogleOAuth_Callback_UserInfoFailure(t *testing.T) {
	t.Parallel()

	srv := newGoogleStub(t, http.StatusInternalServerError)
	g := newTestGoogle(srv, &recordingAuthenticator{})

	_, err := g.Callback(context.Background(), "good-code")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}
