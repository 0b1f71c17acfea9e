// Package cookie carries session tokens between the HTTP API and browsers.
package cookie

import (
	"net/http"
	"strings"
	"time"

	"github.com/dtroode/jobmarket-server/internal/model"
)

const (
	AccessToken  = "access_token"
	RefreshToken = "refresh_token"
	OAuthState   = "oauth_state"

	oauthStateTTL = 10 * time.Minute
)

// Jar writes HttpOnly, SameSite=Lax session cookies.
type Jar struct {
	secure     bool
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewJar(secure bool, accessTTL, refreshTTL time.Duration) *Jar {
	return &Jar{secure: secure, accessTTL: accessTTL, refreshTTL: refreshTTL}
}

// SetSession stores both tokens, each living as long as its token.
func (j *Jar) SetSession(w http.ResponseWriter, pair model.TokenPair) {
	http.SetCookie(w, j.cookie(AccessToken, pair.AccessToken, j.accessTTL))
	http.SetCookie(w, j.cookie(RefreshToken, pair.RefreshToken, j.refreshTTL))
}

// ClearSession expires both token cookies.
func (j *Jar) ClearSession(w http.ResponseWriter) {
	j.clear(w, AccessToken)
	j.clear(w, RefreshToken)
}

func (j *Jar) SetOAuthState(w http.ResponseWriter, state string) {
	http.SetCookie(w, j.cookie(OAuthState, state, oauthStateTTL))
}

func (j *Jar) ClearOAuthState(w http.ResponseWriter) {
	j.clear(w, OAuthState)
}

func (j *Jar) cookie(name, value string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   j.secure,
		MaxAge:   int(ttl.Seconds()),
	}
}

func (j *Jar) clear(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   j.secure,
		MaxAge:   -1,
	})
}

// Value returns the named cookie or an empty string.
func Value(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}

// AccessTokenFrom extracts the access token, preferring the cookie over an
// Authorization: Bearer header.
func AccessTokenFrom(r *http.Request) string {
	if token := Value(r, AccessToken); token != "" {
		return token
	}

	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
