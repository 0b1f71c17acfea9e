// Package handler provides the HTTP handlers of the public API.
package handler

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/dtroode/jobmarket-server/internal/api/http/apierror"
	"github.com/dtroode/jobmarket-server/internal/api/http/cookie"
	"github.com/dtroode/jobmarket-server/internal/api/http/response"
	"github.com/dtroode/jobmarket-server/internal/logger"
	"github.com/dtroode/jobmarket-server/internal/model"
	"github.com/dtroode/jobmarket-server/internal/validate"
)

const maxJSONBody = 1 << 20

var errEmptyBody = apierror.ErrBadRequest.WithMessage("Request body is empty")

// AuthService defines the session operations behind the auth routes.
type AuthService interface {
	RegisterWithPassword(ctx context.Context, reg model.Registration) (model.Session, error)
	AuthenticateWithPassword(ctx context.Context, email, password string) (model.Session, error)
	Refresh(ctx context.Context, refreshToken string) (model.TokenPair, error)
	EndSession(ctx context.Context, userID int64) error
	CurrentUser(ctx context.Context, userID int64) (model.Profile, error)
}

// OAuthProvider runs the redirect flow of an external identity provider.
type OAuthProvider interface {
	AuthURL(state string) string
	Callback(ctx context.Context, code string) (model.Session, error)
}

// Auth handles the /api/auth routes.
type Auth struct {
	auth           AuthService
	google         OAuthProvider
	cookies        *cookie.Jar
	contextManager model.ContextManager
	frontendURL    string
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler. google may be nil when external
// sign-in is not configured.
func NewAuth(
	auth AuthService,
	google OAuthProvider,
	cookies *cookie.Jar,
	contextManager model.ContextManager,
	frontendURL string,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		auth:           auth,
		google:         google,
		cookies:        cookies,
		contextManager: contextManager,
		frontendURL:    strings.TrimSuffix(frontendURL, "/"),
		logger:         logger,
	}
}

type userContent struct {
	User model.Profile `json:"user"`
}

// SignUp handles POST /api/auth/signup.
func (h *Auth) SignUp(w http.ResponseWriter, r *http.Request) {
	var req model.Registration
	if err := decodeJSON(w, r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if err := validate.Registration(req); err != nil {
		response.Error(w, err)
		return
	}

	session, err := h.auth.RegisterWithPassword(r.Context(), req)
	if err != nil {
		response.Error(w, err)
		return
	}

	h.cookies.SetSession(w, session.Tokens)
	response.Created(w, "User created successfully", userContent{User: session.User})
}

// SignIn handles POST /api/auth/signin.
func (h *Auth) SignIn(w http.ResponseWriter, r *http.Request) {
	var req model.Credentials
	if err := decodeJSON(w, r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if err := validate.Credentials(req); err != nil {
		response.Error(w, err)
		return
	}

	session, err := h.auth.AuthenticateWithPassword(r.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(w, err)
		return
	}

	h.cookies.SetSession(w, session.Tokens)
	response.OK(w, "Login successful", userContent{User: session.User})
}

// Google handles GET /api/auth/google by redirecting to the consent screen.
func (h *Auth) Google(w http.ResponseWriter, r *http.Request) {
	if h.google == nil {
		response.Error(w, apierror.ErrNotFound.WithMessage("Google sign-in is not configured"))
		return
	}

	state, err := newState()
	if err != nil {
		h.logger.Error("Auth handler: failed to generate oauth state",
			"error", err.Error())
		response.Error(w, err)
		return
	}

	h.cookies.SetOAuthState(w, state)
	http.Redirect(w, r, h.google.AuthURL(state), http.StatusFound)
}

// GoogleCallback handles GET /api/auth/google/callback.
func (h *Auth) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	if h.google == nil {
		response.Error(w, apierror.ErrNotFound.WithMessage("Google sign-in is not configured"))
		return
	}

	expected := cookie.Value(r, cookie.OAuthState)
	state := r.URL.Query().Get("state")
	h.cookies.ClearOAuthState(w)
	if expected == "" || subtle.ConstantTimeCompare([]byte(expected), []byte(state)) != 1 {
		response.Error(w, apierror.ErrUnauthorized.WithMessage("Invalid OAuth state"))
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		response.Error(w, apierror.ErrBadRequest.WithMessage("Missing authorization code"))
		return
	}

	session, err := h.google.Callback(r.Context(), code)
	if err != nil {
		h.logger.Warn("Auth handler: google callback failed",
			"error", err.Error())
		response.Error(w, apierror.ErrUnauthorized.WithMessage("Google sign-in failed"))
		return
	}

	h.cookies.SetSession(w, session.Tokens)
	http.Redirect(w, r, h.frontendURL+"/auth/callback", http.StatusFound)
}

// Me handles GET /api/auth/me.
func (h *Auth) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.SessionUserFromContext(r.Context())
	if !ok {
		response.Error(w, apierror.ErrUnauthorized)
		return
	}

	profile, err := h.auth.CurrentUser(r.Context(), user.ID)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, "Get current user successfully", profile)
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// Refresh handles POST /api/auth/refresh. The refresh token is read from
// its cookie, falling back to the JSON body.
func (h *Auth) Refresh(w http.ResponseWriter, r *http.Request) {
	refreshToken := cookie.Value(r, cookie.RefreshToken)
	if refreshToken == "" {
		var req refreshRequest
		if err := decodeJSON(w, r, &req); err != nil && !errors.Is(err, errEmptyBody) {
			response.Error(w, err)
			return
		}
		refreshToken = req.RefreshToken
	}
	if refreshToken == "" {
		response.Error(w, apierror.ErrAccessDenied)
		return
	}

	pair, err := h.auth.Refresh(r.Context(), refreshToken)
	if err != nil {
		response.Error(w, err)
		return
	}

	h.cookies.SetSession(w, pair)
	response.OK(w, "Tokens refreshed successfully", nil)
}

// Logout handles POST /api/auth/logout.
func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.SessionUserFromContext(r.Context())
	if !ok {
		response.Error(w, apierror.ErrUnauthorized)
		return
	}

	if err := h.auth.EndSession(r.Context(), user.ID); err != nil {
		response.Error(w, err)
		return
	}

	h.cookies.ClearSession(w)
	response.OK(w, "Logged out successfully", nil)
}

func newState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// decodeJSON reads a bounded JSON body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return nil
	}

	var tooLarge *http.MaxBytesError
	switch {
	case errors.Is(err, io.EOF):
		return errEmptyBody
	case errors.As(err, &tooLarge):
		return apierror.ErrPayloadTooLarge
	default:
		return apierror.ErrBadRequest.WithMessage("Invalid request body")
	}
}
