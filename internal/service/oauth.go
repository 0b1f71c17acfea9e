package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/dtroode/jobmarket-server/internal/logger"
	"github.com/dtroode/jobmarket-server/internal/model"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// ErrOAuthExchange is returned when the provider rejects the authorization code.
var ErrOAuthExchange = errors.New("oauth code exchange failed")

// ExternalAuthenticator opens sessions for provider identities.
type ExternalAuthenticator interface {
	AuthenticateWithExternalIdentity(ctx context.Context, identity model.ExternalIdentity) (model.Session, error)
}

// GoogleOAuth runs the Google authorization code flow and hands the
// resulting identity to the session manager.
type GoogleOAuth struct {
	config      *oauth2.Config
	userInfoURL string
	sessions    ExternalAuthenticator
	logger      *logger.Logger
}

// GoogleOption customizes GoogleOAuth.
type GoogleOption func(*GoogleOAuth)

// WithGoogleEndpoints replaces the provider endpoints.
func WithGoogleEndpoints(endpoint oauth2.Endpoint, userInfoURL string) GoogleOption {
	return func(g *GoogleOAuth) {
		g.config.Endpoint = endpoint
		g.userInfoURL = userInfoURL
	}
}

func NewGoogleOAuth(
	clientID, clientSecret, callbackURL string,
	sessions ExternalAuthenticator,
	logger *logger.Logger,
	opts ...GoogleOption,
) *GoogleOAuth {
	g := &GoogleOAuth{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Endpoint:     google.Endpoint,
			RedirectURL:  callbackURL,
			Scopes:       []string{"email", "profile"},
		},
		userInfoURL: googleUserInfoURL,
		sessions:    sessions,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// AuthURL returns the consent page URL carrying the given state.
func (g *GoogleOAuth) AuthURL(state string) string {
	return g.config.AuthCodeURL(state)
}

// Callback exchanges the authorization code, fetches the Google profile and
// opens a session for it.
func (g *GoogleOAuth) Callback(ctx context.Context, code string) (model.Session, error) {
	token, err := g.config.Exchange(ctx, code)
	if err != nil {
		g.logger.Warn("Google OAuth: token exchange failed",
			"error", err.Error())
		return model.Session{}, fmt.Errorf("%w: %w", ErrOAuthExchange, err)
	}

	identity, err := g.fetchUser(ctx, token)
	if err != nil {
		g.logger.Error("Google OAuth: failed to fetch user info",
			"error", err.Error())
		return model.Session{}, err
	}

	return g.sessions.AuthenticateWithExternalIdentity(ctx, identity)
}

func (g *GoogleOAuth) fetchUser(ctx context.Context, token *oauth2.Token) (model.ExternalIdentity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.userInfoURL, nil)
	if err != nil {
		return model.ExternalIdentity{}, fmt.Errorf("failed to build user info request: %w", err)
	}

	resp, err := g.config.Client(ctx, token).Do(req)
	if err != nil {
		return model.ExternalIdentity{}, fmt.Errorf("failed to fetch Google user: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.ExternalIdentity{}, fmt.Errorf("google API returned status %d", resp.StatusCode)
	}

	var data struct {
		ID      string `json:"id"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return model.ExternalIdentity{}, fmt.Errorf("failed to decode Google user response: %w", err)
	}

	return model.ExternalIdentity{
		ExternalID: data.ID,
		Email:      data.Email,
		Name:       data.Name,
		AvatarURL:  data.Picture,
	}, nil
}
