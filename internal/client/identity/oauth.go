package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"github.com/dmitrijs2005/gamenews/internal/common"
)

// DefaultRedirectScheme is the app URL scheme registered for OAuth redirects.
const DefaultRedirectScheme = "gaming-news-app"

var (
	GoogleScopes   = []string{"openid", "profile", "email"}
	FacebookScopes = []string{"public_profile", "email"}

	GoogleEndpoint = oauth2.Endpoint{
		AuthURL:  "https://accounts.google.com/o/oauth2/v2/auth",
		TokenURL: "https://oauth2.googleapis.com/token",
	}
	FacebookEndpoint = oauth2.Endpoint{
		AuthURL:  "https://www.facebook.com/v18.0/dialog/oauth",
		TokenURL: "https://graph.facebook.com/v18.0/oauth/access_token",
	}

	GoogleUserInfoURL   = "https://openidconnect.googleapis.com/v1/userinfo"
	FacebookUserInfoURL = "https://graph.facebook.com/me?fields=id,name,email,picture"
)

// RedirectURI builds the redirect target for an app URL scheme.
func RedirectURI(scheme string) string {
	return scheme + "://oauthredirect"
}

// Callback is what the redirect delivers back to the app.
type Callback struct {
	Code  string
	State string
}

// CodeSource presents authURL to the user (browser, deep link, terminal)
// and returns the redirect parameters. It returns ErrFlowCancelled when the
// user gives up.
type CodeSource func(ctx context.Context, authURL string) (Callback, error)

// OAuthConfig describes one authorization-code provider.
type OAuthConfig struct {
	Kind         Kind
	ClientID     string
	ClientSecret string
	Endpoint     oauth2.Endpoint
	Scopes       []string
	RedirectURL  string
	// UserInfoURL is optional. When set, the profile is fetched with the
	// access token after the exchange.
	UserInfoURL string
}

// GoogleConfig returns the Google setup for clientID and redirect scheme.
func GoogleConfig(clientID, scheme string) OAuthConfig {
	return OAuthConfig{
		Kind:        KindGoogle,
		ClientID:    clientID,
		Endpoint:    GoogleEndpoint,
		Scopes:      GoogleScopes,
		RedirectURL: RedirectURI(scheme),
		UserInfoURL: GoogleUserInfoURL,
	}
}

// FacebookConfig returns the Facebook setup for appID and redirect scheme.
func FacebookConfig(appID, scheme string) OAuthConfig {
	return OAuthConfig{
		Kind:        KindFacebook,
		ClientID:    appID,
		Endpoint:    FacebookEndpoint,
		Scopes:      FacebookScopes,
		RedirectURL: RedirectURI(scheme),
		UserInfoURL: FacebookUserInfoURL,
	}
}

// OAuthProvider runs the authorization-code flow.
type OAuthProvider struct {
	kind        Kind
	conf        *oauth2.Config
	userInfoURL string
	codes       CodeSource
	httpClient  *http.Client
}

var _ Provider = (*OAuthProvider)(nil)

// NewOAuthProvider wires cfg to codes. httpClient may be nil.
func NewOAuthProvider(cfg OAuthConfig, codes CodeSource, httpClient *http.Client) *OAuthProvider {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &OAuthProvider{
		kind: cfg.Kind,
		conf: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     cfg.Endpoint,
			Scopes:       cfg.Scopes,
			RedirectURL:  cfg.RedirectURL,
		},
		userInfoURL: cfg.UserInfoURL,
		codes:       codes,
		httpClient:  httpClient,
	}
}

func (p *OAuthProvider) Kind() Kind { return p.kind }

// AuthCodeURL exposes the authorization URL for a given state.
func (p *OAuthProvider) AuthCodeURL(state string) string {
	return p.conf.AuthCodeURL(state)
}

func (p *OAuthProvider) Initiate(ctx context.Context) Result {
	state, err := common.MakeRandHexString(16)
	if err != nil {
		return Fail(fmt.Errorf("generate state: %w", err))
	}

	cb, err := p.codes(ctx, p.conf.AuthCodeURL(state))
	if errors.Is(err, ErrFlowCancelled) {
		return Cancel()
	}
	if err != nil {
		return Fail(err)
	}
	if cb.State != state {
		return Fail(ErrStateMismatch)
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)
	tok, err := p.conf.Exchange(ctx, cb.Code)
	if err != nil {
		return Fail(fmt.Errorf("exchange code: %w", err))
	}
	if tok.AccessToken == "" {
		return Fail(ErrNoAccessToken)
	}

	if p.userInfoURL == "" {
		return Succeeded(tok.AccessToken, nil)
	}

	profile, err := p.fetchProfile(ctx, tok)
	if err != nil {
		return Fail(fmt.Errorf("fetch %s profile: %w", p.kind, err))
	}
	return Succeeded(tok.AccessToken, profile)
}

type userInfo struct {
	Sub     string `json:"sub"`
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture any    `json:"picture"`
}

func (p *OAuthProvider) fetchProfile(ctx context.Context, tok *oauth2.Token) (*Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userInfoURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.conf.Client(ctx, tok).Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo returned status %d", resp.StatusCode)
	}

	var u userInfo
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return nil, err
	}

	profile := &Profile{Subject: u.Sub, Email: u.Email, Name: u.Name}
	if profile.Subject == "" {
		profile.Subject = u.ID
	}
	// Google sends a URL string; Facebook nests it under picture.data.url.
	switch pic := u.Picture.(type) {
	case string:
		profile.AvatarURL = pic
	case map[string]any:
		if data, ok := pic["data"].(map[string]any); ok {
			profile.AvatarURL, _ = data["url"].(string)
		}
	}
	return profile, nil
}
