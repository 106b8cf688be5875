// Package oauth implements the Google identity provider adapter: it builds
// the consent URL, exchanges the authorization code for an ID token and
// verifies the token signature against the provider JWKS.
package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"

	"github.com/akomarov/bookshelf/internal/models"
)

// Google endpoint defaults.
const (
	defaultAuthURL  = "https://accounts.google.com/o/oauth2/v2/auth"
	defaultTokenURL = "https://oauth2.googleapis.com/token"
	defaultJWKSURL  = "https://www.googleapis.com/oauth2/v3/certs"
	defaultIssuer   = "https://accounts.google.com"
)

var (
	ErrNoIDToken     = errors.New("token response contains no id_token")
	ErrInvalidIssuer = errors.New("id token issued by unexpected issuer")
	ErrNoSubject     = errors.New("id token contains no subject")
)

// Config holds the registered OAuth client and provider endpoints.
// Zero-valued endpoint fields fall back to the Google defaults.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	AuthURL      string
	TokenURL     string
	JWKSURL      string
	Issuer       string
}

func (c *Config) applyDefaults() {
	if c.AuthURL == "" {
		c.AuthURL = defaultAuthURL
	}
	if c.TokenURL == "" {
		c.TokenURL = defaultTokenURL
	}
	if c.JWKSURL == "" {
		c.JWKSURL = defaultJWKSURL
	}
	if c.Issuer == "" {
		c.Issuer = defaultIssuer
	}
}

// Google exchanges an authorization code for a verified user profile.
type Google struct {
	cfg        Config
	jwks       keyfunc.Keyfunc
	httpClient *http.Client
}

// New builds the adapter and starts the background JWKS refresh.
func New(ctx context.Context, cfg Config) (*Google, error) {
	cfg.applyDefaults()

	k, err := keyfunc.NewDefaultCtx(ctx, []string{cfg.JWKSURL})
	if err != nil {
		return nil, fmt.Errorf("create JWKS keyfunc: %w", err)
	}

	return &Google{
		cfg:        cfg,
		jwks:       k,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// NewWithKeyfunc builds the adapter with a provided keyfunc.
// Used in tests to substitute a mock JWKS.
func NewWithKeyfunc(cfg Config, kf keyfunc.Keyfunc) *Google {
	cfg.applyDefaults()
	return &Google{
		cfg:        cfg,
		jwks:       kf,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// AuthCodeURL returns the provider consent URL the client is redirected to.
func (g *Google) AuthCodeURL(state string) string {
	q := url.Values{}
	q.Set("client_id", g.cfg.ClientID)
	q.Set("redirect_uri", g.cfg.RedirectURL)
	q.Set("response_type", "code")
	q.Set("scope", "openid email profile")
	q.Set("state", state)
	return g.cfg.AuthURL + "?" + q.Encode()
}

// Exchange trades the authorization code for the provider ID token.
func (g *Google) Exchange(ctx context.Context, code string) (string, error) {
	form := url.Values{}
	form.Set("code", code)
	form.Set("client_id", g.cfg.ClientID)
	form.Set("client_secret", g.cfg.ClientSecret)
	form.Set("redirect_uri", g.cfg.RedirectURL)
	form.Set("grant_type", "authorization_code")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token endpoint returned status %d", resp.StatusCode)
	}

	var body struct {
		IDToken string `json:"id_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	if body.IDToken == "" {
		return "", ErrNoIDToken
	}

	return body.IDToken, nil
}

// idTokenClaims are the OpenID Connect claims this service consumes.
type idTokenClaims struct {
	jwt.RegisteredClaims
	Name       string `json:"name"`
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
}

// VerifyIDToken validates the token signature (RS256 via JWKS), issuer and
// audience, and extracts the federated profile.
func (g *Google) VerifyIDToken(ctx context.Context, raw string) (*models.Profile, error) {
	claims := &idTokenClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, g.jwks.KeyfuncCtx(ctx),
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithAudience(g.cfg.ClientID),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}

	if claims.Issuer != g.cfg.Issuer && claims.Issuer != strings.TrimPrefix(g.cfg.Issuer, "https://") {
		return nil, ErrInvalidIssuer
	}
	if claims.Subject == "" {
		return nil, ErrNoSubject
	}

	return &models.Profile{
		ExternalID:  claims.Subject,
		DisplayName: claims.Name,
		Email:       claims.Email,
		FirstName:   claims.GivenName,
		LastName:    claims.FamilyName,
	}, nil
}
