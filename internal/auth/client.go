package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"connectlife/internal/logging"
)

// DefaultTimeout is the default HTTP timeout for token endpoint requests.
const DefaultTimeout = 30 * time.Second

// Options configures an OAuth2 session against the vendor authorization
// server.
type Options struct {
	ClientID     string
	ClientSecret string
	AuthorizeURL string
	TokenURL     string
	// RedirectURL is the fixed callback URL registered with the vendor.
	// Its hostname must resolve to loopback for local capture to work.
	RedirectURL string
	// HTTPClient overrides the client used for token requests (tests).
	HTTPClient *http.Client
}

// Session drives the OAuth2 authorization-code flow and owns the current
// TokenSet. Every successful exchange or refresh is written through to the
// token store before the new token is used.
type Session struct {
	conf       *oauth2.Config
	store      *Store
	token      *TokenSet
	httpClient *http.Client
}

// NewSession creates a session and loads any previously stored TokenSet.
func NewSession(opts Options, store *Store) (*Session, error) {
	conf := &oauth2.Config{
		ClientID:     opts.ClientID,
		ClientSecret: opts.ClientSecret,
		Endpoint: oauth2.Endpoint{
			AuthURL:  opts.AuthorizeURL,
			TokenURL: opts.TokenURL,
			// The vendor's token endpoint wants client credentials in the
			// form body, not in a basic-auth header.
			AuthStyle: oauth2.AuthStyleInParams,
		},
		RedirectURL: opts.RedirectURL,
		Scopes:      []string{"all"},
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}

	s := &Session{
		conf:       conf,
		store:      store,
		httpClient: httpClient,
	}

	token, err := store.Load()
	if err != nil {
		return nil, err
	}
	s.token = token

	return s, nil
}

// Authenticated reports whether a TokenSet is present. It does not imply
// the access token is still valid; EnsureValid handles expiry.
func (s *Session) Authenticated() bool {
	return s.token != nil && s.token.AccessToken != ""
}

// Token returns the current TokenSet, or nil when not authenticated.
func (s *Session) Token() *TokenSet {
	return s.token
}

// RedirectURL returns the configured callback URL.
func (s *Session) RedirectURL() string {
	return s.conf.RedirectURL
}

// AuthCodeURL builds the vendor authorization URL the user must open in a
// browser. The state parameter is echoed back in the callback and verified
// by the receiver when present.
func (s *Session) AuthCodeURL(state string) string {
	return s.conf.AuthCodeURL(state)
}

// Exchange trades an authorization code for a TokenSet and persists it.
func (s *Session) Exchange(ctx context.Context, code string) (*TokenSet, error) {
	tok, err := s.conf.Exchange(s.oauth2Context(ctx), code)
	if err != nil {
		return nil, NewAuthError("token exchange failed", describeOAuth2Error(err))
	}
	if err := checkVendorResult(tok); err != nil {
		return nil, err
	}

	return s.adopt(tok, "")
}

// PasswordLogin authenticates with the resource-owner password grant and
// persists the resulting TokenSet.
func (s *Session) PasswordLogin(ctx context.Context, username, password string) (*TokenSet, error) {
	tok, err := s.conf.PasswordCredentialsToken(s.oauth2Context(ctx), username, password)
	if err != nil {
		return nil, NewAuthError("login failed, check your email and password", describeOAuth2Error(err))
	}
	if err := checkVendorResult(tok); err != nil {
		return nil, err
	}

	logging.Info("Password authentication successful", zap.String("username", username))
	return s.adopt(tok, "")
}

// Refresh forces a refresh-token grant regardless of the current expiry and
// persists the replacement TokenSet. Failure means the stored credentials
// are unusable and the login flow must be re-run.
func (s *Session) Refresh(ctx context.Context) error {
	if s.token == nil || s.token.RefreshToken == "" {
		return NewAuthError("no refresh token available", nil)
	}

	// Presenting a token without an access token forces the oauth2 package
	// to run the refresh grant immediately.
	src := s.conf.TokenSource(s.oauth2Context(ctx), &oauth2.Token{
		RefreshToken: s.token.RefreshToken,
	})
	tok, err := src.Token()
	if err != nil {
		return NewAuthError("token refresh failed", describeOAuth2Error(err))
	}
	if err := checkVendorResult(tok); err != nil {
		return err
	}

	if _, err := s.adopt(tok, s.token.RefreshToken); err != nil {
		return err
	}
	logging.LogTokenEvent("refreshed", s.token.ExpiresAt)
	return nil
}

// EnsureValid refreshes the token when it has expired (with margin).
// A token with a future expiry is used as-is.
func (s *Session) EnsureValid(ctx context.Context) error {
	if s.token == nil || s.token.AccessToken == "" {
		return NewAuthError("no token available, please authenticate first", nil)
	}
	if !s.token.Expired(ExpiryMargin) {
		return nil
	}
	logging.Debug("Access token expired, refreshing")
	return s.Refresh(ctx)
}

// AccessToken returns a currently valid access token, refreshing first if
// needed.
func (s *Session) AccessToken(ctx context.Context) (string, error) {
	if err := s.EnsureValid(ctx); err != nil {
		return "", err
	}
	return s.token.AccessToken, nil
}

// Logout discards the in-memory token and clears the store.
func (s *Session) Logout() error {
	s.token = nil
	return s.store.Clear()
}

// adopt converts, stores, and installs a freshly minted oauth2 token.
func (s *Session) adopt(tok *oauth2.Token, previousRefresh string) (*TokenSet, error) {
	ts := FromOAuth2(tok, previousRefresh)
	if ts.AccessToken == "" {
		return nil, NewAuthError("token response missing access_token", nil)
	}
	if err := s.store.Save(ts); err != nil {
		return nil, err
	}
	s.token = ts
	return ts, nil
}

// oauth2Context injects the session's HTTP client for the oauth2 package.
func (s *Session) oauth2Context(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)
}

// checkVendorResult rejects token responses the vendor flags as failed even
// when they come back with HTTP 200. The gateway reports errors through a
// resultCode field alongside the OAuth2 payload.
func checkVendorResult(tok *oauth2.Token) error {
	rc := tok.Extra("resultCode")
	if rc == nil {
		return nil
	}
	if code, ok := rc.(float64); ok && code != 0 {
		msg, _ := tok.Extra("error_description").(string)
		if msg == "" {
			msg, _ = tok.Extra("msg").(string)
		}
		if msg == "" {
			msg = "vendor rejected the token request"
		}
		return NewAuthError(msg, nil)
	}
	return nil
}

// describeOAuth2Error surfaces the server's status and body for
// *oauth2.RetrieveError instead of the generic wrapper text.
func describeOAuth2Error(err error) error {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		logging.Debug("OAuth2 error response",
			zap.Int("status_code", retrieveErr.Response.StatusCode),
			zap.ByteString("body", retrieveErr.Body),
		)
	}
	return err
}
