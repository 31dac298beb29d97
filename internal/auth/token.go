package auth

import (
	"time"

	"golang.org/x/oauth2"
)

// ExpiryMargin is subtracted from the token expiry when deciding whether a
// refresh is needed. It covers clock skew and request latency.
const ExpiryMargin = 60 * time.Second

// TokenSet is the unit of authentication state: an access/refresh token pair
// with an absolute expiry. It is persisted wholesale and replaced wholesale
// on every exchange or refresh.
type TokenSet struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"`
}

// Expired reports whether the token must be refreshed before use.
// A token with no recorded expiry is treated as expired.
func (t *TokenSet) Expired(margin time.Duration) bool {
	if t == nil || t.AccessToken == "" {
		return true
	}
	if t.ExpiresAt == 0 {
		return true
	}
	return time.Now().Unix() >= t.ExpiresAt-int64(margin.Seconds())
}

// FromOAuth2 converts an oauth2 token into a TokenSet. When the server did
// not rotate the refresh token, the previous one is carried forward.
func FromOAuth2(tok *oauth2.Token, previousRefresh string) *TokenSet {
	ts := &TokenSet{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
	}
	if ts.RefreshToken == "" {
		ts.RefreshToken = previousRefresh
	}
	if !tok.Expiry.IsZero() {
		ts.ExpiresAt = tok.Expiry.Unix()
	}
	return ts
}

// ToOAuth2 converts a TokenSet back into an oauth2 token, preserving the
// absolute expiry so the oauth2 package's own validity checks agree with ours.
func (t *TokenSet) ToOAuth2() *oauth2.Token {
	tok := &oauth2.Token{
		AccessToken:  t.AccessToken,
		RefreshToken: t.RefreshToken,
		TokenType:    "Bearer",
	}
	if t.ExpiresAt != 0 {
		tok.Expiry = time.Unix(t.ExpiresAt, 0)
	}
	return tok
}
