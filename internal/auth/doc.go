// Package auth implements the OAuth2 authorization-code flow against the
// ConnectLife authorization server and owns all local authentication state.
//
// # Flow
//
// The vendor only accepts a fixed redirect URL (the Home Assistant callback,
// http://homeassistant.local:8123/auth/external/callback by default), so the
// login flow is:
//
//  1. CheckRedirectHost verifies the redirect hostname resolves to loopback
//     (a hosts-file entry the user must add; HostsFileInstructions prints
//     per-OS setup steps when it does not).
//  2. Session.AuthCodeURL builds the authorization URL; the user opens it in
//     a browser and logs in.
//  3. A Receiver binds the redirect host:port and captures the authorization
//     code from the browser redirect. When the listener cannot run, the flow
//     degrades to pasting the full redirect URL (ExtractCode).
//  4. Session.Exchange trades the code for a TokenSet and persists it to the
//     Store.
//
// # Token lifecycle
//
// A TokenSet (access token, refresh token, absolute expiry) is the unit of
// authentication state. It lives in a JSON file (0600), is replaced wholesale
// on every refresh, and is deleted on logout. Session.EnsureValid refreshes
// proactively when the expiry (minus ExpiryMargin) has passed; the API client
// calls Session.Refresh reactively when the gateway answers 401.
//
// # Errors
//
// AuthError covers exchange/refresh failures; CallbackError covers a missing
// or malformed authorization code and callback timeouts. Both support
// errors.As via the IsAuthError/IsCallbackError helpers.
package auth
