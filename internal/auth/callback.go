package auth

import (
	"bufio"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"connectlife/internal/logging"
)

// DefaultCallbackTimeout bounds how long the receiver waits for the browser
// redirect before failing with a CallbackError.
const DefaultCallbackTimeout = 5 * time.Minute

// Receiver captures the OAuth2 authorization code from the browser redirect
// by binding a short-lived HTTP listener on the redirect URL's host:port.
type Receiver struct {
	redirect *url.URL
	state    string
}

// NewReceiver creates a receiver for the given redirect URL. The expected
// state is verified when the callback carries one.
func NewReceiver(redirectURL, state string) (*Receiver, error) {
	parsed, err := url.Parse(redirectURL)
	if err != nil {
		return nil, NewCallbackError("invalid redirect URL", err)
	}
	if parsed.Host == "" {
		return nil, NewCallbackError(fmt.Sprintf("redirect URL %q has no host", redirectURL), nil)
	}
	return &Receiver{redirect: parsed, state: state}, nil
}

// Addr returns the host:port the receiver binds to.
func (r *Receiver) Addr() string {
	return r.redirect.Host
}

// Wait blocks until the redirect request arrives, then extracts and returns
// the authorization code. The listener is always shut down before returning.
// A cancelled or expired context yields a CallbackError.
func (r *Receiver) Wait(ctx context.Context) (string, error) {
	ln, err := net.Listen("tcp", r.redirect.Host)
	if err != nil {
		return "", NewCallbackError(fmt.Sprintf("cannot listen on %s", r.redirect.Host), err)
	}
	return r.waitOn(ctx, ln)
}

// waitOn serves the callback on an existing listener. Split out so tests can
// bind an ephemeral port.
func (r *Receiver) waitOn(ctx context.Context, ln net.Listener) (string, error) {
	codeCh := make(chan string, 1)
	errCh := make(chan error, 1)

	srv := &http.Server{
		Handler: http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if r.redirect.Path != "" && req.URL.Path != r.redirect.Path {
				http.NotFound(w, req)
				return
			}
			query := req.URL.Query()
			if errStr := query.Get("error"); errStr != "" {
				errCh <- NewCallbackError(fmt.Sprintf("authorization server returned error: %s", errStr), nil)
				_, _ = w.Write([]byte("Authorization failed. You can close this window."))
				return
			}
			if got := query.Get("state"); got != "" && r.state != "" && got != r.state {
				errCh <- NewCallbackError("state mismatch in callback", nil)
				_, _ = w.Write([]byte("State mismatch. You can close this window."))
				return
			}
			code := query.Get("code")
			if code == "" {
				errCh <- NewCallbackError("missing code parameter in callback", nil)
				_, _ = w.Write([]byte("Missing authorization code. You can close this window."))
				return
			}
			codeCh <- code
			_, _ = w.Write([]byte("Authorization received. You can close this window."))
		}),
	}

	go func() {
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			errCh <- NewCallbackError("callback listener failed", err)
		}
	}()
	defer func() {
		_ = srv.Close()
	}()

	logging.Debug("Waiting for OAuth2 callback", zap.String("addr", r.redirect.Host))

	select {
	case <-ctx.Done():
		return "", NewCallbackError("timed out waiting for authorization callback", ctx.Err())
	case err := <-errCh:
		return "", err
	case code := <-codeCh:
		return code, nil
	}
}

// ExtractCode pulls the authorization code out of user-pasted input: either
// a full redirect URL (code read from the query string) or a bare code.
func ExtractCode(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", NewCallbackError("no authorization code provided", nil)
	}

	// Anything URL-shaped must contain the code parameter.
	if strings.Contains(raw, "://") || strings.ContainsAny(raw, "?&=") {
		parsed, err := url.Parse(raw)
		if err != nil {
			return "", NewCallbackError("malformed callback URL", err)
		}
		code := parsed.Query().Get("code")
		if code == "" {
			return "", NewCallbackError("no code parameter found in callback URL", nil)
		}
		return code, nil
	}

	return raw, nil
}

// ReadCodeFromPrompt is the degraded capture path: it prompts the user to
// paste the full redirect URL (or bare code) and extracts the code from it.
func ReadCodeFromPrompt(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, "Paste the full callback URL (or authorization code): ")
	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", NewCallbackError("failed to read input", err)
	}
	return ExtractCode(line)
}

// CaptureCode runs the automatic capture when the redirect host resolves to
// loopback, falling back to the manual paste prompt when it cannot listen.
func CaptureCode(ctx context.Context, redirectURL, state string) (string, error) {
	parsed, err := url.Parse(redirectURL)
	if err != nil {
		return "", NewCallbackError("invalid redirect URL", err)
	}

	if ResolvesToLoopback(parsed.Hostname()) {
		receiver, err := NewReceiver(redirectURL, state)
		if err == nil {
			code, err := receiver.Wait(ctx)
			if err == nil {
				return code, nil
			}
			if ctx.Err() != nil {
				return "", err
			}
			logging.Warn("Automatic callback capture failed, falling back to manual paste",
				zap.Error(err))
		}
	}

	return ReadCodeFromPrompt(os.Stdin, os.Stdout)
}

// RandomState produces a hex-encoded random state parameter for the
// authorization URL.
func RandomState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
