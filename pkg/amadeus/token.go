package amadeus

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/sync/singleflight"

	"tripscout/pkg/apperr"
	"tripscout/pkg/logger"
)

const (
	tokenPath = "/v1/security/oauth2/token"

	// DefaultTokenMargin is subtracted from the issued lifetime so a token is
	// never presented in its last minutes.
	DefaultTokenMargin = 5 * time.Minute

	exchangeTimeout = 30 * time.Second
)

// TokenCache owns the single bearer token shared by every provider call.
// It is safe for concurrent use; concurrent refreshes collapse into one
// credential exchange.
type TokenCache struct {
	conf       *clientcredentials.Config
	httpClient *http.Client
	logger     logger.Client
	now        func() time.Time
	margin     time.Duration

	group singleflight.Group

	mu        sync.Mutex
	value     string
	expiresAt time.Time
}

type TokenOption func(*TokenCache)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) TokenOption {
	return func(t *TokenCache) { t.now = now }
}

func WithMargin(margin time.Duration) TokenOption {
	return func(t *TokenCache) { t.margin = margin }
}

func NewTokenCache(baseURL, clientID, clientSecret string, httpClient *http.Client, log logger.Client, opts ...TokenOption) *TokenCache {
	t := &TokenCache{
		conf: &clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     baseURL + tokenPath,
			AuthStyle:    oauth2.AuthStyleInParams,
		},
		httpClient: httpClient,
		logger:     log,
		now:        time.Now,
		margin:     DefaultTokenMargin,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Available reports whether credentials are configured at all.
func (t *TokenCache) Available() bool {
	return t.conf.ClientID != "" && t.conf.ClientSecret != ""
}

// Token returns the cached bearer token, exchanging credentials for a new
// one when none is cached or the cached one has expired.
func (t *TokenCache) Token(ctx context.Context) (string, error) {
	if tok, ok := t.cached(); ok {
		return tok, nil
	}

	if !t.Available() {
		return "", apperr.Auth("Amadeus API credentials not configured", 0, "", nil)
	}

	// The exchange is shared by every waiting caller, so it runs detached
	// from any one caller's cancellation. A caller that gives up returns
	// early and leaves the exchange to the others.
	ch := t.group.DoChan("token", func() (any, error) {
		if tok, ok := t.cached(); ok {
			return tok, nil
		}
		exCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), exchangeTimeout)
		defer cancel()
		return t.exchange(exCtx)
	})
	select {
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	case <-ctx.Done():
		return "", apperr.Auth("Authentication failed", 0, "", ctx.Err())
	}
}

// Invalidate drops the cached token so the next call exchanges again.
func (t *TokenCache) Invalidate() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.value = ""
	t.expiresAt = time.Time{}
}

func (t *TokenCache) cached() (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.value != "" && t.now().Before(t.expiresAt) {
		return t.value, true
	}
	return "", false
}

func (t *TokenCache) exchange(ctx context.Context) (string, error) {
	if t.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, t.httpClient)
	}

	issuedAt := t.now()
	tok, err := t.conf.Token(ctx)
	if err != nil {
		var rErr *oauth2.RetrieveError
		if errors.As(err, &rErr) {
			status := 0
			if rErr.Response != nil {
				status = rErr.Response.StatusCode
			}
			t.logger.Error("token request rejected",
				logger.Field{Key: "status", Value: status},
				logger.Field{Key: "body", Value: string(rErr.Body)},
			)
			return "", apperr.Auth("Failed to get access token", status, string(rErr.Body), err)
		}
		t.logger.Error("token request failed", logger.Field{Key: "err", Value: err})
		return "", apperr.Auth("Authentication failed", 0, "", err)
	}

	lifetime := time.Duration(tok.ExpiresIn) * time.Second
	if lifetime == 0 && !tok.Expiry.IsZero() {
		lifetime = time.Until(tok.Expiry)
	}

	t.mu.Lock()
	t.value = tok.AccessToken
	t.expiresAt = issuedAt.Add(lifetime - t.margin)
	t.mu.Unlock()

	t.logger.Debug("issued new access token",
		logger.Field{Key: "expires_in", Value: lifetime - t.margin},
	)
	return tok.AccessToken, nil
}
