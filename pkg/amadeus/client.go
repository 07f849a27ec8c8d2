// Package amadeus is the single client for the Amadeus self-service APIs:
// airport reference data, flight offers and hotel search. All calls share one
// TokenCache.
package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"tripscout/pkg/apperr"
	"tripscout/pkg/logger"
)

const (
	DefaultBaseURL = "https://test.api.amadeus.com"

	airportsPath     = "/v1/reference-data/locations/airports"
	flightOffersPath = "/v2/shopping/flight-offers"
	hotelsPath       = "/v1/reference-data/locations/hotels"
	hotelOffersV2    = "/v2/shopping/hotel-offers"
	hotelOffersV3    = "/v3/shopping/hotel-offers"

	maxErrorBody = 64 << 10
)

// Capabilities toggles endpoint variants that differ between Amadeus
// environments.
type Capabilities struct {
	HotelOffersV3   bool
	PricePrediction bool
}

type Config struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	Capabilities Capabilities
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     *TokenCache
	caps       Capabilities
	logger     logger.Client
	tracer     trace.Tracer
	now        func() time.Time
}

func NewClient(httpClient *http.Client, cfg Config, log logger.Client, opts ...TokenOption) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	tokens := NewTokenCache(baseURL, cfg.ClientID, cfg.ClientSecret, httpClient, log, opts...)
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		tokens:     tokens,
		caps:       cfg.Capabilities,
		logger:     log,
		tracer:     otel.Tracer("tripscout/pkg/amadeus"),
		now:        tokens.now,
	}
}

// Available reports whether credentials are configured.
func (c *Client) Available() bool {
	return c.tokens.Available()
}

func (c *Client) Tokens() *TokenCache {
	return c.tokens
}

// get performs an authenticated GET and decodes the JSON body into out.
// op names the call in errors, logs and spans.
func (c *Client) get(ctx context.Context, op, path string, params url.Values, out any) error {
	ctx, span := c.tracer.Start(ctx, "amadeus."+op, trace.WithAttributes(
		attribute.String("amadeus.path", path),
	))
	defer span.End()

	err := c.doGet(ctx, op, path, params, out, span)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (c *Client) doGet(ctx context.Context, op, path string, params url.Values, out any, span trace.Span) error {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return err
	}

	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return apperr.Transport(op, fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("amadeus request failed",
			logger.Field{Key: "op", Value: op},
			logger.Field{Key: "err", Value: err},
		)
		return apperr.Transport(op, err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.Warn("amadeus returned non-2xx",
			logger.Field{Key: "op", Value: op},
			logger.Field{Key: "status", Value: resp.StatusCode},
			logger.Field{Key: "body", Value: string(body)},
		)
		return apperr.Provider(op, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperr.Transport(op, fmt.Errorf("decode response: %w", err))
	}
	return nil
}
