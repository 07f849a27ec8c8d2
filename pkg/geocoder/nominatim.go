// Package geocoder resolves free-text city names to coordinates through the
// OpenStreetMap Nominatim search API.
package geocoder

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"tripscout/pkg/apperr"
	"tripscout/pkg/cache"
	"tripscout/pkg/logger"
)

const (
	DefaultBaseURL   = "https://nominatim.openstreetmap.org"
	DefaultUserAgent = "TravelAPI/1.0"

	maxErrorBody = 16 << 10
)

type Query struct {
	City    string `json:"city"`
	Country string `json:"country,omitempty"`
	Zipcode string `json:"zipcode,omitempty"`
}

// Text is the free-form search string sent upstream.
func (q Query) Text() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{q.City, q.Country, q.Zipcode} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

type Address struct {
	City     string `json:"city,omitempty"`
	Country  string `json:"country,omitempty"`
	State    string `json:"state,omitempty"`
	Postcode string `json:"postcode,omitempty"`
}

type Result struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	DisplayName string  `json:"displayName"`
	Address     Address `json:"address"`
}

type Config struct {
	BaseURL   string
	UserAgent string
	// RatePerSec bounds outbound requests; zero means one per second.
	RatePerSec float64
	CacheTTL   time.Duration
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	limiter    *rate.Limiter
	cache      cache.Cache
	ttl        time.Duration
	logger     logger.Client
}

// New builds a geocoder. store may be nil to disable result caching.
func New(httpClient *http.Client, cfg Config, store cache.Cache, log logger.Client) *Client {
	perSec := cfg.RatePerSec
	if perSec <= 0 {
		perSec = 1
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(orDefault(cfg.BaseURL, DefaultBaseURL), "/"),
		userAgent:  orDefault(cfg.UserAgent, DefaultUserAgent),
		limiter:    rate.NewLimiter(rate.Limit(perSec), 1),
		cache:      store,
		ttl:        cfg.CacheTTL,
		logger:     log,
	}
}

// nominatimPlace is one element of the upstream JSON array. Coordinates
// arrive as strings.
type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
	Address     struct {
		City     string `json:"city"`
		Town     string `json:"town"`
		Village  string `json:"village"`
		Country  string `json:"country"`
		State    string `json:"state"`
		Postcode string `json:"postcode"`
	} `json:"address"`
}

// Geocode returns the best match for q.
func (c *Client) Geocode(ctx context.Context, q Query) (*Result, error) {
	if strings.TrimSpace(q.City) == "" {
		return nil, apperr.Validation("City name is required")
	}
	text := q.Text()

	key := cacheKey(text)
	if res, ok := c.fromCache(ctx, key); ok {
		return res, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, apperr.Transport("geocoding", err)
	}

	places, err := c.search(ctx, text)
	if err != nil {
		return nil, err
	}
	if len(places) == 0 {
		return nil, apperr.NotFound("Location not found: %s", text)
	}

	res, err := toResult(places[0])
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, res)
	c.logger.Debug("geocoded location",
		logger.Field{Key: "query", Value: text},
		logger.Field{Key: "lat", Value: res.Latitude},
		logger.Field{Key: "lon", Value: res.Longitude},
	)
	return res, nil
}

func (c *Client) search(ctx context.Context, text string) ([]nominatimPlace, error) {
	params := url.Values{}
	params.Set("q", text)
	params.Set("format", "json")
	params.Set("limit", "1")
	params.Set("addressdetails", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, apperr.Transport("geocoding", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("geocoding request failed",
			logger.Field{Key: "query", Value: text},
			logger.Field{Key: "err", Value: err},
		)
		return nil, apperr.Transport("geocoding", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, apperr.Provider("geocoding", resp.StatusCode, string(body))
	}

	var places []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, apperr.Transport("geocoding", fmt.Errorf("decode response: %w", err))
	}
	return places, nil
}

func toResult(p nominatimPlace) (*Result, error) {
	lat, err := strconv.ParseFloat(p.Lat, 64)
	if err != nil || !(lat >= -90 && lat <= 90) {
		return nil, apperr.Transport("geocoding", fmt.Errorf("invalid latitude %q", p.Lat))
	}
	lon, err := strconv.ParseFloat(p.Lon, 64)
	if err != nil || !(lon >= -180 && lon <= 180) {
		return nil, apperr.Transport("geocoding", fmt.Errorf("invalid longitude %q", p.Lon))
	}

	city := p.Address.City
	if city == "" {
		city = p.Address.Town
	}
	if city == "" {
		city = p.Address.Village
	}

	return &Result{
		Latitude:    lat,
		Longitude:   lon,
		DisplayName: p.DisplayName,
		Address: Address{
			City:     city,
			Country:  p.Address.Country,
			State:    p.Address.State,
			Postcode: p.Address.Postcode,
		},
	}, nil
}

func cacheKey(text string) string {
	hash := sha256.Sum256([]byte(strings.ToLower(text)))
	return fmt.Sprintf("geocode:%x", hash[:16])
}

func (c *Client) fromCache(ctx context.Context, key string) (*Result, bool) {
	if c.cache == nil || c.ttl <= 0 {
		return nil, false
	}
	cached, err := c.cache.Get(ctx, key)
	if err != nil || cached == "" {
		return nil, false
	}
	var res Result
	if err := json.Unmarshal([]byte(cached), &res); err != nil {
		c.logger.Warn("discarding unreadable geocode cache entry", logger.Field{Key: "err", Value: err})
		return nil, false
	}
	return &res, true
}

func (c *Client) store(ctx context.Context, key string, res *Result) {
	if c.cache == nil || c.ttl <= 0 {
		return
	}
	b, err := json.Marshal(res)
	if err != nil {
		return
	}
	if err := c.cache.Set(ctx, key, string(b), c.ttl); err != nil {
		c.logger.Warn("failed to cache geocode result", logger.Field{Key: "err", Value: err})
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
