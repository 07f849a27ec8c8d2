package cfg

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

func (r RedisConfig) Addr() string {
	return r.Host + ":" + r.Port
}

// AmadeusConfig leaves credentials optional: without them the server still
// starts and provider calls fail with an auth error.
type AmadeusConfig struct {
	BaseURL         string
	ClientID        string
	ClientSecret    string
	HotelOffersV3   bool
	PricePrediction bool
}

type NominatimConfig struct {
	BaseURL    string
	UserAgent  string
	RatePerSec float64
}

type ObservabilityConfig struct {
	ServiceName  string
	OTLPEndpoint string
}

type Config struct {
	AppEnv          string
	AppPort         string
	NodeID          int64
	Redis           RedisConfig
	Amadeus         AmadeusConfig
	Nominatim       NominatimConfig
	Observability   ObservabilityConfig
	HTTPTimeout     time.Duration
	CacheTTLMinutes int
	GeocodeCacheTTL time.Duration
	CORSOrigins     []string
}

// Load reads .env when present, then the process environment. Every missing
// or malformed key is reported together.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, errors.New("failed load cfg: " + err.Error())
	}
	return fromEnv()
}

func fromEnv() (*Config, error) {
	var errs []error

	appEnv := mustEnv("APP_ENV", &errs)
	appPort := mustEnv("APP_PORT", &errs)
	redisHost := mustEnv("REDIS_HOST", &errs)
	redisPort := mustEnv("REDIS_PORT", &errs)

	nodeID := intEnv("NODE_ID", 1, &errs)
	httpTimeout := intEnv("HTTP_TIMEOUT_SECONDS", 10, &errs)
	cacheTTL := intEnv("CACHE_TTL_MINUTES", 10, &errs)
	geocodeTTL := intEnv("GEOCODE_CACHE_TTL_MINUTES", 1440, &errs)
	hotelV3 := boolEnv("AMADEUS_HOTEL_OFFERS_V3", true, &errs)
	prediction := boolEnv("AMADEUS_PRICE_PREDICTION", true, &errs)
	ratePerSec := floatEnv("NOMINATIM_RATE_PER_SEC", 1, &errs)

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &Config{
		AppEnv:  appEnv,
		AppPort: appPort,
		NodeID:  int64(nodeID),
		Redis: RedisConfig{
			Host:     redisHost,
			Port:     redisPort,
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		Amadeus: AmadeusConfig{
			BaseURL:         os.Getenv("AMADEUS_BASE_URL"),
			ClientID:        os.Getenv("AMADEUS_CLIENT_ID"),
			ClientSecret:    os.Getenv("AMADEUS_CLIENT_SECRET"),
			HotelOffersV3:   hotelV3,
			PricePrediction: prediction,
		},
		Nominatim: NominatimConfig{
			BaseURL:    os.Getenv("NOMINATIM_BASE_URL"),
			UserAgent:  os.Getenv("NOMINATIM_USER_AGENT"),
			RatePerSec: ratePerSec,
		},
		Observability: ObservabilityConfig{
			ServiceName:  envOr("OTEL_SERVICE_NAME", "tripscout"),
			OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		},
		HTTPTimeout:     time.Duration(httpTimeout) * time.Second,
		CacheTTLMinutes: cacheTTL,
		GeocodeCacheTTL: time.Duration(geocodeTTL) * time.Minute,
		CORSOrigins:     splitOrigins(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}, nil
}

func mustEnv(key string, errs *[]error) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		*errs = append(*errs, errors.New("missing env: "+key))
	}
	return value
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func intEnv(key string, def int, errs *[]error) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		*errs = append(*errs, errors.New("conversion failed env: "+key))
		return def
	}
	return n
}

func floatEnv(key string, def float64, errs *[]error) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		*errs = append(*errs, errors.New("conversion failed env: "+key))
		return def
	}
	return f
}

func boolEnv(key string, def bool, errs *[]error) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		*errs = append(*errs, errors.New("conversion failed env: "+key))
		return def
	}
	return b
}

func splitOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
