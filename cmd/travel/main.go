package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"tripscout/cfg"
	"tripscout/internal/flight"
	"tripscout/internal/hotel"
	"tripscout/internal/location"
	"tripscout/internal/middleware"
	"tripscout/internal/status"
	"tripscout/pkg/amadeus"
	"tripscout/pkg/cache"
	"tripscout/pkg/geocoder"
	"tripscout/pkg/idgen"
	"tripscout/pkg/logger"
	"tripscout/pkg/telemetry"

	_ "tripscout/cmd/travel/docs" // swagger docs

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// @title           TripScout Travel API
// @version         1.0
// @description     Flight, airport and hotel search over Amadeus with Nominatim geocoding.
// @BasePath        /
// @schemes         http
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ============
	// config
	// ============
	config, errCfg := cfg.Load()
	if errCfg != nil {
		log.Fatal(errCfg)
	}

	// ============
	// logger
	// ============
	zlogger := logger.NewZeroLog(config.AppEnv)

	// ============
	// Otel
	// ============
	shutdownOtel, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:  config.Observability.ServiceName,
		Environment:  config.AppEnv,
		OTLPEndpoint: config.Observability.OTLPEndpoint,
	}, zlogger)
	if err != nil {
		log.Fatalf("failed to initialize OpenTelemetry: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownOtel(ctx); err != nil {
			zlogger.Error("failed to shutdown OpenTelemetry", logger.Field{Key: "error", Value: err})
		}
	}()

	// ============
	// Cache
	// ============
	store := initCache(ctx, config.Redis, zlogger)

	// ============
	// External Service
	// ============
	httpClient := &http.Client{
		Timeout: config.HTTPTimeout,
	}
	amadeusClient := amadeus.NewClient(httpClient, amadeus.Config{
		BaseURL:      config.Amadeus.BaseURL,
		ClientID:     config.Amadeus.ClientID,
		ClientSecret: config.Amadeus.ClientSecret,
		Capabilities: amadeus.Capabilities{
			HotelOffersV3:   config.Amadeus.HotelOffersV3,
			PricePrediction: config.Amadeus.PricePrediction,
		},
	}, zlogger)
	if !amadeusClient.Available() {
		zlogger.Warn("Amadeus credentials not configured, provider endpoints will answer 503")
	}
	geo := geocoder.New(httpClient, geocoder.Config{
		BaseURL:    config.Nominatim.BaseURL,
		UserAgent:  config.Nominatim.UserAgent,
		RatePerSec: config.Nominatim.RatePerSec,
		CacheTTL:   config.GeocodeCacheTTL,
	}, store, zlogger)

	// ============
	// Internal Service
	// ============
	flightSvc := flight.NewService(geo, amadeusClient, amadeusClient, store, config.CacheTTLMinutes, zlogger)
	locationSvc := location.NewService(geo, amadeusClient, zlogger)
	hotelSvc := hotel.NewService(geo, amadeusClient, zlogger)

	// ============
	// HTTP
	// ============
	ids, err := idgen.NewSnowflakeGenerator(config.NodeID)
	if err != nil {
		log.Fatal(err)
	}

	if config.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(config.CORSOrigins))
	r.Use(otelgin.Middleware(config.Observability.ServiceName))
	r.Use(middleware.RequestID(ids))
	r.Use(middleware.TraceLogger(zlogger))

	flight.NewFlightHandler(flightSvc).RegisterRoutes(r)
	location.NewLocationHandler(locationSvc).RegisterRoutes(r)
	hotel.NewHotelHandler(hotelSvc).RegisterRoutes(r)
	status.NewStatusHandler(amadeusClient, store).RegisterRoutes(r)
	initSwagger(r)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", config.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zlogger.Info("server listening", logger.Field{Key: "addr", Value: srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	zlogger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlogger.Error("server shutdown failed", logger.Field{Key: "error", Value: err})
	}
}

// initCache prefers Redis and falls back to an in-process cache when Redis
// does not answer at startup.
func initCache(ctx context.Context, redisCfg cfg.RedisConfig, log logger.Client) cache.Cache {
	redis := cache.NewRedisCache(redisCfg.Addr(), redisCfg.Password)

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := redis.Ping(pingCtx); err != nil {
		log.Warn("redis unavailable, using in-memory cache",
			logger.Field{Key: "addr", Value: redisCfg.Addr()},
			logger.Field{Key: "error", Value: err},
		)
		return cache.NewMemoryCache()
	}
	return redis
}

func initSwagger(r *gin.Engine) {
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/docs", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		html := `<!DOCTYPE html>
<html>
<head>
    <title>API Documentation</title>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1">
</head>
<body>
    <script id="api-reference" data-url="/swagger/doc.json"></script>
    <script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
</body>
</html>`
		c.String(200, html)
	})
}
