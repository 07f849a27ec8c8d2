// Package status reports which upstream services the gateway can use.
package status

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tripscout/pkg/amadeus"
	"tripscout/pkg/cache"
)

const Version = "1.0.0"

// Prober is the live check against the provider APIs.
type Prober interface {
	Available() bool
	CheckAvailability(ctx context.Context) amadeus.Availability
}

type StatusHandler struct {
	prober Prober
	cache  cache.Cache
	now    func() time.Time
}

func NewStatusHandler(prober Prober, cache cache.Cache) *StatusHandler {
	return &StatusHandler{prober: prober, cache: cache, now: time.Now}
}

func (h *StatusHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/v1/status", h.StatusHandler)
	router.GET("/v1/status/amadeus", h.AmadeusStatusHandler)
}

type Services struct {
	Geocoding  bool `json:"geocoding"`
	Amadeus    bool `json:"amadeus"`
	FullSearch bool `json:"fullSearch"`
	Cache      bool `json:"cache"`
}

type StatusResponse struct {
	Timestamp string   `json:"timestamp"`
	Services  Services `json:"services"`
	Version   string   `json:"version"`
}

// StatusHandler godoc
// @Summary      Service availability
// @Description  Reports configuration-level availability; no provider calls are made.
// @Tags         status
// @Produce      json
// @Success      200 {object} StatusResponse
// @Router       /v1/status [get]
func (h *StatusHandler) StatusHandler(c *gin.Context) {
	amadeusOK := h.prober.Available()

	ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
	defer cancel()
	cacheOK := h.cache != nil && h.cache.Ping(ctx) == nil

	c.JSON(http.StatusOK, StatusResponse{
		Timestamp: h.now().UTC().Format(time.RFC3339),
		Services: Services{
			Geocoding:  true,
			Amadeus:    amadeusOK,
			FullSearch: amadeusOK,
			Cache:      cacheOK,
		},
		Version: Version,
	})
}

type API struct {
	Available   bool   `json:"available"`
	Description string `json:"description"`
}

type AmadeusStatusResponse struct {
	Success          bool           `json:"success"`
	ServiceAvailable bool           `json:"serviceAvailable"`
	APIs             map[string]API `json:"apis,omitempty"`
	Errors           []string       `json:"errors,omitempty"`
	Error            string         `json:"error,omitempty"`
	Recommendations  []string       `json:"recommendations"`
	Message          string         `json:"message,omitempty"`
}

// AmadeusStatusHandler godoc
// @Summary      Live provider API probe
// @Description  Issues one small request to each of the airport, flight and hotel APIs.
// @Tags         status
// @Produce      json
// @Success      200 {object} AmadeusStatusResponse
// @Failure      500 {object} AmadeusStatusResponse
// @Router       /v1/status/amadeus [get]
func (h *StatusHandler) AmadeusStatusHandler(c *gin.Context) {
	if !h.prober.Available() {
		c.JSON(http.StatusInternalServerError, AmadeusStatusResponse{
			Error: "Amadeus service not available - credentials not configured",
			Recommendations: []string{
				"Check AMADEUS_CLIENT_ID and AMADEUS_CLIENT_SECRET environment variables",
				"Make sure you have a valid Amadeus for Developers account",
			},
		})
		return
	}

	result := h.prober.CheckAvailability(c.Request.Context())

	resp := AmadeusStatusResponse{
		Success:          true,
		ServiceAvailable: true,
		APIs: map[string]API{
			"airports": {Available: result.Airports, Description: "Reference Data API - Airport Search"},
			"flights":  {Available: result.Flights, Description: "Flight Offers Search API"},
			"hotels":   {Available: result.Hotels, Description: "Hotel List API"},
		},
		Errors:          result.Errors,
		Recommendations: []string{},
		Message:         "All APIs are working correctly",
	}
	if len(result.Errors) > 0 {
		resp.Recommendations = []string{
			"Check your Amadeus for Developers account",
			"Verify that Flight Offers Search API is activated",
			"Check API usage limits and quotas",
			"Ensure your account is approved for the required APIs",
		}
		resp.Message = "Some APIs are not available - check errors and recommendations"
	}
	c.JSON(http.StatusOK, resp)
}
