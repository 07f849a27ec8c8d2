package flight

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripscout/internal/httpx"
	"tripscout/pkg/amadeus"
	"tripscout/pkg/apperr"
)

type FlightHandler struct {
	service *Service
}

func NewFlightHandler(s *Service) *FlightHandler {
	return &FlightHandler{
		service: s,
	}
}

func (h *FlightHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/v1/flights", h.SearchFlightsHandler)
	router.POST("/v1/flights", h.SearchFlightsHandler)
	router.GET("/v1/flights/:id", h.GetFlightOfferHandler)
}

// SearchFlightsHandler godoc
// @Summary      Search flight offers
// @Description  Search by airport codes, or by origin and destination city names. City searches resolve each city to its best airports and merge the offers, shortest first.
// @Tags         flights
// @Accept       json
// @Produce      json
// @Param        originLocationCode       query  string  false  "Origin IATA code"
// @Param        destinationLocationCode  query  string  false  "Destination IATA code"
// @Param        originCity               query  string  false  "Origin city name"
// @Param        destinationCity          query  string  false  "Destination city name"
// @Param        departureDate            query  string  true   "YYYY-MM-DD"
// @Param        returnDate               query  string  false  "YYYY-MM-DD"
// @Param        adults                   query  int     false  "1-9, default 1"
// @Param        includePrediction        query  bool    false  "Attach price predictions"
// @Success      200 {object} httpx.Response
// @Failure      400 {object} httpx.ErrorResponse
// @Failure      404 {object} httpx.ErrorResponse
// @Failure      502 {object} httpx.ErrorResponse
// @Failure      503 {object} httpx.ErrorResponse
// @Router       /v1/flights [get]
func (h *FlightHandler) SearchFlightsHandler(c *gin.Context) {
	var req SearchQuery
	var err error
	if c.Request.Method == http.MethodPost {
		err = c.ShouldBindJSON(&req)
	} else {
		err = c.ShouldBindQuery(&req)
	}
	if err != nil {
		httpx.BadRequest(c, err)
		return
	}

	var response *amadeus.FlightOffersResponse
	switch {
	case req.isCitySearch():
		response, err = h.service.SearchByCity(c.Request.Context(), req.citySearch())
	case req.OriginLocationCode != "" || req.DestinationLocationCode != "":
		response, err = h.service.SearchOffers(c.Request.Context(), req.criteria())
	default:
		err = apperr.Validation("Either originLocationCode and destinationLocationCode, or originCity and destinationCity are required")
	}
	if err != nil {
		httpx.SendError(c, err)
		return
	}

	httpx.OK(c, httpx.Response{
		Data:         response.Data,
		Meta:         response.Meta,
		Dictionaries: response.Dictionaries,
		Message:      fmt.Sprintf("Found %d flight offers", len(response.Data)),
	})
}

// GetFlightOfferHandler godoc
// @Summary      Get a flight offer
// @Tags         flights
// @Produce      json
// @Param        id   path  string  true  "Flight offer ID"
// @Success      200 {object} httpx.Response
// @Failure      400 {object} httpx.ErrorResponse
// @Router       /v1/flights/{id} [get]
func (h *FlightHandler) GetFlightOfferHandler(c *gin.Context) {
	offer, err := h.service.GetOffer(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.SendError(c, err)
		return
	}

	httpx.OK(c, httpx.Response{Data: offer, Message: "Flight offer retrieved"})
}
