package location

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"tripscout/internal/httpx"
	"tripscout/pkg/apperr"
	"tripscout/pkg/geocoder"
)

type LocationHandler struct {
	service *Service
}

func NewLocationHandler(s *Service) *LocationHandler {
	return &LocationHandler{service: s}
}

func (h *LocationHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/v1/geocode", h.GeocodeHandler)
	router.GET("/v1/airports", h.AirportsHandler)
}

type geocodeQuery struct {
	City    string `form:"city"`
	Country string `form:"country"`
	Zipcode string `form:"zipcode"`
}

func (q geocodeQuery) query() geocoder.Query {
	return geocoder.Query{City: q.City, Country: q.Country, Zipcode: q.Zipcode}
}

type airportsQuery struct {
	geocodeQuery
	Latitude  *float64 `form:"latitude"`
	Longitude *float64 `form:"longitude"`
	Radius    float64  `form:"radius"`
}

// GeocodeHandler godoc
// @Summary      Geocode a city
// @Tags         locations
// @Produce      json
// @Param        city     query  string  true   "City name"
// @Param        country  query  string  false  "Country"
// @Param        zipcode  query  string  false  "Postal code"
// @Success      200 {object} httpx.Response
// @Failure      404 {object} httpx.ErrorResponse
// @Router       /v1/geocode [get]
func (h *LocationHandler) GeocodeHandler(c *gin.Context) {
	var q geocodeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httpx.BadRequest(c, err)
		return
	}

	res, err := h.service.Geocode(c.Request.Context(), q.query())
	if err != nil {
		httpx.SendError(c, err)
		return
	}

	httpx.OK(c, httpx.Response{Data: res, Message: "Location found"})
}

// AirportsHandler godoc
// @Summary      List airports near a city or coordinate
// @Description  Airports are listed in provider relevance order, unranked.
// @Tags         locations
// @Produce      json
// @Param        city       query  string  false  "City name"
// @Param        country    query  string  false  "Country"
// @Param        latitude   query  number  false  "Latitude, used when city is empty"
// @Param        longitude  query  number  false  "Longitude, used when city is empty"
// @Param        radius     query  number  false  "Search radius in km, default 100"
// @Success      200 {object} httpx.Response
// @Failure      400 {object} httpx.ErrorResponse
// @Router       /v1/airports [get]
func (h *LocationHandler) AirportsHandler(c *gin.Context) {
	var q airportsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httpx.BadRequest(c, err)
		return
	}

	switch {
	case q.City != "":
		res, err := h.service.AirportsNearCity(c.Request.Context(), q.query(), q.Radius)
		if err != nil {
			httpx.SendError(c, err)
			return
		}
		httpx.OK(c, httpx.Response{
			Data:    res,
			Message: fmt.Sprintf("Found %d airports near %s", res.TotalCount, q.City),
		})

	case q.Latitude != nil && q.Longitude != nil:
		res, err := h.service.AirportsNear(c.Request.Context(), *q.Latitude, *q.Longitude, q.Radius)
		if err != nil {
			httpx.SendError(c, err)
			return
		}
		httpx.OK(c, httpx.Response{
			Data:    res.Data,
			Meta:    res.Meta,
			Message: fmt.Sprintf("Found %d airports", len(res.Data)),
		})

	default:
		httpx.SendError(c, apperr.Validation("Either city or both latitude and longitude are required"))
	}
}
