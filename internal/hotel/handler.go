package hotel

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"tripscout/internal/httpx"
	"tripscout/pkg/amadeus"
)

type HotelHandler struct {
	service *Service
}

func NewHotelHandler(s *Service) *HotelHandler {
	return &HotelHandler{service: s}
}

func (h *HotelHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/v1/hotels", h.SearchHotelsHandler)
	router.GET("/v1/hotels/by-city", h.SearchByCityHandler)
	router.GET("/v1/hotels/offers", h.SearchOffersHandler)
	router.GET("/v1/hotels/offers/by-city", h.OffersByCityHandler)
}

// SearchHotelsHandler godoc
// @Summary      List hotels
// @Description  By city code, by coordinates, or by hotel ids. At most 20 hotels (10 by ids).
// @Tags         hotels
// @Produce      json
// @Param        cityCode   query  string  false  "IATA city code"
// @Param        latitude   query  number  false  "Latitude"
// @Param        longitude  query  number  false  "Longitude"
// @Param        hotelIds   query  string  false  "Comma separated hotel ids"
// @Param        radius     query  int     false  "1-100, default 5"
// @Param        ratings    query  string  false  "Comma separated, each 1-5"
// @Success      200 {object} httpx.Response
// @Failure      400 {object} httpx.ErrorResponse
// @Failure      503 {object} httpx.ErrorResponse
// @Router       /v1/hotels [get]
func (h *HotelHandler) SearchHotelsHandler(c *gin.Context) {
	var q hotelsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httpx.BadRequest(c, err)
		return
	}
	req, err := q.search()
	if err != nil {
		httpx.SendError(c, err)
		return
	}

	var resp *amadeus.HotelListResponse
	if ids := splitList(q.HotelIDs); len(ids) > 0 {
		resp, err = h.service.SearchByIDs(c.Request.Context(), ids, req)
	} else {
		req.CityCode = q.CityCode
		req.Latitude = q.Latitude
		req.Longitude = q.Longitude
		resp, err = h.service.SearchHotels(c.Request.Context(), req)
	}
	if err != nil {
		httpx.SendError(c, err)
		return
	}

	httpx.OK(c, httpx.Response{
		Data:    resp.Data,
		Meta:    resp.Meta,
		Message: fmt.Sprintf("Found %d hotels", resp.Meta.Count),
	})
}

// SearchByCityHandler godoc
// @Summary      List hotels near a city
// @Tags         hotels
// @Produce      json
// @Param        city         query  string  true   "City name"
// @Param        countryCode  query  string  false  "Country"
// @Param        radius       query  int     false  "1-100, default 10"
// @Success      200 {object} httpx.Response
// @Failure      404 {object} httpx.ErrorResponse
// @Router       /v1/hotels/by-city [get]
func (h *HotelHandler) SearchByCityHandler(c *gin.Context) {
	var q cityHotelsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httpx.BadRequest(c, err)
		return
	}
	opts, err := q.search()
	if err != nil {
		httpx.SendError(c, err)
		return
	}
	if opts.Radius == 0 {
		opts.Radius = cityRadiusKm
	}

	resp, err := h.service.SearchByCity(c.Request.Context(), City{Name: q.City, CountryCode: q.CountryCode}, opts)
	if err != nil {
		httpx.SendError(c, err)
		return
	}

	httpx.OK(c, httpx.Response{
		Data:    resp.Data,
		Meta:    resp.Meta,
		Message: fmt.Sprintf("Found %d hotels in %s", resp.Meta.Count, q.City),
	})
}

// SearchOffersHandler godoc
// @Summary      Search hotel room offers
// @Tags         hotels
// @Produce      json
// @Param        hotelIds      query  string  false  "Comma separated hotel ids"
// @Param        cityCode      query  string  false  "IATA city code"
// @Param        checkInDate   query  string  true   "YYYY-MM-DD"
// @Param        checkOutDate  query  string  true   "YYYY-MM-DD"
// @Param        adults        query  int     false  "1-9, default 1"
// @Success      200 {object} httpx.Response
// @Failure      400 {object} httpx.ErrorResponse
// @Router       /v1/hotels/offers [get]
func (h *HotelHandler) SearchOffersHandler(c *gin.Context) {
	var q offersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httpx.BadRequest(c, err)
		return
	}

	resp, err := h.service.SearchOffers(c.Request.Context(), q.search())
	if err != nil {
		httpx.SendError(c, err)
		return
	}

	httpx.OK(c, httpx.Response{
		Data:    resp.Data,
		Meta:    resp.Meta,
		Message: fmt.Sprintf("Found %d hotel offers", resp.Meta.Count),
	})
}

// OffersByCityHandler godoc
// @Summary      Search hotel room offers near a city
// @Tags         hotels
// @Produce      json
// @Param        cityName      query  string  true   "City name"
// @Param        countryCode   query  string  false  "Country"
// @Param        checkInDate   query  string  true   "YYYY-MM-DD"
// @Param        checkOutDate  query  string  true   "YYYY-MM-DD"
// @Param        adults        query  int     false  "1-9, default 1"
// @Success      200 {object} httpx.Response
// @Failure      400 {object} httpx.ErrorResponse
// @Router       /v1/hotels/offers/by-city [get]
func (h *HotelHandler) OffersByCityHandler(c *gin.Context) {
	var q cityOffersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httpx.BadRequest(c, err)
		return
	}
	req, err := q.request()
	if err != nil {
		httpx.SendError(c, err)
		return
	}

	resp, err := h.service.OffersByCity(c.Request.Context(), req)
	if err != nil {
		httpx.SendError(c, err)
		return
	}

	httpx.OK(c, httpx.Response{
		Data:    resp.Data,
		Meta:    resp.Meta,
		Message: fmt.Sprintf("Found %d hotel offers in %s", resp.Meta.Count, q.CityName),
	})
}
