package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/akozyreva/airlines/internal/domain"
	"github.com/akozyreva/airlines/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

type createFlightRequest struct {
	Number        string    `json:"number"`
	RouteID       int64     `json:"route_id" binding:"required"`
	AirplaneID    int64     `json:"airplane_id" binding:"required"`
	DepartureTime time.Time `json:"departure_time" binding:"required"`
	ArrivalTime   time.Time `json:"arrival_time" binding:"required"`
}

type flightResponse struct {
	ID               int64     `json:"id"`
	Number           string    `json:"number"`
	Source           string    `json:"source"`
	SourceCity       string    `json:"source_city"`
	Destination      string    `json:"destination"`
	DestinationCity  string    `json:"destination_city"`
	Airplane         string    `json:"airplane"`
	DepartureTime    time.Time `json:"departure_time"`
	ArrivalTime      time.Time `json:"arrival_time"`
	TicketsAvailable int       `json:"tickets_available"`
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
	router.GET("/:id", h.get)
}

func (h *FlightHandler) list(c *gin.Context) {
	filter := flights.Filter{Route: c.Query("route")}

	if v := c.Query("date"); v != "" {
		date, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
		filter.Date = &date
	}
	if v := c.Query("arrival_date"); v != "" {
		date, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid arrival_date, expected YYYY-MM-DD"})
			return
		}
		filter.ArrivalDate = &date
	}

	list, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]flightResponse, 0, len(list))
	for _, fi := range list {
		resp = append(resp, toFlightResponse(fi))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *FlightHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	fi, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFlightResponse(*fi))
}

func (h *FlightHandler) create(c *gin.Context) {
	var req createFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	flight, err := h.service.Create(c.Request.Context(), flights.CreateFlightInput{
		Number:        req.Number,
		RouteID:       req.RouteID,
		AirplaneID:    req.AirplaneID,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":             flight.ID,
		"number":         flight.Number,
		"route_id":       flight.RouteID,
		"airplane_id":    flight.AirplaneID,
		"departure_time": flight.DepartureTime,
		"arrival_time":   flight.ArrivalTime,
	})
}

func toFlightResponse(fi domain.FlightInfo) flightResponse {
	return flightResponse{
		ID:               fi.ID,
		Number:           fi.Number,
		Source:           fi.SourceName,
		SourceCity:       fi.SourceCity,
		Destination:      fi.DestinationName,
		DestinationCity:  fi.DestinationCity,
		Airplane:         fi.AirplaneName,
		DepartureTime:    fi.DepartureTime,
		ArrivalTime:      fi.ArrivalTime,
		TicketsAvailable: fi.TicketsAvailable,
	}
}
