package api

import (
	"net/http"
	"strconv"

	"github.com/akozyreva/airlines/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

type AirportHandler struct {
	service catalog.CatalogUseCase
}

type createAirportRequest struct {
	Name         string `json:"name" binding:"required"`
	CloseBigCity string `json:"close_big_city" binding:"required"`
	ImageURL     string `json:"image_url"`
}

type airportResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	CloseBigCity string `json:"close_big_city"`
	ImageURL     string `json:"image_url,omitempty"`
}

type airportDetailResponse struct {
	airportResponse
	Destinations []string `json:"destinations"`
}

func NewAirportHandler(service catalog.CatalogUseCase) *AirportHandler {
	return &AirportHandler{service: service}
}

func (h *AirportHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
	router.GET("/:id", h.get)
}

func (h *AirportHandler) list(c *gin.Context) {
	airports, err := h.service.ListAirports(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]airportResponse, 0, len(airports))
	for _, a := range airports {
		resp = append(resp, airportResponse{ID: a.ID, Name: a.Name, CloseBigCity: a.CloseBigCity, ImageURL: a.ImageURL})
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AirportHandler) create(c *gin.Context) {
	var req createAirportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	airport, err := h.service.CreateAirport(c.Request.Context(), catalog.CreateAirportInput{
		Name:         req.Name,
		CloseBigCity: req.CloseBigCity,
		ImageURL:     req.ImageURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, airportResponse{ID: airport.ID, Name: airport.Name, CloseBigCity: airport.CloseBigCity, ImageURL: airport.ImageURL})
}

func (h *AirportHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	detail, err := h.service.GetAirportDetail(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, airportDetailResponse{
		airportResponse: airportResponse{ID: detail.ID, Name: detail.Name, CloseBigCity: detail.CloseBigCity, ImageURL: detail.ImageURL},
		Destinations:    detail.Destinations,
	})
}
