package api

import (
	"net/http"
	"strconv"

	"github.com/akozyreva/airlines/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

type AirplaneHandler struct {
	service catalog.CatalogUseCase
}

type createAirplaneTypeRequest struct {
	Name string `json:"name" binding:"required"`
}

type airplaneTypeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type createAirplaneRequest struct {
	Name           string `json:"name" binding:"required"`
	Rows           int    `json:"rows"`
	SeatsInRow     int    `json:"seats_in_row"`
	AirplaneTypeID int64  `json:"airplane_type_id"`
	ImageURL       string `json:"image_url"`
}

type airplaneResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Rows           int    `json:"rows"`
	SeatsInRow     int    `json:"seats_in_row"`
	Capacity       int    `json:"capacity"`
	AirplaneTypeID int64  `json:"airplane_type_id"`
	ImageURL       string `json:"image_url,omitempty"`
}

func NewAirplaneHandler(service catalog.CatalogUseCase) *AirplaneHandler {
	return &AirplaneHandler{service: service}
}

func (h *AirplaneHandler) Register(airplanes, types *gin.RouterGroup) {
	airplanes.GET("", h.list)
	airplanes.POST("", h.create)
	airplanes.GET("/:id", h.get)
	types.GET("", h.listTypes)
	types.POST("", h.createType)
}

func (h *AirplaneHandler) list(c *gin.Context) {
	airplanes, err := h.service.ListAirplanes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]airplaneResponse, 0, len(airplanes))
	for _, a := range airplanes {
		resp = append(resp, airplaneResponse{
			ID: a.ID, Name: a.Name, Rows: a.Rows, SeatsInRow: a.SeatsInRow,
			Capacity: a.Capacity(), AirplaneTypeID: a.AirplaneTypeID, ImageURL: a.ImageURL,
		})
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AirplaneHandler) create(c *gin.Context) {
	var req createAirplaneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	airplane, err := h.service.CreateAirplane(c.Request.Context(), catalog.CreateAirplaneInput{
		Name:           req.Name,
		Rows:           req.Rows,
		SeatsInRow:     req.SeatsInRow,
		AirplaneTypeID: req.AirplaneTypeID,
		ImageURL:       req.ImageURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, airplaneResponse{
		ID: airplane.ID, Name: airplane.Name, Rows: airplane.Rows, SeatsInRow: airplane.SeatsInRow,
		Capacity: airplane.Capacity(), AirplaneTypeID: airplane.AirplaneTypeID, ImageURL: airplane.ImageURL,
	})
}

func (h *AirplaneHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	airplane, err := h.service.GetAirplane(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, airplaneResponse{
		ID: airplane.ID, Name: airplane.Name, Rows: airplane.Rows, SeatsInRow: airplane.SeatsInRow,
		Capacity: airplane.Capacity(), AirplaneTypeID: airplane.AirplaneTypeID, ImageURL: airplane.ImageURL,
	})
}

func (h *AirplaneHandler) listTypes(c *gin.Context) {
	types, err := h.service.ListAirplaneTypes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]airplaneTypeResponse, 0, len(types))
	for _, t := range types {
		resp = append(resp, airplaneTypeResponse{ID: t.ID, Name: t.Name})
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AirplaneHandler) createType(c *gin.Context) {
	var req createAirplaneTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	t, err := h.service.CreateAirplaneType(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, airplaneTypeResponse{ID: t.ID, Name: t.Name})
}
