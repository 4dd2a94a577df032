package api

import (
	"net/http"

	"github.com/akozyreva/airlines/internal/repository"
	"github.com/akozyreva/airlines/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

type RouteHandler struct {
	service catalog.CatalogUseCase
}

type createRouteRequest struct {
	SourceID      int64 `json:"source_id" binding:"required"`
	DestinationID int64 `json:"destination_id" binding:"required"`
}

type routeResponse struct {
	ID              int64  `json:"id"`
	SourceID        int64  `json:"source_id"`
	DestinationID   int64  `json:"destination_id"`
	Source          string `json:"source,omitempty"`
	SourceCity      string `json:"source_city,omitempty"`
	Destination     string `json:"destination,omitempty"`
	DestinationCity string `json:"destination_city,omitempty"`
}

func NewRouteHandler(service catalog.CatalogUseCase) *RouteHandler {
	return &RouteHandler{service: service}
}

func (h *RouteHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
}

func (h *RouteHandler) list(c *gin.Context) {
	filter := repository.RouteFilter{
		Source:      c.Query("source"),
		Destination: c.Query("destination"),
	}

	routes, err := h.service.ListRoutes(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]routeResponse, 0, len(routes))
	for _, r := range routes {
		resp = append(resp, routeResponse{
			ID: r.ID, SourceID: r.SourceID, DestinationID: r.DestinationID,
			Source: r.SourceName, SourceCity: r.SourceCity,
			Destination: r.DestinationName, DestinationCity: r.DestinationCity,
		})
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RouteHandler) create(c *gin.Context) {
	var req createRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	route, err := h.service.CreateRoute(c.Request.Context(), catalog.CreateRouteInput{
		SourceID:      req.SourceID,
		DestinationID: req.DestinationID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, routeResponse{ID: route.ID, SourceID: route.SourceID, DestinationID: route.DestinationID})
}
