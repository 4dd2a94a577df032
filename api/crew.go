package api

import (
	"net/http"

	"github.com/akozyreva/airlines/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

type CrewHandler struct {
	service catalog.CatalogUseCase
}

type createCrewRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	ImageURL  string `json:"image_url"`
}

type crewResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
	ImageURL  string `json:"image_url,omitempty"`
}

func NewCrewHandler(service catalog.CatalogUseCase) *CrewHandler {
	return &CrewHandler{service: service}
}

func (h *CrewHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
}

func (h *CrewHandler) list(c *gin.Context) {
	members, err := h.service.ListCrew(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]crewResponse, 0, len(members))
	for _, m := range members {
		resp = append(resp, crewResponse{ID: m.ID, FirstName: m.FirstName, LastName: m.LastName, FullName: m.FullName(), ImageURL: m.ImageURL})
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CrewHandler) create(c *gin.Context) {
	var req createCrewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.service.CreateCrew(c.Request.Context(), catalog.CreateCrewInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		ImageURL:  req.ImageURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, crewResponse{ID: member.ID, FirstName: member.FirstName, LastName: member.LastName, FullName: member.FullName(), ImageURL: member.ImageURL})
}
