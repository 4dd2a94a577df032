package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/akozyreva/airlines/internal/domain"
	"github.com/akozyreva/airlines/internal/service/booking"
	"github.com/gin-gonic/gin"
)

// userIDHeader carries the requesting user's id. Authentication proper
// is handled by the surrounding infrastructure, not this service.
const userIDHeader = "X-User-ID"

type OrderHandler struct {
	service booking.OrderUseCase
}

type createOrderRequest struct {
	Tickets []booking.TicketRequest `json:"tickets"`
}

type ticketResponse struct {
	ID       int64 `json:"id"`
	FlightID int64 `json:"flight_id"`
	Row      int   `json:"row"`
	Seat     int   `json:"seat"`
}

type orderResponse struct {
	ID        int64            `json:"id"`
	Reference string           `json:"reference"`
	CreatedAt time.Time        `json:"created_at"`
	Tickets   []ticketResponse `json:"tickets"`
}

type ticketDetailResponse struct {
	ID              int64     `json:"id"`
	FlightID        int64     `json:"flight_id"`
	Row             int       `json:"row"`
	Seat            int       `json:"seat"`
	FlightNumber    string    `json:"flight_number"`
	SourceCity      string    `json:"source_city"`
	DestinationCity string    `json:"destination_city"`
	DepartureTime   time.Time `json:"departure_time"`
	ArrivalTime     time.Time `json:"arrival_time"`
}

type orderDetailResponse struct {
	ID        int64                  `json:"id"`
	Reference string                 `json:"reference"`
	CreatedAt time.Time              `json:"created_at"`
	Tickets   []ticketDetailResponse `json:"tickets"`
}

type orderPageResponse struct {
	Orders   []orderDetailResponse `json:"orders"`
	Total    int                   `json:"total"`
	Page     int                   `json:"page"`
	PageSize int                   `json:"page_size"`
}

func NewOrderHandler(service booking.OrderUseCase) *OrderHandler {
	return &OrderHandler{service: service}
}

func (h *OrderHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
}

func (h *OrderHandler) create(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}

	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.service.CreateOrder(c.Request.Context(), booking.CreateOrderInput{
		UserID:  userID,
		Tickets: req.Tickets,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toOrderResponse(order))
}

func (h *OrderHandler) list(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "0"))

	result, err := h.service.ListOrders(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := orderPageResponse{
		Orders:   make([]orderDetailResponse, 0, len(result.Orders)),
		Total:    result.Total,
		Page:     result.Page,
		PageSize: result.PageSize,
	}
	for _, o := range result.Orders {
		resp.Orders = append(resp.Orders, toOrderDetailResponse(o))
	}
	c.JSON(http.StatusOK, resp)
}

func requestUserID(c *gin.Context) (int64, bool) {
	raw := c.GetHeader(userIDHeader)
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing " + userIDHeader + " header"})
		return 0, false
	}
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || userID < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + userIDHeader + " header"})
		return 0, false
	}
	return userID, true
}

func toOrderResponse(order *domain.Order) orderResponse {
	resp := orderResponse{
		ID:        order.ID,
		Reference: order.Reference,
		CreatedAt: order.CreatedAt,
		Tickets:   make([]ticketResponse, 0, len(order.Tickets)),
	}
	for _, t := range order.Tickets {
		resp.Tickets = append(resp.Tickets, ticketResponse{ID: t.ID, FlightID: t.FlightID, Row: t.Row, Seat: t.Seat})
	}
	return resp
}

func toOrderDetailResponse(o domain.OrderDetail) orderDetailResponse {
	resp := orderDetailResponse{
		ID:        o.ID,
		Reference: o.Reference,
		CreatedAt: o.CreatedAt,
		Tickets:   make([]ticketDetailResponse, 0, len(o.Tickets)),
	}
	for _, t := range o.Tickets {
		resp.Tickets = append(resp.Tickets, ticketDetailResponse{
			ID: t.ID, FlightID: t.FlightID, Row: t.Row, Seat: t.Seat,
			FlightNumber: t.FlightNumber, SourceCity: t.SourceCity, DestinationCity: t.DestinationCity,
			DepartureTime: t.DepartureTime, ArrivalTime: t.ArrivalTime,
		})
	}
	return resp
}
