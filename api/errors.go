package api

import (
	"errors"
	"net/http"

	"github.com/akozyreva/airlines/internal/domain"
	"github.com/gin-gonic/gin"
)

// respondError maps domain error kinds onto HTTP responses. Services
// return structured failures only; this is the single translation point.
func respondError(c *gin.Context, err error) {
	var outOfRange *domain.OutOfRangeError
	var seatTaken *domain.SeatTakenError
	var integrity *domain.DataIntegrityError

	switch {
	case errors.Is(err, domain.ErrEmptySelection), errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &outOfRange):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": outOfRange.Error(),
			"field": outOfRange.Field,
			"min":   outOfRange.Min,
			"max":   outOfRange.Max,
		})
	case errors.As(err, &seatTaken):
		c.JSON(http.StatusConflict, gin.H{
			"error":     seatTaken.Error(),
			"flight_id": seatTaken.FlightID,
			"row":       seatTaken.Row,
			"seat":      seatTaken.Seat,
		})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &integrity):
		c.JSON(http.StatusInternalServerError, gin.H{"error": integrity.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
