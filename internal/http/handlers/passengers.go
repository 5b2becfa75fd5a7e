package handlers

import (
	"net/http"

	"shuttlelink/internal/http/middleware"
	"shuttlelink/internal/services"

	"github.com/gin-gonic/gin"
)

// POST /api/passengers
func CreatePassenger(c *gin.Context) {
	var req services.PassengerInput
	if !BindJSONOrError(c, &req) {
		return
	}
	svc := services.PassengerService{RequestID: middleware.GetRequestID(c)}
	passenger, err := svc.Register(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, passenger)
}

// GET /api/passengers/:id/bookings
func GetPassengerBookings(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	bookings, err := services.BookingService{}.ListForPassenger(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}
