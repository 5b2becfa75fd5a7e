package handlers

import (
	"net/http"

	"shuttlelink/internal/domain/models"
	"shuttlelink/internal/http/middleware"
	"shuttlelink/internal/services"

	"github.com/gin-gonic/gin"
)

func bookingService(c *gin.Context) services.BookingService {
	return services.BookingService{
		Notifier:  hub,
		RequestID: middleware.GetRequestID(c),
	}
}

// POST /api/bookings
func CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	booking, err := bookingService(c).CreateBooking(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// GET /api/bookings/:id
func GetBookingByID(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	booking, err := bookingService(c).GetBooking(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

type paymentUpdateRequest struct {
	PaymentMethod string `json:"paymentMethod"`
	PaymentStatus string `json:"paymentStatus"`
}

// PATCH /api/bookings/:id/payment
func UpdateBookingPayment(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	var req paymentUpdateRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	svc := services.PaymentService{
		Notifier:  hub,
		RequestID: middleware.GetRequestID(c),
	}
	booking, err := svc.UpdatePayment(id, req.PaymentMethod, req.PaymentStatus)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// PATCH /api/bookings/:id/cancel
func CancelBooking(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	booking, err := bookingService(c).CancelBooking(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// GET /api/admin/bookings
func GetAllBookings(c *gin.Context) {
	bookings, err := bookingService(c).ListAll()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}
