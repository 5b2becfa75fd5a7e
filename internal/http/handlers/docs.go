package handlers

import (
	"net/http"

	"shuttlelink/internal/http/middleware"
	"shuttlelink/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/bookings/:id/e-ticket
func GetBookingETicketPDF(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	svc := services.DocsService{RequestID: middleware.GetRequestID(c)}
	pdf, name, err := svc.GenerateETicket(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
