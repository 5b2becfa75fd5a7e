package handlers

import (
	"net/http"

	"shuttlelink/internal/services"

	"github.com/gin-gonic/gin"
)

type feedbackRequest struct {
	BookingID int64  `json:"bookingId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

// POST /api/feedback
func SubmitFeedback(c *gin.Context) {
	var req feedbackRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	fb, err := services.FeedbackService{}.Submit(req.BookingID, req.Rating, req.Comment)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fb)
}

// GET /api/admin/feedback
func GetAllFeedback(c *gin.Context) {
	out, err := services.FeedbackService{}.ListAll()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
