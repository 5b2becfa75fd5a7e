package handlers

import (
	"net/http"

	"shuttlelink/internal/domain/models"
	"shuttlelink/internal/http/middleware"
	"shuttlelink/internal/services"

	"github.com/gin-gonic/gin"
)

func trackingService(c *gin.Context) services.TrackingService {
	return services.TrackingService{
		Notifier:  hub,
		RequestID: middleware.GetRequestID(c),
	}
}

// POST /api/tracking (driver)
func RecordTracking(c *gin.Context) {
	var ping models.LiveTracking
	if !BindJSONOrError(c, &ping) {
		return
	}
	stored, err := trackingService(c).RecordPing(ping)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, stored)
}

// GET /api/tracking/:scheduleId
func GetTrackingHistory(c *gin.Context) {
	id, ok := ParamID(c, "scheduleId")
	if !ok {
		return
	}
	history, err := trackingService(c).History(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}
