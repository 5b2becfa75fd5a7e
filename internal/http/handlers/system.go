package handlers

import (
	"net/http"

	intconfig "shuttlelink/internal/config"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	payload := gin.H{"status": "ok"}
	if hub != nil {
		payload["wsClients"] = hub.ClientCount()
	}
	c.JSON(http.StatusOK, payload)
}

func DBCheck(c *gin.Context) {
	if intconfig.DB == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database not connected"})
		return
	}
	var count int
	if err := intconfig.DB.QueryRow("SELECT COUNT(*) FROM schedules").Scan(&count); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database query failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "database connection OK", "schedules_in_db": count})
}
