package handlers

import (
	"net/http"

	"shuttlelink/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/admin/dashboard
func GetDashboard(c *gin.Context) {
	stats, err := services.ReportsService{}.DashboardStats()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GET /api/admin/vehicles
func GetVehicles(c *gin.Context) {
	vehicles, err := services.CatalogService{}.ListVehicles()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

// GET /api/admin/drivers
func GetDrivers(c *gin.Context) {
	drivers, err := services.CatalogService{}.ListDrivers()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, drivers)
}
