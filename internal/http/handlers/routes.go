package handlers

import (
	"net/http"

	"shuttlelink/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/routes
func GetRoutes(c *gin.Context) {
	routes, err := services.CatalogService{}.ListRoutes()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, routes)
}

// GET /api/routes/:id
func GetRouteByID(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	route, err := services.CatalogService{}.GetRoute(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, route)
}

// GET /api/routes/:id/stops
func GetRouteStops(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	stops, err := services.CatalogService{}.ListStops(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, stops)
}
