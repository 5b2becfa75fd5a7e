package handlers

import (
	"net/http"

	"shuttlelink/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/cities
func GetCities(c *gin.Context) {
	cities, err := services.CatalogService{}.ListCities()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, cities)
}

type createCityRequest struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// POST /api/cities (admin)
func CreateCity(c *gin.Context) {
	var req createCityRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	city, err := services.CatalogService{}.CreateCity(req.Name, req.Code)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, city)
}
