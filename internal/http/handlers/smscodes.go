package handlers

import (
	"net/http"

	"shuttlelink/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/sms-codes
func GetSmsCodes(c *gin.Context) {
	codes, err := services.CatalogService{}.ListSmsCodes()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, codes)
}

// GET /api/sms-codes/:code
func GetSmsCodeByCode(c *gin.Context) {
	code, err := services.CatalogService{}.GetSmsCode(c.Param("code"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, code)
}
