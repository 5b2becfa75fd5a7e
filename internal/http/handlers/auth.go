package handlers

import (
	"net/http"

	"shuttlelink/internal/http/middleware"
	"shuttlelink/internal/services"

	"github.com/gin-gonic/gin"
)

func authService(c *gin.Context) services.AuthService {
	return services.AuthService{
		Secret:    jwtSecret,
		RequestID: middleware.GetRequestID(c),
	}
}

type loginRequest struct {
	Login    string `json:"login"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	login := req.Login
	if login == "" {
		login = req.Email
	}

	result, err := authService(c).Login(login, req.Password)
	if err != nil {
		// A missing user reads as bad credentials, not as a 404.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "wrong login or password"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req services.RegisterInput
	if !BindJSONOrError(c, &req) {
		return
	}
	user, err := authService(c).Register(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "registered", "user": user})
}
