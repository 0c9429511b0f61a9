package handler

import (
	"FileHaven/internal/dto"
	"FileHaven/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Register creates a new user account.
func Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	user, err := service.Register(req.Username, req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"msg":  "account created",
		"user": user,
	})
}
