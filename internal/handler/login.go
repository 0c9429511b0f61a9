package handler

import (
	"FileHaven/internal/dto"
	"FileHaven/internal/service"
	"FileHaven/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Login authenticates a user by email and returns a token.
func Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	user, err := service.Verify(req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	token, err := utils.GenerateToken(user.ID, user.UserName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"token":   token,
		"user":    user,
	})
}
