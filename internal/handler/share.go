package handler

import (
	"FileHaven/internal/dto"
	"FileHaven/internal/service"
	"FileHaven/utils"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// CreateShare grants another user read access to an artifact.
func CreateShare(c *gin.Context) {
	var req dto.ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid params"})
		return
	}
	if err := service.ShareWith(currentUserID(c), req.FileID, req.RecipientUsername); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "file shared"})
}

// RevokeShare removes a previously granted share.
func RevokeShare(c *gin.Context) {
	var req dto.ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid params"})
		return
	}
	if err := service.RevokeShare(currentUserID(c), req.FileID, req.RecipientUsername); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "share revoked"})
}

// ListShareGrants lists the users an artifact is shared with.
func ListShareGrants(c *gin.Context) {
	fileID, err := strconv.ParseUint(c.Param("fileID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid file id"})
		return
	}
	users, err := service.ListGrantsFor(currentUserID(c), fileID)
	if err != nil {
		writeError(c, err)
		return
	}
	utils.Success(c, dto.GrantListResponse{Users: users})
}
