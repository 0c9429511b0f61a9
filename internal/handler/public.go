package handler

import (
	"FileHaven/internal/dto"
	"FileHaven/internal/service"
	"FileHaven/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

// IssuePublicLink activates an anonymous download token for an artifact.
func IssuePublicLink(c *gin.Context) {
	var req dto.PublicLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid params"})
		return
	}
	token, err := service.IssuePublicLink(currentUserID(c), req.FileID)
	if err != nil {
		writeError(c, err)
		return
	}
	utils.Success(c, dto.PublicLinkResponse{
		Token: token,
		URL:   "/api/public/" + token,
	})
}

// RevokePublicLink deactivates an artifact's public token.
func RevokePublicLink(c *gin.Context) {
	var req dto.PublicLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid params"})
		return
	}
	if err := service.RevokePublicLink(currentUserID(c), req.FileID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "public link revoked"})
}

// PublicDownload streams an artifact to anyone holding an active token.
// No authentication: the token itself scopes access to this one artifact.
func PublicDownload(c *gin.Context) {
	artifact, err := service.ResolvePublicLink(c.Request.Context(), c.Param("token"))
	if err != nil {
		writeError(c, err)
		return
	}
	streamArtifact(c, artifact)
}
