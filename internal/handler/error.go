package handler

import (
	"FileHaven/internal/apperr"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// writeError maps service errors to distinct response categories so callers
// can tell bad input from missing entities from denied access.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperr.ErrInvalidInput),
		errors.Is(err, apperr.ErrBadPassword),
		errors.Is(err, apperr.ErrSelfShare):
		status = http.StatusBadRequest
	case errors.Is(err, apperr.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, apperr.ErrNotFound):
		status = http.StatusNotFound
	case apperr.IsConflict(err):
		status = http.StatusConflict
	case errors.Is(err, apperr.ErrTooLarge):
		status = http.StatusRequestEntityTooLarge
	case errors.Is(err, apperr.ErrIO):
		status = http.StatusInternalServerError
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// currentUserID reads the authenticated user ID set by the auth middleware.
func currentUserID(c *gin.Context) uint64 {
	value, _ := c.Get("user_id")
	userID, _ := value.(uint64)
	return userID
}
