package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"dsa-tutor/internal/domain/model"
)

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, model.ErrUnsupportedPlatform), errors.Is(err, model.ErrInvalidRequest):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, model.ErrUserExists):
		return http.StatusBadRequest, "Username already registered"
	case errors.Is(err, model.ErrNoDataFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, model.ErrConversationNotFound):
		return http.StatusNotFound, "Conversation not found"
	case errors.Is(err, model.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Incorrect username or password"
	case errors.Is(err, model.ErrUnauthorized):
		return http.StatusUnauthorized, "Could not validate credentials"
	case errors.Is(err, model.ErrRateLimited):
		return http.StatusTooManyRequests, "Too many requests."
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// writeError aborts the request with a {"detail": ...} body.
func (h *Handler) writeError(c *gin.Context, err error) {
	status, detail := statusFor(err)
	if status == http.StatusUnauthorized {
		c.Header("WWW-Authenticate", "Bearer")
	}
	if status >= http.StatusInternalServerError && h.logger != nil {
		h.logger.Error(c.Request.Context(), "request failed", "path", c.Request.URL.Path, "error", err)
	}
	c.AbortWithStatusJSON(status, gin.H{"detail": detail})
}
