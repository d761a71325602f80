package handlers

import (
	"database/sql/driver"
	"errors"
	"net/http"

	"ambulance/internal/domain"
	"ambulance/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, code, message string) {
	if code == "" {
		code = http.StatusText(status)
	}
	payload := gin.H{"error": message, "code": code}
	if reqID := middleware.GetRequestID(c); reqID != "" {
		payload["request_id"] = reqID
	}
	c.JSON(status, payload)
}

// RespondDomainError maps domain errors to HTTP responses. Store
// connectivity failures become a generic 503; raw driver errors never
// reach the client.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
	case domain.IsUnauthorized(err):
		respondError(c, http.StatusForbidden, "unauthorized", "login required")
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error())
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, driver.ErrBadConn):
		respondError(c, http.StatusServiceUnavailable, "service_unavailable", "database unavailable")
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "something went wrong")
	}
}
