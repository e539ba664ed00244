package handlers

import (
	"errors"
	"net/http"

	"patient-api/internal/auth"
	"patient-api/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func detail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"detail": msg})
}

// rejectRequest answers schema and coercion failures.
func rejectRequest(c *gin.Context, err error) {
	detail(c, http.StatusUnprocessableEntity, err.Error())
}

// respondError maps domain errors onto status codes; anything else is a 500.
func respondError(c *gin.Context, log zerolog.Logger, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		detail(c, http.StatusNotFound, "Patient not found")
	case errors.Is(err, auth.ErrUnauthorized):
		c.Header("WWW-Authenticate", "Bearer")
		detail(c, http.StatusUnauthorized, "Incorrect username or password")
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		detail(c, http.StatusInternalServerError, "internal server error")
	}
}
