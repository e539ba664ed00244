package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const contextKeyUsername = "username"

// UsernameFromContext returns the caller set by RequireBearer, or "" if unset.
func UsernameFromContext(c *gin.Context) string {
	return c.GetString(contextKeyUsername)
}

// RequireBearer rejects requests without a valid "Authorization: Bearer" token
// and records the caller's username in the context otherwise.
func RequireBearer(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortUnauthorized(c, "Not authenticated")
			return
		}
		username, err := svc.Authenticate(c.Request.Context(), token)
		if err != nil {
			abortUnauthorized(c, "Invalid authentication credentials")
			return
		}
		c.Set(contextKeyUsername, username)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func abortUnauthorized(c *gin.Context, detail string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": detail})
}
