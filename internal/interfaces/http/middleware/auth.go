package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	domainerrors "alvezinc.backend/internal/domain/errors"
	"alvezinc.backend/pkg/jwt"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// UserUUIDKey is the context key for the authenticated user's uuid
	UserUUIDKey = "userUUID"
)

// AuthMiddleware validates the bearer token and stores the uuid claim
// in the request context for downstream handlers.
func AuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeader)
		if authHeader == "" {
			abortUnauthorized(c, "authorization header is required")
			return
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			abortUnauthorized(c, "invalid authorization format, use: Bearer <token>")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			if err == jwt.ErrExpiredToken {
				abortUnauthorized(c, "token has expired")
				return
			}
			abortUnauthorized(c, "invalid token")
			return
		}

		c.Set(UserUUIDKey, claims.UserUUID)
		c.Next()
	}
}

// GetUserUUID gets the authenticated user's uuid from context
func GetUserUUID(c *gin.Context) (uuid.UUID, bool) {
	val, exists := c.Get(UserUUIDKey)
	if !exists {
		return uuid.Nil, false
	}
	userUUID, ok := val.(uuid.UUID)
	if !ok {
		return uuid.Nil, false
	}
	return userUUID, true
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"code":    domainerrors.CodeUnauthorized,
		"message": message,
	})
}
