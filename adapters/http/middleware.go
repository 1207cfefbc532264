package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vere-app/vere/pkg/apperror"
	"github.com/vere-app/vere/pkg/auth"
	"github.com/vere-app/vere/pkg/logger"
)

const (
	GinContextKeyOwnerID  = "ownerID"
	GinContextKeyUsername = "ownerUsername"
)

func AuthMiddleware(jwtSvc *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format"})
			return
		}

		claims, err := jwtSvc.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(GinContextKeyOwnerID, claims.UserID)
		c.Set(GinContextKeyUsername, claims.Username)

		c.Next()
	}
}

// OptionalAuthMiddleware identifies the viewer when a valid token is
// present but never rejects the request. Public pages use it to tell
// owners and logged-in viewers apart from anonymous traffic.
func OptionalAuthMiddleware(jwtSvc *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString != "" && tokenString != authHeader {
			if claims, err := jwtSvc.ValidateToken(tokenString); err == nil {
				c.Set(GinContextKeyOwnerID, claims.UserID)
				c.Set(GinContextKeyUsername, claims.Username)
			}
		}
		c.Next()
	}
}

// ErrorMiddleware turns errors attached via c.Error into one JSON
// response. The last error wins; AppErrors keep their mapped status.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		status := apperror.ToHTTPStatus(err)
		if status >= http.StatusInternalServerError {
			log.Error("Request failed", err, zap.String("path", c.Request.URL.Path))
		}

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			c.JSON(status, appErr.ToJSON())
			return
		}
		c.JSON(status, gin.H{"error": err.Error()})
	}
}

func GetOwnerIDFromGinContext(c *gin.Context) (uuid.UUID, bool) {
	ownerID, ok := c.Get(GinContextKeyOwnerID)
	if !ok {
		return uuid.Nil, false
	}
	ownerIDUUID, ok := ownerID.(uuid.UUID)
	if !ok {
		return uuid.Nil, false
	}
	return ownerIDUUID, true
}

// GetViewerFromGinContext returns the viewer identity set by the
// optional auth middleware, zero values for anonymous requests.
func GetViewerFromGinContext(c *gin.Context) (uuid.UUID, string) {
	id, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		return uuid.Nil, ""
	}
	username, _ := c.Get(GinContextKeyUsername)
	name, _ := username.(string)
	return id, name
}
