package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portfolio-api/internal/domain/profile"
	"portfolio-api/pkg/apperror"
	"portfolio-api/pkg/auth"
)

const (
	GinContextKeyAdminEmail = "adminEmail"
	GinContextKeyProfileID  = "profileID"
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

		c.Set(GinContextKeyAdminEmail, claims.Email)

		c.Next()
	}
}

// RequireProfile resolves the singleton profile and stores its ID for the
// collection handlers. Requests referencing collections before a profile
// exists are rejected here.
func RequireProfile(profileRepo profile.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := profileRepo.GetProfile(c.Request.Context())
		if err != nil {
			respondError(c, err)
			c.Abort()
			return
		}
		if p == nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found", "message": "profile not found"})
			return
		}
		c.Set(GinContextKeyProfileID, p.ID)
		c.Next()
	}
}

func GetProfileIDFromGinContext(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(GinContextKeyProfileID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil, false
	}
	return id, true
}

// respondError maps application errors onto HTTP statuses. Anything that is
// not an AppError is reported as a bare 500.
func respondError(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(apperror.ToHTTPStatus(err), appErr.ToJSON())
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
