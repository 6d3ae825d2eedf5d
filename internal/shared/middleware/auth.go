package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"adboard-backend/pkg/jwt"
)

// AuthMiddleware validates the JWT bearer token and injects the
// authenticated author into the gin context.
func AuthMiddleware(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Read token from Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(401, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		// 2. Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(401, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		// 3. Verify and parse JWT (access tokens only)
		claims, err := jwtManager.ValidateAccessToken(parts[1])
		if err != nil {
			c.JSON(401, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		// 4. Convert author id claim to uuid.UUID
		authorID, err := uuid.Parse(claims.AuthorID)
		if err != nil {
			c.JSON(401, gin.H{"error": "invalid author ID in token"})
			c.Abort()
			return
		}

		// 5. Expose identity to downstream handlers
		c.Set("authorID", authorID)
		c.Set("authorName", claims.Name)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// GetAuthenticatedAuthorID reads the author id set by AuthMiddleware.
func GetAuthenticatedAuthorID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get("authorID")
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil, false
	}
	return id, true
}
