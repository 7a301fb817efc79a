package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/pkonnov/myblog/internal/domain"
)

const viewerKey = "viewer"

// ViewerClaims is the token payload issued by the external identity
// provider.
type ViewerClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Viewer returns a middleware that resolves the optional viewer identity
// from a Bearer token. Requests without a token proceed anonymously; a
// token that is present but invalid is rejected so a stale session cannot
// silently degrade to anonymous.
func Viewer(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "malformed authorization header"})
			return
		}

		viewer, err := parseToken(parts[1], secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(viewerKey, viewer)
		c.Next()
	}
}

// RequireViewer rejects anonymous requests. It must run after Viewer.
func RequireViewer() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetViewer(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Next()
	}
}

// GetViewer retrieves the authenticated viewer from the gin context, or nil
// for anonymous requests.
func GetViewer(c *gin.Context) *domain.Viewer {
	if v, exists := c.Get(viewerKey); exists {
		if viewer, ok := v.(*domain.Viewer); ok {
			return viewer
		}
	}
	return nil
}

func parseToken(tokenString string, secret []byte) (*domain.Viewer, error) {
	var claims ViewerClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid || claims.Username == "" {
		return nil, fmt.Errorf("invalid token claims")
	}

	role := claims.Role
	if !domain.IsValidRole(role) {
		role = domain.RoleUser
	}
	return &domain.Viewer{Username: claims.Username, Role: role}, nil
}
