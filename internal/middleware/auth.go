package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// AdminEmailKey is the context key for the authenticated admin's email.
	AdminEmailKey = "admin_email"
	// AdminRoleKey is the context key for the authenticated admin's role.
	AdminRoleKey = "admin_role"
)

// AdminAuth guards admin-scoped routes. It requires a Bearer token
// signed with the configured secret and carrying role "admin"; anything
// else is rejected with 401 before the handler runs.
func AdminAuth(jwtSecret string) gin.HandlerFunc {
	secret := []byte(jwtSecret)

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Authorization header missing")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			abortUnauthorized(c, "Bearer token malformed")
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortUnauthorized(c, "Invalid token claims")
			return
		}
		if role, _ := claims["role"].(string); role != "admin" {
			abortUnauthorized(c, "Admin access required")
			return
		}

		if email, ok := claims["email"].(string); ok {
			c.Set(AdminEmailKey, email)
		}
		if role, ok := claims["role"].(string); ok {
			c.Set(AdminRoleKey, role)
		}

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	if log := GetLogger(c); log != nil {
		log.Warn("Admin guard rejected request", map[string]interface{}{
			"path":   c.Request.URL.Path,
			"reason": message,
		})
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error":   message,
	})
}
