package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/sasha-semenenko/planetarium-api-service/internal/shared/config"
	"github.com/sasha-semenenko/planetarium-api-service/internal/shared/utils/response"
	"github.com/sasha-semenenko/planetarium-api-service/internal/users"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

var errNoBearerToken = errors.New("authorization header format must be Bearer {token}")

// JWTAuth creates a JWT authentication middleware
func JWTAuth() gin.HandlerFunc {
	return JWTAuthWithConfig(config.Load())
}

// JWTAuthWithConfig authenticates the request from its bearer token and places
// user_id, user_email and user_role into the gin context. Only access tokens
// pass; refresh tokens are rejected here even though they share the signing key.
func JWTAuthWithConfig(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := bearerToken(c)
		if err != nil {
			abortUnauthorized(c, err.Error())
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(cfg.JWT.Secret), nil
		})
		if err != nil || !token.Valid {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortUnauthorized(c, "invalid token claims")
			return
		}
		if tokenType, _ := claims["type"].(string); tokenType != "access" {
			abortUnauthorized(c, "invalid token type")
			return
		}

		c.Set("user_id", claims["user_id"])
		c.Set("user_email", claims["email"])
		c.Set("user_role", claims["role"])

		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", errors.New("Authorization header is required")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", errNoBearerToken
	}
	return parts[1], nil
}

func abortUnauthorized(c *gin.Context, message string) {
	response.RespondJSON(c, "error", http.StatusUnauthorized, message, nil, nil)
	c.Abort()
}

// RequireRole rejects callers whose token role does not match exactly.
func RequireRole(requiredRole string) gin.HandlerFunc {
	return RequireRoles(requiredRole)
}

// RequireAdmin gates the /admin route groups.
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(string(users.RoleAdmin))
}

// RequireRoles accepts callers holding any of the listed roles.
func RequireRoles(requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawRole, exists := c.Get("user_role")
		if !exists {
			abortUnauthorized(c, "user role not found in context")
			return
		}

		userRole, _ := rawRole.(string)
		for _, role := range requiredRoles {
			if userRole == role {
				c.Next()
				return
			}
		}

		response.RespondJSON(c, "error", http.StatusForbidden, "Insufficient permissions", nil, nil)
		c.Abort()
	}
}
