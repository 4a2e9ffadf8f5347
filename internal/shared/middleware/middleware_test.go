package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sasha-semenenko/planetarium-api-service/internal/shared/config"
	"github.com/sasha-semenenko/planetarium-api-service/internal/users"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{Secret: testSecret},
	}
}

func signToken(t *testing.T, role, tokenType string, expiresIn time.Duration) string {
	t.Helper()

	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": uuid.New().String(),
		"email":   "someone@test.local",
		"role":    role,
		"type":    tokenType,
		"iat":     now.Unix(),
		"exp":     now.Add(expiresIn).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()

	engine := gin.New()

	authed := engine.Group("/authed")
	authed.Use(JWTAuthWithConfig(cfg))
	authed.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})

	admin := engine.Group("/admin")
	admin.Use(JWTAuthWithConfig(cfg), RequireAdmin())
	admin.POST("", func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"created": true})
	})

	return engine
}

func doRequest(engine *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestUnauthenticatedRequestRejected(t *testing.T) {
	engine := testRouter()

	w := doRequest(engine, http.MethodGet, "/authed", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMalformedAuthorizationHeaderRejected(t *testing.T) {
	engine := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/authed", nil)
	req.Header.Set("Authorization", "Basic abcdef")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidAccessTokenAccepted(t *testing.T) {
	engine := testRouter()

	token := signToken(t, string(users.RoleUser), "access", time.Hour)
	w := doRequest(engine, http.MethodGet, "/authed", token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestExpiredTokenRejected(t *testing.T) {
	engine := testRouter()

	token := signToken(t, string(users.RoleUser), "access", -time.Minute)
	w := doRequest(engine, http.MethodGet, "/authed", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRefreshTokenRejectedOnAPIRoutes(t *testing.T) {
	engine := testRouter()

	token := signToken(t, string(users.RoleUser), "refresh", time.Hour)
	w := doRequest(engine, http.MethodGet, "/authed", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestNonAdminCannotWriteAdminRoutes(t *testing.T) {
	engine := testRouter()

	token := signToken(t, string(users.RoleUser), "access", time.Hour)
	w := doRequest(engine, http.MethodPost, "/admin", token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminCanWriteAdminRoutes(t *testing.T) {
	engine := testRouter()

	token := signToken(t, string(users.RoleAdmin), "access", time.Hour)
	w := doRequest(engine, http.MethodPost, "/admin", token)
	assert.Equal(t, http.StatusCreated, w.Code)
}
