package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-platform/internal/auth"
	"blog-platform/internal/middleware"
)

func identityRouter(t *testing.T, guard gin.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/whoami", guard, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": middleware.GetUserID(c),
			"token":   c.GetString(middleware.TokenKey),
		})
	})
	return router
}

func TestAuthRequired(t *testing.T) {
	t.Run("accepts a Token-prefixed header", func(t *testing.T) {
		tokens := auth.NewTokenManager("test-secret", time.Hour)
		router := identityRouter(t, middleware.AuthRequired(tokens))

		token, err := tokens.Issue("user-1")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Token "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":"user-1"`)
		assert.Contains(t, w.Body.String(), token)
	})

	t.Run("accepts a Bearer-prefixed header", func(t *testing.T) {
		tokens := auth.NewTokenManager("test-secret", time.Hour)
		router := identityRouter(t, middleware.AuthRequired(tokens))

		token, err := tokens.Issue("user-1")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing header yields 401", func(t *testing.T) {
		tokens := auth.NewTokenManager("test-secret", time.Hour)
		router := identityRouter(t, middleware.AuthRequired(tokens))

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token yields 401", func(t *testing.T) {
		tokens := auth.NewTokenManager("test-secret", time.Hour)
		router := identityRouter(t, middleware.AuthRequired(tokens))

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Token not-a-jwt")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token signed with another secret yields 401", func(t *testing.T) {
		tokens := auth.NewTokenManager("test-secret", time.Hour)
		other := auth.NewTokenManager("other-secret", time.Hour)
		router := identityRouter(t, middleware.AuthRequired(tokens))

		token, err := other.Issue("user-1")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Token "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthOptional(t *testing.T) {
	t.Run("anonymous requests pass through", func(t *testing.T) {
		tokens := auth.NewTokenManager("test-secret", time.Hour)
		router := identityRouter(t, middleware.AuthOptional(tokens))

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":""`)
	})

	t.Run("a valid token resolves the user", func(t *testing.T) {
		tokens := auth.NewTokenManager("test-secret", time.Hour)
		router := identityRouter(t, middleware.AuthOptional(tokens))

		token, err := tokens.Issue("user-1")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Token "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":"user-1"`)
	})

	t.Run("an invalid token falls back to anonymous", func(t *testing.T) {
		tokens := auth.NewTokenManager("test-secret", time.Hour)
		router := identityRouter(t, middleware.AuthOptional(tokens))

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Token not-a-jwt")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":""`)
	})
}
