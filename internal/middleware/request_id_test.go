package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-platform/internal/middleware"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(capture *string) *gin.Engine {
		router := gin.New()
		router.Use(middleware.RequestID())
		router.GET("/api/tags", func(c *gin.Context) {
			if capture != nil {
				*capture = middleware.GetRequestID(c)
			}
			c.Status(http.StatusOK)
		})
		return router
	}

	t.Run("generates a UUID when the client sends none", func(t *testing.T) {
		var seen string
		router := newRouter(&seen)

		req := httptest.NewRequest(http.MethodGet, "/api/tags", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		headerID := w.Header().Get(middleware.RequestIDHeader)
		assert.Len(t, headerID, 36)
		assert.Equal(t, headerID, seen)
	})

	t.Run("keeps a client-provided ID", func(t *testing.T) {
		router := newRouter(nil)

		req := httptest.NewRequest(http.MethodGet, "/api/tags", nil)
		req.Header.Set(middleware.RequestIDHeader, "client-id-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "client-id-123", w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("each request gets its own ID", func(t *testing.T) {
		var seen string
		router := newRouter(&seen)
		ids := map[string]bool{}

		for i := 0; i < 3; i++ {
			req := httptest.NewRequest(http.MethodGet, "/api/tags", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			require.Equal(t, http.StatusOK, w.Code)
			ids[seen] = true
		}

		assert.Len(t, ids, 3)
	})
}

func TestGetRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty when unset", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		assert.Empty(t, middleware.GetRequestID(c))
	})

	t.Run("returns the stored ID", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set(middleware.RequestIDKey, "req-42")
		assert.Equal(t, "req-42", middleware.GetRequestID(c))
	})

	t.Run("empty when the stored value is not a string", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set(middleware.RequestIDKey, 42)
		assert.Empty(t, middleware.GetRequestID(c))
	})
}
