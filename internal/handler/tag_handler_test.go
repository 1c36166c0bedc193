package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"blog-platform/internal/mocks"
)

func TestTagHandler_List(t *testing.T) {
	t.Run("returns the distinct tags", func(t *testing.T) {
		articles := mocks.NewMockArticleServiceInterface(t)
		articles.EXPECT().Tags(mock.Anything).Return([]string{"go", "web"}, nil)

		router := gin.New()
		router.GET("/api/tags", NewTagHandler(articles).List)

		req := httptest.NewRequest(http.MethodGet, "/api/tags", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"tags":["go","web"]}`, w.Body.String())
	})

	t.Run("empty platform yields an empty array", func(t *testing.T) {
		articles := mocks.NewMockArticleServiceInterface(t)
		articles.EXPECT().Tags(mock.Anything).Return(nil, nil)

		router := gin.New()
		router.GET("/api/tags", NewTagHandler(articles).List)

		req := httptest.NewRequest(http.MethodGet, "/api/tags", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"tags":[]}`, w.Body.String())
	})
}
