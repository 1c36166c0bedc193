package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blog-platform/internal/domain"
	"blog-platform/internal/middleware"
	"blog-platform/internal/mocks"
)

func testUser() *domain.User {
	return &domain.User{
		ID:       "user-1",
		Username: "joe",
		Email:    "joe@example.com",
		Bio:      "reader",
		Image:    "ava-1.png",
	}
}

func newUserHandler(t *testing.T) (*UserHandler, *mocks.MockUserServiceInterface) {
	users := mocks.NewMockUserServiceInterface(t)
	return NewUserHandler(users, t.TempDir()), users
}

// withToken mirrors the auth middleware storing the raw bearer token.
func withToken(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.TokenKey, token)
		c.Next()
	}
}

func TestUserHandler_Register(t *testing.T) {
	t.Run("returns the user envelope with a token", func(t *testing.T) {
		handler, users := newUserHandler(t)
		users.EXPECT().
			Register(mock.Anything, "joe", "joe@example.com", "secret123").
			Return(testUser(), "jwt-token", nil)

		router := gin.New()
		router.POST("/api/users", handler.Register)

		payload := []byte(`{"user":{"username":"joe","email":"joe@example.com","password":"secret123"}}`)
		req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response struct {
			User UserResponse `json:"user"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "joe", response.User.Username)
		assert.Equal(t, "jwt-token", response.User.Token)
	})

	t.Run("duplicate user yields the taken message", func(t *testing.T) {
		handler, users := newUserHandler(t)
		users.EXPECT().
			Register(mock.Anything, "joe", "joe@example.com", "secret123").
			Return(nil, "", domain.ErrDuplicateUser)

		router := gin.New()
		router.POST("/api/users", handler.Register)

		payload := []byte(`{"user":{"username":"joe","email":"joe@example.com","password":"secret123"}}`)
		req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.JSONEq(t, `{"errors":{"username or email":"is already taken"}}`, w.Body.String())
	})

	t.Run("malformed body yields 422", func(t *testing.T) {
		handler, _ := newUserHandler(t)

		router := gin.New()
		router.POST("/api/users", handler.Register)

		req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader([]byte("{")))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestUserHandler_Login(t *testing.T) {
	t.Run("returns the user envelope with a token", func(t *testing.T) {
		handler, users := newUserHandler(t)
		users.EXPECT().
			Login(mock.Anything, "joe@example.com", "secret123").
			Return(testUser(), "jwt-token", nil)

		router := gin.New()
		router.POST("/api/users/login", handler.Login)

		payload := []byte(`{"user":{"email":"joe@example.com","password":"secret123"}}`)
		req := httptest.NewRequest(http.MethodPost, "/api/users/login", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "jwt-token")
	})

	t.Run("bad credentials yield the invalid message", func(t *testing.T) {
		handler, users := newUserHandler(t)
		users.EXPECT().
			Login(mock.Anything, "joe@example.com", "wrong").
			Return(nil, "", domain.ErrInvalidCredentials)

		router := gin.New()
		router.POST("/api/users/login", handler.Login)

		payload := []byte(`{"user":{"email":"joe@example.com","password":"wrong"}}`)
		req := httptest.NewRequest(http.MethodPost, "/api/users/login", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.JSONEq(t, `{"errors":{"email or password":"is invalid"}}`, w.Body.String())
	})
}

func TestUserHandler_Current(t *testing.T) {
	t.Run("echoes the request token", func(t *testing.T) {
		handler, users := newUserHandler(t)
		users.EXPECT().Get(mock.Anything, "user-1").Return(testUser(), nil)

		router := gin.New()
		router.GET("/api/user", withUser("user-1"), withToken("jwt-token"), handler.Current)

		req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response struct {
			User UserResponse `json:"user"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "jwt-token", response.User.Token)
		assert.Equal(t, "joe@example.com", response.User.Email)
	})

	t.Run("no identity yields 401", func(t *testing.T) {
		handler, _ := newUserHandler(t)

		router := gin.New()
		router.GET("/api/user", handler.Current)

		req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("deleted user yields 401", func(t *testing.T) {
		handler, users := newUserHandler(t)
		users.EXPECT().Get(mock.Anything, "ghost").Return(nil, domain.ErrNotFound)

		router := gin.New()
		router.GET("/api/user", withUser("ghost"), handler.Current)

		req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestUserHandler_Update(t *testing.T) {
	t.Run("field presence drives the patch", func(t *testing.T) {
		handler, users := newUserHandler(t)
		current := testUser()

		users.EXPECT().Get(mock.Anything, "user-1").Return(current, nil)

		var patch domain.UserPatch
		users.EXPECT().
			Update(mock.Anything, current, mock.AnythingOfType("domain.UserPatch"), (*domain.Upload)(nil), false).
			RunAndReturn(func(_ context.Context, u *domain.User, p domain.UserPatch, _ *domain.Upload, _ bool) (*domain.User, error) {
				patch = p
				return u, nil
			})

		router := gin.New()
		router.PUT("/api/user", withUser("user-1"), withToken("jwt-token"), handler.Update)

		body, contentType := multipartForm(t, map[string]string{
			"bio":   "",
			"email": "new@example.com",
		})
		req := httptest.NewRequest(http.MethodPut, "/api/user", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, patch.Username)
		require.NotNil(t, patch.Email)
		assert.Equal(t, "new@example.com", *patch.Email)
		require.NotNil(t, patch.Bio, "present-but-empty field clears")
		assert.Equal(t, "", *patch.Bio)
	})

	t.Run("removePhoto flag is forwarded", func(t *testing.T) {
		handler, users := newUserHandler(t)
		current := testUser()

		users.EXPECT().Get(mock.Anything, "user-1").Return(current, nil)
		users.EXPECT().
			Update(mock.Anything, current, mock.AnythingOfType("domain.UserPatch"), (*domain.Upload)(nil), true).
			Return(current, nil)

		router := gin.New()
		router.PUT("/api/user", withUser("user-1"), withToken("jwt-token"), handler.Update)

		body, contentType := multipartForm(t, map[string]string{"removePhoto": "true"})
		req := httptest.NewRequest(http.MethodPut, "/api/user", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
