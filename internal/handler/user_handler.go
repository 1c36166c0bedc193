package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-platform/internal/domain"
	"blog-platform/internal/middleware"
	"blog-platform/internal/service"
)

// UserHandler handles registration, login and profile HTTP requests.
type UserHandler struct {
	users  service.UserServiceInterface
	tmpDir string
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users service.UserServiceInterface, tmpDir string) *UserHandler {
	return &UserHandler{users: users, tmpDir: tmpDir}
}

type credentialsRequest struct {
	User struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	} `json:"user"`
}

// Register handles POST /api/users
func (h *UserHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": gin.H{"user": "is invalid"}})
		return
	}

	user, token, err := h.users.Register(c.Request.Context(), req.User.Username, req.User.Email, req.User.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": toUserResponse(user, token)})
}

// Login handles POST /api/users/login
func (h *UserHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": gin.H{"user": "is invalid"}})
		return
	}

	user, token, err := h.users.Login(c.Request.Context(), req.User.Email, req.User.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": toUserResponse(user, token)})
}

func (h *UserHandler) currentUser(c *gin.Context) (*domain.User, bool) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.AbortWithStatus(http.StatusUnauthorized)
		return nil, false
	}
	user, err := h.users.Get(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.AbortWithStatus(http.StatusUnauthorized)
			return nil, false
		}
		respondError(c, err)
		return nil, false
	}
	return user, true
}

// Current handles GET /api/user
func (h *UserHandler) Current(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": toUserResponse(user, tokenFromContext(c))})
}

// Update handles PUT /api/user. The request is a multipart form so the
// profile fields can travel alongside an avatar upload.
func (h *UserHandler) Update(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	var patch domain.UserPatch
	if username, supplied := c.GetPostForm("username"); supplied {
		patch.Username = &username
	}
	if email, supplied := c.GetPostForm("email"); supplied {
		patch.Email = &email
	}
	if bio, supplied := c.GetPostForm("bio"); supplied {
		patch.Bio = &bio
	}
	if password, supplied := c.GetPostForm("password"); supplied {
		patch.Password = &password
	}

	avatar, err := formUpload(c, "uploadFile", h.tmpDir)
	if err != nil {
		respondError(c, err)
		return
	}

	updated, err := h.users.Update(c.Request.Context(), user, patch, avatar, c.PostForm("removePhoto") == "true")
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": toUserResponse(updated, tokenFromContext(c))})
}

// tokenFromContext echoes back the bearer token the request arrived with.
func tokenFromContext(c *gin.Context) string {
	if token, exists := c.Get(middleware.TokenKey); exists {
		if s, ok := token.(string); ok {
			return s
		}
	}
	return ""
}
