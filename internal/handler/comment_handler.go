package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-platform/internal/domain"
	"blog-platform/internal/middleware"
	"blog-platform/internal/service"
)

// CommentHandler handles comment HTTP requests.
type CommentHandler struct {
	comments service.CommentServiceInterface
	articles service.ArticleServiceInterface
	users    service.UserServiceInterface
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(comments service.CommentServiceInterface, articles service.ArticleServiceInterface, users service.UserServiceInterface) *CommentHandler {
	return &CommentHandler{comments: comments, articles: articles, users: users}
}

func (h *CommentHandler) loadArticle(c *gin.Context) (*domain.Article, bool) {
	article, err := h.articles.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return article, true
}

// List handles GET /api/articles/:slug/comments
func (h *CommentHandler) List(c *gin.Context) {
	article, ok := h.loadArticle(c)
	if !ok {
		return
	}

	comments, err := h.comments.ListForArticle(c.Request.Context(), article.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]CommentResponse, len(comments))
	for i := range comments {
		responses[i] = toCommentResponse(&comments[i])
	}
	c.JSON(http.StatusOK, gin.H{"articleComments": responses})
}

type createCommentRequest struct {
	ArticleComment struct {
		Body string `json:"body"`
	} `json:"articleComment"`
}

// Create handles POST /api/articles/:slug/comments
func (h *CommentHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)
	user, err := h.users.Get(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		respondError(c, err)
		return
	}

	article, ok := h.loadArticle(c)
	if !ok {
		return
	}

	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": gin.H{"articleComment": "is invalid"}})
		return
	}

	comment, err := h.comments.Attach(c.Request.Context(), article, user, req.ArticleComment.Body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"articleComment": toCommentResponse(comment)})
}

// Delete handles DELETE /api/articles/:slug/comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	userID := middleware.GetUserID(c)

	article, ok := h.loadArticle(c)
	if !ok {
		return
	}

	comment, err := h.comments.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.comments.Detach(c.Request.Context(), userID, article, comment); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
