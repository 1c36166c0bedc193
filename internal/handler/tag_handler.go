package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-platform/internal/service"
)

// TagHandler handles tag listing requests.
type TagHandler struct {
	articles service.ArticleServiceInterface
}

// NewTagHandler creates a new TagHandler.
func NewTagHandler(articles service.ArticleServiceInterface) *TagHandler {
	return &TagHandler{articles: articles}
}

// List handles GET /api/tags
func (h *TagHandler) List(c *gin.Context) {
	tags, err := h.articles.Tags(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if tags == nil {
		tags = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"tags": tags})
}
