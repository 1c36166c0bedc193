package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blog-platform/internal/domain"
	"blog-platform/internal/middleware"
	"blog-platform/internal/service"
)

// ArticleHandler handles article CRUD, voting and image HTTP requests.
type ArticleHandler struct {
	articles service.ArticleServiceInterface
	votes    service.VoteServiceInterface
	users    service.UserServiceInterface
	tmpDir   string
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(articles service.ArticleServiceInterface, votes service.VoteServiceInterface, users service.UserServiceInterface, tmpDir string) *ArticleHandler {
	return &ArticleHandler{articles: articles, votes: votes, users: users, tmpDir: tmpDir}
}

// actingUser loads the authenticated user resolved by the middleware.
func (h *ArticleHandler) actingUser(c *gin.Context) (*domain.User, bool) {
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

// loadArticle preloads the article addressed by the :slug route param.
func (h *ArticleHandler) loadArticle(c *gin.Context) (*domain.Article, bool) {
	article, err := h.articles.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return article, true
}

// viewerFlags resolves the upvoted/downvoted booleans for the current viewer.
func (h *ArticleHandler) viewerFlags(c *gin.Context, articleIDs []string) (map[string]bool, map[string]bool, error) {
	viewerID := middleware.GetUserID(c)
	if viewerID == "" {
		return nil, nil, nil
	}
	return h.votes.Flags(c.Request.Context(), viewerID, articleIDs)
}

func (h *ArticleHandler) respondArticle(c *gin.Context, article *domain.Article) {
	upvoted, downvoted, err := h.viewerFlags(c, []string{article.ID})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"article": toArticleResponse(article, upvoted[article.ID], downvoted[article.ID])})
}

// List handles GET /api/articles
func (h *ArticleHandler) List(c *gin.Context) {
	filter := domain.ArticleFilter{
		Tag:         c.Query("tag"),
		Author:      c.Query("author"),
		UpvotedBy:   c.Query("upvoted"),
		DownvotedBy: c.Query("downvoted"),
		Limit:       20,
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil {
		filter.Limit = limit
	}
	if offset, err := strconv.Atoi(c.Query("offset")); err == nil {
		filter.Offset = offset
	}

	articles, total, err := h.articles.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	ids := make([]string, len(articles))
	for i := range articles {
		ids[i] = articles[i].ID
	}
	upvoted, downvoted, err := h.viewerFlags(c, ids)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]ArticleResponse, len(articles))
	for i := range articles {
		responses[i] = toArticleResponse(&articles[i], upvoted[articles[i].ID], downvoted[articles[i].ID])
	}

	c.JSON(http.StatusOK, gin.H{"articles": responses, "articlesCount": total})
}

// Get handles GET /api/articles/:slug
func (h *ArticleHandler) Get(c *gin.Context) {
	article, ok := h.loadArticle(c)
	if !ok {
		return
	}
	h.respondArticle(c, article)
}

func parseTagList(c *gin.Context) ([]string, bool, error) {
	raw, supplied := c.GetPostForm("tagList")
	if !supplied || raw == "" {
		return nil, false, nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil, true, err
	}
	return tags, true, nil
}

// Create handles POST /api/articles
func (h *ArticleHandler) Create(c *gin.Context) {
	user, ok := h.actingUser(c)
	if !ok {
		return
	}

	tags, _, err := parseTagList(c)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": gin.H{"tagList": "is invalid"}})
		return
	}

	cover, err := formUpload(c, "uploadFile", h.tmpDir)
	if err != nil {
		respondError(c, err)
		return
	}

	article, err := h.articles.Create(c.Request.Context(), user, service.CreateArticleInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Body:        c.PostForm("body"),
		TagList:     tags,
		Cover:       cover,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": toArticleResponse(article, false, false)})
}

// Update handles PUT /api/articles/:slug
func (h *ArticleHandler) Update(c *gin.Context) {
	user, ok := h.actingUser(c)
	if !ok {
		return
	}
	article, ok := h.loadArticle(c)
	if !ok {
		return
	}

	var patch domain.ArticlePatch
	if title, supplied := c.GetPostForm("title"); supplied {
		patch.Title = &title
	}
	if description, supplied := c.GetPostForm("description"); supplied {
		patch.Description = &description
	}
	if body, supplied := c.GetPostForm("body"); supplied {
		patch.Body = &body
	}
	tags, suppliedTags, err := parseTagList(c)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": gin.H{"tagList": "is invalid"}})
		return
	}
	if suppliedTags {
		patch.TagList = tags
	}

	in := service.UpdateArticleInput{
		Patch:       patch,
		RemoveCover: c.PostForm("removeImage") == "true",
	}

	if raw, supplied := c.GetPostForm("imgFileList"); supplied {
		var retained []string
		if err := json.Unmarshal([]byte(raw), &retained); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": gin.H{"imgFileList": "is invalid"}})
			return
		}
		in.RetainedBodyImages = retained
		in.RetainedSupplied = true
	}

	cover, err := formUpload(c, "uploadFile", h.tmpDir)
	if err != nil {
		respondError(c, err)
		return
	}
	in.Cover = cover

	updated, err := h.articles.Update(c.Request.Context(), user.ID, article, in)
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondArticle(c, updated)
}

// Delete handles DELETE /api/articles/:slug
func (h *ArticleHandler) Delete(c *gin.Context) {
	user, ok := h.actingUser(c)
	if !ok {
		return
	}
	article, ok := h.loadArticle(c)
	if !ok {
		return
	}

	if err := h.articles.Delete(c.Request.Context(), user.ID, article); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadBodyImage handles PUT /api/articles/:slug/imgs
func (h *ArticleHandler) UploadBodyImage(c *gin.Context) {
	if _, ok := h.actingUser(c); !ok {
		return
	}
	article, ok := h.loadArticle(c)
	if !ok {
		return
	}

	upload, err := formUpload(c, "file", h.tmpDir)
	if err != nil {
		respondError(c, err)
		return
	}
	if upload == nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": gin.H{"file": "is required"}})
		return
	}

	filename, err := h.articles.AttachBodyImage(c.Request.Context(), article, *upload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"file": filename})
}

func (h *ArticleHandler) vote(c *gin.Context, voteFn func(*gin.Context, *domain.User, *domain.Article) error) {
	user, ok := h.actingUser(c)
	if !ok {
		return
	}
	article, ok := h.loadArticle(c)
	if !ok {
		return
	}

	if err := voteFn(c, user, article); err != nil {
		respondError(c, err)
		return
	}
	h.respondArticle(c, article)
}

// Upvote handles POST /api/articles/:slug/upvote
func (h *ArticleHandler) Upvote(c *gin.Context) {
	h.vote(c, func(c *gin.Context, user *domain.User, article *domain.Article) error {
		return h.votes.Upvote(c.Request.Context(), user.ID, article)
	})
}

// Downvote handles POST /api/articles/:slug/downvote
func (h *ArticleHandler) Downvote(c *gin.Context) {
	h.vote(c, func(c *gin.Context, user *domain.User, article *domain.Article) error {
		return h.votes.Downvote(c.Request.Context(), user.ID, article)
	})
}

// CancelUpvote handles DELETE /api/articles/:slug/upvote
func (h *ArticleHandler) CancelUpvote(c *gin.Context) {
	h.vote(c, func(c *gin.Context, user *domain.User, article *domain.Article) error {
		return h.votes.CancelUpvote(c.Request.Context(), user.ID, article)
	})
}

// CancelDownvote handles DELETE /api/articles/:slug/downvote
func (h *ArticleHandler) CancelDownvote(c *gin.Context) {
	h.vote(c, func(c *gin.Context, user *domain.User, article *domain.Article) error {
		return h.votes.CancelDownvote(c.Request.Context(), user.ID, article)
	})
}
